// Package manifest writes an XLSX record of a sort run: one row per file on
// the "files" sheet and per-category counts on the "summary" sheet.
package manifest

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/research-sorter/internal/model"
)

// Sheet names in a manifest workbook.
const (
	SheetFiles   = "files"
	SheetSummary = "summary"
)

// FileColumns is the header row of the files sheet.
var FileColumns = []string{"source_name", "category", "entity", "strategy", "target_path", "error"}

// Write saves a manifest for files and summary at path, replacing any
// existing workbook.
func Write(path string, summary model.RunSummary, files []model.FileRecord) error {
	if ext := filepath.Ext(path); ext != ".xlsx" {
		return eris.Errorf("manifest: %s must have a .xlsx extension", path)
	}

	f := xlsx.NewFile()

	sheet, err := f.AddSheet(SheetFiles)
	if err != nil {
		return eris.Wrap(err, "manifest: add files sheet")
	}
	addRow(sheet, FileColumns...)
	for _, rec := range files {
		addRow(sheet, rec.SourceName, string(rec.Category), rec.Entity, rec.Strategy, rec.TargetPath, rec.Error)
	}

	counts, err := f.AddSheet(SheetSummary)
	if err != nil {
		return eris.Wrap(err, "manifest: add summary sheet")
	}
	addRow(counts, "category", "count")
	for _, c := range []struct {
		label string
		n     int
	}{
		{string(model.CategoryCompany), summary.Company},
		{string(model.CategoryIndustry), summary.Industry},
		{string(model.CategoryUnclassified), summary.Unclassified},
		{"failed", summary.Failed},
		{"total", summary.Total()},
	} {
		row := counts.AddRow()
		row.AddCell().SetString(c.label)
		row.AddCell().SetInt(c.n)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "manifest: save %s", path)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
