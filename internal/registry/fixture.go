package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"
)

// Sheet names read by LoadXLSX.
const (
	SheetEntities         = "entities"
	SheetAmbiguous        = "ambiguous"
	SheetIndustryKeywords = "industry_keywords"
	SheetStockFeatures    = "stock_features"
)

// Load reads a registry file, choosing the format by extension. An empty
// path returns the built-in registry.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, eris.Errorf("registry: unsupported file type %q", filepath.Ext(path))
	}
}

// LoadYAML reads a Spec from a YAML file. Omitted keyword lists fall back to
// the built-in defaults; an explicitly empty list disables them.
func LoadYAML(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read yaml")
	}

	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal yaml")
	}
	if len(s.Entities) == 0 {
		return nil, eris.Errorf("registry: %s defines no entities", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal yaml keys")
	}
	if _, ok := raw["ambiguous"]; !ok {
		s.Ambiguous = DefaultAmbiguous()
	}
	if _, ok := raw["industry_keywords"]; !ok {
		s.IndustryKeywords = DefaultIndustryKeywords()
	}
	if _, ok := raw["stock_features"]; !ok {
		s.StockFeatures = DefaultStockFeatures()
	}

	return New(s)
}

// WriteYAML serializes r to path.
func WriteYAML(r *Registry, path string) error {
	data, err := yaml.Marshal(r.Spec())
	if err != nil {
		return eris.Wrap(err, "registry: marshal yaml")
	}
	return eris.Wrap(os.WriteFile(path, data, 0o644), "registry: write yaml")
}

// LoadXLSX reads a registry workbook. The "entities" sheet holds alias and
// entity name in columns A and B, one alias per row, in priority order.
// The optional single-column sheets "ambiguous", "industry_keywords", and
// "stock_features" replace the built-in lists when present. A header row is
// skipped when its first cell reads "alias", "token", "keyword" or "feature".
func LoadXLSX(path string) (*Registry, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: open xlsx")
	}

	sheet, ok := f.Sheet[SheetEntities]
	if !ok {
		return nil, eris.Errorf("registry: %s has no %q sheet", path, SheetEntities)
	}

	var s Spec
	for _, cells := range sheetRows(sheet) {
		if len(cells) < 2 {
			continue
		}
		alias, name := strings.TrimSpace(cells[0]), strings.TrimSpace(cells[1])
		if alias == "" && name == "" {
			continue
		}
		n := len(s.Entities)
		if n > 0 && s.Entities[n-1].Name == name {
			s.Entities[n-1].Aliases = append(s.Entities[n-1].Aliases, alias)
			continue
		}
		s.Entities = append(s.Entities, EntitySpec{Name: name, Aliases: []string{alias}})
	}
	if len(s.Entities) == 0 {
		return nil, eris.Errorf("registry: %s defines no entities", path)
	}

	s.Ambiguous = columnOr(f, SheetAmbiguous, DefaultAmbiguous())
	s.IndustryKeywords = columnOr(f, SheetIndustryKeywords, DefaultIndustryKeywords())
	s.StockFeatures = columnOr(f, SheetStockFeatures, DefaultStockFeatures())

	return New(s)
}

var headerWords = map[string]bool{
	"alias":   true,
	"token":   true,
	"keyword": true,
	"feature": true,
}

func sheetRows(sheet *xlsx.Sheet) [][]string {
	var rows [][]string
	for i, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 && len(cells) > 0 && headerWords[strings.ToLower(strings.TrimSpace(cells[0]))] {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func columnOr(f *xlsx.File, name string, fallback []string) []string {
	sheet, ok := f.Sheet[name]
	if !ok {
		return fallback
	}
	var out []string
	for _, cells := range sheetRows(sheet) {
		if len(cells) > 0 && strings.TrimSpace(cells[0]) != "" {
			out = append(out, strings.TrimSpace(cells[0]))
		}
	}
	return out
}
