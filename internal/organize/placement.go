package organize

import (
	"path/filepath"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/config"
	"github.com/sells-group/research-sorter/internal/model"
)

// Layout names the folders of the target tree.
type Layout struct {
	Root            string
	IndustryDir     string
	UnclassifiedDir string
	ReportDir       string
	ModelDir        string
}

// LayoutFromConfig builds a Layout from the sort configuration.
func LayoutFromConfig(cfg config.SortConfig) Layout {
	return Layout{
		Root:            cfg.TargetDir,
		IndustryDir:     cfg.IndustryDir,
		UnclassifiedDir: cfg.UnclassifiedDir,
		ReportDir:       cfg.ReportDir,
		ModelDir:        cfg.ModelDir,
	}
}

// Placement is where one source file lands in the target tree.
type Placement struct {
	Source     string
	TargetDir  string
	TargetName string
	Result     classify.Result

	// Ensure lists extra folders created alongside TargetDir, such as the
	// sibling reports/models folder of a company.
	Ensure []string
}

// TargetPath is the full destination path before collision handling.
func (p Placement) TargetPath() string {
	return filepath.Join(p.TargetDir, p.TargetName)
}

// Place decides the destination of source given its classification and
// composed name. Unclassified files keep their original name.
func (l Layout) Place(source string, res classify.Result, newName string) Placement {
	p := Placement{Source: source, TargetName: newName, Result: res}

	switch res.Category {
	case model.CategoryCompany:
		entityDir := filepath.Join(l.Root, res.Name)
		sub, sibling := l.ReportDir, l.ModelDir
		if model.IsSpreadsheet(filepath.Ext(source)) {
			sub, sibling = l.ModelDir, l.ReportDir
		}
		p.TargetDir = filepath.Join(entityDir, sub)
		p.Ensure = []string{filepath.Join(entityDir, sibling)}
	case model.CategoryIndustry:
		p.TargetDir = filepath.Join(l.Root, l.IndustryDir)
	default:
		p.TargetDir = filepath.Join(l.Root, l.UnclassifiedDir)
		p.TargetName = filepath.Base(source)
	}
	return p
}

// label is the folder label shown in progress lines.
func (l Layout) label(res classify.Result) string {
	switch res.Category {
	case model.CategoryCompany:
		return res.Name
	case model.CategoryIndustry:
		return l.IndustryDir
	default:
		return l.UnclassifiedDir
	}
}

func (l Layout) icon(p Placement) string {
	switch p.Result.Category {
	case model.CategoryCompany:
		if model.IsSpreadsheet(filepath.Ext(p.Source)) {
			return "📊"
		}
		return "📄"
	case model.CategoryIndustry:
		return "🌎"
	default:
		return "📂"
	}
}
