package classify

import "github.com/sells-group/research-sorter/internal/model"

// Strategy names recorded on a Result.
const (
	StrategySpreadsheet = "spreadsheet"
	StrategyTicker      = "ticker"
	StrategyAlias       = "alias"
	StrategyContent     = "content"
	StrategyIndustry    = "industry"
)

// Result is the outcome of classifying one file: a company with its
// canonical name, an industry report, or unclassified.
type Result struct {
	Category model.Category `json:"category"`
	Name     string         `json:"name,omitempty"`
	Strategy string         `json:"strategy,omitempty"`
}

// Company returns a company result.
func Company(name, strategy string) Result {
	return Result{Category: model.CategoryCompany, Name: name, Strategy: strategy}
}

// Industry returns an industry-report result.
func Industry() Result {
	return Result{Category: model.CategoryIndustry, Strategy: StrategyIndustry}
}

// Unclassified returns the catch-all result.
func Unclassified() Result {
	return Result{Category: model.CategoryUnclassified}
}

func (r Result) IsCompany() bool      { return r.Category == model.CategoryCompany }
func (r Result) IsIndustry() bool     { return r.Category == model.CategoryIndustry }
func (r Result) IsUnclassified() bool { return !r.IsCompany() && !r.IsIndustry() }
