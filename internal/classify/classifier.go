// Package classify maps research document filenames, and page-one PDF text
// as a fallback, to a company or industry classification.
package classify

import (
	"context"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/registry"
)

// minContentAlias is the shortest alias accepted from page text without a
// "TICKER" marker on the page.
const minContentAlias = 3

// ratingWords are parenthesized annotations that are never tickers.
var ratingWords = []string{"BUY", "SELL", "HOLD", "NEUTRAL", "OUTPERFORM"}

var tickerRe = regexp.MustCompile(`(?i)\(([A-Z0-9\s.&]+)\)`)

// PageSource lazily supplies page-one text. It is called at most once per
// Classify call, and only when the content fallback is reached.
type PageSource func(ctx context.Context) model.PageText

// Input is a single file to classify.
type Input struct {
	Filename string
	Page     PageSource
}

// strategy is one step of the precedence chain. It returns ok=false to pass
// to the next strategy.
type strategy struct {
	Name string
	Run  func(ctx context.Context, d *document) (Result, bool)
}

type sheetPattern struct {
	name string
	re   *regexp.Regexp
}

// Classifier runs the ordered strategy chain. It is immutable after New and
// safe for concurrent use.
type Classifier struct {
	reg        *registry.Registry
	matcher    *Matcher
	entries    []registry.Entry
	keywords   []string
	features   []string
	sheets     []sheetPattern
	strategies []strategy
}

// New builds a Classifier over reg.
func New(reg *registry.Registry) *Classifier {
	c := &Classifier{
		reg:      reg,
		matcher:  NewMatcher(reg),
		entries:  reg.Entries(),
		keywords: reg.IndustryKeywords(),
		features: reg.StockFeatures(),
	}

	entries := reg.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].Alias) > utf8.RuneCountInString(entries[j].Alias)
	})
	for _, e := range entries {
		c.sheets = append(c.sheets, sheetPattern{
			name: e.Name,
			re:   regexp.MustCompile(`(?i)_` + regexp.QuoteMeta(e.Alias) + `(?:Financial|Model|_)`),
		})
	}

	c.strategies = []strategy{
		{Name: StrategySpreadsheet, Run: c.matchSpreadsheet},
		{Name: StrategyTicker, Run: c.matchTicker},
		{Name: StrategyAlias, Run: c.matchAlias},
		{Name: StrategyContent, Run: c.matchContent},
		{Name: StrategyIndustry, Run: c.matchIndustry},
	}
	return c
}

// Registry returns the registry the classifier was built with.
func (c *Classifier) Registry() *registry.Registry { return c.reg }

// Matcher returns the token matcher used by the alias and content scans.
func (c *Classifier) Matcher() *Matcher { return c.matcher }

// Strategies returns the strategy names in precedence order.
func (c *Classifier) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name
	}
	return names
}

// document is the per-call view of an Input.
type document struct {
	name string
	ext  string
	page PageSource
}

// Classify returns the first result produced by the strategy chain, or
// Unclassified.
func (c *Classifier) Classify(ctx context.Context, in Input) Result {
	d := &document{
		name: Normalize(in.Filename),
		ext:  strings.ToLower(filepath.Ext(in.Filename)),
		page: in.Page,
	}

	for _, s := range c.strategies {
		if res, ok := s.Run(ctx, d); ok {
			zap.L().Debug("classified",
				zap.String("file", in.Filename),
				zap.String("strategy", s.Name),
				zap.String("category", string(res.Category)),
				zap.String("entity", res.Name),
			)
			return res
		}
	}
	return Unclassified()
}

// matchSpreadsheet looks for "_<alias>Financial", "_<alias>Model" or
// "_<alias>_" in spreadsheet names, longest alias first.
func (c *Classifier) matchSpreadsheet(_ context.Context, d *document) (Result, bool) {
	if !model.IsSpreadsheet(d.ext) {
		return Result{}, false
	}
	for _, p := range c.sheets {
		if p.re.MatchString(d.name) {
			return Company(p.name, StrategySpreadsheet), true
		}
	}
	return Result{}, false
}

// matchTicker resolves the first parenthesized group that is not a rating
// annotation, e.g. "(0700)" or "(TME US)".
func (c *Classifier) matchTicker(_ context.Context, d *document) (Result, bool) {
	if model.IsSpreadsheet(d.ext) {
		return Result{}, false
	}
	raw, ok := tickerGroup(d.name)
	if !ok {
		return Result{}, false
	}

	raw = strings.ToUpper(raw)
	candidate := raw
	if fields := strings.Fields(raw); len(fields) > 0 {
		candidate = fields[0]
	}
	if isDigits(candidate) {
		candidate = trimLeadingZeros(candidate)
	}

	if name, ok := c.reg.Lookup(candidate); ok {
		return Company(name, StrategyTicker), true
	}
	if name, ok := c.reg.Lookup(raw); ok {
		return Company(name, StrategyTicker), true
	}
	return Result{}, false
}

// matchAlias scans the registry in insertion order against the filename.
func (c *Classifier) matchAlias(_ context.Context, d *document) (Result, bool) {
	for _, e := range c.entries {
		if c.matcher.Matches(e.Alias, d.name) {
			return Company(e.Name, StrategyAlias), true
		}
	}
	return Result{}, false
}

// matchContent scans page-one text of a PDF that reads like a single-stock
// report. Aliases shorter than minContentAlias need a "TICKER" marker on
// the page.
func (c *Classifier) matchContent(ctx context.Context, d *document) (Result, bool) {
	if !model.IsPDF(d.ext) || d.page == nil {
		return Result{}, false
	}

	page := d.page(ctx)
	if !page.Available() {
		zap.L().Debug("content fallback skipped",
			zap.String("file", d.name),
			zap.String("reason", string(page.Reason)),
		)
		return Result{}, false
	}
	text := page.Text

	if !containsAny(text, c.features) {
		return Result{}, false
	}

	hasTicker := strings.Contains(strings.ToUpper(text), "TICKER")
	for _, e := range c.entries {
		if !c.matcher.Matches(e.Alias, text) {
			continue
		}
		if utf8.RuneCountInString(e.Alias) < minContentAlias && !hasTicker {
			continue
		}
		return Company(e.Name, StrategyContent), true
	}
	return Result{}, false
}

// matchIndustry checks the filename for any industry keyword.
func (c *Classifier) matchIndustry(_ context.Context, d *document) (Result, bool) {
	upper := strings.ToUpper(d.name)
	for _, kw := range c.keywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return Industry(), true
		}
	}
	return Result{}, false
}

// tickerGroup returns the content of the leftmost parenthesized group that
// does not start with a rating word.
func tickerGroup(name string) (string, bool) {
	for _, m := range tickerRe.FindAllStringSubmatch(name, -1) {
		if !isRating(m[1]) {
			return m[1], true
		}
	}
	return "", false
}

func isRating(group string) bool {
	upper := strings.ToUpper(group)
	for _, w := range ratingWords {
		if strings.HasPrefix(upper, w) {
			return true
		}
	}
	return false
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// containsAny is a case-sensitive fragment check.
func containsAny(text string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}
