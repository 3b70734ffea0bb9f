package classify

import (
	"regexp"
	"strings"

	"github.com/sells-group/research-sorter/internal/registry"
)

// Matcher decides whether an alias token is present in a piece of text.
// Boundary patterns for the registry's aliases are compiled once; the
// Matcher is read-only afterwards and safe for concurrent use.
type Matcher struct {
	reg      *registry.Registry
	patterns map[string]*regexp.Regexp
}

// NewMatcher precompiles boundary patterns for every alias in reg that
// needs one.
func NewMatcher(reg *registry.Registry) *Matcher {
	m := &Matcher{reg: reg, patterns: make(map[string]*regexp.Regexp)}
	for _, e := range reg.Entries() {
		if m.NeedsBoundary(e.Alias) {
			tok := strings.ToUpper(e.Alias)
			m.patterns[tok] = boundaryPattern(tok)
		}
	}
	return m
}

// Matches reports whether token occurs in text, comparing upper-cased
// forms. Ambiguous or all-digit tokens only match when bounded on both sides
// by the string edge or a character that is not an ASCII letter or digit;
// any other token matches as a bare substring.
func (m *Matcher) Matches(token, text string) bool {
	tok := strings.ToUpper(token)
	txt := strings.ToUpper(text)

	if !strings.Contains(txt, tok) {
		return false
	}
	if !m.NeedsBoundary(token) {
		return true
	}

	re, ok := m.patterns[tok]
	if !ok {
		re = boundaryPattern(tok)
	}
	return re.MatchString(txt)
}

// NeedsBoundary reports whether token only matches at word boundaries.
func (m *Matcher) NeedsBoundary(token string) bool {
	return m.reg.IsAmbiguous(token) || isDigits(token)
}

func boundaryPattern(tok string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-zA-Z0-9])` + regexp.QuoteMeta(tok) + `(?:$|[^a-zA-Z0-9])`)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
