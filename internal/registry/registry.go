// Package registry holds the static entity configuration used to classify
// research documents: alias tokens, the ambiguous-token set, industry
// keywords, and the stock-report features checked in PDF text.
package registry

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Entry maps one alias token to a canonical entity name.
type Entry struct {
	Alias string
	Name  string
}

// EntitySpec groups the aliases of a single entity in a registry file.
type EntitySpec struct {
	Name    string   `yaml:"name" json:"name"`
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Spec is the serialized form of a registry. Entity and alias order is
// significant: it is the tie-break for the free-text and content scans.
type Spec struct {
	Entities         []EntitySpec `yaml:"entities" json:"entities"`
	Ambiguous        []string     `yaml:"ambiguous,omitempty" json:"ambiguous,omitempty"`
	IndustryKeywords []string     `yaml:"industry_keywords,omitempty" json:"industry_keywords,omitempty"`
	StockFeatures    []string     `yaml:"stock_features,omitempty" json:"stock_features,omitempty"`
}

// Registry is an immutable, ordered alias table. It is safe for concurrent
// reads.
type Registry struct {
	entries          []Entry
	byAlias          map[string]string
	ambiguous        map[string]struct{}
	industryKeywords []string
	stockFeatures    []string
}

// New validates s and builds a Registry. Aliases are unique
// case-insensitively; repeating an alias for the same entity is tolerated
// and keeps the first position, while mapping it to a second entity is an
// error.
func New(s Spec) (*Registry, error) {
	r := &Registry{
		byAlias:          make(map[string]string),
		ambiguous:        make(map[string]struct{}, len(s.Ambiguous)),
		industryKeywords: compact(s.IndustryKeywords),
		stockFeatures:    compact(s.StockFeatures),
	}

	for i, ent := range s.Entities {
		name := strings.TrimSpace(ent.Name)
		if name == "" {
			return nil, eris.Errorf("registry: entity %d has no name", i)
		}
		if len(ent.Aliases) == 0 {
			return nil, eris.Errorf("registry: entity %q has no aliases", name)
		}
		for _, alias := range ent.Aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				return nil, eris.Errorf("registry: entity %q has an empty alias", name)
			}
			key := strings.ToUpper(alias)
			if prev, ok := r.byAlias[key]; ok {
				if prev != name {
					return nil, eris.Errorf("registry: alias %q maps to both %q and %q", alias, prev, name)
				}
				continue
			}
			r.byAlias[key] = name
			r.entries = append(r.entries, Entry{Alias: alias, Name: name})
		}
	}

	for _, tok := range s.Ambiguous {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			r.ambiguous[strings.ToUpper(tok)] = struct{}{}
		}
	}

	return r, nil
}

// MustNew is New for package-level defaults; it panics on invalid input.
func MustNew(s Spec) *Registry {
	r, err := New(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Entries returns the alias entries in insertion order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of aliases.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup resolves an alias case-insensitively.
func (r *Registry) Lookup(alias string) (string, bool) {
	name, ok := r.byAlias[strings.ToUpper(alias)]
	return name, ok
}

// IsAmbiguous reports whether token is configured as ambiguous. All-digit
// tokens are treated as ambiguous by the matcher regardless of this set.
func (r *Registry) IsAmbiguous(token string) bool {
	_, ok := r.ambiguous[strings.ToUpper(token)]
	return ok
}

// IndustryKeywords returns the industry keyword fragments.
func (r *Registry) IndustryKeywords() []string {
	return append([]string(nil), r.industryKeywords...)
}

// StockFeatures returns the fragments that mark PDF text as a stock report.
func (r *Registry) StockFeatures() []string {
	return append([]string(nil), r.stockFeatures...)
}

// Names returns the distinct entity names in first-seen order.
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range r.entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// Spec converts the registry back to its serialized form. Consecutive
// aliases of one entity are grouped; order is preserved exactly.
func (r *Registry) Spec() Spec {
	var s Spec
	for _, e := range r.entries {
		n := len(s.Entities)
		if n > 0 && s.Entities[n-1].Name == e.Name {
			s.Entities[n-1].Aliases = append(s.Entities[n-1].Aliases, e.Alias)
			continue
		}
		s.Entities = append(s.Entities, EntitySpec{Name: e.Name, Aliases: []string{e.Alias}})
	}
	for tok := range r.ambiguous {
		s.Ambiguous = append(s.Ambiguous, tok)
	}
	sort.Strings(s.Ambiguous)
	s.IndustryKeywords = r.IndustryKeywords()
	s.StockFeatures = r.StockFeatures()
	return s
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
