package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/research-sorter/internal/registry"
)

func TestMatcher_Matches(t *testing.T) {
	t.Parallel()

	m := NewMatcher(registry.Default())

	tests := []struct {
		name  string
		token string
		text  string
		want  bool
	}{
		{"ambiguous inside word", "T", "TEST123", false},
		{"ambiguous bounded by underscores", "T", "BROKER_T_Update", true},
		{"ambiguous at end after symbol", "T", "AT&T", true},
		{"ambiguous case-insensitive", "app", "Broker_app_Note.pdf", true},
		{"ambiguous prefix of word", "APP", "Apple_Note.pdf", false},
		{"ambiguous at string start", "SE", "SE 3Q review", true},
		{"numeric inside longer number", "700", "(0700)", false},
		{"numeric inside longer number trailing", "700", "17001", false},
		{"numeric bounded", "700", "HK 700 Equity", true},
		{"numeric not in registry still bounded", "1234", "x1234y", false},
		{"numeric not in registry bounded", "1234", "code 1234.", true},
		{"unambiguous bare substring", "TENCENT", "xxtencentyy", true},
		{"unambiguous multi-word", "POP MART", "Pop Mart Intl", true},
		{"absent", "TENCENT", "Alibaba", false},
		{"empty text", "T", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Matches(tt.token, tt.text))
		})
	}
}

func TestMatcher_AllAmbiguousTokensNeedBoundaries(t *testing.T) {
	t.Parallel()

	m := NewMatcher(registry.Default())
	for _, tok := range registry.DefaultAmbiguous() {
		assert.False(t, m.Matches(tok, "X"+tok+"1"), "embedded %q", tok)
		assert.True(t, m.Matches(tok, "x "+tok+"-y"), "bounded %q", tok)
	}
}

func TestMatcher_UnambiguousAlphabeticTokens(t *testing.T) {
	t.Parallel()

	reg := registry.Default()
	m := NewMatcher(reg)
	for _, e := range reg.Entries() {
		if reg.IsAmbiguous(e.Alias) || isDigits(e.Alias) {
			continue
		}
		assert.True(t, m.Matches(e.Alias, "zz"+e.Alias+"9"), "alias %q", e.Alias)
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	assert.True(t, isDigits("0700"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("07a0"))
	assert.False(t, isDigits("LGF.A"))
}
