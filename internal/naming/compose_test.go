package naming

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/research-sorter/internal/classify"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	tencent := classify.Company("腾讯控股", classify.StrategyTicker)

	tests := []struct {
		name     string
		filename string
		res      classify.Result
		want     string
	}{
		{
			name:     "ticker annotation trailing title",
			filename: "BROKER_CompanyTitle_(0700)_Jan_5,_2024.pdf",
			res:      tencent,
			want:     "BROKER-腾讯控股-CompanyTitle-240105.pdf",
		},
		{
			name:     "industry report",
			filename: "BROKER_Sector_Strategy_Outlook_Mar_1,_2023.pdf",
			res:      classify.Industry(),
			want:     "BROKER-Industry-Sector_Strategy_Outlook-230301.pdf",
		},
		{
			name:     "title after ticker",
			filename: "GS_Tencent_(0700.HK)_Strong_Quarter_Nov_12,_2024.pdf",
			res:      tencent,
			want:     "GS-腾讯控股-Strong_Quarter-241112.pdf",
		},
		{
			name:     "no date",
			filename: "MS_Tencent_Games_Deep_Dive.pdf",
			res:      tencent,
			want:     "MS-腾讯控股-Tencent_Games_Deep_Dive-000000.pdf",
		},
		{
			name:     "bad date",
			filename: "MS_Tencent_Note_Feb_30,_2024.pdf",
			res:      tencent,
			want:     "MS-腾讯控股-Tencent_Note-000000.pdf",
		},
		{
			name:     "lowercase month",
			filename: "MS_Note_jan_05,_2024.PDF",
			res:      tencent,
			want:     "MS-腾讯控股-Note-240105.PDF",
		},
		{
			name:     "empty title spreadsheet",
			filename: "JPM_(0700)_Jan_5,_2024.xlsx",
			res:      tencent,
			want:     "JPM-腾讯控股-Model-240105.xlsx",
		},
		{
			name:     "empty title document",
			filename: "JPM_(0700)_Jan_5,_2024.pdf",
			res:      tencent,
			want:     "JPM-腾讯控股-Update-240105.pdf",
		},
		{
			name:     "slash replaced",
			filename: "CLSA_AT&T_Q3/Q4_Review.pdf",
			res:      classify.Company("AT&T", classify.StrategyAlias),
			want:     "CLSA-AT&T-AT&T_Q3-Q4_Review-000000.pdf",
		},
		{
			name:     "entity with slash",
			filename: "CLSA_Note.pdf",
			res:      classify.Company("A/B", classify.StrategyAlias),
			want:     "CLSA-A-B-Note-000000.pdf",
		},
		{
			name:     "no underscore",
			filename: "report.pdf",
			res:      tencent,
			want:     "report.pdf-腾讯控股-Update-000000.pdf",
		},
		{
			name:     "full-width ticker annotation",
			filename: "BROKER_Note_（０７００）_Jan_5,_2024.pdf",
			res:      tencent,
			want:     "BROKER-腾讯控股-Note-240105.pdf",
		},
		{
			name:     "full-width date digits",
			filename: "GS_Note_(0700)_Jan_５,_２０２４.pdf",
			res:      tencent,
			want:     "GS-腾讯控股-Note-240105.pdf",
		},
		{
			name:     "unclassified keeps original name",
			filename: "BROKER_Weekly_Notes.pdf",
			res:      classify.Unclassified(),
			want:     "BROKER_Weekly_Notes.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Compose(tt.filename, tt.res))
		})
	}
}

func TestCompose_TitleTruncatedToSixtyRunes(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("研", 70)
	got := Compose("GS_"+long+"_Jan_5,_2024.pdf", classify.Industry())

	p := strings.Split(got, "-")
	assert.Equal(t, 60, utf8.RuneCountInString(p[2]))
	assert.True(t, strings.HasSuffix(got, "-240105.pdf"))
}

func TestCompose_TotalOverOddInputs(t *testing.T) {
	t.Parallel()

	res := classify.Company("X", classify.StrategyAlias)
	for _, name := range []string{"", "_", "_.pdf", "_Jan_5,_2024.pdf", "a_)", "a_((((", ")))_.xls", "B_\x00\xff.pdf"} {
		assert.NotPanics(t, func() { Compose(name, res) }, name)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	p := Split("BROKER_CompanyTitle_(0700)_Jan_5,_2024.pdf")
	assert.Equal(t, Parts{Broker: "BROKER", Title: "CompanyTitle", Date: "240105", Ext: ".pdf"}, p)

	p = Split("_Jan_5,_2024.pdf")
	assert.Equal(t, "", p.Broker)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, "240105", p.Date)

	p = Split("Broker_Note_Jan_5,_2024.docx")
	assert.Equal(t, NoDate, p.Date, "date pattern is tied to known extensions")
	assert.Equal(t, "Note_Jan_5,_2024", p.Title)
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Strong_Quarter", cleanTitle("Tencent_(0700)_Strong_Quarter"))
	assert.Equal(t, "CompanyTitle", cleanTitle("CompanyTitle_(0700)"))
	assert.Equal(t, "", cleanTitle("(0700)"))
	assert.Equal(t, "Note", cleanTitle("--Note__ "))
	assert.Equal(t, "x", cleanTitle("x)"))
}
