// Package naming derives the canonical output filename of a classified
// research document: Broker-Entity-Title-YYMMDD.ext.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/model"
)

const (
	// NoDate replaces a missing or unparseable date.
	NoDate = "000000"

	// IndustryMiddle is the entity segment for industry reports.
	IndustryMiddle = "Industry"

	maxTitleRunes = 60
	titleCutset   = "_- "
)

var dateRe = regexp.MustCompile(`(?i)_([A-Za-z]{3}_\d{1,2},_\d{4})\.(pdf|xlsx|xls)$`)

// Parts are the fields extracted from an original filename.
type Parts struct {
	Broker string
	Title  string
	Date   string
	Ext    string
}

// Split extracts broker, title, and date from filename after folding it the
// way the classifier does. It never fails: each field has a fallback.
func Split(filename string) Parts {
	filename = classify.Normalize(filename)
	ext := filepath.Ext(filename)
	p := Parts{Ext: ext, Date: NoDate}

	loc := dateRe.FindStringSubmatchIndex(filename)
	if loc != nil {
		p.Date = parseDate(filename[loc[2]:loc[3]])
	}

	p.Broker, _, _ = strings.Cut(filename, "_")

	var core string
	if len(p.Broker)+1 <= len(filename) {
		core = filename[len(p.Broker)+1:]
	}
	if loc != nil {
		core = dropTail(core, loc[1]-loc[0])
	} else {
		core = dropTail(core, len(ext))
	}

	p.Title = cleanTitle(core)
	return p
}

// Compose builds the canonical filename for a classified document. An
// unclassified result keeps the original name.
func Compose(filename string, res classify.Result) string {
	if res.IsUnclassified() {
		return filename
	}

	p := Split(filename)

	middle := res.Name
	if res.IsIndustry() {
		middle = IndustryMiddle
	}

	title := p.Title
	if title == "" {
		title = "Update"
		if model.IsSpreadsheet(p.Ext) {
			title = "Model"
		}
	}
	title = truncateRunes(title, maxTitleRunes)

	name := p.Broker + "-" + middle + "-" + title + "-" + p.Date + p.Ext
	return strings.ReplaceAll(name, "/", "-")
}

// parseDate turns "Jan_5,_2024" into "240105".
func parseDate(raw string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "_", " "), ",", ""))
	t, err := time.Parse("Jan 2 2006", clean)
	if err != nil {
		return NoDate
	}
	return t.Format("060102")
}

// cleanTitle strips a ticker annotation and surrounding separators. Text
// after the last ")" is the title; when nothing follows it, the title is the
// text before that parenthesized group instead.
func cleanTitle(core string) string {
	title := core
	if closeIdx := strings.LastIndex(title, ")"); closeIdx != -1 {
		after := strings.Trim(title[closeIdx+1:], titleCutset)
		if after != "" {
			title = after
		} else if openIdx := strings.LastIndex(title[:closeIdx], "("); openIdx != -1 {
			title = title[:openIdx]
		} else {
			title = title[:closeIdx]
		}
	}
	return strings.Trim(title, titleCutset)
}

// dropTail removes the last n bytes of s, yielding "" when n exceeds len(s).
func dropTail(s string, n int) string {
	if n >= len(s) {
		return ""
	}
	return s[:len(s)-n]
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
