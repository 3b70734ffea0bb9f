package model

import "strings"

// Category is the taxonomy bucket a research document is sorted into.
type Category string

const (
	CategoryCompany      Category = "company"
	CategoryIndustry     Category = "industry"
	CategoryUnclassified Category = "unclassified"
)

// Unavailable explains why page text could not be provided for a document.
type Unavailable string

const (
	UnavailableNotPDF     Unavailable = "not_pdf"
	UnavailableDisabled   Unavailable = "disabled"
	UnavailableUnreadable Unavailable = "unreadable"
	UnavailableEmpty      Unavailable = "empty"
	UnavailableTimeout    Unavailable = "timeout"
	UnavailableCancelled  Unavailable = "cancelled"
)

// PageText is the first-page text of a document, or the reason it is missing.
// Exactly one of Text and Reason is set.
type PageText struct {
	Text   string      `json:"text,omitempty"`
	Reason Unavailable `json:"reason,omitempty"`
}

// TextOf wraps extracted text. Blank text is reported as UnavailableEmpty.
func TextOf(text string) PageText {
	if strings.TrimSpace(text) == "" {
		return PageText{Reason: UnavailableEmpty}
	}
	return PageText{Text: text}
}

// NoText returns a PageText carrying only an unavailability reason.
func NoText(reason Unavailable) PageText {
	return PageText{Reason: reason}
}

// Available reports whether text was extracted.
func (p PageText) Available() bool {
	return p.Reason == "" && p.Text != ""
}

// IsSpreadsheet reports whether ext (with leading dot, any case) is a
// spreadsheet extension.
func IsSpreadsheet(ext string) bool {
	switch strings.ToLower(ext) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// IsPDF reports whether ext (with leading dot, any case) is a PDF extension.
func IsPDF(ext string) bool {
	return strings.EqualFold(ext, ".pdf")
}
