package classify

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize folds a filename before matching or naming: NFC composition
// (macOS stores decomposed names) and width folding, so full-width
// "（０７００）" reads as "(0700)".
func Normalize(name string) string {
	return width.Fold.String(norm.NFC.String(name))
}
