package ocr

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
)

// firstPage bounds pdftotext to the cover page, which is all the classifier
// reads.
var firstPage = []string{"-f", "1", "-l", "1"}

// PdfToText reads page-one text through the poppler pdftotext CLI.
type PdfToText struct {
	binPath string
}

// NewPdfToText returns a PdfToText using binPath, or "pdftotext" from PATH.
func NewPdfToText(binPath string) *PdfToText {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PdfToText{binPath: binPath}
}

// ExtractText returns the layout text of page 1 of pdfPath, without the
// trailing page break pdftotext emits.
func (p *PdfToText) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	args := append(append([]string{}, firstPage...), "-layout", pdfPath, "-")
	cmd := exec.CommandContext(ctx, p.binPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", eris.Wrapf(err, "ocr: pdftotext failed for %s: %s", pdfPath, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimRight(stdout.String(), "\f\n"), nil
}
