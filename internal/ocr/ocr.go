// Package ocr extracts page-one text from research PDFs, either with the
// local pdftotext binary or the Mistral OCR API.
package ocr

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/research-sorter/internal/config"
)

// Extractor extracts the text of the first page of a PDF file.
type Extractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// NewExtractor creates an Extractor based on config. The "none" provider
// returns a nil Extractor, which a Reader reports as disabled.
func NewExtractor(cfg config.OCRConfig) (Extractor, error) {
	switch cfg.Provider {
	case "local", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	case "mistral":
		if cfg.MistralKey == "" {
			return nil, eris.New("ocr: mistral provider requires mistral_api_key")
		}
		return NewMistralOCR(cfg.MistralKey, cfg.MistralModel), nil
	case "none":
		return nil, nil
	default:
		return nil, eris.Errorf("ocr: unknown provider %q", cfg.Provider)
	}
}
