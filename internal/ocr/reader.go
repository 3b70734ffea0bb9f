package ocr

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/research-sorter/internal/model"
)

// Reader turns extractor failures into typed unavailability, so callers
// never see an error from text extraction.
type Reader struct {
	ex      Extractor
	timeout time.Duration
}

// NewReader wraps ex with a per-file timeout. A nil ex yields a Reader that
// always reports UnavailableDisabled; timeout <= 0 means no limit.
func NewReader(ex Extractor, timeout time.Duration) *Reader {
	return &Reader{ex: ex, timeout: timeout}
}

// FirstPage returns the page-one text of the PDF at path. A cancelled ctx
// yields UnavailableCancelled rather than an extraction failure.
func (r *Reader) FirstPage(ctx context.Context, path string) model.PageText {
	if !model.IsPDF(filepath.Ext(path)) {
		return model.NoText(model.UnavailableNotPDF)
	}
	if r == nil || r.ex == nil {
		return model.NoText(model.UnavailableDisabled)
	}

	if ctx.Err() != nil {
		return model.NoText(model.UnavailableCancelled)
	}

	parent := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	text, err := r.ex.ExtractText(ctx, path)
	if err != nil {
		if parent.Err() != nil {
			return model.NoText(model.UnavailableCancelled)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			zap.L().Warn("pdf text extraction timed out",
				zap.String("path", path),
				zap.Duration("timeout", r.timeout),
			)
			return model.NoText(model.UnavailableTimeout)
		}
		zap.L().Debug("pdf text unavailable", zap.String("path", path), zap.Error(err))
		return model.NoText(model.UnavailableUnreadable)
	}

	return model.TextOf(text)
}
