package extract

import (
	"context"
	"log/slog"

	"github.com/amani-mollel/invoice-tracker/internal/pdftext"
)

type PDFTextAdapter struct {
	e *pdftext.Extractor
}

func NewPDFTextAdapter(e *pdftext.Extractor, _ *slog.Logger) *PDFTextAdapter {
	return &PDFTextAdapter{e: e}
}

func (a *PDFTextAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		PageCount:  r.PageCount,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, err
}
