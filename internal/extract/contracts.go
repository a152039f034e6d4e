package extract

import (
	"context"
	"time"

	"github.com/amani-mollel/invoice-tracker/internal/parse"
)

// TextExtractor is Stage 1: file -> pages of text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      []parse.RawPage
	PageCount  int
	SourceType string // "PDF" | "IMAGE" | "TXT"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "plain-text"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// InvoiceParser is Stage 2: pages of text -> structured invoice.
type InvoiceParser interface {
	Parse(pages []parse.RawPage) parse.Result
}
