package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/constants"
	"github.com/amani-mollel/invoice-tracker/internal/extract"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/repository"
)

// TextStage is stage 1: ingested file -> extract_job with page text.
type TextStage struct {
	FilesRepo     repository.InvoiceFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewTextStage(files repository.InvoiceFileRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extract_job, extracts page text from the source file, and
// persists it. The parse stage is NOT called.
func (p *TextStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, extract.TextExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, string(parse.ErrNoTextExtracted), err.Error())
		return job.ID, res, err
	}
	if len(res.Pages) == 0 || strings.TrimSpace(res.Text) == "" {
		msg := "document produced no readable text"
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, string(parse.ErrNoTextExtracted), msg)
		return job.ID, res, fmt.Errorf("%s: %s", msg, row.SourcePath)
	}

	if err := p.JobsRepo.FinishTextOK(ctx, job.ID, res.Text, len(res.Pages), res.Confidence); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
