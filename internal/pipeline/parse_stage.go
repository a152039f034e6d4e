package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/internal/contract"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/repository"
)

// ParseStage is stage 2: extract_job text -> structured invoice rows.
type ParseStage struct {
	Logger       *slog.Logger
	JobsRepo     repository.ExtractJobRepository
	InvoicesRepo repository.InvoiceRepository
	Parser       *parse.Parser
}

func NewParseStage(logger *slog.Logger, jobs repository.ExtractJobRepository, invoices repository.InvoiceRepository, parser *parse.Parser) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if parser == nil {
		parser = parse.NewParser(logger)
	}
	return &ParseStage{Logger: logger, JobsRepo: jobs, InvoicesRepo: invoices, Parser: parser}
}

// Run executes the parse stage for an existing job. Preconditions: the job is
// TEXT_OK with non-empty source_text and a valid file link. Effects: writes
// result_json, persists the invoice with its items and customer, and links
// job and file to the invoice.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.SourceText == nil || *job.SourceText == "" {
		return job.ID, fmt.Errorf("job not ready for parse: no source text")
	}

	p.Logger.Info("parse start",
		"job_id", job.ID, "file_id", file.ID,
		"text_bytes", len(*job.SourceText),
	)

	result := p.Parser.ParseText(*job.SourceText)

	raw, err := json.Marshal(result)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, string(parse.ErrParsingFailed), err.Error())
		return job.ID, fmt.Errorf("marshal result: %w", err)
	}
	if err := contract.ValidateResultJSON(raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, string(parse.ErrParsingFailed), err.Error())
		return job.ID, fmt.Errorf("result contract: %w", err)
	}

	if !result.Success {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, string(result.Error), result.Message)
		return job.ID, fmt.Errorf("parse failed: %s", result.Message)
	}

	inv, err := p.InvoicesRepo.CreateFromExtraction(ctx, &repository.CreateInvoiceRequest{
		File:   file,
		JobID:  job.ID,
		Result: result,
	})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, "", err.Error())
		return job.ID, fmt.Errorf("persist invoice: %w", err)
	}

	if err := p.JobsRepo.FinishParseOK(ctx, job.ID, inv.ID, raw); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed invoice successfully",
		"job_id", job.ID, "invoice_id", inv.ID,
		"invoice_no", result.Header.InvoiceNumber,
		"customer", result.Header.CustomerName,
		"items", len(result.Items), "total", result.Totals.Total,
	)
	return job.ID, nil
}
