package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/constants"
	"github.com/amani-mollel/invoice-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.InvoiceFile, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishTextOK(ctx context.Context, jobID uuid.UUID, sourceText string, pageCount int, confidence float32) error
	FinishParseOK(ctx context.Context, jobID, invoiceID uuid.UUID, resultJSON json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, kind, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.InvoiceFile, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := r.ent.InvoiceFile.Get(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	return r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Exec(ctx)
}

func (r *extractJobRepo) FinishTextOK(ctx context.Context, jobID uuid.UUID, sourceText string, pageCount int, confidence float32) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetSourceText(sourceText).
		SetPageCount(pageCount).
		SetStatus(string(constants.JobStatusTextOK))
	if confidence > 0 {
		upd = upd.SetExtractionConfidence(confidence).
			SetNeedsReview(confidence < constants.ReviewConfidenceThreshold)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished stage 1 (TEXT_OK)", "job_id", jobID, "pages", pageCount)
	return nil
}

func (r *extractJobRepo) FinishParseOK(ctx context.Context, jobID, invoiceID uuid.UUID, resultJSON json.RawMessage) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetResultJSON(resultJSON).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "invoice_id", invoiceID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, kind, message string) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message)
	if kind != "" {
		upd = upd.SetErrorKind(kind)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "kind", kind, "error", message)
	return nil
}
