package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	entfile "github.com/amani-mollel/invoice-tracker/gen/ent/invoicefile"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error)
	LinkInvoice(ctx context.Context, fileID, invoiceID uuid.UUID) error
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Get(ctx, id)
}

func (r *invoiceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
}

func (r *invoiceFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the same document content was
// ingested before; the bool reports whether it was a duplicate.
func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert invoice file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *invoiceFileRepo) LinkInvoice(ctx context.Context, fileID, invoiceID uuid.UUID) error {
	return r.ent.InvoiceFile.UpdateOneID(fileID).
		SetInvoiceID(invoiceID).
		Exec(ctx)
}
