package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extract job for data transfer between layers.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	FileID               uuid.UUID       `json:"file_id"`
	InvoiceID            *uuid.UUID      `json:"invoice_id,omitempty"`
	Format               string          `json:"format"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorKind            *string         `json:"error_kind,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	PageCount            *int            `json:"page_count,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`
	SourceText           *string         `json:"source_text,omitempty"`
	ResultJSON           json.RawMessage `json:"result_json,omitempty"`
}
