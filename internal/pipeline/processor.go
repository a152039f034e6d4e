package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates text extraction then structural parsing for one file.
type Processor struct {
	Logger *slog.Logger
	Text   *TextStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, text *TextStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile runs text extraction for a fileID (creating/advancing
// extract_job), then parses the resulting job and persists the invoice.
// Returns the final jobID (same one started by the text stage).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, textRes, err := p.Text.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.text.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.text.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", textRes.Method,
		"pages", len(textRes.Pages),
		"confidence", textRes.Confidence,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
