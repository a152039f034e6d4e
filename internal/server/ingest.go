package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/amani-mollel/invoice-tracker/gen/proto/invoices/v1"
	"github.com/amani-mollel/invoice-tracker/internal/ingest"
	"github.com/amani-mollel/invoice-tracker/internal/pipeline"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	logger    *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, proc *pipeline.Processor, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:  ing,
		processor: proc,
		logger:    logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          "",
	}

	fileUUID, _ := uuid.Parse(r.FileID)
	s.logger.Info("starting file processing", "file_id", r.FileID)
	if _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	s.logger.Info("starting processing of ingested files", "file_count", len(results))
	for _, r := range results {
		item := &v1.IngestResponse{
			FileId:         r.FileID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}

		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if _, pErr := s.processor.ProcessFile(ctx, fileUUID); pErr != nil {
					s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", pErr)
					item.Error = pErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}
