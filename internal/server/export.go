package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/amani-mollel/invoice-tracker/gen/proto/invoices/v1"
	"github.com/amani-mollel/invoice-tracker/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	var customerID *uuid.UUID
	if cid := strings.TrimSpace(req.GetCustomerId()); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "customer_id must be a UUID")
		}
		customerID = &id
	}

	// Optional dates (YYYY-MM-DD):
	// - only from -> from..today (inclusive)
	// - only to   -> beginning..to (inclusive)
	// - none      -> all.
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, customerID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &v1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
