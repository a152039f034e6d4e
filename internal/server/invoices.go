package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicespb "github.com/amani-mollel/invoice-tracker/gen/proto/invoices/v1"
	"github.com/amani-mollel/invoice-tracker/internal/contract"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/repository"
	"github.com/amani-mollel/invoice-tracker/internal/utils"
)

type InvoiceService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	parser       *parse.Parser
	logger       *slog.Logger
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, parser *parse.Parser, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.Default()
	}
	if parser == nil {
		parser = parse.NewParser(logger)
	}
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		parser:       parser,
		logger:       logger,
	}
}

func (s *InvoiceService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetInvoiceId()))
	if err != nil {
		s.logger.Error("invalid invoice_id format", "invoice_id", req.GetInvoiceId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "invoice_id must be a UUID")
	}

	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "invoice %s not found", id)
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	var customerID *uuid.UUID
	if cid := strings.TrimSpace(req.GetCustomerId()); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			s.logger.Error("invalid customer_id format for list invoices", "customer_id", cid, "error", err)
			return nil, status.Error(codes.InvalidArgument, "customer_id must be a UUID")
		}
		customerID = &id
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := time.ParseInLocation("2006-01-02", fd, time.UTC)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := time.ParseInLocation("2006-01-02", td, time.UTC)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing invoices", "customer_id", req.GetCustomerId(), "from_date", fromDate, "to_date", toDate)
	invoices, err := s.invoiceRepo.ListInvoices(ctx, customerID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}
	s.logger.Info("invoices listed successfully", "count", len(invoices))

	out := make([]*invoicespb.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoiceService) ListCustomers(ctx context.Context, _ *invoicespb.ListCustomersRequest) (*invoicespb.ListCustomersResponse, error) {
	rows, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list customers: %v", err)
	}
	out := make([]*invoicespb.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBCustomer(utils.ToCustomer(row)))
	}
	return &invoicespb.ListCustomersResponse{Customers: out}, nil
}

// ParseText runs the extraction engine over raw text without touching
// storage; form feeds mark page boundaries.
func (s *InvoiceService) ParseText(_ context.Context, req *invoicespb.ParseTextRequest) (*invoicespb.ParseTextResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	result := s.parser.ParseText(req.GetText())
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal result: %v", err)
	}
	if err := contract.ValidateResultJSON(raw); err != nil {
		s.logger.Error("parse result failed contract validation", "error", err)
		return nil, status.Errorf(codes.Internal, "result contract: %v", err)
	}

	return &invoicespb.ParseTextResponse{
		Success:    result.Success,
		ResultJson: string(raw),
		Error:      string(result.Error),
		Message:    result.Message,
	}, nil
}
