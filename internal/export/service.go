package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	"github.com/amani-mollel/invoice-tracker/internal/entity"
	"github.com/amani-mollel/invoice-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent           *ent.Client
	invoicesRepo  repository.InvoiceRepository
	customersRepo repository.CustomerRepository
	logger        *slog.Logger
}

func NewService(entc *ent.Client, invoices repository.InvoiceRepository, customers repository.CustomerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, invoicesRepo: invoices, customersRepo: customers, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) with one sheet of
// invoice summaries and one of line items, optionally filtered by customer
// and creation window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, customerID *uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invoices, err := s.invoicesRepo.ListInvoices(ctx, customerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	if err := s.writeInvoiceSheet(ctx, f, invoices); err != nil {
		return nil, err
	}
	if err := s.writeItemSheet(ctx, f, invoices); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeInvoiceSheet(ctx context.Context, f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "Invoices"
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	headers := []string{
		"Invoice No",
		"Date",
		"Customer",
		"Code No",
		"Reference",
		"Subtotal",
		"VAT",
		"Total",
		"Items",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		customerName := ""
		if inv.CustomerID != nil {
			if cust, err := s.customersRepo.GetByID(ctx, *inv.CustomerID); err == nil {
				customerName = cust.Name
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, strOr(inv.InvoiceNo))
		write(2, strOr(inv.InvoiceDate))
		write(3, customerName)
		write(4, strOr(inv.CodeNo))
		write(5, strOr(inv.Reference))
		write(6, moneyOr(inv.Subtotal))
		write(7, moneyOr(inv.Tax))
		write(8, moneyOr(inv.Total))
		write(9, len(inv.Items))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 32)
	_ = f.SetColWidth(sheet, "D", "E", 18)
	_ = f.SetColWidth(sheet, "F", "H", 16)
	return nil
}

func (s *Service) writeItemSheet(ctx context.Context, f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "Items"
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	headers := []string{
		"Invoice No",
		"Sr No",
		"Item Code",
		"Description",
		"Unit",
		"Qty",
		"Rate",
		"Value",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		items := inv.Items
		if len(items) == 0 {
			// list rows carry no items; load them per invoice
			full, err := s.invoicesRepo.GetByID(ctx, inv.ID)
			if err == nil {
				items = full.Items
			}
		}
		for i := range items {
			it := &items[i]
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, strOr(inv.InvoiceNo))
			write(2, it.SeqNo)
			write(3, strOr(it.ItemCode))
			write(4, truncate(it.Description, 140))
			write(5, it.Unit)
			write(6, it.Quantity)
			write(7, moneyOr(it.Rate))
			write(8, moneyOr(it.Value))
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 8)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 48)
	_ = f.SetColWidth(sheet, "E", "F", 10)
	_ = f.SetColWidth(sheet, "G", "H", 16)
	return nil
}

func ensureSheet(f *excelize.File, sheet string) error {
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	return nil
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyOr(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
