package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoice"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoiceitem"
	"github.com/amani-mollel/invoice-tracker/internal/entity"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/utils"
)

// CreateInvoiceRequest wraps parameters for persisting a parsed invoice.
type CreateInvoiceRequest struct {
	File   *ent.InvoiceFile
	JobID  uuid.UUID
	Result parse.Result
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, customerID *uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	CreateFromExtraction(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client    *ent.Client
	customers CustomerRepository
	logger    *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, customers CustomerRepository, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client:    client,
		customers: customers,
		logger:    logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.ID(id)).
		WithItems(func(q *ent.InvoiceItemQuery) {
			q.Order(invoiceitem.BySeqNo())
		}).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, customerID *uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if customerID != nil {
		q = q.Where(invoice.CustomerID(*customerID))
	}
	if fromDate != nil {
		q = q.Where(invoice.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(invoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

// CreateFromExtraction persists a successful parse in one transaction:
// customer upsert, invoice row, item rows, file link.
func (r *invoiceRepository) CreateFromExtraction(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error) {
	res := request.Result
	if !res.Success {
		return nil, fmt.Errorf("refusing to persist failed extraction (job %s)", request.JobID)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var customerID *uuid.UUID
	if res.Header.CustomerName != "" {
		cust, cerr := upsertCustomerTx(ctx, tx, CustomerFields{
			Name:    res.Header.CustomerName,
			CodeNo:  res.Header.CodeNumber,
			Address: res.Header.CustomerAddress,
			Phone:   res.Header.CustomerPhone,
			Email:   res.Header.CustomerEmail,
		})
		if cerr != nil {
			err = fmt.Errorf("upsert customer: %w", cerr)
			return nil, err
		}
		customerID = &cust.ID
	}

	builder := tx.Invoice.Create().
		SetNillableCustomerID(customerID).
		SetNillableSubtotal(dec(res.Totals.Subtotal)).
		SetNillableTax(dec(res.Totals.Tax)).
		SetNillableTotal(dec(res.Totals.Total))
	if res.Header.InvoiceNumber != "" {
		builder = builder.SetInvoiceNo(res.Header.InvoiceNumber)
	}
	if res.Header.CodeNumber != "" {
		builder = builder.SetCodeNo(res.Header.CodeNumber)
	}
	if res.Header.Date != "" {
		builder = builder.SetInvoiceDate(res.Header.Date)
	}
	if res.Header.Reference != "" {
		builder = builder.SetReference(res.Header.Reference)
	}
	if res.Header.SellerName != "" {
		builder = builder.SetSellerName(res.Header.SellerName)
	}
	if res.Header.SellerAddress != "" {
		builder = builder.SetSellerAddress(res.Header.SellerAddress)
	}
	if res.Header.SellerPhone != "" {
		builder = builder.SetSellerPhone(res.Header.SellerPhone)
	}
	if res.Header.SellerEmail != "" {
		builder = builder.SetSellerEmail(res.Header.SellerEmail)
	}
	if res.Header.SellerTaxID != "" {
		builder = builder.SetSellerTaxID(res.Header.SellerTaxID)
	}
	if res.Header.SellerVATReg != "" {
		builder = builder.SetSellerVatReg(res.Header.SellerVATReg)
	}
	if res.RawText != "" {
		builder = builder.SetRawText(res.RawText)
	}

	inv, err := builder.Save(ctx)
	if err != nil {
		err = fmt.Errorf("create invoice: %w", err)
		return nil, err
	}

	if len(res.Items) > 0 {
		bulk := make([]*ent.InvoiceItemCreate, len(res.Items))
		for i, it := range res.Items {
			c := tx.InvoiceItem.Create().
				SetInvoiceID(inv.ID).
				SetSeqNo(it.SequenceNumber).
				SetDescription(it.Description).
				SetUnit(it.Unit).
				SetQuantity(it.Quantity).
				SetNillableRate(dec(it.Rate)).
				SetNillableValue(dec(it.Value))
			if it.ItemCode != "" {
				c = c.SetItemCode(it.ItemCode)
			}
			bulk[i] = c
		}
		if _, err = tx.InvoiceItem.CreateBulk(bulk...).Save(ctx); err != nil {
			err = fmt.Errorf("create invoice items: %w", err)
			return nil, err
		}
	}

	if err = tx.InvoiceFile.UpdateOneID(request.File.ID).SetInvoiceID(inv.ID).Exec(ctx); err != nil {
		err = fmt.Errorf("link invoice file: %w", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	r.logger.Info("invoice persisted",
		"invoice_id", inv.ID,
		"invoice_no", res.Header.InvoiceNumber,
		"items", len(res.Items),
	)
	return r.GetByID(ctx, inv.ID)
}

// upsertCustomerTx mirrors CustomerRepository.UpsertByName inside an open
// transaction.
func upsertCustomerTx(ctx context.Context, tx *ent.Tx, fields CustomerFields) (*ent.Customer, error) {
	existing, err := tx.Customer.Query().
		Where(customer.Name(fields.Name)).
		Only(ctx)
	if err == nil {
		upd := existing.Update()
		if fields.CodeNo != "" && existing.CodeNo == nil {
			upd = upd.SetCodeNo(fields.CodeNo)
		}
		if fields.Address != "" && existing.Address == nil {
			upd = upd.SetAddress(fields.Address)
		}
		if fields.Phone != "" && existing.Phone == nil {
			upd = upd.SetPhone(fields.Phone)
		}
		if fields.Email != "" && existing.Email == nil {
			upd = upd.SetEmail(fields.Email)
		}
		return upd.Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	builder := tx.Customer.Create().SetName(fields.Name)
	if fields.CodeNo != "" {
		builder = builder.SetCodeNo(fields.CodeNo)
	}
	if fields.Address != "" {
		builder = builder.SetAddress(fields.Address)
	}
	if fields.Phone != "" {
		builder = builder.SetPhone(fields.Phone)
	}
	if fields.Email != "" {
		builder = builder.SetEmail(fields.Email)
	}
	return builder.Save(ctx)
}

// dec converts a verbatim decimal string to a nullable float for storage.
func dec(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
