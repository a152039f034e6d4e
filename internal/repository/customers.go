package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
)

// CustomerFields carries the classification output used to create or refresh
// a customer row. Empty strings mean "not found" and never overwrite an
// existing value.
type CustomerFields struct {
	Name    string
	CodeNo  string
	Address string
	Phone   string
	Email   string
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Customer, error)
	GetByName(ctx context.Context, name string) (*ent.Customer, error)
	ListCustomers(ctx context.Context) ([]*ent.Customer, error)
	UpsertByName(ctx context.Context, fields CustomerFields) (*ent.Customer, error)
}

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Customer, error) {
	return r.client.Customer.Get(ctx, id)
}

func (r *customerRepository) GetByName(ctx context.Context, name string) (*ent.Customer, error) {
	return r.client.Customer.Query().
		Where(customer.Name(name)).
		Only(ctx)
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*ent.Customer, error) {
	rows, err := r.client.Customer.Query().Order(customer.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list customers", "error", err)
		return nil, err
	}
	return rows, nil
}

// UpsertByName matches on the exact extracted name. Fields present in this
// extraction fill gaps on the existing row; fields the extraction missed are
// left alone.
func (r *customerRepository) UpsertByName(ctx context.Context, fields CustomerFields) (*ent.Customer, error) {
	existing, err := r.GetByName(ctx, fields.Name)
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
		r.logger.Error("failed to look up customer", "name", fields.Name, "error", err)
		return nil, err
	}

	builder := r.client.Customer.Create().SetName(fields.Name)
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
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "name", fields.Name, "error", err)
		return nil, err
	}
	return row, nil
}
