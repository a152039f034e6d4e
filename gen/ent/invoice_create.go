// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
	"github.com/amani-mollel/invoice-tracker/gen/ent/extractjob"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoice"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoicefile"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoiceitem"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetCustomerID sets the "customer_id" field.
func (_c *InvoiceCreate) SetCustomerID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerID(*v)
	}
	return _c
}

// SetInvoiceNo sets the "invoice_no" field.
func (_c *InvoiceCreate) SetInvoiceNo(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNo(v)
	return _c
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceNo(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceNo(*v)
	}
	return _c
}

// SetCodeNo sets the "code_no" field.
func (_c *InvoiceCreate) SetCodeNo(v string) *InvoiceCreate {
	_c.mutation.SetCodeNo(v)
	return _c
}

// SetNillableCodeNo sets the "code_no" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCodeNo(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCodeNo(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetReference sets the "reference" field.
func (_c *InvoiceCreate) SetReference(v string) *InvoiceCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableReference(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetSellerName sets the "seller_name" field.
func (_c *InvoiceCreate) SetSellerName(v string) *InvoiceCreate {
	_c.mutation.SetSellerName(v)
	return _c
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerName(*v)
	}
	return _c
}

// SetSellerAddress sets the "seller_address" field.
func (_c *InvoiceCreate) SetSellerAddress(v string) *InvoiceCreate {
	_c.mutation.SetSellerAddress(v)
	return _c
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerAddress(*v)
	}
	return _c
}

// SetSellerPhone sets the "seller_phone" field.
func (_c *InvoiceCreate) SetSellerPhone(v string) *InvoiceCreate {
	_c.mutation.SetSellerPhone(v)
	return _c
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerPhone(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerPhone(*v)
	}
	return _c
}

// SetSellerEmail sets the "seller_email" field.
func (_c *InvoiceCreate) SetSellerEmail(v string) *InvoiceCreate {
	_c.mutation.SetSellerEmail(v)
	return _c
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerEmail(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerEmail(*v)
	}
	return _c
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_c *InvoiceCreate) SetSellerTaxID(v string) *InvoiceCreate {
	_c.mutation.SetSellerTaxID(v)
	return _c
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerTaxID(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerTaxID(*v)
	}
	return _c
}

// SetSellerVatReg sets the "seller_vat_reg" field.
func (_c *InvoiceCreate) SetSellerVatReg(v string) *InvoiceCreate {
	_c.mutation.SetSellerVatReg(v)
	return _c
}

// SetNillableSellerVatReg sets the "seller_vat_reg" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSellerVatReg(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetSellerVatReg(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v float64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSubtotal(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetTax sets the "tax" field.
func (_c *InvoiceCreate) SetTax(v float64) *InvoiceCreate {
	_c.mutation.SetTax(v)
	return _c
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTax(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTax(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *InvoiceCreate) SetTotal(v float64) *InvoiceCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotal(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *InvoiceCreate) SetRawText(v string) *InvoiceCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableRawText(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *InvoiceCreate) SetCustomer(v *Customer) *InvoiceCreate {
	return _c.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_c *InvoiceCreate) AddItemIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_c *InvoiceCreate) AddItems(v ...*InvoiceItem) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_c *InvoiceCreate) AddFileIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_c *InvoiceCreate) AddFiles(v ...*InvoiceFile) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *InvoiceCreate) AddJobIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *InvoiceCreate) AddJobs(v ...*ExtractJob) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceNo(); ok {
		_spec.SetField(invoice.FieldInvoiceNo, field.TypeString, value)
		_node.InvoiceNo = &value
	}
	if value, ok := _c.mutation.CodeNo(); ok {
		_spec.SetField(invoice.FieldCodeNo, field.TypeString, value)
		_node.CodeNo = &value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(invoice.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
		_node.SellerName = &value
	}
	if value, ok := _c.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
		_node.SellerAddress = &value
	}
	if value, ok := _c.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
		_node.SellerPhone = &value
	}
	if value, ok := _c.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
		_node.SellerEmail = &value
	}
	if value, ok := _c.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
		_node.SellerTaxID = &value
	}
	if value, ok := _c.mutation.SellerVatReg(); ok {
		_spec.SetField(invoice.FieldSellerVatReg, field.TypeString, value)
		_node.SellerVatReg = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeFloat64, value)
		_node.Tax = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
