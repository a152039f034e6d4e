// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
	"github.com/amani-mollel/invoice-tracker/gen/ent/extractjob"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoice"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoicefile"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoiceitem"
	"github.com/amani-mollel/invoice-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *InvoiceUpdate) SetCustomerID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *InvoiceUpdate) ClearCustomerID() *InvoiceUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *InvoiceUpdate) SetInvoiceNo(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// ClearInvoiceNo clears the value of the "invoice_no" field.
func (_u *InvoiceUpdate) ClearInvoiceNo() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNo()
	return _u
}

// SetCodeNo sets the "code_no" field.
func (_u *InvoiceUpdate) SetCodeNo(v string) *InvoiceUpdate {
	_u.mutation.SetCodeNo(v)
	return _u
}

// SetNillableCodeNo sets the "code_no" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCodeNo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCodeNo(*v)
	}
	return _u
}

// ClearCodeNo clears the value of the "code_no" field.
func (_u *InvoiceUpdate) ClearCodeNo() *InvoiceUpdate {
	_u.mutation.ClearCodeNo()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetReference sets the "reference" field.
func (_u *InvoiceUpdate) SetReference(v string) *InvoiceUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableReference(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *InvoiceUpdate) ClearReference() *InvoiceUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdate) SetSellerName(v string) *InvoiceUpdate {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// ClearSellerName clears the value of the "seller_name" field.
func (_u *InvoiceUpdate) ClearSellerName() *InvoiceUpdate {
	_u.mutation.ClearSellerName()
	return _u
}

// SetSellerAddress sets the "seller_address" field.
func (_u *InvoiceUpdate) SetSellerAddress(v string) *InvoiceUpdate {
	_u.mutation.SetSellerAddress(v)
	return _u
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerAddress(*v)
	}
	return _u
}

// ClearSellerAddress clears the value of the "seller_address" field.
func (_u *InvoiceUpdate) ClearSellerAddress() *InvoiceUpdate {
	_u.mutation.ClearSellerAddress()
	return _u
}

// SetSellerPhone sets the "seller_phone" field.
func (_u *InvoiceUpdate) SetSellerPhone(v string) *InvoiceUpdate {
	_u.mutation.SetSellerPhone(v)
	return _u
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerPhone(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerPhone(*v)
	}
	return _u
}

// ClearSellerPhone clears the value of the "seller_phone" field.
func (_u *InvoiceUpdate) ClearSellerPhone() *InvoiceUpdate {
	_u.mutation.ClearSellerPhone()
	return _u
}

// SetSellerEmail sets the "seller_email" field.
func (_u *InvoiceUpdate) SetSellerEmail(v string) *InvoiceUpdate {
	_u.mutation.SetSellerEmail(v)
	return _u
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerEmail(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerEmail(*v)
	}
	return _u
}

// ClearSellerEmail clears the value of the "seller_email" field.
func (_u *InvoiceUpdate) ClearSellerEmail() *InvoiceUpdate {
	_u.mutation.ClearSellerEmail()
	return _u
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_u *InvoiceUpdate) SetSellerTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetSellerTaxID(v)
	return _u
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerTaxID(*v)
	}
	return _u
}

// ClearSellerTaxID clears the value of the "seller_tax_id" field.
func (_u *InvoiceUpdate) ClearSellerTaxID() *InvoiceUpdate {
	_u.mutation.ClearSellerTaxID()
	return _u
}

// SetSellerVatReg sets the "seller_vat_reg" field.
func (_u *InvoiceUpdate) SetSellerVatReg(v string) *InvoiceUpdate {
	_u.mutation.SetSellerVatReg(v)
	return _u
}

// SetNillableSellerVatReg sets the "seller_vat_reg" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerVatReg(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerVatReg(*v)
	}
	return _u
}

// ClearSellerVatReg clears the value of the "seller_vat_reg" field.
func (_u *InvoiceUpdate) ClearSellerVatReg() *InvoiceUpdate {
	_u.mutation.ClearSellerVatReg()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdate) SetTax(v float64) *InvoiceUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTax(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceUpdate) AddTax(v float64) *InvoiceUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdate) ClearTax() *InvoiceUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdate) SetTotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdate) AddTotal(v float64) *InvoiceUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdate) ClearTotal() *InvoiceUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdate) SetRawText(v string) *InvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawText(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdate) ClearRawText() *InvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) SetCustomer(v *Customer) *InvoiceUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdate) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) AddFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) AddJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) ClearCustomer() *InvoiceUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) ClearFiles() *InvoiceUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdate) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdate) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdate) RemoveJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(invoice.FieldInvoiceNo, field.TypeString, value)
	}
	if _u.mutation.InvoiceNoCleared() {
		_spec.ClearField(invoice.FieldInvoiceNo, field.TypeString)
	}
	if value, ok := _u.mutation.CodeNo(); ok {
		_spec.SetField(invoice.FieldCodeNo, field.TypeString, value)
	}
	if _u.mutation.CodeNoCleared() {
		_spec.ClearField(invoice.FieldCodeNo, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(invoice.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(invoice.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if _u.mutation.SellerNameCleared() {
		_spec.ClearField(invoice.FieldSellerName, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
	}
	if _u.mutation.SellerAddressCleared() {
		_spec.ClearField(invoice.FieldSellerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
	}
	if _u.mutation.SellerPhoneCleared() {
		_spec.ClearField(invoice.FieldSellerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
	}
	if _u.mutation.SellerEmailCleared() {
		_spec.ClearField(invoice.FieldSellerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
	}
	if _u.mutation.SellerTaxIDCleared() {
		_spec.ClearField(invoice.FieldSellerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SellerVatReg(); ok {
		_spec.SetField(invoice.FieldSellerVatReg, field.TypeString, value)
	}
	if _u.mutation.SellerVatRegCleared() {
		_spec.ClearField(invoice.FieldSellerVatReg, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *InvoiceUpdateOne) SetCustomerID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *InvoiceUpdateOne) ClearCustomerID() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *InvoiceUpdateOne) SetInvoiceNo(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// ClearInvoiceNo clears the value of the "invoice_no" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNo() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNo()
	return _u
}

// SetCodeNo sets the "code_no" field.
func (_u *InvoiceUpdateOne) SetCodeNo(v string) *InvoiceUpdateOne {
	_u.mutation.SetCodeNo(v)
	return _u
}

// SetNillableCodeNo sets the "code_no" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCodeNo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCodeNo(*v)
	}
	return _u
}

// ClearCodeNo clears the value of the "code_no" field.
func (_u *InvoiceUpdateOne) ClearCodeNo() *InvoiceUpdateOne {
	_u.mutation.ClearCodeNo()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetReference sets the "reference" field.
func (_u *InvoiceUpdateOne) SetReference(v string) *InvoiceUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableReference(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *InvoiceUpdateOne) ClearReference() *InvoiceUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdateOne) SetSellerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// ClearSellerName clears the value of the "seller_name" field.
func (_u *InvoiceUpdateOne) ClearSellerName() *InvoiceUpdateOne {
	_u.mutation.ClearSellerName()
	return _u
}

// SetSellerAddress sets the "seller_address" field.
func (_u *InvoiceUpdateOne) SetSellerAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerAddress(v)
	return _u
}

// SetNillableSellerAddress sets the "seller_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerAddress(*v)
	}
	return _u
}

// ClearSellerAddress clears the value of the "seller_address" field.
func (_u *InvoiceUpdateOne) ClearSellerAddress() *InvoiceUpdateOne {
	_u.mutation.ClearSellerAddress()
	return _u
}

// SetSellerPhone sets the "seller_phone" field.
func (_u *InvoiceUpdateOne) SetSellerPhone(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerPhone(v)
	return _u
}

// SetNillableSellerPhone sets the "seller_phone" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerPhone(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerPhone(*v)
	}
	return _u
}

// ClearSellerPhone clears the value of the "seller_phone" field.
func (_u *InvoiceUpdateOne) ClearSellerPhone() *InvoiceUpdateOne {
	_u.mutation.ClearSellerPhone()
	return _u
}

// SetSellerEmail sets the "seller_email" field.
func (_u *InvoiceUpdateOne) SetSellerEmail(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerEmail(v)
	return _u
}

// SetNillableSellerEmail sets the "seller_email" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerEmail(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerEmail(*v)
	}
	return _u
}

// ClearSellerEmail clears the value of the "seller_email" field.
func (_u *InvoiceUpdateOne) ClearSellerEmail() *InvoiceUpdateOne {
	_u.mutation.ClearSellerEmail()
	return _u
}

// SetSellerTaxID sets the "seller_tax_id" field.
func (_u *InvoiceUpdateOne) SetSellerTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerTaxID(v)
	return _u
}

// SetNillableSellerTaxID sets the "seller_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerTaxID(*v)
	}
	return _u
}

// ClearSellerTaxID clears the value of the "seller_tax_id" field.
func (_u *InvoiceUpdateOne) ClearSellerTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearSellerTaxID()
	return _u
}

// SetSellerVatReg sets the "seller_vat_reg" field.
func (_u *InvoiceUpdateOne) SetSellerVatReg(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerVatReg(v)
	return _u
}

// SetNillableSellerVatReg sets the "seller_vat_reg" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerVatReg(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerVatReg(*v)
	}
	return _u
}

// ClearSellerVatReg clears the value of the "seller_vat_reg" field.
func (_u *InvoiceUpdateOne) ClearSellerVatReg() *InvoiceUpdateOne {
	_u.mutation.ClearSellerVatReg()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdateOne) SetTax(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTax(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceUpdateOne) AddTax(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdateOne) ClearTax() *InvoiceUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdateOne) SetTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdateOne) AddTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdateOne) ClearTotal() *InvoiceUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdateOne) SetRawText(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawText(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdateOne) ClearRawText() *InvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) SetCustomer(v *Customer) *InvoiceUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdateOne) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) AddFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) AddJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) ClearCustomer() *InvoiceUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) ClearFiles() *InvoiceUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdateOne) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdateOne) RemoveJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(invoice.FieldInvoiceNo, field.TypeString, value)
	}
	if _u.mutation.InvoiceNoCleared() {
		_spec.ClearField(invoice.FieldInvoiceNo, field.TypeString)
	}
	if value, ok := _u.mutation.CodeNo(); ok {
		_spec.SetField(invoice.FieldCodeNo, field.TypeString, value)
	}
	if _u.mutation.CodeNoCleared() {
		_spec.ClearField(invoice.FieldCodeNo, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(invoice.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(invoice.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if _u.mutation.SellerNameCleared() {
		_spec.ClearField(invoice.FieldSellerName, field.TypeString)
	}
	if value, ok := _u.mutation.SellerAddress(); ok {
		_spec.SetField(invoice.FieldSellerAddress, field.TypeString, value)
	}
	if _u.mutation.SellerAddressCleared() {
		_spec.ClearField(invoice.FieldSellerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.SellerPhone(); ok {
		_spec.SetField(invoice.FieldSellerPhone, field.TypeString, value)
	}
	if _u.mutation.SellerPhoneCleared() {
		_spec.ClearField(invoice.FieldSellerPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SellerEmail(); ok {
		_spec.SetField(invoice.FieldSellerEmail, field.TypeString, value)
	}
	if _u.mutation.SellerEmailCleared() {
		_spec.ClearField(invoice.FieldSellerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.SellerTaxID(); ok {
		_spec.SetField(invoice.FieldSellerTaxID, field.TypeString, value)
	}
	if _u.mutation.SellerTaxIDCleared() {
		_spec.ClearField(invoice.FieldSellerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SellerVatReg(); ok {
		_spec.SetField(invoice.FieldSellerVatReg, field.TypeString, value)
	}
	if _u.mutation.SellerVatRegCleared() {
		_spec.ClearField(invoice.FieldSellerVatReg, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
