// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoice"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	// InvoiceNo holds the value of the "invoice_no" field.
	InvoiceNo *string `json:"invoice_no,omitempty"`
	// CodeNo holds the value of the "code_no" field.
	CodeNo *string `json:"code_no,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *string `json:"invoice_date,omitempty"`
	// Reference holds the value of the "reference" field.
	Reference *string `json:"reference,omitempty"`
	// SellerName holds the value of the "seller_name" field.
	SellerName *string `json:"seller_name,omitempty"`
	// SellerAddress holds the value of the "seller_address" field.
	SellerAddress *string `json:"seller_address,omitempty"`
	// SellerPhone holds the value of the "seller_phone" field.
	SellerPhone *string `json:"seller_phone,omitempty"`
	// SellerEmail holds the value of the "seller_email" field.
	SellerEmail *string `json:"seller_email,omitempty"`
	// SellerTaxID holds the value of the "seller_tax_id" field.
	SellerTaxID *string `json:"seller_tax_id,omitempty"`
	// SellerVatReg holds the value of the "seller_vat_reg" field.
	SellerVatReg *string `json:"seller_vat_reg,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// Tax holds the value of the "tax" field.
	Tax *float64 `json:"tax,omitempty"`
	// Total holds the value of the "total" field.
	Total *float64 `json:"total,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// Items holds the value of the items edge.
	Items []*InvoiceItem `json:"items,omitempty"`
	// Files holds the value of the files edge.
	Files []*InvoiceFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) ItemsOrErr() ([]*InvoiceItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) FilesOrErr() ([]*InvoiceFile, error) {
	if e.loadedTypes[2] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[3] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldCustomerID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.FieldSubtotal, invoice.FieldTax, invoice.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldInvoiceNo, invoice.FieldCodeNo, invoice.FieldInvoiceDate, invoice.FieldReference, invoice.FieldSellerName, invoice.FieldSellerAddress, invoice.FieldSellerPhone, invoice.FieldSellerEmail, invoice.FieldSellerTaxID, invoice.FieldSellerVatReg, invoice.FieldRawText:
			values[i] = new(sql.NullString)
		case invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldCustomerID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = new(uuid.UUID)
				*_m.CustomerID = *value.S.(*uuid.UUID)
			}
		case invoice.FieldInvoiceNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_no", values[i])
			} else if value.Valid {
				_m.InvoiceNo = new(string)
				*_m.InvoiceNo = value.String
			}
		case invoice.FieldCodeNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_no", values[i])
			} else if value.Valid {
				_m.CodeNo = new(string)
				*_m.CodeNo = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(string)
				*_m.InvoiceDate = value.String
			}
		case invoice.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = new(string)
				*_m.Reference = value.String
			}
		case invoice.FieldSellerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_name", values[i])
			} else if value.Valid {
				_m.SellerName = new(string)
				*_m.SellerName = value.String
			}
		case invoice.FieldSellerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_address", values[i])
			} else if value.Valid {
				_m.SellerAddress = new(string)
				*_m.SellerAddress = value.String
			}
		case invoice.FieldSellerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_phone", values[i])
			} else if value.Valid {
				_m.SellerPhone = new(string)
				*_m.SellerPhone = value.String
			}
		case invoice.FieldSellerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_email", values[i])
			} else if value.Valid {
				_m.SellerEmail = new(string)
				*_m.SellerEmail = value.String
			}
		case invoice.FieldSellerTaxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_tax_id", values[i])
			} else if value.Valid {
				_m.SellerTaxID = new(string)
				*_m.SellerTaxID = value.String
			}
		case invoice.FieldSellerVatReg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seller_vat_reg", values[i])
			} else if value.Valid {
				_m.SellerVatReg = new(string)
				*_m.SellerVatReg = value.String
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(float64)
				*_m.Subtotal = value.Float64
			}
		case invoice.FieldTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax", values[i])
			} else if value.Valid {
				_m.Tax = new(float64)
				*_m.Tax = value.Float64
			}
		case invoice.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = new(float64)
				*_m.Total = value.Float64
			}
		case invoice.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCustomer queries the "customer" edge of the Invoice entity.
func (_m *Invoice) QueryCustomer() *CustomerQuery {
	return NewInvoiceClient(_m.config).QueryCustomer(_m)
}

// QueryItems queries the "items" edge of the Invoice entity.
func (_m *Invoice) QueryItems() *InvoiceItemQuery {
	return NewInvoiceClient(_m.config).QueryItems(_m)
}

// QueryFiles queries the "files" edge of the Invoice entity.
func (_m *Invoice) QueryFiles() *InvoiceFileQuery {
	return NewInvoiceClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Invoice entity.
func (_m *Invoice) QueryJobs() *ExtractJobQuery {
	return NewInvoiceClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.CustomerID; v != nil {
		builder.WriteString("customer_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNo; v != nil {
		builder.WriteString("invoice_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CodeNo; v != nil {
		builder.WriteString("code_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reference; v != nil {
		builder.WriteString("reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerName; v != nil {
		builder.WriteString("seller_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerAddress; v != nil {
		builder.WriteString("seller_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerPhone; v != nil {
		builder.WriteString("seller_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerEmail; v != nil {
		builder.WriteString("seller_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerTaxID; v != nil {
		builder.WriteString("seller_tax_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SellerVatReg; v != nil {
		builder.WriteString("seller_vat_reg=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tax; v != nil {
		builder.WriteString("tax=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Total; v != nil {
		builder.WriteString("total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
