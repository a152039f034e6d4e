// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/amani-mollel/invoice-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCustomerID, v))
}

// InvoiceNo applies equality check predicate on the "invoice_no" field. It's identical to InvoiceNoEQ.
func InvoiceNo(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNo, v))
}

// CodeNo applies equality check predicate on the "code_no" field. It's identical to CodeNoEQ.
func CodeNo(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCodeNo, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldReference, v))
}

// SellerName applies equality check predicate on the "seller_name" field. It's identical to SellerNameEQ.
func SellerName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerName, v))
}

// SellerAddress applies equality check predicate on the "seller_address" field. It's identical to SellerAddressEQ.
func SellerAddress(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAddress, v))
}

// SellerPhone applies equality check predicate on the "seller_phone" field. It's identical to SellerPhoneEQ.
func SellerPhone(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerPhone, v))
}

// SellerEmail applies equality check predicate on the "seller_email" field. It's identical to SellerEmailEQ.
func SellerEmail(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerEmail, v))
}

// SellerTaxID applies equality check predicate on the "seller_tax_id" field. It's identical to SellerTaxIDEQ.
func SellerTaxID(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerTaxID, v))
}

// SellerVatReg applies equality check predicate on the "seller_vat_reg" field. It's identical to SellerVatRegEQ.
func SellerVatReg(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerVatReg, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// Tax applies equality check predicate on the "tax" field. It's identical to TaxEQ.
func Tax(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTax, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotal, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDIsNil applies the IsNil predicate on the "customer_id" field.
func CustomerIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldCustomerID))
}

// CustomerIDNotNil applies the NotNil predicate on the "customer_id" field.
func CustomerIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldCustomerID))
}

// InvoiceNoEQ applies the EQ predicate on the "invoice_no" field.
func InvoiceNoEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNo, v))
}

// InvoiceNoNEQ applies the NEQ predicate on the "invoice_no" field.
func InvoiceNoNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceNo, v))
}

// InvoiceNoIn applies the In predicate on the "invoice_no" field.
func InvoiceNoIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceNo, vs...))
}

// InvoiceNoNotIn applies the NotIn predicate on the "invoice_no" field.
func InvoiceNoNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceNo, vs...))
}

// InvoiceNoGT applies the GT predicate on the "invoice_no" field.
func InvoiceNoGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceNo, v))
}

// InvoiceNoGTE applies the GTE predicate on the "invoice_no" field.
func InvoiceNoGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceNo, v))
}

// InvoiceNoLT applies the LT predicate on the "invoice_no" field.
func InvoiceNoLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceNo, v))
}

// InvoiceNoLTE applies the LTE predicate on the "invoice_no" field.
func InvoiceNoLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceNo, v))
}

// InvoiceNoContains applies the Contains predicate on the "invoice_no" field.
func InvoiceNoContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceNo, v))
}

// InvoiceNoHasPrefix applies the HasPrefix predicate on the "invoice_no" field.
func InvoiceNoHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceNo, v))
}

// InvoiceNoHasSuffix applies the HasSuffix predicate on the "invoice_no" field.
func InvoiceNoHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceNo, v))
}

// InvoiceNoIsNil applies the IsNil predicate on the "invoice_no" field.
func InvoiceNoIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceNo))
}

// InvoiceNoNotNil applies the NotNil predicate on the "invoice_no" field.
func InvoiceNoNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceNo))
}

// InvoiceNoEqualFold applies the EqualFold predicate on the "invoice_no" field.
func InvoiceNoEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceNo, v))
}

// InvoiceNoContainsFold applies the ContainsFold predicate on the "invoice_no" field.
func InvoiceNoContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceNo, v))
}

// CodeNoEQ applies the EQ predicate on the "code_no" field.
func CodeNoEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCodeNo, v))
}

// CodeNoNEQ applies the NEQ predicate on the "code_no" field.
func CodeNoNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCodeNo, v))
}

// CodeNoIn applies the In predicate on the "code_no" field.
func CodeNoIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCodeNo, vs...))
}

// CodeNoNotIn applies the NotIn predicate on the "code_no" field.
func CodeNoNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCodeNo, vs...))
}

// CodeNoGT applies the GT predicate on the "code_no" field.
func CodeNoGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCodeNo, v))
}

// CodeNoGTE applies the GTE predicate on the "code_no" field.
func CodeNoGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCodeNo, v))
}

// CodeNoLT applies the LT predicate on the "code_no" field.
func CodeNoLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCodeNo, v))
}

// CodeNoLTE applies the LTE predicate on the "code_no" field.
func CodeNoLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCodeNo, v))
}

// CodeNoContains applies the Contains predicate on the "code_no" field.
func CodeNoContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldCodeNo, v))
}

// CodeNoHasPrefix applies the HasPrefix predicate on the "code_no" field.
func CodeNoHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldCodeNo, v))
}

// CodeNoHasSuffix applies the HasSuffix predicate on the "code_no" field.
func CodeNoHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldCodeNo, v))
}

// CodeNoIsNil applies the IsNil predicate on the "code_no" field.
func CodeNoIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldCodeNo))
}

// CodeNoNotNil applies the NotNil predicate on the "code_no" field.
func CodeNoNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldCodeNo))
}

// CodeNoEqualFold applies the EqualFold predicate on the "code_no" field.
func CodeNoEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldCodeNo, v))
}

// CodeNoContainsFold applies the ContainsFold predicate on the "code_no" field.
func CodeNoContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldCodeNo, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateContains applies the Contains predicate on the "invoice_date" field.
func InvoiceDateContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceDate, v))
}

// InvoiceDateHasPrefix applies the HasPrefix predicate on the "invoice_date" field.
func InvoiceDateHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceDate, v))
}

// InvoiceDateHasSuffix applies the HasSuffix predicate on the "invoice_date" field.
func InvoiceDateHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceDate))
}

// InvoiceDateEqualFold applies the EqualFold predicate on the "invoice_date" field.
func InvoiceDateEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceDate, v))
}

// InvoiceDateContainsFold applies the ContainsFold predicate on the "invoice_date" field.
func InvoiceDateContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceDate, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceIsNil applies the IsNil predicate on the "reference" field.
func ReferenceIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldReference))
}

// ReferenceNotNil applies the NotNil predicate on the "reference" field.
func ReferenceNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldReference))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldReference, v))
}

// SellerNameEQ applies the EQ predicate on the "seller_name" field.
func SellerNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerName, v))
}

// SellerNameNEQ applies the NEQ predicate on the "seller_name" field.
func SellerNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerName, v))
}

// SellerNameIn applies the In predicate on the "seller_name" field.
func SellerNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerName, vs...))
}

// SellerNameNotIn applies the NotIn predicate on the "seller_name" field.
func SellerNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerName, vs...))
}

// SellerNameGT applies the GT predicate on the "seller_name" field.
func SellerNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerName, v))
}

// SellerNameGTE applies the GTE predicate on the "seller_name" field.
func SellerNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerName, v))
}

// SellerNameLT applies the LT predicate on the "seller_name" field.
func SellerNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerName, v))
}

// SellerNameLTE applies the LTE predicate on the "seller_name" field.
func SellerNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerName, v))
}

// SellerNameContains applies the Contains predicate on the "seller_name" field.
func SellerNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerName, v))
}

// SellerNameHasPrefix applies the HasPrefix predicate on the "seller_name" field.
func SellerNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerName, v))
}

// SellerNameHasSuffix applies the HasSuffix predicate on the "seller_name" field.
func SellerNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerName, v))
}

// SellerNameIsNil applies the IsNil predicate on the "seller_name" field.
func SellerNameIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerName))
}

// SellerNameNotNil applies the NotNil predicate on the "seller_name" field.
func SellerNameNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerName))
}

// SellerNameEqualFold applies the EqualFold predicate on the "seller_name" field.
func SellerNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerName, v))
}

// SellerNameContainsFold applies the ContainsFold predicate on the "seller_name" field.
func SellerNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerName, v))
}

// SellerAddressEQ applies the EQ predicate on the "seller_address" field.
func SellerAddressEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerAddress, v))
}

// SellerAddressNEQ applies the NEQ predicate on the "seller_address" field.
func SellerAddressNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerAddress, v))
}

// SellerAddressIn applies the In predicate on the "seller_address" field.
func SellerAddressIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerAddress, vs...))
}

// SellerAddressNotIn applies the NotIn predicate on the "seller_address" field.
func SellerAddressNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerAddress, vs...))
}

// SellerAddressGT applies the GT predicate on the "seller_address" field.
func SellerAddressGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerAddress, v))
}

// SellerAddressGTE applies the GTE predicate on the "seller_address" field.
func SellerAddressGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerAddress, v))
}

// SellerAddressLT applies the LT predicate on the "seller_address" field.
func SellerAddressLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerAddress, v))
}

// SellerAddressLTE applies the LTE predicate on the "seller_address" field.
func SellerAddressLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerAddress, v))
}

// SellerAddressContains applies the Contains predicate on the "seller_address" field.
func SellerAddressContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerAddress, v))
}

// SellerAddressHasPrefix applies the HasPrefix predicate on the "seller_address" field.
func SellerAddressHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerAddress, v))
}

// SellerAddressHasSuffix applies the HasSuffix predicate on the "seller_address" field.
func SellerAddressHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerAddress, v))
}

// SellerAddressIsNil applies the IsNil predicate on the "seller_address" field.
func SellerAddressIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerAddress))
}

// SellerAddressNotNil applies the NotNil predicate on the "seller_address" field.
func SellerAddressNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerAddress))
}

// SellerAddressEqualFold applies the EqualFold predicate on the "seller_address" field.
func SellerAddressEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerAddress, v))
}

// SellerAddressContainsFold applies the ContainsFold predicate on the "seller_address" field.
func SellerAddressContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerAddress, v))
}

// SellerPhoneEQ applies the EQ predicate on the "seller_phone" field.
func SellerPhoneEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerPhone, v))
}

// SellerPhoneNEQ applies the NEQ predicate on the "seller_phone" field.
func SellerPhoneNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerPhone, v))
}

// SellerPhoneIn applies the In predicate on the "seller_phone" field.
func SellerPhoneIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerPhone, vs...))
}

// SellerPhoneNotIn applies the NotIn predicate on the "seller_phone" field.
func SellerPhoneNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerPhone, vs...))
}

// SellerPhoneGT applies the GT predicate on the "seller_phone" field.
func SellerPhoneGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerPhone, v))
}

// SellerPhoneGTE applies the GTE predicate on the "seller_phone" field.
func SellerPhoneGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerPhone, v))
}

// SellerPhoneLT applies the LT predicate on the "seller_phone" field.
func SellerPhoneLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerPhone, v))
}

// SellerPhoneLTE applies the LTE predicate on the "seller_phone" field.
func SellerPhoneLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerPhone, v))
}

// SellerPhoneContains applies the Contains predicate on the "seller_phone" field.
func SellerPhoneContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerPhone, v))
}

// SellerPhoneHasPrefix applies the HasPrefix predicate on the "seller_phone" field.
func SellerPhoneHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerPhone, v))
}

// SellerPhoneHasSuffix applies the HasSuffix predicate on the "seller_phone" field.
func SellerPhoneHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerPhone, v))
}

// SellerPhoneIsNil applies the IsNil predicate on the "seller_phone" field.
func SellerPhoneIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerPhone))
}

// SellerPhoneNotNil applies the NotNil predicate on the "seller_phone" field.
func SellerPhoneNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerPhone))
}

// SellerPhoneEqualFold applies the EqualFold predicate on the "seller_phone" field.
func SellerPhoneEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerPhone, v))
}

// SellerPhoneContainsFold applies the ContainsFold predicate on the "seller_phone" field.
func SellerPhoneContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerPhone, v))
}

// SellerEmailEQ applies the EQ predicate on the "seller_email" field.
func SellerEmailEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerEmail, v))
}

// SellerEmailNEQ applies the NEQ predicate on the "seller_email" field.
func SellerEmailNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerEmail, v))
}

// SellerEmailIn applies the In predicate on the "seller_email" field.
func SellerEmailIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerEmail, vs...))
}

// SellerEmailNotIn applies the NotIn predicate on the "seller_email" field.
func SellerEmailNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerEmail, vs...))
}

// SellerEmailGT applies the GT predicate on the "seller_email" field.
func SellerEmailGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerEmail, v))
}

// SellerEmailGTE applies the GTE predicate on the "seller_email" field.
func SellerEmailGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerEmail, v))
}

// SellerEmailLT applies the LT predicate on the "seller_email" field.
func SellerEmailLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerEmail, v))
}

// SellerEmailLTE applies the LTE predicate on the "seller_email" field.
func SellerEmailLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerEmail, v))
}

// SellerEmailContains applies the Contains predicate on the "seller_email" field.
func SellerEmailContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerEmail, v))
}

// SellerEmailHasPrefix applies the HasPrefix predicate on the "seller_email" field.
func SellerEmailHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerEmail, v))
}

// SellerEmailHasSuffix applies the HasSuffix predicate on the "seller_email" field.
func SellerEmailHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerEmail, v))
}

// SellerEmailIsNil applies the IsNil predicate on the "seller_email" field.
func SellerEmailIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerEmail))
}

// SellerEmailNotNil applies the NotNil predicate on the "seller_email" field.
func SellerEmailNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerEmail))
}

// SellerEmailEqualFold applies the EqualFold predicate on the "seller_email" field.
func SellerEmailEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerEmail, v))
}

// SellerEmailContainsFold applies the ContainsFold predicate on the "seller_email" field.
func SellerEmailContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerEmail, v))
}

// SellerTaxIDEQ applies the EQ predicate on the "seller_tax_id" field.
func SellerTaxIDEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerTaxID, v))
}

// SellerTaxIDNEQ applies the NEQ predicate on the "seller_tax_id" field.
func SellerTaxIDNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerTaxID, v))
}

// SellerTaxIDIn applies the In predicate on the "seller_tax_id" field.
func SellerTaxIDIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerTaxID, vs...))
}

// SellerTaxIDNotIn applies the NotIn predicate on the "seller_tax_id" field.
func SellerTaxIDNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerTaxID, vs...))
}

// SellerTaxIDGT applies the GT predicate on the "seller_tax_id" field.
func SellerTaxIDGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerTaxID, v))
}

// SellerTaxIDGTE applies the GTE predicate on the "seller_tax_id" field.
func SellerTaxIDGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerTaxID, v))
}

// SellerTaxIDLT applies the LT predicate on the "seller_tax_id" field.
func SellerTaxIDLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerTaxID, v))
}

// SellerTaxIDLTE applies the LTE predicate on the "seller_tax_id" field.
func SellerTaxIDLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerTaxID, v))
}

// SellerTaxIDContains applies the Contains predicate on the "seller_tax_id" field.
func SellerTaxIDContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerTaxID, v))
}

// SellerTaxIDHasPrefix applies the HasPrefix predicate on the "seller_tax_id" field.
func SellerTaxIDHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerTaxID, v))
}

// SellerTaxIDHasSuffix applies the HasSuffix predicate on the "seller_tax_id" field.
func SellerTaxIDHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerTaxID, v))
}

// SellerTaxIDIsNil applies the IsNil predicate on the "seller_tax_id" field.
func SellerTaxIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerTaxID))
}

// SellerTaxIDNotNil applies the NotNil predicate on the "seller_tax_id" field.
func SellerTaxIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerTaxID))
}

// SellerTaxIDEqualFold applies the EqualFold predicate on the "seller_tax_id" field.
func SellerTaxIDEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerTaxID, v))
}

// SellerTaxIDContainsFold applies the ContainsFold predicate on the "seller_tax_id" field.
func SellerTaxIDContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerTaxID, v))
}

// SellerVatRegEQ applies the EQ predicate on the "seller_vat_reg" field.
func SellerVatRegEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSellerVatReg, v))
}

// SellerVatRegNEQ applies the NEQ predicate on the "seller_vat_reg" field.
func SellerVatRegNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSellerVatReg, v))
}

// SellerVatRegIn applies the In predicate on the "seller_vat_reg" field.
func SellerVatRegIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSellerVatReg, vs...))
}

// SellerVatRegNotIn applies the NotIn predicate on the "seller_vat_reg" field.
func SellerVatRegNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSellerVatReg, vs...))
}

// SellerVatRegGT applies the GT predicate on the "seller_vat_reg" field.
func SellerVatRegGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSellerVatReg, v))
}

// SellerVatRegGTE applies the GTE predicate on the "seller_vat_reg" field.
func SellerVatRegGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSellerVatReg, v))
}

// SellerVatRegLT applies the LT predicate on the "seller_vat_reg" field.
func SellerVatRegLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSellerVatReg, v))
}

// SellerVatRegLTE applies the LTE predicate on the "seller_vat_reg" field.
func SellerVatRegLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSellerVatReg, v))
}

// SellerVatRegContains applies the Contains predicate on the "seller_vat_reg" field.
func SellerVatRegContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSellerVatReg, v))
}

// SellerVatRegHasPrefix applies the HasPrefix predicate on the "seller_vat_reg" field.
func SellerVatRegHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSellerVatReg, v))
}

// SellerVatRegHasSuffix applies the HasSuffix predicate on the "seller_vat_reg" field.
func SellerVatRegHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSellerVatReg, v))
}

// SellerVatRegIsNil applies the IsNil predicate on the "seller_vat_reg" field.
func SellerVatRegIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSellerVatReg))
}

// SellerVatRegNotNil applies the NotNil predicate on the "seller_vat_reg" field.
func SellerVatRegNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSellerVatReg))
}

// SellerVatRegEqualFold applies the EqualFold predicate on the "seller_vat_reg" field.
func SellerVatRegEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSellerVatReg, v))
}

// SellerVatRegContainsFold applies the ContainsFold predicate on the "seller_vat_reg" field.
func SellerVatRegContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSellerVatReg, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSubtotal))
}

// TaxEQ applies the EQ predicate on the "tax" field.
func TaxEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTax, v))
}

// TaxNEQ applies the NEQ predicate on the "tax" field.
func TaxNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTax, v))
}

// TaxIn applies the In predicate on the "tax" field.
func TaxIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTax, vs...))
}

// TaxNotIn applies the NotIn predicate on the "tax" field.
func TaxNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTax, vs...))
}

// TaxGT applies the GT predicate on the "tax" field.
func TaxGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTax, v))
}

// TaxGTE applies the GTE predicate on the "tax" field.
func TaxGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTax, v))
}

// TaxLT applies the LT predicate on the "tax" field.
func TaxLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTax, v))
}

// TaxLTE applies the LTE predicate on the "tax" field.
func TaxLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTax, v))
}

// TaxIsNil applies the IsNil predicate on the "tax" field.
func TaxIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTax))
}

// TaxNotNil applies the NotNil predicate on the "tax" field.
func TaxNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTax))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotal, v))
}

// TotalIsNil applies the IsNil predicate on the "total" field.
func TotalIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotal))
}

// TotalNotNil applies the NotNil predicate on the "total" field.
func TotalNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotal))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.InvoiceItem) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.InvoiceFile) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
