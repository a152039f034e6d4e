package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an invoice for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	InvoiceNo     *string    `json:"invoice_no,omitempty"`
	CodeNo        *string    `json:"code_no,omitempty"`
	InvoiceDate   *string    `json:"invoice_date,omitempty"` // dd/mm/yyyy as printed
	Reference     *string    `json:"reference,omitempty"`
	SellerName    *string    `json:"seller_name,omitempty"`
	SellerAddress *string    `json:"seller_address,omitempty"`
	SellerPhone   *string    `json:"seller_phone,omitempty"`
	SellerEmail   *string    `json:"seller_email,omitempty"`
	SellerTaxID   *string    `json:"seller_tax_id,omitempty"`
	SellerVATReg  *string    `json:"seller_vat_reg,omitempty"`
	Subtotal      *float64   `json:"subtotal,omitempty"`
	Tax           *float64   `json:"tax,omitempty"`
	Total         *float64   `json:"total,omitempty"`
	RawText       *string    `json:"raw_text,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Items []InvoiceItem `json:"items,omitempty"`
}

// InvoiceItem represents one invoice table row for data transfer between layers.
type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	SeqNo       int       `json:"seq_no"`
	ItemCode    *string   `json:"item_code,omitempty"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	Quantity    int       `json:"quantity"`
	Rate        *float64  `json:"rate,omitempty"`
	Value       *float64  `json:"value,omitempty"`
}
