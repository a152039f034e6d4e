package parse

// RawPage is one page of extractor output: ordered, trimmed, non-empty lines.
// Pages are immutable inputs scoped to a single Parse call.
type RawPage struct {
	PageNumber int      `json:"page_number"`
	Lines      []string `json:"lines"`
}

// Header carries document-level fields recovered from the invoice text.
// Every field is independently optional; an empty string means the field was
// not found, never that it was zero.
type Header struct {
	InvoiceNumber   string `json:"invoice_number,omitempty"`
	CodeNumber      string `json:"code_number,omitempty"`
	Date            string `json:"date,omitempty"` // dd/mm/yyyy as printed, not reparsed
	Reference       string `json:"reference,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	SellerName      string `json:"seller_name,omitempty"`
	SellerAddress   string `json:"seller_address,omitempty"`
	SellerPhone     string `json:"seller_phone,omitempty"`
	SellerEmail     string `json:"seller_email,omitempty"`
	SellerTaxID     string `json:"seller_tax_id,omitempty"`
	SellerVATReg    string `json:"seller_vat_reg,omitempty"`
}

// Totals carries the printed monetary totals as verbatim fixed-point decimal
// strings (grouping separators stripped, no recomputation or rounding).
type Totals struct {
	Subtotal string `json:"subtotal,omitempty"`
	Tax      string `json:"tax,omitempty"`
	Total    string `json:"total,omitempty"`
}

// LineItem is one parsed row of the item table. Rate and Value are decimal
// strings taken exactly as printed; empty means the column was absent or
// unparseable, never zero.
type LineItem struct {
	SequenceNumber int    `json:"sequence_number"`
	ItemCode       string `json:"item_code,omitempty"`
	Description    string `json:"description"`
	Unit           string `json:"unit"`
	Quantity       int    `json:"quantity"`
	Rate           string `json:"rate,omitempty"`
	Value          string `json:"value,omitempty"`
}

// ErrorKind classifies the only whole-parse failures. Per-field extraction is
// best-effort and never short-circuits the parse.
type ErrorKind string

const (
	ErrEmptyInput        ErrorKind = "empty_input"
	ErrUnsupportedFormat ErrorKind = "unsupported_format"
	ErrNoTextExtracted   ErrorKind = "no_text_extracted"
	ErrParsingFailed     ErrorKind = "parsing_failed"
)

// Result is the complete outcome of one parse invocation. It is always
// well-formed: a failed parse carries Success=false, an ErrorKind and the raw
// text for the manual-entry fallback.
type Result struct {
	Success bool       `json:"success"`
	Header  Header     `json:"header"`
	Totals  Totals     `json:"totals"`
	Items   []LineItem `json:"items"`
	RawText string     `json:"raw_text"`
	Error   ErrorKind  `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}
