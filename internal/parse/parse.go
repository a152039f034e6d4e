// Package parse recovers structured proforma-invoice records from free-form
// document text. The engine is deterministic and pure: pattern tables are
// process-wide read-only constants, every invocation allocates its own result
// graph, and concurrent parses need no synchronization.
package parse

import (
	"log/slog"
	"strings"
)

// Parser runs the full extraction over a page stream. The zero value is not
// usable; construct with NewParser.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse extracts header fields, party identities, monetary totals and line
// items from ordered pages. It never returns an error: failures come back as
// a well-formed Result with Success=false and the raw text preserved for the
// manual-entry fallback.
func (p *Parser) Parse(pages []RawPage) Result {
	rawText := joinPages(pages)
	all := allLines(pages)
	if len(all) == 0 {
		return Result{
			Success: false,
			Error:   ErrNoTextExtracted,
			Message: "no readable text found in document",
		}
	}

	var header Header

	sb := SplitSellerBlock(all)
	header.SellerName = sb.Name
	header.SellerAddress = sb.Address
	header.SellerPhone = sb.Phone
	header.SellerEmail = sb.Email
	header.SellerTaxID = sb.TaxID
	header.SellerVATReg = sb.VATReg

	// Once classified, the seller block is permanently excluded from the
	// text searched for customer fields.
	working := all[sb.Boundary:]
	header.CustomerName = ExtractCustomerName(working)
	header.CustomerAddress = ExtractCustomerAddress(working, sb)
	header.CustomerPhone = ExtractCustomerPhone(working, sb)
	header.CustomerEmail = ExtractCustomerEmail(working, sb)

	header.InvoiceNumber, header.CodeNumber, header.Date, header.Reference = ExtractHeaderFields(all)

	totals := ExtractTotals(all)
	items := AggregateItems(pages)

	if header.CustomerName == "" && header.InvoiceNumber == "" && len(items) == 0 && totals.Total == "" {
		p.logger.Warn("invoice parse produced no structured data", "pages", len(pages))
		return Result{
			Success: false,
			Error:   ErrParsingFailed,
			Message: "could not extract structured data from document",
			RawText: rawText,
		}
	}

	p.logger.Info("invoice parsed",
		"pages", len(pages),
		"items", len(items),
		"invoice_no", header.InvoiceNumber,
		"customer", header.CustomerName,
	)
	return Result{
		Success: true,
		Header:  header,
		Totals:  totals,
		Items:   items,
		RawText: rawText,
	}
}

// ParseText accepts the equivalent single-string representation; form feeds
// mark page boundaries, as emitted by pdftotext.
func (p *Parser) ParseText(text string) Result {
	return p.Parse(SplitPages(text))
}

// SplitPages turns concatenated document text into ordered pages of ordered,
// trimmed, non-empty lines. Pages with no recoverable text are dropped.
func SplitPages(text string) []RawPage {
	var pages []RawPage
	for _, chunk := range strings.Split(text, "\f") {
		var lines []string
		for _, l := range strings.Split(chunk, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}
		pages = append(pages, RawPage{PageNumber: len(pages) + 1, Lines: lines})
	}
	return pages
}

func allLines(pages []RawPage) []string {
	var all []string
	for _, p := range pages {
		all = append(all, p.Lines...)
	}
	return all
}

func joinPages(pages []RawPage) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(strings.Join(p.Lines, "\n"))
	}
	return b.String()
}
