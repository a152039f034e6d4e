package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDateValue  = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`)
	rePureNumber = regexp.MustCompile(`^\d+\.?\d*$`)
	reHasLetter  = regexp.MustCompile(`[A-Za-z]`)
	reHasDigit   = regexp.MustCompile(`\d`)
	reCodeShape  = regexp.MustCompile(`(?i)^[A-Z0-9/_-]{3,20}$`)
	reDatePrefix = regexp.MustCompile(`^\d{1,2}[/-]`)

	reRefTrailingLabels = regexp.MustCompile(`(?i)\s*(?:Date|Ref\s*Date|Del\.?\s*Date)\b.*$`)
)

// Labels that a loose code-number pattern tends to capture by mistake.
var codeStopWords = map[string]struct{}{
	"total": {}, "subtotal": {}, "vat": {}, "tax": {}, "amount": {},
	"invoice": {}, "proforma": {}, "customer": {}, "name": {}, "address": {},
	"phone": {}, "email": {}, "ref": {}, "reference": {}, "date": {},
	"terms": {}, "description": {}, "desc": {}, "qty": {}, "quantity": {},
	"rate": {}, "value": {}, "type": {},
}

var rePageWord = regexp.MustCompile(`(?i)^(?:page\d*|\d+of\d+)$`)

func validCodeNumber(candidate string) bool {
	if len(candidate) < 2 {
		return false
	}
	if reDateValue.MatchString(candidate) {
		return false
	}
	if rePureNumber.MatchString(candidate) {
		// Bare numbers above a plausible account-code magnitude are totals,
		// item codes or phone fragments, not a customer code.
		if len(candidate) > 6 {
			return false
		}
		if n, err := strconv.Atoi(candidate); err == nil && n > 100000 {
			return false
		}
	}
	if rePageWord.MatchString(candidate) {
		return false
	}
	if _, stop := codeStopWords[strings.ToLower(candidate)]; stop {
		return false
	}
	if reHasLetter.MatchString(candidate) {
		return true
	}
	if reHasDigit.MatchString(candidate) && len(candidate) <= 8 {
		return true
	}
	return reCodeShape.MatchString(candidate)
}

func validInvoiceNumber(candidate string) bool {
	return len(candidate) >= 3 && !reDateValue.MatchString(candidate)
}

func validReference(candidate string) bool {
	return len(candidate) >= 2 && !reDatePrefix.MatchString(candidate)
}

var invoiceNumberTable = PatternTable{
	Field: "invoice_number",
	Rules: []Rule{
		{
			Matcher:  regexp.MustCompile(`(?i)(?:PI|Invoice)\s*(?:No|Number|#|\.)\s*[:\-]?\s*([A-Z0-9\-]{3,30})`),
			Validate: validInvoiceNumber,
		},
		{
			Matcher:  regexp.MustCompile(`(?i)\b(?:PI|Invoice)\s*[:\-]\s*([A-Z0-9\-]{3,30})`),
			Validate: validInvoiceNumber,
		},
		{
			Matcher:       regexp.MustCompile(`(?i)^(?:PI|Invoice)\s*(?:No|Number)\.?\s*[:\-]?$`),
			Validate:      validInvoiceNumber,
			AllowNextLine: true,
		},
	},
}

var codeNumberTable = PatternTable{
	Field: "code_number",
	Rules: []Rule{
		{
			Matcher:  regexp.MustCompile(`(?i)Code\s*(?:No|Number|#)\s*[\t:\-]?\s*([A-Za-z0-9/_\-]{2,30})`),
			Validate: validCodeNumber,
		},
		{
			Matcher:  regexp.MustCompile(`(?i)(?:Customer\s*Code|Cust\.?\s*Code)\s*[\t:\-]?\s*([A-Za-z0-9/_\-]{2,30})`),
			Validate: validCodeNumber,
		},
		{
			Matcher:  regexp.MustCompile(`(?i)^Code\s*[:\-]\s*([A-Za-z0-9/_\-]{2,30})`),
			Validate: validCodeNumber,
		},
		{
			Matcher:       regexp.MustCompile(`(?i)^Code\s*(?:No|Number)\.?\s*[:\-]?$`),
			Validate:      validCodeNumber,
			AllowNextLine: true,
		},
		{
			Matcher:  regexp.MustCompile(`(?:^|\s)([A-Z]{1,4}\d{2,8}[A-Z]?)(?:\s|$)`),
			Validate: validCodeNumber,
		},
	},
}

var dateTable = PatternTable{
	Field: "date",
	Rules: []Rule{
		{
			Matcher: regexp.MustCompile(`(?i)(?:Invoice\s*Date|Date)\s*[\t:]?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		},
		{
			Matcher:       regexp.MustCompile(`(?i)^(?:Invoice\s*)?Date\s*[:\-]?$`),
			Validate:      reDateValue.MatchString,
			AllowNextLine: true,
		},
	},
}

var referenceTable = PatternTable{
	Field: "reference",
	Rules: []Rule{
		{
			Matcher: regexp.MustCompile(`(?i)(?:Reference|Cust\s*Ref|Ref\.?)\s*[:\-]\s*(.+)$`),
			Normalize: func(s string) string {
				return collapseSpaces(reRefTrailingLabels.ReplaceAllString(s, ""))
			},
			Validate: validReference,
		},
		{
			Matcher:  regexp.MustCompile(`(?i)\bRef\s+([A-Z0-9][A-Z0-9\s\-]{2,30})$`),
			Validate: validReference,
		},
		// Plate-style references printed without a label ("FOR T 964 DNA").
		{
			Matcher:  regexp.MustCompile(`(?i)\b(?:FOR|REF)\s+([A-Z]{1,3}\s*\d{1,4}\s*[A-Z]{2,3})\b`),
			Validate: validReference,
		},
	},
}

// ExtractHeaderFields recovers the labeled document-level fields. Each field
// is resolved independently; a field with no accepted match stays empty.
func ExtractHeaderFields(lines []string) (invoiceNumber, codeNumber, date, reference string) {
	invoiceNumber = invoiceNumberTable.FirstMatch(lines)
	codeNumber = codeNumberTable.FirstMatch(lines)
	date = dateTable.FirstMatch(lines)
	reference = referenceTable.FirstMatch(lines)
	return invoiceNumber, codeNumber, date, reference
}
