package parse

import (
	"regexp"
	"strings"
)

// Trailing payment terms, legal notices and signature-block text. A line
// matching any of these terminates item parsing for the page, and a match
// inside a description truncates it (see ScrubDescription).
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Payment\s*:`),
	regexp.MustCompile(`(?i)Cash/Chq\s+on\s+Delivery`),
	regexp.MustCompile(`(?i)Net\s+Value\s*:`),
	regexp.MustCompile(`(?i)Delivery\s*:`),
	regexp.MustCompile(`(?i)VAT\s*:`),
	regexp.MustCompile(`(?i)Gross\s+Value\s*:`),
	regexp.MustCompile(`(?i)Remarks?\s*:`),
	regexp.MustCompile(`(?i)NOTE\s+\d+\s*:`),
	regexp.MustCompile(`(?i)Looking\s+forward\s+to\s+your`),
	regexp.MustCompile(`(?i)Payment\s+in\s+TSHS`),
	regexp.MustCompile(`(?i)Duty\s+and\s+VAT\s+exemption`),
	regexp.MustCompile(`(?i)Authorised\s+Signatory`),
	regexp.MustCompile(`(?i)Valid\s+for\s+\d+\s+weeks`),
	regexp.MustCompile(`(?i)Discount\s+is\s+Valid`),
	regexp.MustCompile(`(?i)TSH\s+\d+[,.]\d+`),
	regexp.MustCompile(`(?i)Dear\s+Sir/Madam`),
	regexp.MustCompile(`(?i)We\s+thank\s+you`),
	regexp.MustCompile(`(?i)As\s+desired`),
}

// Keywords whose appearance inside an already-captured description marks the
// start of contaminating boilerplate; the description is cut at the first one.
var boilerplateKeywords = []string{
	"Payment", "Cash/Chq", "Net Value", "Delivery", "VAT", "Gross Value",
	"Remarks", "NOTE", "Looking forward", "TSHS", "Duty", "Authorised",
	"Valid for", "Discount", "Dear Sir/Madam", "We thank you", "As desired",
}

var boilerplateScrub = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(boilerplateKeywords))
	for i, kw := range boilerplateKeywords {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b.*$`)
	}
	return out
}()

// ContainsBoilerplate reports whether any payment/legal boilerplate keyword
// occurs anywhere in the line.
func ContainsBoilerplate(line string) bool {
	for _, re := range boilerplatePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// scrubLineTail removes boilerplate and everything after it from a row line,
// so mid-line contamination never reaches the row grammars.
func scrubLineTail(line string) string {
	for _, re := range boilerplatePatterns {
		if loc := re.FindStringIndex(line); loc != nil {
			line = line[:loc[0]]
		}
	}
	return strings.TrimSpace(line)
}

// ScrubDescription truncates a description at the first boilerplate keyword
// it contains. This guards against contamination that slipped past the
// per-line hard stop.
func ScrubDescription(desc string) string {
	for _, re := range boilerplateScrub {
		desc = re.ReplaceAllString(desc, "")
	}
	return strings.TrimSpace(desc)
}

var monetaryTotalLines = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:Net\s*Value|Gross\s*Value|Grand\s*Total|TOTAL)\s*[:\-]?\s*(?:TSH|TZS)?\s*[\d,]`),
	regexp.MustCompile(`(?i)^(?:VAT|Tax)\s*[:\-]?\s*(?:TSH|TZS)?\s*[\d,]`),
	regexp.MustCompile(`(?i)^Total\s+Amount\s*[:\-]?\s*[\d,]`),
}

func isMonetaryTotalLine(line string) bool {
	for _, re := range monetaryTotalLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

var sectionBreakLines = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Customer\s+Information`),
	regexp.MustCompile(`(?i)Thank\s+you`),
	regexp.MustCompile(`(?i)Notes?\s*:`),
	regexp.MustCompile(`(?i)Remarks?\s*:`),
	regexp.MustCompile(`(?i)Payment\s+Terms`),
}

func isSectionBreak(line string) bool {
	for _, re := range sectionBreakLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

var customerInfoLines = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Customer\s+Name`),
	regexp.MustCompile(`(?i)P\.?O\.?\s*Box`),
	regexp.MustCompile(`(?i)Code\s*No`),
	regexp.MustCompile(`(?i)PI\s*No`),
	regexp.MustCompile(`(?i)Proforma\s+Invoice`),
}

// isCustomerInfoLine marks lines that belong to the customer block and must
// be skipped (not parsed, not appended) during item extraction.
func isCustomerInfoLine(line string) bool {
	for _, re := range customerInfoLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

var pageFooterLines = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`),
	regexp.MustCompile(`^\d+$`), // bare page number
	regexp.MustCompile(`(?i)Authorised\s+Signatory`),
	regexp.MustCompile(`(?i)Thank\s+you`),
	regexp.MustCompile(`(?i)Terms\s+and\s+Conditions`),
}

func isPageFooter(line string) bool {
	for _, re := range pageFooterLines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// The five keyword groups a table header row is made of. A candidate must hit
// at least four.
var (
	reHdrSerial  = regexp.MustCompile(`(?i)\b(?:Sr|S\.?\s*No\.?|Serial|No\.|#)\b`)
	reHdrCode    = regexp.MustCompile(`(?i)\b(?:Item\s*Code|Code)\b`)
	reHdrDesc    = regexp.MustCompile(`(?i)\b(?:Description|Desc)\b`)
	reHdrQty     = regexp.MustCompile(`(?i)\b(?:Qty|Quantity)\b`)
	reHdrRateVal = regexp.MustCompile(`(?i)\b(?:Rate|Price|Value|Amount)\b`)
)

func isTableHeaderRow(line string) bool {
	hits := 0
	for _, re := range []*regexp.Regexp{reHdrSerial, reHdrCode, reHdrDesc, reHdrQty, reHdrRateVal} {
		if re.MatchString(line) {
			hits++
		}
	}
	return hits >= 4
}

// Continuation lines consisting of repeated column headers or stray
// currency/total/page tokens must not be appended to a description.
var reHeaderFragment = regexp.MustCompile(`(?i)\b(?:Description|Type|Qty|Rate|Value|TSH|Total|Page)\b`)

func isHeaderFragment(line string) bool {
	return reHeaderFragment.MatchString(line)
}
