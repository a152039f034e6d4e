package parse

import (
	"regexp"
	"strings"
)

// Each label may be followed by an optional currency code token, then a
// numeric literal with grouping separators and up to two decimal digits.
const moneyTail = `\s*[:=\-]?\s*(?:TSH|TZS|UGX|KES|USD)?\s*([\d,]+(?:\.\d{1,2})?)`

var (
	subtotalLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Net\s*Value` + moneyTail),
		regexp.MustCompile(`(?i)Subtotal` + moneyTail),
		regexp.MustCompile(`(?i)Net\s*Amount` + moneyTail),
	}
	taxLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)VAT` + moneyTail),
		regexp.MustCompile(`(?i)Tax` + moneyTail),
		regexp.MustCompile(`(?i)GST` + moneyTail),
	}
	totalLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Gross\s*Value` + moneyTail),
		regexp.MustCompile(`(?i)Grand\s*Total` + moneyTail),
		regexp.MustCompile(`(?i)Total\s*Amount` + moneyTail),
	}

	reDecimal = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// ExtractTotals recovers subtotal/tax/total from the whole-document line
// stream. For each field the first matching label synonym, in priority order,
// wins; a value that fails decimal validation leaves the field unset.
func ExtractTotals(lines []string) Totals {
	return Totals{
		Subtotal: extractMonetary(lines, subtotalLabels),
		Tax:      extractMonetary(lines, taxLabels),
		Total:    extractMonetary(lines, totalLabels),
	}
}

func extractMonetary(lines []string, labels []*regexp.Regexp) string {
	for _, re := range labels {
		for _, line := range lines {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if v := normalizeDecimal(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// normalizeDecimal strips grouping separators and returns the literal only if
// it is a plain fixed-point decimal; anything else is treated as absent.
func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if !reDecimal.MatchString(s) {
		return ""
	}
	return s
}
