package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amani-mollel/invoice-tracker/constants"
)

const (
	// headerScanWindow bounds how deep into a page the table header row may sit.
	headerScanWindow = 40
	// descriptionMaxLen caps a (possibly multi-line) item description.
	descriptionMaxLen = 255
)

var (
	reRowStart = regexp.MustCompile(`^\d{1,3}\.?\s+`)

	unitAlt = strings.Join(constants.ColumnUnits, "|")

	// Full fixed-layout rows: index, 4-15 digit code, description, then the
	// unit/quantity pair in either printed order, then rate and value.
	reRowUnitQty = regexp.MustCompile(`(?i)^(\d+)\.?\s+(\d{4,15})\s+(.+?)\s+(` + unitAlt + `)\s+(\d+)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)
	reRowQtyUnit = regexp.MustCompile(`(?i)^(\d+)\.?\s+(\d{4,15})\s+(.+?)\s+(\d+)\s+(` + unitAlt + `)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)
	reRowNoUnit  = regexp.MustCompile(`^(\d+)\.?\s+(\d{4,15})\s+(.+?)\s+(\d+)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)

	reMoneyToken = regexp.MustCompile(`^[\d,]+\.\d{2}$`)
	reAllDigits  = regexp.MustCompile(`^\d+$`)
	reAlnum      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// rowState tracks the item-under-construction accumulator.
type rowState int

const (
	stateIdle rowState = iota
	stateBuilding
)

type rowBuilder struct {
	state rowState
	item  LineItem
}

func (b *rowBuilder) start(item LineItem) {
	b.item = item
	b.state = stateBuilding
}

// appendContinuation extends the current description with a wrapped line.
func (b *rowBuilder) appendContinuation(line string) {
	if b.state != stateBuilding {
		return
	}
	if b.item.Description == "" {
		b.item.Description = line
	} else {
		b.item.Description += " " + line
	}
	b.item.Description = capDescription(ScrubDescription(b.item.Description))
}

// flush commits the pending item if its description is non-empty, then
// returns the builder to idle.
func (b *rowBuilder) flush(items []LineItem) []LineItem {
	if b.state == stateBuilding && b.item.Description != "" {
		items = append(items, b.item)
	}
	b.state = stateIdle
	b.item = LineItem{}
	return items
}

// ParsePageItems locates the item table on one page and parses its rows.
// The header row is matched at most once per page; no header means the page
// yields no items.
func ParsePageItems(lines []string) []LineItem {
	headerIdx := -1
	for i, line := range lines {
		if i >= headerScanWindow {
			break
		}
		if isTableHeaderRow(line) && !isCustomerInfoLine(line) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var items []LineItem
	var b rowBuilder

	for _, line := range lines[headerIdx+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// The stop check must run before row-start detection: trailing
		// summary text can begin with a digit and masquerade as a row.
		if isMonetaryTotalLine(line) || isSectionBreak(line) || ContainsBoilerplate(line) {
			items = b.flush(items)
			return items
		}

		if isCustomerInfoLine(line) || isPageFooter(line) {
			continue
		}

		if reRowStart.MatchString(line) {
			items = b.flush(items)
			if item, ok := parseRow(line); ok {
				b.start(item)
			}
			continue
		}

		if b.state == stateBuilding && !isHeaderFragment(line) {
			b.appendContinuation(line)
		}
	}

	return b.flush(items)
}

// parseRow applies the row grammars in priority order, falling back to a
// token scan for rows the fixed layouts cannot express.
func parseRow(line string) (LineItem, bool) {
	clean := scrubLineTail(line)
	if clean == "" {
		return LineItem{}, false
	}

	if m := reRowUnitQty.FindStringSubmatch(clean); m != nil {
		return rowFromMatch(m[2], m[3], strings.ToUpper(m[4]), m[5], m[6], m[7])
	}
	if m := reRowQtyUnit.FindStringSubmatch(clean); m != nil {
		return rowFromMatch(m[2], m[3], strings.ToUpper(m[5]), m[4], m[6], m[7])
	}
	if m := reRowNoUnit.FindStringSubmatch(clean); m != nil {
		return rowFromMatch(m[2], m[3], unitFromDescription(m[3]), m[4], m[5], m[6])
	}
	return tokenScanRow(clean)
}

func rowFromMatch(code, desc, unit, qty, rate, value string) (LineItem, bool) {
	item := LineItem{
		ItemCode:    code,
		Description: capDescription(ScrubDescription(collapseSpaces(desc))),
		Unit:        unit,
		Quantity:    1,
		Rate:        normalizeDecimal(rate),
		Value:       normalizeDecimal(value),
	}
	if n, err := strconv.Atoi(qty); err == nil && n >= 1 {
		item.Quantity = n
	}
	if item.Description == "" {
		return LineItem{}, false
	}
	return item, true
}

// tokenScanRow classifies whitespace-split tokens heuristically: the first
// unused 4+-character digit-bearing token is the code, the first bare integer
// in 1..10000 is the quantity, decimal tokens become rate then value (a lone
// decimal is the value), UOM tokens become the unit, and the remainder is the
// description. Quasi-numeric tokens that fail decimal validation are dropped
// rather than folded into the description.
func tokenScanRow(line string) (LineItem, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return LineItem{}, false
	}
	if !reAllDigits.MatchString(strings.TrimSuffix(fields[0], ".")) {
		return LineItem{}, false
	}

	var (
		code     string
		unit     string
		qty      int
		decimals []string
		descrip  []string
	)

	for _, tok := range fields[1:] {
		switch {
		case reMoneyToken.MatchString(tok):
			if v := normalizeDecimal(tok); v != "" {
				decimals = append(decimals, v)
			}
		case unit == "" && constants.IsUnitToken(tok):
			unit = strings.ToUpper(tok)
		case code == "" && len(tok) >= 4 && reAlnum.MatchString(tok) && reHasDigit.MatchString(tok):
			code = tok
		case qty == 0 && reAllDigits.MatchString(tok):
			if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= 10000 {
				qty = n
				continue
			}
			descrip = append(descrip, tok)
		case reHasDigit.MatchString(tok) && strings.ContainsAny(tok, ".,") && !reMoneyToken.MatchString(tok) && !reAlnum.MatchString(tok):
			// malformed numeric column; prefer an absent number over a wrong one
		default:
			descrip = append(descrip, tok)
		}
	}

	item := LineItem{
		ItemCode:    code,
		Description: capDescription(ScrubDescription(collapseSpaces(strings.Join(descrip, " ")))),
		Unit:        unit,
		Quantity:    1,
	}
	if item.Description == "" {
		return LineItem{}, false
	}
	if item.Unit == "" {
		item.Unit = unitFromDescription(item.Description)
	}
	if qty > 0 {
		item.Quantity = qty
	}
	switch len(decimals) {
	case 0:
	case 1:
		// Ambiguous column split: the last numeric token is the value.
		item.Value = decimals[0]
	default:
		item.Rate = decimals[0]
		item.Value = decimals[len(decimals)-1]
	}
	return item, true
}

// unitFromDescription finds a UOM token embedded in the description, or
// defaults to PCS.
func unitFromDescription(desc string) string {
	for _, tok := range strings.Fields(desc) {
		if constants.IsUnitToken(tok) {
			return strings.ToUpper(tok)
		}
	}
	return constants.DefaultUnit
}

func capDescription(desc string) string {
	if len(desc) > descriptionMaxLen {
		desc = strings.TrimSpace(desc[:descriptionMaxLen])
	}
	return desc
}
