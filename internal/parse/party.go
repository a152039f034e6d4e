package parse

import (
	"regexp"
	"strings"
)

// sellerWindow bounds how deep into the document the seller masthead may
// reach; sellerDefaultLines is the assumed block when no boundary marker
// is found inside the window.
const (
	sellerWindow       = 8
	sellerDefaultLines = 2
	addressMaxFollow   = 6
)

var (
	reSellerBoundary = regexp.MustCompile(`(?i)Proforma|Invoice\b|\bPI\b|Customer\b|Bill\s*To|Date\b|Customer\s*Reference|Invoice\s*No|Code`)

	reSellerPhone = regexp.MustCompile(`(?i)(?:Tel\.?|Telephone|Phone)[:\s]*([+\d][\d\s\-/(),]{4,}\d)`)
	reEmailToken  = regexp.MustCompile(`([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)
	reSellerTaxID = regexp.MustCompile(`(?i)(?:Tax\s*ID|Tax\s*No\.?|Tax\s*Number)\s*(?:No\.?)?[:\s]*([A-Z0-9\-/]+)`)
	reSellerVAT   = regexp.MustCompile(`(?i)(?:VAT\s*Reg(?:\.|istration)?|VAT\s*No\.?|VAT)\s*(?:No\.?)?[:\s]*([A-Z0-9\-/]+)`)
	rePOBoxNumber = regexp.MustCompile(`(?i)P\.?O\.?\s*Box\s*(\d+)`)

	reCustomerName = regexp.MustCompile(`(?i)Customer\s*Name\s*[\t:]?\s*(.+?)(?:\s+Tel|\s+Fax|\s+Email|\s+Address|\s+Date|$)`)
	// OCR sometimes echoes the label into the captured value.
	reNameEchoTail = regexp.MustCompile(`(?i)(?:Customer\s*Name|Customer)\s*(?:Name)?(?:\s+Customer)?(?:\s+Name)?$`)
	reNameEchoHead = regexp.MustCompile(`(?i)^(?:Customer\s*Name|Customer)\s*(?:Name)?\s*`)

	reAddressLabel = regexp.MustCompile(`(?i)Address\s*[\t:]?\s*(.+?)(?:\s+(?:Cust\s+Ref|Tel|Fax|Email)\b.*)?$`)
	reAddressStop  = regexp.MustCompile(`(?i)^(?:Tel|Fax|Email|Cust\s+Ref|Ref\s+Date|Del\.?\s+Date|Attended|Kind|Reference|Code\s+No|Customer\s+Name|Pl\.?\s+No)\s*[\t:]`)
	reAddressTail  = regexp.MustCompile(`(?i)\s+(?:Cust\s+Ref|Ref\s+Date|Del\.?\s+Date|Attended|Kind|Reference)\b.*$`)
	reSellerNoise  = regexp.MustCompile(`(?i)Tax\s+ID|VAT\s+Reg|Dear\s+Sir|We\s+thank|Page\s+\d`)

	rePOBoxLine   = regexp.MustCompile(`(?i)P\.?O\.?\s*Box\s*\d+`)
	rePOBoxStop   = regexp.MustCompile(`(?i)^(?:Tel|Fax|Email|Attended|Kind|Reference|Dear\s+Sir|S\s*No|Item\s+Code)\s*[\t:]`)
	reCountryLine = regexp.MustCompile(`(?i)TANZANIA|UGANDA|KENYA|ETHIOPIA`)
	reAddressLike = regexp.MustCompile(`(?i)DAR\s*ES\s*SALAAM|PLOT\s*\d+|[A-Z]+\s*ROAD|P\.?O\.?\s*BOX`)

	rePhoneLabel = regexp.MustCompile(`(?i)(?:Tel|Phone)\s*[\t:]?\s*([\d][\d\s/\-]{5,})`)
	reDigit      = regexp.MustCompile(`\d`)
)

// SellerBlock is the classified top-of-document issuer masthead. Markers are
// lowercase tokens identifying the seller; any later line containing one is
// treated as seller text and excluded from customer extraction.
type SellerBlock struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	VATReg  string

	Boundary int // index of the first non-seller line
	markers  []string
}

// SplitSellerBlock classifies the seller masthead within the first
// sellerWindow lines. Lines strictly before the earliest document-type or
// customer marker form the seller block; with no marker in the window the
// block defaults to the first two lines.
func SplitSellerBlock(lines []string) SellerBlock {
	window := lines
	if len(window) > sellerWindow {
		window = window[:sellerWindow]
	}

	boundary := -1
	for i, l := range window {
		if reSellerBoundary.MatchString(l) {
			boundary = i
			break
		}
	}
	if boundary < 0 {
		boundary = sellerDefaultLines
		if boundary > len(window) {
			boundary = len(window)
		}
	}

	sb := SellerBlock{Boundary: boundary}
	if boundary == 0 {
		return sb
	}

	block := lines[:boundary]
	sb.Name = block[0]
	if len(block) > 1 {
		sb.Address = collapseSpaces(strings.Join(block[1:], " "))
	}

	text := strings.Join(block, "\n")
	if m := reSellerPhone.FindStringSubmatch(text); m != nil {
		sb.Phone = strings.TrimSpace(m[1])
	}
	if m := reEmailToken.FindStringSubmatch(text); m != nil {
		sb.Email = strings.TrimSpace(m[1])
	}
	if m := reSellerTaxID.FindStringSubmatch(text); m != nil {
		sb.TaxID = strings.TrimSpace(m[1])
	}
	if m := reSellerVAT.FindStringSubmatch(text); m != nil {
		sb.VATReg = strings.TrimSpace(m[1])
	}

	sb.markers = sellerMarkers(sb, text)
	return sb
}

// sellerMarkers derives the tokens that identify seller text downstream: the
// seller's name words, P.O. Box number, phone prefix, email and its domain,
// and tax/VAT registration ids.
func sellerMarkers(sb SellerBlock, blockText string) []string {
	var markers []string
	add := func(tok string) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if len(tok) < 3 {
			return
		}
		for _, m := range markers {
			if m == tok {
				return
			}
		}
		markers = append(markers, tok)
	}

	for _, w := range strings.Fields(sb.Name) {
		if len(w) >= 4 {
			add(w)
		}
	}
	if m := rePOBoxNumber.FindStringSubmatch(blockText); m != nil {
		add(m[1])
	}
	if sb.Phone != "" {
		digits := reDigit.FindAllString(sb.Phone, -1)
		if len(digits) >= 6 {
			add(strings.Join(digits[:6], ""))
		}
	}
	if sb.Email != "" {
		add(sb.Email)
		if at := strings.IndexByte(sb.Email, '@'); at >= 0 {
			add(sb.Email[at+1:])
		}
	}
	add(sb.TaxID)
	add(sb.VATReg)
	return markers
}

// IsSellerContext reports whether a line belongs to the seller, by marker
// token or by registration labels that only ever appear in the masthead.
func (sb SellerBlock) IsSellerContext(line string) bool {
	l := strings.ToLower(line)
	for _, m := range sb.markers {
		if strings.Contains(l, m) {
			return true
		}
	}
	return strings.Contains(l, "tax id") || strings.Contains(l, "vat reg")
}

// ExtractCustomerName finds the buyer's name via its label, stripping any
// echoed repetition of the label itself from the captured value.
func ExtractCustomerName(lines []string) string {
	for _, line := range lines {
		m := reCustomerName.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		name = strings.TrimSpace(reNameEchoTail.ReplaceAllString(name, ""))
		name = strings.TrimSpace(reNameEchoHead.ReplaceAllString(name, ""))
		parts := strings.Fields(name)
		if len(parts) > 1 && strings.EqualFold(parts[0], parts[len(parts)-1]) {
			name = strings.Join(parts[:len(parts)-1], " ")
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// ExtractCustomerAddress recovers the buyer's address. The primary strategy
// follows an "Address:" label across up to six continuation lines; the
// fallback anchors on a P.O. Box that does not belong to the seller and
// greedily keeps address-looking lines.
func ExtractCustomerAddress(lines []string, sb SellerBlock) string {
	if addr := addressFromLabel(lines, sb); addr != "" {
		return addr
	}
	return addressFromPOBox(lines, sb)
}

func addressFromLabel(lines []string, sb SellerBlock) string {
	for i, line := range lines {
		m := reAddressLabel.FindStringSubmatch(line)
		if m == nil || sb.IsSellerContext(line) {
			continue
		}
		parts := []string{strings.TrimSpace(m[1])}

		for j := i + 1; j < len(lines) && j <= i+addressMaxFollow; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if reAddressStop.MatchString(next) || reSellerNoise.MatchString(next) || sb.IsSellerContext(next) {
				break
			}
			if len(next) <= 2 {
				break
			}
			parts = append(parts, next)
		}

		addr := collapseSpaces(strings.Join(parts, " "))
		addr = collapseSpaces(reAddressTail.ReplaceAllString(addr, ""))
		if addr != "" {
			return addr
		}
	}
	return ""
}

func addressFromPOBox(lines []string, sb SellerBlock) string {
	for i, line := range lines {
		if !rePOBoxLine.MatchString(line) || sb.IsSellerContext(line) {
			continue
		}
		parts := []string{strings.TrimSpace(line)}

		for j := i + 1; j < len(lines) && j <= i+addressMaxFollow; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if rePOBoxStop.MatchString(next) || sb.IsSellerContext(next) {
				break
			}
			if reCountryLine.MatchString(next) || reAddressLike.MatchString(next) {
				parts = append(parts, next)
				continue
			}
			break
		}
		return collapseSpaces(strings.Join(parts, " "))
	}
	return ""
}

// ExtractCustomerPhone finds the buyer's phone, rejecting matches on lines
// that carry seller-identifying tokens (a "Tel" in the masthead is not the
// buyer's phone field).
func ExtractCustomerPhone(lines []string, sb SellerBlock) string {
	for _, line := range lines {
		m := rePhoneLabel.FindStringSubmatch(line)
		if m == nil || sb.IsSellerContext(line) {
			continue
		}
		phone := strings.TrimSpace(m[1])
		if len(reDigit.FindAllString(phone, -1)) >= 7 {
			return phone
		}
	}
	return ""
}

// ExtractCustomerEmail scans for email-shaped tokens, rejecting any whose
// owning line contains seller-identifying tokens.
func ExtractCustomerEmail(lines []string, sb SellerBlock) string {
	for _, line := range lines {
		if sb.IsSellerContext(line) {
			continue
		}
		for _, email := range reEmailToken.FindAllString(line, -1) {
			if len(email) <= 5 {
				continue
			}
			if sb.Email != "" && strings.EqualFold(email, sb.Email) {
				continue
			}
			return email
		}
	}
	return ""
}
