package constants

import "strings"

// DefaultUnit is assumed when a line item carries no recognizable UOM token.
const DefaultUnit = "PCS"

// ColumnUnits are the UOM tokens that appear as a dedicated column in the
// item table of a proforma invoice. Order matters: it is baked into the
// row-matching pattern.
var ColumnUnits = []string{
	"PCS", "NOS", "KG", "HR", "LTR", "PC", "UNT", "BOX", "SET", "UNIT",
	"PIECES", "TYRE", "TIRE",
}

// DescriptionUnits is the wider set of UOM tokens that may be embedded in a
// description when the table has no explicit unit column.
var DescriptionUnits = []string{
	"PCS", "NOS", "KG", "HR", "LTR", "PIECES", "UNITS", "UNIT", "KIT", "BOX",
	"CASE", "SETS", "SET", "PC", "UNT", "KTS", "BAG", "BUNDLE", "PACK",
	"CYLINDER", "LITRE", "TYRE", "TIRE",
}

// IsUnitToken reports whether tok (any case) is a known UOM token.
func IsUnitToken(tok string) bool {
	up := strings.ToUpper(tok)
	for _, u := range DescriptionUnits {
		if up == u {
			return true
		}
	}
	return false
}
