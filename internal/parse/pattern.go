package parse

import (
	"regexp"
	"strings"
)

// Rule is one label-anchored extraction alternative. Matcher must have a
// single capture group for the candidate value. Normalize (optional) cleans a
// raw capture before validation; Validate (optional) accepts or rejects it.
// AllowNextLine lets a label-only match take its value from the following
// line, which covers layouts where the extractor splits label and value.
type Rule struct {
	Matcher       *regexp.Regexp
	Normalize     func(string) string
	Validate      func(string) bool
	AllowNextLine bool
}

// PatternTable is an ordered list of rules for one header field. Tables are
// package-level constants built once at init and shared read-only across
// concurrent parse calls.
type PatternTable struct {
	Field string
	Rules []Rule
}

// FirstMatch scans lines in document order; within a line, rules apply in
// priority order. The first captured value that survives normalization and
// validation wins. No match returns "".
func (t PatternTable) FirstMatch(lines []string) string {
	for i, line := range lines {
		for _, r := range t.Rules {
			m := r.Matcher.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v := ""
			if len(m) > 1 {
				v = strings.TrimSpace(m[1])
			}
			if v == "" && r.AllowNextLine && i+1 < len(lines) {
				v = strings.TrimSpace(lines[i+1])
			}
			if r.Normalize != nil {
				v = strings.TrimSpace(r.Normalize(v))
			}
			if v == "" {
				continue
			}
			if r.Validate != nil && !r.Validate(v) {
				continue
			}
			return v
		}
	}
	return ""
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
