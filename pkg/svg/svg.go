// Package svg provides small helpers for emitting SVG markup by hand.
//
// wavetrace writes SVG the same way it writes any other text output:
// fmt.Fprintf into a bytes.Buffer. The helpers here cover the two things
// printf cannot: escaping text content safely and printing coordinates
// without trailing float noise.
package svg

import (
	"strconv"
	"strings"
)

// escaper handles the five characters that must never appear raw in
// SVG text content or attribute values.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape returns s with XML-special characters replaced by entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Num formats a coordinate with the minimal number of digits:
// integers print without a decimal point, fractional values print
// with only the digits they need.
func Num(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
