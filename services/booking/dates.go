package booking

import "strings"

// NormalizeDate canonicalizes a stored date value to "YYYY-MM-DD".
//
// Rows written by hand or re-formatted by the spreadsheet arrive as
// "DD/MM/YYYY"; any value containing '/' is treated as that form, split,
// zero-padded and reassembled. Values without '/' are assumed canonical
// already and pass through unchanged.
//
// A value with the wrong number of '/'-separated parts yields ("", false).
// The empty date can never equal a real query date, so such rows drop out of
// every occupancy count instead of failing the whole read.
func NormalizeDate(raw string) (string, bool) {
	if !strings.Contains(raw, "/") {
		return raw, true
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return "", false
	}
	day := padTwo(parts[0])
	month := padTwo(parts[1])
	year := parts[2]
	return year + "-" + month + "-" + day, true
}

func padTwo(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
