package dtw

import (
	"strconv"
	"strings"
)

// FieldValue normalizes a raw cell value for emission into a DTW record.
// Spreadsheet numerics that carry a decimal point but no fractional part
// render as integer literals ("5.0" becomes "5"); everything else is the
// trimmed cell text; a blank cell stays an empty string.
func FieldValue(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// FieldValueOrDefault is FieldValue with a fallback for blank cells,
// used for the branch/rate columns that default to 9.
func FieldValueOrDefault(raw, def string) string {
	if v := FieldValue(raw); v != "" {
		return v
	}
	return def
}
