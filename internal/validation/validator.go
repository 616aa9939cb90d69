// Package validation checks parsed order batches against the DTW entry
// rules. Errors are collected exhaustively: every violated rule on every
// row is reported, and validation never mutates its input.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neoasia/dtw-salesorder/internal/dtw"
	"github.com/neoasia/dtw-salesorder/internal/models"
)

// ValidateBatch runs order validation, derives the valid order key set,
// and runs line validation against it. The order table is always checked
// before the lines because the parent-reference check depends on it.
func ValidateBatch(batch *models.Batch) []models.ValidationError {
	errs := ValidateOrders(batch.Orders)
	errs = append(errs, ValidateLines(batch.Lines, batch.OrderKeySet())...)
	return errs
}

// ValidateOrders checks every order row for required fields, date format
// and duplicate order numbers. An empty table yields a single sentinel
// error so "nothing to validate" is distinguishable from "clean".
func ValidateOrders(orders []models.OrderRow) []models.ValidationError {
	var errs []models.ValidationError

	if len(orders) == 0 {
		return append(errs, models.ValidationError{
			Message: "No orders found in 'Sales Order Entry' sheet",
		})
	}

	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		// Only second-and-later occurrences are flagged; the first row
		// holding a key is considered the legitimate one.
		if _, dup := seen[o.DocNum]; dup {
			errs = append(errs, rowErr(o.Row, "Duplicate Order # '%s'", o.DocNum))
		}
		seen[o.DocNum] = struct{}{}

		if o.DocDate == "" {
			errs = append(errs, rowErr(o.Row, "Document Date is required"))
		} else if !ValidDateFormat(o.DocDate) {
			errs = append(errs, rowErr(o.Row, "Document Date must be YYYYMMDD format"))
		}

		if o.DueDate == "" {
			errs = append(errs, rowErr(o.Row, "Due Date is required"))
		} else if !ValidDateFormat(o.DueDate) {
			errs = append(errs, rowErr(o.Row, "Due Date must be YYYYMMDD format"))
		}

		if o.CustomerCode == "" {
			errs = append(errs, rowErr(o.Row, "Customer Code is required"))
		}
		if o.SalesCode == "" {
			errs = append(errs, rowErr(o.Row, "Sales Code is required"))
		}
	}

	return errs
}

// ValidateLines checks every line row for required fields, positive
// quantity and membership of the parent key in validKeys.
func ValidateLines(lines []models.LineItemRow, validKeys map[string]struct{}) []models.ValidationError {
	var errs []models.ValidationError

	if len(lines) == 0 {
		return append(errs, models.ValidationError{
			Message: "No line items found in 'Line Items Entry' sheet",
		})
	}

	for _, l := range lines {
		if _, ok := validKeys[l.ParentKey]; !ok {
			errs = append(errs, rowErr(l.Row, "Parent Order # '%s' not found in Order Headers", l.ParentKey))
		}

		if l.LineNum == "" {
			errs = append(errs, rowErr(l.Row, "Line # is required"))
		}
		if l.ItemCode == "" {
			errs = append(errs, rowErr(l.Row, "Item Code is required"))
		}

		// Missing and non-positive are two distinct conditions; a present
		// but unparseable quantity counts as non-positive.
		if l.Quantity == "" {
			errs = append(errs, rowErr(l.Row, "Quantity is required"))
		} else if qty, err := strconv.ParseFloat(dtw.FieldValue(l.Quantity), 64); err != nil || qty <= 0 {
			errs = append(errs, rowErr(l.Row, "Quantity must be positive"))
		}

		if l.Warehouse == "" {
			errs = append(errs, rowErr(l.Row, "Warehouse is required"))
		}
		if l.SalesCode == "" {
			errs = append(errs, rowErr(l.Row, "Sales Code is required"))
		}
		if l.AccountCode == "" {
			errs = append(errs, rowErr(l.Row, "Account Code is required"))
		}
		if l.VatGroup == "" {
			errs = append(errs, rowErr(l.Row, "VAT Group is required"))
		}
	}

	return errs
}

// ValidDateFormat reports whether the value normalizes to an 8-digit
// string decomposable into year 1900-2100, month 1-12 and day 1-31.
// There is no calendar check; Feb 31 passes, matching the import target's
// own leniency at this stage.
func ValidDateFormat(raw string) bool {
	s := dtw.FieldValue(raw)
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	return year >= 1900 && year <= 2100 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// FormatErrors renders errors for display, capped at limit entries with a
// trailing count of the omitted remainder. The cap is presentation only;
// callers always receive the complete list from the validators.
func FormatErrors(errs []models.ValidationError, limit int) []string {
	if limit <= 0 || len(errs) <= limit {
		limit = len(errs)
	}
	out := make([]string, 0, limit+1)
	for _, e := range errs[:limit] {
		out = append(out, e.String())
	}
	if rest := len(errs) - limit; rest > 0 {
		out = append(out, fmt.Sprintf("... and %d more errors", rest))
	}
	return out
}

func rowErr(row int, format string, args ...interface{}) models.ValidationError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return models.ValidationError{Row: row, Message: strings.TrimSpace(msg)}
}
