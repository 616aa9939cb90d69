package models

import "fmt"

// OrderRow is one parsed row of the "Sales Order Entry" sheet. Cell values
// are kept as raw strings; normalization happens at emission time.
type OrderRow struct {
	Row          int // 1-based sheet row, header included
	DocNum       string
	DocDate      string
	DueDate      string
	CustomerCode string
	SalesCode    string
	BranchID     string
}

// LineItemRow is one parsed row of the "Line Items Entry" sheet.
type LineItemRow struct {
	Row         int
	ParentKey   string
	LineNum     string
	ItemCode    string
	Quantity    string
	UnitPrice   string
	Warehouse   string
	SalesCode   string
	AccountCode string
	VatGroup    string
	Dimensions  [5]string
	PermitNum   string
	Branch      string
}

// Batch holds the two input tables for one request. Rows with a blank
// primary key are dropped at parse time and never reach this struct.
type Batch struct {
	Orders []OrderRow
	Lines  []LineItemRow
}

// OrderKeySet returns the set of trimmed non-blank order numbers, used by
// line validation for the parent-reference check.
func (b *Batch) OrderKeySet() map[string]struct{} {
	keys := make(map[string]struct{}, len(b.Orders))
	for _, o := range b.Orders {
		keys[o.DocNum] = struct{}{}
	}
	return keys
}

// ValidationError is one row-level validation failure. Errors are values
// collected into a list, never raised as control flow.
type ValidationError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e ValidationError) String() string {
	if e.Row == 0 {
		return e.Message
	}
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}
