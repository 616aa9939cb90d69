// Package workbook reads uploaded entry workbooks into batches and builds
// the blank entry template. All spreadsheet access goes through excelize.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/neoasia/dtw-salesorder/internal/models"
)

// Required sheet names of the entry workbook.
const (
	OrderSheet = "Sales Order Entry"
	LineSheet  = "Line Items Entry"
)

// Column labels of the order entry sheet.
const (
	colOrderNum     = "Order #"
	colDocumentDate = "Document Date"
	colDueDate      = "Due Date"
	colCustomerCode = "Customer Code"
	colBranchID     = "Branch ID"
)

// Column labels of the line items sheet. "Sales Code" appears on both
// sheets and is shared.
const (
	colSalesCode   = "Sales Code"
	colParentOrder = "Parent Order #"
	colLineNum     = "Line #"
	colItemCode    = "Item Code"
	colQuantity    = "Quantity"
	colUnitPrice   = "Unit Price"
	colWarehouse   = "Warehouse"
	colAccountCode = "Account Code"
	colVatGroup    = "VAT Group"
	colPermitNum   = "Permit #"
	colBranch      = "Branch"
)

var dimColumns = [5]string{"Dim 1", "Dim 2", "Dim 3", "Dim 4", "Dim 5"}

// MissingSheetsError is the structural precondition failure for a workbook
// that lacks one or both required sheets. Reported before any row parsing.
type MissingSheetsError struct {
	Sheets []string
}

func (e *MissingSheetsError) Error() string {
	return fmt.Sprintf("missing required sheets: %s", strings.Join(e.Sheets, ", "))
}

// Parse reads an entry workbook into a batch. Rows whose primary key cell
// is blank are dropped here, once, so neither the validators nor the
// generators ever see them; surviving rows keep their original sheet row
// number for error reporting.
func Parse(r io.Reader) (*models.Batch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	var missing []string
	for _, name := range []string{OrderSheet, LineSheet} {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingSheetsError{Sheets: missing}
	}

	orders, err := parseOrders(f)
	if err != nil {
		return nil, err
	}
	lines, err := parseLines(f)
	if err != nil {
		return nil, err
	}

	return &models.Batch{Orders: orders, Lines: lines}, nil
}

func parseOrders(f *excelize.File) ([]models.OrderRow, error) {
	rows, err := f.GetRows(OrderSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", OrderSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := headerIndex(rows[0])
	var orders []models.OrderRow
	for i, row := range rows[1:] {
		get := cellGetter(row, cols)
		docNum := get(colOrderNum)
		if docNum == "" {
			continue
		}
		orders = append(orders, models.OrderRow{
			Row:          i + 2, // 1-based sheet row, after the header
			DocNum:       docNum,
			DocDate:      get(colDocumentDate),
			DueDate:      get(colDueDate),
			CustomerCode: get(colCustomerCode),
			SalesCode:    get(colSalesCode),
			BranchID:     get(colBranchID),
		})
	}
	return orders, nil
}

func parseLines(f *excelize.File) ([]models.LineItemRow, error) {
	rows, err := f.GetRows(LineSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", LineSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := headerIndex(rows[0])
	var lines []models.LineItemRow
	for i, row := range rows[1:] {
		get := cellGetter(row, cols)
		parentKey := get(colParentOrder)
		if parentKey == "" {
			continue
		}
		line := models.LineItemRow{
			Row:         i + 2,
			ParentKey:   parentKey,
			LineNum:     get(colLineNum),
			ItemCode:    get(colItemCode),
			Quantity:    get(colQuantity),
			UnitPrice:   get(colUnitPrice),
			Warehouse:   get(colWarehouse),
			SalesCode:   get(colSalesCode),
			AccountCode: get(colAccountCode),
			VatGroup:    get(colVatGroup),
			PermitNum:   get(colPermitNum),
			Branch:      get(colBranch),
		}
		for d, label := range dimColumns {
			line.Dimensions[d] = get(label)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// headerIndex maps trimmed header labels to their column index so sheets
// survive column reordering.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, label := range header {
		label = strings.TrimSpace(label)
		if label != "" {
			cols[label] = i
		}
	}
	return cols
}

// cellGetter returns trimmed cell text by column label, blank when the
// column is absent or the row is short.
func cellGetter(row []string, cols map[string]int) func(string) string {
	return func(label string) string {
		idx, ok := cols[label]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
}
