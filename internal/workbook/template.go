package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/neoasia/dtw-salesorder/internal/refdata"
)

// TemplateFileName is the suggested download name for the entry template.
const TemplateFileName = "DTW_Sales_Order_Template.xlsx"

const (
	orderInputRows = 100
	lineInputRows  = 200

	headerFillColor = "1F4E79"
	inputFillColor  = "E2EFDA"
)

// BuildTemplate produces the blank entry workbook: styled header rows,
// pre-styled input areas with the branch default filled in, dropdowns for
// warehouse and VAT group, the sales-employee lookup sheet and an
// instructions sheet placed first. The caller owns closing the file.
func BuildTemplate() (*excelize.File, error) {
	warehouses, err := refdata.Warehouses()
	if err != nil {
		return nil, err
	}
	vatGroups, err := refdata.VatGroups()
	if err != nil {
		return nil, err
	}
	employees, err := refdata.SalesEmployees()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	// Creating the instructions sheet first keeps it in front without a
	// sheet move afterwards.
	if err := f.SetSheetName("Sheet1", "Instructions"); err != nil {
		return nil, err
	}

	styles, err := newTemplateStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create template styles: %w", err)
	}

	if err := buildOrderSheet(f, styles); err != nil {
		return nil, fmt.Errorf("failed to build order sheet: %w", err)
	}
	if err := buildLineSheet(f, styles, warehouses, vatGroups); err != nil {
		return nil, fmt.Errorf("failed to build line sheet: %w", err)
	}
	if err := buildEmployeeSheet(f, styles, employees); err != nil {
		return nil, fmt.Errorf("failed to build employee sheet: %w", err)
	}
	if err := buildInstructionsSheet(f); err != nil {
		return nil, fmt.Errorf("failed to build instructions sheet: %w", err)
	}

	if idx, err := f.GetSheetIndex(OrderSheet); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

type templateStyles struct {
	header     int
	headerWrap int
	input      int
}

func newTemplateStyles(f *excelize.File) (*templateStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border:    thin,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	headerWrap, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border:    thin,
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	input, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{inputFillColor}, Pattern: 1},
		Border: thin,
	})
	if err != nil {
		return nil, err
	}

	return &templateStyles{header: header, headerWrap: headerWrap, input: input}, nil
}

func buildOrderSheet(f *excelize.File, styles *templateStyles) error {
	if _, err := f.NewSheet(OrderSheet); err != nil {
		return err
	}

	headers := []string{colOrderNum, colDocumentDate, colDueDate, colCustomerCode, colSalesCode, colBranchID}
	widths := []float64{12, 15, 15, 15, 12, 12}
	if err := writeHeaderRow(f, OrderSheet, headers, widths, styles.header); err != nil {
		return err
	}

	lastCell, err := excelize.CoordinatesToCellName(len(headers), orderInputRows+1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(OrderSheet, "A2", lastCell, styles.input); err != nil {
		return err
	}
	for row := 2; row <= orderInputRows+1; row++ {
		cell, err := excelize.CoordinatesToCellName(len(headers), row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(OrderSheet, cell, 9); err != nil {
			return err
		}
	}

	return freezeHeader(f, OrderSheet)
}

func buildLineSheet(f *excelize.File, styles *templateStyles, warehouses, vatGroups []string) error {
	if _, err := f.NewSheet(LineSheet); err != nil {
		return err
	}

	headers := []string{
		colParentOrder, colLineNum, colItemCode, colQuantity, colUnitPrice,
		colWarehouse, colSalesCode, colAccountCode, colVatGroup,
		dimColumns[0], dimColumns[1], dimColumns[2], dimColumns[3], dimColumns[4],
		colPermitNum, colBranch,
	}
	widths := []float64{14, 8, 15, 10, 12, 10, 12, 12, 10, 8, 8, 8, 10, 8, 15, 8}
	if err := writeHeaderRow(f, LineSheet, headers, widths, styles.headerWrap); err != nil {
		return err
	}

	lastCell, err := excelize.CoordinatesToCellName(len(headers), lineInputRows+1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(LineSheet, "A2", lastCell, styles.input); err != nil {
		return err
	}
	for row := 2; row <= lineInputRows+1; row++ {
		cell, err := excelize.CoordinatesToCellName(len(headers), row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(LineSheet, cell, 9); err != nil {
			return err
		}
	}

	if err := addDropList(f, LineSheet, fmt.Sprintf("F2:F%d", lineInputRows+1), warehouses); err != nil {
		return err
	}
	if err := addDropList(f, LineSheet, fmt.Sprintf("I2:I%d", lineInputRows+1), vatGroups); err != nil {
		return err
	}

	return freezeHeader(f, LineSheet)
}

func buildEmployeeSheet(f *excelize.File, styles *templateStyles, employees []refdata.SalesEmployee) error {
	const sheet = "SalesEmployees"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Code"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Sales Employee Name"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", styles.header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return err
	}

	for i, emp := range employees {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), emp.Code); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), emp.Name); err != nil {
			return err
		}
	}
	return nil
}

func buildInstructionsSheet(f *excelize.File) error {
	const sheet = "Instructions"
	if err := f.SetColWidth(sheet, "A", "A", 80); err != nil {
		return err
	}

	instructions := []string{
		"NeoAsia Sales Order DTW Template",
		strings.Repeat("=", 50),
		"",
		"HOW TO USE:",
		"1. Fill 'Sales Order Entry': One row per order, YYYYMMDD dates",
		"2. Fill 'Line Items Entry': Parent Order # must match Order #",
		"3. Look up Sales Codes in 'SalesEmployees' sheet",
		"4. Upload to DTW Web App and download generated files",
		"5. Import ORDR.txt and RDR1.txt into SAP DTW",
		"",
		"NOTES:",
		"- Green cells = data entry areas",
		"- Line # starts at 1 for each order",
		"- Use Warehouse and VAT dropdowns in Line Items",
	}
	for i, line := range instructions {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), line); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, label := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	lastCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastCell, style)
}

func addDropList(f *excelize.File, sheet, sqref string, values []string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	dv.AllowBlank = true
	if err := dv.SetDropList(values); err != nil {
		return err
	}
	return f.AddDataValidation(sheet, dv)
}

func freezeHeader(f *excelize.File, sheet string) error {
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
