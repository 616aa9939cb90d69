package dtw

import "fmt"

// Record widths of the two DTW import files. Every data line carries
// exactly this many tab-separated fields, populated or not.
const (
	OrderRecordWidth = 271
	LineRecordWidth  = 244
)

// DocTypeItems is the constant document type written into every order
// record; sales orders are always item-type documents here.
const DocTypeItems = "dDocument_Items"

// orderFieldPos maps the semantic order-header fields this tool populates
// to their zero-based column in the ORDR record. All other columns stay
// empty on every row.
var orderFieldPos = map[string]int{
	"DocNum":           0,
	"DocType":          2,
	"DocDate":          5,
	"DocDueDate":       6,
	"CardCode":         7,
	"SalesPersonCode":  21,
	"U_AllowDOInv_Dep": 198,
	"U_GSTSGDRate":     202,
}

// lineFieldPos maps the populated line-item fields to their zero-based
// column in the RDR1 record. The five costing codes are mirrored into the
// COGS costing positions by the generator.
var lineFieldPos = map[string]int{
	"ParentKey":        0,
	"LineNum":          1,
	"ItemCode":         2,
	"Quantity":         4,
	"Price":            6,
	"WarehouseCode":    13,
	"SalesPersonCode":  14,
	"AccountCode":      17,
	"CostingCode":      20,
	"VatGroup":         23,
	"COGSCostingCode":  81,
	"CostingCode2":     87,
	"CostingCode3":     88,
	"CostingCode4":     89,
	"CostingCode5":     90,
	"COGSCostingCode2": 97,
	"COGSCostingCode3": 98,
	"COGSCostingCode4": 99,
	"COGSCostingCode5": 100,
	"U_PermitNum":      171,
	"U_GSTSGDRate":     183,
}

func init() {
	// The schema is the single source of truth for both header emission
	// and data-row emission; refuse to start if the tables disagree.
	if err := checkSchema(); err != nil {
		panic(err)
	}
}

func checkSchema() error {
	if len(ordrHeaderLong) != OrderRecordWidth || len(ordrHeaderShort) != OrderRecordWidth {
		return fmt.Errorf("dtw: ORDR header rows must have %d labels, got %d/%d",
			OrderRecordWidth, len(ordrHeaderLong), len(ordrHeaderShort))
	}
	if len(rdr1HeaderLong) != LineRecordWidth || len(rdr1HeaderShort) != LineRecordWidth {
		return fmt.Errorf("dtw: RDR1 header rows must have %d labels, got %d/%d",
			LineRecordWidth, len(rdr1HeaderLong), len(rdr1HeaderShort))
	}
	for name, pos := range orderFieldPos {
		if pos < 0 || pos >= OrderRecordWidth {
			return fmt.Errorf("dtw: ORDR field %s position %d out of range", name, pos)
		}
	}
	for name, pos := range lineFieldPos {
		if pos < 0 || pos >= LineRecordWidth {
			return fmt.Errorf("dtw: RDR1 field %s position %d out of range", name, pos)
		}
	}
	return nil
}
