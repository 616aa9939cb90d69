package dtw

import (
	"fmt"
	"strings"

	"github.com/neoasia/dtw-salesorder/internal/models"
)

// defaultBranch is written into the GST rate columns when the input leaves
// the branch blank.
const defaultBranch = "9"

// ValidatedBatch wraps a batch that passed validation. It is the only way
// to reach the record generators, so generation on dirty data cannot
// happen by construction.
type ValidatedBatch struct {
	batch *models.Batch
}

// NewValidatedBatch gates generation on a clean validation result.
func NewValidatedBatch(batch *models.Batch, errs []models.ValidationError) (*ValidatedBatch, error) {
	if len(errs) > 0 {
		return nil, fmt.Errorf("batch has %d validation errors", len(errs))
	}
	return &ValidatedBatch{batch: batch}, nil
}

// OrderCount reports the number of non-blank order rows.
func (vb *ValidatedBatch) OrderCount() int { return len(vb.batch.Orders) }

// LineCount reports the number of non-blank line rows.
func (vb *ValidatedBatch) LineCount() int { return len(vb.batch.Lines) }

// OrderFile renders the complete ORDR import file: both header label rows
// followed by one 271-column data line per order, tab-delimited, CRLF
// terminated including after the last row.
func (vb *ValidatedBatch) OrderFile() string {
	lines := make([]string, 0, len(vb.batch.Orders)+2)
	lines = append(lines, strings.Join(ordrHeaderLong, "\t"), strings.Join(ordrHeaderShort, "\t"))
	for _, o := range vb.batch.Orders {
		lines = append(lines, strings.Join(orderRecord(o), "\t"))
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// LineFile renders the complete RDR1 import file, 244 columns per line.
func (vb *ValidatedBatch) LineFile() string {
	lines := make([]string, 0, len(vb.batch.Lines)+2)
	lines = append(lines, strings.Join(rdr1HeaderLong, "\t"), strings.Join(rdr1HeaderShort, "\t"))
	for _, l := range vb.batch.Lines {
		lines = append(lines, strings.Join(lineRecord(l), "\t"))
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func orderRecord(o models.OrderRow) []string {
	rec := make([]string, OrderRecordWidth)
	rec[orderFieldPos["DocNum"]] = FieldValue(o.DocNum)
	rec[orderFieldPos["DocType"]] = DocTypeItems
	rec[orderFieldPos["DocDate"]] = FieldValue(o.DocDate)
	rec[orderFieldPos["DocDueDate"]] = FieldValue(o.DueDate)
	rec[orderFieldPos["CardCode"]] = FieldValue(o.CustomerCode)
	rec[orderFieldPos["SalesPersonCode"]] = FieldValue(o.SalesCode)
	rec[orderFieldPos["U_AllowDOInv_Dep"]] = "Y"
	rec[orderFieldPos["U_GSTSGDRate"]] = FieldValueOrDefault(o.BranchID, defaultBranch)
	return rec
}

func lineRecord(l models.LineItemRow) []string {
	rec := make([]string, LineRecordWidth)
	rec[lineFieldPos["ParentKey"]] = FieldValue(l.ParentKey)
	rec[lineFieldPos["LineNum"]] = FieldValue(l.LineNum)
	rec[lineFieldPos["ItemCode"]] = FieldValue(l.ItemCode)
	rec[lineFieldPos["Quantity"]] = FieldValue(l.Quantity)
	rec[lineFieldPos["Price"]] = FieldValue(l.UnitPrice)
	rec[lineFieldPos["WarehouseCode"]] = FieldValue(l.Warehouse)
	rec[lineFieldPos["SalesPersonCode"]] = FieldValue(l.SalesCode)
	rec[lineFieldPos["AccountCode"]] = FieldValue(l.AccountCode)
	rec[lineFieldPos["VatGroup"]] = FieldValue(l.VatGroup)

	// Each cost dimension lands in its costing-code slot and is mirrored
	// verbatim into the matching COGS costing-code slot.
	costing := []string{"CostingCode", "CostingCode2", "CostingCode3", "CostingCode4", "CostingCode5"}
	cogs := []string{"COGSCostingCode", "COGSCostingCode2", "COGSCostingCode3", "COGSCostingCode4", "COGSCostingCode5"}
	for i, dim := range l.Dimensions {
		v := FieldValue(dim)
		rec[lineFieldPos[costing[i]]] = v
		rec[lineFieldPos[cogs[i]]] = v
	}

	rec[lineFieldPos["U_PermitNum"]] = FieldValue(l.PermitNum)
	rec[lineFieldPos["U_GSTSGDRate"]] = FieldValueOrDefault(l.Branch, defaultBranch)
	return rec
}
