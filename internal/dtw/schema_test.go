package dtw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaConsistency(t *testing.T) {
	require.NoError(t, checkSchema())

	assert.Len(t, ordrHeaderLong, OrderRecordWidth)
	assert.Len(t, ordrHeaderShort, OrderRecordWidth)
	assert.Len(t, rdr1HeaderLong, LineRecordWidth)
	assert.Len(t, rdr1HeaderShort, LineRecordWidth)
}

func TestSchemaPositionsMatchHeaderLabels(t *testing.T) {
	// The populated positions must line up with the label the DTW import
	// expects at that column.
	expected := map[string]int{
		"DocNum":     0,
		"DocType":    2,
		"DocDate":    5,
		"DocDueDate": 6,
		"CardCode":   7,
	}
	for label, pos := range expected {
		assert.Equal(t, pos, orderFieldPos[label])
		assert.Equal(t, label, ordrHeaderLong[pos])
	}

	assert.Equal(t, "SalesPersonCode", ordrHeaderLong[orderFieldPos["SalesPersonCode"]])
	// The two user-defined ORDR fields align with different header rows in
	// the import target's own definition; both are pinned here as-is.
	assert.Equal(t, "U_AllowDOInv_Dep", ordrHeaderShort[orderFieldPos["U_AllowDOInv_Dep"]])
	assert.Equal(t, "U_GSTSGDRate", ordrHeaderLong[orderFieldPos["U_GSTSGDRate"]])

	assert.Equal(t, "ParentKey", rdr1HeaderLong[lineFieldPos["ParentKey"]])
	assert.Equal(t, "Quantity", rdr1HeaderLong[lineFieldPos["Quantity"]])
	assert.Equal(t, "CostingCode", rdr1HeaderLong[lineFieldPos["CostingCode"]])
	assert.Equal(t, "COGSCostingCode", rdr1HeaderLong[lineFieldPos["COGSCostingCode"]])
	assert.Equal(t, "COGSCostingCode5", rdr1HeaderLong[lineFieldPos["COGSCostingCode5"]])
	assert.Equal(t, "U_PermitNum", rdr1HeaderLong[lineFieldPos["U_PermitNum"]])
}
