package workbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoasia/dtw-salesorder/internal/refdata"
)

func TestBuildTemplateSheets(t *testing.T) {
	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Instructions", OrderSheet, LineSheet, "SalesEmployees"}, f.GetSheetList())
}

func TestBuildTemplateHeaders(t *testing.T) {
	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(OrderSheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{colOrderNum, colDocumentDate, colDueDate, colCustomerCode, colSalesCode, colBranchID}, rows[0])

	rows, err = f.GetRows(LineSheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, colParentOrder, rows[0][0])
	assert.Equal(t, colBranch, rows[0][15])
}

func TestBuildTemplateEmployeeLookup(t *testing.T) {
	employees, err := refdata.SalesEmployees()
	require.NoError(t, err)
	require.NotEmpty(t, employees)

	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("SalesEmployees")
	require.NoError(t, err)
	require.Len(t, rows, len(employees)+1)
	assert.Equal(t, []string{"Code", "Sales Employee Name"}, rows[0])
	assert.Equal(t, employees[0].Name, rows[1][1])
}

// A freshly built template must round-trip through the parser: both sheets
// are found and the pre-filled branch defaults do not count as data rows.
func TestBuildTemplateRoundTrip(t *testing.T) {
	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	batch, err := Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, batch.Orders)
	assert.Empty(t, batch.Lines)
}
