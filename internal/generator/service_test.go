package generator

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/neoasia/dtw-salesorder/internal/workbook"
)

var orderHeaders = []interface{}{"Order #", "Document Date", "Due Date", "Customer Code", "Sales Code", "Branch ID"}

var lineHeaders = []interface{}{
	"Parent Order #", "Line #", "Item Code", "Quantity", "Unit Price",
	"Warehouse", "Sales Code", "Account Code", "VAT Group",
	"Dim 1", "Dim 2", "Dim 3", "Dim 4", "Dim 5", "Permit #", "Branch",
}

func buildWorkbook(t *testing.T, orderRows, lineRows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(name string, headers []interface{}, rows [][]interface{}) {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(name, "A1", &headers))
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	writeSheet(workbook.OrderSheet, orderHeaders, orderRows)
	writeSheet(workbook.LineSheet, lineHeaders, lineRows)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func cleanWorkbook(t *testing.T) []byte {
	orders := [][]interface{}{
		{"SO1001", "20260101", "20260110", "C001", "48"},
		{"SO1002", "20260102", "20260111", "C002", "48"},
	}
	lines := [][]interface{}{
		{"SO1001", 1, "ITM1", 10, "", "SG01", "48", "ACC1", "SR"},
		{"SO1001", 2, "ITM2", 5, "", "SG01", "48", "ACC1", "SR"},
		{"SO1002", 1, "ITM3", 1, "", "SG02", "48", "ACC2", "ZR"},
	}
	return buildWorkbook(t, orders, lines)
}

func newTestService() *Service {
	s := NewService(zap.NewNop(), 20)
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestGenerateCleanBatch(t *testing.T) {
	s := newTestService()

	result, err := s.Generate(bytes.NewReader(cleanWorkbook(t)))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, result.OrderCount)
	assert.Equal(t, 3, result.LineCount)
	assert.Equal(t, "DTW_Sales_Orders_20250601_120000.zip", result.BundleName)
	assert.Equal(t, "ORDR_20250601_120000.txt", result.OrderFileName)
	assert.Equal(t, "RDR1_20250601_120000.txt", result.LineFileName)
	require.NotEmpty(t, result.Archive)

	zr, err := zip.NewReader(bytes.NewReader(result.Archive), int64(len(result.Archive)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	contents := map[string]string{}
	for _, zf := range zr.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		contents[zf.Name] = string(data)
	}

	ordr := contents["ORDR_20250601_120000.txt"]
	require.NotEmpty(t, ordr)
	ordrLines := strings.Split(strings.TrimSuffix(ordr, "\r\n"), "\r\n")
	assert.Len(t, ordrLines, 4) // two header lines + two orders
	fields := strings.Split(ordrLines[2], "\t")
	assert.Equal(t, "SO1001", fields[0])
	assert.Equal(t, "dDocument_Items", fields[2])

	rdr1 := contents["RDR1_20250601_120000.txt"]
	require.NotEmpty(t, rdr1)
	rdr1Lines := strings.Split(strings.TrimSuffix(rdr1, "\r\n"), "\r\n")
	assert.Len(t, rdr1Lines, 5) // two header lines + three items
	fields = strings.Split(rdr1Lines[2], "\t")
	assert.Equal(t, "SO1001", fields[0])
	assert.Equal(t, "10", fields[4])
}

func TestGenerateInvalidBatchProducesNoArchive(t *testing.T) {
	s := newTestService()

	orders := [][]interface{}{
		{"SO1001", "badDate", "20260110", "C001", "48"},
	}
	lines := [][]interface{}{
		{"SO9999", 1, "ITM1", 10, "", "SG01", "48", "ACC1", "SR"},
	}

	result, err := s.Generate(bytes.NewReader(buildWorkbook(t, orders, lines)))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Nil(t, result.Archive)
	assert.Empty(t, result.BundleName)

	msgs := make([]string, len(result.Errors))
	for i, e := range result.Errors {
		msgs[i] = e.String()
	}
	assert.Contains(t, msgs, "Row 2: Document Date must be YYYYMMDD format")
	assert.Contains(t, msgs, "Row 2: Parent Order # 'SO9999' not found in Order Headers")
}

func TestValidateDoesNotGenerate(t *testing.T) {
	s := newTestService()

	result, err := s.Validate(bytes.NewReader(cleanWorkbook(t)))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.OrderCount)
	assert.Equal(t, 3, result.LineCount)
	assert.Nil(t, result.Archive)
}

func TestGenerateMissingSheet(t *testing.T) {
	s := newTestService()

	f := excelize.NewFile()
	defer f.Close()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := s.Generate(&buf)
	var missingErr *workbook.MissingSheetsError
	require.ErrorAs(t, err, &missingErr)
}
