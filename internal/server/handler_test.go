package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/neoasia/dtw-salesorder/internal/generator"
	"github.com/neoasia/dtw-salesorder/internal/workbook"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := generator.NewService(zap.NewNop(), 20)
	handler := NewHandler(service, 16<<20, 4, zap.NewNop())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func buildUpload(t *testing.T, orderRows, lineRows [][]interface{}) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	orderHeaders := []interface{}{"Order #", "Document Date", "Due Date", "Customer Code", "Sales Code", "Branch ID"}
	lineHeaders := []interface{}{
		"Parent Order #", "Line #", "Item Code", "Quantity", "Unit Price",
		"Warehouse", "Sales Code", "Account Code", "VAT Group",
		"Dim 1", "Dim 2", "Dim 3", "Dim 4", "Dim 5", "Permit #", "Branch",
	}

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

	var workbookBuf bytes.Buffer
	require.NoError(t, f.Write(&workbookBuf))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "filled.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbookBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func cleanRows() ([][]interface{}, [][]interface{}) {
	orders := [][]interface{}{{"SO1001", "20260101", "20260110", "C001", "48"}}
	lines := [][]interface{}{{"SO1001", 1, "ITM1", 10, "", "SG01", "48", "ACC1", "SR"}}
	return orders, lines
}

func TestGenerateAndDownloadBundle(t *testing.T) {
	router := newTestRouter(t)

	orders, lines := cleanRows()
	body, contentType := buildUpload(t, orders, lines)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Valid    bool     `json:"valid"`
		ID       string   `json:"id"`
		Filename string   `json:"filename"`
		Orders   int      `json:"orders"`
		Lines    int      `json:"lines"`
		Files    []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.Filename, "DTW_Sales_Orders_")
	assert.Equal(t, 1, resp.Orders)
	assert.Equal(t, 1, resp.Lines)
	require.Len(t, resp.Files, 2)

	dl := httptest.NewRequest(http.MethodGet, "/api/v1/bundles/"+resp.ID, nil)
	dw := httptest.NewRecorder()
	router.ServeHTTP(dw, dl)

	require.Equal(t, http.StatusOK, dw.Code)
	assert.Equal(t, "application/zip", dw.Header().Get("Content-Type"))
	assert.NotEmpty(t, dw.Body.Bytes())
}

func TestGenerateInvalidBatchReturns422(t *testing.T) {
	router := newTestRouter(t)

	orders := [][]interface{}{{"SO1001", "nonsense", "20260110", "", "48"}}
	lines := [][]interface{}{{"SO1001", 1, "ITM1", 10, "", "SG01", "48", "ACC1", "SR"}}
	body, contentType := buildUpload(t, orders, lines)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)
}

func TestValidateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	orders, lines := cleanRows()
	body, contentType := buildUpload(t, orders, lines)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 1, resp.Orders)
	assert.Equal(t, 1, resp.Lines)
	assert.Empty(t, resp.Errors)
}

func TestGenerateWithoutFileIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadUnknownBundle(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bundles/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/template", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), workbook.TemplateFileName)
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestBundleCacheEviction(t *testing.T) {
	cache := newBundleCache(2)

	first := cache.Put("a.zip", []byte("a"))
	second := cache.Put("b.zip", []byte("b"))
	third := cache.Put("c.zip", []byte("c"))

	_, ok := cache.Get(first)
	assert.False(t, ok, "oldest entry is evicted once the cache is full")
	_, ok = cache.Get(second)
	assert.True(t, ok)
	_, ok = cache.Get(third)
	assert.True(t, ok)
}
