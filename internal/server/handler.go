// Package server exposes the conversion pipeline over HTTP: template
// download, validation, generation, and retrieval of generated bundles.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/neoasia/dtw-salesorder/internal/generator"
	"github.com/neoasia/dtw-salesorder/internal/models"
	"github.com/neoasia/dtw-salesorder/internal/workbook"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	service   *generator.Service
	bundles   *bundleCache
	maxUpload int64
	logger    *zap.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(service *generator.Service, maxUpload int64, cacheSize int, logger *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		bundles:   newBundleCache(cacheSize),
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// RegisterRoutes attaches the API endpoints to the router group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/template", h.Template)
	api.POST("/validate", h.Validate)
	api.POST("/generate", h.Generate)
	api.GET("/bundles/:id", h.DownloadBundle)
}

// validationResponse is the shared response shape of validate and
// generate when validation errors exist.
type validationResponse struct {
	Valid  bool                     `json:"valid"`
	Orders int                      `json:"orders"`
	Lines  int                      `json:"lines"`
	Errors []models.ValidationError `json:"errors"`
}

// Template serves a freshly built blank entry workbook.
func (h *Handler) Template(c *gin.Context) {
	f, err := workbook.BuildTemplate()
	if err != nil {
		h.logger.Error("Failed to build template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template"})
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		h.logger.Error("Failed to serialize template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize template"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbook.TemplateFileName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Validate runs validation on the uploaded workbook and returns the full
// error list without generating files.
func (h *Handler) Validate(c *gin.Context) {
	upload, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.Validate(bytes.NewReader(upload))
	if err != nil {
		h.renderParseError(c, err)
		return
	}

	c.JSON(http.StatusOK, validationResponse{
		Valid:  result.Valid,
		Orders: result.OrderCount,
		Lines:  result.LineCount,
		Errors: result.Errors,
	})
}

// Generate runs the full pipeline and, on a clean batch, stores the zip
// bundle for download and returns its handle.
func (h *Handler) Generate(c *gin.Context) {
	upload, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.service.Generate(bytes.NewReader(upload))
	if err != nil {
		h.renderParseError(c, err)
		return
	}

	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, validationResponse{
			Valid:  false,
			Orders: result.OrderCount,
			Lines:  result.LineCount,
			Errors: result.Errors,
		})
		return
	}

	id := h.bundles.Put(result.BundleName, result.Archive)
	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"id":       id,
		"filename": result.BundleName,
		"orders":   result.OrderCount,
		"lines":    result.LineCount,
		"files":    []string{result.OrderFileName, result.LineFileName},
	})
}

// DownloadBundle streams a previously generated archive.
func (h *Handler) DownloadBundle(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.bundles.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.Name))
	c.Data(http.StatusOK, "application/zip", entry.Data)
}

// readUpload pulls the multipart "file" field into memory, enforcing the
// configured size cap.
func (h *Handler) readUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A workbook file upload is required"})
		return nil, false
	}
	if fileHeader.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("Upload exceeds the %d byte limit", h.maxUpload),
		})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return nil, false
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		h.logger.Error("Failed to read upload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return nil, false
	}
	return buf.Bytes(), true
}

func (h *Handler) renderParseError(c *gin.Context, err error) {
	var missing *workbook.MissingSheetsError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
		return
	}
	h.logger.Warn("Failed to parse uploaded workbook", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Error reading file. Please ensure it is a valid Excel file with the correct sheet names.",
	})
}
