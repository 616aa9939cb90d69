// Package generator sequences one conversion request: parse the uploaded
// workbook, validate both tables, and, only when validation is clean, emit
// the two DTW files and bundle them into a zip archive.
package generator

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/neoasia/dtw-salesorder/internal/dtw"
	"github.com/neoasia/dtw-salesorder/internal/models"
	"github.com/neoasia/dtw-salesorder/internal/validation"
	"github.com/neoasia/dtw-salesorder/internal/workbook"
)

// timestampLayout embeds the generation time into file names,
// e.g. ORDR_20250601_120000.txt.
const timestampLayout = "20060102_150405"

// Result reports one validation or generation pass. Archive and the file
// names are only set when Valid is true and generation ran.
type Result struct {
	Valid      bool
	Errors     []models.ValidationError
	OrderCount int
	LineCount  int

	BundleName    string
	OrderFileName string
	LineFileName  string
	Archive       []byte
	GeneratedAt   time.Time
}

// Service runs the conversion pipeline. Safe for concurrent use: each call
// works on its own parsed batch and the schema tables are read-only.
type Service struct {
	logger     *zap.Logger
	errorLimit int
	now        func() time.Time
}

// NewService creates a conversion service. errorLimit caps how many
// validation errors are logged per request; the full list is always
// returned to the caller.
func NewService(logger *zap.Logger, errorLimit int) *Service {
	return &Service{
		logger:     logger,
		errorLimit: errorLimit,
		now:        time.Now,
	}
}

// Validate parses the workbook and runs both validators without
// generating anything.
func (s *Service) Validate(r io.Reader) (*Result, error) {
	batch, err := workbook.Parse(r)
	if err != nil {
		return nil, err
	}
	return s.validateBatch(batch), nil
}

// Generate runs the full pipeline. When validation fails the result
// carries the complete error list and no archive; there is no partial
// output.
func (s *Service) Generate(r io.Reader) (*Result, error) {
	batch, err := workbook.Parse(r)
	if err != nil {
		return nil, err
	}

	result := s.validateBatch(batch)
	if !result.Valid {
		return result, nil
	}

	validated, err := dtw.NewValidatedBatch(batch, result.Errors)
	if err != nil {
		return nil, err
	}

	ts := s.now()
	stamp := ts.Format(timestampLayout)
	result.GeneratedAt = ts
	result.OrderFileName = fmt.Sprintf("ORDR_%s.txt", stamp)
	result.LineFileName = fmt.Sprintf("RDR1_%s.txt", stamp)
	result.BundleName = fmt.Sprintf("DTW_Sales_Orders_%s.zip", stamp)

	archive, err := buildArchive(
		result.OrderFileName, validated.OrderFile(),
		result.LineFileName, validated.LineFile(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	result.Archive = archive

	s.logger.Info("DTW files generated",
		zap.String("bundle", result.BundleName),
		zap.Int("orders", result.OrderCount),
		zap.Int("lines", result.LineCount),
		zap.Int("archive_bytes", len(archive)))

	return result, nil
}

func (s *Service) validateBatch(batch *models.Batch) *Result {
	errs := validation.ValidateBatch(batch)
	result := &Result{
		Valid:      len(errs) == 0,
		Errors:     errs,
		OrderCount: len(batch.Orders),
		LineCount:  len(batch.Lines),
	}

	if result.Valid {
		s.logger.Info("Batch validated clean",
			zap.Int("orders", result.OrderCount),
			zap.Int("lines", result.LineCount))
	} else {
		s.logger.Info("Batch validation failed",
			zap.Int("orders", result.OrderCount),
			zap.Int("lines", result.LineCount),
			zap.Int("error_count", len(errs)),
			zap.Strings("errors", validation.FormatErrors(errs, s.errorLimit)))
	}
	return result
}
