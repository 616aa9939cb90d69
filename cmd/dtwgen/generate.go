package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neoasia/dtw-salesorder/internal/config"
	"github.com/neoasia/dtw-salesorder/internal/generator"
	"github.com/neoasia/dtw-salesorder/internal/validation"
	"github.com/neoasia/dtw-salesorder/pkg/utils"
)

var (
	generateInput  string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Validate a filled workbook and generate the DTW bundle",
	Long: `Reads a filled entry workbook, validates both sheets, and, when the
batch is clean, writes a zip archive containing the ORDR and RDR1 import
files into the output directory. Validation errors are printed and the
command exits non-zero without producing any output.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Path to the filled entry workbook (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", ".", "Directory the bundle is written to")
	generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	logLevel := "warn"
	if verbose {
		logLevel = "debug"
	}
	logger, err := utils.NewLogger(utils.LoggerConfig{Level: logLevel, Format: "console"})
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, err := os.Open(generateInput)
	if err != nil {
		return fmt.Errorf("failed to open input workbook: %w", err)
	}
	defer in.Close()

	service := generator.NewService(logger, cfg.Generator.ErrorDisplayLimit)
	result, err := service.Generate(in)
	if err != nil {
		return err
	}

	if !result.Valid {
		fmt.Fprintf(os.Stderr, "Found %d validation error(s):\n", len(result.Errors))
		for _, line := range validation.FormatErrors(result.Errors, cfg.Generator.ErrorDisplayLimit) {
			fmt.Fprintf(os.Stderr, "  - %s\n", line)
		}
		os.Exit(1)
	}

	if err := os.MkdirAll(generateOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(generateOutput, result.BundleName)
	if err := os.WriteFile(outPath, result.Archive, 0644); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	fmt.Printf("Generated %s (%d order(s), %d line item(s))\n", outPath, result.OrderCount, result.LineCount)
	fmt.Printf("Contains: %s, %s\n", result.OrderFileName, result.LineFileName)
	return nil
}
