package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neoasia/dtw-salesorder/internal/workbook"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank entry template workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := workbook.BuildTemplate()
		if err != nil {
			return err
		}
		defer f.Close()

		if err := f.SaveAs(templateOutput); err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}
		fmt.Printf("Template written to %s\n", templateOutput)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", workbook.TemplateFileName, "Template output path")
	rootCmd.AddCommand(templateCmd)
}
