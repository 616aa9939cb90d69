package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose enables debug logging for all subcommands.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dtwgen",
	Short: "Generate SAP DTW sales-order import files from Excel data",
	Long: `dtwgen converts a filled sales-order entry workbook into the two
fixed-column DTW import files (ORDR and RDR1) and packages them into a
single zip archive.

Example Usage:
  dtwgen template -o DTW_Sales_Order_Template.xlsx   # produce a blank entry template
  dtwgen generate -i filled.xlsx -o ./out            # validate and generate the bundle`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
