// Package main provides the CLI entry point for sheetdoc.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/output"
	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/xlsx"
)

var logger = log.New(os.Stderr, "sheetdoc: ", 0)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdoc",
		Short: "Build and inspect spreadsheet worksheet documents",
		Long: `sheetdoc builds .xlsx workbooks from YAML worksheet definitions
and inspects existing workbooks as JSON.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newBuildCmd(), newInspectCmd(), newCheckCmd())
	return rootCmd
}

func newBuildCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "build [definition.yaml]",
		Short: "Build an xlsx workbook from a YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadDefinition(args[0])
			if err != nil {
				return err
			}
			wb, err := build(def, sheetdoc.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("build failed: %w", err)
			}
			if outputPath == "" {
				base := filepath.Base(args[0])
				outputPath = base[:len(base)-len(filepath.Ext(base))] + ".xlsx"
			}
			if err := xlsx.SaveWorkbook(wb, outputPath); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
			logger.Printf("wrote %d worksheet(s) to %s", len(wb.Worksheets()), outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <definition>.xlsx)")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var (
		outputPath    string
		pretty        bool
		format        string
		headerRows    int
		sheetsDir     string
		printAreasDir string
	)
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print the worksheet model of an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			opts := xlsx.DefaultReadOptions()
			opts.HeaderRows = headerRows
			res, err := xlsx.Open(inputPath, opts, sheetdoc.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			model := res.Model()

			var data []byte
			switch format {
			case "json":
				data, err = output.ToJSON(model, pretty)
			case "yaml":
				data, err = output.ToYAML(model)
			default:
				return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else if sheetsDir == "" && printAreasDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(model.Worksheets, sheetsDir, pretty); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
			}
			if printAreasDir != "" {
				if err := writePrintAreaFiles(res.BookName, model.Worksheets, printAreasDir, pretty); err != nil {
					return fmt.Errorf("failed to write print area files: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	cmd.Flags().IntVar(&headerRows, "header-rows", 1, "Number of leading rows read as column headers")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [definition.yaml]",
		Short: "Validate a YAML definition without writing a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadDefinition(args[0])
			if err != nil {
				return err
			}
			wb, err := build(def, sheetdoc.WithLogger(logger))
			if err != nil {
				return err
			}
			for _, ws := range wb.Worksheets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d column(s), %d header row(s), %d validation(s), %d note(s)\n",
					ws.Name(), ws.ColumnCount(), ws.HeaderRowCount(), ws.Validations().Len(), ws.Notes().Len())
			}
			return nil
		},
	}
}
