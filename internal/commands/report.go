package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/costspectre/internal/analyzer"
	"github.com/ppiankov/costspectre/internal/report"
)

var reportFlags struct {
	input      string
	format     string
	outputFile string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a report from a saved analysis",
	Long: `Render a previously saved analysis artifact in one of several formats:
text, json, csv, html, or pdf.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFlags.input, "input", "i", "", "Analysis artifact path (default: <output>/analysis_results.json)")
	reportCmd.Flags().StringVar(&reportFlags.format, "format", "text", "Report format: text, json, csv, html, pdf")
	reportCmd.Flags().StringVarP(&reportFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
}

func runReport(_ *cobra.Command, _ []string) error {
	path := reportFlags.input
	if path == "" {
		path = filepath.Join(cfg.OutputDir(), "analysis_results.json")
	}

	result, err := loadArtifact(path)
	if err != nil {
		return err
	}

	reporter, err := selectReporter(reportFlags.format, reportFlags.outputFile)
	if err != nil {
		return err
	}
	return reporter.Generate(result)
}

// loadArtifact reads a run result saved by the analyze command.
func loadArtifact(path string) (*analyzer.RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no analysis found at %s; run 'costspectre analyze' first", path)
		}
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var result analyzer.RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return &result, nil
}

func selectReporter(format, outputFile string) (report.Reporter, error) {
	w := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
		w = f
	}

	switch format {
	case "text":
		return &report.TextReporter{Writer: w}, nil
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "csv":
		return &report.CSVReporter{Writer: w}, nil
	case "html":
		return &report.HTMLReporter{Writer: w}, nil
	case "pdf":
		return &report.PDFReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, csv, html, or pdf)", format)
	}
}
