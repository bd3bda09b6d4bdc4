package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// TextReporter writes a terminal summary: category table, ranked
// recommendations, and the total estimated savings.
type TextReporter struct {
	Writer io.Writer
}

// Generate renders the text report.
func (r *TextReporter) Generate(result *analyzer.RunResult) error {
	fmt.Fprintf(r.Writer, "costspectre analysis - %s\n\n", result.Timestamp.Format("2006-01-02 15:04:05 UTC"))

	table, err := summaryTable(result)
	if err != nil {
		return fmt.Errorf("render summary table: %w", err)
	}
	fmt.Fprintln(r.Writer, table)

	if len(result.Recommendations) == 0 {
		fmt.Fprintln(r.Writer, "No optimization opportunities found")
		return nil
	}

	fmt.Fprintln(r.Writer, "Recommendations (ranked by estimated savings):")
	for i, rec := range result.Recommendations {
		fmt.Fprintf(r.Writer, "%d. [%s] %s - %s\n", i+1, priorityLabel(rec.Priority), rec.Category, rec.Recommendation)
		fmt.Fprintf(r.Writer, "   %d findings, $%.2f/month ($%.2f avg), risk %s, effort %s\n",
			rec.FindingCount, rec.TotalSavings, rec.AverageSavingsPerItem, rec.RiskLevel, rec.Effort)
	}

	fmt.Fprintf(r.Writer, "\nTotal estimated monthly savings: $%.2f\n", result.TotalSavings)
	return nil
}

func summaryTable(result *analyzer.RunResult) (string, error) {
	data := pterm.TableData{{"Category", "Findings", "Est. Monthly Savings"}}

	var totalFindings int
	for _, name := range result.Categories.Names() {
		bucket, ok := result.Categories.Bucket(name)
		if !ok {
			continue
		}
		totalFindings += bucket.Count
		data = append(data, []string{name, fmt.Sprintf("%d", bucket.Count), fmt.Sprintf("$%.2f", bucket.Savings)})
	}
	data = append(data, []string{"TOTAL", fmt.Sprintf("%d", totalFindings), fmt.Sprintf("$%.2f", result.TotalSavings)})

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func priorityLabel(p analyzer.Priority) string {
	switch p {
	case analyzer.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint(string(p))
	case analyzer.PriorityMedium:
		return color.New(color.FgYellow).Sprint(string(p))
	default:
		return color.New(color.FgGreen).Sprint(string(p))
	}
}
