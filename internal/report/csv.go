package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// CSVReporter writes one row per recommendation.
type CSVReporter struct {
	Writer io.Writer
}

// Generate writes the recommendation table as CSV.
func (r *CSVReporter) Generate(result *analyzer.RunResult) error {
	w := csv.NewWriter(r.Writer)

	header := []string{
		"category", "priority", "finding_count", "total_savings",
		"average_savings_per_item", "recommendation", "risk_level", "effort",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, rec := range result.Recommendations {
		record := []string{
			rec.Category,
			string(rec.Priority),
			fmt.Sprintf("%d", rec.FindingCount),
			fmt.Sprintf("%.2f", rec.TotalSavings),
			fmt.Sprintf("%.2f", rec.AverageSavingsPerItem),
			rec.Recommendation,
			string(rec.RiskLevel),
			string(rec.Effort),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
