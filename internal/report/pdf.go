package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// PDFReporter writes a printable report.
type PDFReporter struct {
	Writer io.Writer
}

// Generate renders the PDF report.
func (r *PDFReporter) Generate(result *analyzer.RunResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Cloud cost optimization report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", result.Timestamp.Format("2006-01-02 15:04:05 UTC")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total estimated monthly savings: $%.2f", result.TotalSavings))
	pdf.Ln(12)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Findings by category")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(90, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Findings", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 7, "Est. savings / month", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, name := range result.Categories.Names() {
		bucket, ok := result.Categories.Bucket(name)
		if !ok {
			continue
		}
		pdf.CellFormat(90, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", bucket.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("$%.2f", bucket.Savings), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	for i, rec := range result.Recommendations {
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s [%s priority]", i+1, rec.Category, rec.Priority))
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(180, 5, fmt.Sprintf("%s - %d findings, $%.2f/month ($%.2f avg per item), risk %s, effort %s",
			rec.Recommendation, rec.FindingCount, rec.TotalSavings, rec.AverageSavingsPerItem, rec.RiskLevel, rec.Effort),
			"", "L", false)
		pdf.Ln(3)
	}

	if err := pdf.Output(r.Writer); err != nil {
		return fmt.Errorf("write PDF report: %w", err)
	}
	return nil
}
