package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// HTMLReporter writes a single-page HTML report.
type HTMLReporter struct {
	Writer io.Writer
}

type htmlData struct {
	Timestamp       string
	TotalSavings    string
	Categories      []htmlCategory
	Recommendations []analyzer.Recommendation
}

type htmlCategory struct {
	Name    string
	Count   int
	Savings string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>costspectre report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 6px 12px; text-align: left; }
th { background: #f0f0f0; }
.priority-High { color: #c0392b; font-weight: bold; }
.priority-Medium { color: #d68910; }
.priority-Low { color: #1e8449; }
</style>
</head>
<body>
<h1>Cloud cost optimization report</h1>
<p>Generated {{.Timestamp}} &mdash; total estimated monthly savings <strong>${{.TotalSavings}}</strong></p>

<h2>Findings by category</h2>
<table>
<tr><th>Category</th><th>Findings</th><th>Est. monthly savings</th></tr>
{{range .Categories}}<tr><td>{{.Name}}</td><td>{{.Count}}</td><td>${{.Savings}}</td></tr>
{{end}}</table>

<h2>Recommendations</h2>
<table>
<tr><th>Category</th><th>Priority</th><th>Findings</th><th>Savings</th><th>Recommendation</th><th>Risk</th><th>Effort</th></tr>
{{range .Recommendations}}<tr>
<td>{{.Category}}</td>
<td class="priority-{{.Priority}}">{{.Priority}}</td>
<td>{{.FindingCount}}</td>
<td>${{printf "%.2f" .TotalSavings}}</td>
<td>{{.Recommendation}}</td>
<td>{{.RiskLevel}}</td>
<td>{{.Effort}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// Generate renders the HTML report.
func (r *HTMLReporter) Generate(result *analyzer.RunResult) error {
	data := htmlData{
		Timestamp:       result.Timestamp.Format("2006-01-02 15:04:05 UTC"),
		TotalSavings:    fmt.Sprintf("%.2f", result.TotalSavings),
		Recommendations: result.Recommendations,
	}

	for _, name := range result.Categories.Names() {
		bucket, ok := result.Categories.Bucket(name)
		if !ok {
			continue
		}
		data.Categories = append(data.Categories, htmlCategory{
			Name:    name,
			Count:   bucket.Count,
			Savings: fmt.Sprintf("%.2f", bucket.Savings),
		})
	}

	if err := htmlTemplate.Execute(r.Writer, data); err != nil {
		return fmt.Errorf("render HTML report: %w", err)
	}
	return nil
}
