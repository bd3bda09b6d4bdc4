package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// JSONReporter writes the run-result artifact verbatim.
type JSONReporter struct {
	Writer io.Writer
}

// Generate writes indented JSON with the stable artifact keys:
// timestamp, categories, recommendations, total_savings.
func (r *JSONReporter) Generate(result *analyzer.RunResult) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode analysis results: %w", err)
	}
	return nil
}
