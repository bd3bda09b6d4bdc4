// Package report renders a run result as human- or machine-readable
// artifacts. All reporters consume the same serialized structure; its field
// names are a stable contract.
package report

import (
	"github.com/ppiankov/costspectre/internal/analyzer"
)

// Reporter renders a run result to its output.
type Reporter interface {
	Generate(result *analyzer.RunResult) error
}
