package analyzer

import (
	"sort"
	"sync"
	"time"

	"github.com/ppiankov/costspectre/internal/probe"
)

// RunResult is the per-invocation aggregate: merged category buckets, the
// ranked recommendations, and the running total of estimated savings. Its
// JSON form is the artifact consumed by report and script generators, so
// field names are a stable contract.
type RunResult struct {
	Timestamp       time.Time        `json:"timestamp"`
	Categories      *Categories      `json:"categories"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalSavings    float64          `json:"total_savings"`

	mu sync.Mutex
}

// NewRunResult creates an empty run result with the timestamp fixed now.
func NewRunResult() *RunResult {
	return &RunResult{
		Timestamp:       time.Now().UTC(),
		Categories:      NewCategories(),
		Recommendations: []Recommendation{},
	}
}

// Merge folds one provider's category results into the run. Counts and
// savings add, items append in order; a category absent so far gets a fresh
// bucket. TotalSavings grows by this call's contribution only, so merges
// stream without re-summing the whole structure.
//
// Category keys within one payload are processed in sorted order so item
// concatenation is reproducible for a given provider invocation order.
// Merges serialize on an internal mutex, making Merge safe to call from
// concurrently running probes.
func (r *RunResult) Merge(results map[string]probe.CategoryResult) {
	if len(results) == 0 {
		return
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		data := results[name]
		bucket := r.Categories.ensure(name)
		bucket.Count += data.Count
		bucket.Savings += data.Savings
		bucket.Items = append(bucket.Items, data.Items...)
		r.TotalSavings += data.Savings
	}
}

// SumSavings recomputes total savings from the category buckets. The result
// must equal the incrementally maintained TotalSavings.
func (r *RunResult) SumSavings() float64 {
	var total float64
	for _, name := range r.Categories.Names() {
		if b, ok := r.Categories.Bucket(name); ok {
			total += b.Savings
		}
	}
	return total
}

// SetRecommendations replaces the ranked recommendation sequence.
func (r *RunResult) SetRecommendations(recs []Recommendation) {
	if recs == nil {
		recs = []Recommendation{}
	}
	r.Recommendations = recs
}
