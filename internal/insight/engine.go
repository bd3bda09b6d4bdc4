// Package insight turns merged category buckets into a ranked, scored list
// of recommendations. Generation never aborts a run: the enhanced strategy
// degrades to the basic one on any failure or missing prerequisite.
package insight

import (
	"log/slog"
	"os"
	"sort"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// Mode identifies which generation strategy produced a result.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeEnhanced Mode = "enhanced"
)

// apiKeyEnv gates the enhanced strategy.
const apiKeyEnv = "OPENAI_API_KEY"

// Config controls engine construction.
type Config struct {
	Enhanced            bool
	Model               string
	ConfidenceThreshold float64
}

// Result carries the ranked recommendations plus explicit degradation
// state, so callers can tell "basic was requested" apart from "enhanced
// failed and fell back".
type Result struct {
	Recommendations []analyzer.Recommendation
	Mode            Mode
	Degraded        bool
	Reason          string
}

// strategy generates recommendations from category buckets. The enhanced
// implementation may fail; the basic one cannot.
type strategy interface {
	generate(categories *analyzer.Categories) ([]analyzer.Recommendation, error)
}

// Engine produces recommendations from category buckets.
type Engine struct {
	mode       Mode
	enhanced   strategy
	initReason string
}

// NewEngine builds an engine. Requesting enhanced mode without the required
// credential downgrades to basic at construction: logged, not fatal.
func NewEngine(cfg Config) *Engine {
	e := &Engine{mode: ModeBasic}

	if cfg.Enhanced {
		if os.Getenv(apiKeyEnv) == "" {
			slog.Warn("Enhanced insights requested but credential not set, using basic recommendations", "env", apiKeyEnv)
			e.initReason = "credential not available"
		} else {
			e.mode = ModeEnhanced
			e.enhanced = &enhancedStrategy{
				model:               cfg.Model,
				confidenceThreshold: cfg.ConfidenceThreshold,
			}
		}
	}

	return e
}

// Enhance generates the ranked recommendation sequence for the given
// categories. An enhanced-strategy failure is caught here and answered with
// basic output; the caller always receives a valid sequence.
func (e *Engine) Enhance(categories *analyzer.Categories) Result {
	if e.mode != ModeEnhanced {
		return Result{
			Recommendations: basicRecommendations(categories),
			Mode:            ModeBasic,
			Degraded:        e.initReason != "",
			Reason:          e.initReason,
		}
	}

	recs, err := e.enhanced.generate(categories)
	if err != nil {
		slog.Warn("Enhanced recommendation generation failed, falling back to basic", "error", err)
		return Result{
			Recommendations: basicRecommendations(categories),
			Mode:            ModeBasic,
			Degraded:        true,
			Reason:          err.Error(),
		}
	}

	return Result{Recommendations: recs, Mode: ModeEnhanced}
}

// basicRecommendations builds one recommendation per non-empty category and
// ranks the sequence by total savings descending. Ties keep category-map
// insertion order (stable sort).
func basicRecommendations(categories *analyzer.Categories) []analyzer.Recommendation {
	recs := make([]analyzer.Recommendation, 0, categories.Len())

	for _, name := range categories.Names() {
		bucket, ok := categories.Bucket(name)
		if !ok || bucket.Count <= 0 {
			continue
		}

		avg := bucket.Savings / float64(bucket.Count)
		entry := lookupCategory(name)

		recs = append(recs, analyzer.Recommendation{
			Category:              name,
			Priority:              classifyPriority(bucket.Savings, bucket.Count),
			FindingCount:          bucket.Count,
			TotalSavings:          bucket.Savings,
			AverageSavingsPerItem: avg,
			Recommendation:        entry.Remedy,
			RiskLevel:             entry.Risk,
			Effort:                entry.Effort,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].TotalSavings > recs[j].TotalSavings
	})

	return recs
}

// enhancedStrategy is the pluggable deeper-analysis path. It currently
// delegates to the basic generator; a richer scorer replaces generate
// without touching the fallback contract.
type enhancedStrategy struct {
	model               string
	confidenceThreshold float64
}

func (s *enhancedStrategy) generate(categories *analyzer.Categories) ([]analyzer.Recommendation, error) {
	return basicRecommendations(categories), nil
}
