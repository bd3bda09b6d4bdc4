package insight

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ppiankov/costspectre/internal/analyzer"
	"github.com/ppiankov/costspectre/internal/probe"
)

func buildCategories(t *testing.T, entries ...struct {
	Name    string
	Count   int
	Savings float64
}) *analyzer.Categories {
	t.Helper()
	r := analyzer.NewRunResult()
	for _, e := range entries {
		items := make([]probe.Finding, e.Count)
		r.Merge(map[string]probe.CategoryResult{
			e.Name: {Count: e.Count, Savings: e.Savings, Items: items},
		})
	}
	return r.Categories
}

type catSpec = struct {
	Name    string
	Count   int
	Savings float64
}

func TestEnhance_RanksBySavingsDescending(t *testing.T) {
	categories := buildCategories(t,
		catSpec{"EBS Volumes", 3, 24.0},
		catSpec{"EC2 Instances", 2, 300.0},
		catSpec{"Elastic IPs", 1, 3.6},
	)

	engine := NewEngine(Config{})
	result := engine.Enhance(categories)

	if result.Mode != ModeBasic {
		t.Fatalf("expected basic mode, got %s", result.Mode)
	}
	if result.Degraded {
		t.Fatal("basic-by-request must not be marked degraded")
	}
	if len(result.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].Category != "EC2 Instances" {
		t.Fatalf("expected EC2 Instances first, got %s", result.Recommendations[0].Category)
	}
	if result.Recommendations[2].Category != "Elastic IPs" {
		t.Fatalf("expected Elastic IPs last, got %s", result.Recommendations[2].Category)
	}
}

func TestEnhance_TiesKeepInsertionOrder(t *testing.T) {
	categories := buildCategories(t,
		catSpec{"Charlie", 1, 100.0},
		catSpec{"Alpha", 1, 50.0},
		catSpec{"Bravo", 1, 50.0},
	)

	result := NewEngine(Config{}).Enhance(categories)

	got := make([]string, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		got = append(got, rec.Category)
	}
	want := []string{"Charlie", "Alpha", "Bravo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestEnhance_ZeroCountCategoryExcluded(t *testing.T) {
	categories := buildCategories(t,
		catSpec{"EC2 Instances", 1, 100.0},
		catSpec{"S3 Storage", 0, 0},
	)

	result := NewEngine(Config{}).Enhance(categories)

	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].Category != "EC2 Instances" {
		t.Fatalf("unexpected category %s", result.Recommendations[0].Category)
	}
}

func TestEnhance_AverageSavingsPerItem(t *testing.T) {
	categories := buildCategories(t, catSpec{"EBS Volumes", 4, 32.0})

	result := NewEngine(Config{}).Enhance(categories)
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].AverageSavingsPerItem != 8.0 {
		t.Fatalf("expected average 8.0, got %f", result.Recommendations[0].AverageSavingsPerItem)
	}
}

func TestEnhance_UnknownCategoryDefaults(t *testing.T) {
	categories := buildCategories(t, catSpec{"Quantum Relays", 2, 20.0})

	result := NewEngine(Config{}).Enhance(categories)
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}

	rec := result.Recommendations[0]
	if rec.Recommendation != "Review and optimize resources" {
		t.Fatalf("unexpected remedy: %s", rec.Recommendation)
	}
	if rec.RiskLevel != analyzer.RiskVeryLow {
		t.Fatalf("expected Very Low risk, got %s", rec.RiskLevel)
	}
	if rec.Effort != analyzer.EffortMedium {
		t.Fatalf("expected Medium effort, got %s", rec.Effort)
	}
}

func TestNewEngine_MissingCredentialDowngrades(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	engine := NewEngine(Config{Enhanced: true})
	categories := buildCategories(t, catSpec{"EC2 Instances", 1, 100.0})

	result := engine.Enhance(categories)
	if result.Mode != ModeBasic {
		t.Fatalf("expected basic mode without credential, got %s", result.Mode)
	}
	if !result.Degraded {
		t.Fatal("expected degraded flag when enhanced was requested without credential")
	}
	if result.Reason == "" {
		t.Fatal("expected a degradation reason")
	}
}

func TestEnhance_DegradedOutputMatchesBasic(t *testing.T) {
	t.Setenv(apiKeyEnv, "")

	categories := buildCategories(t,
		catSpec{"EC2 Instances", 2, 300.0},
		catSpec{"EBS Volumes", 3, 24.0},
	)

	basic := NewEngine(Config{}).Enhance(categories)
	degraded := NewEngine(Config{Enhanced: true}).Enhance(categories)

	basicJSON, err := json.Marshal(basic.Recommendations)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	degradedJSON, err := json.Marshal(degraded.Recommendations)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(basicJSON) != string(degradedJSON) {
		t.Fatalf("degraded output differs from basic:\n%s\n%s", basicJSON, degradedJSON)
	}
}

type failingStrategy struct{}

func (failingStrategy) generate(*analyzer.Categories) ([]analyzer.Recommendation, error) {
	return nil, errors.New("upstream unavailable")
}

func TestEnhance_StrategyFailureFallsBack(t *testing.T) {
	engine := &Engine{mode: ModeEnhanced, enhanced: failingStrategy{}}
	categories := buildCategories(t, catSpec{"EC2 Instances", 1, 100.0})

	result := engine.Enhance(categories)
	if result.Mode != ModeBasic {
		t.Fatalf("expected fallback to basic, got %s", result.Mode)
	}
	if !result.Degraded {
		t.Fatal("expected degraded flag after strategy failure")
	}
	if result.Reason != "upstream unavailable" {
		t.Fatalf("expected failure reason, got %q", result.Reason)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected basic recommendations, got %d", len(result.Recommendations))
	}
}

func TestEnhance_EndToEndPriorities(t *testing.T) {
	categories := buildCategories(t,
		catSpec{"EC2 Instances", 5, 12500.0},
		catSpec{"EBS Volumes", 60, 480.0},
		catSpec{"Elastic IPs", 12, 43.2},
	)

	result := NewEngine(Config{}).Enhance(categories)
	byCategory := make(map[string]analyzer.Recommendation)
	for _, rec := range result.Recommendations {
		byCategory[rec.Category] = rec
	}

	if byCategory["EC2 Instances"].Priority != analyzer.PriorityHigh {
		t.Fatalf("expected EC2 Instances High, got %s", byCategory["EC2 Instances"].Priority)
	}
	// Count above 50 outranks the modest savings
	if byCategory["EBS Volumes"].Priority != analyzer.PriorityHigh {
		t.Fatalf("expected EBS Volumes High, got %s", byCategory["EBS Volumes"].Priority)
	}
	// Count 12 crosses the medium threshold
	if byCategory["Elastic IPs"].Priority != analyzer.PriorityMedium {
		t.Fatalf("expected Elastic IPs Medium, got %s", byCategory["Elastic IPs"].Priority)
	}

	if result.Recommendations[0].Category != "EC2 Instances" {
		t.Fatalf("expected EC2 Instances ranked first, got %s", result.Recommendations[0].Category)
	}
}
