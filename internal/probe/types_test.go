package probe

import "testing"

func TestSummarize(t *testing.T) {
	findings := []Finding{
		{ResourceID: "a", EstimatedMonthlySavings: 10.5},
		{ResourceID: "b", EstimatedMonthlySavings: 4.5},
	}
	result := Summarize(findings)
	if result.Count != 2 {
		t.Fatalf("expected count 2, got %d", result.Count)
	}
	if result.Savings != 15.0 {
		t.Fatalf("expected savings 15.0, got %f", result.Savings)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
}

func TestSummarize_NilFindings(t *testing.T) {
	result := Summarize(nil)
	if result.Items == nil {
		t.Fatal("expected non-nil items for nil findings")
	}
	if result.Count != 0 {
		t.Fatalf("expected count 0, got %d", result.Count)
	}
}
