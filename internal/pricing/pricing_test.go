package pricing

import "testing"

func TestMonthlyEC2Cost_KnownType(t *testing.T) {
	got := MonthlyEC2Cost("t3.medium", "us-east-1")
	want := 0.0416 * 730
	if got != want {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestMonthlyEC2Cost_RegionFallback(t *testing.T) {
	// Unknown region falls back to us-east-1 pricing
	got := MonthlyEC2Cost("t3.medium", "ap-southeast-9")
	want := MonthlyEC2Cost("t3.medium", "us-east-1")
	if got != want {
		t.Fatalf("expected fallback to us-east-1 rate %f, got %f", want, got)
	}
}

func TestMonthlyEC2Cost_UnknownTypeDefault(t *testing.T) {
	got := MonthlyEC2Cost("x99.mega", "us-east-1")
	if got != defaultEC2Monthly {
		t.Fatalf("expected default %f, got %f", defaultEC2Monthly, got)
	}
}

func TestMonthlyEBSCost(t *testing.T) {
	got := MonthlyEBSCost("gp3", 100, "us-east-1")
	if got != 8.0 {
		t.Fatalf("expected 8.0, got %f", got)
	}
}

func TestMonthlyEBSCost_UnknownTypeDefault(t *testing.T) {
	got := MonthlyEBSCost("gp9", 100, "us-east-1")
	if got != defaultEBSPerGiB*100 {
		t.Fatalf("expected %f, got %f", defaultEBSPerGiB*100, got)
	}
}

func TestMonthlyEIPCost(t *testing.T) {
	if got := MonthlyEIPCost("us-east-1"); got != 3.60 {
		t.Fatalf("expected 3.60, got %f", got)
	}
	if got := MonthlyEIPCost("ap-southeast-9"); got != 3.60 {
		t.Fatalf("expected fallback 3.60, got %f", got)
	}
}

func TestMonthlyRDSCost(t *testing.T) {
	got := MonthlyRDSCost("db.m5.large", "us-east-1", false)
	want := 0.171 * 730
	if got != want {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestMonthlyRDSCost_MultiAZDoubles(t *testing.T) {
	single := MonthlyRDSCost("db.m5.large", "us-east-1", false)
	multi := MonthlyRDSCost("db.m5.large", "us-east-1", true)
	if multi != single*2 {
		t.Fatalf("expected multi-AZ to double cost: %f vs %f", multi, single)
	}
}

func TestMonthlyRDSCost_UnknownClassDefault(t *testing.T) {
	if got := MonthlyRDSCost("db.x99.mega", "us-east-1", false); got != defaultRDSMonthly {
		t.Fatalf("expected default %f, got %f", defaultRDSMonthly, got)
	}
	if got := MonthlyRDSCost("db.x99.mega", "us-east-1", true); got != defaultRDSMonthly*2 {
		t.Fatalf("expected doubled default %f, got %f", defaultRDSMonthly*2, got)
	}
}

func TestMonthlySnapshotCost(t *testing.T) {
	if got := MonthlySnapshotCost(50, "us-east-1"); got != 2.5 {
		t.Fatalf("expected 2.5, got %f", got)
	}
}
