package probe

import "context"

// Finding represents a single cost-optimization opportunity on one resource.
// ResourceID is unique within a provider+region scope, not globally.
type Finding struct {
	ResourceID              string  `json:"resource_id"`
	ResourceType            string  `json:"resource_type"`
	Region                  string  `json:"region,omitempty"`
	Issue                   string  `json:"issue"`
	CurrentConfig           string  `json:"current_config,omitempty"`
	Recommendation          string  `json:"recommendation"`
	CPUUtilization          float64 `json:"cpu_utilization,omitempty"`
	EstimatedMonthlySavings float64 `json:"estimated_monthly_savings"`
	Confidence              float64 `json:"confidence"`
}

// CategoryResult is one provider's contribution for a single category.
// Zero values for any field are valid: a partial payload merges as 0/0/empty.
type CategoryResult struct {
	Count   int       `json:"count"`
	Savings float64   `json:"savings"`
	Items   []Finding `json:"items"`
}

// Summarize builds a CategoryResult from a list of findings.
func Summarize(findings []Finding) CategoryResult {
	if findings == nil {
		findings = []Finding{}
	}
	result := CategoryResult{Count: len(findings), Items: findings}
	for _, f := range findings {
		result.Savings += f.EstimatedMonthlySavings
	}
	return result
}

// Probe scans one cloud provider and reports findings grouped by category.
// Category names are provider-defined labels, not a fixed enum.
type Probe interface {
	Name() string
	Analyze(ctx context.Context) (map[string]CategoryResult, error)
}
