package insight

import "github.com/ppiankov/costspectre/internal/analyzer"

// registryEntry holds the remedy text, risk class, and effort class for one
// known category. One structured entry per category replaces parallel
// lookup tables.
type registryEntry struct {
	Remedy string
	Risk   analyzer.RiskLevel
	Effort analyzer.Effort
}

// genericEntry is the fallback for category names no provider has
// registered. Lookups never fail.
var genericEntry = registryEntry{
	Remedy: "Review and optimize resources",
	Risk:   analyzer.RiskVeryLow,
	Effort: analyzer.EffortMedium,
}

var categoryRegistry = map[string]registryEntry{
	"EC2 Instances":    {"Review and rightsize or terminate idle instances", analyzer.RiskMedium, analyzer.EffortMedium},
	"EBS Volumes":      {"Delete unattached volumes or create snapshots", analyzer.RiskLow, analyzer.EffortLow},
	"EBS Snapshots":    {"Delete stale snapshots that are no longer needed", analyzer.RiskVeryLow, analyzer.EffortMedium},
	"Elastic IPs":      {"Release unattached Elastic IPs", analyzer.RiskVeryLow, analyzer.EffortLow},
	"RDS Databases":    {"Downsize or use reserved instances for better pricing", analyzer.RiskMedium, analyzer.EffortMedium},
	"S3 Storage":       {"Implement lifecycle policies to optimize storage costs", analyzer.RiskVeryLow, analyzer.EffortMedium},
	"Virtual Machines": {"Deallocate stopped VMs or resize active ones", analyzer.RiskMedium, analyzer.EffortMedium},
	"Managed Disks":    {"Clean up unattached disks", analyzer.RiskLow, analyzer.EffortLow},
	"Storage Accounts": {"Optimize storage tier based on access patterns", analyzer.RiskVeryLow, analyzer.EffortMedium},
	"Compute Instances": {"Review instance utilization and rightsizing", analyzer.RiskMedium, analyzer.EffortMedium},
	"Persistent Disks":  {"Remove unattached disks", analyzer.RiskLow, analyzer.EffortLow},
	"Cloud Storage":     {"Configure lifecycle management for automatic optimization", analyzer.RiskVeryLow, analyzer.EffortMedium},
}

// lookupCategory returns the registry entry for a category name, or the
// generic entry for unknown names.
func lookupCategory(name string) registryEntry {
	if entry, ok := categoryRegistry[name]; ok {
		return entry
	}
	return genericEntry
}

// classifyPriority ranks a category by total savings and finding count.
// The conditions are checked in this exact order; a category qualifies as
// High on either savings or count alone.
func classifyPriority(savings float64, count int) analyzer.Priority {
	switch {
	case savings > 10000 || count > 50:
		return analyzer.PriorityHigh
	case savings > 1000 || count > 10:
		return analyzer.PriorityMedium
	default:
		return analyzer.PriorityLow
	}
}
