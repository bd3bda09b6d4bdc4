// Package pricing provides approximate monthly cost estimates from an
// embedded on-demand price table. Estimates are heuristics for ranking
// savings opportunities, not billing-accurate figures.
package pricing

import (
	_ "embed"
	"encoding/json"
	"log/slog"
)

const hoursPerMonth = 730

//go:embed data.json
var pricingData []byte

// pricingDB holds the parsed pricing data keyed by resource type, then
// instance/volume type, then region.
var pricingDB map[string]map[string]map[string]float64

func init() {
	if err := json.Unmarshal(pricingData, &pricingDB); err != nil {
		slog.Warn("Failed to parse embedded pricing data", "error", err)
		pricingDB = make(map[string]map[string]map[string]float64)
	}
}

// lookupHourly returns the hourly on-demand price for a resource type,
// instance type, and region. Returns 0 and false if not found.
func lookupHourly(resourceType, instanceType, region string) (float64, bool) {
	types, ok := pricingDB[resourceType]
	if !ok {
		return 0, false
	}
	regions, ok := types[instanceType]
	if !ok {
		return 0, false
	}
	price, ok := regions[region]
	if !ok {
		// Fall back to us-east-1 as default
		price, ok = regions["us-east-1"]
		if !ok {
			return 0, false
		}
	}
	return price, true
}

// lookupMonthly returns the monthly flat rate for a resource type and region.
func lookupMonthly(resourceType, region string) (float64, bool) {
	types, ok := pricingDB[resourceType]
	if !ok {
		return 0, false
	}
	regions, ok := types["default"]
	if !ok {
		return 0, false
	}
	price, ok := regions[region]
	if !ok {
		price, ok = regions["us-east-1"]
		if !ok {
			return 0, false
		}
	}
	return price, true
}

// MonthlyEC2Cost returns the estimated monthly cost for an EC2 instance type
// in a region. Unknown instance types fall back to a conservative default so
// an opportunity is never silently priced at zero.
func MonthlyEC2Cost(instanceType, region string) float64 {
	hourly, ok := lookupHourly("ec2", instanceType, region)
	if !ok {
		return defaultEC2Monthly
	}
	return hourly * hoursPerMonth
}

// MonthlyEBSCost returns the estimated monthly cost for an EBS volume.
// Price is per GiB per month.
func MonthlyEBSCost(volumeType string, sizeGiB int, region string) float64 {
	perGiB, ok := lookupHourly("ebs", volumeType, region)
	if !ok {
		perGiB = defaultEBSPerGiB
	}
	return perGiB * float64(sizeGiB)
}

// MonthlyEIPCost returns the monthly cost of an unassociated Elastic IP.
func MonthlyEIPCost(region string) float64 {
	cost, ok := lookupMonthly("eip", region)
	if !ok {
		return defaultEIPMonthly
	}
	return cost
}

// MonthlyRDSCost returns the estimated monthly cost for an RDS instance.
// If multiAZ is true, the cost is doubled.
func MonthlyRDSCost(instanceClass, region string, multiAZ bool) float64 {
	hourly, ok := lookupHourly("rds", instanceClass, region)
	cost := defaultRDSMonthly
	if ok {
		cost = hourly * hoursPerMonth
	}
	if multiAZ {
		cost *= 2
	}
	return cost
}

// MonthlySnapshotCost returns the estimated monthly cost for an EBS
// snapshot. Price is per GiB per month.
func MonthlySnapshotCost(sizeGiB int, region string) float64 {
	perGiB, ok := lookupHourly("snapshot", "default", region)
	if !ok {
		perGiB = defaultSnapshotPerGiB
	}
	return perGiB * float64(sizeGiB)
}

// Fallback rates for resource types missing from the embedded table.
const (
	defaultEC2Monthly     = 100.0
	defaultRDSMonthly     = 120.0
	defaultEIPMonthly     = 3.60
	defaultEBSPerGiB      = 0.10
	defaultSnapshotPerGiB = 0.05
)
