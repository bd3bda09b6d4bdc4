package awsprobe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/ppiankov/costspectre/internal/pricing"
	"github.com/ppiankov/costspectre/internal/probe"
)

const (
	// rdsIdleCPUThreshold is the average CPU percentage below which a
	// database instance is considered oversized.
	rdsIdleCPUThreshold = 20.0
	// rdsSavingsFactor assumes downsizing recovers roughly a third of the cost.
	rdsSavingsFactor = 0.3
)

// CategoryRDS is the category label for RDS findings.
const CategoryRDS = "RDS Databases"

// RDSAPI is the minimal interface for RDS operations.
type RDSAPI interface {
	DescribeDBInstances(ctx context.Context, input *rds.DescribeDBInstancesInput, opts ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

// RDSScanner detects underutilized RDS instances.
type RDSScanner struct {
	client       RDSAPI
	metrics      *MetricsFetcher
	region       string
	lookbackDays int
}

// NewRDSScanner creates a scanner for RDS instances.
func NewRDSScanner(client RDSAPI, metrics *MetricsFetcher, region string, lookbackDays int) *RDSScanner {
	return &RDSScanner{client: client, metrics: metrics, region: region, lookbackDays: lookbackDays}
}

// Category returns the category label for this scanner's findings.
func (s *RDSScanner) Category() string {
	return CategoryRDS
}

// Scan examines all available RDS instances for low CPU utilization.
func (s *RDSScanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	instances, err := s.listDBInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list RDS instances: %w", err)
	}
	if len(instances) == 0 {
		return nil, nil
	}

	var ids []string
	instMap := make(map[string]rdstypes.DBInstance, len(instances))
	for _, inst := range instances {
		id := deref(inst.DBInstanceIdentifier)
		if id == "" {
			continue
		}
		// Only check instances that are "available" (running)
		if deref(inst.DBInstanceStatus) != "available" {
			continue
		}
		ids = append(ids, id)
		instMap[id] = inst
	}

	if len(ids) == 0 {
		return nil, nil
	}

	cpuMap, err := s.metrics.FetchAverage(ctx, "AWS/RDS", "CPUUtilization", "DBInstanceIdentifier", ids, s.lookbackDays)
	if err != nil {
		slog.Warn("Failed to fetch RDS CPU metrics", "region", s.region, "error", err)
		return nil, nil
	}

	var findings []probe.Finding
	for _, id := range ids {
		avgCPU, ok := cpuMap[id]
		if !ok {
			continue
		}
		if avgCPU >= rdsIdleCPUThreshold {
			continue
		}

		inst := instMap[id]
		instanceClass := deref(inst.DBInstanceClass)
		multiAZ := inst.MultiAZ != nil && *inst.MultiAZ
		savings := pricing.MonthlyRDSCost(instanceClass, s.region, multiAZ) * rdsSavingsFactor

		findings = append(findings, probe.Finding{
			ResourceID:              id,
			ResourceType:            "RDS Instance",
			Region:                  s.region,
			Issue:                   "Low CPU utilization",
			CurrentConfig:           instanceClass,
			Recommendation:          "Consider downsizing",
			CPUUtilization:          avgCPU,
			EstimatedMonthlySavings: savings,
			Confidence:              0.85,
		})
	}

	return findings, nil
}

func (s *RDSScanner) listDBInstances(ctx context.Context) ([]rdstypes.DBInstance, error) {
	var instances []rdstypes.DBInstance
	paginator := rds.NewDescribeDBInstancesPaginator(s.client, &rds.DescribeDBInstancesInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		instances = append(instances, page.DBInstances...)
	}
	return instances, nil
}
