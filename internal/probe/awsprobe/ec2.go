package awsprobe

import (
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/ppiankov/costspectre/internal/pricing"
	"github.com/ppiankov/costspectre/internal/probe"
)

const (
	// idleCPUThreshold is the average CPU percentage below which a running
	// instance is considered idle or oversized.
	idleCPUThreshold = 10.0
	// instanceSavingsFactor assumes rightsizing recovers half the cost.
	instanceSavingsFactor = 0.5
)

// CategoryEC2 is the category label for EC2 instance findings.
const CategoryEC2 = "EC2 Instances"

// EC2API is the minimal interface for EC2 instance operations.
type EC2API interface {
	DescribeInstances(ctx context.Context, input *ec2.DescribeInstancesInput, opts ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// EC2Scanner detects running instances with low CPU utilization.
type EC2Scanner struct {
	client       EC2API
	metrics      *MetricsFetcher
	region       string
	lookbackDays int
}

// NewEC2Scanner creates a scanner for EC2 instances.
func NewEC2Scanner(client EC2API, metrics *MetricsFetcher, region string, lookbackDays int) *EC2Scanner {
	return &EC2Scanner{client: client, metrics: metrics, region: region, lookbackDays: lookbackDays}
}

// Category returns the category label for this scanner's findings.
func (s *EC2Scanner) Category() string {
	return CategoryEC2
}

// Scan examines running EC2 instances in the region for low CPU utilization.
func (s *EC2Scanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	instances, err := s.listRunningInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list EC2 instances: %w", err)
	}
	if len(instances) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(instances))
	instMap := make(map[string]ec2types.Instance, len(instances))
	for _, inst := range instances {
		id := deref(inst.InstanceId)
		if id == "" {
			continue
		}
		ids = append(ids, id)
		instMap[id] = inst
	}

	cpuMap, err := s.metrics.FetchAverage(ctx, "AWS/EC2", "CPUUtilization", "InstanceId", ids, s.lookbackDays)
	if err != nil {
		slog.Warn("Failed to fetch EC2 CPU metrics", "region", s.region, "error", err)
		return nil, nil
	}

	var findings []probe.Finding
	for _, id := range ids {
		avgCPU, ok := cpuMap[id]
		if !ok {
			// No datapoints, assume the instance is busy
			continue
		}
		if avgCPU >= idleCPUThreshold {
			continue
		}

		inst := instMap[id]
		instanceType := string(inst.InstanceType)
		savings := pricing.MonthlyEC2Cost(instanceType, s.region) * instanceSavingsFactor

		findings = append(findings, probe.Finding{
			ResourceID:              id,
			ResourceType:            "EC2 Instance",
			Region:                  s.region,
			Issue:                   "Low CPU utilization",
			CurrentConfig:           instanceType,
			Recommendation:          "Consider downsizing or stopping",
			CPUUtilization:          avgCPU,
			EstimatedMonthlySavings: savings,
			Confidence:              0.9,
		})
	}

	return findings, nil
}

func (s *EC2Scanner) listRunningInstances(ctx context.Context) ([]ec2types.Instance, error) {
	var instances []ec2types.Instance
	paginator := ec2.NewDescribeInstancesPaginator(s.client, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, res := range page.Reservations {
			instances = append(instances, res.Instances...)
		}
	}
	return instances, nil
}
