package awsprobe

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/ppiankov/costspectre/internal/pricing"
	"github.com/ppiankov/costspectre/internal/probe"
)

// CategorySnapshot is the category label for EBS snapshot findings.
const CategorySnapshot = "EBS Snapshots"

// SnapshotAPI is the minimal interface for snapshot operations.
type SnapshotAPI interface {
	DescribeSnapshots(ctx context.Context, input *ec2.DescribeSnapshotsInput, opts ...func(*ec2.Options)) (*ec2.DescribeSnapshotsOutput, error)
}

// SnapshotScanner detects stale self-owned snapshots.
type SnapshotScanner struct {
	client    SnapshotAPI
	region    string
	staleDays int
}

// NewSnapshotScanner creates a scanner for EBS snapshots.
func NewSnapshotScanner(client SnapshotAPI, region string, staleDays int) *SnapshotScanner {
	return &SnapshotScanner{client: client, region: region, staleDays: staleDays}
}

// Category returns the category label for this scanner's findings.
func (s *SnapshotScanner) Category() string {
	return CategorySnapshot
}

// Scan examines all self-owned snapshots for entries past the stale threshold.
func (s *SnapshotScanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	snapshots, err := s.listOwnedSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	now := time.Now().UTC()
	var findings []probe.Finding
	for _, snap := range snapshots {
		snapID := deref(snap.SnapshotId)
		if snapID == "" || snap.StartTime == nil {
			continue
		}

		ageDays := int(now.Sub(*snap.StartTime).Hours() / 24)
		if ageDays < s.staleDays {
			continue
		}

		sizeGiB := int(derefInt32(snap.VolumeSize))
		savings := pricing.MonthlySnapshotCost(sizeGiB, s.region)

		findings = append(findings, probe.Finding{
			ResourceID:              snapID,
			ResourceType:            "EBS Snapshot",
			Region:                  s.region,
			Issue:                   fmt.Sprintf("Snapshot is %d days old", ageDays),
			CurrentConfig:           fmt.Sprintf("%dGB", sizeGiB),
			Recommendation:          "Delete if no longer needed",
			EstimatedMonthlySavings: savings,
			Confidence:              0.8,
		})
	}

	return findings, nil
}

func (s *SnapshotScanner) listOwnedSnapshots(ctx context.Context) ([]ec2types.Snapshot, error) {
	var snapshots []ec2types.Snapshot
	paginator := ec2.NewDescribeSnapshotsPaginator(s.client, &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{"self"},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, page.Snapshots...)
	}
	return snapshots, nil
}
