package awsprobe

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/ppiankov/costspectre/internal/pricing"
	"github.com/ppiankov/costspectre/internal/probe"
)

// CategoryEBS is the category label for EBS volume findings.
const CategoryEBS = "EBS Volumes"

// EBSAPI is the minimal interface for EBS volume operations.
type EBSAPI interface {
	DescribeVolumes(ctx context.Context, input *ec2.DescribeVolumesInput, opts ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
}

// EBSScanner detects unattached EBS volumes.
type EBSScanner struct {
	client EBSAPI
	region string
}

// NewEBSScanner creates a scanner for EBS volumes.
func NewEBSScanner(client EBSAPI, region string) *EBSScanner {
	return &EBSScanner{client: client, region: region}
}

// Category returns the category label for this scanner's findings.
func (s *EBSScanner) Category() string {
	return CategoryEBS
}

// Scan examines all EBS volumes in the region for unattached volumes.
func (s *EBSScanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	volumes, err := s.listAvailableVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list EBS volumes: %w", err)
	}

	var findings []probe.Finding
	for _, vol := range volumes {
		volID := deref(vol.VolumeId)
		if volID == "" {
			continue
		}

		volumeType := string(vol.VolumeType)
		sizeGiB := int(derefInt32(vol.Size))
		savings := pricing.MonthlyEBSCost(volumeType, sizeGiB, s.region)

		findings = append(findings, probe.Finding{
			ResourceID:              volID,
			ResourceType:            "EBS Volume",
			Region:                  s.region,
			Issue:                   "Unattached volume",
			CurrentConfig:           fmt.Sprintf("%dGB %s", sizeGiB, volumeType),
			Recommendation:          "Delete if not needed or create snapshot",
			EstimatedMonthlySavings: savings,
			Confidence:              0.99,
		})
	}

	return findings, nil
}

func (s *EBSScanner) listAvailableVolumes(ctx context.Context) ([]ec2types.Volume, error) {
	var volumes []ec2types.Volume
	paginator := ec2.NewDescribeVolumesPaginator(s.client, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("status"),
				Values: []string{"available"},
			},
		},
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, page.Volumes...)
	}
	return volumes, nil
}
