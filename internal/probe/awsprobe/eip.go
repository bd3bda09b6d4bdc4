package awsprobe

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/ppiankov/costspectre/internal/pricing"
	"github.com/ppiankov/costspectre/internal/probe"
)

// CategoryEIP is the category label for Elastic IP findings.
const CategoryEIP = "Elastic IPs"

// EIPAPI is the minimal interface for Elastic IP operations.
type EIPAPI interface {
	DescribeAddresses(ctx context.Context, input *ec2.DescribeAddressesInput, opts ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error)
}

// EIPScanner detects unassociated Elastic IPs.
type EIPScanner struct {
	client EIPAPI
	region string
}

// NewEIPScanner creates a scanner for Elastic IPs.
func NewEIPScanner(client EIPAPI, region string) *EIPScanner {
	return &EIPScanner{client: client, region: region}
}

// Category returns the category label for this scanner's findings.
func (s *EIPScanner) Category() string {
	return CategoryEIP
}

// Scan examines all Elastic IPs in the region for unassociated addresses.
func (s *EIPScanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	out, err := s.client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe addresses: %w", err)
	}

	var findings []probe.Finding
	for _, addr := range out.Addresses {
		// EIP is unassociated if it has no association ID
		if addr.AssociationId != nil {
			continue
		}

		allocID := deref(addr.AllocationId)
		publicIP := deref(addr.PublicIp)

		findings = append(findings, probe.Finding{
			ResourceID:              allocID,
			ResourceType:            "Elastic IP",
			Region:                  s.region,
			Issue:                   fmt.Sprintf("Unattached Elastic IP %s", publicIP),
			Recommendation:          "Release if not needed",
			EstimatedMonthlySavings: pricing.MonthlyEIPCost(s.region),
			Confidence:              1.0,
		})
	}

	return findings, nil
}
