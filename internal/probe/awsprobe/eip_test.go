package awsprobe

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

type mockEIPClient struct {
	addresses []ec2types.Address
}

func (m *mockEIPClient) DescribeAddresses(_ context.Context, _ *ec2.DescribeAddressesInput, _ ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error) {
	return &ec2.DescribeAddressesOutput{Addresses: m.addresses}, nil
}

func TestEIPScanner_UnassociatedEIP(t *testing.T) {
	mock := &mockEIPClient{
		addresses: []ec2types.Address{
			{
				AllocationId: awssdk.String("eipalloc-unassoc001"),
				PublicIp:     awssdk.String("54.1.2.3"),
				Domain:       ec2types.DomainTypeVpc,
				// No AssociationId = unassociated
			},
		},
	}

	scanner := NewEIPScanner(mock, "us-east-1")
	findings, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.ResourceID != "eipalloc-unassoc001" {
		t.Fatalf("expected eipalloc-unassoc001, got %s", f.ResourceID)
	}
	if f.EstimatedMonthlySavings != 3.60 {
		t.Fatalf("expected savings 3.60, got %f", f.EstimatedMonthlySavings)
	}
	if f.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %f", f.Confidence)
	}
}

func TestEIPScanner_AssociatedEIPNotFlagged(t *testing.T) {
	mock := &mockEIPClient{
		addresses: []ec2types.Address{
			{
				AllocationId:  awssdk.String("eipalloc-assoc001"),
				PublicIp:      awssdk.String("54.1.2.4"),
				AssociationId: awssdk.String("eipassoc-12345"),
				Domain:        ec2types.DomainTypeVpc,
			},
		},
	}

	scanner := NewEIPScanner(mock, "us-east-1")
	findings, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings for associated EIP, got %d", len(findings))
	}
}

func TestEIPScanner_MixedEIPs(t *testing.T) {
	mock := &mockEIPClient{
		addresses: []ec2types.Address{
			{
				AllocationId:  awssdk.String("eipalloc-1"),
				PublicIp:      awssdk.String("54.1.1.1"),
				AssociationId: awssdk.String("eipassoc-1"),
			},
			{
				AllocationId: awssdk.String("eipalloc-2"),
				PublicIp:     awssdk.String("54.1.1.2"),
				// unassociated
			},
			{
				AllocationId:  awssdk.String("eipalloc-3"),
				PublicIp:      awssdk.String("54.1.1.3"),
				AssociationId: awssdk.String("eipassoc-3"),
			},
		},
	}

	scanner := NewEIPScanner(mock, "us-east-1")
	findings, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding (only unassociated), got %d", len(findings))
	}
}

func TestEIPScanner_Category(t *testing.T) {
	scanner := &EIPScanner{}
	if scanner.Category() != CategoryEIP {
		t.Fatalf("expected %s, got %s", CategoryEIP, scanner.Category())
	}
}
