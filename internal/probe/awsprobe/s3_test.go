package awsprobe

import (
	"context"
	"fmt"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type mockS3Client struct {
	buckets       []s3types.Bucket
	withLifecycle map[string]bool
}

func (m *mockS3Client) ListBuckets(_ context.Context, _ *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	return &s3.ListBucketsOutput{Buckets: m.buckets}, nil
}

func (m *mockS3Client) GetBucketLifecycleConfiguration(_ context.Context, input *s3.GetBucketLifecycleConfigurationInput, _ ...func(*s3.Options)) (*s3.GetBucketLifecycleConfigurationOutput, error) {
	if m.withLifecycle[*input.Bucket] {
		return &s3.GetBucketLifecycleConfigurationOutput{}, nil
	}
	return nil, fmt.Errorf("NoSuchLifecycleConfiguration: the lifecycle configuration does not exist")
}

func TestS3Scanner_BucketWithoutLifecycle(t *testing.T) {
	mock := &mockS3Client{
		buckets: []s3types.Bucket{
			{Name: awssdk.String("data-lake")},
			{Name: awssdk.String("archived")},
		},
		withLifecycle: map[string]bool{"archived": true},
	}

	scanner := NewS3Scanner(mock)
	findings, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}

	f := findings[0]
	if f.ResourceID != "data-lake" {
		t.Fatalf("expected data-lake, got %s", f.ResourceID)
	}
	if f.Region != "" {
		t.Fatalf("expected no region for global S3 finding, got %s", f.Region)
	}
	if f.EstimatedMonthlySavings != 50.0 {
		t.Fatalf("expected savings 50.0, got %f", f.EstimatedMonthlySavings)
	}
	if f.Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %f", f.Confidence)
	}
}

func TestS3Scanner_NoBuckets(t *testing.T) {
	scanner := NewS3Scanner(&mockS3Client{})
	findings, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
}

func TestS3Scanner_Category(t *testing.T) {
	scanner := &S3Scanner{}
	if scanner.Category() != CategoryS3 {
		t.Fatalf("expected %s, got %s", CategoryS3, scanner.Category())
	}
}
