package awsprobe

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ppiankov/costspectre/internal/probe"
)

// s3LifecycleSavings is a conservative monthly estimate for a bucket
// without lifecycle rules.
const s3LifecycleSavings = 50.0

// CategoryS3 is the category label for S3 findings.
const CategoryS3 = "S3 Storage"

// S3API is the minimal interface for S3 bucket operations.
type S3API interface {
	ListBuckets(ctx context.Context, input *s3.ListBucketsInput, opts ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	GetBucketLifecycleConfiguration(ctx context.Context, input *s3.GetBucketLifecycleConfigurationInput, opts ...func(*s3.Options)) (*s3.GetBucketLifecycleConfigurationOutput, error)
}

// S3Scanner detects buckets without lifecycle configuration. S3 buckets are
// global, so findings carry no region.
type S3Scanner struct {
	client S3API
}

// NewS3Scanner creates a scanner for S3 buckets.
func NewS3Scanner(client S3API) *S3Scanner {
	return &S3Scanner{client: client}
}

// Category returns the category label for this scanner's findings.
func (s *S3Scanner) Category() string {
	return CategoryS3
}

// Scan examines all buckets for missing lifecycle configuration.
func (s *S3Scanner) Scan(ctx context.Context) ([]probe.Finding, error) {
	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	var findings []probe.Finding
	for _, bucket := range out.Buckets {
		name := deref(bucket.Name)
		if name == "" {
			continue
		}

		// Any error (including NoSuchLifecycleConfiguration) is treated as
		// "no lifecycle rules", matching the provider's resilience contract.
		_, err := s.client.GetBucketLifecycleConfiguration(ctx, &s3.GetBucketLifecycleConfigurationInput{
			Bucket: awssdk.String(name),
		})
		if err == nil {
			continue
		}

		findings = append(findings, probe.Finding{
			ResourceID:              name,
			ResourceType:            "S3 Bucket",
			Issue:                   "No lifecycle policy",
			Recommendation:          "Implement lifecycle policy to move old data to cheaper storage",
			EstimatedMonthlySavings: s3LifecycleSavings,
			Confidence:              0.7,
		})
	}

	return findings, nil
}
