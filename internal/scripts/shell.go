package scripts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

const awsScriptHeader = `#!/bin/bash
# costspectre - AWS cleanup script
# Review and modify before running!

set -e

echo "costspectre - AWS Cleanup Script"
echo "================================"
echo ""
echo "WARNING: This script will delete resources. Review carefully!"
echo ""
read -p "Continue? (yes/no): " confirm

if [ "$confirm" != "yes" ]; then
    echo "Aborted."
    exit 0
fi

# Set your AWS region
AWS_REGION="${AWS_REGION:-us-east-1}"

echo "Using region: $AWS_REGION"
echo ""

`

const awsScriptFooter = `
echo ""
echo "Cleanup complete!"
echo "Note: Commands are commented out by default. Review and uncomment to execute."
`

const azureScript = `#!/bin/bash
# costspectre - Azure cleanup script
# Review and modify before running!

set -e

echo "costspectre - Azure Cleanup Script"
echo "=================================="
echo ""
echo "WARNING: This script will delete resources. Review carefully!"
echo ""

# Add Azure cleanup commands here based on findings
# Example: az disk delete --name <disk-name> --resource-group <rg>

echo "Cleanup complete!"
`

const gcpScript = `#!/bin/bash
# costspectre - GCP cleanup script
# Review and modify before running!

set -e

echo "costspectre - GCP Cleanup Script"
echo "================================"
echo ""
echo "WARNING: This script will delete resources. Review carefully!"
echo ""

# Add GCP cleanup commands here based on findings
# Example: gcloud compute disks delete <disk-name> --zone=<zone>

echo "Cleanup complete!"
`

// generateShell writes per-provider cleanup scripts for the providers that
// contributed findings.
func generateShell(result *analyzer.RunResult, outputDir string) ([]string, error) {
	var generated []string

	if hasCategoryContaining(result, "EC2", "EBS", "Elastic") {
		path := filepath.Join(outputDir, "cleanup_aws.sh")
		if err := writeFile(path, awsCleanupScript(result), 0o755); err != nil {
			return generated, err
		}
		generated = append(generated, path)
	}

	if hasCategoryContaining(result, "Virtual", "Managed") {
		path := filepath.Join(outputDir, "cleanup_azure.sh")
		if err := writeFile(path, azureScript, 0o755); err != nil {
			return generated, err
		}
		generated = append(generated, path)
	}

	if hasCategoryContaining(result, "Compute", "Persistent") {
		path := filepath.Join(outputDir, "cleanup_gcp.sh")
		if err := writeFile(path, gcpScript, 0o755); err != nil {
			return generated, err
		}
		generated = append(generated, path)
	}

	return generated, nil
}

// awsCleanupScript emits commented-out AWS CLI commands for the concrete
// resources found.
func awsCleanupScript(result *analyzer.RunResult) string {
	var b strings.Builder
	b.WriteString(awsScriptHeader)

	if bucket, ok := result.Categories.Bucket("EBS Volumes"); ok && len(bucket.Items) > 0 {
		b.WriteString("# Cleanup unattached EBS volumes\n")
		b.WriteString("echo 'Cleaning up unattached EBS volumes...'\n")
		for i, item := range bucket.Items {
			if i >= maxShellItems {
				break
			}
			if item.ResourceID == "" {
				continue
			}
			fmt.Fprintf(&b, "# aws ec2 delete-volume --volume-id %s --region $AWS_REGION\n", item.ResourceID)
		}
		b.WriteString("\n")
	}

	if bucket, ok := result.Categories.Bucket("Elastic IPs"); ok && len(bucket.Items) > 0 {
		b.WriteString("# Release unattached Elastic IPs\n")
		b.WriteString("echo 'Releasing unattached Elastic IPs...'\n")
		for i, item := range bucket.Items {
			if i >= maxShellItems {
				break
			}
			if item.ResourceID == "" {
				continue
			}
			fmt.Fprintf(&b, "# aws ec2 release-address --allocation-id %s --region $AWS_REGION\n", item.ResourceID)
		}
		b.WriteString("\n")
	}

	if bucket, ok := result.Categories.Bucket("EBS Snapshots"); ok && len(bucket.Items) > 0 {
		b.WriteString("# Delete stale EBS snapshots\n")
		b.WriteString("echo 'Deleting stale snapshots...'\n")
		for i, item := range bucket.Items {
			if i >= maxShellItems {
				break
			}
			if item.ResourceID == "" {
				continue
			}
			fmt.Fprintf(&b, "# aws ec2 delete-snapshot --snapshot-id %s --region $AWS_REGION\n", item.ResourceID)
		}
		b.WriteString("\n")
	}

	b.WriteString(awsScriptFooter)
	return b.String()
}
