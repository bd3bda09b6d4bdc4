package scripts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

const terraformHeader = `# costspectre - generated optimization scripts
# Review carefully before applying!

terraform {
  required_version = ">= 1.0"
  required_providers {
    aws = {
      source  = "hashicorp/aws"
      version = "~> 5.0"
    }
  }
}

provider "aws" {
  region = var.aws_region
}

`

const terraformVariables = `variable "aws_region" {
  description = "AWS region"
  type        = string
  default     = "us-east-1"
}
`

// generateTerraform writes main.tf, variables.tf, and a README.
func generateTerraform(result *analyzer.RunResult, outputDir string) ([]string, error) {
	var main strings.Builder
	main.WriteString(terraformHeader)

	for _, name := range result.Categories.Names() {
		bucket, ok := result.Categories.Bucket(name)
		if !ok {
			continue
		}
		switch {
		case strings.Contains(name, "EBS") || strings.Contains(name, "Disk"):
			main.WriteString(volumeCleanupBlocks(bucket))
		case strings.Contains(name, "S3") || strings.Contains(name, "Storage"):
			main.WriteString(lifecycleBlocks(bucket))
		}
	}

	mainPath := filepath.Join(outputDir, "main.tf")
	if err := writeFile(mainPath, main.String(), 0o644); err != nil {
		return nil, err
	}

	varsPath := filepath.Join(outputDir, "variables.tf")
	if err := writeFile(varsPath, terraformVariables, 0o644); err != nil {
		return nil, err
	}

	readmePath := filepath.Join(outputDir, "README.md")
	if err := writeFile(readmePath, terraformReadme(result), 0o644); err != nil {
		return nil, err
	}

	return []string{mainPath, varsPath, readmePath}, nil
}

// volumeCleanupBlocks emits commented-out blocks for unattached volumes
// and disks.
func volumeCleanupBlocks(bucket *analyzer.Bucket) string {
	var b strings.Builder
	b.WriteString("\n# Volume cleanup\n")

	for i, item := range bucket.Items {
		if i >= maxTerraformItems {
			break
		}
		if item.ResourceID == "" {
			continue
		}
		fmt.Fprintf(&b, `
# Remove unattached volume: %s
# Estimated savings: $%.2f/month
# resource "aws_ebs_volume" "%s" {
#   # This volume should be deleted
#   # Uncomment and run terraform destroy to remove
# }
`, item.ResourceID, item.EstimatedMonthlySavings, terraformName(item.ResourceID))
	}
	return b.String()
}

// lifecycleBlocks emits lifecycle configuration skeletons for buckets
// without lifecycle rules.
func lifecycleBlocks(bucket *analyzer.Bucket) string {
	var b strings.Builder
	b.WriteString("\n# S3 lifecycle policies\n")

	for i, item := range bucket.Items {
		if i >= maxS3Items {
			break
		}
		if item.ResourceID == "" {
			continue
		}
		fmt.Fprintf(&b, `
# Lifecycle policy for bucket: %s
# Estimated savings: $%.2f/month
# resource "aws_s3_bucket_lifecycle_configuration" "%s" {
#   bucket = "%s"
#   rule {
#     id     = "archive-old-objects"
#     status = "Enabled"
#     transition {
#       days          = 90
#       storage_class = "GLACIER"
#     }
#   }
# }
`, item.ResourceID, item.EstimatedMonthlySavings, terraformName(item.ResourceID), item.ResourceID)
	}
	return b.String()
}

func terraformReadme(result *analyzer.RunResult) string {
	var b strings.Builder
	b.WriteString("# Generated optimization scripts\n\n")
	fmt.Fprintf(&b, "Total estimated monthly savings: $%.2f\n\n", result.TotalSavings)
	b.WriteString("All resource blocks are commented out. Review each one, uncomment\n")
	b.WriteString("what you intend to apply, and run `terraform plan` before `apply`.\n\n")
	b.WriteString("## Generated files\n\n")
	b.WriteString("- `main.tf` - Main configuration\n")
	b.WriteString("- `variables.tf` - Configuration variables\n")
	return b.String()
}

// terraformName converts a resource ID into a valid Terraform identifier.
func terraformName(id string) string {
	r := strings.NewReplacer("-", "_", ".", "_")
	return r.Replace(id)
}
