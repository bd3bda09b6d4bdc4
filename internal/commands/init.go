package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate sample config and IAM policy",
	Long:  `Creates a sample .costspectre.yaml config file and an IAM policy JSON file for read-only access.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".costspectre.yaml"
	policyPath := "costspectre-policy.json"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}

	if err := writeIfNotExists(policyPath, sampleIAMPolicy, initFlags.force); err != nil {
		return err
	}

	fmt.Printf("Created %s and %s\n", configPath, policyPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit .costspectre.yaml to enable providers and customize settings")
	fmt.Println("  2. Apply costspectre-policy.json to your AWS IAM role/user")
	fmt.Println("  3. Run: costspectre analyze")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, []byte(content), 0o644)
}

const sampleConfig = `# costspectre configuration
# See: https://github.com/ppiankov/costspectre

aws:
  enabled: true
  # AWS profile (or set AWS_PROFILE env var)
  # profile: default
  # Regions to scan (default: all enabled regions)
  # regions:
  #   - us-east-1
  #   - us-west-2
  # Lookback window for utilization metrics (days)
  lookback_days: 30
  # Age threshold for stale snapshots (days)
  stale_days: 90

azure:
  enabled: false
  # subscription_id: 00000000-0000-0000-0000-000000000000

gcp:
  enabled: false
  # project_id: my-project

ai:
  # Requires OPENAI_API_KEY in the environment
  enabled: false
  model: gpt-4
  confidence_threshold: 0.7

# Directory for analysis artifacts, reports, and generated scripts
output: output
`

const sampleIAMPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Sid": "CostSpectreReadOnly",
      "Effect": "Allow",
      "Action": [
        "ec2:DescribeInstances",
        "ec2:DescribeVolumes",
        "ec2:DescribeAddresses",
        "ec2:DescribeSnapshots",
        "ec2:DescribeRegions",
        "rds:DescribeDBInstances",
        "s3:ListAllMyBuckets",
        "s3:GetLifecycleConfiguration",
        "cloudwatch:GetMetricData",
        "sts:GetCallerIdentity"
      ],
      "Resource": "*"
    }
  ]
}
`
