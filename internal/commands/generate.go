package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/costspectre/internal/scripts"
)

var generateFlags struct {
	input      string
	scriptType string
	outputDir  string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate advisory remediation scripts",
	Long: `Generate Terraform and shell remediation scripts from a saved analysis.
All destructive commands in the generated files are commented out; review
and uncomment what you intend to apply.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.input, "input", "i", "", "Analysis artifact path (default: <output>/analysis_results.json)")
	generateCmd.Flags().StringVarP(&generateFlags.scriptType, "type", "t", "all", "Script type: terraform, shell, all")
	generateCmd.Flags().StringVarP(&generateFlags.outputDir, "output", "o", "", "Directory for generated scripts (default: <output>/scripts)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	path := generateFlags.input
	if path == "" {
		path = filepath.Join(cfg.OutputDir(), "analysis_results.json")
	}

	result, err := loadArtifact(path)
	if err != nil {
		return err
	}

	dir := generateFlags.outputDir
	if dir == "" {
		dir = filepath.Join(cfg.OutputDir(), "scripts")
	}

	files, err := scripts.Generate(result, generateFlags.scriptType, dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Println("No scripts generated: no matching categories in the analysis")
		return nil
	}

	fmt.Printf("Generated %d file(s) in %s:\n", len(files), dir)
	for _, f := range files {
		fmt.Printf("  %s\n", filepath.Base(f))
	}
	fmt.Println("\nAll commands are commented out. Review before running anything.")
	return nil
}
