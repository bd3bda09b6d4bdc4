// Package scripts emits advisory remediation scripts from a run result.
// Every destructive command is commented out by design; the output is a
// reviewed starting point, never an executable cleanup.
package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/costspectre/internal/analyzer"
)

// Script types accepted by Generate.
const (
	TypeTerraform = "terraform"
	TypeShell     = "shell"
	TypeAll       = "all"
)

// Per-section item caps keep generated files reviewable.
const (
	maxShellItems     = 10
	maxTerraformItems = 5
	maxS3Items        = 3
)

// Generate writes remediation scripts for the given run result into
// outputDir and returns the paths written.
func Generate(result *analyzer.RunResult, scriptType, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var generated []string

	if scriptType == TypeTerraform || scriptType == TypeAll {
		files, err := generateTerraform(result, outputDir)
		if err != nil {
			return generated, err
		}
		generated = append(generated, files...)
	}

	if scriptType == TypeShell || scriptType == TypeAll {
		files, err := generateShell(result, outputDir)
		if err != nil {
			return generated, err
		}
		generated = append(generated, files...)
	}

	if len(generated) == 0 && scriptType != TypeTerraform && scriptType != TypeShell && scriptType != TypeAll {
		return nil, fmt.Errorf("unsupported script type: %s (use terraform, shell, or all)", scriptType)
	}

	return generated, nil
}

// hasCategoryContaining reports whether any category name contains one of
// the given substrings.
func hasCategoryContaining(result *analyzer.RunResult, substrings ...string) bool {
	for _, name := range result.Categories.Names() {
		for _, sub := range substrings {
			if strings.Contains(name, sub) {
				return true
			}
		}
	}
	return false
}

func writeFile(path, content string, mode os.FileMode) error {
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
