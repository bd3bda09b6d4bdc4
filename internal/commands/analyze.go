package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/costspectre/internal/analyzer"
	"github.com/ppiankov/costspectre/internal/insight"
	"github.com/ppiankov/costspectre/internal/probe"
	"github.com/ppiankov/costspectre/internal/probe/awsprobe"
	"github.com/ppiankov/costspectre/internal/probe/azureprobe"
	"github.com/ppiankov/costspectre/internal/report"
)

var analyzeFlags struct {
	profile      string
	regions      []string
	lookbackDays int
	staleDays    int
	ai           bool
	outputDir    string
	timeout      time.Duration
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze cloud resources for cost waste",
	Long: `Analyze the configured cloud providers for underutilized and orphaned
resources, estimate monthly savings, and produce ranked recommendations.
Results are printed as a summary table and saved as a JSON artifact for
the report and generate commands.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.profile, "profile", "", "AWS profile name")
	analyzeCmd.Flags().StringSliceVar(&analyzeFlags.regions, "regions", nil, "Comma-separated AWS region filter")
	analyzeCmd.Flags().IntVar(&analyzeFlags.lookbackDays, "lookback-days", 0, "Lookback window for utilization metrics (days)")
	analyzeCmd.Flags().IntVar(&analyzeFlags.staleDays, "stale-days", 0, "Age threshold for stale snapshots (days)")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.ai, "ai", false, "Enable AI-enhanced recommendations")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.outputDir, "output", "o", "", "Output directory for the analysis artifact")
	analyzeCmd.Flags().DurationVar(&analyzeFlags.timeout, "timeout", 10*time.Minute, "Analysis timeout")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if analyzeFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, analyzeFlags.timeout)
		defer cancel()
	}

	probes, err := buildProbes(ctx)
	if err != nil {
		return err
	}
	if len(probes) == 0 {
		return fmt.Errorf("no providers enabled; enable at least one in .costspectre.yaml or run 'costspectre init'")
	}

	result := analyzer.NewRunResult()
	for _, p := range probes {
		slog.Info("Analyzing provider", "provider", p.Name())
		categories, err := p.Analyze(ctx)
		if err != nil {
			slog.Warn("Provider analysis failed", "provider", p.Name(), "error", err)
			continue
		}
		result.Merge(categories)
	}

	engine := insight.NewEngine(insight.Config{
		Enhanced:            analyzeFlags.ai || cfg.AI.Enabled,
		Model:               cfg.AI.Model,
		ConfidenceThreshold: cfg.AI.ConfidenceThreshold,
	})
	insights := engine.Enhance(result.Categories)
	result.SetRecommendations(insights.Recommendations)
	if insights.Degraded {
		slog.Info("Recommendations degraded to basic mode", "reason", insights.Reason)
	}

	reporter := &report.TextReporter{Writer: os.Stdout}
	if err := reporter.Generate(result); err != nil {
		return err
	}

	return saveArtifact(result, resolveOutputDir())
}

// buildProbes assembles one probe per enabled provider.
func buildProbes(ctx context.Context) ([]probe.Probe, error) {
	var probes []probe.Probe

	if cfg.AWS.Enabled {
		opts := awsprobe.Options{
			Profile:      analyzeFlags.profile,
			Regions:      analyzeFlags.regions,
			LookbackDays: analyzeFlags.lookbackDays,
			StaleDays:    analyzeFlags.staleDays,
		}
		if opts.Profile == "" {
			opts.Profile = cfg.AWS.Profile
		}
		if len(opts.Regions) == 0 {
			opts.Regions = cfg.AWS.Regions
		}
		if opts.LookbackDays == 0 {
			opts.LookbackDays = cfg.AWS.LookbackDays
		}
		if opts.StaleDays == 0 {
			opts.StaleDays = cfg.AWS.StaleDays
		}

		p, err := awsprobe.New(ctx, opts)
		if err != nil {
			return nil, enhanceError("initialize AWS probe", err)
		}
		probes = append(probes, p)
	}

	if cfg.Azure.Enabled {
		p, err := azureprobe.New(cfg.Azure.SubscriptionID)
		if err != nil {
			return nil, enhanceError("initialize Azure probe", err)
		}
		probes = append(probes, p)
	}

	if cfg.GCP.Enabled {
		slog.Warn("GCP analysis is not implemented yet, skipping", "project", cfg.GCP.ProjectID)
	}

	return probes, nil
}

func resolveOutputDir() string {
	if analyzeFlags.outputDir != "" {
		return analyzeFlags.outputDir
	}
	return cfg.OutputDir()
}

// saveArtifact writes the run result to <dir>/analysis_results.json.
func saveArtifact(result *analyzer.RunResult, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, "analysis_results.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	fmt.Printf("\nResults saved to %s\n", path)
	return nil
}
