package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ppiankov/costspectre/internal/config"
	"github.com/ppiankov/costspectre/internal/logging"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "costspectre",
	Short: "costspectre - multi-cloud cost waste auditor",
	Long: `costspectre inventories cloud resources across providers, flags the ones
that are underutilized or orphaned, and estimates the monthly savings of
fixing them. It produces ranked recommendations, reports in several
formats, and advisory remediation scripts.

Nothing costspectre emits is ever executed against your account: all
generated cleanup commands are commented out for review.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
