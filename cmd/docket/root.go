package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docket-run/docket/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "docket",
	Short: "Docket processes project records through their bound action sequences",
	Long: `Docket is an engine for project records whose state is advanced by an
ordered sequence of actions: funding approvals, budget adjustments,
threshold-gated delegations, transfers and freezes. Projects and actions
are declared in YAML manifests.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newLogger builds the application logger honoring the --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
