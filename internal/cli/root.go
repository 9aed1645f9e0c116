package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/config"
	"github.com/ppiankov/svcprofile/internal/logging"
)

var (
	configPath string
	logLevel   string

	cfg    = config.Default()
	logger = logging.Discard()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML (default ~/.svcprofile/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug|info|warn|error)")
}

var rootCmd = &cobra.Command{
	Use:   "svcprofile",
	Short: "Service risk profiling",
	Long: "Collects exposure factors, business criticality and data classification for a service,\n" +
		"computes exposure and three aggregate risk scores, and maps each score to a P1-P5 profile.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger = logging.New(os.Stderr, logging.LevelFromString(level))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
