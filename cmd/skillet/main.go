package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillet-ai/skillet/pkg/config"
	"github.com/skillet-ai/skillet/pkg/logger"
	"github.com/skillet-ai/skillet/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "skillet",
	Short: "Skills-driven configuration for an LLM coding agent",
	Long: `Skillet discovers agent skills on disk, assembles the system prompt
with a bounded skill summary (progressive disclosure), and registers
subagent configurations for the external agent framework.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logLevel := cfg.LogLevel
		if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
			logLevel = flag
		}
		if err := logger.SetLogLevel(logLevel); err != nil {
			return err
		}

		logFormat := cfg.LogFormat
		if flag, _ := cmd.Flags().GetString("log-format"); flag != "" {
			logFormat = flag
		}
		logger.SetLogFormat(logFormat)

		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			presenter.SetQuiet(true)
		}

		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// loadConfig honors the --config flag, falling back to the well-known
// config locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func main() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (overrides the default locations)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
