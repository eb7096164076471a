package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel     string // Log verbosity level
	defaultsPath string // Path to defaults.yaml (calibration, simulation defaults, validation tasks)
)

// defaultsEnvVar overrides the defaults.yaml location when --defaults is not given.
const defaultsEnvVar = "LUNARSIM_DEFAULTS"

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "lunarsim",
	Short:         "Lunar logistics models, simulations and validation harness",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; only a malformed file is worth reporting
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("ignoring .env: %v", err)
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

// resolveDefaultsPath picks --defaults, then $LUNARSIM_DEFAULTS, then ./defaults.yaml
// if present. Empty means built-in defaults.
func resolveDefaultsPath() string {
	if defaultsPath != "" {
		return defaultsPath
	}
	if p := os.Getenv(defaultsEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat("defaults.yaml"); err == nil {
		return "defaults.yaml"
	}
	return ""
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "", "Path to defaults.yaml (default: $"+defaultsEnvVar+" or ./defaults.yaml)")
}
