// Package main provides the varcheck command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "varcheck",
		Short:   "Validate genomic variant records and VCF file structure",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Long: `varcheck validates genomic variant records: chromosome names,
positions against reference chromosome lengths, ref/alt alleles, and
assembly identifiers. It also checks that VCF files are structurally
well-formed before record-level validation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newCheckCmd(&verbose))
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads ~/.varcheck.yaml if present and sets defaults.
func initConfig() error {
	viper.SetDefault("assembly", "")
	viper.SetDefault("workers", 0)
	viper.SetDefault("scan_lines", 100)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, run with defaults
	}

	viper.SetConfigFile(filepath.Join(home, ".varcheck.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds a stderr logger for the run.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
	}
	return cfg.Build()
}
