package main

import (
	"fmt"
	"os"

	"ngsclean/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	debug  bool
	quiet  bool
	logDir string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ngsclean",
	Short: "Prepare the configuration of the NGS cleaning pipeline",
	Long: `ngsclean prepares the configuration file of the sequencing read cleaning
pipeline (fastp trimming, optional FastQ Screen contamination search).

It reads a tab separated design table (Sample_id, Upstream_file and, for
paired-end data, Downstream_file), checks it, and writes <workdir>/config.yaml.

This tool does not make any magic. Please check the prepared configuration file!`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logging.Options{Dir: logDir, Debug: debug, Quiet: quiet})
		if err != nil {
			return err
		}
		logger = logger.With(zap.String("invocation", uuid.NewString()))
		logging.Get(logger, logging.CategoryBoot).Debug("Starting command",
			zap.String("command", cmd.CommandPath()),
			zap.Strings("args", os.Args[1:]))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Set logging in debug mode")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Turn off logging behaviour")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", logging.DefaultDir, "Directory receiving the log file")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(streamsCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("Command failed", zap.Error(err))
			_ = logger.Sync()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
