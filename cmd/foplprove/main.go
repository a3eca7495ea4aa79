// Command foplprove attempts to prove a single negated-theorem-plus-
// knowledge-base problem by resolution refutation, reporting either a
// proof or a saturated search, or fans the same check out over a
// directory of problems (spec §6).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "foplprove",
	Short: "Resolution refutation for first-order predicate logic clauses",
	Long: `foplprove loads a knowledge base and a negated theorem from a YAML
input file, runs breadth-first binary resolution over their clauses, and
reports whether the empty clause was derived (the theorem is proved) or
the search saturated without contradiction.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "ts"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	proveCmd.Flags().StringVarP(&proveFile, "file", "f", "", "path to a YAML problem file (required)")
	_ = proveCmd.MarkFlagRequired("file")

	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "directory of YAML problem files (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "maximum concurrent Prove invocations")
	_ = batchCmd.MarkFlagRequired("dir")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "overall batch deadline")

	rootCmd.AddCommand(proveCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
