package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/foplresolve/internal/batchrun"
	"github.com/gitrdm/foplresolve/pkg/prover"
)

var (
	batchDir     string
	batchWorkers int
	batchTimeout time.Duration
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Prove every problem file under a directory concurrently",
	Long: `batch is additive to the single-threaded prove command: it runs one
independent Prove invocation per file, fanned out across a fixed worker
pool. Each invocation stays single-threaded internally; only whole,
independent problems run concurrently with each other.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("internal invariant violation: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	logger.Info("starting batch run", zap.String("dir", batchDir), zap.Int("workers", batchWorkers))
	results, err := batchrun.Run(ctx, batchDir, batchWorkers, logger)
	if err != nil {
		return err
	}

	proved, saturated, failed := 0, 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("%s: error: %v\n", r.Path, r.Err)
			continue
		}
		switch r.Result.Outcome {
		case prover.Proved:
			proved++
		case prover.Saturated:
			saturated++
		}
		fmt.Printf("%s: %s (job %s)\n", r.Path, r.Result.Outcome, r.JobID)
	}

	logger.Info("batch run finished",
		zap.Int("total", len(results)),
		zap.Int("proved", proved),
		zap.Int("saturated", saturated),
		zap.Int("failed", failed),
	)
	return nil
}
