package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/foplresolve/internal/input"
	"github.com/gitrdm/foplresolve/pkg/prover"
)

var proveFile string

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Prove a single problem file or report that the search saturated",
	RunE:  runProve,
}

func runProve(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("internal invariant violation: %v", r)
		}
	}()

	logger.Info("loading problem", zap.String("path", proveFile))
	problem, err := input.LoadFile(proveFile)
	if err != nil {
		return err
	}

	result := prover.Prove(problem)
	logger.Info("proof search finished", zap.String("outcome", result.Outcome.String()), zap.Int("known_clauses", len(result.Known)))

	switch result.Outcome {
	case prover.Proved:
		fmt.Println("proved")
		for _, step := range prover.ProofTrail(result) {
			fmt.Println(step.String())
		}
	case prover.Saturated:
		fmt.Println("saturated")
		for _, line := range prover.DiagnosticListing(result) {
			fmt.Println(line)
		}
	}

	// prove always exits 0 on a completed search, proved or saturated;
	// only parse/input/internal errors are failures (spec §7).
	return nil
}
