package batchrun

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/gitrdm/foplresolve/pkg/prover"
)

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestRunProvesEveryFileInDirectory(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "provable.yaml", `
knowledge_base:
  - "~p(x), q(x)"
  - "p(A)"
negated_theorem_predicates:
  - "~q(A)"
`)
	writeInput(t, dir, "saturated.yaml", `
knowledge_base:
  - "p(y), q(P, A), r(x)"
  - "p(y), r(A)"
negated_theorem_predicates:
  - "p(y), l(y, A), k(A)"
  - "m(y), q(y, A), r(A)"
  - "l(y)"
`)

	results, err := Run(context.Background(), dir, 2, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	outcomes := make(map[string]prover.Outcome)
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected job error for %s: %v", r.Path, r.Err)
		}
		outcomes[filepath.Base(r.Path)] = r.Result.Outcome
	}
	if outcomes["provable.yaml"] != prover.Proved {
		t.Errorf("expected provable.yaml to prove, got %v", outcomes["provable.yaml"])
	}
	if outcomes["saturated.yaml"] != prover.Saturated {
		t.Errorf("expected saturated.yaml to saturate, got %v", outcomes["saturated.yaml"])
	}
}

func TestRunReportsLoadErrorsPerFile(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "broken.yaml", "knowledge_base: [")

	results, err := Run(context.Background(), dir, 1, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected a per-job load error, got %+v", results)
	}
}

func TestRunOnEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	results, err := Run(context.Background(), dir, 4, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty directory, got %d", len(results))
	}
}
