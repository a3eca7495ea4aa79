package prover

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gitrdm/foplresolve/pkg/logic"
)

// Step is one rendered line of a proof trail or diagnostic listing.
type Step struct {
	Parent1      string
	Parent2      string
	Resolvent    string
	Substitution logic.Substitution
}

// String renders a Step as spec §6's advisory format:
// "<parent1> | <parent2> -> <resolvent> with substitution [<σ>]".
func (s Step) String() string {
	return fmt.Sprintf("%s | %s -> %s with substitution [%s]", s.Parent1, s.Parent2, s.Resolvent, formatSubstitution(s.Substitution))
}

func formatSubstitution(s logic.Substitution) string {
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.Substitute.String() + " / " + b.Variable.String()
	}
	return strings.Join(parts, ", ")
}

// ProofTrail walks Result.Derivation in reverse from the empty clause to
// reconstruct the derivation DAG (spec §4.6): breadth-first from "[]"
// following each recorded parent pair, collecting (p1, p2, child, sigma)
// tuples onto a stack, then emitting them deepest-first so the final
// line derives the empty clause. It returns nil if Outcome is not Proved.
//
// Per spec §9's Open Question, this walks the derivation record
// directly rather than via a level-index bound, avoiding the source's
// off-by-one max_level loop.
func ProofTrail(r Result) []Step {
	if r.Outcome != Proved {
		return nil
	}

	empty := logic.NewClause(nil)
	queue := []string{empty.Key()}
	visited := map[string]bool{empty.Key(): true}
	var stack []Step

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]

		entry, ok := r.Derivation[key]
		if !ok {
			continue
		}
		stack = append(stack, Step{
			Parent1:      entry.Parent1.String(),
			Parent2:      entry.Parent2.String(),
			Resolvent:    key,
			Substitution: entry.Substitution,
		})

		for _, parentKey := range []string{entry.Parent1.Key(), entry.Parent2.Key()} {
			if !visited[parentKey] {
				visited[parentKey] = true
				queue = append(queue, parentKey)
			}
		}
	}

	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}

// DiagnosticListing renders every generated clause grouped by derivation
// level, for the failure (Saturated) case (spec §4.6): "On failure, emit
// the level-by-level listing of all generated clauses for diagnostics."
func DiagnosticListing(r Result) []string {
	byLevel := make(map[int][]Step)
	maxLevel := 0
	for key, entry := range r.Derivation {
		byLevel[entry.Level] = append(byLevel[entry.Level], Step{
			Parent1:      entry.Parent1.String(),
			Parent2:      entry.Parent2.String(),
			Resolvent:    key,
			Substitution: entry.Substitution,
		})
		if entry.Level > maxLevel {
			maxLevel = entry.Level
		}
	}

	var lines []string
	for level := 1; level <= maxLevel; level++ {
		steps := byLevel[level]
		sort.Slice(steps, func(i, j int) bool { return steps[i].Resolvent < steps[j].Resolvent })
		lines = append(lines, fmt.Sprintf("Level %d generated clauses:", level))
		for _, step := range steps {
			lines = append(lines, "  "+step.String())
		}
	}
	return lines
}
