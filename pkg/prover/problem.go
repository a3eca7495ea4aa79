// Package prover implements the breadth-first saturation engine and
// proof reporter on top of pkg/logic's term/unification/clause machinery
// (spec §4.5–§4.6). A single Prove call is strictly single-threaded
// cooperative: no goroutines, no I/O, no shared mutable state across
// invocations (spec §5).
package prover

import "github.com/gitrdm/foplresolve/pkg/logic"

// Problem bundles the knowledge-base clauses with the negated-theorem
// clauses the way the original implementation's ProblemState did: both
// lists are combined into a single ordered clause list before proving.
type Problem struct {
	Clauses []logic.Clause
}

// NewProblem combines a knowledge base and a set of negated-theorem
// clauses into a Problem, preserving the knowledge base's order followed
// by the negated theorem's order (spec §6, §11).
func NewProblem(knowledgeBase, negatedTheorem []logic.Clause) Problem {
	clauses := make([]logic.Clause, 0, len(knowledgeBase)+len(negatedTheorem))
	clauses = append(clauses, knowledgeBase...)
	clauses = append(clauses, negatedTheorem...)
	return Problem{Clauses: clauses}
}
