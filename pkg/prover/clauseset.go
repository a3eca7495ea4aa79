package prover

import "github.com/gitrdm/foplresolve/pkg/logic"

// clauseSet is an ordered set of Clauses keyed by canonical string form
// (spec §3's "Clause set"). Insertion order is preserved so iteration is
// deterministic for a given input order, matching spec §4.5's
// "declared iteration order of the underlying set types".
type clauseSet struct {
	order []logic.Clause
	seen  map[string]bool
}

func newClauseSet() *clauseSet {
	return &clauseSet{seen: make(map[string]bool)}
}

// Add inserts c if its canonical key hasn't been seen, returning true if
// it was newly added.
func (s *clauseSet) Add(c logic.Clause) bool {
	k := c.Key()
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	s.order = append(s.order, c)
	return true
}

// Contains reports whether a clause with c's canonical key is present.
func (s *clauseSet) Contains(c logic.Clause) bool {
	return s.seen[c.Key()]
}

// Slice returns the set's clauses in insertion order.
func (s *clauseSet) Slice() []logic.Clause {
	out := make([]logic.Clause, len(s.order))
	copy(out, s.order)
	return out
}
