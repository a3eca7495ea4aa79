package prover

import "github.com/gitrdm/foplresolve/pkg/logic"

// Outcome is the terminal state of a Prove invocation.
type Outcome int

const (
	// Saturated means the search exhausted all resolvents reachable from
	// the seed clauses without deriving the empty clause: no
	// contradiction, the negated theorem is not refutable by this engine.
	Saturated Outcome = iota
	// Proved means the empty clause was derived: the knowledge base
	// contradicts the negated theorem, so the original theorem holds.
	Proved
)

func (o Outcome) String() string {
	if o == Proved {
		return "proved"
	}
	return "saturated"
}

// Entry is one derivation record (spec §3): the first resolution that
// produced a given clause, keyed by the resolvent's canonical form in
// Result.Derivation.
type Entry struct {
	Parent1      logic.Clause
	Parent2      logic.Clause
	Substitution logic.Substitution
	Level        int
}

// Result is everything a Prove invocation produces: the terminal
// Outcome, the seed clauses surviving preprocessing, the full derivation
// record, and every clause known to the engine when it stopped (for
// reporting).
type Result struct {
	Outcome    Outcome
	Seeds      []logic.Clause
	Derivation map[string]Entry
	Known      []logic.Clause
}

// Prove runs level-saturated binary resolution over problem's clauses
// (spec §4.5).
//
// Initialization: seed known with the problem's clauses, drop
// tautologies, prune by pairwise subsumption (seeding time only — spec
// §9's Open Question on forward subsumption is preserved as specified,
// not "fixed"), and copy survivors into frontier as level 0.
//
// Main loop, starting at level 1: resolve every ordered pair (C1, C2)
// with C1 in known and C2 in frontier; journal first-time resolvents;
// stop with Proved if the empty clause appears; stop with Saturated if
// no genuinely new clause was produced; otherwise absorb frontier into
// known, replace frontier with the newly produced clauses, and repeat.
func Prove(problem Problem) Result {
	known := newClauseSet()
	for _, c := range problem.Clauses {
		if !c.Tautology() {
			known.Add(c)
		}
	}
	survivors := pruneSubsumed(known.Slice())

	known = newClauseSet()
	frontier := newClauseSet()
	for _, c := range survivors {
		known.Add(c)
		frontier.Add(c)
	}
	seeds := known.Slice()

	derivation := make(map[string]Entry)

	for level := 1; ; level++ {
		next := newClauseSet()
		emptyFound := false

		for _, c1 := range known.Slice() {
			for _, c2 := range frontier.Slice() {
				resolvent, mgu, ok := logic.Resolve(c1, c2)
				if !ok {
					continue
				}
				if next.Add(resolvent) {
					if _, recorded := derivation[resolvent.Key()]; !recorded {
						derivation[resolvent.Key()] = Entry{
							Parent1:      c1,
							Parent2:      c2,
							Substitution: mgu,
							Level:        level,
						}
					}
				}
				if resolvent.IsEmpty() {
					emptyFound = true
				}
			}
		}

		if emptyFound {
			absorb(known, frontier, next)
			return Result{Outcome: Proved, Seeds: seeds, Derivation: derivation, Known: known.Slice()}
		}

		if subsetOf(next, known) {
			absorb(known, frontier, next)
			return Result{Outcome: Saturated, Seeds: seeds, Derivation: derivation, Known: known.Slice()}
		}

		for _, c := range frontier.Slice() {
			known.Add(c)
		}
		frontier = next
	}
}

// pruneSubsumed applies pairwise subsumption once (spec §4.5 step 3):
// for each unordered pair (C1, C2), if C1 subsumes C2 mark C2 for
// removal, else if C2 subsumes C1 mark C1, then drop everything marked in
// a single pass. When the two subsume each other, only C2 is marked.
func pruneSubsumed(clauses []logic.Clause) []logic.Clause {
	removed := make(map[string]bool)
	for i := range clauses {
		for j := i + 1; j < len(clauses); j++ {
			c1, c2 := clauses[i], clauses[j]
			if c1.Subsumes(c2) {
				removed[c2.Key()] = true
			} else if c2.Subsumes(c1) {
				removed[c1.Key()] = true
			}
		}
	}
	survivors := make([]logic.Clause, 0, len(clauses))
	for _, c := range clauses {
		if !removed[c.Key()] {
			survivors = append(survivors, c)
		}
	}
	return survivors
}

func subsetOf(s, of *clauseSet) bool {
	for _, c := range s.Slice() {
		if !of.Contains(c) {
			return false
		}
	}
	return true
}

func absorb(known, frontier, next *clauseSet) {
	for _, c := range frontier.Slice() {
		known.Add(c)
	}
	for _, c := range next.Slice() {
		known.Add(c)
	}
}
