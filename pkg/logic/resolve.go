package logic

// Resolve computes binary resolution of c1 and c2 (spec §4.4): it scans
// the product c1 x c2 for the first pair of atoms with the same
// predicate name and opposite polarity whose children unify, and returns
// the resolvent (the union of c1 minus that atom and c2 minus its atom,
// with the MGU applied to everything remaining) and the MGU. Resolve
// reports false if no resolving pair exists.
//
// Factoring — merging duplicate literals after substitution — is not
// performed; duplicates may appear in the resolvent and are tolerated by
// the clause pool's set semantics (canonical-string equality).
func Resolve(c1, c2 Clause) (Clause, Substitution, bool) {
	for i, a := range c1.atoms {
		for j, b := range c2.atoms {
			if a.Name() != b.Name() || a.Negated() == b.Negated() {
				continue
			}
			mgu, ok := UnifyList(a.Children(), b.Children())
			if !ok {
				continue
			}
			return buildResolvent(c1, i, c2, j, mgu), mgu, true
		}
	}
	return Clause{}, nil, false
}

func buildResolvent(c1 Clause, i int, c2 Clause, j int, mgu Substitution) Clause {
	remaining := make([]Atom, 0, len(c1.atoms)+len(c2.atoms)-2)
	for idx, a := range c1.atoms {
		if idx == i {
			continue
		}
		remaining = append(remaining, a.ApplySubstitution(mgu))
	}
	for idx, b := range c2.atoms {
		if idx == j {
			continue
		}
		remaining = append(remaining, b.ApplySubstitution(mgu))
	}
	return NewClause(remaining)
}
