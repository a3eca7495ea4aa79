package logic

// Binding is one pair `{Substitute / Variable}` of a Substitution: apply it
// by replacing Variable with Substitute wherever Variable occurs.
type Binding struct {
	Substitute Term
	Variable   Term
}

// Substitution is an ordered list of Bindings. The empty Substitution is
// the identity. Once returned from Unify or Compose, a Substitution is
// treated as immutable by convention — callers should not mutate a slice
// they did not just build themselves.
type Substitution []Binding

// Apply rewrites t by applying every Binding in order, each pass acting
// on the result of the previous one (the ordered-pair semantics spec §4.3
// relies on for List unification to be well defined).
func Apply(s Substitution, t Term) Term {
	for _, b := range s {
		t = SubstituteVar(t, b.Variable, b.Substitute)
	}
	return t
}

// ApplyAll applies s to every term in ts, returning a new slice.
func ApplyAll(s Substitution, ts []Term) []Term {
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Apply(s, t)
	}
	return out
}

// Compose returns a Substitution equivalent to applying s1 then s2, i.e.
// Apply(Compose(s1, s2), x) == Apply(s2, Apply(s1, x)) for any term x
// (spec §4.3):
//
//  1. Rewrite the substitute side of every pair in s1 by applying every
//     pair of s2 to it.
//  2. Append every pair of s2 whose variable does not already appear on
//     the left-hand side of (post-step-1) s1.
//  3. Discard any pair whose substitute now equals its variable.
func Compose(s1, s2 Substitution) Substitution {
	rewritten := make(Substitution, len(s1))
	for i, b := range s1 {
		rewritten[i] = Binding{Substitute: Apply(s2, b.Substitute), Variable: b.Variable}
	}

	seen := make(map[string]bool, len(rewritten))
	for _, b := range rewritten {
		seen[b.Variable.Name()] = true
	}
	for _, b := range s2 {
		if !seen[b.Variable.Name()] {
			rewritten = append(rewritten, b)
		}
	}

	result := make(Substitution, 0, len(rewritten))
	for _, b := range rewritten {
		if !b.Substitute.Equal(b.Variable) {
			result = append(result, b)
		}
	}
	return result
}
