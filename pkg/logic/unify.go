package logic

// Unify computes a most general unifier for two terms, following
// Robinson's algorithm with occurs-check (spec §4.3). It returns the
// substitution and true on success, or false on failure — unification
// failure is a normal negative result, not a Go error.
func Unify(e1, e2 Term) (Substitution, bool) {
	requireValidKind(e1)
	requireValidKind(e2)

	switch {
	case e1.Equal(e2):
		return Substitution{}, true

	case e1.kind == KindVariable || e2.kind == KindVariable:
		return unifyVariable(e1, e2)

	case e1.kind == KindConstant && e2.kind == KindConstant:
		// Reached only when e1 != e2 (the Equal shortcut above already
		// covers matching constants), so this is always a failure.
		return nil, false

	case e1.kind == KindFunction && e2.kind == KindFunction:
		if e1.name != e2.name || len(e1.children) != len(e2.children) {
			return nil, false
		}
		return UnifyList(e1.children, e2.children)

	default:
		// Variants differ with neither side a Variable: Constant vs
		// Function, never unifiable.
		return nil, false
	}
}

// unifyVariable handles the case where e1 or e2 (or both) is a Variable.
// The bias is fixed: when e1 is the Variable, the substitution points
// FROM e1 TO e2 (i.e. {e2 / e1}); the Equal(e1, e2) case is already
// handled by Unify's caller.
func unifyVariable(e1, e2 Term) (Substitution, bool) {
	if e1.kind == KindVariable {
		if Contains(e1, e2) {
			return nil, false
		}
		return Substitution{{Substitute: e2, Variable: e1}}, true
	}
	if Contains(e2, e1) {
		return nil, false
	}
	return Substitution{{Substitute: e1, Variable: e2}}, true
}

// UnifyList unifies two ordered term sequences of equal length (spec
// §4.3): unify the heads, apply the result to both tails, recursively
// unify the substituted tails, and compose the two substitutions.
// Mismatched lengths fail immediately.
func UnifyList(a, b []Term) (Substitution, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	if len(a) == 0 {
		return Substitution{}, true
	}

	head, ok := Unify(a[0], b[0])
	if !ok {
		return nil, false
	}

	restA := ApplyAll(head, a[1:])
	restB := ApplyAll(head, b[1:])

	tail, ok := UnifyList(restA, restB)
	if !ok {
		return nil, false
	}

	return Compose(head, tail), true
}
