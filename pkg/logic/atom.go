package logic

import "strings"

// Atom is a signed predicate application: a lowercase-initial name, one
// or more child Terms (never nested Atoms), and a polarity flag.
type Atom struct {
	name     string
	children []Term
	negated  bool
}

// NewAtom builds an Atom. negated true renders with a leading "~".
func NewAtom(name string, children []Term, negated bool) Atom {
	cp := make([]Term, len(children))
	copy(cp, children)
	return Atom{name: name, children: cp, negated: negated}
}

// Name returns the predicate name.
func (a Atom) Name() string { return a.name }

// Children returns the Atom's argument terms in order.
func (a Atom) Children() []Term { return a.children }

// Negated reports the Atom's polarity (true means negated, "~name(...)").
func (a Atom) Negated() bool { return a.negated }

// Negate returns a copy of a with polarity flipped.
func (a Atom) Negate() Atom {
	return Atom{name: a.name, children: a.children, negated: !a.negated}
}

// Key returns the canonical grouping key `(name, polarity)` used to order
// a Clause's atoms and to partition them for subsumption.
func (a Atom) Key() (string, bool) { return a.name, a.negated }

// Equal reports structural equality of two Atoms: same name, same
// polarity, and pointwise-equal children.
func (a Atom) Equal(other Atom) bool {
	if a.name != other.name || a.negated != other.negated || len(a.children) != len(other.children) {
		return false
	}
	for i := range a.children {
		if !a.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// ApplySubstitution returns a copy of a with s applied to every child term.
func (a Atom) ApplySubstitution(s Substitution) Atom {
	return Atom{name: a.name, children: ApplyAll(s, a.children), negated: a.negated}
}

// String renders a in surface syntax, e.g. "~p(x, A)".
func (a Atom) String() string {
	parts := make([]string, len(a.children))
	for i, c := range a.children {
		parts[i] = c.String()
	}
	prefix := ""
	if a.negated {
		prefix = "~"
	}
	return prefix + a.name + "(" + strings.Join(parts, ", ") + ")"
}
