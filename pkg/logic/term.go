// Package logic provides the term, atom, clause, and unification model for
// first-order predicate logic in clausal form.
//
// Terms are a tagged variant with three cases — Variable, Constant, and
// Function — built as plain immutable value types rather than an
// interface hierarchy with virtual dispatch. Once constructed, a Term is
// never mutated; resolution and substitution always produce fresh values.
package logic

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind tags the variant a Term belongs to.
type Kind int

const (
	// KindVariable names an atomic, lowercase-initial, unbound term.
	KindVariable Kind = iota
	// KindConstant names an atomic, uppercase-initial term.
	KindConstant
	// KindFunction names a lowercase-initial term with one or more children.
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindConstant:
		return "Constant"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Term is a Variable, Constant, or Function. The zero value is not a valid
// Term; use NewVariable, NewConstant, or NewFunction.
//
// Term is a value type: two Terms with equal Kind/Name/Children are
// interchangeable, and all operations on it return new Terms rather than
// mutating the receiver.
type Term struct {
	kind     Kind
	name     string
	children []Term
}

// ErrInvalidTerm marks an internal invariant violation when a Term is
// found with a Kind no case below accounts for. It should never surface
// through correctly constructed Terms; seeing it means a caller built a
// Term some other way than the constructors in this file.
var ErrInvalidTerm = errors.New("logic: invalid term kind")

// requireValidKind panics with ErrInvalidTerm if t's Kind is not one of
// KindVariable, KindConstant, or KindFunction. This guards the unifier's
// otherwise-exhaustive case analysis (spec §7's InternalInvariantViolation:
// "an unexpected term variant in the unifier") against a Term built some
// way other than this file's constructors.
func requireValidKind(t Term) {
	switch t.kind {
	case KindVariable, KindConstant, KindFunction:
		return
	default:
		panic(errors.WithStack(ErrInvalidTerm))
	}
}

// NewVariable builds a Variable term. The caller is responsible for
// ensuring name is lowercase-initial alphanumeric; construction through
// pkg/parser enforces this, but NewVariable itself does not re-validate.
func NewVariable(name string) Term {
	return Term{kind: KindVariable, name: name}
}

// NewConstant builds a Constant term.
func NewConstant(name string) Term {
	return Term{kind: KindConstant, name: name}
}

// NewFunction builds a Function term over one or more children. Passing
// zero children violates the invariant in spec §3 (a Function always has
// at least one child); callers that might do so should go through
// pkg/parser, which rejects zero-arity functions at the syntax level.
func NewFunction(name string, children []Term) Term {
	cp := make([]Term, len(children))
	copy(cp, children)
	return Term{kind: KindFunction, name: name, children: cp}
}

// Kind reports which variant this Term is.
func (t Term) Kind() Kind { return t.kind }

// Name returns the term's name (variable/constant name, or function name).
func (t Term) Name() string { return t.name }

// IsVariable reports whether t is a Variable.
func (t Term) IsVariable() bool { return t.kind == KindVariable }

// IsConstant reports whether t is a Constant.
func (t Term) IsConstant() bool { return t.kind == KindConstant }

// IsFunction reports whether t is a Function.
func (t Term) IsFunction() bool { return t.kind == KindFunction }

// Children returns the Function's child terms in order. It returns nil
// for Variables and Constants.
func (t Term) Children() []Term {
	if t.kind != KindFunction {
		return nil
	}
	return t.children
}

// Equal reports structural equality: same Kind, same Name, and — for
// Function — pointwise-equal children in the same order.
func (t Term) Equal(other Term) bool {
	if t.kind != other.kind || t.name != other.name {
		return false
	}
	if t.kind != KindFunction {
		return true
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether t occurs in target: t == target, or target is
// a Function and t occurs in one of its children. This is the
// occurs-check primitive used by Unify.
func Contains(t, target Term) bool {
	if t.Equal(target) {
		return true
	}
	if target.kind != KindFunction {
		return false
	}
	for _, child := range target.children {
		if Contains(t, child) {
			return true
		}
	}
	return false
}

// SubstituteVar returns a copy of t with every occurrence of variable
// replaced by replacement. It recurses into Function children and is a
// no-op on Variables/Constants that are not the target.
func SubstituteVar(t, variable, replacement Term) Term {
	if t.Equal(variable) {
		return replacement
	}
	if t.kind != KindFunction {
		return t
	}
	newChildren := make([]Term, len(t.children))
	for i, child := range t.children {
		newChildren[i] = SubstituteVar(child, variable, replacement)
	}
	return NewFunction(t.name, newChildren)
}

// LessSpecific implements the ⊑ partial order used only for subsumption
// (spec §4.2):
//
//	any Variable ⊑ any Term
//	Constant C1 ⊑ C2 iff structurally equal
//	Function f(a1..an) ⊑ g(b1..bm) iff f == g, n == m, and ai ⊑ bi pointwise
func LessSpecific(t, other Term) bool {
	if t.kind == KindVariable {
		return true
	}
	switch t.kind {
	case KindConstant:
		return other.kind == KindConstant && t.name == other.name
	case KindFunction:
		if other.kind != KindFunction || t.name != other.name || len(t.children) != len(other.children) {
			return false
		}
		for i := range t.children {
			if !LessSpecific(t.children[i], other.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders t in the surface syntax it was built from, e.g.
// "f(x, A, g(y))".
func (t Term) String() string {
	if t.kind != KindFunction {
		return t.name
	}
	parts := make([]string, len(t.children))
	for i, c := range t.children {
		parts[i] = c.String()
	}
	return t.name + "(" + strings.Join(parts, ", ") + ")"
}
