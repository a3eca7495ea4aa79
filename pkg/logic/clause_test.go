package logic

import "testing"

func atomP(child string) Atom { return NewAtom("p", []Term{NewConstant(child)}, false) }
func atomNotP(child string) Atom { return NewAtom("p", []Term{NewConstant(child)}, true) }

func TestNewClauseOrdering(t *testing.T) {
	q := NewAtom("q", []Term{NewConstant("A")}, false)
	p := NewAtom("p", []Term{NewConstant("A")}, false)
	notP := NewAtom("p", []Term{NewConstant("B")}, true)

	c := NewClause([]Atom{q, notP, p})
	atoms := c.Atoms()
	if atoms[0].Name() != "p" || atoms[0].Negated() {
		t.Errorf("expected non-negated p first, got %v", atoms[0])
	}
	if atoms[1].Name() != "p" || !atoms[1].Negated() {
		t.Errorf("expected negated p second, got %v", atoms[1])
	}
	if atoms[2].Name() != "q" {
		t.Errorf("expected q last, got %v", atoms[2])
	}
}

func TestClauseStringAndEmpty(t *testing.T) {
	if got, want := NewClause(nil).String(), "[]"; got != want {
		t.Errorf("empty clause String() = %q, want %q", got, want)
	}
	if !NewClause(nil).IsEmpty() {
		t.Error("NewClause(nil) should be empty")
	}

	c := NewClause([]Atom{atomP("A"), atomNotP("B")})
	if got, want := c.String(), "p(A),~p(B)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c.Key() != c.String() {
		t.Error("Key should equal String")
	}
}

func TestClauseTautology(t *testing.T) {
	x := NewVariable("x")
	t.Run("p(x) or ~p(A) is a tautology", func(t *testing.T) {
		c := NewClause([]Atom{
			NewAtom("p", []Term{x}, false),
			NewAtom("p", []Term{NewConstant("A")}, true),
		})
		if !c.Tautology() {
			t.Error("expected p(x), ~p(A) to be a tautology (x unifies with A)")
		}
	})

	t.Run("p(A) or ~p(B) is not a tautology", func(t *testing.T) {
		c := NewClause([]Atom{atomP("A"), atomNotP("B")})
		if c.Tautology() {
			t.Error("p(A), ~p(B) should not be a tautology")
		}
	})

	t.Run("single literal clause is never a tautology", func(t *testing.T) {
		c := NewClause([]Atom{atomP("A")})
		if c.Tautology() {
			t.Error("a single-literal clause cannot be a tautology")
		}
	})
}

func TestClauseSubsumes(t *testing.T) {
	x := NewVariable("x")

	t.Run("p(x) subsumes p(A)", func(t *testing.T) {
		general := NewClause([]Atom{NewAtom("p", []Term{x}, false)})
		specific := NewClause([]Atom{atomP("A")})
		if !general.Subsumes(specific) {
			t.Error("p(x) should subsume p(A)")
		}
	})

	t.Run("p(A) does not subsume p(x)", func(t *testing.T) {
		general := NewClause([]Atom{NewAtom("p", []Term{x}, false)})
		specific := NewClause([]Atom{atomP("A")})
		if specific.Subsumes(general) {
			t.Error("p(A) should not subsume p(x)")
		}
	})

	t.Run("extra required atoms block subsumption", func(t *testing.T) {
		bigger := NewClause([]Atom{NewAtom("p", []Term{x}, false), NewAtom("q", []Term{x}, false)})
		smaller := NewClause([]Atom{atomP("A")})
		if bigger.Subsumes(smaller) {
			t.Error("a clause requiring q should not subsume one lacking it")
		}
	})

	t.Run("a clause always subsumes itself", func(t *testing.T) {
		c := NewClause([]Atom{atomP("A"), atomNotP("B")})
		if !c.Subsumes(c) {
			t.Error("subsumption should be reflexive")
		}
	})
}
