package logic

import "testing"

func TestResolveBasic(t *testing.T) {
	x := NewVariable("x")
	p := NewAtom("p", []Term{x}, false)
	notP := NewAtom("p", []Term{NewConstant("A")}, true)
	q := NewAtom("q", []Term{x}, false)

	c1 := NewClause([]Atom{p, q})
	c2 := NewClause([]Atom{notP})

	resolvent, mgu, ok := Resolve(c1, c2)
	if !ok {
		t.Fatal("expected c1 and c2 to resolve on p")
	}
	if len(resolvent.Atoms()) != 1 || resolvent.Atoms()[0].Name() != "q" {
		t.Fatalf("expected resolvent {q(A)}, got %v", resolvent)
	}
	if !Apply(mgu, x).Equal(NewConstant("A")) {
		t.Errorf("expected mgu to bind x to A, got %v", mgu)
	}
}

func TestResolveNoMatch(t *testing.T) {
	p := NewAtom("p", []Term{NewConstant("A")}, false)
	q := NewAtom("q", []Term{NewConstant("B")}, false)
	c1 := NewClause([]Atom{p})
	c2 := NewClause([]Atom{q})

	if _, _, ok := Resolve(c1, c2); ok {
		t.Error("clauses sharing no complementary predicate should not resolve")
	}
}

// TestResolveAppliesSubstitutionToAllRemainingAtoms covers the case
// {~q(y), r(y)} resolved against {~r(A)} on r: the algorithmic rule
// applies the MGU to every remaining atom in both parents, including
// other atoms of the same clause that share the resolved variable, so
// the surviving ~q(y) becomes ~q(A), not ~q(y).
func TestResolveAppliesSubstitutionToAllRemainingAtoms(t *testing.T) {
	y := NewVariable("y")
	notQ := NewAtom("q", []Term{y}, true)
	r := NewAtom("r", []Term{y}, false)
	notR := NewAtom("r", []Term{NewConstant("A")}, true)

	c1 := NewClause([]Atom{notQ, r})
	c2 := NewClause([]Atom{notR})

	resolvent, mgu, ok := Resolve(c1, c2)
	if !ok {
		t.Fatal("expected r(y) and ~r(A) to resolve")
	}
	want := NewClause([]Atom{NewAtom("q", []Term{NewConstant("A")}, true)})
	if resolvent.Key() != want.Key() {
		t.Errorf("resolvent = %v, want %v", resolvent, want)
	}
	if len(mgu) != 1 || !mgu[0].Substitute.Equal(NewConstant("A")) || !mgu[0].Variable.Equal(y) {
		t.Errorf("expected mgu {A / y}, got %v", mgu)
	}
}

func TestResolveFirstMatchingPairWins(t *testing.T) {
	a := NewConstant("A")
	b := NewConstant("B")
	p1 := NewAtom("p", []Term{a}, false)
	p2 := NewAtom("p", []Term{b}, false)
	notP1 := NewAtom("p", []Term{a}, true)

	c1 := NewClause([]Atom{p1, p2})
	c2 := NewClause([]Atom{notP1})

	resolvent, _, ok := Resolve(c1, c2)
	if !ok {
		t.Fatal("expected a resolving pair")
	}
	if len(resolvent.Atoms()) != 1 || !resolvent.Atoms()[0].Equal(p2) {
		t.Errorf("expected only p(B) to survive, got %v", resolvent)
	}
}
