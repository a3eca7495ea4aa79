package input

import "testing"

func TestParseValidDocument(t *testing.T) {
	doc := []byte(`
knowledge_base:
  - "~p(x), q(x)"
  - "p(y), r(y)"
negated_theorem_predicates:
  - "~q(A)"
`)
	problem, err := Parse(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(problem.Clauses) != 3 {
		t.Fatalf("expected 3 combined clauses, got %d", len(problem.Clauses))
	}
}

func TestParseMissingKnowledgeBase(t *testing.T) {
	doc := []byte(`
negated_theorem_predicates:
  - "~q(A)"
`)
	_, err := Parse(doc)
	if err == nil {
		t.Fatal("expected a StructureError for the missing knowledge_base key")
	}
}

func TestParseMissingNegatedTheorem(t *testing.T) {
	doc := []byte(`
knowledge_base:
  - "p(A)"
`)
	_, err := Parse(doc)
	if err == nil {
		t.Fatal("expected a StructureError for the missing negated_theorem_predicates key")
	}
}

func TestParsePropagatesClauseParseErrors(t *testing.T) {
	doc := []byte(`
knowledge_base:
  - "P(x)"
negated_theorem_predicates:
  - "~q(A)"
`)
	if _, err := Parse(doc); err == nil {
		t.Fatal("expected an error from the malformed uppercase-initial atom name")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	doc := []byte("knowledge_base: [")
	if _, err := Parse(doc); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestParseEmptyKnowledgeBaseKeyPresent(t *testing.T) {
	doc := []byte(`
knowledge_base: []
negated_theorem_predicates:
  - "~q(A)"
`)
	problem, err := Parse(doc)
	if err != nil {
		t.Fatalf("an explicitly empty list should not be a structure error: %v", err)
	}
	if len(problem.Clauses) != 1 {
		t.Errorf("expected 1 clause, got %d", len(problem.Clauses))
	}
}
