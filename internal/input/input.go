// Package input loads the prover's input file format: a YAML document
// with exactly two keys, knowledge_base and negated_theorem_predicates,
// each an ordered sequence of clause strings (spec §6). The original
// Python loader used eval() on a dict literal; this uses
// gopkg.in/yaml.v3, the format the retrieved example pack reaches for
// (theRebelliousNerd-codenerd's internal/config and internal/prompt
// loaders both decode YAML the same way).
package input

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/foplresolve/pkg/parser"
	"github.com/gitrdm/foplresolve/pkg/prover"
)

// StructureError reports a missing or malformed top-level key in the
// input document (spec §7's InputStructureError).
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string { return "input: " + e.Reason }

// document mirrors the two required top-level keys exactly.
type document struct {
	KnowledgeBase             []string `yaml:"knowledge_base"`
	NegatedTheoremPredicates  []string `yaml:"negated_theorem_predicates"`
	knowledgeBaseSet          bool
	negatedTheoremPredicateSet bool
}

// UnmarshalYAML tracks which of the two required keys were actually
// present, so a key that's missing (as opposed to present-but-empty) is
// reported as a StructureError rather than silently treated as an empty
// list.
func (d *document) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if kb, ok := raw["knowledge_base"]; ok {
		if err := kb.Decode(&d.KnowledgeBase); err != nil {
			return err
		}
		d.knowledgeBaseSet = true
	}
	if nt, ok := raw["negated_theorem_predicates"]; ok {
		if err := nt.Decode(&d.NegatedTheoremPredicates); err != nil {
			return err
		}
		d.negatedTheoremPredicateSet = true
	}
	return nil
}

// LoadFile reads path and parses it into a prover.Problem.
func LoadFile(path string) (prover.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return prover.Problem{}, errors.Wrapf(err, "input: reading %s", path)
	}
	return Parse(data)
}

// Parse decodes raw YAML bytes into a prover.Problem, validating both
// clause lists before combining them (spec §11 ports InputParser.parse's
// behavior of validating both lists, not short-circuiting on the first).
func Parse(data []byte) (prover.Problem, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return prover.Problem{}, errors.Wrap(err, "input: malformed document")
	}
	if !doc.knowledgeBaseSet {
		return prover.Problem{}, errors.WithStack(&StructureError{Reason: "missing required key \"knowledge_base\""})
	}
	if !doc.negatedTheoremPredicateSet {
		return prover.Problem{}, errors.WithStack(&StructureError{Reason: "missing required key \"negated_theorem_predicates\""})
	}

	kb, kbErr := parser.ParseClauseStrings(doc.KnowledgeBase)
	negated, negErr := parser.ParseClauseStrings(doc.NegatedTheoremPredicates)
	if kbErr != nil {
		return prover.Problem{}, kbErr
	}
	if negErr != nil {
		return prover.Problem{}, negErr
	}

	return prover.NewProblem(kb, negated), nil
}
