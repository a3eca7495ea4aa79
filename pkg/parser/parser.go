// Package parser builds pkg/logic Terms, Atoms, and Clauses from the
// restricted surface syntax spec §4.1 defines: a clause is a
// comma-separated list of atoms, an atom is `[~] name ( child , ... )`,
// and a function is `name ( child , ... )`. The parser never panics; it
// reports rejection as a ParseError.
package parser

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/gitrdm/foplresolve/pkg/logic"
)

// ParseError reports a malformed atom, unbalanced parentheses, an empty
// name, or an illegal character in the input fragment.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "parser: " + e.Reason + ": " + e.Input
}

func parseError(input, reason string) error {
	return errors.WithStack(&ParseError{Input: input, Reason: reason})
}

// ParseChildren splits a child list while respecting balanced
// parentheses, e.g. "a, f(y, h), c" -> ["a", " f(y, h)", " c"]. Tokens are
// not trimmed. It is the parser's single pure splitting primitive (spec
// §4.1).
func ParseChildren(s string) ([]string, error) {
	depth := 0
	start := 0
	var children []string

	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, parseError(s, "unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				children = append(children, s[start:i])
				start = i + len(string(r))
			}
		}
	}
	if depth != 0 {
		return nil, parseError(s, "unbalanced parentheses")
	}
	children = append(children, s[start:])
	return children, nil
}

// ParseClauseStrings parses an ordered sequence of clause strings (spec
// §6: each is a comma-separated atom list at the top level) into
// logic.Clauses. It returns the first ParseError encountered.
func ParseClauseStrings(clauses []string) ([]logic.Clause, error) {
	out := make([]logic.Clause, 0, len(clauses))
	for _, s := range clauses {
		c, err := ParseClause(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseClause parses a single comma-separated atom list into a Clause.
func ParseClause(s string) (logic.Clause, error) {
	parts, err := ParseChildren(s)
	if err != nil {
		return logic.Clause{}, err
	}
	atoms := make([]logic.Atom, 0, len(parts))
	for _, p := range parts {
		a, err := BuildAtom(p)
		if err != nil {
			return logic.Clause{}, err
		}
		atoms = append(atoms, a)
	}
	return logic.NewClause(atoms), nil
}

// BuildAtom parses `[~] name ( child , ... )` into a logic.Atom.
func BuildAtom(s string) (logic.Atom, error) {
	trimmed := strings.TrimSpace(s)
	negated := strings.HasPrefix(trimmed, "~")
	if negated {
		trimmed = strings.TrimSpace(trimmed[1:])
	}

	name, childTokens, err := splitNameAndChildren(trimmed)
	if err != nil {
		return logic.Atom{}, err
	}
	if !isLowerInitialAlnum(name) {
		return logic.Atom{}, parseError(s, "atom name must be lowercase-initial alphanumeric")
	}

	children, err := buildChildren(childTokens)
	if err != nil {
		return logic.Atom{}, err
	}
	if len(children) == 0 {
		return logic.Atom{}, parseError(s, "atom must have at least one child")
	}
	return logic.NewAtom(name, children, negated), nil
}

// BuildTerm classifies and builds a single child token as a Function,
// Variable, or Constant (spec §4.1's classification rule). It fails
// (returns an error) when the token matches none of the three cases.
func BuildTerm(s string) (logic.Term, error) {
	trimmed := strings.TrimSpace(s)

	if strings.Contains(trimmed, "(") {
		name, childTokens, err := splitNameAndChildren(trimmed)
		if err == nil && isLowerInitialAlnum(name) {
			children, cerr := buildChildren(childTokens)
			if cerr == nil && len(children) > 0 {
				return logic.NewFunction(name, children), nil
			}
		}
		return logic.Term{}, parseError(s, "malformed function term")
	}

	if !isAlphanumeric(trimmed) || trimmed == "" {
		return logic.Term{}, parseError(s, "illegal character in term")
	}
	if isLowerInitial(trimmed) {
		return logic.NewVariable(trimmed), nil
	}
	if isUpperInitial(trimmed) {
		return logic.NewConstant(trimmed), nil
	}
	return logic.Term{}, parseError(s, "illegal character in term")
}

func buildChildren(tokens []string) ([]logic.Term, error) {
	terms := make([]logic.Term, 0, len(tokens))
	for _, tok := range tokens {
		t, err := BuildTerm(tok)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// splitNameAndChildren splits "name(children...)" into its name and raw
// child tokens, requiring balanced trailing parentheses over the whole
// token (spec §4.1 case 1: `name(...)` with the inside parsing
// recursively as a balanced child list).
func splitNameAndChildren(s string) (string, []string, error) {
	open := strings.Index(s, "(")
	if open < 0 {
		return "", nil, parseError(s, "missing opening parenthesis")
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, parseError(s, "missing closing parenthesis")
	}
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return "", nil, parseError(s, "empty name")
	}
	inner := s[open+1 : len(s)-1]
	tokens, err := ParseChildren(inner)
	if err != nil {
		return "", nil, err
	}
	return name, tokens, nil
}

func isLowerInitial(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsLower(r[0])
}

func isUpperInitial(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

func isLowerInitialAlnum(s string) bool {
	return s != "" && isAlphanumeric(s) && isLowerInitial(s)
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
