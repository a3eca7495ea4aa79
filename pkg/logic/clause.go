package logic

import (
	"sort"
	"strings"
)

// Clause is an ordered collection of Atoms interpreted as their
// disjunction, universally quantified over all free variables. Atoms are
// grouped and ordered by the canonical key (name, polarity); insertion
// order is preserved within a key group (spec §3). The empty Clause
// denotes falsity.
type Clause struct {
	atoms []Atom
}

// NewClause builds a Clause from an unordered list of Atoms, sorting them
// into canonical-key order with a stable sort so atoms that share a key
// keep their relative insertion order.
func NewClause(atoms []Atom) Clause {
	cp := make([]Atom, len(atoms))
	copy(cp, atoms)
	sort.SliceStable(cp, func(i, j int) bool {
		ni, pi := cp[i].Key()
		nj, pj := cp[j].Key()
		if ni != nj {
			return ni < nj
		}
		return !pi && pj // non-negated before negated within the same name
	})
	return Clause{atoms: cp}
}

// Atoms returns the clause's atoms in canonical order.
func (c Clause) Atoms() []Atom { return c.atoms }

// IsEmpty reports whether c is the empty clause (denotes falsity).
func (c Clause) IsEmpty() bool { return len(c.atoms) == 0 }

// Key returns the canonical string rendering used as the clause set's
// identity key (spec §9 permits replacing this with a structural hash
// provided the equivalence class is the same; a canonical string is kept
// here to match the source's set semantics exactly).
func (c Clause) Key() string { return c.String() }

// String renders c as a comma-separated atom list, or "[]" when empty.
func (c Clause) String() string {
	if len(c.atoms) == 0 {
		return "[]"
	}
	parts := make([]string, len(c.atoms))
	for i, a := range c.atoms {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// ApplySubstitution returns a new Clause with s applied to every atom,
// re-sorted into canonical order.
func (c Clause) ApplySubstitution(s Substitution) Clause {
	out := make([]Atom, len(c.atoms))
	for i, a := range c.atoms {
		out[i] = a.ApplySubstitution(s)
	}
	return NewClause(out)
}

// groupByKey groups atoms by their (name, polarity) key, preserving
// per-group insertion order.
func groupByKey(atoms []Atom) map[string][]Atom {
	groups := make(map[string][]Atom)
	for _, a := range atoms {
		name, neg := a.Key()
		gk := groupKey(name, neg)
		groups[gk] = append(groups[gk], a)
	}
	return groups
}

func groupKey(name string, negated bool) string {
	if negated {
		return "~" + name
	}
	return name
}

// Tautology reports whether c contains an atom p(a) and an atom ~p(b)
// whose children unify (spec §4.4). Atoms are grouped by predicate name,
// split by polarity, and every positive/negative pair within a group is
// probed with Unify.
func (c Clause) Tautology() bool {
	byName := make(map[string][2][]Atom) // [0] = non-negated, [1] = negated
	for _, a := range c.atoms {
		entry := byName[a.Name()]
		if a.Negated() {
			entry[1] = append(entry[1], a)
		} else {
			entry[0] = append(entry[0], a)
		}
		byName[a.Name()] = entry
	}
	for _, entry := range byName {
		for _, pos := range entry[0] {
			for _, neg := range entry[1] {
				if _, ok := UnifyList(pos.Children(), neg.Children()); ok {
					return true
				}
			}
		}
	}
	return false
}

// Subsumes reports whether c subsumes other by the matching search of spec
// §4.4: every atom of c must be equal to or ⊑ some atom of other with the
// same (name, polarity) key. Each atom is compared on its own and ⊑ matches
// each argument position independently, so no single substitution is
// checked for consistency, and several atoms of c may match the same atom
// of other. No substitution is extracted.
func (c Clause) Subsumes(other Clause) bool {
	if !tagsSubset(c, other) {
		return false
	}

	cGroups := groupByKey(c.atoms)
	oGroups := groupByKey(other.atoms)

	keys := make([]string, 0, len(cGroups))
	for k := range cGroups {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic search order

	return matchGroups(keys, cGroups, oGroups)
}

// tagsSubset is the fast-reject check: the set of (polarity, name) tags
// of c must be a subset of other's tags.
func tagsSubset(c, other Clause) bool {
	otherTags := make(map[string]bool)
	for _, a := range other.atoms {
		name, neg := a.Key()
		otherTags[groupKey(name, neg)] = true
	}
	seen := make(map[string]bool)
	for _, a := range c.atoms {
		name, neg := a.Key()
		seen[groupKey(name, neg)] = true
	}
	for tag := range seen {
		if !otherTags[tag] {
			return false
		}
	}
	return true
}

// matchGroups enumerates, for each key shared by both clauses, every way
// to pick one C1 atom and one C2 atom (the Cartesian product the spec
// describes), and succeeds if some global pairing has every C1 atom
// structurally equal to or ⊑ its paired C2 atom.
func matchGroups(keys []string, cGroups, oGroups map[string][]Atom) bool {
	return matchGroupsAt(0, keys, cGroups, oGroups)
}

func matchGroupsAt(idx int, keys []string, cGroups, oGroups map[string][]Atom) bool {
	if idx == len(keys) {
		return true
	}
	key := keys[idx]
	cAtoms := cGroups[key]
	oAtoms, ok := oGroups[key]
	if !ok || len(cAtoms) == 0 {
		// A key present only via the fast-reject check guarantees
		// presence in other too, but guard defensively.
		return false
	}
	if matchAtomsInGroup(0, cAtoms, oAtoms) {
		return matchGroupsAt(idx+1, keys, cGroups, oGroups)
	}
	return false
}

// matchAtomsInGroup tries every atom in oAtoms as the match for
// cAtoms[ci], requiring every atom of cAtoms to find some matching atom
// in oAtoms (not necessarily distinct — the spec's Cartesian product
// description allows repeats).
func matchAtomsInGroup(ci int, cAtoms, oAtoms []Atom) bool {
	if ci == len(cAtoms) {
		return true
	}
	for _, o := range oAtoms {
		if atomLessSpecificOrEqual(cAtoms[ci], o) && matchAtomsInGroup(ci+1, cAtoms, oAtoms) {
			return true
		}
	}
	return false
}

// atomLessSpecificOrEqual compares two same-key atoms' children
// positionally via ⊑, ignoring polarity (already matched by the key).
func atomLessSpecificOrEqual(a, b Atom) bool {
	if len(a.Children()) != len(b.Children()) {
		return false
	}
	for i := range a.Children() {
		ac, bc := a.Children()[i], b.Children()[i]
		if !ac.Equal(bc) && !LessSpecific(ac, bc) {
			return false
		}
	}
	return true
}
