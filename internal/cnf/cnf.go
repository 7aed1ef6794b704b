// Package cnf defines the conjunctive-normal-form data model shared by
// the Tseitin encoder and the DPLL solver: literals, clauses (sets,
// duplicates collapse, tautologies discarded), and CNF formulas (sets
// of clauses).
package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// PVar is a dense propositional-variable handle, shared by the Tseitin
// encoder (which mints them) and the DPLL solver (which assigns them).
type PVar int64

// Literal is Pos(v) or Neg(v) for a propositional variable v.
type Literal struct {
	Var     PVar
	Negated bool
}

func Pos(v PVar) Literal { return Literal{Var: v, Negated: false} }
func Neg(v PVar) Literal { return Literal{Var: v, Negated: true} }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return Literal{Var: l.Var, Negated: !l.Negated} }

// Clause is a set of literals; duplicates collapse, order is irrelevant,
// and the empty clause represents false.
type Clause struct {
	lits map[Literal]struct{}
}

// NewClause builds a Clause from lits, discarding it (returning ok=false)
// if it is a tautology (contains both Pos(v) and Neg(v) for some v).
func NewClause(lits ...Literal) (Clause, bool) {
	set := make(map[Literal]struct{}, len(lits))
	for _, l := range lits {
		if _, has := set[l.Negate()]; has {
			return Clause{}, false
		}
		set[l] = struct{}{}
	}
	return Clause{lits: set}, true
}

// Len returns the number of distinct literals in the clause (0 means
// the empty clause, i.e. false).
func (c Clause) Len() int { return len(c.lits) }

// Literals returns the clause's literals in no particular order.
func (c Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.lits))
	for l := range c.lits {
		out = append(out, l)
	}
	return out
}

// Contains reports whether l is one of the clause's literals.
func (c Clause) Contains(l Literal) bool {
	_, ok := c.lits[l]
	return ok
}

// hashKey produces a canonical encoding of the clause's literal set,
// independent of insertion order, so that two Clause values with the
// same literals collapse to the same key.
func (c Clause) hashKey() string {
	lits := c.Literals()
	sort.Slice(lits, func(i, j int) bool {
		if lits[i].Var != lits[j].Var {
			return lits[i].Var < lits[j].Var
		}
		return !lits[i].Negated && lits[j].Negated
	})
	var b strings.Builder
	for _, l := range lits {
		fmt.Fprintf(&b, "%d:%t;", l.Var, l.Negated)
	}
	return b.String()
}

// CNFFormula is a set of clauses; the empty formula is true.
type CNFFormula struct {
	Clauses []Clause

	seen map[string]struct{}
}

// Add appends c to the formula unless it is already present (by literal
// set); the empty clause is always kept (it marks the formula false).
func (f *CNFFormula) Add(c Clause) {
	if f.seen == nil {
		f.seen = make(map[string]struct{}, len(f.Clauses))
		for _, existing := range f.Clauses {
			f.seen[existing.hashKey()] = struct{}{}
		}
	}
	key := c.hashKey()
	if _, dup := f.seen[key]; dup {
		return
	}
	f.seen[key] = struct{}{}
	f.Clauses = append(f.Clauses, c)
}

// Empty reports whether the formula has no clauses (vacuously true).
func (f *CNFFormula) Empty() bool { return len(f.Clauses) == 0 }

// Clone returns a deep-enough copy of f suitable for an independent
// solver run: the Clause slice and the dedup set are copied, but
// individual Clause values are themselves immutable once built via
// NewClause, so clauses are shared by reference.
func (f *CNFFormula) Clone() *CNFFormula {
	cp := make([]Clause, len(f.Clauses))
	copy(cp, f.Clauses)
	seen := make(map[string]struct{}, len(f.seen))
	for k := range f.seen {
		seen[k] = struct{}{}
	}
	return &CNFFormula{Clauses: cp, seen: seen}
}
