// Package encode grounds a quantifier-free FOL matrix against a
// universal-instantiation tuple and Tseitin-encodes the result into an
// equisatisfiable CNF formula.
package encode

import (
	"github.com/gitrdm/folprover/internal/cnf"
	"github.com/gitrdm/folprover/internal/fol"
)

// PVar is a dense propositional-variable handle minted by an AtomTable.
type PVar = cnf.PVar

// PropFormula is the post-encoding propositional formula: True, False,
// Var(p), NotVar(p), And, Or. Negation is pushed to literals only.
type PropFormula struct {
	op       propOp
	v        PVar
	children []PropFormula
}

type propOp uint8

const (
	PropTrue propOp = iota
	PropFalse
	PropVar
	PropNotVar
	PropAnd
	PropOr
)

func PTrue() PropFormula  { return PropFormula{op: PropTrue} }
func PFalse() PropFormula { return PropFormula{op: PropFalse} }
func PVarF(v PVar) PropFormula {
	return PropFormula{op: PropVar, v: v}
}
func PNotVarF(v PVar) PropFormula {
	return PropFormula{op: PropNotVar, v: v}
}
func PAnd(a, b PropFormula) PropFormula {
	return PropFormula{op: PropAnd, children: []PropFormula{a, b}}
}
func POr(a, b PropFormula) PropFormula {
	return PropFormula{op: PropOr, children: []PropFormula{a, b}}
}

func (f PropFormula) Op() propOp          { return f.op }
func (f PropFormula) Variable() PVar      { return f.v }
func (f PropFormula) Child(i int) PropFormula { return f.children[i] }

// AtomTable interns ground atoms (Rel, term-vector) to dense PVar
// handles. The mapping is injective: substituting alpha-equal atoms
// yields an identical PVar, which falls out of fol.Term.Equal being
// structural equality and the table being keyed on a canonical string
// encoding of (Rel, terms).
type AtomTable struct {
	next int64
	ids  map[string]PVar
	defs map[PVar]groundAtom
}

type groundAtom struct {
	rel   fol.Rel
	terms []fol.Term
}

// NewAtomTable creates an empty atom-interning table.
func NewAtomTable() *AtomTable {
	return &AtomTable{ids: map[string]PVar{}, defs: map[PVar]groundAtom{}}
}

// Intern returns the PVar for (r, terms), minting a fresh one on first
// use.
func (t *AtomTable) Intern(r fol.Rel, terms []fol.Term) PVar {
	key := atomKey(r, terms)
	if v, ok := t.ids[key]; ok {
		return v
	}
	t.next++
	v := PVar(t.next)
	t.ids[key] = v
	t.defs[v] = groundAtom{rel: r, terms: append([]fol.Term(nil), terms...)}
	return v
}

// FreshAux mints a new PVar from the same counter Intern uses, for the
// Tseitin encoder's per-node indicator variables, guaranteeing that
// auxiliary variables never collide with (or get confused for) an
// interned ground atom's variable, since both are drawn from one
// monotonic sequence.
func (t *AtomTable) FreshAux() PVar {
	t.next++
	return PVar(t.next)
}

// Lookup returns the ground atom a PVar was interned for; ok is false
// for a PVar minted by FreshAux.
func (t *AtomTable) Lookup(v PVar) (rel fol.Rel, terms []fol.Term, ok bool) {
	a, ok := t.defs[v]
	return a.rel, a.terms, ok
}

func atomKey(r fol.Rel, terms []fol.Term) string {
	// fol.Term doesn't export its hash key; build one identical in shape
	// via TermFun(r-as-Fun-index, terms)'s recursive string form is
	// overkill here; a simple delimited encoding of each term's
	// canonical form (via Equal-compatible recursive printer) suffices
	// since this key is only ever compared to itself.
	b := make([]byte, 0, 32)
	b = appendInt(b, int64(r))
	for _, term := range terms {
		b = append(b, '|')
		b = appendTermKey(b, term)
	}
	return string(b)
}

func appendInt(b []byte, n int64) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
		b = append(b, '-')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func appendTermKey(b []byte, t fol.Term) []byte {
	if t.IsVar() {
		b = append(b, 'v')
		return appendInt(b, int64(t.VarHandle()))
	}
	b = append(b, 'f')
	b = appendInt(b, int64(t.FunHandle()))
	b = append(b, '(')
	for i, a := range t.Args() {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendTermKey(b, a)
	}
	b = append(b, ')')
	return b
}
