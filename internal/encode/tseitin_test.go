package encode

import (
	"testing"

	"github.com/gitrdm/folprover/internal/cnf"
)

// bruteForceSat decides satisfiability of f by exhaustive truth-table
// search over the propositional variables it mentions, used as an
// independent oracle against Tseitin's CNF output.
func bruteForceSat(f *cnf.CNFFormula) bool {
	vars := map[cnf.PVar]bool{}
	for _, c := range f.Clauses {
		for _, l := range c.Literals() {
			vars[l.Var] = true
		}
	}
	list := make([]cnf.PVar, 0, len(vars))
	for v := range vars {
		list = append(list, v)
	}
	n := len(list)
	for mask := 0; mask < (1 << n); mask++ {
		assign := map[cnf.PVar]bool{}
		for i, v := range list {
			assign[v] = mask&(1<<i) != 0
		}
		if satisfiesAll(f, assign) {
			return true
		}
	}
	return n == 0 && len(f.Clauses) == 0
}

func satisfiesAll(f *cnf.CNFFormula, assign map[cnf.PVar]bool) bool {
	for _, c := range f.Clauses {
		if !clauseSatisfied(c, assign) {
			return false
		}
	}
	return true
}

func clauseSatisfied(c cnf.Clause, assign map[cnf.PVar]bool) bool {
	for _, l := range c.Literals() {
		if assign[l.Var] != l.Negated {
			return true
		}
	}
	return false
}

func TestTseitinOnPlainTrueYieldsNoClauses(t *testing.T) {
	atoms := NewAtomTable()
	out := Tseitin(PTrue(), atoms)
	if !out.Empty() {
		t.Fatalf("Tseitin(True) should yield no clauses, got %d", len(out.Clauses))
	}
}

func TestTseitinOnPlainFalseYieldsEmptyClause(t *testing.T) {
	atoms := NewAtomTable()
	out := Tseitin(PFalse(), atoms)
	if len(out.Clauses) != 1 || out.Clauses[0].Len() != 0 {
		t.Fatalf("Tseitin(False) should yield a single empty clause, got %v", out.Clauses)
	}
}

func TestTseitinOnContradictionIsUnsatisfiable(t *testing.T) {
	atoms := NewAtomTable()
	v := atoms.FreshAux()
	f := PAnd(PVarF(v), PNotVarF(v))
	out := Tseitin(f, atoms)
	if bruteForceSat(out) {
		t.Fatalf("Tseitin(p & ~p) should be unsatisfiable")
	}
}

func TestTseitinOnTautologyIsSatisfiable(t *testing.T) {
	atoms := NewAtomTable()
	v := atoms.FreshAux()
	f := POr(PVarF(v), PNotVarF(v))
	out := Tseitin(f, atoms)
	if !bruteForceSat(out) {
		t.Fatalf("Tseitin(p | ~p) should be satisfiable")
	}
}

func TestTseitinPreservesSatisfiabilityOfAGenuineDisjunction(t *testing.T) {
	atoms := NewAtomTable()
	v1 := atoms.FreshAux()
	v2 := atoms.FreshAux()
	// (v1 & v2) | (~v1 & ~v2): satisfiable (e.g. both true).
	f := POr(PAnd(PVarF(v1), PVarF(v2)), PAnd(PNotVarF(v1), PNotVarF(v2)))
	out := Tseitin(f, atoms)
	if !bruteForceSat(out) {
		t.Fatalf("(v1&v2)|(~v1&~v2) should be satisfiable")
	}
}

func TestTseitinUsesFreshIndicatorForPlainVarLeaves(t *testing.T) {
	atoms := NewAtomTable()
	v := atoms.FreshAux()
	out := Tseitin(PVarF(v), atoms)
	// A bare Var leaf still gets an indicator <-> p, plus the unit clause
	// asserting the indicator: three clauses total (two for the
	// biconditional, one unit), and the root literal must not simply be
	// Pos(v) itself.
	if len(out.Clauses) != 3 {
		t.Fatalf("Tseitin(Var(v)) should emit 3 clauses (biconditional + unit), got %d: %v", len(out.Clauses), out.Clauses)
	}
	rootIsBareV := false
	for _, c := range out.Clauses {
		if c.Len() == 1 && c.Contains(cnf.Pos(v)) {
			rootIsBareV = true
		}
	}
	if rootIsBareV {
		t.Fatalf("a uniform-leaf encoding should never assert the raw leaf variable as the unit clause directly")
	}
}
