package encode

import "github.com/gitrdm/folprover/internal/cnf"

// Tseitin encodes f into an equisatisfiable CNF formula. Inner
// True/False constants are absorbed first by identity/annihilator
// simplification; if the simplified root is True no clauses are
// emitted, if False a single empty clause is. Otherwise a fresh
// indicator variable is introduced for every node, including Var/NotVar
// leaves, which get their own indicator through the same <-> pattern as
// internal nodes, and the root's indicator is asserted as a unit
// clause. Clauses containing complementary literals are discarded by
// cnf.NewClause.
func Tseitin(f PropFormula, atoms *AtomTable) *cnf.CNFFormula {
	out := &cnf.CNFFormula{}
	simplified := simplify(f)
	switch simplified.op {
	case PropTrue:
		return out
	case PropFalse:
		empty, _ := cnf.NewClause()
		out.Add(empty)
		return out
	}
	root := tseitinEncode(simplified, atoms, out)
	addClause(out, cnf.Pos(root))
	return out
}

// simplify absorbs True/False via identity/annihilator laws so that,
// afterwards, True/False (if present at all) can only be the whole
// formula.
func simplify(f PropFormula) PropFormula {
	switch f.op {
	case PropTrue, PropFalse, PropVar, PropNotVar:
		return f
	case PropAnd:
		a, b := simplify(f.children[0]), simplify(f.children[1])
		if a.op == PropFalse || b.op == PropFalse {
			return PFalse()
		}
		if a.op == PropTrue {
			return b
		}
		if b.op == PropTrue {
			return a
		}
		return PAnd(a, b)
	case PropOr:
		a, b := simplify(f.children[0]), simplify(f.children[1])
		if a.op == PropTrue || b.op == PropTrue {
			return PTrue()
		}
		if a.op == PropFalse {
			return b
		}
		if b.op == PropFalse {
			return a
		}
		return POr(a, b)
	}
	panic("encode: simplify: unreachable prop op")
}

// tseitinEncode assigns an indicator variable to f (and, recursively, to
// its children), emits the <-> clauses for each, and returns f's
// indicator variable. f must already be constant-free (simplify has
// run).
func tseitinEncode(f PropFormula, atoms *AtomTable, out *cnf.CNFFormula) cnf.PVar {
	switch f.op {
	case PropVar:
		v := atoms.FreshAux()
		// v <-> p
		addClause(out, cnf.Neg(v), cnf.Pos(f.v))
		addClause(out, cnf.Pos(v), cnf.Neg(f.v))
		return v
	case PropNotVar:
		v := atoms.FreshAux()
		// v <-> not p
		addClause(out, cnf.Neg(v), cnf.Neg(f.v))
		addClause(out, cnf.Pos(v), cnf.Pos(f.v))
		return v
	case PropAnd:
		a := tseitinEncode(f.children[0], atoms, out)
		b := tseitinEncode(f.children[1], atoms, out)
		v := atoms.FreshAux()
		// v <-> a and b
		addClause(out, cnf.Neg(v), cnf.Pos(a))
		addClause(out, cnf.Neg(v), cnf.Pos(b))
		addClause(out, cnf.Pos(v), cnf.Neg(a), cnf.Neg(b))
		return v
	case PropOr:
		a := tseitinEncode(f.children[0], atoms, out)
		b := tseitinEncode(f.children[1], atoms, out)
		v := atoms.FreshAux()
		// v <-> a or b
		addClause(out, cnf.Pos(v), cnf.Neg(a))
		addClause(out, cnf.Pos(v), cnf.Neg(b))
		addClause(out, cnf.Neg(v), cnf.Pos(a), cnf.Pos(b))
		return v
	}
	panic("encode: tseitinEncode: unreachable prop op (True/False must have been absorbed)")
}

func addClause(out *cnf.CNFFormula, lits ...cnf.Literal) {
	c, ok := cnf.NewClause(lits...)
	if !ok {
		return // tautology: discarded at insertion
	}
	out.Add(c)
}
