package encode

import "github.com/gitrdm/folprover/internal/fol"

// Ground substitutes tuple for vars (positionally) into the
// quantifier-free NNF matrix, then maps each resulting ground atom
// Rel(r, ubar) to a propositional variable via atoms, lifting
// And/Or/True/False directly and mapping Not(Rel(...)) to the negated
// literal. len(tuple) must equal len(vars).
func Ground(matrix fol.Formula, vars []fol.Var, tuple []fol.Term, atoms *AtomTable) PropFormula {
	sub := make(map[fol.Var]fol.Term, len(vars))
	for i, v := range vars {
		sub[v] = tuple[i]
	}
	grounded := matrix.Substitute(sub)
	return liftGround(grounded, atoms)
}

func liftGround(f fol.Formula, atoms *AtomTable) PropFormula {
	switch f.Op() {
	case fol.OpTrue:
		return PTrue()
	case fol.OpFalse:
		return PFalse()
	case fol.OpRel:
		v := atoms.Intern(f.RelHandle(), f.Terms())
		return PVarF(v)
	case fol.OpNot:
		// NNF invariant: Not wraps only a Rel atom.
		inner := f.Child(0)
		v := atoms.Intern(inner.RelHandle(), inner.Terms())
		return PNotVarF(v)
	case fol.OpAnd:
		return PAnd(liftGround(f.Child(0), atoms), liftGround(f.Child(1), atoms))
	case fol.OpOr:
		return POr(liftGround(f.Child(0), atoms), liftGround(f.Child(1), atoms))
	}
	panic("encode: Ground: NNF invariant violation: unexpected formula op in matrix")
}
