package fol

// NNF rewrites f into negation normal form: Implies and Iff are
// eliminated, and Not is pushed down until it wraps only a Rel atom.
// Because the Iff expansion necessarily duplicates a subformula (once
// direct, once negated), one of the two copies is alpha-refreshed so
// that bound-variable handles stay globally unique afterwards. The same
// re-renaming is applied whenever NNF descends under Not beneath a
// quantifier, for the same reason.
func NNF(in *Interner, f Formula) Formula {
	switch f.op {
	case OpTrue, OpFalse, OpRel:
		return f
	case OpNot:
		return nnfNot(in, f.children[0])
	case OpOr:
		return Or(NNF(in, f.children[0]), NNF(in, f.children[1]))
	case OpAnd:
		return And(NNF(in, f.children[0]), NNF(in, f.children[1]))
	case OpImplies:
		a, b := f.children[0], f.children[1]
		return Or(nnfNot(in, a), NNF(in, b))
	case OpIff:
		a, b := f.children[0], f.children[1]
		left := And(NNF(in, a), NNF(in, b))
		right := And(alphaRefresh(in, nnfNot(in, a)), alphaRefresh(in, nnfNot(in, b)))
		return Or(left, right)
	case OpExists:
		return ExistsF(f.bound, NNF(in, f.children[0]))
	case OpForall:
		return ForallF(f.bound, NNF(in, f.children[0]))
	}
	panic("fol: NNF: unreachable formula op")
}

// nnfNot computes NNF(Not(f)) directly, pushing the negation through f's
// top connective rather than building an intermediate Not node and
// re-dispatching.
func nnfNot(in *Interner, f Formula) Formula {
	switch f.op {
	case OpTrue:
		return False()
	case OpFalse:
		return True()
	case OpRel:
		return Not(f)
	case OpNot:
		return NNF(in, f.children[0])
	case OpOr:
		return And(nnfNot(in, f.children[0]), nnfNot(in, f.children[1]))
	case OpAnd:
		return Or(nnfNot(in, f.children[0]), nnfNot(in, f.children[1]))
	case OpImplies:
		// not(a -> b) == a and not(b)
		a, b := f.children[0], f.children[1]
		return And(NNF(in, a), nnfNot(in, b))
	case OpIff:
		a, b := f.children[0], f.children[1]
		left := And(NNF(in, a), nnfNot(in, b))
		right := And(alphaRefresh(in, nnfNot(in, a)), alphaRefresh(in, NNF(in, b)))
		return Or(left, right)
	case OpExists:
		return alphaRefresh(in, ForallF(f.bound, nnfNot(in, f.children[0])))
	case OpForall:
		return alphaRefresh(in, ExistsF(f.bound, nnfNot(in, f.children[0])))
	}
	panic("fol: nnfNot: unreachable formula op")
}

// alphaRefresh rebuilds f with every bound variable replaced by a fresh
// handle, leaving variables free in f (bound by some enclosing context
// outside f) untouched. Used to restore the alpha-invariant after a
// subformula has been duplicated by Iff expansion, and when a negation
// is pushed through a quantifier.
func alphaRefresh(in *Interner, f Formula) Formula {
	return alphaRefreshEnv(in, f, map[Var]Var{})
}

func alphaRefreshEnv(in *Interner, f Formula, ren map[Var]Var) Formula {
	switch f.op {
	case OpTrue, OpFalse:
		return f
	case OpRel:
		terms := make([]Term, len(f.terms))
		for i, t := range f.terms {
			terms[i] = renameTerm(t, ren)
		}
		return RelAtom(f.rel, terms)
	case OpNot:
		return Not(alphaRefreshEnv(in, f.children[0], ren))
	case OpOr:
		return Or(alphaRefreshEnv(in, f.children[0], ren), alphaRefreshEnv(in, f.children[1], ren))
	case OpAnd:
		return And(alphaRefreshEnv(in, f.children[0], ren), alphaRefreshEnv(in, f.children[1], ren))
	case OpImplies:
		return ImpliesF(alphaRefreshEnv(in, f.children[0], ren), alphaRefreshEnv(in, f.children[1], ren))
	case OpIff:
		return IffF(alphaRefreshEnv(in, f.children[0], ren), alphaRefreshEnv(in, f.children[1], ren))
	case OpExists, OpForall:
		fresh := in.FreshVar()
		ren2 := make(map[Var]Var, len(ren)+1)
		for k, v := range ren {
			ren2[k] = v
		}
		ren2[f.bound] = fresh
		body := alphaRefreshEnv(in, f.children[0], ren2)
		if f.op == OpExists {
			return ExistsF(fresh, body)
		}
		return ForallF(fresh, body)
	}
	panic("fol: alphaRefresh: unreachable formula op")
}

func renameTerm(t Term, ren map[Var]Var) Term {
	if t.kind == termVar {
		if nv, ok := ren[t.v]; ok {
			return TermVar(nv)
		}
		return t
	}
	args := make([]Term, len(t.args))
	for i, a := range t.args {
		args[i] = renameTerm(a, ren)
	}
	return TermFun(t.f, args)
}
