package fol

// Skolemize eliminates every Exists in an NNF sentence f, replacing each
// existentially bound variable by a fresh Skolem function applied to the
// universals currently in scope, in binding order. Forall nodes are
// kept (prenex.go floats them afterwards); f must already be in NNF and
// must be a sentence (no free variables), both enforced by the caller's
// pipeline (Closure runs first).
func Skolemize(in *Interner, f Formula) Formula {
	return skolemize(in, f, nil, map[Var]Term{})
}

func skolemize(in *Interner, f Formula, env []Var, sub map[Var]Term) Formula {
	switch f.op {
	case OpTrue, OpFalse:
		return f
	case OpRel:
		return f.Substitute(sub)
	case OpNot:
		// NNF invariant: Not wraps only a Rel atom.
		return Not(skolemize(in, f.children[0], env, sub))
	case OpOr:
		return Or(skolemize(in, f.children[0], env, sub), skolemize(in, f.children[1], env, sub))
	case OpAnd:
		return And(skolemize(in, f.children[0], env, sub), skolemize(in, f.children[1], env, sub))
	case OpForall:
		x := f.bound
		env2 := append(append([]Var(nil), env...), x)
		sub2 := cloneSub(sub)
		sub2[x] = TermVar(x)
		return ForallF(x, skolemize(in, f.children[0], env2, sub2))
	case OpExists:
		y := f.bound
		args := make([]Term, len(env))
		for i, x := range env {
			args[i] = TermVar(x)
		}
		skolemFun := in.FreshFun(len(env))
		sub2 := cloneSub(sub)
		sub2[y] = TermFun(skolemFun, args)
		return skolemize(in, f.children[0], env, sub2)
	}
	panic("fol: Skolemize: NNF invariant violation: unexpected formula op")
}

func cloneSub(sub map[Var]Term) map[Var]Term {
	cp := make(map[Var]Term, len(sub)+1)
	for k, v := range sub {
		cp[k] = v
	}
	return cp
}
