package fol

// Translate maps a string-named AST onto the dense-handle Formula
// model. Function and relation names are interned globally; on
// entering a quantifier Qx.phi the current binding of x (if any) is
// saved, a fresh handle is allocated for x inside phi, and the prior
// binding is restored on exit, capture-avoiding alpha-renaming of the
// input. Translation assumes a well-formed AST (the surface parser's
// responsibility) and never fails.
func Translate(in *Interner, a AST) Formula {
	env := map[string]Var{}
	return translate(in, a, env)
}

func translate(in *Interner, a AST, env map[string]Var) Formula {
	switch a.kind {
	case astTrue:
		return True()
	case astFalse:
		return False()
	case astNot:
		return Not(translate(in, *a.child, env))
	case astOr:
		return Or(translate(in, a.args[0], env), translate(in, a.args[1], env))
	case astAnd:
		return And(translate(in, a.args[0], env), translate(in, a.args[1], env))
	case astImplies:
		return ImpliesF(translate(in, a.args[0], env), translate(in, a.args[1], env))
	case astIff:
		return IffF(translate(in, a.args[0], env), translate(in, a.args[1], env))
	case astExists:
		return translateQuant(in, a, env, true)
	case astForall:
		return translateQuant(in, a, env, false)
	case astRelAtom:
		r := in.InternRel(a.name, len(a.args))
		terms := make([]Term, len(a.args))
		for i, arg := range a.args {
			terms[i] = translateTerm(in, arg, env)
		}
		return RelAtom(r, terms)
	}
	panic("fol: Translate: unreachable AST kind")
}

func translateQuant(in *Interner, a AST, env map[string]Var, exists bool) Formula {
	prior, hadPrior := env[a.name]
	fresh := in.FreshVar()
	env[a.name] = fresh
	body := translate(in, *a.child, env)
	if hadPrior {
		env[a.name] = prior
	} else {
		delete(env, a.name)
	}
	if exists {
		return ExistsF(fresh, body)
	}
	return ForallF(fresh, body)
}

func translateTerm(in *Interner, a AST, env map[string]Var) Term {
	switch a.kind {
	case astVarTerm:
		if v, ok := env[a.name]; ok {
			return TermVar(v)
		}
		// Free occurrence with no enclosing binder: treat as a fresh
		// variable, consistently reused for the remainder of this
		// translation (the universal-closure pass will bind it).
		v := in.FreshVar()
		env[a.name] = v
		return TermVar(v)
	case astFunTerm:
		f := in.InternFun(a.name, len(a.args))
		args := make([]Term, len(a.args))
		for i, arg := range a.args {
			args[i] = translateTerm(in, arg, env)
		}
		return TermFun(f, args)
	}
	panic("fol: translateTerm: unreachable AST kind")
}
