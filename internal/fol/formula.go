package fol

// Formula is the recursive first-order-logic formula sum: True, False,
// Rel(r, terms), Not, Or, And, Implies, Iff, Exists(v, body),
// Forall(v, body). Formulas are value-semantic trees, exclusively owned
// by their parent.
type Formula struct {
	op       formulaOp
	rel      Rel
	terms    []Term
	children []Formula // len 1 for Not/Exists/Forall, 2 for binary ops
	bound    Var       // valid for Exists/Forall
}

type formulaOp uint8

const (
	OpTrue formulaOp = iota
	OpFalse
	OpRel
	OpNot
	OpOr
	OpAnd
	OpImplies
	OpIff
	OpExists
	OpForall
)

// Op reports the top-level constructor of f.
func (f Formula) Op() formulaOp { return f.op }

func True() Formula  { return Formula{op: OpTrue} }
func False() Formula { return Formula{op: OpFalse} }

// RelAtom constructs Rel(r, terms).
func RelAtom(r Rel, terms []Term) Formula {
	cp := make([]Term, len(terms))
	copy(cp, terms)
	return Formula{op: OpRel, rel: r, terms: cp}
}

func Not(body Formula) Formula { return Formula{op: OpNot, children: []Formula{body}} }
func Or(a, b Formula) Formula  { return Formula{op: OpOr, children: []Formula{a, b}} }
func And(a, b Formula) Formula { return Formula{op: OpAnd, children: []Formula{a, b}} }
func ImpliesF(a, b Formula) Formula {
	return Formula{op: OpImplies, children: []Formula{a, b}}
}
func IffF(a, b Formula) Formula { return Formula{op: OpIff, children: []Formula{a, b}} }

func ExistsF(v Var, body Formula) Formula {
	return Formula{op: OpExists, bound: v, children: []Formula{body}}
}
func ForallF(v Var, body Formula) Formula {
	return Formula{op: OpForall, bound: v, children: []Formula{body}}
}

// RelHandle, Terms, Child, NumChildren, BoundVar are read-only accessors.
// RelHandle, Terms and BoundVar panic if called against the wrong Op,
// matching Term's accessor style: these are programmer-error guards, not
// recoverable failures. Child and NumChildren index the children directly
// and do not check the Op.

func (f Formula) RelHandle() Rel {
	if f.op != OpRel {
		panic("fol: Formula.RelHandle called on a non-Rel formula")
	}
	return f.rel
}

func (f Formula) Terms() []Term {
	if f.op != OpRel {
		panic("fol: Formula.Terms called on a non-Rel formula")
	}
	return f.terms
}

func (f Formula) Child(i int) Formula {
	return f.children[i]
}

func (f Formula) NumChildren() int {
	return len(f.children)
}

func (f Formula) BoundVar() Var {
	if f.op != OpExists && f.op != OpForall {
		panic("fol: Formula.BoundVar called on a non-quantifier formula")
	}
	return f.bound
}

// FreeVars returns the free variables of f (each bound bound Var
// subtracts its own subtree's occurrences), in first-occurrence order
// with duplicates collapsed.
func (f Formula) FreeVars() []Var {
	seen := map[Var]bool{}
	var order []Var
	var walk func(f Formula, bound map[Var]bool)
	walk = func(f Formula, bound map[Var]bool) {
		switch f.op {
		case OpTrue, OpFalse:
		case OpRel:
			for _, t := range f.terms {
				var buf []Var
				for _, v := range t.FreeVars(buf) {
					if bound[v] {
						continue
					}
					if !seen[v] {
						seen[v] = true
						order = append(order, v)
					}
				}
			}
		case OpNot:
			walk(f.children[0], bound)
		case OpOr, OpAnd, OpImplies, OpIff:
			walk(f.children[0], bound)
			walk(f.children[1], bound)
		case OpExists, OpForall:
			inner := make(map[Var]bool, len(bound)+1)
			for k := range bound {
				inner[k] = true
			}
			inner[f.bound] = true
			walk(f.children[0], inner)
		}
	}
	walk(f, map[Var]bool{})
	return order
}

// Substitute applies sub to every term occurring in f. It is used after
// Skolemization-time substitution-map construction, and must only be
// applied to the quantifier-free matrix (binders are handled by the
// Skolemization pass itself, which rebuilds Forall/Exists nodes
// separately).
func (f Formula) Substitute(sub map[Var]Term) Formula {
	switch f.op {
	case OpTrue, OpFalse:
		return f
	case OpRel:
		terms := make([]Term, len(f.terms))
		for i, t := range f.terms {
			terms[i] = t.Substitute(sub)
		}
		return Formula{op: OpRel, rel: f.rel, terms: terms}
	case OpNot:
		return Not(f.children[0].Substitute(sub))
	case OpOr:
		return Or(f.children[0].Substitute(sub), f.children[1].Substitute(sub))
	case OpAnd:
		return And(f.children[0].Substitute(sub), f.children[1].Substitute(sub))
	case OpImplies:
		return ImpliesF(f.children[0].Substitute(sub), f.children[1].Substitute(sub))
	case OpIff:
		return IffF(f.children[0].Substitute(sub), f.children[1].Substitute(sub))
	case OpExists:
		return ExistsF(f.bound, f.children[0].Substitute(sub))
	case OpForall:
		return ForallF(f.bound, f.children[0].Substitute(sub))
	}
	panic("fol: Substitute: unreachable formula op")
}
