package fol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// formulaCmpOpts lets cmp.Diff descend into Formula and Term's unexported
// fields, since structural equality here means "same op, handles, and
// shape", not address identity.
var formulaCmpOpts = cmp.AllowUnexported(Formula{}, Term{})

func TestPrenexExtractsForallPrefixInBindingOrder(t *testing.T) {
	in := NewInterner()
	x := in.FreshVar()
	y := in.FreshVar()
	r := in.InternRel("P", 2)
	body := RelAtom(r, []Term{TermVar(x), TermVar(y)})
	f := ForallF(x, ForallF(y, body))

	vars, matrix := Prenex(f)
	if len(vars) != 2 || vars[0] != x || vars[1] != y {
		t.Fatalf("Prenex vars = %v, want [%v %v]", vars, x, y)
	}
	if matrix.Op() != OpRel {
		t.Fatalf("Prenex matrix should be the quantifier-free body, got op %v", matrix.Op())
	}
}

func TestPrenexDescendsThroughAnd(t *testing.T) {
	in := NewInterner()
	x := in.FreshVar()
	y := in.FreshVar()
	r := in.InternRel("P", 1)
	s := in.InternRel("Q", 1)
	left := ForallF(x, RelAtom(r, []Term{TermVar(x)}))
	right := ForallF(y, RelAtom(s, []Term{TermVar(y)}))
	f := And(left, right)

	vars, matrix := Prenex(f)
	if len(vars) != 2 || vars[0] != x || vars[1] != y {
		t.Fatalf("Prenex vars = %v, want [%v %v]", vars, x, y)
	}
	if matrix.Op() != OpAnd {
		t.Fatalf("matrix should remain an And of the two bodies, got op %v", matrix.Op())
	}
}

func TestReassembleInvertsPrenex(t *testing.T) {
	in := NewInterner()
	x := in.FreshVar()
	y := in.FreshVar()
	r := in.InternRel("P", 2)
	body := RelAtom(r, []Term{TermVar(x), TermVar(y)})
	f := ForallF(x, ForallF(y, body))

	vars, matrix := Prenex(f)
	got := Reassemble(vars, matrix)
	if got.Op() != OpForall || got.BoundVar() != x {
		t.Fatalf("Reassemble should rebuild the outer Forall over %v first, got op %v bound %v", x, got.Op(), got.BoundVar())
	}
	inner := got.Child(0)
	if inner.Op() != OpForall || inner.BoundVar() != y {
		t.Fatalf("Reassemble should nest the Forall over %v next, got op %v bound %v", y, inner.Op(), inner.BoundVar())
	}
	if inner.Child(0).Op() != OpRel {
		t.Fatalf("innermost body should be the original Rel atom, got op %v", inner.Child(0).Op())
	}
}

func TestReassembleRoundTripsStructurallyForNestedQuantifiers(t *testing.T) {
	in := NewInterner()
	x := in.FreshVar()
	y := in.FreshVar()
	z := in.FreshVar()
	r := in.InternRel("P", 3)
	body := RelAtom(r, []Term{TermVar(x), TermVar(y), TermVar(z)})
	f := ForallF(x, ForallF(y, ForallF(z, body)))

	vars, matrix := Prenex(f)
	got := Reassemble(vars, matrix)
	if diff := cmp.Diff(f, got, formulaCmpOpts); diff != "" {
		t.Fatalf("Reassemble(Prenex(f)) should structurally equal f (-want +got):\n%s\nfull value: %# v", diff, pretty.Formatter(got))
	}
}

func TestPrenexOnQuantifierFreeFormulaYieldsEmptyPrefix(t *testing.T) {
	in := NewInterner()
	r := in.InternRel("P", 0)
	p := RelAtom(r, nil)
	f := Or(p, Not(p))

	vars, matrix := Prenex(f)
	if len(vars) != 0 {
		t.Fatalf("expected an empty prefix for a quantifier-free formula, got %v", vars)
	}
	if matrix.Op() != OpOr {
		t.Fatalf("matrix should be unchanged, got op %v", matrix.Op())
	}
}
