package fol

import "testing"

func TestTranslateInternsRelationsAndFunctionsByName(t *testing.T) {
	in := NewInterner()
	// P(f(x), c) & P(f(x), c) should share the same Rel and Fun handles
	// across both occurrences.
	term := ASTFun("f", []AST{ASTVar("x")})
	atom := ASTRel("P", []AST{term, ASTFun("c", nil)})
	a := ASTAnd(atom, atom)

	f := Translate(in, a)
	left := f.Child(0)
	right := f.Child(1)
	if left.RelHandle() != right.RelHandle() {
		t.Fatalf("repeated uses of relation P should intern to the same handle, got %v and %v", left.RelHandle(), right.RelHandle())
	}
	if left.Terms()[0].FunHandle() != right.Terms()[0].FunHandle() {
		t.Fatalf("repeated uses of function f should intern to the same handle")
	}
}

func TestTranslateAlphaRenamesShadowedQuantifiers(t *testing.T) {
	in := NewInterner()
	r := in.InternRel("P", 1)
	_ = r
	// Forall x. (P(x) & Exists x. P(x)), the inner x shadows the outer.
	inner := ASTExists("x", ASTRel("P", []AST{ASTVar("x")}))
	outer := ASTForall("x", ASTAnd(ASTRel("P", []AST{ASTVar("x")}), inner))

	f := Translate(in, outer)
	outerVar := f.BoundVar()
	and := f.Child(0)
	outerOccurrence := and.Child(0).Terms()[0].VarHandle()
	innerExists := and.Child(1)
	innerVar := innerExists.BoundVar()
	innerOccurrence := innerExists.Child(0).Terms()[0].VarHandle()

	if outerOccurrence != outerVar {
		t.Fatalf("outer P(x) should reference the outer binder %v, got %v", outerVar, outerOccurrence)
	}
	if innerOccurrence != innerVar {
		t.Fatalf("inner P(x) should reference the inner binder %v, got %v", innerVar, innerOccurrence)
	}
	if outerVar == innerVar {
		t.Fatalf("shadowing quantifiers must allocate distinct variable handles, both got %v", outerVar)
	}
}

func TestTranslateRestoresOuterBindingAfterShadowExits(t *testing.T) {
	in := NewInterner()
	// Forall x. ((Exists x. P(x)) & P(x)); after the inner Exists closes,
	// the trailing P(x) must resolve back to the outer binder.
	inner := ASTExists("x", ASTRel("P", []AST{ASTVar("x")}))
	outer := ASTForall("x", ASTAnd(inner, ASTRel("P", []AST{ASTVar("x")})))

	f := Translate(in, outer)
	outerVar := f.BoundVar()
	and := f.Child(0)
	trailingOccurrence := and.Child(1).Terms()[0].VarHandle()
	if trailingOccurrence != outerVar {
		t.Fatalf("trailing P(x) after the shadow exits should reference the outer binder %v, got %v", outerVar, trailingOccurrence)
	}
}

func TestTranslateTrueFalseAndConnectives(t *testing.T) {
	in := NewInterner()
	a := ASTAnd(ASTTrue(), ASTOr(ASTFalse(), ASTNot(ASTTrue())))
	f := Translate(in, a)
	if f.Op() != OpAnd {
		t.Fatalf("top-level op should be And, got %v", f.Op())
	}
	if f.Child(0).Op() != OpTrue {
		t.Fatalf("left child should translate to True, got %v", f.Child(0).Op())
	}
	orNode := f.Child(1)
	if orNode.Op() != OpOr || orNode.Child(0).Op() != OpFalse {
		t.Fatalf("right child should be Or(False, Not(True)), got %v", orNode)
	}
	if orNode.Child(1).Op() != OpNot || orNode.Child(1).Child(0).Op() != OpTrue {
		t.Fatalf("second Or operand should be Not(True), got %v", orNode.Child(1))
	}
}
