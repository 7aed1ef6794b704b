package prover

import (
	"testing"

	"github.com/gitrdm/folprover/internal/fol"
	"github.com/gitrdm/folprover/internal/proverlog"
)

func opts() Options {
	return Options{Logger: proverlog.Discard()}
}

func TestIsTautologyOnExcludedMiddle(t *testing.T) {
	in := fol.NewInterner()
	r := in.InternRel("P", 0)
	p := fol.RelAtom(r, nil)
	f := fol.Or(p, fol.Not(p))

	if !IsTautology(in, f, opts()) {
		t.Fatalf("p | ~p should be a tautology")
	}
}

func TestIsTautologyOnContradiction(t *testing.T) {
	in := fol.NewInterner()
	r := in.InternRel("P", 0)
	p := fol.RelAtom(r, nil)
	f := fol.And(p, fol.Not(p))

	if IsTautology(in, f, opts()) {
		t.Fatalf("p & ~p should not be a tautology")
	}
}

func TestIsTautologyRefutesAfterHerbrandExhaustionOnAFiniteUniverse(t *testing.T) {
	in := fol.NewInterner()
	in.InternFun("c", 0) // no function symbols of higher arity: a finite universe
	x := in.FreshVar()
	r := in.InternRel("P", 1)
	// Forall x. P(x) is not a tautology for an uninterpreted P.
	f := fol.ForallF(x, fol.RelAtom(r, []fol.Term{fol.TermVar(x)}))

	if IsTautology(in, f, opts()) {
		t.Fatalf("Forall x. P(x) should not be provable for an uninterpreted predicate")
	}
}

func TestIsTautologyOnExistentialWitnessedByTheSameVariable(t *testing.T) {
	in := fol.NewInterner()
	x := in.FreshVar()
	r := in.InternRel("P", 1)
	// Forall x. Exists y. (P(x) -> P(y)): valid by taking y=x, since
	// P(x) -> P(x) holds unconditionally.
	y := in.FreshVar()
	f := fol.ForallF(x, fol.ExistsF(y, fol.ImpliesF(
		fol.RelAtom(r, []fol.Term{fol.TermVar(x)}),
		fol.RelAtom(r, []fol.Term{fol.TermVar(y)}),
	)))

	if !IsTautology(in, f, opts()) {
		t.Fatalf("Forall x. Exists y. (P(x) -> P(y)) should be a tautology")
	}
}

func TestIsTautologyRequiresMultipleHerbrandInstantiations(t *testing.T) {
	in := fol.NewInterner()
	a := in.InternFun("a", 0)
	b := in.InternFun("b", 0)
	x := in.FreshVar()
	r := in.InternRel("P", 1)

	// (Forall x. P(x)) -> (P(a) & P(b)): valid by universal instantiation,
	// but over a two-constant domain neither single ground instance of
	// Forall x. P(x) alone refutes the negation; both x=a and x=b must be
	// accumulated together before the conjunction becomes unsatisfiable.
	universal := fol.ForallF(x, fol.RelAtom(r, []fol.Term{fol.TermVar(x)}))
	conclusion := fol.And(
		fol.RelAtom(r, []fol.Term{fol.TermFun(a, nil)}),
		fol.RelAtom(r, []fol.Term{fol.TermFun(b, nil)}),
	)
	f := fol.ImpliesF(universal, conclusion)

	if !IsTautology(in, f, opts()) {
		t.Fatalf("(Forall x. P(x)) -> (P(a) & P(b)) should be a tautology")
	}
}

func TestIsTautologyRespectsCustomBoundFactor(t *testing.T) {
	in := fol.NewInterner()
	in.InternFun("f", 1) // a single unary function: an infinite Herbrand universe
	x := in.FreshVar()
	r := in.InternRel("P", 1)
	// Exists x. P(x) negates to Forall x. ~P(x) directly (no
	// Skolemization needed), leaving a genuine universal over an
	// infinite universe with no base case to ever force a contradiction:
	// a very small bound should make the search give up rather than
	// loop forever.
	f := fol.ExistsF(x, fol.RelAtom(r, []fol.Term{fol.TermVar(x)}))

	result := IsTautology(in, f, Options{Logger: proverlog.Discard(), BoundFactor: 1})
	if result {
		t.Fatalf("Exists x. P(x) for an uninterpreted predicate should never be provable")
	}
}
