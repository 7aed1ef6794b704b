package fol

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// SkolemSentence is the result of running a formula through the full
// normalization pipeline: a universal prefix Vars and a quantifier-free
// NNF Matrix, i.e. the sentence (Forall Vars. Matrix).
type SkolemSentence struct {
	Vars   []Var
	Matrix Formula
}

// ToSkolemSentence runs the full normalization pipeline on f (NNF,
// universal closure, Skolemization, prenex), producing a sentence of
// the form Forall x1...xn. phi with phi quantifier-free and in NNF. The
// prover driver calls this on the negated input formula.
func ToSkolemSentence(in *Interner, f Formula) SkolemSentence {
	nnf := NNF(in, f)
	sentence := Closure(nnf)
	skolemized := Skolemize(in, sentence)
	vars, matrix := Prenex(skolemized)
	result := SkolemSentence{Vars: vars, Matrix: matrix}
	checkSkolemSentenceInvariants(result)
	return result
}

// checkSkolemSentenceInvariants verifies the postconditions ToSkolemSentence
// promises its caller. Violating any of them means a normalization pass has
// a bug, so every violation found is collected before panicking rather than
// stopping at the first one.
func checkSkolemSentenceInvariants(s SkolemSentence) {
	var errs *multierror.Error
	if !IsQuantifierFree(s.Matrix) {
		errs = multierror.Append(errs, fmt.Errorf("matrix still contains a quantifier after Prenex"))
	}
	if !IsNNF(s.Matrix) {
		errs = multierror.Append(errs, fmt.Errorf("matrix is not in negation normal form"))
	}
	if len(s.Matrix.FreeVars()) > 0 {
		for _, v := range s.Matrix.FreeVars() {
			bound := false
			for _, pv := range s.Vars {
				if pv == v {
					bound = true
					break
				}
			}
			if !bound {
				errs = multierror.Append(errs, fmt.Errorf("matrix references variable %v that is not among the universal prefix", v))
			}
		}
	}
	if errs.ErrorOrNil() != nil {
		panic("fol: ToSkolemSentence violated its own postconditions: " + errs.Error())
	}
}

// IsNNF reports whether f contains no Implies/Iff and every Not wraps a
// Rel atom, the closure property NNF's output is expected to satisfy.
func IsNNF(f Formula) bool {
	switch f.op {
	case OpTrue, OpFalse, OpRel:
		return true
	case OpImplies, OpIff:
		return false
	case OpNot:
		return f.children[0].op == OpRel
	case OpOr, OpAnd:
		return IsNNF(f.children[0]) && IsNNF(f.children[1])
	case OpExists, OpForall:
		return IsNNF(f.children[0])
	}
	return false
}

// IsSentence reports whether f has no free variables.
func IsSentence(f Formula) bool {
	return len(f.FreeVars()) == 0
}

// IsQuantifierFree reports whether f contains no Exists/Forall node.
func IsQuantifierFree(f Formula) bool {
	switch f.op {
	case OpTrue, OpFalse, OpRel:
		return true
	case OpNot:
		return IsQuantifierFree(f.children[0])
	case OpOr, OpAnd, OpImplies, OpIff:
		return IsQuantifierFree(f.children[0]) && IsQuantifierFree(f.children[1])
	case OpExists, OpForall:
		return false
	}
	return false
}
