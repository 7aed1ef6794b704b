// Package prover drives the refutation procedure: negate the input
// formula, normalize it to a Skolem sentence, enumerate ground
// instances over its Herbrand universe, and probe growing CNF
// accumulations with the DPLL solver until either an instantiation
// prefix is found unsatisfiable (the original formula is a tautology)
// or the Herbrand universe is exhausted without one (it is not).
package prover

import (
	"github.com/hashicorp/go-hclog"

	"github.com/gitrdm/folprover/internal/cnf"
	"github.com/gitrdm/folprover/internal/encode"
	"github.com/gitrdm/folprover/internal/fol"
	"github.com/gitrdm/folprover/internal/herbrand"
	"github.com/gitrdm/folprover/internal/sat"
)

// DefaultBoundFactor caps the search: once a checked prefix exceeds
// DefaultBoundFactor times the number of universally quantified
// variables in the negated sentence, the procedure gives up rather than
// probe forever against an infinite Herbrand universe, and reports the
// formula as not proven a tautology.
const DefaultBoundFactor = 1000

// firstPrefixSize and prefixGrowthFactor implement the doubling-by-three
// probing schedule: checkpoints fall at prefix sizes 2, 6, 18, 54, ...
const (
	firstPrefixSize    = 2
	prefixGrowthFactor = 3
)

// Options configures a single IsTautology run.
type Options struct {
	// BoundFactor overrides DefaultBoundFactor; zero means use the
	// default.
	BoundFactor int
	Logger      hclog.Logger
}

// IsTautology reports whether f is a first-order tautology, by showing
// its negation is Herbrand-unsatisfiable up to the configured bound.
//
// The negation is normalized to a Skolem sentence Forall vars. matrix;
// each successive ground instantiation of matrix over the Herbrand
// universe is Tseitin-encoded and folded into one monotonically growing
// CNF formula. The accumulated formula is checked for satisfiability at
// checkpoints (prefix size 2, 6, 18, ...): an unsatisfiable checkpoint
// proves the negation unsatisfiable, and f is a tautology. If the
// Herbrand universe is exhausted between checkpoints, one final check
// runs against whatever was accumulated; if the universe was already
// fully covered at the last checkpoint, nothing changed and f is
// reported non-tautologous without rechecking.
func IsTautology(in *fol.Interner, f fol.Formula, opts Options) bool {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	boundFactor := opts.BoundFactor
	if boundFactor == 0 {
		boundFactor = DefaultBoundFactor
	}

	sentence := fol.ToSkolemSentence(in, fol.Not(f))
	vars, matrix := sentence.Vars, sentence.Matrix
	n := len(vars)

	atoms := encode.NewAtomTable()
	accumulated := &cnf.CNFFormula{}

	generator := herbrand.NewGenerator(in.Signature())
	tuples := herbrand.NewTupleIterator(generator, n)

	prefixSize := 0
	nextCheckpoint := firstPrefixSize
	lastChecked := firstPrefixSize

	for {
		tuple, ok := tuples.Next()
		if !ok {
			break
		}
		prop := encode.Ground(matrix, vars, tuple, atoms)
		addClauses(accumulated, encode.Tseitin(prop, atoms))
		prefixSize++

		if prefixSize != nextCheckpoint {
			continue
		}
		logger.Debug("probing", "prefix_size", prefixSize, "clauses", len(accumulated.Clauses))
		if !sat.Satisfiable(accumulated) {
			return true
		}
		if n > 0 && prefixSize/n > boundFactor {
			logger.Debug("giving up: prefix/n exceeded bound", "prefix_size", prefixSize, "n", n, "bound", boundFactor)
			return false
		}
		nextCheckpoint *= prefixGrowthFactor
		lastChecked = prefixSize
	}

	if prefixSize == lastChecked {
		logger.Debug("herbrand universe exhausted exactly at last checkpoint")
		return false
	}
	logger.Debug("final probe after herbrand exhaustion", "prefix_size", prefixSize)
	return !sat.Satisfiable(accumulated)
}

func addClauses(acc *cnf.CNFFormula, delta *cnf.CNFFormula) {
	acc.Clauses = append(acc.Clauses, delta.Clauses...)
}
