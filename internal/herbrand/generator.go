package herbrand

import "github.com/gitrdm/folprover/internal/fol"

// Generator produces the Herbrand universe over a function signature: a
// lazy, deterministic, non-repeating enumeration of ground terms.
// Constants form a prefix; higher-arity terms are then generated by
// per-function TupleIterators, combined by Interleave, and read from a
// single shared, lazily-appended store so that later higher-arity terms
// can themselves feed arguments to still more higher-arity terms.
type Generator struct {
	store []fol.Term

	constants []fol.Fun
	constIdx  int

	higher     []fol.FunSig
	inter      *Interleave
	interBuilt bool
	exhausted  bool
}

// NewGenerator builds a Generator over sig. If sig contains no arity-0
// symbol, the synthetic constant fol.ConstFun is added first so the
// Herbrand universe is never empty.
func NewGenerator(sig []fol.FunSig) *Generator {
	g := &Generator{}
	haveConstant := false
	for _, s := range sig {
		if s.Arity == 0 {
			haveConstant = true
			g.constants = append(g.constants, s.Fun)
		} else {
			g.higher = append(g.higher, s)
		}
	}
	if !haveConstant {
		g.constants = append([]fol.Fun{fol.ConstFun}, g.constants...)
	}
	return g
}

// Next produces the next ground term of the enumeration, or ok=false
// once the Herbrand universe is finite and fully drained (only possible
// when the signature has no higher-arity function symbol).
func (g *Generator) Next() (fol.Term, bool) {
	if !g.advance() {
		return fol.Term{}, false
	}
	return g.store[len(g.store)-1], true
}

// advance produces exactly one more term and appends it to the shared
// store, or reports exhaustion.
func (g *Generator) advance() bool {
	if g.exhausted {
		return false
	}
	if g.constIdx < len(g.constants) {
		c := g.constants[g.constIdx]
		g.constIdx++
		g.store = append(g.store, fol.TermFun(c, nil))
		return true
	}
	if len(g.higher) == 0 {
		g.exhausted = true
		return false
	}
	if !g.interBuilt {
		g.buildInterleave()
	}
	t, ok := g.inter.Next()
	if !ok {
		g.exhausted = true
		return false
	}
	g.store = append(g.store, t)
	return true
}

func (g *Generator) buildInterleave() {
	src := storeSource{g: g}
	srcs := make([]stream, len(g.higher))
	weights := make([]int, len(g.higher))
	for i, fs := range g.higher {
		srcs[i] = &funcStream{f: fs.Fun, ti: NewTupleIterator(src, fs.Arity)}
		weights[i] = fs.Arity * fs.Arity
	}
	g.inter = NewInterleave(srcs, weights)
	g.interBuilt = true
}

// funcStream wraps a TupleIterator for one function symbol, applying
// the symbol to each produced argument tuple.
type funcStream struct {
	f  fol.Fun
	ti *TupleIterator
}

func (fs *funcStream) Next() (fol.Term, bool) {
	args, ok := fs.ti.Next()
	if !ok {
		return fol.Term{}, false
	}
	return fol.TermFun(fs.f, args), true
}

// storeSource is the Source view TupleIterators read from: the
// Generator's own growing store, pulled reentrantly via advance when an
// index has not yet been produced.
type storeSource struct {
	g *Generator
}

func (s storeSource) Get(i int) (fol.Term, bool) {
	for i >= len(s.g.store) {
		if !s.g.advance() {
			return fol.Term{}, false
		}
	}
	return s.g.store[i], true
}

func (s storeSource) Len() (int, bool) {
	return len(s.g.store), s.g.exhausted
}

// Get and Len let a Generator itself serve directly as the Source for a
// higher-level TupleIterator(generator, n), the universal-instantiation
// tuple stream the grounding encoder reads from.
func (g *Generator) Get(i int) (fol.Term, bool) { return storeSource{g: g}.Get(i) }
func (g *Generator) Len() (int, bool)           { return storeSource{g: g}.Len() }
