// Package fol implements the first-order-logic data model and the
// normalization pipeline (NNF, universal closure, Skolemization, prenex)
// that turns a parsed formula into a Skolem sentence ready for Herbrand
// instantiation.
package fol

import "sync/atomic"

// Var, Fun, and Rel are opaque dense handles minted by independent
// monotonic allocators. Equality and hashing are identity on the
// underlying integer.
type (
	Var int64
	Fun int64
	Rel int64
)

// ConstFun is the synthetic nullary function symbol the Herbrand
// generator falls back to when the signature contains no constant.
// Handle 0 is never allocated to a user-named or Skolem function (both
// draw from the one nextFun counter, which is seeded to 1 and incremented
// before each use), so it is reserved for this fallback
// without ever being entered into an Interner's own funArity table.
const ConstFun Fun = 0

// Interner mints fresh Var/Fun/Rel handles and interns function and
// relation names globally (no scoping). Variables are not interned by
// name: translate.go allocates a fresh handle per binding occurrence and
// tracks the name-to-handle mapping itself, so that shadowing produces
// distinct handles (capture-avoiding alpha-renaming).
type Interner struct {
	nextVar atomic.Int64
	nextFun atomic.Int64
	nextRel atomic.Int64

	funNames map[string]Fun
	relNames map[string]Rel
	funArity map[Fun]int
	relArity map[Rel]int
}

// NewInterner creates an empty Interner. Var and Rel handles start at 1
// and Fun handles at 2, leaving ConstFun (handle 0) unused by any real
// symbol so the Herbrand
// generator can fall back to it without colliding; Signature only
// reports symbols this Interner actually interned or allocated, so that
// fallback is added per-generator, not baked into every interner.
func NewInterner() *Interner {
	in := &Interner{
		funNames: make(map[string]Fun),
		relNames: make(map[string]Rel),
		funArity: make(map[Fun]int),
		relArity: make(map[Rel]int),
	}
	in.nextFun.Store(1)
	return in
}

// FreshVar allocates a new, never-before-seen variable handle.
func (in *Interner) FreshVar() Var {
	return Var(in.nextVar.Add(1))
}

// FreshFun allocates a new, never-before-seen function handle of the
// given arity. Used for Skolem function introduction, where each
// existential quantifier needs a globally unique function symbol.
func (in *Interner) FreshFun(arity int) Fun {
	f := Fun(in.nextFun.Add(1))
	in.funArity[f] = arity
	return f
}

// InternFun interns a named function symbol, returning the same handle for
// repeated calls with the same name.
func (in *Interner) InternFun(name string, arity int) Fun {
	if f, ok := in.funNames[name]; ok {
		return f
	}
	f := Fun(in.nextFun.Add(1))
	in.funNames[name] = f
	in.funArity[f] = arity
	return f
}

// InternRel interns a named relation symbol, returning the same handle for
// repeated calls with the same name.
func (in *Interner) InternRel(name string, arity int) Rel {
	if r, ok := in.relNames[name]; ok {
		return r
	}
	r := Rel(in.nextRel.Add(1))
	in.relNames[name] = r
	in.relArity[r] = arity
	return r
}

// FunArity returns the arity of a previously interned or allocated
// function symbol.
func (in *Interner) FunArity(f Fun) int {
	return in.funArity[f]
}

// RelArity returns the arity of a previously interned relation symbol.
func (in *Interner) RelArity(r Rel) int {
	return in.relArity[r]
}

// Signature returns the set of (function, arity) pairs interned or
// allocated so far, in ascending handle order. This is the input the
// Herbrand generator needs to build the Herbrand universe.
func (in *Interner) Signature() []FunSig {
	sig := make([]FunSig, 0, len(in.funArity))
	for f, a := range in.funArity {
		sig = append(sig, FunSig{Fun: f, Arity: a})
	}
	// Deterministic order: by handle value, ascending.
	for i := 1; i < len(sig); i++ {
		for j := i; j > 0 && sig[j].Fun < sig[j-1].Fun; j-- {
			sig[j], sig[j-1] = sig[j-1], sig[j]
		}
	}
	return sig
}

// FunSig pairs a function handle with its arity.
type FunSig struct {
	Fun   Fun
	Arity int
}
