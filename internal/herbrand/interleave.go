package herbrand

import "github.com/gitrdm/folprover/internal/fol"

// stream is any cooperative, single-threaded lazy term sequence, the
// common interface TupleIterator-backed function constructors present
// to Interleave.
type stream interface {
	Next() (fol.Term, bool)
}

// Interleave fairly merges several term streams, advancing each by a
// number of elements proportional to its weight before moving to the
// next: a larger-arity constructor is given a proportionally larger
// time-slice per round before the cursor advances. Exhausted streams
// are dropped from the rotation.
type Interleave struct {
	entries   []*ileEntry
	cur       int
	remaining int
}

type ileEntry struct {
	src    stream
	weight int
}

// NewInterleave builds an Interleave over the given streams with the
// given weights (srcs[i] gets weights[i]); both slices must have equal
// length and every weight must be >= 1.
func NewInterleave(srcs []stream, weights []int) *Interleave {
	il := &Interleave{entries: make([]*ileEntry, len(srcs))}
	for i := range srcs {
		il.entries[i] = &ileEntry{src: srcs[i], weight: weights[i]}
	}
	if len(il.entries) > 0 {
		il.remaining = il.entries[0].weight
	}
	return il
}

// Next returns the next term in the fair-merge order, or ok=false once
// every underlying stream is exhausted.
func (il *Interleave) Next() (fol.Term, bool) {
	for {
		if len(il.entries) == 0 {
			return fol.Term{}, false
		}
		if il.remaining <= 0 {
			il.cur = (il.cur + 1) % len(il.entries)
			il.remaining = il.entries[il.cur].weight
			continue
		}
		e := il.entries[il.cur]
		t, ok := e.src.Next()
		if !ok {
			il.entries = append(il.entries[:il.cur:il.cur], il.entries[il.cur+1:]...)
			if len(il.entries) == 0 {
				return fol.Term{}, false
			}
			if il.cur >= len(il.entries) {
				il.cur = 0
			}
			il.remaining = il.entries[il.cur].weight
			continue
		}
		il.remaining--
		return t, true
	}
}
