// Package herbrand implements the lazy, non-repeating, deterministic
// enumeration of ground terms over a (possibly recursive) function
// signature: a TupleIterator that enumerates k-tuples over a growing
// base stream in index-sum order, an Interleave combinator that fairly
// merges several such streams, and the Generator that ties them
// together over a shared, lazily-appended term store.
package herbrand

import "github.com/gitrdm/folprover/internal/fol"

// Source is a growing, possibly-infinite sequence of terms that a
// TupleIterator reads by index. Get may trigger production of further
// elements via a reentrant pull; Len reports how many elements have
// been produced so far and whether the source is now known to be finite
// and fully drained.
type Source interface {
	Get(i int) (fol.Term, bool)
	Len() (length int, exhausted bool)
}

// TupleIterator enumerates all k-tuples over src in non-decreasing order
// of the sum of their indices, each sum level emitted in lexicographic
// order of the tuple. It is restartable only by construction. Arity 0
// emits the single empty tuple exactly once.
type TupleIterator struct {
	src Source
	k   int

	sum   int
	queue [][]int // pending index-tuples for the current sum, front-first

	emittedNullary bool // k == 0 bookkeeping

	capped    bool
	cap       int
	exhausted bool
}

// NewTupleIterator constructs a TupleIterator of arity k over src.
func NewTupleIterator(src Source, k int) *TupleIterator {
	ti := &TupleIterator{src: src, k: k}
	if k > 0 {
		ti.queue = compositions(0, k)
	}
	return ti
}

// Next produces the next tuple (as a slice of length k) in index-sum
// order, or ok=false once the iterator is exhausted (only possible when
// src is finite and every valid tuple has been emitted).
func (ti *TupleIterator) Next() (tuple []fol.Term, ok bool) {
	if ti.exhausted {
		return nil, false
	}
	if ti.k == 0 {
		if ti.emittedNullary {
			ti.exhausted = true
			return nil, false
		}
		ti.emittedNullary = true
		return []fol.Term{}, true
	}
	for {
		if ti.capped && ti.sum > ti.cap {
			ti.exhausted = true
			return nil, false
		}
		if len(ti.queue) == 0 {
			ti.sum++
			if ti.capped && ti.sum > ti.cap {
				ti.exhausted = true
				return nil, false
			}
			ti.queue = compositions(ti.sum, ti.k)
			continue
		}
		idxTuple := ti.queue[0]
		ti.queue = ti.queue[1:]

		terms := make([]fol.Term, ti.k)
		valid := true
		for i, idx := range idxTuple {
			t, got := ti.src.Get(idx)
			if !got {
				if n, exhausted := ti.src.Len(); exhausted {
					newCap := (n - 1) * ti.k
					if !ti.capped || newCap < ti.cap {
						ti.capped = true
						ti.cap = newCap
					}
				}
				valid = false
				break
			}
			terms[i] = t
		}
		if !valid {
			continue
		}
		return terms, true
	}
}

// compositions enumerates every k-tuple of non-negative integers summing
// to s, in lexicographic order, using an explicit frame stack rather
// than recursion.
func compositions(s, k int) [][]int {
	type frame struct {
		pos       int
		remaining int
		vals      []int
	}
	out := make([][]int, 0, s+1)
	stack := []frame{{pos: 0, remaining: s, vals: nil}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.pos == k-1 {
			full := make([]int, k)
			copy(full, fr.vals)
			full[k-1] = fr.remaining
			out = append(out, full)
			continue
		}
		// Push children for v = remaining..0 so that the stack (LIFO)
		// pops v = 0 first, producing ascending (lexicographic) order.
		for v := fr.remaining; v >= 0; v-- {
			vals := make([]int, len(fr.vals)+1)
			copy(vals, fr.vals)
			vals[len(fr.vals)] = v
			stack = append(stack, frame{pos: fr.pos + 1, remaining: fr.remaining - v, vals: vals})
		}
	}
	return out
}
