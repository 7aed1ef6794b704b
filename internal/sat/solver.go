// Package sat implements a backtracking DPLL satisfiability solver over
// the cnf package's clause model, with unit propagation, pure-literal
// elimination, and occurrence/length/rank-indexed state.
package sat

import "github.com/gitrdm/folprover/internal/cnf"

// Satisfiable reports whether f is satisfiable, by DPLL search: drain
// pure variables and unit clauses to a fixed point, then branch on the
// highest-activity variable, preferring the true-branch.
func Satisfiable(f *cnf.CNFFormula) bool {
	st := newState(f)
	return dpll(st)
}

// clauseID identifies a clause within one solver state's lifetime.
type clauseID int

type state struct {
	clauses map[clauseID]map[cnf.Literal]struct{}
	nextID  clauseID

	// varOccurs[v] holds the clause ids in which v occurs positively and
	// negatively.
	varOccurs map[cnf.PVar]*occurrence

	// lenToClause[k] is the set of clause ids currently of length k.
	// Presence of key 0 means an empty clause exists (UNSAT).
	lenToClause map[int]map[clauseID]struct{}

	// rank is kept as a slice ordered ascending by activity, scanned
	// from the tail for the highest-activity variable; activity updates
	// reposition an entry rather than rebuilding the whole structure.
	rank []rankEntry

	pureVars []cnf.PVar
}

type occurrence struct {
	pos map[clauseID]struct{}
	neg map[clauseID]struct{}
}

type rankEntry struct {
	v        cnf.PVar
	activity int
}

func newState(f *cnf.CNFFormula) *state {
	st := &state{
		clauses:     map[clauseID]map[cnf.Literal]struct{}{},
		varOccurs:   map[cnf.PVar]*occurrence{},
		lenToClause: map[int]map[clauseID]struct{}{},
	}
	for _, c := range f.Clauses {
		st.addClause(c.Literals())
	}
	st.rebuildRank()
	return st
}

func (st *state) addClause(lits []cnf.Literal) {
	id := st.nextID
	st.nextID++
	set := make(map[cnf.Literal]struct{}, len(lits))
	for _, l := range lits {
		set[l] = struct{}{}
	}
	st.clauses[id] = set
	st.bucketInsert(id, len(set))
	for l := range set {
		st.occFor(l.Var).add(l, id)
	}
}

func (o *occurrence) add(l cnf.Literal, id clauseID) {
	if l.Negated {
		o.neg[id] = struct{}{}
	} else {
		o.pos[id] = struct{}{}
	}
}

func (o *occurrence) remove(l cnf.Literal, id clauseID) {
	if l.Negated {
		delete(o.neg, id)
	} else {
		delete(o.pos, id)
	}
}

func (o *occurrence) activity() int { return len(o.pos) + len(o.neg) }

func (st *state) occFor(v cnf.PVar) *occurrence {
	o, ok := st.varOccurs[v]
	if !ok {
		o = &occurrence{pos: map[clauseID]struct{}{}, neg: map[clauseID]struct{}{}}
		st.varOccurs[v] = o
	}
	return o
}

func (st *state) bucketInsert(id clauseID, length int) {
	b, ok := st.lenToClause[length]
	if !ok {
		b = map[clauseID]struct{}{}
		st.lenToClause[length] = b
	}
	b[id] = struct{}{}
}

func (st *state) bucketRemove(id clauseID, length int) {
	if b, ok := st.lenToClause[length]; ok {
		delete(b, id)
		if len(b) == 0 {
			delete(st.lenToClause, length)
		}
	}
}

func (st *state) rebuildRank() {
	st.rank = st.rank[:0]
	for v, o := range st.varOccurs {
		st.rank = append(st.rank, rankEntry{v: v, activity: o.activity()})
	}
	st.sortRank()
	st.refreshPure()
}

func (st *state) sortRank() {
	for i := 1; i < len(st.rank); i++ {
		for j := i; j > 0 && st.rank[j].activity < st.rank[j-1].activity; j-- {
			st.rank[j], st.rank[j-1] = st.rank[j-1], st.rank[j]
		}
	}
}

func (st *state) refreshPure() {
	st.pureVars = st.pureVars[:0]
	for v, o := range st.varOccurs {
		if o.activity() == 0 {
			continue
		}
		if len(o.pos) == 0 || len(o.neg) == 0 {
			st.pureVars = append(st.pureVars, v)
		}
	}
}

// hasEmptyClause reports whether an empty clause (length 0) is present.
func (st *state) hasEmptyClause() bool {
	_, ok := st.lenToClause[0]
	return ok
}

// findUnit returns a clause id of length 1 and its sole literal, if one
// exists.
func (st *state) findUnit() (clauseID, cnf.Literal, bool) {
	b, ok := st.lenToClause[1]
	if !ok {
		return 0, cnf.Literal{}, false
	}
	for id := range b {
		for l := range st.clauses[id] {
			return id, l, true
		}
	}
	return 0, cnf.Literal{}, false
}

// removeClause deletes a clause from every index.
func (st *state) removeClause(id clauseID) {
	lits, ok := st.clauses[id]
	if !ok {
		return
	}
	st.bucketRemove(id, len(lits))
	for l := range lits {
		o := st.occFor(l.Var)
		o.remove(l, id)
		st.repriceVar(l.Var)
	}
	delete(st.clauses, id)
}

// dropLiteral removes literal l from clause id (l's negation was just
// falsified by unit propagation), moving the clause to a smaller length
// bucket. Returns the clause's new length; the clause is never deleted
// here, and callers check the returned length for 0.
func (st *state) dropLiteral(id clauseID, l cnf.Literal) int {
	lits := st.clauses[id]
	oldLen := len(lits)
	delete(lits, l)
	st.occFor(l.Var).remove(l, id)
	st.repriceVar(l.Var)
	st.bucketRemove(id, oldLen)
	st.bucketInsert(id, len(lits))
	return len(lits)
}

// repriceVar keeps rank and pureVars synchronized with v's occurrence
// counts after a clause deletion or shrink touched v. A variable with no
// remaining occurrences is dropped from every index; otherwise its rank
// entry is repositioned by its new activity, and it is pushed onto
// pureVars the moment it has occurrences of only one polarity.
func (st *state) repriceVar(v cnf.PVar) {
	o, ok := st.varOccurs[v]
	if !ok {
		return
	}
	activity := o.activity()
	if activity == 0 {
		delete(st.varOccurs, v)
		st.removeFromRank(v)
		st.removeFromPure(v)
		return
	}
	st.repositionRank(v, activity)
	if len(o.pos) == 0 || len(o.neg) == 0 {
		st.pushPureIfAbsent(v)
	}
}

// repositionRank removes v's existing rank entry, if any, and reinserts
// it at the position its new activity sorts into, keeping rank in
// ascending order.
func (st *state) repositionRank(v cnf.PVar, activity int) {
	st.removeFromRank(v)
	i := len(st.rank)
	for i > 0 && st.rank[i-1].activity > activity {
		i--
	}
	st.rank = append(st.rank, rankEntry{})
	copy(st.rank[i+1:], st.rank[i:])
	st.rank[i] = rankEntry{v: v, activity: activity}
}

func (st *state) removeFromPure(v cnf.PVar) {
	for i, pv := range st.pureVars {
		if pv == v {
			st.pureVars = append(st.pureVars[:i], st.pureVars[i+1:]...)
			return
		}
	}
}

func (st *state) pushPureIfAbsent(v cnf.PVar) {
	for _, pv := range st.pureVars {
		if pv == v {
			return
		}
	}
	st.pureVars = append(st.pureVars, v)
}

// assign commits literal l as true: every clause containing l is
// satisfied and removed; every clause containing ¬l has that literal
// dropped (possibly producing new unit clauses or an empty clause).
// Reports false if an empty clause results.
func (st *state) assign(l cnf.Literal) bool {
	o, ok := st.varOccurs[l.Var]
	if !ok {
		return true
	}
	var satisfied map[clauseID]struct{}
	var falsified map[clauseID]struct{}
	if l.Negated {
		satisfied, falsified = o.neg, o.pos
	} else {
		satisfied, falsified = o.pos, o.neg
	}
	for id := range copyIDs(satisfied) {
		st.removeClause(id)
	}
	ok2 := true
	for id := range copyIDs(falsified) {
		if _, stillThere := st.clauses[id]; !stillThere {
			continue
		}
		if st.dropLiteral(id, l.Negate()) == 0 {
			ok2 = false
		}
	}
	delete(st.varOccurs, l.Var)
	st.removeFromRank(l.Var)
	return ok2
}

func copyIDs(m map[clauseID]struct{}) map[clauseID]struct{} {
	cp := make(map[clauseID]struct{}, len(m))
	for id := range m {
		cp[id] = struct{}{}
	}
	return cp
}

func (st *state) removeFromRank(v cnf.PVar) {
	for i, e := range st.rank {
		if e.v == v {
			st.rank = append(st.rank[:i], st.rank[i+1:]...)
			break
		}
	}
}

// highestActivityVar returns the variable with the greatest activity
// (last in ascending rank order), or ok=false if no variables remain.
func (st *state) highestActivityVar() (cnf.PVar, bool) {
	if len(st.rank) == 0 {
		return 0, false
	}
	return st.rank[len(st.rank)-1].v, true
}

// clone produces an independent deep copy of the state, used for the
// true-branch before committing the false-branch in place.
func (st *state) clone() *state {
	cp := &state{
		clauses:     make(map[clauseID]map[cnf.Literal]struct{}, len(st.clauses)),
		varOccurs:   make(map[cnf.PVar]*occurrence, len(st.varOccurs)),
		lenToClause: make(map[int]map[clauseID]struct{}, len(st.lenToClause)),
		rank:        append([]rankEntry(nil), st.rank...),
		pureVars:    append([]cnf.PVar(nil), st.pureVars...),
		nextID:      st.nextID,
	}
	for id, lits := range st.clauses {
		cp.clauses[id] = copyLits(lits)
	}
	for v, o := range st.varOccurs {
		cp.varOccurs[v] = &occurrence{pos: copyIDs(o.pos), neg: copyIDs(o.neg)}
	}
	for k, b := range st.lenToClause {
		cp.lenToClause[k] = copyIDs(b)
	}
	return cp
}

func copyLits(m map[cnf.Literal]struct{}) map[cnf.Literal]struct{} {
	cp := make(map[cnf.Literal]struct{}, len(m))
	for l := range m {
		cp[l] = struct{}{}
	}
	return cp
}

// dpll is the recursive DPLL search: pure-literal and unit propagation
// to a fixed point, then branch on the highest-activity variable.
func dpll(st *state) bool {
	if st.hasEmptyClause() {
		return false
	}
	for {
		progressed := false

		for len(st.pureVars) > 0 {
			v := st.pureVars[len(st.pureVars)-1]
			st.pureVars = st.pureVars[:len(st.pureVars)-1]
			o, ok := st.varOccurs[v]
			if !ok {
				continue
			}
			// Assign the variable its one polarity: if it occurs only
			// positively, assigning it true removes those clauses; if
			// only negatively, assigning it false does.
			var lit cnf.Literal
			if len(o.neg) == 0 {
				lit = cnf.Pos(v)
			} else {
				lit = cnf.Neg(v)
			}
			st.assign(lit)
			progressed = true
		}
		if st.hasEmptyClause() {
			return false
		}

		if id, lit, ok := st.findUnit(); ok {
			_ = id
			if !st.assign(lit) {
				return false
			}
			progressed = true
		}
		if st.hasEmptyClause() {
			return false
		}

		if !progressed {
			break
		}
	}

	if len(st.clauses) == 0 {
		return true
	}

	v, ok := st.highestActivityVar()
	if !ok {
		return true
	}

	trueBranch := st.clone()
	if trueBranch.assign(cnf.Pos(v)) && dpll(trueBranch) {
		return true
	}

	if !st.assign(cnf.Neg(v)) {
		return false
	}
	return dpll(st)
}
