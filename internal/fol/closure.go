package fol

// Closure computes the universal closure of an NNF formula: its free
// variables (DFS order, Exists/Forall bindings subtracted) are each
// prefixed with a Forall. The order of the resulting universal block is
// not semantically observable, so free-variable DFS order is used
// directly.
func Closure(f Formula) Formula {
	frees := f.FreeVars()
	for i := len(frees) - 1; i >= 0; i-- {
		f = ForallF(frees[i], f)
	}
	return f
}
