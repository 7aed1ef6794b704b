package fol

// AST is the string-named formula tree produced by the external surface
// parser. Translate is the only core operation that consumes it.
type AST struct {
	kind  astKind
	name  string // variable/function/relation name, or quantifier binder
	args  []AST  // function/relation arguments, or the two operands of a binary op
	child *AST   // Not/Exists/Forall body
}

type astKind uint8

const (
	astTrue astKind = iota
	astFalse
	astVarTerm
	astFunTerm
	astRelAtom
	astNot
	astOr
	astAnd
	astImplies
	astIff
	astExists
	astForall
)

func ASTTrue() AST  { return AST{kind: astTrue} }
func ASTFalse() AST { return AST{kind: astFalse} }

// ASTVar is a reference to a (presumably variable-bound) name inside a
// term position.
func ASTVar(name string) AST { return AST{kind: astVarTerm, name: name} }

// ASTFun is a function application; args may be empty for a constant.
func ASTFun(name string, args []AST) AST {
	return AST{kind: astFunTerm, name: name, args: args}
}

// ASTRel is a relation application.
func ASTRel(name string, args []AST) AST {
	return AST{kind: astRelAtom, name: name, args: args}
}

func ASTNot(body AST) AST  { return AST{kind: astNot, child: &body} }
func ASTOr(a, b AST) AST   { return AST{kind: astOr, args: []AST{a, b}} }
func ASTAnd(a, b AST) AST  { return AST{kind: astAnd, args: []AST{a, b}} }
func ASTImp(a, b AST) AST  { return AST{kind: astImplies, args: []AST{a, b}} }
func ASTIff(a, b AST) AST  { return AST{kind: astIff, args: []AST{a, b}} }
func ASTExists(name string, body AST) AST {
	return AST{kind: astExists, name: name, child: &body}
}
func ASTForall(name string, body AST) AST {
	return AST{kind: astForall, name: name, child: &body}
}
