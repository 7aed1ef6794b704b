package surface

import (
	"fmt"

	"github.com/gitrdm/folprover/internal/fol"
)

// Parser is a recursive-descent parser over one formula's token stream.
type Parser struct {
	lex *lexer
	tok token
}

// Parse parses src as a single formula and returns its AST. An error is
// returned on any lexical or syntactic problem, or on trailing input
// after a complete formula.
func Parse(src string) (fol.AST, error) {
	p := &Parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return fol.AST{}, err
	}
	f, err := p.parseIff()
	if err != nil {
		return fol.AST{}, err
	}
	if p.tok.kind != tokEOF {
		return fol.AST{}, fmt.Errorf("surface: unexpected trailing token %q at offset %d", p.tok.text, p.tok.pos)
	}
	return f, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *Parser) expect(k tokenKind, what string) error {
	if p.tok.kind != k {
		return fmt.Errorf("surface: expected %s at offset %d, got %q", what, p.tok.pos, p.tok.text)
	}
	return p.advance()
}

// parseIff : implies ( "<->" implies )*
func (p *Parser) parseIff() (fol.AST, error) {
	left, err := p.parseImplies()
	if err != nil {
		return fol.AST{}, err
	}
	for p.tok.kind == tokIff {
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return fol.AST{}, err
		}
		left = fol.ASTIff(left, right)
	}
	return left, nil
}

// parseImplies : or ( "->" implies )?  (right-associative)
func (p *Parser) parseImplies() (fol.AST, error) {
	left, err := p.parseOr()
	if err != nil {
		return fol.AST{}, err
	}
	if p.tok.kind == tokImplies {
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return fol.AST{}, err
		}
		return fol.ASTImp(left, right), nil
	}
	return left, nil
}

// parseOr : and ( "|" and )*
func (p *Parser) parseOr() (fol.AST, error) {
	left, err := p.parseAnd()
	if err != nil {
		return fol.AST{}, err
	}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return fol.AST{}, err
		}
		left = fol.ASTOr(left, right)
	}
	return left, nil
}

// parseAnd : unary ( "&" unary )*
func (p *Parser) parseAnd() (fol.AST, error) {
	left, err := p.parseUnary()
	if err != nil {
		return fol.AST{}, err
	}
	for p.tok.kind == tokAnd {
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return fol.AST{}, err
		}
		left = fol.ASTAnd(left, right)
	}
	return left, nil
}

// parseUnary : "~" unary | "forall" ident "." unary | "exists" ident "." unary | atom
func (p *Parser) parseUnary() (fol.AST, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		body, err := p.parseUnary()
		if err != nil {
			return fol.AST{}, err
		}
		return fol.ASTNot(body), nil
	case tokForall, tokExists:
		exists := p.tok.kind == tokExists
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		if p.tok.kind != tokIdent {
			return fol.AST{}, fmt.Errorf("surface: expected bound variable name at offset %d", p.tok.pos)
		}
		name := p.tok.text
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		if err := p.expect(tokDot, "'.'"); err != nil {
			return fol.AST{}, err
		}
		body, err := p.parseUnary()
		if err != nil {
			return fol.AST{}, err
		}
		if exists {
			return fol.ASTExists(name, body), nil
		}
		return fol.ASTForall(name, body), nil
	default:
		return p.parseAtom()
	}
}

// parseAtom : "true" | "false" | "(" formula ")" | ident [ "(" termlist ")" ]
func (p *Parser) parseAtom() (fol.AST, error) {
	switch p.tok.kind {
	case tokTrue:
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		return fol.ASTTrue(), nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		return fol.ASTFalse(), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		inner, err := p.parseIff()
		if err != nil {
			return fol.AST{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return fol.AST{}, err
		}
		return inner, nil
	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return fol.AST{}, err
		}
		if p.tok.kind != tokLParen {
			return fol.ASTRel(name, nil), nil
		}
		args, err := p.parseTermList()
		if err != nil {
			return fol.AST{}, err
		}
		return fol.ASTRel(name, args), nil
	}
	return fol.AST{}, fmt.Errorf("surface: unexpected token %q at offset %d", p.tok.text, p.tok.pos)
}

// parseTermList : "(" [ term ( "," term )* ] ")"
func (p *Parser) parseTermList() ([]fol.AST, error) {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var args []fol.AST
	if p.tok.kind != tokRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseTerm : ident [ "(" termlist ")" ]
func (p *Parser) parseTerm() (fol.AST, error) {
	if p.tok.kind != tokIdent {
		return fol.AST{}, fmt.Errorf("surface: expected term at offset %d, got %q", p.tok.pos, p.tok.text)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return fol.AST{}, err
	}
	if p.tok.kind != tokLParen {
		return fol.ASTVar(name), nil
	}
	args, err := p.parseTermList()
	if err != nil {
		return fol.AST{}, err
	}
	return fol.ASTFun(name, args), nil
}
