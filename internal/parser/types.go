package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// startsTypeExpr reports whether tag can begin a type expression:
// elementary types, `mapping`, `function`, or an identifier (the start of
// an identifier-path type reference).
func startsTypeExpr(tag token.Tag) bool {
	if tag.IsElementaryType() {
		return true
	}
	switch tag {
	case token.KwMapping, token.KwFunction, token.Identifier:
		return true
	}
	return false
}

// parseTypeExprSpeculative parses a type expression if the current token
// can plausibly start one, returning 0 without consuming anything
// otherwise. Used by the statement-level declaration/expression
// disambiguation, where the caller restores p.pos on a 0 result.
func (p *parser) parseTypeExprSpeculative() ast.Index {
	if !startsTypeExpr(p.current().Tag) {
		return 0
	}
	return p.parseTypeExpr()
}

// parseTypeExpr parses one type expression (spec.md §4.3): an elementary
// type, a mapping, an identifier path, or a function type — each
// optionally suffixed by one or more `[size?]` array dimensions.
func (p *parser) parseTypeExpr() ast.Index {
	var base ast.Index
	switch {
	case p.current().Tag.IsElementaryType():
		tok := p.advance()
		base = p.tree.AddNode(ast.Node{Tag: ast.ElementaryType, MainToken: tok})
	case p.at(token.KwMapping):
		base = p.parseMappingType()
	case p.at(token.KwFunction):
		base = p.parseFunctionTypeExpr()
	case p.at(token.Identifier):
		base = p.parseIdentifierTypePath()
	default:
		p.addError(ast.ErrExpectedTypeExpr, token.Invalid)
		panic(parsingError{})
	}
	for p.at(token.LBracket) {
		lbracket := p.advance()
		var size ast.Index
		if !p.at(token.RBracket) {
			size = p.parseExpr()
		}
		p.expectOrFail(token.RBracket)
		base = p.tree.AddNode(ast.Node{Tag: ast.ArrayType, MainToken: lbracket, Lhs: base, Rhs: size})
	}
	return base
}

// parseIdentifierTypePath parses `a.b.c` in type position, left-leaning.
func (p *parser) parseIdentifierTypePath() ast.Index {
	tok := p.expectOrFail(token.Identifier)
	node := p.tree.AddNode(ast.Node{Tag: ast.IdentifierTypePath, MainToken: tok})
	for p.at(token.Period) {
		p.advance()
		name := p.expectOrFail(token.Identifier)
		node = p.tree.AddNode(ast.Node{Tag: ast.IdentifierTypePath, MainToken: tok, Lhs: node, Rhs: name})
	}
	return node
}

// parseMappingType parses `mapping(K [name] => V [name])`, where V may
// itself be a nested mapping.
func (p *parser) parseMappingType() ast.Index {
	kw := p.expectOrFail(token.KwMapping)
	p.expectOrFail(token.LParen)
	keyType := p.parseTypeExpr()
	if tag := p.tree.Node(keyType).Tag; tag != ast.ElementaryType && tag != ast.IdentifierTypePath {
		p.addError(ast.ErrExpectedElementaryOrIdentifierPath, token.Invalid)
	}
	var keyName uint32
	if p.at(token.Identifier) {
		keyName = p.advance()
	}
	p.expectOrFail(token.FatArrow)
	valueType := p.parseTypeExpr()
	var valueName uint32
	if p.at(token.Identifier) {
		valueName = p.advance()
	}
	p.expectOrFail(token.RParen)
	rec := ast.MappingType{KeyType: keyType, KeyName: keyName, ValueType: valueType, ValueName: valueName}
	return p.tree.AddNode(ast.Node{Tag: ast.MappingType, MainToken: kw, Lhs: rec.Encode(p.tree)})
}

// parseFunctionTypeExpr parses `function(params) [specifiers] [returns
// (params)]` in type position, folding into the two-variant function-type
// tag family the same way parseFunctionProtoTail does for declarations.
func (p *parser) parseFunctionTypeExpr() ast.Index {
	kw := p.expectOrFail(token.KwFunction)
	p.expectOrFail(token.LParen)
	params := p.parseParamList(ast.ErrExpectedVariableDecl)
	p.expectOrFail(token.RParen)
	specifiers := p.parseSpecifiers()

	var returns []ast.Index
	if p.eat(token.KwReturns) {
		p.expectOrFail(token.LParen)
		returns = p.parseParamList(ast.ErrExpectedReturnType)
		p.expectOrFail(token.RParen)
	}

	if len(returns) == 0 && len(params) <= 1 {
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		specBase := ast.Index(0)
		if specifiers != 0 {
			specBase = specifiers
		}
		return p.tree.AddNode(ast.Node{Tag: ast.FunctionTypeSimple, MainToken: kw, Lhs: sole, Rhs: specBase})
	}
	paramsRange := p.tree.ListToSpan(params)
	returnsRange := p.tree.ListToSpan(returns)
	rec := ast.FunctionType{
		Specifiers:   specifiers,
		ParamsStart:  paramsRange.Start,
		ParamsEnd:    paramsRange.End,
		ReturnsStart: returnsRange.Start,
		ReturnsEnd:   returnsRange.End,
	}
	return p.tree.AddNode(ast.Node{Tag: ast.FunctionType, MainToken: kw, Lhs: rec.Encode(p.tree)})
}

// parseIdentifierPathPrimary parses a bare `a.b.c` expression path (used
// both as an ordinary expression primary and for inheritance specifiers),
// producing Identifier/FieldAccess nodes rather than IdentifierTypePath —
// the expression and type grammars share surface syntax but not node
// tags, since downstream consumers dispatch differently on each.
func (p *parser) parseIdentifierPathPrimary() ast.Index {
	tok := p.expectOrFail(token.Identifier)
	node := p.tree.AddNode(ast.Node{Tag: ast.Identifier, MainToken: tok})
	for p.at(token.Period) {
		p.advance()
		name := p.expectOrFail(token.Identifier)
		node = p.tree.AddNode(ast.Node{Tag: ast.FieldAccess, Lhs: node, Rhs: name})
	}
	return node
}
