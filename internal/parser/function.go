package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseFreeFunction parses a top-level `function` declaration (a file-level
// utility function, as opposed to one nested in a contract/interface/
// library). Grammar is identical to a contract-member function.
func (p *parser) parseFreeFunction() ast.Index {
	return p.parseFunctionMember()
}

// parseFunctionMember parses `function [Identifier](params) specifiers
// [returns (params)] (';' | block)`. A missing identifier is reported and
// the proto is still parsed, with no name recorded.
func (p *parser) parseFunctionMember() ast.Index {
	kw := p.expectOrFail(token.KwFunction)
	name := uint32(0)
	if p.at(token.Identifier) {
		name = p.advance()
	} else {
		p.addError(ast.ErrExpectedToken, token.Identifier)
	}
	proto := p.parseFunctionProtoTail(kw, name)
	return p.parseDeclTail(proto, ast.FunctionDecl)
}

// parseFunctionProtoTail parses the `(params) specifiers [returns
// (params)]` common tail shared by function, fallback and receive
// declarations, and folds the result into one of
// the four arity-specialized proto tags (spec.md §4.3).
func (p *parser) parseFunctionProtoTail(mainToken, name uint32) ast.Index {
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

	switch {
	case len(returns) == 0 && len(params) <= 1 && specifiers == 0:
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		return p.tree.AddNode(ast.Node{Tag: ast.FunctionProtoSimple, MainToken: mainToken, Lhs: sole, Rhs: name})
	case len(returns) == 0 && len(params) <= 1:
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		rec := ast.FnProtoOne{Param: sole, Specifiers: specifiers, Identifier: name}
		return p.tree.AddNode(ast.Node{Tag: ast.FunctionProtoOne, MainToken: mainToken, Lhs: rec.Encode(p.tree)})
	case len(returns) == 0 && specifiers == 0:
		r := p.tree.ListToSpan(params)
		return p.tree.AddNode(ast.Node{Tag: ast.FunctionProtoMulti, MainToken: mainToken, Lhs: r.Start, Rhs: r.End})
	default:
		paramsRange := p.tree.ListToSpan(params)
		returnsRange := p.tree.ListToSpan(returns)
		rec := ast.FnProto{
			Specifiers:   specifiers,
			Identifier:   name,
			ParamsStart:  paramsRange.Start,
			ParamsEnd:    paramsRange.End,
			ReturnsStart: returnsRange.Start,
			ReturnsEnd:   returnsRange.End,
		}
		return p.tree.AddNode(ast.Node{Tag: ast.FunctionProto, MainToken: mainToken, Lhs: rec.Encode(p.tree)})
	}
}

// parseDeclTail consumes either a `;` (declaration-only) or a `{ ... }`
// body, wrapping proto in declTag. Shared by function, fallback, receive
// and modifier productions.
func (p *parser) parseDeclTail(proto ast.Index, declTag ast.Tag) ast.Index {
	if p.eat(token.Semicolon) {
		return p.tree.AddNode(ast.Node{Tag: declTag, Lhs: proto})
	}
	if !p.at(token.LBrace) {
		p.addError(ast.ErrExpectedSemicolonOrLBrace, token.Invalid)
	}
	body := p.parseBlock()
	return p.tree.AddNode(ast.Node{Tag: declTag, Lhs: proto, Rhs: body})
}

// parseConstructor parses `constructor(params) specifiers { body }`.
func (p *parser) parseConstructor() ast.Index {
	kw := p.expectOrFail(token.KwConstructor)
	p.expectOrFail(token.LParen)
	params := p.parseParamList(ast.ErrExpectedVariableDecl)
	p.expectOrFail(token.RParen)
	specifiers := p.parseSpecifiers()
	r := p.tree.ListToSpan(params)
	rec := ast.FnProto{Specifiers: specifiers, ParamsStart: r.Start, ParamsEnd: r.End}
	proto := p.tree.AddNode(ast.Node{Tag: ast.ConstructorProto, MainToken: kw, Lhs: rec.Encode(p.tree)})
	body := p.parseBlock()
	return p.tree.AddNode(ast.Node{Tag: ast.ConstructorDecl, Lhs: proto, Rhs: body})
}

// parseFallback parses `fallback(params) specifiers [returns (params)]
// (';' | { body })`.
func (p *parser) parseFallback() ast.Index {
	kw := p.expectOrFail(token.KwFallback)
	proto := p.parseFunctionProtoTail(kw, 0)
	return p.parseDeclTail(proto, ast.FallbackDecl)
}

// parseReceive parses `receive() specifiers (';' | { body })`.
func (p *parser) parseReceive() ast.Index {
	kw := p.expectOrFail(token.KwReceive)
	proto := p.parseFunctionProtoTail(kw, 0)
	return p.parseDeclTail(proto, ast.ReceiveDecl)
}

// parseModifier parses `modifier Identifier[(params)] specifiers (';' |
// { body })`. Modifiers never have a returns list.
func (p *parser) parseModifier() ast.Index {
	kw := p.expectOrFail(token.KwModifier)
	name := p.expectOrFail(token.Identifier)

	var params []ast.Index
	if p.eat(token.LParen) {
		params = p.parseParamList(ast.ErrExpectedVariableDecl)
		p.expectOrFail(token.RParen)
	}
	specifiers := p.parseSpecifiers()

	var proto ast.Index
	switch {
	case len(params) <= 1 && specifiers == 0:
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		proto = p.tree.AddNode(ast.Node{Tag: ast.ModifierProtoSimple, MainToken: kw, Lhs: sole, Rhs: name})
	case len(params) <= 1:
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		rec := ast.FnProtoOne{Param: sole, Specifiers: specifiers, Identifier: name}
		proto = p.tree.AddNode(ast.Node{Tag: ast.ModifierProtoOne, MainToken: kw, Lhs: rec.Encode(p.tree)})
	default:
		r := p.tree.ListToSpan(params)
		rec := ast.FnProto{Specifiers: specifiers, Identifier: name, ParamsStart: r.Start, ParamsEnd: r.End}
		proto = p.tree.AddNode(ast.Node{Tag: ast.ModifierProto, MainToken: kw, Lhs: rec.Encode(p.tree)})
	}
	return p.parseDeclTail(proto, ast.ModifierDecl)
}
