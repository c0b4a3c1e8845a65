package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseExpr parses a full expression: the ternary conditional wrapping the
// binary-operator precedence climb.
func (p *parser) parseExpr() ast.Index {
	cond := p.parseBinary(0)
	if !p.at(token.Question) {
		return cond
	}
	q := p.advance()
	thenExpr := p.parseExpr()
	p.expectOrFail(token.Colon)
	elseExpr := p.parseExpr()
	rec := ast.If{Then: thenExpr, Else: elseExpr}
	return p.tree.AddNode(ast.Node{Tag: ast.Conditional, MainToken: q, Lhs: cond, Rhs: rec.Encode(p.tree)})
}

// parseBinary is the Pratt precedence climber (spec.md §4.3's table). A
// non-associative (comparison) operator applied twice at the same
// precedence level within one climb is a chained-comparison diagnostic,
// not a parse failure — the parser keeps building a tree left-to-right so
// it "nevertheless produces some AST and continues" per spec.md's example
// scenario.
func (p *parser) parseBinary(minPrec int8) ast.Index {
	lhs := p.parseUnary()
	sawNoneAt := noPrec
	for {
		op, ok := precedenceOf(p.current().Tag)
		if !ok || op.prec < minPrec {
			break
		}
		if op.assoc == assocNone && op.prec == sawNoneAt {
			p.addError(ast.ErrChainedComparisonOperators, token.Invalid)
		}
		opTok := p.advance()
		nextMin := op.prec + 1
		if op.assoc == assocRight {
			nextMin = op.prec
		}
		rhs := p.parseBinary(nextMin)
		lhs = p.tree.AddNode(ast.Node{Tag: op.tag, MainToken: opTok, Lhs: lhs, Rhs: rhs})
		if op.assoc == assocNone {
			sawNoneAt = op.prec
		} else {
			sawNoneAt = noPrec
		}
	}
	return lhs
}

// parseUnary parses the prefix-operator family (spec.md §4.3: `!`, `-`,
// `--`, `++`, `delete`, `~`), recursing for a chain like `!!x`, then falls
// through to a suffixed primary expression. `new` and `delete` are not
// reserved words in Solidity's own grammar (a user can still use them as
// ordinary identifiers elsewhere), so they are recognised contextually by
// text rather than via a dedicated token tag.
func (p *parser) parseUnary() ast.Index {
	switch {
	case p.at(token.Bang):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.UnaryNot, MainToken: op, Rhs: p.parseUnary()})
	case p.at(token.Minus):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.UnaryMinus, MainToken: op, Rhs: p.parseUnary()})
	case p.at(token.Tilde):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.UnaryBitNot, MainToken: op, Rhs: p.parseUnary()})
	case p.at(token.PlusPlus):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.PreIncrement, MainToken: op, Rhs: p.parseUnary()})
	case p.at(token.MinusMinus):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.PreDecrement, MainToken: op, Rhs: p.parseUnary()})
	case p.atIdentifierText("delete"):
		op := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.UnaryDelete, MainToken: op, Rhs: p.parseUnary()})
	default:
		return p.parseSuffixed(p.parsePrimary())
	}
}

// parseSuffixed applies the suffix loop (spec.md §4.3) to base: subscript/
// range access, field access, post-increment/decrement, call argument
// lists, and struct-initializer suffixes.
func (p *parser) parseSuffixed(base ast.Index) ast.Index {
	for {
		switch {
		case p.at(token.Period):
			p.advance()
			name := p.expectOrFail(token.Identifier)
			base = p.tree.AddNode(ast.Node{Tag: ast.FieldAccess, Lhs: base, Rhs: name})
		case p.at(token.PlusPlus):
			op := p.advance()
			base = p.tree.AddNode(ast.Node{Tag: ast.PostIncrement, MainToken: op, Lhs: base})
		case p.at(token.MinusMinus):
			op := p.advance()
			base = p.tree.AddNode(ast.Node{Tag: ast.PostDecrement, MainToken: op, Lhs: base})
		case p.at(token.LBracket):
			base = p.parseIndexSuffix(base)
		case p.at(token.LParen):
			base = p.parseCallSuffix(base)
		case p.at(token.LBrace):
			base = p.parseStructInitSuffix(base)
		default:
			return base
		}
	}
}

// parseIndexSuffix parses `[expr?]` or `[start?:end?]`.
func (p *parser) parseIndexSuffix(base ast.Index) ast.Index {
	p.expectOrFail(token.LBracket)
	if p.at(token.RBracket) {
		p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.IndexAccess, Lhs: base})
	}
	var start ast.Index
	if !p.at(token.Colon) {
		start = p.parseExpr()
	}
	if p.eat(token.Colon) {
		var end ast.Index
		if !p.at(token.RBracket) {
			end = p.parseExpr()
		}
		p.expectOrFail(token.RBracket)
		rec := ast.IndexRange{Start: start, End: end}
		return p.tree.AddNode(ast.Node{Tag: ast.IndexRangeAccess, Lhs: base, Rhs: rec.Encode(p.tree)})
	}
	p.expectOrFail(token.RBracket)
	return p.tree.AddNode(ast.Node{Tag: ast.IndexAccess, Lhs: base, Rhs: start})
}

// parseCallSuffix parses `(args)`, folding into CallTwo (0/1 args),
// CallStructArgs (sole struct-literal arg), or Call (many args).
func (p *parser) parseCallSuffix(base ast.Index) ast.Index {
	p.expectOrFail(token.LParen)
	args := p.parseCallArgsTail()
	switch len(args) {
	case 0:
		return p.tree.AddNode(ast.Node{Tag: ast.CallTwo, Lhs: base})
	case 1:
		tag := ast.CallTwo
		if p.tree.Node(args[0]).Tag == ast.StructInitTwo || p.tree.Node(args[0]).Tag == ast.StructInit {
			tag = ast.CallStructArgs
		}
		return p.tree.AddNode(ast.Node{Tag: tag, Lhs: base, Rhs: args[0]})
	default:
		r := p.tree.ListToSpan(args)
		pairBase := p.tree.AddExtraData(r.Start, r.End)
		return p.tree.AddNode(ast.Node{Tag: ast.Call, Lhs: base, Rhs: pairBase})
	}
}

// parseCallArgs parses a `(args)` list starting with the current token
// already known to be `(`, consuming the whole thing including the
// closing `)`. Shared by the call suffix and modifier-invocation parsing.
func (p *parser) parseCallArgs() []ast.Index {
	p.expectOrFail(token.LParen)
	return p.parseCallArgsTail()
}

// parseCallArgsTail parses the comma-separated argument list up to and
// including the closing `)`, assuming the opening `(` was already
// consumed by the caller.
func (p *parser) parseCallArgsTail() []ast.Index {
	mark := p.tree.ScratchMark()
	for !p.at(token.RParen) && !p.atEOF() {
		if p.at(token.LBrace) {
			p.tree.ScratchPush(p.parseStructInitLiteral())
		} else {
			p.tree.ScratchPush(p.parseExpr())
		}
		if p.eat(token.Comma) {
			if p.at(token.RParen) {
				p.addError(ast.ErrTrailingComma, token.Invalid)
			}
			continue
		}
		break
	}
	out := append([]ast.Index(nil), p.tree.ScratchSlice(mark)...)
	p.tree.ScratchTruncate(mark)
	p.expectOrFail(token.RParen)
	return out
}

// parseStructInitSuffix parses the `{ ident: expr, ... }` suffix directly
// applied to a primary (as opposed to appearing as a lone call argument,
// which parseCallArgsTail handles separately).
func (p *parser) parseStructInitSuffix(base ast.Index) ast.Index {
	lit := p.parseStructInitLiteral()
	return p.tree.AddNode(ast.Node{Tag: ast.CallStructArgs, Lhs: base, Rhs: lit})
}

// parseStructInitLiteral parses `{ ident: expr, ident: expr, ... }`.
func (p *parser) parseStructInitLiteral() ast.Index {
	lbrace := p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() {
		name := p.expectOrFail(token.Identifier)
		p.expectOrFail(token.Colon)
		value := p.parseExpr()
		p.tree.ScratchPush(p.tree.AddNode(ast.Node{Tag: ast.StructInitField, MainToken: name, Lhs: value}))
		if !p.eat(token.Comma) {
			break
		}
	}
	children := p.tree.ScratchSlice(mark)
	var result ast.Index
	switch len(children) {
	case 0:
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.StructInitTwo, MainToken: lbrace})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.StructInitTwo, MainToken: lbrace, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.StructInitTwo, MainToken: lbrace, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.StructInit, MainToken: lbrace, Lhs: r.Start, Rhs: r.End})
	}
	p.expectOrFail(token.RBrace)
	return result
}

// parsePrimary parses one primary expression (spec.md §4.3): `new T`,
// `type(T)`, `payable(expr)`, literals, tuple/array initializers, or a
// type expression used in cast/call position (an elementary type or
// identifier path immediately suffixed by a call).
func (p *parser) parsePrimary() ast.Index {
	switch {
	case p.atIdentifierText("new"):
		kw := p.advance()
		target := p.parseTypeExpr()
		if !p.at(token.LParen) {
			p.addError(ast.ErrExpectedSuffix, token.Invalid)
		}
		return p.tree.AddNode(ast.Node{Tag: ast.NewExpr, MainToken: kw, Rhs: target})
	case p.at(token.KwType):
		kw := p.advance()
		p.expectOrFail(token.LParen)
		target := p.parseTypeExpr()
		p.expectOrFail(token.RParen)
		return p.tree.AddNode(ast.Node{Tag: ast.TypeExpr, MainToken: kw, Rhs: target})
	case p.at(token.KwPayable):
		kw := p.advance()
		p.expectOrFail(token.LParen)
		inner := p.parseExpr()
		p.expectOrFail(token.RParen)
		return p.tree.AddNode(ast.Node{Tag: ast.PayableCall, MainToken: kw, Rhs: inner})
	case p.atIdentifierText("true"), p.atIdentifierText("false"):
		tok := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.BoolLiteral, MainToken: tok})
	case p.at(token.Number):
		return p.parseNumberLiteral()
	case p.at(token.String):
		tok := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.StringLiteral, MainToken: tok})
	case p.at(token.LParen):
		return p.parseParenOrTuple()
	case p.at(token.LBracket):
		return p.parseArrayLiteral()
	case p.current().Tag.IsElementaryType():
		tok := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.ElementaryType, MainToken: tok})
	case p.at(token.Identifier):
		return p.parseIdentifierPathPrimary()
	default:
		p.addError(ast.ErrExpectedPrefixExpr, token.Invalid)
		panic(parsingError{})
	}
}

func (p *parser) parseNumberLiteral() ast.Index {
	tok := p.advance()
	node := p.tree.AddNode(ast.Node{Tag: ast.NumberLiteral, MainToken: tok})
	if isUnitSuffix(p.current().Tag) {
		unit := p.advance()
		node = p.tree.AddNode(ast.Node{Tag: ast.NumberLiteralUnit, MainToken: unit, Lhs: node})
	}
	return node
}

func isUnitSuffix(tag token.Tag) bool {
	switch tag {
	case token.UnitWei, token.UnitGwei, token.UnitEther,
		token.UnitSeconds, token.UnitMinutes, token.UnitHours, token.UnitDays, token.UnitWeeks, token.UnitYears:
		return true
	}
	return false
}

// parseParenOrTuple parses a parenthesized expression. A single element
// with no comma is ordinary grouping and is returned unwrapped; one or
// more commas make it a tuple-initializer, which may have empty slots
// (`(, a, )`) represented by sentinel 0.
func (p *parser) parseParenOrTuple() ast.Index {
	lparen := p.expectOrFail(token.LParen)
	if p.at(token.RParen) {
		p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.TupleInitTwo, MainToken: lparen})
	}

	mark := p.tree.ScratchMark()
	first := p.parseTupleSlot()
	if p.at(token.RParen) {
		p.advance()
		if first == 0 {
			return p.tree.AddNode(ast.Node{Tag: ast.TupleInitTwo, MainToken: lparen})
		}
		p.tree.ScratchTruncate(mark)
		return first // ordinary grouping, no comma seen
	}

	p.tree.ScratchPush(first)
	for p.eat(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		p.tree.ScratchPush(p.parseTupleSlot())
	}
	children := p.tree.ScratchSlice(mark)
	var result ast.Index
	switch len(children) {
	case 0:
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.TupleInitTwo, MainToken: lparen})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.TupleInitTwo, MainToken: lparen, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.TupleInitTwo, MainToken: lparen, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.TupleInit, MainToken: lparen, Lhs: r.Start, Rhs: r.End})
	}
	p.expectOrFail(token.RParen)
	return result
}

// parseTupleSlot parses one tuple element, which may be omitted (an empty
// slot between commas, sentinel 0) in a destructuring-assignment target
// like `(, b, ) = f()`.
func (p *parser) parseTupleSlot() ast.Index {
	if p.at(token.Comma) || p.at(token.RParen) {
		return 0
	}
	return p.parseExpr()
}

// parseArrayLiteral parses `[e1, e2, ...]`.
func (p *parser) parseArrayLiteral() ast.Index {
	lbracket := p.expectOrFail(token.LBracket)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBracket) && !p.atEOF() {
		p.tree.ScratchPush(p.parseExpr())
		if p.eat(token.Comma) {
			if p.at(token.RBracket) {
				p.addError(ast.ErrTrailingComma, token.Invalid)
			}
			continue
		}
		break
	}
	children := p.tree.ScratchSlice(mark)
	var result ast.Index
	switch len(children) {
	case 0:
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.ArrayInitTwo, MainToken: lbracket})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.ArrayInitTwo, MainToken: lbracket, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.ArrayInitTwo, MainToken: lbracket, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		result = p.tree.AddNode(ast.Node{Tag: ast.ArrayInit, MainToken: lbracket, Lhs: r.Start, Rhs: r.End})
	}
	p.expectOrFail(token.RBracket)
	return result
}
