package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseAssembly parses `assembly ["flags"] { yul-statement* }` (spec.md
// §4.3). The optional dialect/flags string literal is rare and kept as a
// raw token index rather than a node, matching parsePragma's treatment of
// its own free-form trailing text.
func (p *parser) parseAssembly() ast.Index {
	kw := p.expectOrFail(token.KwAssembly)
	var flags ast.Index
	if p.at(token.String) {
		flags = p.advance()
	}
	body := p.parseYulBlock()
	return p.tree.AddNode(ast.Node{Tag: ast.AssemblyDecl, MainToken: kw, Lhs: flags, Rhs: body})
}

// parseYulBlock parses `{ yul-statement* }`, folding the child count into
// YulBlockTwo/YulBlock the same way parseBlock folds ordinary statements.
func (p *parser) parseYulBlock() ast.Index {
	lbrace := p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() && !p.halted {
		p.recoverStatement(func() {
			if n := p.parseYulStatement(); n != 0 {
				p.tree.ScratchPush(n)
			}
		})
	}
	if !p.halted {
		p.expectOrFail(token.RBrace)
	}

	children := p.tree.ScratchSlice(mark)
	switch len(children) {
	case 0:
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.YulBlockTwo, MainToken: lbrace})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.YulBlockTwo, MainToken: lbrace, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.YulBlockTwo, MainToken: lbrace, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.YulBlock, MainToken: lbrace, Lhs: r.Start, Rhs: r.End})
	}
}

// parseYulStatement dispatches on the current token (Yul's statement
// grammar is a small, closed set: blocks, if/for/switch, let, leave/
// break/continue, function definitions, and assignment-or-call
// expression statements).
func (p *parser) parseYulStatement() ast.Index {
	switch {
	case p.at(token.LBrace):
		return p.parseYulBlock()
	case p.at(token.KwIf):
		return p.parseYulIf()
	case p.at(token.KwFor):
		return p.parseYulFor()
	case p.at(token.KwSwitch):
		return p.parseYulSwitch()
	case p.at(token.KwLet):
		return p.parseYulVarDecl()
	case p.at(token.KwFunction):
		return p.parseYulFnDecl()
	case p.at(token.KwLeave):
		kw := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.YulLeave, MainToken: kw})
	case p.at(token.KwBreak):
		kw := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.YulBreak, MainToken: kw})
	case p.at(token.KwContinue):
		kw := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.YulContinue, MainToken: kw})
	default:
		return p.parseYulAssignOrCallStatement()
	}
}

func (p *parser) parseYulIf() ast.Index {
	kw := p.expectOrFail(token.KwIf)
	cond := p.parseYulExpr()
	body := p.parseYulBlock()
	return p.tree.AddNode(ast.Node{Tag: ast.YulIf, MainToken: kw, Lhs: cond, Rhs: body})
}

// parseYulFor parses `for init cond post body`, where init/post are
// blocks (not statements) per Yul grammar.
func (p *parser) parseYulFor() ast.Index {
	kw := p.expectOrFail(token.KwFor)
	init := p.parseYulBlock()
	cond := p.parseYulExpr()
	post := p.parseYulBlock()
	body := p.parseYulBlock()
	rec := ast.YulFor{Init: init, Condition: cond, Post: post}
	return p.tree.AddNode(ast.Node{Tag: ast.YulFor, MainToken: kw, Lhs: rec.Encode(p.tree), Rhs: body})
}

// parseYulSwitch parses `switch expr (case literal block)* [default
// block]`.
func (p *parser) parseYulSwitch() ast.Index {
	kw := p.expectOrFail(token.KwSwitch)
	expr := p.parseYulExpr()
	mark := p.tree.ScratchMark()
	for p.at(token.KwCase) || p.at(token.KwDefault) {
		if p.at(token.KwCase) {
			caseKw := p.advance()
			lit := p.parseYulLiteral()
			block := p.parseYulBlock()
			p.tree.ScratchPush(p.tree.AddNode(ast.Node{Tag: ast.YulSwitchCase, MainToken: caseKw, Lhs: lit, Rhs: block}))
			continue
		}
		defaultKw := p.advance()
		block := p.parseYulBlock()
		p.tree.ScratchPush(p.tree.AddNode(ast.Node{Tag: ast.YulSwitchDefault, MainToken: defaultKw, Rhs: block}))
	}
	if len(p.tree.ScratchSlice(mark)) == 0 {
		p.addError(ast.ErrExpectedYulStatement, token.Invalid)
	}
	r := p.tree.ListFromScratch(mark)
	rec := ast.YulSwitch{Expr: expr, CasesStart: r.Start, CasesEnd: r.End}
	return p.tree.AddNode(ast.Node{Tag: ast.YulSwitch, MainToken: kw, Lhs: rec.Encode(p.tree)})
}

// parseYulVarDecl parses `let x [, y]* [:= expr]`.
func (p *parser) parseYulVarDecl() ast.Index {
	kw := p.expectOrFail(token.KwLet)
	first := p.expectOrFail(token.Identifier)
	if !p.eat(token.Comma) {
		var value ast.Index
		if p.eat(token.ColonEqual) {
			value = p.parseYulExpr()
		}
		return p.tree.AddNode(ast.Node{Tag: ast.YulVarDeclOne, MainToken: first, Rhs: value})
	}
	mark := p.tree.ScratchMark()
	p.tree.ScratchPush(first)
	for {
		p.tree.ScratchPush(p.expectOrFail(token.Identifier))
		if !p.eat(token.Comma) {
			break
		}
	}
	r := p.tree.ListFromScratch(mark)
	base := p.tree.AddExtraData(r.Start, r.End)
	var value ast.Index
	if p.eat(token.ColonEqual) {
		value = p.parseYulExpr()
	}
	return p.tree.AddNode(ast.Node{Tag: ast.YulVarDeclMulti, MainToken: kw, Lhs: base, Rhs: value})
}

// parseYulFnDecl parses `function name(params) [-> returns] { block }`,
// folding into YulFnProtoSimple (0/1 param, 0/1 return) or YulFnProto
// (extra_data YulFullFnProto) otherwise.
func (p *parser) parseYulFnDecl() ast.Index {
	kw := p.expectOrFail(token.KwFunction)
	name := p.expectOrFail(token.Identifier)
	p.expectOrFail(token.LParen)
	params := p.parseYulIdentifierList(token.RParen)
	p.expectOrFail(token.RParen)

	var returns []uint32
	if p.at(token.Minus) && p.peek(1).Tag == token.Greater {
		p.advance()
		p.advance()
		returns = p.parseYulIdentifierList(token.EOF)
	}

	var proto ast.Index
	if len(params) <= 1 && len(returns) <= 1 {
		var sole, ret uint32
		if len(params) == 1 {
			sole = params[0]
		}
		if len(returns) == 1 {
			ret = returns[0]
		}
		proto = p.tree.AddNode(ast.Node{Tag: ast.YulFnProtoSimple, MainToken: name, Lhs: sole, Rhs: ret})
	} else {
		paramsRange := p.tree.ListToSpan(toIndexSlice(params))
		returnsRange := p.tree.ListToSpan(toIndexSlice(returns))
		rec := ast.YulFullFnProto{
			Identifier:   name,
			ParamsStart:  paramsRange.Start,
			ParamsEnd:    paramsRange.End,
			ReturnsStart: returnsRange.Start,
			ReturnsEnd:   returnsRange.End,
		}
		proto = p.tree.AddNode(ast.Node{Tag: ast.YulFnProto, Lhs: rec.Encode(p.tree)})
	}

	body := p.parseYulBlock()
	return p.tree.AddNode(ast.Node{Tag: ast.YulFnDecl, MainToken: kw, Lhs: proto, Rhs: body})
}

// parseYulIdentifierList parses a comma-separated identifier list without
// consuming stop (the caller's closing delimiter, or the unconditional
// single-identifier return-list form when stop is token.EOF, which never
// matches and so is only bounded by the identifier-or-comma loop itself).
func (p *parser) parseYulIdentifierList(stop token.Tag) []uint32 {
	var out []uint32
	if stop != token.EOF && p.at(stop) {
		return out
	}
	for {
		if !p.at(token.Identifier) {
			break
		}
		out = append(out, p.advance())
		if !p.eat(token.Comma) {
			break
		}
	}
	return out
}

func toIndexSlice(tokens []uint32) []ast.Index {
	out := make([]ast.Index, len(tokens))
	copy(out, tokens)
	return out
}

// parseYulAssignOrCallStatement handles the remaining Yul statement
// forms: a bare call, or one/more assignment targets followed by `:=`.
func (p *parser) parseYulAssignOrCallStatement() ast.Index {
	first := p.parseYulPath()
	if p.at(token.Comma) || p.at(token.ColonEqual) {
		mark := p.tree.ScratchMark()
		p.tree.ScratchPush(first)
		for p.eat(token.Comma) {
			p.tree.ScratchPush(p.parseYulPath())
		}
		targets := p.tree.ScratchSlice(mark)
		if !p.at(token.ColonEqual) {
			p.addError(ast.ErrExpectedYulAssignment, token.Invalid)
			panic(parsingError{})
		}
		if len(targets) == 1 {
			target := targets[0]
			p.tree.ScratchTruncate(mark)
			p.advance()
			value := p.parseYulExpr()
			return p.tree.AddNode(ast.Node{Tag: ast.YulAssignOne, Lhs: target, Rhs: value})
		}
		r := p.tree.ListFromScratch(mark)
		base := p.tree.AddExtraData(r.Start, r.End)
		p.advance()
		value := p.parseYulExpr()
		return p.tree.AddNode(ast.Node{Tag: ast.YulAssignMulti, Lhs: base, Rhs: value})
	}
	if fn := p.tree.Node(first); fn.Tag == ast.YulCallOne || fn.Tag == ast.YulCall {
		return first
	}
	// Outside an assignment, the only valid Yul statement built from a
	// bare path is a call — a lone identifier or dotted path by itself
	// has no side effect.
	p.addError(ast.ErrExpectedYulFunctionCall, token.Invalid)
	panic(parsingError{})
}

// parseYulExpr parses one Yul expression: an identifier/path, a literal,
// or a function call — Yul has no operators, so every compound
// expression is built from nested calls.
func (p *parser) parseYulExpr() ast.Index {
	switch {
	case p.at(token.Number):
		return p.parseYulLiteral()
	case p.at(token.String):
		return p.parseYulLiteral()
	case p.at(token.Identifier):
		return p.parseYulPath()
	default:
		p.addError(ast.ErrExpectedYulExpression, token.Invalid)
		panic(parsingError{})
	}
}

func (p *parser) parseYulLiteral() ast.Index {
	switch {
	case p.at(token.Number):
		tok := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.YulLiteralNumber, MainToken: tok})
	case p.at(token.String):
		tok := p.advance()
		return p.tree.AddNode(ast.Node{Tag: ast.YulLiteralString, MainToken: tok})
	default:
		p.addError(ast.ErrExpectedYulLiteral, token.Invalid)
		panic(parsingError{})
	}
}

// parseYulPath parses a bare identifier, a dotted path (`a.b`, used to
// reference a Solidity-level variable's storage slot/offset), or — if
// immediately followed by `(` — a function call, folding call arity into
// YulCallOne/YulCall the same way the expression parser folds ordinary
// calls.
func (p *parser) parseYulPath() ast.Index {
	first := p.expectOrFail(token.Identifier)
	if p.at(token.LParen) {
		return p.parseYulCall(first)
	}
	node := p.tree.AddNode(ast.Node{Tag: ast.YulIdentifier, MainToken: first})
	for p.at(token.Period) {
		p.advance()
		name := p.expectOrFail(token.Identifier)
		node = p.tree.AddNode(ast.Node{Tag: ast.YulPath, MainToken: first, Lhs: node, Rhs: name})
	}
	return node
}

func (p *parser) parseYulCall(name uint32) ast.Index {
	p.expectOrFail(token.LParen)
	mark := p.tree.ScratchMark()
	for !p.at(token.RParen) && !p.atEOF() {
		p.tree.ScratchPush(p.parseYulExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	args := append([]ast.Index(nil), p.tree.ScratchSlice(mark)...)
	p.tree.ScratchTruncate(mark)
	p.expectOrFail(token.RParen)

	switch len(args) {
	case 0:
		return p.tree.AddNode(ast.Node{Tag: ast.YulCallOne, MainToken: name})
	case 1:
		return p.tree.AddNode(ast.Node{Tag: ast.YulCallOne, MainToken: name, Rhs: args[0]})
	default:
		r := p.tree.ListToSpan(args)
		base := p.tree.AddExtraData(r.Start, r.End)
		return p.tree.AddNode(ast.Node{Tag: ast.YulCall, MainToken: name, Lhs: base})
	}
}
