package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseBlock parses `{ stmt* }`, folding the child count into the
// arity-specialized block tags (spec.md §3.2, §4.3: block_two / block).
func (p *parser) parseBlock() ast.Index {
	lbrace := p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() && !p.halted {
		p.skipUnattachedDocComments()
		if p.at(token.RBrace) || p.atEOF() {
			break
		}
		p.recoverStatement(func() {
			if n := p.parseStatement(); n != 0 {
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
		return p.tree.AddNode(ast.Node{Tag: ast.BlockTwo, MainToken: lbrace})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.BlockTwo, MainToken: lbrace, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.BlockTwo, MainToken: lbrace, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.Block, MainToken: lbrace, Lhs: r.Start, Rhs: r.End})
	}
}

// parseStatement dispatches on the current token (spec.md §4.3's
// statement dispatch table).
func (p *parser) parseStatement() ast.Index {
	switch {
	case p.at(token.KwIf):
		return p.parseIfStatement()
	case p.at(token.KwFor):
		return p.parseForStatement()
	case p.at(token.KwWhile):
		return p.parseWhileStatement()
	case p.at(token.KwDo):
		return p.parseDoWhileStatement()
	case p.at(token.KwTry):
		return p.parseTryStatement()
	case p.at(token.KwEmit):
		return p.parseEmitStatement()
	case p.at(token.KwReturn):
		return p.parseReturnStatement()
	case p.at(token.KwContinue):
		kw := p.advance()
		p.expectOrFail(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.ContinueStatement, MainToken: kw})
	case p.at(token.KwBreak):
		kw := p.advance()
		p.expectOrFail(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.BreakStatement, MainToken: kw})
	case p.at(token.KwThrow):
		kw := p.advance()
		p.expectOrFail(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.ThrowStatement, MainToken: kw})
	case p.at(token.KwUnchecked):
		kw := p.advance()
		body := p.parseBlock()
		return p.tree.AddNode(ast.Node{Tag: ast.UncheckedBlock, MainToken: kw, Rhs: body})
	case p.at(token.KwAssembly):
		return p.parseAssembly()
	case p.at(token.LBrace):
		return p.parseBlock()
	case p.atIdentifierText("revert"):
		return p.parseRevertStatement()
	case startsTypeExpr(p.current().Tag), p.at(token.LParen):
		return p.parseVarDeclOrExprStatement()
	default:
		return p.parseExprOrAssignStatement()
	}
}

// parseIfStatement parses `if (cond) then [else else-branch]`.
func (p *parser) parseIfStatement() ast.Index {
	kw := p.expectOrFail(token.KwIf)
	p.expectOrFail(token.LParen)
	cond := p.parseExpr()
	p.expectOrFail(token.RParen)
	then := p.parseStatement()
	if !p.eat(token.KwElse) {
		return p.tree.AddNode(ast.Node{Tag: ast.IfSimple, MainToken: kw, Lhs: cond, Rhs: then})
	}
	elseBranch := p.parseStatement()
	rec := ast.If{Then: then, Else: elseBranch}
	return p.tree.AddNode(ast.Node{Tag: ast.IfElse, MainToken: kw, Lhs: cond, Rhs: rec.Encode(p.tree)})
}

// parseForStatement parses `for (init; cond; post) body`, where init may
// be a variable declaration, an expression statement, or empty, and cond/
// post may be empty.
func (p *parser) parseForStatement() ast.Index {
	kw := p.expectOrFail(token.KwFor)
	p.expectOrFail(token.LParen)

	var init ast.Index
	if !p.at(token.Semicolon) {
		init = p.parseVarDeclOrExprStatement()
	} else {
		p.advance()
	}

	var cond ast.Index
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expectOrFail(token.Semicolon)

	var post ast.Index
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expectOrFail(token.RParen)

	body := p.parseStatement()
	rec := ast.For{ConditionOne: init, ConditionTwo: cond, ConditionThree: post}
	return p.tree.AddNode(ast.Node{Tag: ast.ForStatement, MainToken: kw, Lhs: rec.Encode(p.tree), Rhs: body})
}

func (p *parser) parseWhileStatement() ast.Index {
	kw := p.expectOrFail(token.KwWhile)
	p.expectOrFail(token.LParen)
	cond := p.parseExpr()
	p.expectOrFail(token.RParen)
	body := p.parseStatement()
	return p.tree.AddNode(ast.Node{Tag: ast.WhileStatement, MainToken: kw, Lhs: cond, Rhs: body})
}

func (p *parser) parseDoWhileStatement() ast.Index {
	kw := p.expectOrFail(token.KwDo)
	body := p.parseStatement()
	p.expectOrFail(token.KwWhile)
	p.expectOrFail(token.LParen)
	cond := p.parseExpr()
	p.expectOrFail(token.RParen)
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.DoWhileStatement, MainToken: kw, Lhs: body, Rhs: cond})
}

// parseTryStatement parses `try expr [returns (params)] { block }
// (catch ...)+`.
func (p *parser) parseTryStatement() ast.Index {
	kw := p.expectOrFail(token.KwTry)
	expr := p.parseExpr()

	var returns ast.Index
	if p.eat(token.KwReturns) {
		p.expectOrFail(token.LParen)
		params := p.parseParamList(ast.ErrExpectedVariableDecl)
		p.expectOrFail(token.RParen)
		if len(params) == 1 {
			returns = params[0]
		} else if len(params) > 1 {
			r := p.tree.ListToSpan(params)
			returns = p.tree.AddNode(ast.Node{Tag: ast.StructFieldList, Lhs: r.Start, Rhs: r.End})
		}
	}
	block := p.parseBlock()

	mark := p.tree.ScratchMark()
	for p.at(token.KwCatch) {
		p.tree.ScratchPush(p.parseCatchClause())
	}
	catches := p.tree.ListFromScratch(mark)

	rec := ast.Try{Returns: returns, Expression: expr, Block: block, CatchesStart: catches.Start, CatchesEnd: catches.End}
	return p.tree.AddNode(ast.Node{Tag: ast.TryStatement, MainToken: kw, Lhs: rec.Encode(p.tree)})
}

// parseCatchClause parses one `catch [Identifier][(param)] { block }`.
func (p *parser) parseCatchClause() ast.Index {
	kw := p.expectOrFail(token.KwCatch)
	name := uint32(0)
	if p.at(token.Identifier) {
		name = p.advance()
	}
	var param ast.Index
	if p.eat(token.LParen) {
		if !p.at(token.RParen) {
			param = p.parseParam(ast.ErrExpectedVariableDecl)
		}
		p.expectOrFail(token.RParen)
	}
	block := p.parseBlock()
	if name == 0 {
		name = kw
	}
	return p.tree.AddNode(ast.Node{Tag: ast.CatchClause, MainToken: name, Lhs: param, Rhs: block})
}

// parseEmitStatement parses `emit EventCall(args);`.
func (p *parser) parseEmitStatement() ast.Index {
	kw := p.expectOrFail(token.KwEmit)
	call := p.parseExpr()
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.EmitStatement, MainToken: kw, Rhs: call})
}

// parseRevertStatement parses `revert CustomError(args);` and
// `revert("reason");` — `revert` is a contextual identifier, not a
// reserved word, so the call expression following it is parsed the
// same way any other call expression is. The dispatcher only reaches
// here once atIdentifierText("revert") has already matched, so the
// keyword token is simply consumed, the same way KwBreak/KwContinue
// are above.
func (p *parser) parseRevertStatement() ast.Index {
	kw := p.advance()
	var call ast.Index
	if p.at(token.LParen) {
		callee := p.tree.AddNode(ast.Node{Tag: ast.Identifier, MainToken: kw})
		call = p.parseCallSuffix(callee)
	} else {
		call = p.parseExpr()
	}
	switch p.tree.Node(call).Tag {
	case ast.Call, ast.CallTwo, ast.CallStructArgs:
	default:
		p.addError(ast.ErrExpectedFunctionCall, token.Invalid)
	}
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.RevertStatement, MainToken: kw, Rhs: call})
}

// parseReturnStatement parses `return [expr];`.
func (p *parser) parseReturnStatement() ast.Index {
	kw := p.expectOrFail(token.KwReturn)
	if p.eat(token.Semicolon) {
		return p.tree.AddNode(ast.Node{Tag: ast.ReturnVoid, MainToken: kw})
	}
	value := p.parseExpr()
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.ReturnValue, MainToken: kw, Rhs: value})
}

// parseVarDeclOrExprStatement handles the statement-start ambiguity
// between a variable declaration (`T name = expr;`) and a plain
// expression statement that merely begins with something that reads like
// a type (e.g. `MyStruct.field = 1;`): it speculatively parses a type
// expression, and if what follows is not a plausible declarator
// (identifier, or `(` for a tuple declaration), it falls back to treating
// the already-parsed prefix as an ordinary expression.
func (p *parser) parseVarDeclOrExprStatement() ast.Index {
	if p.at(token.LParen) {
		return p.parseTupleVarDeclOrExprStatement()
	}
	save := p.pos
	typ := p.parseTypeExprSpeculative()
	if typ != 0 && startsDataLocationOrIdentifier(p.current().Tag) {
		for isDataLocation(p.current().Tag) {
			p.advance()
		}
		if p.at(token.Identifier) {
			name := p.advance()
			var value ast.Index
			if p.eat(token.Equal) {
				value = p.parseExpr()
			}
			p.expectOrFail(token.Semicolon)
			return p.tree.AddNode(ast.Node{Tag: ast.VarDeclStatement, MainToken: name, Lhs: typ, Rhs: value})
		}
	}
	p.pos = save
	return p.parseExprOrAssignStatement()
}

func startsDataLocationOrIdentifier(tag token.Tag) bool {
	return isDataLocation(tag) || tag == token.Identifier
}

// parseTupleVarDeclOrExprStatement handles `(T1 a, , T3 c) = expr;`
// destructuring declarations, distinguished from a parenthesized
// expression by requiring at least one declared component.
func (p *parser) parseTupleVarDeclOrExprStatement() ast.Index {
	save := p.pos
	lparen := p.advance()
	mark := p.tree.ScratchMark()
	sawDeclarator := false
	for !p.at(token.RParen) && !p.atEOF() {
		if p.at(token.Comma) {
			p.tree.ScratchPush(0)
			p.advance()
			continue
		}
		if startsTypeExpr(p.current().Tag) {
			comp := p.parseParam(ast.ErrExpectedVariableDecl)
			p.tree.ScratchPush(comp)
			if p.tree.Node(comp).MainToken != 0 {
				sawDeclarator = true
			}
		} else {
			p.tree.ScratchTruncate(mark)
			p.pos = save
			return p.parseExprOrAssignStatement()
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if !sawDeclarator || !p.at(token.RParen) {
		p.tree.ScratchTruncate(mark)
		p.pos = save
		return p.parseExprOrAssignStatement()
	}
	r := p.tree.ListFromScratch(mark)
	p.expectOrFail(token.RParen)
	p.expectOrFail(token.Equal)
	value := p.parseExpr()
	p.expectOrFail(token.Semicolon)
	rec := ast.VarDeclTuple{ComponentsStart: r.Start, ComponentsEnd: r.End, Value: value}
	return p.tree.AddNode(ast.Node{Tag: ast.VarDeclTupleStatement, MainToken: lparen, Lhs: rec.Encode(p.tree)})
}

// parseExprOrAssignStatement parses an expression, optionally followed by
// an assignment operator and a right-hand side, terminated by `;`. Plain
// `=` and every compound assignment operator map into dedicated node tags.
func (p *parser) parseExprOrAssignStatement() ast.Index {
	lhs := p.parseExpr()
	if tag, ok := assignOpTable[p.current().Tag]; ok {
		op := p.advance()
		rhs := p.parseExpr()
		p.expectOrFail(token.Semicolon)
		n := p.tree.AddNode(ast.Node{Tag: tag, MainToken: op, Lhs: lhs, Rhs: rhs})
		return p.tree.AddNode(ast.Node{Tag: ast.ExprStatement, Rhs: n})
	}
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.ExprStatement, Rhs: lhs})
}
