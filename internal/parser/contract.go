package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseContract parses `[abstract] contract|interface|library Identifier
// [is Inheritance,...] { body }`.
func (p *parser) parseContract() ast.Index {
	isAbstract := p.eat(token.KwAbstract)
	var kind ast.Tag
	switch {
	case p.at(token.KwContract):
		kind = ast.ContractDecl
	case p.at(token.KwInterface):
		kind = ast.InterfaceDecl
	case p.at(token.KwLibrary):
		kind = ast.LibraryDecl
	default:
		p.addError(ast.ErrExpectedContractElement, token.Invalid)
		panic(parsingError{})
	}
	if isAbstract {
		kind = ast.AbstractContractDecl
	}
	kw := p.advance()
	p.expectOrFail(token.Identifier)

	inheritance := p.parseOptionalInheritance()

	body := p.parseContractBody()
	return p.tree.AddNode(ast.Node{Tag: kind, MainToken: kw, Lhs: inheritance, Rhs: body})
}

// parseOptionalInheritance parses `is A, B(...), C` if present, returning
// 0 if there is no `is` clause, a ContractInheritanceOne node for exactly
// one parent, or a ContractInheritance node for two or more.
func (p *parser) parseOptionalInheritance() ast.Index {
	if !p.eat(token.KwIs) {
		return 0
	}
	mark := p.tree.ScratchMark()
	for {
		p.tree.ScratchPush(p.parseInheritanceSpecifier())
		if !p.eat(token.Comma) {
			break
		}
	}
	parents := p.tree.ScratchSlice(mark)
	if len(parents) == 1 {
		sole := parents[0]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.ContractInheritanceOne, Lhs: sole})
	}
	r := p.tree.ListFromScratch(mark)
	rec := ast.ContractInheritance{InheritanceStart: r.Start, InheritanceEnd: r.End}
	return p.tree.AddNode(ast.Node{Tag: ast.ContractInheritance, Lhs: rec.Encode(p.tree)})
}

// parseInheritanceSpecifier parses one `Identifier[.Identifier]*[(args)]`
// entry of an inheritance list as an ordinary expression (identifier path
// optionally suffixed with a call), reusing the expression grammar.
func (p *parser) parseInheritanceSpecifier() ast.Index {
	base := p.parseIdentifierPathPrimary()
	if p.at(token.LParen) {
		return p.parseCallSuffix(base)
	}
	return base
}

// parseContractBody parses the `{ ... }` contract body, folding the
// element count into the arity-specialized tag families spec.md §4.3
// names (contract_block_two / ..._two_semicolon / contract_block /
// ..._semicolon). The "semicolon" variants are unused here because a
// contract body's closing brace never has a trailing `;` to note; they
// exist for symmetry with the statement-block families and are reserved
// for a future lossless-reprint pass.
func (p *parser) parseContractBody() ast.Index {
	lbrace := p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() && !p.halted {
		p.skipUnattachedDocComments()
		if p.at(token.RBrace) || p.atEOF() {
			break
		}
		p.recoverContractElement(func() {
			if n := p.parseContractElement(); n != 0 {
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
		return p.tree.AddNode(ast.Node{Tag: ast.ContractBlockTwo, MainToken: lbrace})
	case 1:
		c := children[0]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.ContractBlockTwo, MainToken: lbrace, Lhs: c})
	case 2:
		a, b := children[0], children[1]
		p.tree.ScratchTruncate(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.ContractBlockTwo, MainToken: lbrace, Lhs: a, Rhs: b})
	default:
		r := p.tree.ListFromScratch(mark)
		return p.tree.AddNode(ast.Node{Tag: ast.ContractBlock, MainToken: lbrace, Lhs: r.Start, Rhs: r.End})
	}
}

// parseContractElement dispatches on the first token of a contract-body
// member (spec.md §4.3's contract-body element list).
func (p *parser) parseContractElement() ast.Index {
	switch {
	case p.at(token.KwConstructor):
		return p.parseConstructor()
	case p.at(token.KwEnum):
		return p.parseEnumDecl()
	case p.at(token.KwStruct):
		return p.parseStructDecl()
	case p.at(token.KwEvent):
		return p.parseEventDecl()
	case p.at(token.KwError):
		return p.parseErrorDecl()
	case p.at(token.KwType):
		return p.parseTypeAliasDecl()
	case p.at(token.KwUsing):
		return p.parseUsingDirective()
	case p.at(token.KwModifier):
		return p.parseModifier()
	case p.at(token.KwFunction):
		return p.parseFunctionMember()
	case p.at(token.KwFallback):
		return p.parseFallback()
	case p.at(token.KwReceive):
		return p.parseReceive()
	default:
		return p.parseStateVarDecl()
	}
}

// parseStructDecl parses `struct Identifier { field; field; ... }`.
func (p *parser) parseStructDecl() ast.Index {
	kw := p.expectOrFail(token.KwStruct)
	p.expectOrFail(token.Identifier)
	p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() {
		field := p.parseParam(ast.ErrExpectedStructField)
		p.tree.ScratchPush(field)
		p.expectOrFail(token.Semicolon)
	}
	r := p.tree.ListFromScratch(mark)
	p.expectOrFail(token.RBrace)
	list := p.tree.AddNode(ast.Node{Tag: ast.StructFieldList, Lhs: r.Start, Rhs: r.End})
	return p.tree.AddNode(ast.Node{Tag: ast.StructDecl, MainToken: kw, Rhs: list})
}

// parseEnumDecl parses `enum Identifier { A, B, C }`.
func (p *parser) parseEnumDecl() ast.Index {
	kw := p.expectOrFail(token.KwEnum)
	p.expectOrFail(token.Identifier)
	p.expectOrFail(token.LBrace)
	mark := p.tree.ScratchMark()
	for !p.at(token.RBrace) && !p.atEOF() {
		member := p.expectOrFail(token.Identifier)
		p.tree.ScratchPush(member)
		if !p.eat(token.Comma) {
			break
		}
	}
	r := p.tree.ListFromScratch(mark)
	p.expectOrFail(token.RBrace)
	return p.tree.AddNode(ast.Node{Tag: ast.EnumDecl, MainToken: kw, Lhs: r.Start, Rhs: r.End})
}

// parseEventDecl parses `event Identifier(params) [anonymous];`.
func (p *parser) parseEventDecl() ast.Index {
	p.expectOrFail(token.KwEvent)
	name := p.expectOrFail(token.Identifier)
	p.expectOrFail(token.LParen)
	params := p.parseParamList(ast.ErrExpectedEventParam)
	p.expectOrFail(token.RParen)
	anonymous := uint32(0)
	if p.eat(token.KwAnonymous) {
		anonymous = 1
	}
	p.expectOrFail(token.Semicolon)

	if len(params) <= 1 {
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		return p.tree.AddNode(ast.Node{Tag: ast.EventParamOne, MainToken: name, Lhs: sole, Rhs: anonymous})
	}
	r := p.tree.ListToSpan(params)
	rec := ast.EventProto{ParamsStart: r.Start, ParamsEnd: r.End, Anonymous: anonymous}
	return p.tree.AddNode(ast.Node{Tag: ast.EventDecl, MainToken: name, Lhs: rec.Encode(p.tree)})
}

// parseErrorDecl parses `error Identifier(params);`.
func (p *parser) parseErrorDecl() ast.Index {
	p.expectOrFail(token.KwError)
	name := p.expectOrFail(token.Identifier)
	p.expectOrFail(token.LParen)
	params := p.parseParamList(ast.ErrExpectedErrorParam)
	p.expectOrFail(token.RParen)
	p.expectOrFail(token.Semicolon)

	if len(params) <= 1 {
		var sole ast.Index
		if len(params) == 1 {
			sole = params[0]
		}
		return p.tree.AddNode(ast.Node{Tag: ast.ErrorParamOne, MainToken: name, Lhs: sole})
	}
	r := p.tree.ListToSpan(params)
	return p.tree.AddNode(ast.Node{Tag: ast.ErrorDecl, MainToken: name, Lhs: r.Start, Rhs: r.End})
}

// parseTypeAliasDecl parses `type Identifier is ElementaryType;`.
func (p *parser) parseTypeAliasDecl() ast.Index {
	kw := p.expectOrFail(token.KwType)
	p.expectOrFail(token.Identifier)
	p.expectOrFail(token.KwIs)
	underlying := p.parseTypeExpr()
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.TypeAliasDecl, MainToken: kw, Rhs: underlying})
}

// parseUsingDirective parses `using L for T [global];` or `using L for *;`.
// spec.md §9's Open Question on the trailing identifier is resolved per
// DESIGN.md: only the literal identifier `global` is accepted; anything
// else is reported and not consumed as the global marker.
func (p *parser) parseUsingDirective() ast.Index {
	kw := p.expectOrFail(token.KwUsing)
	p.expectOrFail(token.Identifier)
	p.expectOrFail(token.KwFor)
	var forType ast.Index
	if !p.eat(token.Star) {
		forType = p.parseTypeExpr()
	}
	isGlobal := uint32(0)
	if p.atIdentifierText("global") {
		p.advance()
		isGlobal = 1
	} else if p.at(token.Identifier) {
		p.addError(ast.ErrExpectedGlobalKeyword, token.Invalid)
	}
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.UsingDirective, MainToken: kw, Lhs: forType, Rhs: isGlobal})
}

// parseConstVarDecl parses a top-level `T constant NAME = expr;`.
func (p *parser) parseConstVarDecl() ast.Index {
	typ := p.parseTypeExpr()
	p.expectOrFail(token.KwConstant)
	name := p.expectOrFail(token.Identifier)
	p.expectOrFail(token.Equal)
	value := p.parseExpr()
	p.expectOrFail(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.ConstVarDecl, MainToken: name, Lhs: typ, Rhs: value})
}

// parseStateVarDecl parses a contract-level state variable: a type
// expression, zero or more qualifier specifiers (public, constant,
// immutable, ...), a name, and an optional initializer.
func (p *parser) parseStateVarDecl() ast.Index {
	typ := p.parseTypeExpr()
	mark := p.tree.ScratchMark()
	for isStateVarSpecifier(p.current().Tag) {
		p.tree.ScratchPush(p.advance())
	}
	specRange := p.tree.ListFromScratch(mark)
	name := p.expectOrFail(token.Identifier)
	var value ast.Index
	if p.eat(token.Equal) {
		value = p.parseExpr()
	}
	p.expectOrFail(token.Semicolon)
	rec := ast.StateVar{Type: typ, SpecifiersStart: specRange.Start, SpecifiersEnd: specRange.End, Value: value}
	return p.tree.AddNode(ast.Node{Tag: ast.StateVarDecl, MainToken: name, Lhs: rec.Encode(p.tree)})
}

func isStateVarSpecifier(tag token.Tag) bool {
	switch tag {
	case token.KwPublic, token.KwPrivate, token.KwInternal, token.KwConstant, token.KwImmutable:
		return true
	}
	return false
}

// parseParamList parses a comma-separated parameter list up to (but not
// consuming) the closing token the caller expects next.
func (p *parser) parseParamList(onErr ast.ErrorTag) []ast.Index {
	mark := p.tree.ScratchMark()
	for !p.at(token.RParen) && !p.atEOF() {
		p.tree.ScratchPush(p.parseParam(onErr))
		if p.at(token.Comma) {
			p.advance()
			if p.at(token.RParen) {
				p.addError(ast.ErrTrailingComma, token.Invalid)
			}
			continue
		}
		break
	}
	out := append([]ast.Index(nil), p.tree.ScratchSlice(mark)...)
	p.tree.ScratchTruncate(mark)
	return out
}

// parseParam parses one `Type [location|indexed] [Identifier]` parameter.
func (p *parser) parseParam(onErr ast.ErrorTag) ast.Index {
	if !startsTypeExpr(p.current().Tag) {
		p.addError(onErr, token.Invalid)
	}
	typ := p.parseTypeExpr()
	for isDataLocation(p.current().Tag) || p.at(token.KwIndexed) {
		p.advance()
	}
	name := uint32(0)
	if p.at(token.Identifier) {
		name = p.advance()
	}
	return p.tree.AddNode(ast.Node{Tag: ast.Param, MainToken: name, Lhs: typ})
}

func isDataLocation(tag token.Tag) bool {
	switch tag {
	case token.KwMemory, token.KwStorage, token.KwCalldata:
		return true
	}
	return false
}

// parseSpecifiers collects the visibility/mutability/virtual/override and
// modifier-invocation specifiers that follow a function/modifier
// parameter list, up to (not including) `returns` or the body-starting
// `{`/`;`. Implements the "at most once" rule for virtual/override
// (spec.md §4.3's specifier state machine) by tracking which of the two
// have already been seen.
func (p *parser) parseSpecifiers() ast.ExtraIndex {
	mark := p.tree.ScratchMark()
	seenVirtual, seenOverride := false, false
	for {
		switch {
		case isVisibilityOrMutability(p.current().Tag):
			p.tree.ScratchPush(p.advance())
		case p.at(token.KwVirtual):
			if seenVirtual {
				p.addError(ast.ErrAlreadySeenSpecifier, token.Invalid)
			}
			seenVirtual = true
			p.tree.ScratchPush(p.advance())
		case p.at(token.KwOverride):
			if seenOverride {
				p.addError(ast.ErrAlreadySeenSpecifier, token.Invalid)
			}
			seenOverride = true
			p.tree.ScratchPush(p.advance())
			if p.eat(token.LParen) {
				for !p.at(token.RParen) && !p.atEOF() {
					p.expectOrFail(token.Identifier)
					if !p.eat(token.Comma) {
						break
					}
				}
				p.expectOrFail(token.RParen)
			}
		case p.at(token.Identifier):
			p.tree.ScratchPush(p.parseModifierInvocation())
		default:
			r := p.tree.ListFromScratch(mark)
			if r.Start == r.End {
				return 0
			}
			return p.tree.AddExtraData(r.Start, r.End)
		}
	}
}

func isVisibilityOrMutability(tag token.Tag) bool {
	switch tag {
	case token.KwPublic, token.KwPrivate, token.KwInternal, token.KwExternal,
		token.KwView, token.KwPure, token.KwPayable:
		return true
	}
	return false
}

// parseModifierInvocation parses `Identifier` or `Identifier(args)` as it
// appears in a function's specifier list.
func (p *parser) parseModifierInvocation() ast.Index {
	name := p.expectOrFail(token.Identifier)
	if !p.at(token.LParen) {
		return p.tree.AddNode(ast.Node{Tag: ast.ModifierInvocationBare, MainToken: name})
	}
	args := p.parseCallArgs()
	r := p.tree.ListToSpan(args)
	return p.tree.AddNode(ast.Node{Tag: ast.ModifierInvocationCall, MainToken: name, Lhs: r.Start, Rhs: r.End})
}
