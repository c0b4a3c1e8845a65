package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// parseSource is the parser's entry point (spec.md §4.3): reserve the root
// node, parse source units in a loop until EOF (or a stray `}`, which is
// reported and skipped), then patch the root with the final child range.
func (p *parser) parseSource() {
	mark := p.tree.ScratchMark()
	for !p.halted {
		p.skipUnattachedDocComments()
		if p.atEOF() {
			break
		}
		if p.at(token.RBrace) {
			p.addError(ast.ErrExpectedSourceUnitExpr, token.Invalid)
			p.advance()
			continue
		}
		if n := p.parseSourceUnit(); n != 0 {
			p.tree.ScratchPush(n)
		}
	}
	r := p.tree.ListFromScratch(mark)
	p.tree.SetNode(0, ast.Node{Tag: ast.Root, Lhs: r.Start, Rhs: r.End})
}

// skipUnattachedDocComments consumes leading doc-comment tokens that are
// not immediately followed by a declaration they could attach to — i.e.
// one directly followed by another doc comment or by EOF/`}` — warning for
// each (spec.md §4.3, "warns on unattached doc-comments").
func (p *parser) skipUnattachedDocComments() {
	for p.at(token.DocCommentLine) || p.at(token.DocCommentBlock) {
		if p.pos > 0 && !onDifferentLines(p.tree.Source, p.tokens[p.pos-1].End, p.current().Start) {
			// Trailing comment on the previous line's code, not a leading
			// doc comment for whatever follows.
			if !p.config.suppressDocWarn {
				p.addError(ast.ErrSameLineDocComment, token.Invalid)
			}
			p.advance()
			continue
		}
		next := p.peek(1).Tag
		if next == token.DocCommentLine || next == token.DocCommentBlock ||
			next == token.EOF || next == token.RBrace {
			if !p.config.suppressDocWarn {
				p.addError(ast.ErrUnattachedDocComment, token.Invalid)
			}
			p.advance()
			continue
		}
		// A doc comment immediately preceding a real declaration is
		// consumed here without a diagnostic; the declaration starts
		// parsing at the following token, and the comment stays in the
		// token vector for tooling to associate by adjacency.
		p.advance()
		return
	}
}

// parseSourceUnit dispatches on the current token's keyword (spec.md
// §4.3's top-level dispatch table) and returns the parsed node's index,
// or 0 if recovery discarded the unit entirely.
func (p *parser) parseSourceUnit() ast.Index {
	var result ast.Index
	p.recoverTopLevel(func() {
		switch {
		case p.at(token.KwImport):
			result = p.parseImport()
		case p.at(token.KwPragma):
			result = p.parsePragma()
		case p.at(token.KwAbstract), p.at(token.KwContract), p.at(token.KwInterface), p.at(token.KwLibrary):
			result = p.parseContract()
		case p.at(token.KwStruct):
			result = p.parseStructDecl()
		case p.at(token.KwEnum):
			result = p.parseEnumDecl()
		case p.at(token.KwError):
			result = p.parseErrorDecl()
		case p.at(token.KwEvent):
			result = p.parseEventDecl()
		case p.at(token.KwType):
			result = p.parseTypeAliasDecl()
		case p.at(token.KwUsing):
			result = p.parseUsingDirective()
		case p.at(token.KwFunction):
			result = p.parseFreeFunction()
		default:
			result = p.parseConstVarDecl()
		}
	})
	return result
}

// parsePragma parses `pragma solidity <version-expr>;`. The version
// expression is free-form (comparison operators, `||`, version numbers),
// so it is captured as a raw token range rather than a full expression
// parse: main_token is the `pragma` keyword, Lhs/Rhs span the version
// tokens in extra_data as a token-index list degenerated to node indices
// is unnecessary here, so Lhs is the first version token and Rhs the
// token just past the last (a token range, not a node range).
func (p *parser) parsePragma() ast.Index {
	kw := p.expectOrFail(token.KwPragma)
	if !p.atIdentifierText("solidity") {
		p.addError(ast.ErrExpectedPragmaVersion, token.Invalid)
	} else {
		p.advance()
	}
	start := uint32(p.pos)
	for !p.at(token.Semicolon) && !p.atEOF() {
		p.advance()
	}
	end := uint32(p.pos)
	p.eat(token.Semicolon)
	return p.tree.AddNode(ast.Node{Tag: ast.PragmaDirective, MainToken: kw, Lhs: start, Rhs: end})
}

// parseImport covers all four import forms (spec.md §9 Open Questions
// mandates the import_directive_path encoding exactly as implemented
// below).
func (p *parser) parseImport() ast.Index {
	kw := p.expectOrFail(token.KwImport)

	switch {
	case p.at(token.Star):
		p.advance()
		p.expectOrFail(token.KwAs)
		alias := p.expectOrFail(token.Identifier)
		p.expectIdentifierText("from", ast.ErrExpectedFromKeyword)
		path := p.expectOrFail(token.String)
		p.eat(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.ImportDirectiveStar, MainToken: alias, Lhs: alias, Rhs: path})

	case p.at(token.LBrace):
		p.advance()
		mark := p.tree.ScratchMark()
		for !p.at(token.RBrace) && !p.atEOF() {
			symbol := p.expectOrFail(token.Identifier)
			alias := uint32(0)
			if p.eat(token.KwAs) {
				alias = p.expectOrFail(token.Identifier)
			}
			p.tree.ScratchPush(ast.ImportSymbol{Symbol: symbol, Alias: alias}.Encode(p.tree))
			if !p.eat(token.Comma) {
				break
			}
		}
		r := p.tree.ListFromScratch(mark)
		p.expectOrFail(token.RBrace)
		p.expectIdentifierText("from", ast.ErrExpectedFromKeyword)
		path := p.expectOrFail(token.String)
		p.eat(token.Semicolon)
		base := p.tree.AddExtraData(path, r.Start, r.End)
		return p.tree.AddNode(ast.Node{Tag: ast.ImportDirectiveSymbols, MainToken: kw, Lhs: base})

	case p.at(token.String):
		path := p.advance()
		alias := uint32(0)
		if p.eat(token.KwAs) {
			alias = p.expectOrFail(token.Identifier)
			return p.tree.AddNode(ast.Node{Tag: finishSemi(p), MainToken: kw, Lhs: path, Rhs: alias})
		}
		p.eat(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.ImportDirectivePath, MainToken: kw, Lhs: path, Rhs: 0})

	default:
		// `import Identifier as Alias from "path";` — compact single-symbol
		// form, distinguished from the brace form by the lack of `{`.
		symbol := p.expectOrFail(token.Identifier)
		alias := uint32(0)
		if p.eat(token.KwAs) {
			alias = p.expectOrFail(token.Identifier)
		} else {
			p.addError(ast.ErrExpectedImportPathAliasAsterisk, token.Invalid)
		}
		p.expectIdentifierText("from", ast.ErrExpectedFromKeyword)
		path := p.expectOrFail(token.String)
		p.eat(token.Semicolon)
		return p.tree.AddNode(ast.Node{Tag: ast.ImportDirectiveOneSymbol, MainToken: symbol, Lhs: alias, Rhs: path})
	}
}

// finishSemi consumes the trailing `;` of an aliased bare-path import and
// always resolves to ImportDirectivePath — aliasing does not need its own
// tag since the distinction lives entirely in Rhs being non-zero.
func finishSemi(p *parser) ast.Tag {
	p.eat(token.Semicolon)
	return ast.ImportDirectivePath
}
