// Package parser implements the hand-written recursive-descent, Pratt
// precedence-climbing parser that fills an ast.Tree from a token vector.
// Entry is ParseSource; everything else is unexported parsing machinery
// grounded on the same current/at/advance/expect/recover shape the
// teacher's statement-oriented parser uses, adapted to build arena node
// indices instead of parse-tree events.
package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/lexer"
	"github.com/aledsdavies/solast/internal/token"
)

// parsingError is the recoverable-parse-error sentinel (spec.md §7): it is
// caught by the nearest recoverable wrapper, never by a caller outside
// this package. It carries no data — the diagnostic was already appended
// to the tree's Errors vector at the point of failure.
type parsingError struct{}

func (parsingError) Error() string { return "parsing error" }

// parser holds all mutable state for one parse: the token vector, the
// current read position, the arena being filled, and configuration. A
// parser is used for exactly one ParseSource call and discarded.
type parser struct {
	tree   *ast.Tree
	tokens []token.Token
	pos    int
	config *Config
	halted bool // set once, when WithoutRecovery stops the parse at the first ParsingError
}

// ParseSource tokenizes source and parses it into a populated ast.Tree.
// The returned Tree is never nil, even when diagnostics were recorded —
// per spec.md §7, a parse is successful as long as no fatal error
// occurred, and diagnostics are orthogonal to that.
func ParseSource(source []byte, opts ...Opt) *ast.Tree {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	tree := ast.NewTree(source)
	tokens := lexer.All(source)
	tree.Tokens = tokens
	p := &parser{
		tree:   tree,
		tokens: tokens,
		config: cfg,
	}
	p.parseSource()
	return tree
}

// current returns the token at the parser's position, or the trailing EOF
// token if pos has run past the vector's end (lexer.All always terminates
// with exactly one EOF token, so this only guards defensive over-advance).
func (p *parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peek looks ahead n tokens without consuming anything.
func (p *parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// at reports whether the current token has tag.
func (p *parser) at(tag token.Tag) bool {
	return p.current().Tag == tag
}

// atEOF reports whether the parser has reached the EOF tail.
func (p *parser) atEOF() bool {
	return p.at(token.EOF)
}

// advance consumes and returns the current token index, moving forward
// unless already at EOF.
func (p *parser) advance() uint32 {
	i := uint32(p.pos)
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return i
}

// eat consumes the current token if it has tag, reporting whether it did.
func (p *parser) eat(tag token.Tag) bool {
	if p.at(tag) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has tag, or records an
// expected_token diagnostic and leaves the position unchanged. Returns the
// consumed token's index, or the current (unconsumed) index on failure —
// callers that need a main_token still get something plausible to anchor
// the node on.
func (p *parser) expect(tag token.Tag) uint32 {
	if p.at(tag) {
		return p.advance()
	}
	p.errExpectedToken(tag)
	return uint32(p.pos)
}

// expectOrFail is expect, but raises parsingError on failure so the caller
// unwinds to its recoverable wrapper instead of limping forward with a
// clearly-wrong token.
func (p *parser) expectOrFail(tag token.Tag) uint32 {
	if p.at(tag) {
		return p.advance()
	}
	p.errExpectedToken(tag)
	panic(parsingError{})
}

// addError appends a diagnostic. If the current token starts on a
// different source line than the previous token, the diagnostic is
// rewritten to point at the end of the previous token with TokenIsPrev
// set, giving a "missing semicolon"-style caret (spec.md §7).
func (p *parser) addError(tag ast.ErrorTag, extra token.Tag) {
	if p.config.maxErrors > 0 && len(p.tree.Errors) >= p.config.maxErrors {
		return
	}
	tokIdx := uint32(p.pos)
	isPrev := false
	if p.pos > 0 {
		prev := p.tokens[p.pos-1]
		cur := p.current()
		if onDifferentLines(p.tree.Source, prev.End, cur.Start) {
			tokIdx = uint32(p.pos - 1)
			isPrev = true
		}
	}
	p.tree.Errors = append(p.tree.Errors, ast.Error{
		Tag:         tag,
		Token:       tokIdx,
		TokenIsPrev: isPrev,
		Extra:       extra,
	})
}

func (p *parser) errExpectedToken(expected token.Tag) {
	p.addError(ast.ErrExpectedToken, expected)
}

// onDifferentLines reports whether the byte range [a, b) of source
// crosses at least one newline.
func onDifferentLines(source []byte, a, b uint32) bool {
	for i := a; i < b && int(i) < len(source); i++ {
		if source[i] == '\n' {
			return true
		}
	}
	return false
}

// recoverTopLevel runs fn, catching a parsingError (its diagnostic was
// already recorded at the failure point), scanning to the next top-level
// synchronization point (or setting halted under WithoutRecovery), and
// returning false. A successful fn returns true.
func (p *parser) recoverTopLevel(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parsingError); !isParseErr {
				panic(r)
			}
			if p.config.disableRecovery {
				p.halted = true
			} else {
				p.findNextSource()
			}
			ok = false
		}
	}()
	fn()
	return true
}

func (p *parser) recoverContractElement(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parsingError); !isParseErr {
				panic(r)
			}
			if p.config.disableRecovery {
				p.halted = true
			} else {
				p.findNextContractElement()
			}
			ok = false
		}
	}()
	fn()
	return true
}

func (p *parser) recoverStatement(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(parsingError); !isParseErr {
				panic(r)
			}
			if p.config.disableRecovery {
				p.halted = true
			} else {
				p.findNextStatement()
			}
			ok = false
		}
	}()
	fn()
	return true
}

// depthTracker folds paren/bracket/brace depth for the recovery anchors:
// only a token seen at depth 0 is a plausible synchronization point.
type depthTracker struct{ paren, bracket, brace int }

func (d *depthTracker) update(tag token.Tag) {
	switch tag {
	case token.LParen:
		d.paren++
	case token.RParen:
		if d.paren > 0 {
			d.paren--
		}
	case token.LBracket:
		d.bracket++
	case token.RBracket:
		if d.bracket > 0 {
			d.bracket--
		}
	case token.LBrace:
		d.brace++
	case token.RBrace:
		if d.brace > 0 {
			d.brace--
		}
	}
}

func (d *depthTracker) atZero() bool { return d.paren == 0 && d.bracket == 0 && d.brace == 0 }

// findNextSource scans forward to the next token that plausibly begins a
// new top-level source unit at depth zero: a source-unit keyword, or EOF.
func (p *parser) findNextSource() {
	var d depthTracker
	for !p.atEOF() {
		tag := p.current().Tag
		if d.atZero() && isSourceUnitStart(tag) {
			return
		}
		d.update(tag)
		p.advance()
	}
}

// findNextContractElement scans forward to the next token that plausibly
// begins a new contract-body element at depth zero, a closing `}`, or EOF.
func (p *parser) findNextContractElement() {
	var d depthTracker
	for !p.atEOF() {
		tag := p.current().Tag
		if d.atZero() && (tag == token.RBrace || isContractElementStart(tag)) {
			return
		}
		d.update(tag)
		p.advance()
	}
}

// findNextStatement scans forward to the next token that plausibly begins
// a new statement at depth zero: a statement keyword, a `;` (consumed, so
// the caller resumes past it), a closing `}`, or EOF. spec.md §9's open
// question notes comma is also treated as a boundary here; kept as
// specified rather than tightened, since a re-implementation is free to
// choose but not required to.
func (p *parser) findNextStatement() {
	var d depthTracker
	for !p.atEOF() {
		tag := p.current().Tag
		if d.atZero() {
			switch tag {
			case token.Semicolon:
				p.advance()
				return
			case token.RBrace, token.Comma:
				return
			}
			if isStatementStart(tag) {
				return
			}
		}
		d.update(tag)
		p.advance()
	}
}

func isSourceUnitStart(tag token.Tag) bool {
	switch tag {
	case token.KwImport, token.KwPragma, token.KwAbstract, token.KwContract,
		token.KwInterface, token.KwLibrary, token.KwStruct, token.KwEnum,
		token.KwError, token.KwEvent, token.KwType, token.KwUsing, token.KwFunction:
		return true
	}
	return false
}

func isContractElementStart(tag token.Tag) bool {
	switch tag {
	case token.KwConstructor, token.KwEnum, token.KwStruct, token.KwEvent,
		token.KwError, token.KwType, token.KwModifier, token.KwFunction,
		token.KwFallback, token.KwReceive, token.KwUsing,
		token.KwPublic, token.KwPrivate, token.KwInternal, token.KwExternal,
		token.KwConstant, token.KwImmutable:
		return true
	}
	return tag.IsElementaryType()
}

// tokenText returns the source slice an identifier/keyword token spans.
func (p *parser) tokenText(idx uint32) string {
	tok := p.tokens[idx]
	return string(p.tree.Source[tok.Start:tok.End])
}

// atIdentifierText reports whether the current token is an identifier
// whose text equals s. Used for the handful of contextual keywords
// (`revert`, `global`, `from`, `new`, `delete`, `true`, `false`) that the
// tokenizer deliberately does not reserve.
func (p *parser) atIdentifierText(s string) bool {
	return p.at(token.Identifier) && p.tokenText(uint32(p.pos)) == s
}

// expectIdentifierText consumes the current token if it is the contextual
// identifier s, recording errTag and panicking otherwise
// (mirroring expectOrFail's fatal-recovery shape for the reserved-word
// case).
func (p *parser) expectIdentifierText(s string, errTag ast.ErrorTag) uint32 {
	if p.atIdentifierText(s) {
		return p.advance()
	}
	p.addError(errTag, token.Invalid)
	panic(parsingError{})
}

func isStatementStart(tag token.Tag) bool {
	switch tag {
	case token.KwIf, token.KwFor, token.KwWhile, token.KwDo, token.KwTry,
		token.KwEmit, token.KwReturn, token.KwContinue, token.KwBreak,
		token.KwUnchecked, token.KwAssembly, token.LBrace, token.KwThrow:
		return true
	}
	return false
}
