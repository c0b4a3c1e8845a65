// Package solidity is the small, stable surface external consumers (a
// formatter, a translator, the bundled CLI) import instead of reaching
// into internal/ast and internal/parser directly. It re-exports the
// arena's public types and the accessor bundle verbatim; it adds no new
// behavior of its own.
package solidity

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/lexer"
	"github.com/aledsdavies/solast/internal/parser"
	"github.com/aledsdavies/solast/internal/token"
)

// Tree is the parsed arena: tokens, nodes, extra-data, and diagnostics.
// See internal/ast.Tree for the field-level contract.
type Tree = ast.Tree

// Index is a 1-based node reference into a Tree; 0 means "no node".
type Index = ast.Index

// Tag identifies a node's grammar production.
type Tag = ast.Tag

// Token is one lexical token: a tag and a byte-offset span into source.
type Token = token.Token

// TokenTag identifies a token's lexical class.
type TokenTag = token.Tag

// Error is one parser diagnostic.
type Error = ast.Error

// ErrorTag enumerates diagnostic kinds.
type ErrorTag = ast.ErrorTag

// Option configures Parse; see internal/parser for the available options.
type Option = parser.Opt

// WithMaxErrors caps the number of diagnostics a parse collects; past the
// cap new diagnostics are dropped and the parse still runs to completion.
func WithMaxErrors(n int) Option { return parser.WithMaxErrors(n) }

// WithoutDocCommentWarnings suppresses ErrUnattachedDocComment/
// ErrSameLineDocComment diagnostics, for callers that don't care about
// doc-comment placement.
func WithoutDocCommentWarnings() Option { return parser.WithoutDocCommentWarnings() }

// WithoutRecovery disables error recovery: the parse halts at the first
// diagnostic instead of resynchronizing and continuing, so Tree.Errors
// carries exactly that one entry. Useful for fuzzing and for a strict
// CLI mode that should fail fast on the first malformed construct.
func WithoutRecovery() Option { return parser.WithoutRecovery() }

// Parse tokenizes and parses src, returning the resulting Tree. A
// non-empty Tree.Errors does not mean Parse failed: the parser recovers
// from most syntax errors and keeps producing a usable tree (see
// internal/parser's recovery design).
func Parse(src []byte, opts ...Option) *Tree {
	return parser.ParseSource(src, opts...)
}

// Tokens returns the full token stream for src, including the trailing
// EOF token. It never fails: lexing has no recoverable-error concept
// distinct from emitting a token.Invalid tag.
func Tokens(src []byte) []Token {
	return lexer.All(src)
}

// NodeView is a tag-labeled, read-only snapshot of one arena node, handy
// for generic tree walks that don't yet know which arity-specialized
// accessor in internal/ast.accessors applies.
type NodeView struct {
	Tag       Tag
	MainToken uint32
	Lhs       Index
	Rhs       Index
}

// Node reads back node i from tree as a NodeView.
func Node(tree *Tree, i Index) NodeView {
	n := tree.Node(i)
	return NodeView{Tag: n.Tag, MainToken: n.MainToken, Lhs: n.Lhs, Rhs: n.Rhs}
}

// SourceUnits returns the top-level declarations of tree's root node, in
// source order.
func SourceUnits(tree *Tree) []Index {
	return tree.BlockChildren(RootIndex)
}

// RootIndex is the fixed node index spec.md §3.2 assigns the file's root
// node: the sentinel slot reserved by NewTree, overwritten in place once
// parsing completes with the file's top-level declaration list.
const RootIndex Index = 0
