package parser

import (
	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// associativity records how a precedence level composes repeated
// applications of its operators.
type associativity int8

const (
	assocLeft associativity = iota
	assocRight
	assocNone // comparison operators: chaining is a diagnostic, not a parse
)

// binOp is one entry of the operator-precedence table: every binary
// operator token carries a precedence, the node tag it builds, and its
// associativity. The table is keyed by token.Tag and is exhaustive over
// every tag that can start an infix expression.
type binOp struct {
	prec  int8
	tag   ast.Tag
	assoc associativity
}

// noPrec is parseBinary's "no non-associative operator seen yet at this
// level" marker; no table entry has this precedence.
const noPrec int8 = -1

var binOpTable = map[token.Tag]binOp{
	token.PipePipe: {10, ast.BinOrOr, assocLeft},

	token.AmpAmp: {20, ast.BinAndAnd, assocLeft},

	token.EqualEqual:   {30, ast.BinEq, assocNone},
	token.BangEqual:    {30, ast.BinNotEq, assocNone},
	token.Less:         {30, ast.BinLt, assocNone},
	token.Greater:      {30, ast.BinGt, assocNone},
	token.LessEqual:    {30, ast.BinLe, assocNone},
	token.GreaterEqual: {30, ast.BinGe, assocNone},

	token.Ampersand: {40, ast.BinBitAnd, assocLeft},
	token.Caret:     {40, ast.BinBitXor, assocLeft},
	token.Pipe:      {40, ast.BinBitOr, assocLeft},

	token.Shl: {50, ast.BinShl, assocLeft},
	token.Shr: {50, ast.BinShr, assocLeft},
	token.Sar: {50, ast.BinSar, assocLeft},

	token.Plus:  {60, ast.BinAdd, assocLeft},
	token.Minus: {60, ast.BinSub, assocLeft},

	token.Star:    {70, ast.BinMul, assocLeft},
	token.Slash:   {70, ast.BinDiv, assocLeft},
	token.Percent: {70, ast.BinMod, assocLeft},
	token.StarStar: {70, ast.BinExp, assocRight},
}

// precedenceOf reports the table entry for tag, or the zero binOp and
// false if tag cannot start an infix expression.
func precedenceOf(tag token.Tag) (binOp, bool) {
	op, ok := binOpTable[tag]
	return op, ok
}

// assignOpTable maps an assignment-operator token to the node tag that
// represents it: plain `=` (Assign) and every compound assignment
// operator.
var assignOpTable = map[token.Tag]ast.Tag{
	token.Equal:          ast.Assign,
	token.PlusEqual:      ast.AssignAdd,
	token.MinusEqual:     ast.AssignSub,
	token.StarEqual:      ast.AssignMul,
	token.SlashEqual:     ast.AssignDiv,
	token.PercentEqual:   ast.AssignMod,
	token.AmpersandEqual: ast.AssignAnd,
	token.PipeEqual:      ast.AssignOr,
	token.CaretEqual:     ast.AssignXor,
	token.ShlEqual:       ast.AssignShl,
	token.ShrEqual:       ast.AssignShr,
	token.SarEqual:       ast.AssignSar,
}
