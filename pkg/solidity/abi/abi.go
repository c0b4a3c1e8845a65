// Package abi walks a parsed contract or interface and emits a
// best-effort ABI method list: name, input/output types, and state
// mutability. It does not encode ABI bytes (selectors, argument
// packing) — that stays out of scope, matching the front end's own
// Non-goal of performing no semantic analysis.
package abi

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/token"
)

// Param is one resolved ABI parameter.
type Param struct {
	Name string
	Type string
}

// Method is one extracted ABI entry.
type Method struct {
	Name            string
	Inputs          []Param
	Outputs         []Param
	StateMutability string
}

// Extract walks contractOrInterface's body (a ContractDecl,
// AbstractContractDecl, InterfaceDecl or LibraryDecl node) and returns one
// Method per function declaration found directly in its body. log receives
// a warning, never an error, for each parameter whose type could not be
// resolved exactly — translation here is best-effort, and a partial
// result is still useful to a caller assembling an RPC call.
func Extract(tree *ast.Tree, contractOrInterface ast.Index, log *zap.Logger) []Method {
	if log == nil {
		log = zap.NewNop()
	}
	view := tree.Contract(contractOrInterface)
	var methods []Method
	for _, child := range tree.BlockChildren(view.Body) {
		n := tree.Node(child)
		if n.Tag != ast.FunctionDecl {
			continue
		}
		decl := tree.FunctionDecl(child)
		if decl.Proto.Identifier == 0 {
			continue // a declaration whose name token is missing
		}
		methods = append(methods, Method{
			Name:            string(tree.TokenText(decl.Proto.Identifier)),
			Inputs:          resolveParams(tree, decl.Proto.Params, log),
			Outputs:         resolveParams(tree, decl.Proto.Returns, log),
			StateMutability: stateMutability(tree, decl.Proto.Specifiers),
		})
	}
	return methods
}

func resolveParams(tree *ast.Tree, params []ast.Index, log *zap.Logger) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		view := tree.Param(p)
		out[i] = Param{
			Name: paramName(tree, view.Identifier),
			Type: resolveType(tree, view.Type, log),
		}
	}
	return out
}

func paramName(tree *ast.Tree, identifier uint32) string {
	if identifier == 0 {
		return ""
	}
	return string(tree.TokenText(identifier))
}

// resolveType renders typ as an ABI-ish type string. Elementary types and
// arrays of them resolve exactly; a user-defined type name (struct, enum,
// contract) falls back to its dotted source spelling, and any other type
// expression (mapping, function type) becomes "bytes". Both fallbacks log
// a warning per occurrence rather than failing the whole extraction.
func resolveType(tree *ast.Tree, typ ast.Index, log *zap.Logger) string {
	if typ == 0 {
		return ""
	}
	switch tree.Node(typ).Tag {
	case ast.ElementaryType:
		tok := tree.ElementaryTypeToken(typ)
		return elementaryTypeName(tree.TokenAt(tok).Tag)
	case ast.ArrayType:
		element, size := tree.ArrayType(typ)
		elementType := resolveType(tree, element, log)
		if size == 0 {
			return elementType + "[]"
		}
		return fmt.Sprintf("%s[%s]", elementType, arraySizeText(tree, size))
	case ast.IdentifierTypePath:
		segments := tree.IdentifierTypePathSegments(typ)
		name := joinTokens(tree, segments)
		log.Warn("unresolvable parameter type, falling back to source spelling",
			zap.String("type", name))
		return name
	default:
		log.Warn("unresolvable parameter type, falling back to best-effort spelling",
			zap.Int("tag", int(tree.Node(typ).Tag)))
		return "bytes"
	}
}

func arraySizeText(tree *ast.Tree, size ast.Index) string {
	n := tree.Node(size)
	if n.Tag == ast.NumberLiteral {
		return string(tree.TokenText(n.MainToken))
	}
	return ""
}

func joinTokens(tree *ast.Tree, tokens []uint32) string {
	out := make([]byte, 0, 16*len(tokens))
	for i, tk := range tokens {
		if i > 0 {
			out = append(out, '.')
		}
		out = append(out, tree.TokenText(tk)...)
	}
	return string(out)
}

// elementaryTypeName maps an elementary-type keyword tag to its canonical
// ABI spelling. Tag.String() already returns the exact Solidity keyword
// text (e.g. "uint256", "address", "bytes32"), which is also the ABI
// type name for every elementary type except the bare "uint"/"int"
// aliases, which ABI spells out at their default 256-bit width.
func elementaryTypeName(tag token.Tag) string {
	switch tag {
	case token.KwUint:
		return "uint256"
	case token.KwInt:
		return "int256"
	default:
		return tag.String()
	}
}

// stateMutability inspects a function's specifier list (a mix of raw
// token indices for visibility/mutability/virtual/override keywords and
// node indices for modifier invocations, per parseSpecifiers) for a
// view/pure/payable keyword, defaulting to "nonpayable" the way the real
// ABI JSON schema does for a function with none of the three.
func stateMutability(tree *ast.Tree, specifiers []ast.Index) string {
	for _, s := range specifiers {
		if int(s) >= len(tree.Tokens) {
			continue // a modifier-invocation node index, not a token index
		}
		switch tree.TokenAt(s).Tag {
		case token.KwView:
			return "view"
		case token.KwPure:
			return "pure"
		case token.KwPayable:
			return "payable"
		}
	}
	return "nonpayable"
}
