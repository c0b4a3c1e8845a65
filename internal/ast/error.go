package ast

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/solast/internal/token"
)

// ErrorTag enumerates diagnostic kinds, matching the tags spec.md §7
// requires by name so downstream tooling can dispatch on them.
type ErrorTag int

const (
	ErrExpectedToken ErrorTag = iota
	ErrExpectedSemicolon
	ErrExpectedRBrace
	ErrExpectedCommaAfter
	ErrExpectedSourceUnitExpr
	ErrExpectedContractElement
	ErrExpectedStatement
	ErrExpectedTypeExpr
	ErrExpectedPrefixExpr
	ErrExpectedReturnType
	ErrExpectedPragmaVersion
	ErrExpectedImportPathAliasAsterisk
	ErrExpectedStructField
	ErrExpectedEventParam
	ErrExpectedErrorParam
	ErrExpectedVariableDecl
	ErrExpectedOperator
	ErrExpectedFunctionCall
	ErrExpectedElementaryOrIdentifierPath
	ErrExpectedSuffix
	ErrTrailingComma
	ErrSameLineDocComment
	ErrChainedComparisonOperators
	ErrAlreadySeenSpecifier
	ErrUnattachedDocComment
	ErrExpectedSemicolonOrLBrace
	ErrExpectedYulStatement
	ErrExpectedYulExpression
	ErrExpectedYulAssignment
	ErrExpectedYulFunctionCall
	ErrExpectedYulLiteral
	ErrExpectedGlobalKeyword
	ErrExpectedFromKeyword
)

func (e ErrorTag) String() string {
	switch e {
	case ErrExpectedToken:
		return "expected_token"
	case ErrExpectedSemicolon:
		return "expected_semicolon"
	case ErrExpectedRBrace:
		return "expected_r_brace"
	case ErrExpectedCommaAfter:
		return "expected_comma_after"
	case ErrExpectedSourceUnitExpr:
		return "expected_source_unit_expr"
	case ErrExpectedContractElement:
		return "expected_contract_element"
	case ErrExpectedStatement:
		return "expected_statement"
	case ErrExpectedTypeExpr:
		return "expected_type_expr"
	case ErrExpectedPrefixExpr:
		return "expected_prefix_expr"
	case ErrExpectedReturnType:
		return "expected_return_type"
	case ErrExpectedPragmaVersion:
		return "expected_pragma_version"
	case ErrExpectedImportPathAliasAsterisk:
		return "expected_import_path_alias_asterisk"
	case ErrExpectedStructField:
		return "expected_struct_field"
	case ErrExpectedEventParam:
		return "expected_event_param"
	case ErrExpectedErrorParam:
		return "expected_error_param"
	case ErrExpectedVariableDecl:
		return "expected_variable_decl"
	case ErrExpectedOperator:
		return "expected_operator"
	case ErrExpectedFunctionCall:
		return "expected_function_call"
	case ErrExpectedElementaryOrIdentifierPath:
		return "expected_elementary_or_identifier_path"
	case ErrExpectedSuffix:
		return "expected_suffix"
	case ErrTrailingComma:
		return "trailing_comma"
	case ErrSameLineDocComment:
		return "same_line_doc_comment"
	case ErrChainedComparisonOperators:
		return "chained_comparison_operators"
	case ErrAlreadySeenSpecifier:
		return "already_seen_specifier"
	case ErrUnattachedDocComment:
		return "unattached_doc_comment"
	case ErrExpectedSemicolonOrLBrace:
		return "expected_semicolon_or_lbrace"
	case ErrExpectedYulStatement:
		return "expected_yul_statement"
	case ErrExpectedYulExpression:
		return "expected_yul_expression"
	case ErrExpectedYulAssignment:
		return "expected_yul_assignment"
	case ErrExpectedYulFunctionCall:
		return "expected_yul_function_call"
	case ErrExpectedYulLiteral:
		return "expected_yul_literal"
	case ErrExpectedGlobalKeyword:
		return "expected_global_keyword"
	case ErrExpectedFromKeyword:
		return "expected_from_keyword"
	default:
		return "error"
	}
}

// Error is a diagnostic record (spec.md §3.4). It never aborts a parse;
// Extra carries the expected token tag for ErrExpectedToken and is the
// zero token.Invalid otherwise. TokenIsPrev means the caret belongs at the
// end of the previous token (the "missing semicolon" rendering spec.md §7
// describes) rather than at Token's own start.
type Error struct {
	Tag         ErrorTag
	Token       uint32
	TokenIsPrev bool
	Extra       token.Tag
}

// Render produces a human-readable, Rust/Clang-style snippet from a
// diagnostic, in the spirit of the teacher's ParseError.createCodeSnippet:
// a "-->line:col" header, the source line, and a caret. Render is a
// presentation helper only — nothing in the parser's control flow depends
// on it, and it is not part of the arena's accessor contract (spec.md §4.2
// is exclusively about node/token/extra-data access).
func (e Error) Render(tree *Tree, tok token.Token) string {
	line, col, lineText := lineColAndText(tree.Source, int(tok.Start))
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Tag.String())
	if e.Tag == ErrExpectedToken {
		fmt.Fprintf(&b, " (expected %s)", e.Extra.String())
	}
	fmt.Fprintf(&b, "\n  --> %d:%d\n", line, col)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", line, lineText)
	b.WriteString("   | ")
	if col > 0 && col <= len(lineText)+1 {
		b.WriteString(strings.Repeat(" ", col-1) + "^")
	}
	return b.String()
}

// lineColAndText returns the 1-based line, 1-based column, and full text
// of the line containing byte offset.
func lineColAndText(source []byte, offset int) (line, col int, text string) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	col = offset - lineStart + 1
	return line, col, string(source[lineStart:lineEnd])
}
