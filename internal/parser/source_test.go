package parser_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/testutil"
)

func TestDocCommentAttachesToFollowingDeclaration(t *testing.T) {
	tree := testutil.MustParse(t, "/// Transfers tokens.\ncontract C { }")
	units := tree.BlockChildren(ast.Index(0))
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1 (the doc comment is not itself a source unit)", len(units))
	}
}

func TestTrailingDocCommentOnPreviousLineIsUnattached(t *testing.T) {
	src := "contract A { }\n/// not attached, EOF follows\n"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrUnattachedDocComment)
}

func TestDocCommentSharingPreviousLineReportsSameLineDocComment(t *testing.T) {
	src := "contract A { } /// trailing comment on the same line\ncontract B { }"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrSameLineDocComment)

	units := tree.BlockChildren(ast.Index(0))
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2 (both contracts still parse)", len(units))
	}
}
