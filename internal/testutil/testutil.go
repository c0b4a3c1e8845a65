// Package testutil collects the small assertion helpers shared by
// internal/parser and internal/ast tests: parsing a fixture into a tree,
// and failing with a readable message when the resulting diagnostics or
// node shape don't match what a test expects. It mirrors the table-driven,
// go-cmp-diff style the parser's own tests are written in, rather than
// introducing a separate expectation DSL.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/parser"
)

// MustParse parses src and fails the test immediately if parsing produced
// any diagnostics. Use Parse instead when a test wants to inspect errors
// itself.
func MustParse(t *testing.T, src string, opts ...parser.Opt) *ast.Tree {
	t.Helper()
	tree := Parse(t, src, opts...)
	if len(tree.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, renderErrors(tree))
	}
	return tree
}

// Parse parses src with opts and returns the resulting tree, diagnostics
// and all.
func Parse(t *testing.T, src string, opts ...parser.Opt) *ast.Tree {
	t.Helper()
	return parser.ParseSource([]byte(src), opts...)
}

// RequireError fails the test unless tree carries at least one diagnostic
// tagged tag, returning the first match for further field inspection.
func RequireError(t *testing.T, tree *ast.Tree, tag ast.ErrorTag) ast.Error {
	t.Helper()
	for _, e := range tree.Errors {
		if e.Tag == tag {
			return e
		}
	}
	t.Fatalf("expected a %s diagnostic, got: %v", tag, renderErrors(tree))
	return ast.Error{}
}

// RequireNoErrors fails the test with a rendered diagnostic list if tree
// carries any errors.
func RequireNoErrors(t *testing.T, tree *ast.Tree) {
	t.Helper()
	if len(tree.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", renderErrors(tree))
	}
}

// RequireTag fails the test unless node i is tagged want, reporting got
// otherwise.
func RequireTag(t *testing.T, tree *ast.Tree, i ast.Index, want ast.Tag) {
	t.Helper()
	if got := tree.Node(i).Tag; got != want {
		t.Fatalf("node %d: want tag %v, got %v", i, want, got)
	}
}

// RequireDiff fails the test and prints a -want +got diff when want and
// got are not equal, in the style the parser's own tests use for
// comparing diagnostics and decoded record values.
func RequireDiff(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func renderErrors(tree *ast.Tree) []string {
	out := make([]string, len(tree.Errors))
	for i, e := range tree.Errors {
		out[i] = e.Tag.String()
	}
	return out
}
