package parser_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/testutil"
)

func TestMappingWithIdentifierPathKeyIsAccepted(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { mapping(MyEnum => uint256) balances; }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)
	view := tree.StateVar(body[0])

	mapping := tree.Mapping(view.Type)
	if tree.Node(mapping.KeyType).Tag != ast.IdentifierTypePath {
		t.Fatalf("key type tag = %v, want IdentifierTypePath", tree.Node(mapping.KeyType).Tag)
	}
}

func TestMappingWithArrayKeyReportsExpectedElementaryOrIdentifierPath(t *testing.T) {
	src := "contract C { mapping(uint256[] => uint256) balances; }"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrExpectedElementaryOrIdentifierPath)

	// Non-fatal: the state variable still parses to completion.
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)
	if len(body) != 1 {
		t.Fatalf("len(body) = %d, want 1 (recovery should not drop the declaration)", len(body))
	}
}
