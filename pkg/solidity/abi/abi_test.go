package abi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/pkg/solidity"
	"github.com/aledsdavies/solast/pkg/solidity/abi"
)

func firstContract(t *testing.T, src string) (*ast.Tree, ast.Index) {
	t.Helper()
	tree := solidity.Parse([]byte(src))
	if len(tree.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", tree.Errors)
	}
	units := solidity.SourceUnits(tree)
	return tree, units[0]
}

func TestExtractElementaryAndArrayTypes(t *testing.T) {
	src := `contract Token {
		function transfer(address to, uint256 amount) public returns (bool) { }
		function balances(uint256[] memory ids) external view returns (uint256) { }
	}`
	tree, contract := firstContract(t, src)
	methods := abi.Extract(tree, contract, zaptest.NewLogger(t))

	want := []abi.Method{
		{
			Name:            "transfer",
			Inputs:          []abi.Param{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
			Outputs:         []abi.Param{{Type: "bool"}},
			StateMutability: "nonpayable",
		},
		{
			Name:            "balances",
			Inputs:          []abi.Param{{Name: "ids", Type: "uint256[]"}},
			Outputs:         []abi.Param{{Type: "uint256"}},
			StateMutability: "view",
		},
	}
	if diff := cmp.Diff(want, methods); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPayableAndPure(t *testing.T) {
	src := `contract C {
		function deposit() public payable { }
		function add(uint256 a, uint256 b) public pure returns (uint256) { }
	}`
	tree, contract := firstContract(t, src)
	methods := abi.Extract(tree, contract, zaptest.NewLogger(t))

	if methods[0].StateMutability != "payable" {
		t.Fatalf("deposit StateMutability = %q, want payable", methods[0].StateMutability)
	}
	if methods[1].StateMutability != "pure" {
		t.Fatalf("add StateMutability = %q, want pure", methods[1].StateMutability)
	}
}

func TestExtractSkipsConstructor(t *testing.T) {
	src := `contract C {
		constructor(uint256 x) { }
		function get() public view returns (uint256) { }
	}`
	tree, contract := firstContract(t, src)
	methods := abi.Extract(tree, contract, zaptest.NewLogger(t))
	if len(methods) != 1 {
		t.Fatalf("len(methods) = %d, want 1 (constructor should not appear)", len(methods))
	}
	if methods[0].Name != "get" {
		t.Fatalf("methods[0].Name = %q, want get", methods[0].Name)
	}
}

func TestExtractUserDefinedTypeFallsBackToSpelling(t *testing.T) {
	src := `contract C {
		function set(Order.Status s) public { }
	}`
	tree, contract := firstContract(t, src)
	methods := abi.Extract(tree, contract, zaptest.NewLogger(t))
	if len(methods) != 1 || len(methods[0].Inputs) != 1 {
		t.Fatalf("unexpected extraction shape: %+v", methods)
	}
	if got := methods[0].Inputs[0].Type; got != "Order.Status" {
		t.Fatalf("Type = %q, want Order.Status", got)
	}
}
