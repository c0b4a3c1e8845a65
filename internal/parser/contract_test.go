package parser_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/testutil"
)

func TestContractWithMultipleInheritance(t *testing.T) {
	tree := testutil.MustParse(t, "contract C is A, B, D { }")
	units := tree.BlockChildren(ast.Index(0))
	if len(units) != 1 {
		t.Fatalf("len(units) = %d, want 1", len(units))
	}
	if tree.Node(units[0]).Tag != ast.ContractDecl {
		t.Fatalf("tag = %v, want ContractDecl", tree.Node(units[0]).Tag)
	}
	view := tree.Contract(units[0])
	if len(view.Inheritance) != 3 {
		t.Fatalf("len(Inheritance) = %d, want 3", len(view.Inheritance))
	}
}

func TestAbstractContractAndInterfaceAndLibrary(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want ast.Tag
	}{
		{"abstract", "abstract contract C { }", ast.AbstractContractDecl},
		{"interface", "interface I { }", ast.InterfaceDecl},
		{"library", "library L { }", ast.LibraryDecl},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tree := testutil.MustParse(t, tt.src)
			units := tree.BlockChildren(ast.Index(0))
			if got := tree.Node(units[0]).Tag; got != tt.want {
				t.Fatalf("tag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStructDeclFields(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { struct S { uint256 a; address b; } }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)

	view := tree.Struct(body[0])
	if len(view.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(view.Fields))
	}
}

func TestEnumMembers(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { enum State { Idle, Running, Done } }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)

	view := tree.Enum(body[0])
	if len(view.Members) != 3 {
		t.Fatalf("len(Members) = %d, want 3", len(view.Members))
	}
}

func TestEventAnonymousFlag(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { event Transfer(address indexed from, address indexed to, uint256 amount) anonymous; }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)

	view := tree.Event(body[0])
	if !view.Anonymous {
		t.Fatalf("Anonymous = false, want true")
	}
	if len(view.Params) != 3 {
		t.Fatalf("len(Params) = %d, want 3", len(view.Params))
	}
}

func TestFunctionWithModifierInvocationAndVisibility(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { function withdraw(uint256 amount) public onlyOwner nonReentrant { } }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)

	decl := tree.FunctionDecl(body[0])
	if len(decl.Proto.Params) != 1 {
		t.Fatalf("len(Params) = %d, want 1", len(decl.Proto.Params))
	}
	if len(decl.Proto.Specifiers) != 3 { // public, onlyOwner, nonReentrant
		t.Fatalf("len(Specifiers) = %d, want 3", len(decl.Proto.Specifiers))
	}
}

func TestStateVarDeclWithSpecifiersAndInitializer(t *testing.T) {
	tree := testutil.MustParse(t, "contract C { uint256 public constant MAX = 100; }")
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)

	view := tree.StateVar(body[0])
	if view.Value == 0 {
		t.Fatalf("Value = 0, want the `= 100` initializer")
	}
	if len(view.Specifiers) != 2 { // public, constant
		t.Fatalf("len(Specifiers) = %d, want 2", len(view.Specifiers))
	}
}

func TestUsingDirectiveForTypeIsNotGlobal(t *testing.T) {
	tree := testutil.MustParse(t, "using SafeMath for uint256;")
	units := tree.BlockChildren(ast.Index(0))
	view := tree.UsingDirective(units[0])
	if view.IsGlobal {
		t.Fatalf("IsGlobal = true, want false")
	}
	if view.ForType == 0 {
		t.Fatalf("ForType = 0, want the uint256 type node")
	}
}
