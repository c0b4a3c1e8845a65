package parser_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/testutil"
)

// firstStatement parses src (one function body statement) and returns the
// statement node inside `contract C { function f() public { <src> } }`.
func firstStatement(t *testing.T, src string) (*ast.Tree, ast.Index) {
	t.Helper()
	full := "contract C { function f() public { " + src + " } }"
	tree := testutil.MustParse(t, full)

	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)
	fn := tree.FunctionDecl(body[0])
	stmts := tree.BlockChildren(fn.Body)
	if len(stmts) == 0 {
		t.Fatalf("function body has no statements")
	}
	return tree, stmts[0]
}

func assignRHS(t *testing.T, tree *ast.Tree, exprStmt ast.Index) ast.Index {
	t.Helper()
	assign := tree.Node(exprStmt).Rhs
	if tree.Node(assign).Tag != ast.Assign {
		t.Fatalf("expected an Assign node, got %v", tree.Node(assign).Tag)
	}
	return tree.Node(assign).Rhs
}

func TestBinaryPrecedenceClimbsMultiplicationFirst(t *testing.T) {
	tree, stmt := firstStatement(t, "x = a + b * c;")
	rhs := assignRHS(t, tree, stmt)

	top := tree.Node(rhs)
	if top.Tag != ast.BinAdd {
		t.Fatalf("outermost tag = %v, want BinAdd", top.Tag)
	}
	right := tree.Node(top.Rhs)
	if right.Tag != ast.BinMul {
		t.Fatalf("right operand tag = %v, want BinMul (multiplication binds tighter than addition)", right.Tag)
	}
}

func TestExponentiationIsRightAssociative(t *testing.T) {
	tree, stmt := firstStatement(t, "x = a ** b ** c;")
	rhs := assignRHS(t, tree, stmt)

	top := tree.Node(rhs)
	if top.Tag != ast.BinExp {
		t.Fatalf("outermost tag = %v, want BinExp", top.Tag)
	}
	// Right-associative: a ** (b ** c), so the nested BinExp is the rhs.
	if tree.Node(top.Lhs).Tag == ast.BinExp {
		t.Fatalf("exponentiation parsed left-associatively, want right")
	}
	if tree.Node(top.Rhs).Tag != ast.BinExp {
		t.Fatalf("right operand tag = %v, want BinExp", tree.Node(top.Rhs).Tag)
	}
}

func TestChainedComparisonReportsDiagnosticWithoutFailing(t *testing.T) {
	src := "contract C { function f() public { x = a < b < c; } }"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrChainedComparisonOperators)

	// Non-fatal: the statement still parses into a complete Assign node,
	// it just also carries the diagnostic.
	units := tree.BlockChildren(ast.Index(0))
	contract := tree.Contract(units[0])
	body := tree.BlockChildren(contract.Body)
	fn := tree.FunctionDecl(body[0])
	stmts := tree.BlockChildren(fn.Body)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1 (recovery should not drop the statement)", len(stmts))
	}
}

func TestTernaryBuildsIfRecord(t *testing.T) {
	tree, stmt := firstStatement(t, "x = a ? b : c;")
	rhs := assignRHS(t, tree, stmt)
	if tree.Node(rhs).Tag != ast.Conditional {
		t.Fatalf("tag = %v, want Conditional", tree.Node(rhs).Tag)
	}
}

func TestCallWithManyArgumentsResolvesCalleeAndArgs(t *testing.T) {
	tree, stmt := firstStatement(t, "x = f(a, b, c);")
	rhs := assignRHS(t, tree, stmt)
	if tree.Node(rhs).Tag != ast.Call {
		t.Fatalf("tag = %v, want Call", tree.Node(rhs).Tag)
	}
	_, args := tree.Call(rhs)
	if len(args) != 3 {
		t.Fatalf("len(args) = %d, want 3", len(args))
	}
}

func TestNewExprAndTypeExprAndPayableCall(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want ast.Tag
	}{
		{"new", "x = new Foo();", ast.CallTwo},
		{"type", "x = type(Foo);", ast.TypeExpr},
		{"payable", "x = payable(a);", ast.PayableCall},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tree, stmt := firstStatement(t, tt.src)
			rhs := assignRHS(t, tree, stmt)
			if got := tree.Node(rhs).Tag; got != tt.want {
				t.Fatalf("tag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewExprWithoutCallReportsExpectedSuffix(t *testing.T) {
	src := "contract C { function f() public { x = new Foo; } }"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrExpectedSuffix)
}

func TestIndexRangeAccess(t *testing.T) {
	tree, stmt := firstStatement(t, "x = a[1:2];")
	rhs := assignRHS(t, tree, stmt)
	if tree.Node(rhs).Tag != ast.IndexRangeAccess {
		t.Fatalf("tag = %v, want IndexRangeAccess", tree.Node(rhs).Tag)
	}
	_, bounds := tree.IndexRangeAccess(rhs)
	if bounds.Start == 0 || bounds.End == 0 {
		t.Fatalf("IndexRangeAccess bounds = %+v, want both non-zero", bounds)
	}
}
