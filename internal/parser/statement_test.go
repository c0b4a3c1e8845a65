package parser_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/internal/testutil"
)

func TestIfWithoutElse(t *testing.T) {
	tree, stmt := firstStatement(t, "if (a) { x = 1; }")
	if tree.Node(stmt).Tag != ast.IfSimple {
		t.Fatalf("tag = %v, want IfSimple", tree.Node(stmt).Tag)
	}
	view := tree.If(stmt)
	if view.Else != 0 {
		t.Fatalf("Else = %d, want 0 (no else branch)", view.Else)
	}
}

func TestIfElseChain(t *testing.T) {
	tree, stmt := firstStatement(t, "if (a) { x = 1; } else if (b) { x = 2; } else { x = 3; }")
	if tree.Node(stmt).Tag != ast.IfElse {
		t.Fatalf("tag = %v, want IfElse", tree.Node(stmt).Tag)
	}
	view := tree.If(stmt)
	if view.Else == 0 {
		t.Fatalf("Else = 0, want the nested `else if` node")
	}
	if tree.Node(view.Else).Tag != ast.IfElse {
		t.Fatalf("nested else tag = %v, want IfElse (the `else if`)", tree.Node(view.Else).Tag)
	}
}

func TestForStatementAllClauses(t *testing.T) {
	tree, stmt := firstStatement(t, "for (uint256 i = 0; i < 10; i++) { x = i; }")
	if tree.Node(stmt).Tag != ast.ForStatement {
		t.Fatalf("tag = %v, want ForStatement", tree.Node(stmt).Tag)
	}
	view := tree.For(stmt)
	if view.Init == 0 || view.Condition == 0 || view.Post == 0 || view.Body == 0 {
		t.Fatalf("For() view has an unexpected empty clause: %+v", view)
	}
}

func TestForStatementEmptyClauses(t *testing.T) {
	tree, stmt := firstStatement(t, "for (;;) { break; }")
	view := tree.For(stmt)
	if view.Init != 0 || view.Condition != 0 || view.Post != 0 {
		t.Fatalf("For() view = %+v, want all three clauses empty", view)
	}
}

func TestTryStatementWithReturnsAndCatch(t *testing.T) {
	tree, stmt := firstStatement(t,
		"try target.call() returns (uint256 r) { x = r; } catch Error(string memory reason) { x = 0; } catch { x = 1; }")
	if tree.Node(stmt).Tag != ast.TryStatement {
		t.Fatalf("tag = %v, want TryStatement", tree.Node(stmt).Tag)
	}
	view := tree.Try(stmt)
	if view.Returns == 0 {
		t.Fatalf("Returns = 0, want the `returns (uint256 r)` param")
	}
	if len(view.Catches) != 2 {
		t.Fatalf("len(Catches) = %d, want 2", len(view.Catches))
	}
	named := tree.Catch(view.Catches[0])
	if named.Param == 0 {
		t.Fatalf("first catch clause has no param, want Error(string memory reason)'s param")
	}
	bare := tree.Catch(view.Catches[1])
	if bare.Param != 0 {
		t.Fatalf("second catch clause param = %d, want 0 (bare `catch`)", bare.Param)
	}
}

func TestTupleVarDeclWithOmittedSlot(t *testing.T) {
	tree, stmt := firstStatement(t, "(uint256 a, , uint256 c) = f();")
	if tree.Node(stmt).Tag != ast.VarDeclTupleStatement {
		t.Fatalf("tag = %v, want VarDeclTupleStatement", tree.Node(stmt).Tag)
	}
	components, value := tree.VarDeclTuple(stmt)
	if len(components) != 3 {
		t.Fatalf("len(components) = %d, want 3", len(components))
	}
	if components[1] != 0 {
		t.Fatalf("components[1] = %d, want 0 (the omitted middle slot)", components[1])
	}
	if value == 0 {
		t.Fatalf("value = 0, want the call expression")
	}
}

func TestPlainVarDeclStatement(t *testing.T) {
	tree, stmt := firstStatement(t, "uint256 total = 0;")
	if tree.Node(stmt).Tag != ast.VarDeclStatement {
		t.Fatalf("tag = %v, want VarDeclStatement", tree.Node(stmt).Tag)
	}
}

func TestRevertWithCustomErrorCall(t *testing.T) {
	tree, stmt := firstStatement(t, "revert InsufficientBalance(msg.sender, amount);")
	if tree.Node(stmt).Tag != ast.RevertStatement {
		t.Fatalf("tag = %v, want RevertStatement", tree.Node(stmt).Tag)
	}
	call := tree.Node(stmt).Rhs
	if call == 0 {
		t.Fatalf("Rhs = 0, want the InsufficientBalance(...) call expression")
	}
	if tree.Node(call).Tag != ast.Call {
		t.Fatalf("call tag = %v, want Call (2 args)", tree.Node(call).Tag)
	}
}

func TestRevertWithStringReason(t *testing.T) {
	tree, stmt := firstStatement(t, `revert("insufficient balance");`)
	if tree.Node(stmt).Tag != ast.RevertStatement {
		t.Fatalf("tag = %v, want RevertStatement", tree.Node(stmt).Tag)
	}
	if tree.Node(stmt).Rhs == 0 {
		t.Fatalf("Rhs = 0, want the revert(\"...\") call expression")
	}
}

func TestRevertWithoutCallReportsExpectedFunctionCall(t *testing.T) {
	src := "contract C { function f() public { revert x; } }"
	tree := testutil.Parse(t, src)
	testutil.RequireError(t, tree, ast.ErrExpectedFunctionCall)
}

func TestVarDeclAmbiguityFallsBackToExpressionStatement(t *testing.T) {
	// `MyStruct.field = 1;` reads like a type expression up through the
	// dotted path, but is not followed by an identifier declarator, so it
	// must fall back to a plain assignment expression statement.
	tree, stmt := firstStatement(t, "MyStruct.field = 1;")
	if tree.Node(stmt).Tag != ast.ExprStatement {
		t.Fatalf("tag = %v, want ExprStatement", tree.Node(stmt).Tag)
	}
}

func TestMissingSemicolonRecordsDiagnosticAndRecovers(t *testing.T) {
	src := "contract C { function f() public { uint256 a = 1 uint256 b = 2; } }"
	tree := testutil.Parse(t, src)
	if len(tree.Errors) == 0 {
		t.Fatalf("expected at least one diagnostic for the missing semicolon")
	}
}
