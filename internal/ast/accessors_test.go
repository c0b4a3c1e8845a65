package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCallResolvesAllThreeArityForms(t *testing.T) {
	tree := NewTree(nil)
	callee := tree.AddNode(Node{Tag: Identifier, MainToken: 0})

	t.Run("CallTwo with no args", func(t *testing.T) {
		call := tree.AddNode(Node{Tag: CallTwo, Lhs: callee})
		gotCallee, gotArgs := tree.Call(call)
		if gotCallee != callee || len(gotArgs) != 0 {
			t.Fatalf("Call() = (%d, %v), want (%d, [])", gotCallee, gotArgs, callee)
		}
	})

	t.Run("CallTwo with one arg", func(t *testing.T) {
		arg := tree.AddNode(Node{Tag: NumberLiteral, MainToken: 1})
		call := tree.AddNode(Node{Tag: CallTwo, Lhs: callee, Rhs: arg})
		gotCallee, gotArgs := tree.Call(call)
		if diff := cmp.Diff([]Index{arg}, gotArgs); gotCallee != callee || diff != "" {
			t.Fatalf("Call() callee/args mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Call with many args via extra_data", func(t *testing.T) {
		a := tree.AddNode(Node{Tag: NumberLiteral, MainToken: 2})
		b := tree.AddNode(Node{Tag: NumberLiteral, MainToken: 3})
		c := tree.AddNode(Node{Tag: NumberLiteral, MainToken: 4})
		r := tree.ListToSpan([]Index{a, b, c})
		base := tree.AddExtraData(r.Start, r.End)
		call := tree.AddNode(Node{Tag: Call, Lhs: callee, Rhs: base})

		gotCallee, gotArgs := tree.Call(call)
		if diff := cmp.Diff([]Index{a, b, c}, gotArgs); gotCallee != callee || diff != "" {
			t.Fatalf("Call() callee/args mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestIfResolvesSimpleAndElseForms(t *testing.T) {
	tree := NewTree(nil)
	cond := tree.AddNode(Node{Tag: Identifier})
	then := tree.AddNode(Node{Tag: Block})

	t.Run("IfSimple", func(t *testing.T) {
		n := tree.AddNode(Node{Tag: IfSimple, Lhs: cond, Rhs: then})
		got := tree.If(n)
		want := IfView{Condition: cond, Then: then}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("If() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("IfElse", func(t *testing.T) {
		elseBranch := tree.AddNode(Node{Tag: Block})
		rec := If{Then: then, Else: elseBranch}
		n := tree.AddNode(Node{Tag: IfElse, Lhs: cond, Rhs: rec.Encode(tree)})
		got := tree.If(n)
		want := IfView{Condition: cond, Then: then, Else: elseBranch}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("If() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestVarDeclTupleRoundTrip(t *testing.T) {
	tree := NewTree(nil)
	a := tree.AddNode(Node{Tag: Param, MainToken: 1})
	value := tree.AddNode(Node{Tag: Identifier, MainToken: 9})

	r := tree.ListToSpan([]Index{a, 0, 0}) // middle/last slots omitted, like `(T1 a, , )`
	rec := VarDeclTuple{ComponentsStart: r.Start, ComponentsEnd: r.End, Value: value}
	n := tree.AddNode(Node{Tag: VarDeclTupleStatement, Lhs: rec.Encode(tree)})

	gotComponents, gotValue := tree.VarDeclTuple(n)
	if diff := cmp.Diff([]Index{a, 0, 0}, gotComponents); diff != "" {
		t.Fatalf("VarDeclTuple() components mismatch (-want +got):\n%s", diff)
	}
	if gotValue != value {
		t.Fatalf("VarDeclTuple() value = %d, want %d", gotValue, value)
	}
}

func TestYulFnDeclCompactFormKeepsReturnVariable(t *testing.T) {
	tree := NewTree(nil)
	body := tree.AddNode(Node{Tag: YulBlock})

	// `function f() -> r { ... }`: zero params, one return, the compact
	// YulFnProtoSimple form.
	proto := tree.AddNode(Node{Tag: YulFnProtoSimple, MainToken: 2, Rhs: 5})
	decl := tree.AddNode(Node{Tag: YulFnDecl, Lhs: proto, Rhs: body})

	got := tree.YulFnDecl(decl)
	want := YulFnDeclView{Identifier: 2, Returns: []uint32{5}, Body: body}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("YulFnDecl() mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifierTypePathSegments(t *testing.T) {
	tree := NewTree(nil)
	first := tree.AddNode(Node{Tag: IdentifierTypePath, MainToken: 0})
	second := tree.AddNode(Node{Tag: IdentifierTypePath, MainToken: 0, Lhs: first, Rhs: 2})
	third := tree.AddNode(Node{Tag: IdentifierTypePath, MainToken: 0, Lhs: second, Rhs: 4})

	got := tree.IdentifierTypePathSegments(third)
	want := []uint32{0, 2, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("IdentifierTypePathSegments() mismatch (-want +got):\n%s", diff)
	}
}
