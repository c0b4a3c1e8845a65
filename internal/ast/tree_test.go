package ast

import (
	"testing"

	"github.com/aledsdavies/solast/internal/token"
)

func TestNewTreeReservesSentinels(t *testing.T) {
	tree := NewTree([]byte("contract C {}"))

	if got := tree.NodeCount(); got != 1 {
		t.Fatalf("NodeCount() = %d, want 1 (just the root sentinel)", got)
	}
	if got := len(tree.ExtraData); got != 1 {
		t.Fatalf("len(ExtraData) = %d, want 1 (the reserved sentinel slot)", got)
	}

	// The first real AddNode/AddExtraData call must not land on index 0,
	// which every optional Lhs/Rhs/record-base field treats as "absent".
	n := tree.AddNode(Node{Tag: NumberLiteral, MainToken: 3})
	if n == 0 {
		t.Fatalf("AddNode returned the reserved sentinel index 0")
	}
	e := tree.AddExtraData(42)
	if e == 0 {
		t.Fatalf("AddExtraData returned the reserved sentinel index 0")
	}
}

func TestScratchDiscipline(t *testing.T) {
	tree := NewTree(nil)

	mark := tree.ScratchMark()
	tree.ScratchPush(5)
	tree.ScratchPush(9)
	if got := tree.ScratchSlice(mark); len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("ScratchSlice(mark) = %v, want [5 9]", got)
	}

	r := tree.ListFromScratch(mark)
	if got := tree.ScratchMark(); got != mark {
		t.Fatalf("scratch stack not truncated back to mark: len = %d, want %d", got, mark)
	}
	if got := tree.Span(r); len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Fatalf("Span(r) = %v, want [5 9]", got)
	}
}

func TestReserveNodeThenSetNode(t *testing.T) {
	tree := NewTree(nil)

	placeholder := tree.ReserveNode(BlockTwo)
	if tree.Node(placeholder).Tag != BlockTwo {
		t.Fatalf("reserved node has tag %v, want BlockTwo", tree.Node(placeholder).Tag)
	}

	tree.SetNode(placeholder, Node{Tag: BlockTwo, Lhs: 7, Rhs: 8})
	got := tree.Node(placeholder)
	if got.Lhs != 7 || got.Rhs != 8 {
		t.Fatalf("SetNode did not overwrite in place: got %+v", got)
	}
}

func TestTokenAtAndTokenText(t *testing.T) {
	src := []byte("uint256")
	tree := NewTree(src)
	tree.Tokens = []token.Token{{Tag: 0, Start: 0, End: 7}}

	if got := tree.TokenAt(0); got.Start != 0 || got.End != 7 {
		t.Fatalf("TokenAt(0) = %+v, want Start 0, End 7", got)
	}
	if got := string(tree.TokenText(0)); got != "uint256" {
		t.Fatalf("TokenText(0) = %q, want %q", got, "uint256")
	}
}
