package ast

import "github.com/aledsdavies/solast/internal/token"

// Node is the four-field payload spec.md §3.2 mandates: a tag, the token
// that best identifies the node in source, and two cross-references whose
// meaning (direct node index, direct token index, or an ExtraData span) is
// fixed per tag and documented on the accessor that reads it.
type Node struct {
	Tag       Tag
	MainToken uint32
	Lhs       Index
	Rhs       Index
}

// Range is a half-open [Start, End) span into a Tree's ExtraData vector,
// meaning "this subrange is an ordered list of node indices" (or, for a
// handful of named record shapes, a list of named uint32 fields).
type Range struct {
	Start, End uint32
}

// Tree is the arena: it owns Nodes, ExtraData, Errors and a reusable
// scratch stack, and is populated by exactly one parser in a single pass
// (spec.md §3.5). After the parser returns, a Tree is read-only and safe
// to share across goroutines; nothing mutates it again.
type Tree struct {
	Source []byte

	// Tokens is the full token vector the parser consumed to build this
	// tree, including the trailing EOF token. MainToken/token-index fields
	// on nodes and extra_data records index into it; it is populated once
	// by the parser and never mutated afterward.
	Tokens []token.Token

	Tags       []Tag
	MainTokens []uint32
	Lhs        []Index
	Rhs        []Index

	ExtraData []uint32
	Errors    []Error

	// scratch backs every parse helper that accumulates a variable-length
	// child list. Helpers mark scratch's length on entry and truncate back
	// to the mark on exit (see ScratchMark/ScratchTruncate), so it behaves
	// like a nested function-local buffer with no per-call allocation.
	// Never exposed outside this package's arena-construction API.
	scratch []Index
}

// NewTree returns an empty arena over source, with node index 0 reserved
// as the "no node" sentinel (its slot is overwritten by the parser's root
// node once parsing completes).
func NewTree(source []byte) *Tree {
	t := &Tree{Source: source}
	// Index 0 is reserved: push a placeholder so the first real AddNode
	// call returns index 1, keeping 0 permanently meaning "absent".
	t.Tags = append(t.Tags, Root)
	t.MainTokens = append(t.MainTokens, 0)
	t.Lhs = append(t.Lhs, 0)
	t.Rhs = append(t.Rhs, 0)
	// ExtraData index 0 is reserved the same way: several record fields
	// (specifier lists, optional flags) use 0 to mean "absent", so the
	// first real AddExtraData/ListToSpan call must not be allowed to land
	// on index 0.
	t.ExtraData = append(t.ExtraData, 0)
	return t
}

// TokenAt returns the token at index i (a MainToken or extra_data
// token-index field value).
func (t *Tree) TokenAt(i uint32) token.Token {
	return t.Tokens[i]
}

// TokenText returns the source slice covered by the token at index i.
func (t *Tree) TokenText(i uint32) []byte {
	tok := t.Tokens[i]
	return t.Source[tok.Start:tok.End]
}

// NodeCount returns the number of populated node slots, including the
// sentinel at index 0.
func (t *Tree) NodeCount() int { return len(t.Tags) }

// Node reads back node i as a Node value. i must be < NodeCount(); index 0
// is the sentinel and reading it is only meaningful for the root itself.
func (t *Tree) Node(i Index) Node {
	return Node{Tag: t.Tags[i], MainToken: t.MainTokens[i], Lhs: t.Lhs[i], Rhs: t.Rhs[i]}
}

// AddNode appends n and returns its index.
func (t *Tree) AddNode(n Node) Index {
	t.Tags = append(t.Tags, n.Tag)
	t.MainTokens = append(t.MainTokens, n.MainToken)
	t.Lhs = append(t.Lhs, n.Lhs)
	t.Rhs = append(t.Rhs, n.Rhs)
	return Index(len(t.Tags) - 1)
}

// ReserveNode appends a placeholder node carrying tag and returns its
// index, to be overwritten later with SetNode once the node's children are
// known (used when a node must reference itself or when children are
// parsed before the node that owns them is fully determined).
func (t *Tree) ReserveNode(tag Tag) Index {
	return t.AddNode(Node{Tag: tag})
}

// SetNode overwrites the node at index i, previously produced by
// ReserveNode. Every reservation must be filled before the parser returns
// successfully (spec.md §3.2's invariant on forward-reserved placeholders).
func (t *Tree) SetNode(i Index, n Node) Index {
	t.Tags[i] = n.Tag
	t.MainTokens[i] = n.MainToken
	t.Lhs[i] = n.Lhs
	t.Rhs[i] = n.Rhs
	return i
}

// AddExtraData appends the fields of a fixed-shape record (in the field
// order the record's own encode method defines) and returns the index of
// its first field, so later readers can offset from it.
func (t *Tree) AddExtraData(fields ...uint32) ExtraIndex {
	start := ExtraIndex(len(t.ExtraData))
	t.ExtraData = append(t.ExtraData, fields...)
	return start
}

// ExtraDataAt reads n fields back starting at start.
func (t *Tree) ExtraDataAt(start ExtraIndex, n int) []uint32 {
	return t.ExtraData[start : start+uint32(n)]
}

// ListToSpan appends the given child indices as one contiguous run in
// ExtraData and returns the half-open range describing it. ExtraData is
// append-only: overlapping spans are fine, nothing is ever rewritten once
// appended except via the scratch-stack discipline below, which operates
// on a separate slice.
func (t *Tree) ListToSpan(children []Index) Range {
	start := uint32(len(t.ExtraData))
	t.ExtraData = append(t.ExtraData, children...)
	return Range{Start: start, End: uint32(len(t.ExtraData))}
}

// Span reads back the node indices named by r.
func (t *Tree) Span(r Range) []Index {
	return t.ExtraData[r.Start:r.End]
}

// ScratchMark returns the current length of the scratch stack, to be
// passed to ScratchTruncate when the caller's helper returns on every
// control-flow path, including error returns.
func (t *Tree) ScratchMark() int { return len(t.scratch) }

// ScratchPush appends one child index to the scratch stack.
func (t *Tree) ScratchPush(i Index) { t.scratch = append(t.scratch, i) }

// ScratchSlice returns the scratch stack's contents from mark to its
// current end — the accumulated children of the helper that owns mark.
func (t *Tree) ScratchSlice(mark int) []Index { return t.scratch[mark:] }

// ScratchTruncate restores the scratch stack to mark, discarding whatever
// the caller's helper pushed. After ScratchTruncate(0), the stack is empty
// — its state at every successful parser return (spec.md §5).
func (t *Tree) ScratchTruncate(mark int) { t.scratch = t.scratch[:mark] }

// ListFromScratch is the common helper pattern: take everything pushed
// since mark, commit it as an ExtraData span, and truncate the scratch
// stack back to mark in one call.
func (t *Tree) ListFromScratch(mark int) Range {
	r := t.ListToSpan(t.scratch[mark:])
	t.ScratchTruncate(mark)
	return r
}
