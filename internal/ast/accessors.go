package ast

import "github.com/aledsdavies/solast/internal/token"

// This file is the accessor bundle spec.md §4.2/§6 requires: one named
// helper per arity-specialized construct, each resolving the tag-dependent
// Lhs/Rhs/extra_data interpretation into a small view struct with named,
// optional (zero-means-absent) fields. This is the only supported way for
// an external consumer (formatter, translator, pkg/solidity) to read the
// arena — raw Lhs/Rhs reads belong to the parser and to this file alone.

// optIndex turns the sentinel 0 into a semantically meaningful "none".
func optIndex(i Index) (Index, bool) {
	if i == 0 {
		return 0, false
	}
	return i, true
}

// ContractView is the resolved shape of a ContractDecl / AbstractContractDecl
// / InterfaceDecl / LibraryDecl node.
type ContractView struct {
	Identifier  uint32
	Inheritance []Index // parent identifier-path expression nodes, may be empty
	Body        Index   // a ContractBlock* node
}

// Contract resolves any of the four contract-family tags at i. The
// inheritance list's encoding depends on a *separate* node (the one
// referenced by n.Lhs, tagged either ContractInheritanceOne or
// ContractInheritance), so this helper dispatches on that node's own tag
// rather than guessing from Lhs's magnitude.
func (t *Tree) Contract(i Index) ContractView {
	n := t.Node(i)
	v := ContractView{Identifier: n.MainToken + 1, Body: n.Rhs}
	if n.Lhs == 0 {
		return v
	}
	switch t.Node(n.Lhs).Tag {
	case ContractInheritanceOne:
		v.Inheritance = []Index{t.ContractInheritanceOne(n.Lhs)}
	case ContractInheritance:
		v.Inheritance = t.ContractInheritanceMulti(n.Lhs)
	}
	return v
}

// ContractInheritanceOne reads the sole parent of a ContractInheritanceOne
// node.
func (t *Tree) ContractInheritanceOne(i Index) Index {
	return t.Node(i).Lhs
}

// ContractInheritanceMulti reads the parent list of a ContractInheritance
// node.
func (t *Tree) ContractInheritanceMulti(i Index) []Index {
	n := t.Node(i)
	rec := DecodeContractInheritance(t, n.Lhs)
	return t.Span(Range{Start: rec.InheritanceStart, End: rec.InheritanceEnd})
}

// BlockChildren resolves any of the arity-specialized block families
// (BlockTwo/BlockTwoSemicolon/Block/BlockSemicolon and their contract-body
// analogues) into a plain slice of child node indices, folding the
// two-slot and extra_data-range encodings into one view.
func (t *Tree) BlockChildren(i Index) []Index {
	n := t.Node(i)
	switch n.Tag {
	case BlockTwo, BlockTwoSemicolon, ContractBlockTwo, ContractBlockTwoSemicolon,
		TupleInitTwo, ArrayInitTwo, StructInitTwo, CallTwo, YulBlockTwo:
		var out []Index
		if lhs, ok := optIndex(n.Lhs); ok {
			out = append(out, lhs)
		}
		if rhs, ok := optIndex(n.Rhs); ok {
			out = append(out, rhs)
		}
		return out
	default:
		return t.Span(Range{Start: n.Lhs, End: n.Rhs})
	}
}

// FunctionProtoView is the resolved shape of any of the four
// arity-specialized function-prototype tags (spec.md §4.3).
type FunctionProtoView struct {
	Identifier uint32 // 0 for an anonymous function-type expression
	Params     []Index
	Returns    []Index
	Specifiers []Index
}

// FunctionProto resolves a FunctionProtoSimple/One/Multi/(plain) node.
func (t *Tree) FunctionProto(i Index) FunctionProtoView {
	n := t.Node(i)
	switch n.Tag {
	case FunctionProtoSimple:
		// Lhs = sole param or 0, Rhs = identifier token or 0, no returns.
		v := FunctionProtoView{Identifier: n.Rhs}
		if p, ok := optIndex(n.Lhs); ok {
			v.Params = []Index{p}
		}
		return v
	case FunctionProtoOne:
		rec := DecodeFnProtoOne(t, n.Lhs)
		v := FunctionProtoView{Identifier: rec.Identifier}
		if p, ok := optIndex(rec.Param); ok {
			v.Params = []Index{p}
		}
		v.Specifiers = t.specifierSpan(rec.Specifiers)
		return v
	case FunctionProtoMulti:
		// Lhs/Rhs directly span the params in ExtraData (no returns). The
		// node has no slot for the name, so it is read from the token after
		// a `function` keyword.
		v := FunctionProtoView{Params: t.Span(Range{Start: n.Lhs, End: n.Rhs})}
		if next := n.MainToken + 1; int(next) < len(t.Tokens) &&
			t.Tokens[n.MainToken].Tag == token.KwFunction && t.Tokens[next].Tag == token.Identifier {
			v.Identifier = next
		}
		return v
	case FunctionProto:
		rec := DecodeFnProto(t, n.Lhs)
		v := FunctionProtoView{
			Identifier: rec.Identifier,
			Params:     t.Span(Range{Start: rec.ParamsStart, End: rec.ParamsEnd}),
			Returns:    t.Span(Range{Start: rec.ReturnsStart, End: rec.ReturnsEnd}),
		}
		v.Specifiers = t.specifierSpan(rec.Specifiers)
		return v
	default:
		return FunctionProtoView{}
	}
}

func (t *Tree) specifierSpan(base ExtraIndex) []Index {
	if base == 0 {
		return nil
	}
	d := t.ExtraDataAt(base, 2)
	return t.Span(Range{Start: d[0], End: d[1]})
}

// FunctionDeclView pairs a resolved prototype with its body (nil if the
// declaration is a prototype-only `;`).
type FunctionDeclView struct {
	Proto FunctionProtoView
	Body  Index // 0 if declaration-only
}

func (t *Tree) FunctionDecl(i Index) FunctionDeclView {
	n := t.Node(i)
	return FunctionDeclView{Proto: t.FunctionProto(n.Lhs), Body: n.Rhs}
}

// EventView is the resolved shape of an EventDecl node.
type EventView struct {
	Identifier uint32
	Params     []Index
	Anonymous  bool
}

func (t *Tree) Event(i Index) EventView {
	n := t.Node(i)
	if n.Tag == EventDecl {
		rec := DecodeEventProto(t, n.Lhs)
		return EventView{
			Identifier: n.MainToken,
			Params:     t.Span(Range{Start: rec.ParamsStart, End: rec.ParamsEnd}),
			Anonymous:  rec.Anonymous != 0,
		}
	}
	// EventParamOne: Lhs is the sole param-or-0, Rhs encodes anonymous as 0/1.
	v := EventView{Identifier: n.MainToken, Anonymous: n.Rhs != 0}
	if p, ok := optIndex(n.Lhs); ok {
		v.Params = []Index{p}
	}
	return v
}

// ErrorView mirrors EventView for ErrorDecl (errors have no anonymous
// flag).
type ErrorView struct {
	Identifier uint32
	Params     []Index
}

func (t *Tree) Error_(i Index) ErrorView {
	n := t.Node(i)
	if n.Tag == ErrorDecl {
		return ErrorView{Identifier: n.MainToken, Params: t.Span(Range{Start: n.Lhs, End: n.Rhs})}
	}
	v := ErrorView{Identifier: n.MainToken}
	if p, ok := optIndex(n.Lhs); ok {
		v.Params = []Index{p}
	}
	return v
}

// StructView resolves a StructDecl node.
type StructView struct {
	Identifier uint32
	Fields     []Index
}

func (t *Tree) Struct(i Index) StructView {
	n := t.Node(i)
	return StructView{Identifier: n.MainToken + 1, Fields: t.BlockChildren(n.Rhs)}
}

// EnumView resolves an EnumDecl node.
type EnumView struct {
	Identifier uint32
	Members    []uint32 // member name tokens
}

func (t *Tree) Enum(i Index) EnumView {
	n := t.Node(i)
	raw := t.Span(Range{Start: n.Lhs, End: n.Rhs})
	members := make([]uint32, len(raw))
	copy(members, raw)
	return EnumView{Identifier: n.MainToken + 1, Members: members}
}

// ImportView resolves any ImportDirective* node.
type ImportView struct {
	PathToken uint32
	Alias     uint32          // 0 if unaliased / not applicable
	Star      bool            // `import * as alias from "path"`
	Symbols   []ImportSymbol  // non-nil only for ImportDirectiveSymbols
}

func (t *Tree) Import(i Index) ImportView {
	n := t.Node(i)
	switch n.Tag {
	case ImportDirectivePath:
		return ImportView{PathToken: n.Lhs, Alias: n.Rhs}
	case ImportDirectiveStar:
		return ImportView{PathToken: n.Rhs, Alias: n.Lhs, Star: true}
	case ImportDirectiveOneSymbol:
		return ImportView{PathToken: n.Rhs, Symbols: []ImportSymbol{{Symbol: n.MainToken, Alias: n.Lhs}}}
	case ImportDirectiveSymbols:
		d := t.ExtraDataAt(n.Lhs, 3)
		syms := t.Span(Range{Start: d[1], End: d[2]})
		out := make([]ImportSymbol, len(syms))
		for idx, base := range syms {
			out[idx] = DecodeImportSymbol(t, base)
		}
		return ImportView{PathToken: d[0], Symbols: out}
	default:
		return ImportView{}
	}
}

// ModifierInvocationView resolves a specifier-list entry that names a
// modifier invocation (bare identifier or call-with-args).
type ModifierInvocationView struct {
	Identifier uint32
	Args       []Index // nil for a bare invocation
}

func (t *Tree) ModifierInvocation(i Index) ModifierInvocationView {
	n := t.Node(i)
	if n.Tag == ModifierInvocationBare {
		return ModifierInvocationView{Identifier: n.MainToken}
	}
	return ModifierInvocationView{Identifier: n.MainToken, Args: t.Span(Range{Start: n.Lhs, End: n.Rhs})}
}

// MappingView resolves a MappingType node.
type MappingView struct {
	KeyType   Index
	KeyName   uint32
	ValueType Index
	ValueName uint32
}

func (t *Tree) Mapping(i Index) MappingView {
	n := t.Node(i)
	rec := DecodeMappingType(t, n.Lhs)
	return MappingView{KeyType: rec.KeyType, KeyName: rec.KeyName, ValueType: rec.ValueType, ValueName: rec.ValueName}
}

// IfView resolves IfSimple/IfElse into one shape.
type IfView struct {
	Condition Index
	Then      Index
	Else      Index // 0 if there is no else branch
}

func (t *Tree) If(i Index) IfView {
	n := t.Node(i)
	if n.Tag == IfSimple {
		return IfView{Condition: n.Lhs, Then: n.Rhs}
	}
	rec := DecodeIf(t, n.Rhs)
	return IfView{Condition: n.Lhs, Then: rec.Then, Else: rec.Else}
}

// ForView resolves ForStatement.
type ForView struct {
	Init, Condition, Post Index
	Body                  Index
}

func (t *Tree) For(i Index) ForView {
	n := t.Node(i)
	rec := DecodeFor(t, n.Lhs)
	return ForView{Init: rec.ConditionOne, Condition: rec.ConditionTwo, Post: rec.ConditionThree, Body: n.Rhs}
}

// TryView resolves TryStatement.
type TryView struct {
	Returns    Index
	Expression Index
	Block      Index
	Catches    []Index // CatchClause node indices, in source order
}

func (t *Tree) Try(i Index) TryView {
	n := t.Node(i)
	rec := DecodeTry(t, n.Lhs)
	return TryView{
		Returns:    rec.Returns,
		Expression: rec.Expression,
		Block:      rec.Block,
		Catches:    t.Span(Range{Start: rec.CatchesStart, End: rec.CatchesEnd}),
	}
}

// CatchView resolves one CatchClause. Real Solidity catch clauses carry at
// most one parameter (e.g. `catch Error(string memory reason)` or the
// bare `catch (bytes memory lowLevelData)` form), so unlike the event/
// error/function families there is no multi-param variant to fold in.
type CatchView struct {
	Identifier uint32 // 0 for an unnamed/typeless catch
	Param      Index  // 0 if the catch takes no parameter
	Block      Index
}

func (t *Tree) Catch(i Index) CatchView {
	n := t.Node(i)
	v := CatchView{Identifier: n.MainToken, Param: n.Lhs, Block: n.Rhs}
	// An unnamed clause carries the `catch` keyword as its MainToken.
	if int(n.MainToken) < len(t.Tokens) && t.Tokens[n.MainToken].Tag == token.KwCatch {
		v.Identifier = 0
	}
	return v
}

// UsingDirectiveView resolves a UsingDirective node.
type UsingDirectiveView struct {
	Library   uint32 // library identifier token
	ForType   Index  // 0 means `using L for *`
	IsGlobal  bool
}

func (t *Tree) UsingDirective(i Index) UsingDirectiveView {
	n := t.Node(i)
	return UsingDirectiveView{Library: n.MainToken + 1, ForType: n.Lhs, IsGlobal: n.Rhs != 0}
}

// TypeAliasView resolves a TypeAliasDecl node (`type Foo is uint256;`).
type TypeAliasView struct {
	Identifier uint32
	Underlying Index
}

func (t *Tree) TypeAlias(i Index) TypeAliasView {
	n := t.Node(i)
	return TypeAliasView{Identifier: n.MainToken + 1, Underlying: n.Rhs}
}

// ConstVarView resolves a ConstVarDecl node.
type ConstVarView struct {
	Type       Index
	Identifier uint32
	Value      Index
}

func (t *Tree) ConstVar(i Index) ConstVarView {
	n := t.Node(i)
	return ConstVarView{Type: n.Lhs, Identifier: n.MainToken, Value: n.Rhs}
}

// VarDeclTuple resolves a VarDeclTupleStatement node: the component slots
// (0 for an omitted slot, e.g. the middle of `(T1 a, , T3 c)`) and the
// right-hand-side expression.
func (t *Tree) VarDeclTuple(i Index) (components []Index, value Index) {
	n := t.Node(i)
	rec := DecodeVarDeclTuple(t, n.Lhs)
	return t.Span(Range{Start: rec.ComponentsStart, End: rec.ComponentsEnd}), rec.Value
}

// StateVarView resolves a StateVarDecl node.
type StateVarView struct {
	Type       Index
	Identifier uint32
	Specifiers []uint32 // qualifier token indices, not node indices
	Value      Index
}

func (t *Tree) StateVar(i Index) StateVarView {
	n := t.Node(i)
	rec := DecodeStateVar(t, n.Lhs)
	return StateVarView{
		Type:       rec.Type,
		Identifier: n.MainToken,
		Specifiers: toUint32Slice(t.Span(Range{Start: rec.SpecifiersStart, End: rec.SpecifiersEnd})),
		Value:      rec.Value,
	}
}

// YulFnDeclView resolves a YulFnDecl node.
type YulFnDeclView struct {
	Identifier uint32
	Params     []uint32 // Yul params are bare identifiers, not typed Param nodes
	Returns    []uint32
	Body       Index
}

func (t *Tree) YulFnDecl(i Index) YulFnDeclView {
	n := t.Node(i)
	proto := t.Node(n.Lhs)
	switch proto.Tag {
	case YulFnProtoSimple:
		v := YulFnDeclView{Identifier: proto.MainToken, Body: n.Rhs}
		if proto.Lhs != 0 {
			v.Params = []uint32{proto.Lhs}
		}
		if proto.Rhs != 0 {
			v.Returns = []uint32{proto.Rhs}
		}
		return v
	default:
		rec := DecodeYulFullFnProto(t, proto.Lhs)
		params := t.Span(Range{Start: rec.ParamsStart, End: rec.ParamsEnd})
		returns := t.Span(Range{Start: rec.ReturnsStart, End: rec.ReturnsEnd})
		v := YulFnDeclView{Identifier: rec.Identifier, Body: n.Rhs}
		v.Params = toUint32Slice(params)
		v.Returns = toUint32Slice(returns)
		return v
	}
}

func toUint32Slice(idx []Index) []uint32 {
	out := make([]uint32, len(idx))
	copy(out, idx)
	return out
}

// ParamView resolves a Param node (used in function/event/error parameter
// lists and struct fields).
type ParamView struct {
	Type       Index
	Identifier uint32 // 0 for an unnamed parameter
}

func (t *Tree) Param(i Index) ParamView {
	n := t.Node(i)
	return ParamView{Type: n.Lhs, Identifier: n.MainToken}
}

// FieldAccess resolves `base.name`: the base expression and the name
// token (held directly, not wrapped in its own Identifier node).
func (t *Tree) FieldAccess(i Index) (base Index, nameToken uint32) {
	n := t.Node(i)
	return n.Lhs, n.Rhs
}

// IdentifierPath resolves an `a.b.c` type-position path the same way.
func (t *Tree) IdentifierPath(i Index) (base Index, nameToken uint32) {
	n := t.Node(i)
	return n.Lhs, n.Rhs
}

// IndexAccess resolves `base[index]`; index is 0 for the dynamic-array
// form `base[]` (only valid in type position, never as a value expr).
func (t *Tree) IndexAccess(i Index) (base Index, index Index) {
	n := t.Node(i)
	return n.Lhs, n.Rhs
}

// IndexRangeAccess resolves `base[start:end]`; either bound may be 0.
func (t *Tree) IndexRangeAccess(i Index) (base Index, bounds IndexRange) {
	n := t.Node(i)
	return n.Lhs, DecodeIndexRange(t, n.Rhs)
}

// ArrayType resolves `T[size]` / `T[]`; size is 0 for a dynamic array.
func (t *Tree) ArrayType(i Index) (element Index, size Index) {
	n := t.Node(i)
	return n.Lhs, n.Rhs
}

// FunctionTypeView resolves the function-type-expression families.
type FunctionTypeView struct {
	Specifiers []Index
	Params     []Index
	Returns    []Index
}

func (t *Tree) FunctionType(i Index) FunctionTypeView {
	n := t.Node(i)
	if n.Tag == FunctionTypeSimple {
		var v FunctionTypeView
		if p, ok := optIndex(n.Lhs); ok {
			v.Params = []Index{p}
		}
		v.Specifiers = t.specifierSpan(ExtraIndex(n.Rhs))
		return v
	}
	rec := DecodeFunctionType(t, n.Lhs)
	return FunctionTypeView{
		Specifiers: t.specifierSpan(rec.Specifiers),
		Params:     t.Span(Range{Start: rec.ParamsStart, End: rec.ParamsEnd}),
		Returns:    t.Span(Range{Start: rec.ReturnsStart, End: rec.ReturnsEnd}),
	}
}

// ModifierProtoView mirrors FunctionProtoView for modifier declarations
// (modifiers never have a returns list).
type ModifierProtoView struct {
	Identifier uint32
	Params     []Index
}

func (t *Tree) ModifierProto(i Index) ModifierProtoView {
	n := t.Node(i)
	switch n.Tag {
	case ModifierProtoSimple:
		v := ModifierProtoView{Identifier: n.Rhs}
		if p, ok := optIndex(n.Lhs); ok {
			v.Params = []Index{p}
		}
		return v
	case ModifierProtoOne:
		rec := DecodeFnProtoOne(t, n.Lhs)
		v := ModifierProtoView{Identifier: rec.Identifier}
		if p, ok := optIndex(rec.Param); ok {
			v.Params = []Index{p}
		}
		return v
	default: // ModifierProto
		rec := DecodeFnProto(t, n.Lhs)
		return ModifierProtoView{Identifier: rec.Identifier, Params: t.Span(Range{Start: rec.ParamsStart, End: rec.ParamsEnd})}
	}
}

// ModifierDeclView pairs a modifier prototype with its body.
type ModifierDeclView struct {
	Proto ModifierProtoView
	Body  Index
}

func (t *Tree) ModifierDecl(i Index) ModifierDeclView {
	n := t.Node(i)
	return ModifierDeclView{Proto: t.ModifierProto(n.Lhs), Body: n.Rhs}
}

// ElementaryTypeToken returns the token index naming an ElementaryType
// node's built-in type (e.g. the `uint256` keyword token).
func (t *Tree) ElementaryTypeToken(i Index) uint32 {
	return t.Node(i).MainToken
}

// IdentifierTypePathSegments walks an IdentifierTypePath chain and returns
// its dotted segments as name tokens, in source order (`a.b.c` -> [a, b,
// c]).
func (t *Tree) IdentifierTypePathSegments(i Index) []uint32 {
	n := t.Node(i)
	if n.Lhs == 0 {
		return []uint32{n.MainToken}
	}
	return append(t.IdentifierTypePathSegments(n.Lhs), n.Rhs)
}

// Call resolves any of the three call-family tags into callee + argument
// list. The many-argument form (Call) stores the callee in Lhs and, since
// a range needs two fields but only Rhs remains, an extra_data base
// pointing at the {start,end} pair in Rhs; CallStructArgs is encoded like
// CallTwo.
func (t *Tree) Call(i Index) (callee Index, args []Index) {
	n := t.Node(i)
	switch n.Tag {
	case CallTwo, CallStructArgs: // CallStructArgs is always exactly one argument
		if a, ok := optIndex(n.Rhs); ok {
			return n.Lhs, []Index{a}
		}
		return n.Lhs, nil
	default: // Call
		d := t.ExtraDataAt(n.Rhs, 2)
		return n.Lhs, t.Span(Range{Start: d[0], End: d[1]})
	}
}
