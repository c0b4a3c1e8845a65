package ast

// This file holds the named extra_data record shapes from spec.md §3.3:
// fixed-order tuples of uint32 fields, encoded by appending them in that
// order (Encode) and decoded by reading the same fields back (the Decode*
// functions in accessors.go). None of these carry pointers or
// variable-length payloads of their own — a record that needs a child list
// stores a Range into ExtraData, not the list inline.

// FnProto is the extra_data payload for FunctionProto (many params, with a
// returns list): the parameter list, the declared identifier token (0 for
// an anonymous function type), and the returns list.
type FnProto struct {
	Specifiers ExtraIndex // index of a SpecifierList's Range, or 0
	Identifier uint32     // token index, or 0
	ParamsStart, ParamsEnd uint32
	ReturnsStart, ReturnsEnd uint32
}

// Encode appends f's fields in fixed order and returns the record's base
// index.
func (f FnProto) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(f.Specifiers, f.Identifier, f.ParamsStart, f.ParamsEnd, f.ReturnsStart, f.ReturnsEnd)
}

// DecodeFnProto reads back a FnProto previously written at base.
func DecodeFnProto(t *Tree, base ExtraIndex) FnProto {
	d := t.ExtraDataAt(base, 6)
	return FnProto{Specifiers: d[0], Identifier: d[1], ParamsStart: d[2], ParamsEnd: d[3], ReturnsStart: d[4], ReturnsEnd: d[5]}
}

// FnProtoOne is the compact form for a single parameter and no returns.
type FnProtoOne struct {
	Param      Index
	Specifiers ExtraIndex
	Identifier uint32
}

func (f FnProtoOne) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(f.Param, f.Specifiers, f.Identifier)
}

func DecodeFnProtoOne(t *Tree, base ExtraIndex) FnProtoOne {
	d := t.ExtraDataAt(base, 3)
	return FnProtoOne{Param: d[0], Specifiers: d[1], Identifier: d[2]}
}

// ContractInheritance is the extra_data payload for the multi-parent
// inheritance list form; ContractInheritanceOne's single parent lives
// directly in the node's Lhs slot and needs no record.
type ContractInheritance struct {
	Identifier               uint32
	InheritanceStart, InheritanceEnd uint32
}

func (c ContractInheritance) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(c.Identifier, c.InheritanceStart, c.InheritanceEnd)
}

func DecodeContractInheritance(t *Tree, base ExtraIndex) ContractInheritance {
	d := t.ExtraDataAt(base, 3)
	return ContractInheritance{Identifier: d[0], InheritanceStart: d[1], InheritanceEnd: d[2]}
}

// EventProto is the extra_data payload for EventDecl.
type EventProto struct {
	ParamsStart, ParamsEnd uint32
	Anonymous              uint32 // 0 or 1, stored as uint32 to stay POD
}

func (e EventProto) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(e.ParamsStart, e.ParamsEnd, e.Anonymous)
}

func DecodeEventProto(t *Tree, base ExtraIndex) EventProto {
	d := t.ExtraDataAt(base, 3)
	return EventProto{ParamsStart: d[0], ParamsEnd: d[1], Anonymous: d[2]}
}

// ImportSymbol is one entry of an ImportDirectiveSymbols list: the
// imported name token and its local alias token (0 if unaliased).
type ImportSymbol struct {
	Symbol uint32
	Alias  uint32
}

func (s ImportSymbol) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(s.Symbol, s.Alias)
}

func DecodeImportSymbol(t *Tree, base ExtraIndex) ImportSymbol {
	d := t.ExtraDataAt(base, 2)
	return ImportSymbol{Symbol: d[0], Alias: d[1]}
}

// If is the extra_data payload for IfElse: the then-branch and the
// else-branch (which may itself be another IfElse/IfSimple for an
// `else if` chain). IfSimple (no else) keeps its then-branch directly in
// Rhs and needs no record.
type If struct {
	Then Index
	Else Index
}

func (i If) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(i.Then, i.Else)
}

func DecodeIf(t *Tree, base ExtraIndex) If {
	d := t.ExtraDataAt(base, 2)
	return If{Then: d[0], Else: d[1]}
}

// For is the extra_data payload for ForStatement: the three clauses, each
// 0 if empty (`for (;;)`). The loop body lives in the node's Rhs.
type For struct {
	ConditionOne   Index // init statement
	ConditionTwo   Index // condition expression
	ConditionThree Index // post expression
}

func (f For) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(f.ConditionOne, f.ConditionTwo, f.ConditionThree)
}

func DecodeFor(t *Tree, base ExtraIndex) For {
	d := t.ExtraDataAt(base, 3)
	return For{ConditionOne: d[0], ConditionTwo: d[1], ConditionThree: d[2]}
}

// Try is the extra_data payload for TryStatement: the optional `returns`
// param-list node, the guarded expression (almost always a call), the
// `try` block, and the span of CatchClause nodes that follow it (Solidity
// requires at least one, but the span may be read generically).
type Try struct {
	Returns             Index
	Expression          Index
	Block               Index
	CatchesStart, CatchesEnd uint32
}

func (t2 Try) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(t2.Returns, t2.Expression, t2.Block, t2.CatchesStart, t2.CatchesEnd)
}

func DecodeTry(t *Tree, base ExtraIndex) Try {
	d := t.ExtraDataAt(base, 5)
	return Try{Returns: d[0], Expression: d[1], Block: d[2], CatchesStart: d[3], CatchesEnd: d[4]}
}

// MappingType is the extra_data payload for MappingType nodes: key and
// value type expressions, plus their optional named-component tokens (0 if
// absent). The value type may itself be another MappingType node, nested
// without an intervening semicolon.
type MappingType struct {
	KeyType    Index
	KeyName    uint32
	ValueType  Index
	ValueName  uint32
}

func (m MappingType) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(m.KeyType, m.KeyName, m.ValueType, m.ValueName)
}

func DecodeMappingType(t *Tree, base ExtraIndex) MappingType {
	d := t.ExtraDataAt(base, 4)
	return MappingType{KeyType: d[0], KeyName: d[1], ValueType: d[2], ValueName: d[3]}
}

// FunctionType is the extra_data payload for the function-type-expression
// form (`function(params) visibility mutability returns (params)`), used
// when neither the simple nor the one-param compact form applies.
type FunctionType struct {
	Specifiers               ExtraIndex
	ParamsStart, ParamsEnd   uint32
	ReturnsStart, ReturnsEnd uint32
}

func (f FunctionType) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(f.Specifiers, f.ParamsStart, f.ParamsEnd, f.ReturnsStart, f.ReturnsEnd)
}

func DecodeFunctionType(t *Tree, base ExtraIndex) FunctionType {
	d := t.ExtraDataAt(base, 5)
	return FunctionType{Specifiers: d[0], ParamsStart: d[1], ParamsEnd: d[2], ReturnsStart: d[3], ReturnsEnd: d[4]}
}

// YulFullFnProto is the extra_data payload for a Yul function definition
// with both parameters and return variables.
type YulFullFnProto struct {
	Identifier               uint32
	ParamsStart, ParamsEnd   uint32
	ReturnsStart, ReturnsEnd uint32
}

func (y YulFullFnProto) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(y.Identifier, y.ParamsStart, y.ParamsEnd, y.ReturnsStart, y.ReturnsEnd)
}

func DecodeYulFullFnProto(t *Tree, base ExtraIndex) YulFullFnProto {
	d := t.ExtraDataAt(base, 5)
	return YulFullFnProto{Identifier: d[0], ParamsStart: d[1], ParamsEnd: d[2], ReturnsStart: d[3], ReturnsEnd: d[4]}
}

// YulFor is the extra_data payload for YulFor: the init block, the
// condition expression, and the post block. The loop body lives in Rhs.
type YulFor struct {
	Init      Index
	Condition Index
	Post      Index
}

func (y YulFor) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(y.Init, y.Condition, y.Post)
}

func DecodeYulFor(t *Tree, base ExtraIndex) YulFor {
	d := t.ExtraDataAt(base, 3)
	return YulFor{Init: d[0], Condition: d[1], Post: d[2]}
}

// StateVar is the extra_data payload for StateVarDecl: the declared type,
// the span of qualifier specifier tokens (public, constant, immutable,
// ...), and the optional initializer expression (0 if absent). The
// identifier itself stays in the node's MainToken.
type StateVar struct {
	Type             Index
	SpecifiersStart, SpecifiersEnd uint32
	Value            Index
}

func (s StateVar) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(s.Type, s.SpecifiersStart, s.SpecifiersEnd, s.Value)
}

func DecodeStateVar(t *Tree, base ExtraIndex) StateVar {
	d := t.ExtraDataAt(base, 4)
	return StateVar{Type: d[0], SpecifiersStart: d[1], SpecifiersEnd: d[2], Value: d[3]}
}

// YulSwitch is the extra_data payload for YulSwitch: the switched-on
// expression and the span of YulSwitchCase/YulSwitchDefault children.
type YulSwitch struct {
	Expr                 Index
	CasesStart, CasesEnd uint32
}

func (y YulSwitch) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(y.Expr, y.CasesStart, y.CasesEnd)
}

func DecodeYulSwitch(t *Tree, base ExtraIndex) YulSwitch {
	d := t.ExtraDataAt(base, 3)
	return YulSwitch{Expr: d[0], CasesStart: d[1], CasesEnd: d[2]}
}

// VarDeclTuple is the extra_data payload for VarDeclTupleStatement: the
// destructured component list (Param-or-0 entries, one per slot including
// omitted ones) and the right-hand-side expression.
type VarDeclTuple struct {
	ComponentsStart, ComponentsEnd uint32
	Value                          Index
}

func (v VarDeclTuple) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(v.ComponentsStart, v.ComponentsEnd, v.Value)
}

func DecodeVarDeclTuple(t *Tree, base ExtraIndex) VarDeclTuple {
	d := t.ExtraDataAt(base, 3)
	return VarDeclTuple{ComponentsStart: d[0], ComponentsEnd: d[1], Value: d[2]}
}

// IndexRange is the extra_data payload for IndexRangeAccess (`base[a:b]`);
// either bound may be 0 (absent).
type IndexRange struct {
	Start Index
	End   Index
}

func (r IndexRange) Encode(t *Tree) ExtraIndex {
	return t.AddExtraData(r.Start, r.End)
}

func DecodeIndexRange(t *Tree, base ExtraIndex) IndexRange {
	d := t.ExtraDataAt(base, 2)
	return IndexRange{Start: d[0], End: d[1]}
}
