// Package ast implements the struct-of-arrays AST arena described in
// spec.md §3: nodes, extra-data cells, and diagnostics are owned by one
// Tree and referenced everywhere by uint32 index, never by pointer.
package ast

// Index refers to a node in a Tree. The zero Index is the sentinel "no
// node" (spec.md §3.2's invariant); a populated Tree's root occupies
// index 0's *slot* only after the parser finishes, per spec.md §4.3.
type Index = uint32

// ExtraIndex refers to the first field of a record appended to a Tree's
// ExtraData vector.
type ExtraIndex = uint32

// Tag is the closed enumeration of node kinds, including the
// arity-specialized families spec.md §3.2 requires (a "_two" variant whose
// payload fits in Lhs/Rhs directly, and a plain variant whose payload is an
// extra_data range) so two uint32 slots stay sufficient for the dominant
// small-arity case.
type Tag int

const (
	// Root occupies index 0's slot; its Lhs/Rhs span the top-level
	// source-unit node list in ExtraData (an empty range for an empty
	// file).
	Root Tag = iota

	// Source units.
	PragmaDirective
	ImportDirectivePath  // import "path" [as alias];
	ImportDirectiveStar  // import * as alias from "path";
	ImportDirectiveOneSymbol
	ImportDirectiveSymbols // import {a, b as c} from "path";

	ContractDecl
	AbstractContractDecl
	InterfaceDecl
	LibraryDecl
	ContractInheritanceOne
	ContractInheritance

	ContractBlockTwo          // 0..2 children directly in Lhs/Rhs
	ContractBlockTwoSemicolon // same, trailing ';' noted via MainToken
	ContractBlock             // >=3 children, ExtraData range
	ContractBlockSemicolon

	StructDecl
	StructFieldList // extra_data range of field nodes
	StructField

	EnumDecl
	EnumMemberList // identifier-only list, stored as extra_data range

	EventDecl    // extra_data EventProto{params_start,params_end,anonymous}; MainToken = name
	EventParamOne // Lhs = sole param-or-0, Rhs = anonymous flag (0/1); MainToken = name

	ErrorDecl    // Lhs/Rhs = extra_data param range; MainToken = name
	ErrorParamOne // Lhs = sole param-or-0; MainToken = name

	UsingDirective

	TypeAliasDecl // `type Foo is uint256;`

	ConstVarDecl // top-level `T constant NAME = expr;` (contract-level constants are StateVarDecl)
	StateVarDecl // extra_data StateVar{type,specifiers_start,specifiers_end,value}; MainToken = name

	ModifierProtoSimple // zero/one param, no specifiers; Lhs = sole param-or-0, Rhs = identifier
	ModifierProtoOne
	ModifierProto
	ModifierDecl // Lhs = proto, Rhs = block

	FunctionProtoSimple // zero/one param, no returns
	FunctionProtoOne    // zero/one param, no returns, with specifiers
	FunctionProtoMulti  // many params, no returns
	FunctionProto       // many params, returns
	FunctionDecl        // Lhs = proto, Rhs = block (0 if decl-only)

	ConstructorProto
	ConstructorDecl

	FallbackProto
	FallbackDecl
	ReceiveProto
	ReceiveDecl

	SpecifierList // extra_data range of specifier tokens/modifier-invocations
	ModifierInvocationBare
	ModifierInvocationCall

	// Statements.
	BlockTwo
	BlockTwoSemicolon
	Block
	BlockSemicolon

	ExprStatement
	VarDeclStatement    // `T name [= expr];` inside a function body
	VarDeclTupleStatement // `(T1 a, , T3 c) = expr;`; extra_data VarDeclTuple{components_start,components_end,value}

	IfSimple // no else; extra_data unused, Rhs = then-branch
	IfElse   // extra_data If{then,else}

	ForStatement    // extra_data For{init,cond,post}; Rhs = body
	WhileStatement  // Lhs = cond, Rhs = body
	DoWhileStatement // Lhs = body, Rhs = cond

	BreakStatement
	ContinueStatement
	ReturnValue
	ReturnVoid
	EmitStatement
	RevertStatement // `revert Error(args);` or `revert("reason");`
	ThrowStatement

	TryStatement // extra_data Try{returns,expr,block,catches_start,catches_end}
	CatchClause  // MainToken = identifier, or the `catch` keyword when unnamed; Lhs = param-or-0, Rhs = block

	UncheckedBlock
	AssemblyDecl // Lhs = flags-string-or-0, Rhs = yul block

	AssignStatement // generic `lhs op= rhs` / `lhs = rhs` as a statement wrapper (rare; usually ExprStatement wraps assign exprs)

	// Expressions.
	Identifier
	IdentifierPath // field_access chain a.b.c; Lhs = base, Rhs = identifier token index (via MainToken of rhs not used — rhs holds sub Index)
	NumberLiteral
	NumberLiteralUnit // Lhs = number node, MainToken = unit token
	StringLiteral
	BoolLiteral

	TupleInitTwo
	TupleInit
	ArrayInitTwo
	ArrayInit
	StructInitTwo
	StructInit
	StructInitField // `ident: expr`; MainToken = ident, Lhs = value expr

	CallTwo // Lhs = callee, Rhs = sole arg (0 if none)
	Call    // Lhs = callee, Rhs = extra_data base of a {start,end} arg-range pair
	CallStructArgs // call whose sole argument is a struct initializer; same encoding as CallTwo

	NewExpr     // `new T`
	TypeExpr    // `type(T)`
	PayableCall // `payable(expr)`

	FieldAccess   // Lhs = base expr, Rhs = member name token index
	IndexAccess   // Lhs = base, Rhs = index expr or 0 (dynamic `[]`)
	IndexRangeAccess // Lhs = base, extra_data {start,end} (slice `[a:b]`)

	PostIncrement
	PostDecrement
	PreIncrement
	PreDecrement
	UnaryPlus
	UnaryMinus
	UnaryNot
	UnaryBitNot
	UnaryDelete

	// Binary operators (one tag per precedence-table entry, spec.md §4.3).
	BinOrOr
	BinAndAnd
	BinEq
	BinNotEq
	BinLt
	BinGt
	BinLe
	BinGe
	BinBitAnd
	BinBitXor
	BinBitOr
	BinShl
	BinShr
	BinSar
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinMod
	BinExp // right-associative

	Conditional // `cond ? a : b`

	Assign
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignAnd
	AssignOr
	AssignXor
	AssignShl
	AssignShr
	AssignSar

	// Types.
	ElementaryType
	IdentifierTypePath
	MappingType  // extra_data MappingType{keyType,keyName,valueType,valueName}
	ArrayType    // Lhs = element type, Rhs = size expr or 0
	FunctionTypeSimple // Lhs = sole param-or-0, Rhs = specifiers-pair-base-or-0
	FunctionType // extra_data FunctionType{specifiers,params_start,params_end,returns_start,returns_end}

	Param // Lhs = type node, MainToken = identifier token or 0

	// Yul / inline assembly.
	YulBlockTwo
	YulBlock
	YulIdentifier   // MainToken = identifier token (bare reference)
	YulPath         // dotted chain a.b.c; MainToken = first token, Lhs = base-or-0, Rhs = next name token
	YulLiteralNumber // MainToken = number token
	YulLiteralString // MainToken = string token
	YulCallOne // MainToken = function name, Rhs = sole arg-or-0
	YulCall    // MainToken = function name, Lhs = extra_data base of a {start,end} arg-range pair
	YulAssignOne   // `a := expr`; Lhs = target path node, Rhs = expr
	YulAssignMulti // `a, b := expr`; Lhs = extra_data base of a {start,end} pair over the target nodes, Rhs = expr
	YulVarDeclOne   // `let x [:= expr]`; MainToken = name, Rhs = expr-or-0
	YulVarDeclMulti // `let x, y [:= expr]`; MainToken = `let`, Lhs = extra_data base of a {start,end} pair over the name tokens, Rhs = expr-or-0
	YulIf     // Lhs = cond, Rhs = block
	YulFor    // extra_data YulFor{init,cond,post}; Rhs = body
	YulSwitch // extra_data YulSwitch{expr,cases_start,cases_end}
	YulSwitchCase // Lhs = literal, Rhs = block
	YulSwitchDefault // Rhs = block
	YulLeave
	YulBreak
	YulContinue
	YulFnProtoSimple // MainToken = identifier, Lhs = sole param-or-0, Rhs = sole return-or-0
	YulFnProto       // extra_data YulFullFnProto
	YulFnDecl        // Lhs = proto, Rhs = block
)
