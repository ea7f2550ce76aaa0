package ast

// FuncID indexes into AST.Funcs.
type FuncID int

// PolymorphicFunc is one entry of AST.PolymorphicFuncs or
// AST.PolymorphicMethods: a pointer (by id) to a polymorphic function,
// plus a hint later consumed by an overload-grouping pass this core does
// not perform itself (spec.md §4.1.3).
type PolymorphicFunc struct {
	Name               string
	FuncID             FuncID
	IsBeginningOfGroup Troolean // starts Unknown ("uncalculated")
}
