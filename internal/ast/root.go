package ast

import "github.com/nyxlang/corec/internal/logger"

// Global is a top-level variable declaration.
type Global struct {
	Name   string
	Type   Type
	Source logger.Loc
}

// AST is the root output of the parser: every function, alias, composite,
// and global declared in one translation unit, plus the polymorphic
// indices and the at-most-once special-return-type metadata (spec.md §6).
type AST struct {
	Funcs       []*Func
	FuncAliases []*FuncAlias
	TypeAliases []*TypeAlias
	Composites  []*Composite
	Globals     []*Global

	PolymorphicFuncs   []*PolymorphicFunc
	PolymorphicMethods []*PolymorphicFunc

	VariadicArrayType   Type // nil if __variadic_array__ was never declared
	VariadicArraySource logger.Loc

	InitializerListType   Type // nil if __initializer_list__ was never declared
	InitializerListSource logger.Loc
}

// New returns an empty AST root.
func New() *AST {
	return &AST{}
}
