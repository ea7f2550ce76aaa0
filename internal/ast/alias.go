package ast

import "github.com/nyxlang/corec/internal/logger"

// FuncAlias is `func alias NAME(arg_types?) => TARGET`. When MatchFirstOfName
// is true, ArgTypes/Arity/RequiredTraits are unused and the alias resolves
// to the first function named To; otherwise it resolves to the specific
// overload whose argument types equal ArgTypes, honoring RequiredTraits's
// vararg/variadic markers (spec.md §4.1.5).
type FuncAlias struct {
	From               string
	To                 string
	ArgTypes           []Type
	Arity              int
	RequiredTraits     FuncTrait // TraitVararg / TraitVariadic bits, if any
	MatchFirstOfName   bool
	Source             logger.Loc
}

// TypeAlias is `alias Name = Type`, a plain type-to-type rename distinct
// from FuncAlias.
type TypeAlias struct {
	Name   string
	Target Type
	Source logger.Loc
}
