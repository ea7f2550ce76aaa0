package ast

import "github.com/nyxlang/corec/internal/logger"

// CompositeKind distinguishes the struct-domain flavors the parser
// dispatches on at the top level.
type CompositeKind uint8

const (
	CompositeStruct CompositeKind = iota
	CompositeUnion
	CompositeRecord
	CompositeEnum
)

// Field is one member of a composite.
type Field struct {
	Name   string
	Type   Type
	Source logger.Loc
}

// Composite is a struct/union/record/enum association. While its domain
// (methods) is being parsed, ParseContext.CompositeAssociation points at
// it, driving the implicit `this` argument insertion (spec.md §4.1.1).
type Composite struct {
	Name          string
	Kind          CompositeKind
	Source        logger.Loc
	IsPolymorphic bool
	Generics      []string // formal polymorph names, e.g. ["A", "B"]
	Fields        []Field
	IsPacked      bool
}
