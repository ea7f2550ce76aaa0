package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/token"
)

// ParseComposite parses a struct/union/record/enum declaration, optionally
// polymorphic (`<$A,$B> Name { ... }`), and its body: field declarations
// interleaved with method declarations (SPEC_FULL §3 domain expansion —
// spec.md names composite declarations as a top-level dispatch target and
// specifies only the implicit-'this' rule they drive, not their grammar).
// While the body is parsed, ctx.CompositeAssociation points at the
// in-progress Composite so ParseFunc inserts the implicit 'this' argument.
func ParseComposite(ctx *Context) (*ast.Composite, error) {
	source := ctx.PeekSource()

	var kind ast.CompositeKind
	switch ctx.Peek() {
	case token.TStruct:
		kind = ast.CompositeStruct
	case token.TUnion:
		kind = ast.CompositeUnion
	case token.TRecord:
		kind = ast.CompositeRecord
	case token.TEnum:
		kind = ast.CompositeEnum
	default:
		return nil, internalError("ParseComposite called on a non-composite keyword")
	}
	ctx.I++

	packed := false
	if ctx.Peek() == token.TPacked {
		packed = true
		ctx.I++
	}

	var generics []string
	if ctx.Peek() == token.TLessThan {
		ctx.I++
		for {
			if err := ctx.Eat(token.TPolymorph, "Expected '$' before generic type parameter name"); err != nil {
				return nil, err
			}
			name, err := ctx.TakeWord("Expected generic type parameter name")
			if err != nil {
				return nil, err
			}
			generics = append(generics, name)
			if ctx.Peek() == token.TNext {
				ctx.I++
				continue
			}
			break
		}
		if err := ctx.Eat(token.TGreaterThan, "Expected '>' after generic type parameters"); err != nil {
			return nil, err
		}
	}

	name, err := ctx.TakeWord("Expected composite name")
	if err != nil {
		return nil, err
	}

	composite := &ast.Composite{
		Name:          name,
		Kind:          kind,
		Source:        source,
		IsPolymorphic: len(generics) > 0,
		Generics:      generics,
		IsPacked:      packed,
	}

	if err := ctx.Eat(token.TBegin, "Expected '{' to begin composite body"); err != nil {
		return nil, err
	}

	ctx.CompositeAssociation = composite
	if err := parseCompositeBody(ctx, composite); err != nil {
		ctx.CompositeAssociation = nil
		return nil, err
	}
	ctx.CompositeAssociation = nil

	if err := ctx.Eat(token.TEnd, "Expected '}' to close composite body"); err != nil {
		return nil, err
	}

	ctx.AST.Composites = append(ctx.AST.Composites, composite)
	return composite, nil
}

func parseCompositeBody(ctx *Context, composite *ast.Composite) error {
	for {
		for ctx.Peek() == token.TNewline {
			ctx.I++
		}
		if ctx.Peek() == token.TEnd {
			return nil
		}

		switch ctx.Peek() {
		case token.TFunc, token.TForeign, token.TStdcall, token.TVerbatim, token.TImplicit, token.TExternal:
			if _, err := ParseFunc(ctx); err != nil {
				return err
			}
			continue
		}

		fieldSource := ctx.PeekSource()
		fieldName, err := ctx.TakeWord("Expected field name")
		if err != nil {
			return err
		}

		var fieldType ast.Type
		if composite.Kind != ast.CompositeEnum {
			fieldType, err = ParseType(ctx)
			if err != nil {
				return err
			}
		}

		composite.Fields = append(composite.Fields, ast.Field{Name: fieldName, Type: fieldType, Source: fieldSource})

		for ctx.Peek() == token.TNewline || ctx.Peek() == token.TNext {
			ctx.I++
		}
	}
}
