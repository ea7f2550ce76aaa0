package parser

import (
	"strconv"
	"strings"

	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/token"
)

// ParseType parses one AST type: zero or more pointer/array prefixes
// followed by an innermost base, polymorph, or generic-base element
// (spec.md §3 "AST Types"). The result is read outside-in, matching the
// element order spec.md requires.
func ParseType(ctx *Context) (ast.Type, error) {
	var elems []ast.Element

	for {
		switch ctx.Peek() {
		case token.TMultiply:
			ctx.I++
			elems = append(elems, &ast.ElemPointer{})
			continue
		case token.TBracketOpen:
			elem, err := parseArrayElement(ctx)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			continue
		}
		break
	}

	innermost, err := parseInnermostTypeElement(ctx)
	if err != nil {
		return nil, err
	}
	elems = append(elems, innermost)

	t := ast.Type(elems)
	ast.CollapsePolycountVarFixedArrays(t, polycountExprName)
	return t, nil
}

// polycountExprName reports whether exprText is the canonical rendering of
// a polycount expression ("$#Name"), returning the bare name if so.
func polycountExprName(exprText string) (string, bool) {
	if strings.HasPrefix(exprText, "$#") {
		return exprText[2:], true
	}
	return "", false
}

func parseArrayElement(ctx *Context) (ast.Element, error) {
	if err := ctx.Eat(token.TBracketOpen, "Expected '[' to begin array type"); err != nil {
		return nil, err
	}

	if ctx.Peek() == token.TPolycount {
		ctx.I++
		name, err := ctx.TakeWord("Expected name after '$#' in array length")
		if err != nil {
			return nil, err
		}
		if err := ctx.Eat(token.TBracketClose, "Expected ']' after array length"); err != nil {
			return nil, err
		}
		return &ast.ElemVarFixedArray{ExprText: "$#" + name}, nil
	}

	if ctx.Peek() == token.TGenericInt {
		raw, _ := ctx.Tokens.PayloadAt(ctx.I).(string)
		length, convErr := strconv.ParseUint(raw, 10, 64)
		ctx.I++
		if err := ctx.Eat(token.TBracketClose, "Expected ']' after array length"); err != nil {
			return nil, err
		}
		if convErr != nil {
			return nil, ctx.Panicf("Invalid fixed array length '%s'", raw)
		}
		return &ast.ElemFixedArray{Length: length}, nil
	}

	// Fallback: an arbitrary length expression. Evaluating it is out of
	// scope for this core (spec.md §1 Non-goals); record the concatenated
	// token kind names (Kind.String(), e.g. "TWordTAddTGenericInt"). Token
	// payloads such as identifier or literal text are not recorded.
	var raw strings.Builder
	for ctx.Peek() != token.TBracketClose && ctx.Peek() != token.TNone {
		raw.WriteString(ctx.Peek().String())
		ctx.I++
	}
	if err := ctx.Eat(token.TBracketClose, "Expected ']' after array length"); err != nil {
		return nil, err
	}
	return &ast.ElemVarFixedArray{ExprText: raw.String()}, nil
}

func parseInnermostTypeElement(ctx *Context) (ast.Element, error) {
	switch ctx.Peek() {
	case token.TPolymorph:
		ctx.I++
		name, err := ctx.TakeWord("Expected name after '$' in polymorphic type")
		if err != nil {
			return nil, err
		}
		return &ast.ElemPolymorph{Name: name, AllowAutoConversion: false}, nil

	case token.TLessThan:
		ctx.I++
		var generics []ast.Type
		for {
			if err := ctx.Eat(token.TPolymorph, "Expected '$' before generic type parameter name"); err != nil {
				return nil, err
			}
			name, err := ctx.TakeWord("Expected generic type parameter name")
			if err != nil {
				return nil, err
			}
			generics = append(generics, ast.MakePolymorph(name, false))
			if ctx.Peek() == token.TNext {
				ctx.I++
				continue
			}
			break
		}
		if err := ctx.Eat(token.TGreaterThan, "Expected '>' after generic type parameters"); err != nil {
			return nil, err
		}
		name, err := ctx.TakeWord("Expected struct name after generic type parameters")
		if err != nil {
			return nil, err
		}
		return &ast.ElemGenericBase{Name: name, Generics: generics}, nil

	case token.TWord:
		name, err := ctx.TakeWord("Expected type")
		if err != nil {
			return nil, err
		}
		return &ast.ElemBase{Name: name}, nil

	default:
		return nil, ctx.Panicf("Expected type")
	}
}
