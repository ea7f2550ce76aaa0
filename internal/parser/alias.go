package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/token"
)

// ParseFuncAlias parses `func alias NAME (arg_types?) => TARGET`
// (spec.md §4.1.5). Callers dispatch here when they see 'func' immediately
// followed by 'alias'; both keywords are consumed here.
func ParseFuncAlias(ctx *Context) (*ast.FuncAlias, error) {
	source := ctx.PeekSource()
	ctx.I += 2 // eat 'func', 'alias'

	if len(ctx.AST.FuncAliases) >= maxFuncID {
		return nil, ctx.Panicf("Maximum number of function aliases reached")
	}

	from, err := ctx.TakeWord("Expected alias name after 'alias' keyword")
	if err != nil {
		return nil, err
	}

	argTypes, arity, requiredTraits, matchFirst, err := parseFuncAliasArgs(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Eat(token.TStrongArrow, "Expected '=>' after function alias arguments"); err != nil {
		return nil, err
	}

	to, err := ctx.TakeWord("Expected target function name after '=>'")
	if err != nil {
		return nil, err
	}

	alias := &ast.FuncAlias{
		From:             from,
		To:               to,
		ArgTypes:         argTypes,
		Arity:            arity,
		RequiredTraits:   requiredTraits,
		MatchFirstOfName: matchFirst,
		Source:           source,
	}
	ctx.AST.FuncAliases = append(ctx.AST.FuncAliases, alias)
	return alias, nil
}

// parseFuncAliasArgs parses the optional parenthesized argument-type list
// of a function alias. Omitting the list entirely means "match the first
// function named TARGET" (matchFirst = true). Within the list, a bare
// '...' marks a required vararg (C-style) target overload and a bare '..'
// marks a required variadic (native) target overload; at most one may
// appear, and only as the final entry.
func parseFuncAliasArgs(ctx *Context) (argTypes []ast.Type, arity int, requiredTraits ast.FuncTrait, matchFirst bool, err error) {
	if ctx.Peek() != token.TOpen {
		return nil, 0, ast.TraitNone, true, nil
	}
	ctx.I++ // eat '('

	for ctx.Peek() != token.TClose {
		if err := ctx.IgnoreNewlines("Expected argument type in function alias"); err != nil {
			return nil, 0, 0, false, err
		}

		switch ctx.Peek() {
		case token.TEllipsis:
			ctx.I++
			requiredTraits |= ast.TraitVararg
		case token.TRange:
			ctx.I++
			requiredTraits |= ast.TraitVariadic
		default:
			typ, terr := ParseType(ctx)
			if terr != nil {
				return nil, 0, 0, false, terr
			}
			argTypes = append(argTypes, typ)
		}

		if ctx.Peek() == token.TNext {
			if requiredTraits&(ast.TraitVararg|ast.TraitVariadic) != 0 {
				return nil, 0, 0, false, ctx.Panicf("Expected ')' after variadic argument")
			}
			ctx.I++
			continue
		}
		break
	}

	if err := ctx.Eat(token.TClose, "Expected ')' after function alias arguments"); err != nil {
		return nil, 0, 0, false, err
	}

	return argTypes, len(argTypes), requiredTraits, false, nil
}

// ParseTypeAlias parses `alias Name = Type`, distinct from a function
// alias (SPEC_FULL §3 domain expansion).
func ParseTypeAlias(ctx *Context) (*ast.TypeAlias, error) {
	source := ctx.PeekSource()
	ctx.I++ // eat 'alias'

	name, err := ctx.TakeWord("Expected name after 'alias' keyword")
	if err != nil {
		return nil, err
	}
	if err := ctx.Eat(token.TAssign, "Expected '=' after type alias name"); err != nil {
		return nil, err
	}
	target, err := ParseType(ctx)
	if err != nil {
		return nil, err
	}

	alias := &ast.TypeAlias{Name: name, Target: target, Source: source}
	ctx.AST.TypeAliases = append(ctx.AST.TypeAliases, alias)
	return alias, nil
}
