package parser

import (
	"strconv"

	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/token"
)

// ParseExpr parses one expression. This is the minimal closed grammar
// SPEC_FULL §2 names as necessary to drive the IR builder: primaries,
// calls, and left-associative binary operators at a single precedence
// level (sufficient for every scenario in spec.md §8; a full expression
// grammar is an out-of-scope extension of the parser, same as spec.md
// leaves most of the grammar unspecified beyond function declarations).
func ParseExpr(ctx *Context) (ast.Expr, error) {
	left, err := parsePrimary(ctx)
	if err != nil {
		return ast.Expr{}, err
	}

	for {
		op, ok := binaryOpFor(ctx.Peek())
		if !ok {
			return left, nil
		}
		opSource := ctx.PeekSource()
		ctx.I++

		right, err := parsePrimary(ctx)
		if err != nil {
			return ast.Expr{}, err
		}

		left = ast.Expr{Loc: opSource, Data: &ast.EBinary{Op: op, Left: left, Right: right}}
	}
}

func binaryOpFor(k token.Kind) (ast.BinaryOp, bool) {
	switch k {
	case token.TAdd:
		return ast.BinAdd, true
	case token.TSubtract:
		return ast.BinSubtract, true
	case token.TMultiply:
		return ast.BinMultiply, true
	case token.TDivide:
		return ast.BinDivide, true
	case token.TModulus:
		return ast.BinModulus, true
	case token.TEquals:
		return ast.BinEquals, true
	case token.TNotEquals:
		return ast.BinNotEquals, true
	case token.TLessThan:
		return ast.BinLessThan, true
	case token.TGreaterThan:
		return ast.BinGreaterThan, true
	case token.TLessThanEq:
		return ast.BinLessThanEq, true
	case token.TGreaterThanEq:
		return ast.BinGreaterThanEq, true
	default:
		return 0, false
	}
}

func parsePrimary(ctx *Context) (ast.Expr, error) {
	source := ctx.PeekSource()

	switch ctx.Peek() {
	case token.TTrue:
		ctx.I++
		return ast.Expr{Loc: source, Data: &ast.EBool{Value: true}}, nil
	case token.TFalse:
		ctx.I++
		return ast.Expr{Loc: source, Data: &ast.EBool{Value: false}}, nil
	case token.TNull:
		ctx.I++
		return ast.Expr{Loc: source, Data: &ast.ENull{}}, nil
	case token.TString:
		raw, _ := ctx.Tokens.PayloadAt(ctx.I).(string)
		ctx.I++
		return ast.Expr{Loc: source, Data: &ast.EString{Value: raw}}, nil
	case token.TGenericInt, token.TGenericFloat:
		raw, _ := ctx.Tokens.PayloadAt(ctx.I).(string)
		ctx.I++
		value, _ := strconv.ParseFloat(raw, 64)
		return ast.Expr{Loc: source, Data: &ast.ENumber{Value: value}}, nil
	case token.TPolycount:
		ctx.I++
		name, err := ctx.TakeWord("Expected name after '$#'")
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.Expr{Loc: source, Data: &ast.EPolycount{Name: name}}, nil
	case token.TOpen:
		ctx.I++
		inner, err := ParseExpr(ctx)
		if err != nil {
			return ast.Expr{}, err
		}
		if err := ctx.Eat(token.TClose, "Expected ')' to close parenthesized expression"); err != nil {
			return ast.Expr{}, err
		}
		return inner, nil
	case token.TWord:
		name, err := ctx.TakeWord("Expected expression")
		if err != nil {
			return ast.Expr{}, err
		}
		expr := ast.Expr{Loc: source, Data: &ast.EIdent{Name: name}}
		if ctx.Peek() == token.TOpen {
			return parseCallArgs(ctx, expr)
		}
		return expr, nil
	default:
		return ast.Expr{}, ctx.Panicf("Expected expression")
	}
}

func parseCallArgs(ctx *Context, target ast.Expr) (ast.Expr, error) {
	source := ctx.PeekSource()
	ctx.I++ // eat '('

	var args []ast.Expr
	for ctx.Peek() != token.TClose {
		arg, err := ParseExpr(ctx)
		if err != nil {
			return ast.Expr{}, err
		}
		args = append(args, arg)
		if ctx.Peek() == token.TNext {
			ctx.I++
			continue
		}
		break
	}
	if err := ctx.Eat(token.TClose, "Expected ')' after call arguments"); err != nil {
		return ast.Expr{}, err
	}
	return ast.Expr{Loc: source, Data: &ast.ECall{Target: target, Args: args}}, nil
}
