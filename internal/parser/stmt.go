package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/logger"
	"github.com/nyxlang/corec/internal/token"
)

// ParseStmts parses statements until the next TEnd ('}') or end of stream,
// skipping blank lines between them. The caller is responsible for eating
// the opening and closing braces; this mirrors parse_stmts in the original
// grammar, which is handed a defer scope by parse_func_body and loops
// until it sees the matching '}'.
func ParseStmts(ctx *Context) ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for {
		for ctx.Peek() == token.TNewline {
			ctx.I++
		}
		if ctx.Peek() == token.TEnd || ctx.Peek() == token.TNone {
			return stmts, nil
		}

		stmt, err := parseStmt(ctx)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func parseStmt(ctx *Context) (ast.Stmt, error) {
	source := ctx.PeekSource()

	switch ctx.Peek() {
	case token.TBegin:
		inner, err := parseBlock(ctx)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.Stmt{Loc: source, Data: &ast.SBlock{Stmts: inner}}, nil

	case token.TReturn:
		ctx.I++
		if ctx.Peek() == token.TNewline || ctx.Peek() == token.TEnd || ctx.Peek() == token.TNone {
			return ast.Stmt{Loc: source, Data: &ast.SReturn{}}, nil
		}
		value, err := ParseExpr(ctx)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.Stmt{Loc: source, Data: &ast.SReturn{ValueOrNil: &value}}, nil

	case token.TBreak:
		ctx.I++
		label := ""
		if ctx.Peek() == token.TWord {
			label, _ = ctx.Tokens.PayloadAt(ctx.I).(string)
			ctx.I++
		}
		return ast.Stmt{Loc: source, Data: &ast.SBreak{Label: label}}, nil

	case token.TContinue:
		ctx.I++
		label := ""
		if ctx.Peek() == token.TWord {
			label, _ = ctx.Tokens.PayloadAt(ctx.I).(string)
			ctx.I++
		}
		return ast.Stmt{Loc: source, Data: &ast.SContinue{Label: label}}, nil

	case token.TIf:
		return parseIf(ctx, source)

	case token.TWhile:
		return parseWhile(ctx, source, "")

	case token.TDefine, token.TStatic:
		return parseLocal(ctx, source)

	case token.TWord:
		if ctx.PeekAt(1) == token.TColon && ctx.PeekAt(2) == token.TWhile {
			label, _ := ctx.Tokens.PayloadAt(ctx.I).(string)
			ctx.I += 2 // eat label and ':'
			return parseWhile(ctx, source, label)
		}
		return parseExprOrAssignStmt(ctx, source)

	default:
		return parseExprOrAssignStmt(ctx, source)
	}
}

func parseBlock(ctx *Context) ([]ast.Stmt, error) {
	if err := ctx.Eat(token.TBegin, "Expected '{' to begin block"); err != nil {
		return nil, err
	}
	stmts, err := ParseStmts(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Eat(token.TEnd, "Expected '}' to close block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func parseIf(ctx *Context, source logger.Loc) (ast.Stmt, error) {
	ctx.I++ // eat 'if'

	cond, err := ParseExpr(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	thenBody, err := parseBlock(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	var elseBody []ast.Stmt
	if ctx.Peek() == token.TElse {
		ctx.I++
		if ctx.Peek() == token.TIf {
			nested, err := parseIf(ctx, ctx.PeekSource())
			if err != nil {
				return ast.Stmt{}, err
			}
			elseBody = []ast.Stmt{nested}
		} else {
			elseBody, err = parseBlock(ctx)
			if err != nil {
				return ast.Stmt{}, err
			}
		}
	}

	return ast.Stmt{Loc: source, Data: &ast.SIf{Cond: cond, Then: thenBody, Else: elseBody}}, nil
}

func parseWhile(ctx *Context, source logger.Loc, label string) (ast.Stmt, error) {
	ctx.I++ // eat 'while'

	cond, err := ParseExpr(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	body, err := parseBlock(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	return ast.Stmt{Loc: source, Data: &ast.SWhile{Label: label, Cond: cond, Body: body}}, nil
}

// parseLocal handles a local variable declaration of the form
// `define name Type` or `define name Type = expr`. Unlike function
// arguments, local declarations are not backfilled: each is self-contained.
func parseLocal(ctx *Context, source logger.Loc) (ast.Stmt, error) {
	ctx.I++ // eat 'define' or 'static'

	name, err := ctx.TakeWord("Expected variable name")
	if err != nil {
		return ast.Stmt{}, err
	}

	typ, err := ParseType(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	var init *ast.Expr
	if ctx.Peek() == token.TAssign {
		ctx.I++
		value, err := ParseExpr(ctx)
		if err != nil {
			return ast.Stmt{}, err
		}
		init = &value
	}

	return ast.Stmt{Loc: source, Data: &ast.SLocal{Name: name, Type: typ, Init: init}}, nil
}

// parseExprOrAssignStmt parses a bare expression statement, or an
// assignment if the expression is immediately followed by '='.
func parseExprOrAssignStmt(ctx *Context, source logger.Loc) (ast.Stmt, error) {
	target, err := ParseExpr(ctx)
	if err != nil {
		return ast.Stmt{}, err
	}

	if ctx.Peek() == token.TAssign {
		ctx.I++
		value, err := ParseExpr(ctx)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.Stmt{Loc: source, Data: &ast.SAssign{Target: target, Value: value}}, nil
	}

	return ast.Stmt{Loc: source, Data: &ast.SExpr{Value: target}}, nil
}
