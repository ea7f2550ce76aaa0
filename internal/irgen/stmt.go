package irgen

import "github.com/nyxlang/corec/internal/ast"

// BuildStatements walks stmts in order, emitting instructions into
// builder's current basic block (opening/closing child block arrangements
// of its own for `if`/`while`). It is the statement-walking expansion
// SPEC_FULL §2/§4 names as the thing that actually exercises the IR
// builder's instruction set beyond spec.md's representative list.
func BuildStatements(builder *Builder, stmts []ast.Stmt) error {
	for _, s := range stmts {
		if builder.IsCurrentBlockTerminated() {
			return nil
		}
		if err := buildStmt(builder, s); err != nil {
			return err
		}
	}
	return nil
}

func buildStmt(builder *Builder, s ast.Stmt) error {
	switch d := s.Data.(type) {
	case *ast.SBlock:
		builder.OpenVarScope()
		err := BuildStatements(builder, d.Stmts)
		builder.CloseVarScope()
		return err

	case *ast.SLocal:
		v := builder.AddVariable(d.Name, d.Type)
		if d.Init != nil {
			value, err := buildExpr(builder, *d.Init)
			if err != nil {
				return err
			}
			ptr := builder.BuildVarPtr(v.Type, v.ID)
			builder.BuildStore(value, ptr)
		}
		return nil

	case *ast.SAssign:
		value, err := buildExpr(builder, d.Value)
		if err != nil {
			return err
		}
		dest, err := buildAddress(builder, d.Target)
		if err != nil {
			return err
		}
		builder.BuildStore(value, dest)
		return nil

	case *ast.SExpr:
		_, err := buildExpr(builder, d.Value)
		return err

	case *ast.SReturn:
		if d.ValueOrNil == nil {
			builder.BuildRet(nil)
			return nil
		}
		value, err := buildExpr(builder, *d.ValueOrNil)
		if err != nil {
			return err
		}
		builder.BuildRet(&value)
		return nil

	case *ast.SIf:
		return buildIfStmt(builder, d)

	case *ast.SWhile:
		return buildWhileStmt(builder, d)

	case *ast.SBreak:
		target, ok := builder.resolveLoopTarget(d.Label)
		if !ok {
			return internalErrorf("break statement has no enclosing loop to target")
		}
		builder.BuildBreak(target.breakBlockID)
		return nil

	case *ast.SContinue:
		target, ok := builder.resolveLoopTarget(d.Label)
		if !ok {
			return internalErrorf("continue statement has no enclosing loop to target")
		}
		builder.BuildBreak(target.continueBlockID)
		return nil

	default:
		return internalErrorf("unhandled statement kind %T during IR construction", s.Data)
	}
}

// buildIfStmt lowers an `if`/`else` into a then-block, an optional
// else-block, and a merge block, using CondBreak as the branch.
func buildIfStmt(builder *Builder, s *ast.SIf) error {
	cond, err := buildExpr(builder, s.Cond)
	if err != nil {
		return err
	}

	thenID := builder.BuildBasicBlock()
	hasElse := s.Else != nil
	elseID := -1
	if hasElse {
		elseID = builder.BuildBasicBlock()
	}
	mergeID := builder.BuildBasicBlock()

	falseTarget := mergeID
	if hasElse {
		falseTarget = elseID
	}
	builder.BuildCondBreak(cond, thenID, falseTarget)

	builder.BuildUsingBasicBlock(thenID)
	if err := BuildStatements(builder, s.Then); err != nil {
		return err
	}
	if !builder.IsCurrentBlockTerminated() {
		builder.BuildBreak(mergeID)
	}

	if hasElse {
		builder.BuildUsingBasicBlock(elseID)
		if err := BuildStatements(builder, s.Else); err != nil {
			return err
		}
		if !builder.IsCurrentBlockTerminated() {
			builder.BuildBreak(mergeID)
		}
	}

	builder.BuildUsingBasicBlock(mergeID)
	return nil
}

// buildWhileStmt lowers a (possibly labeled) `while` loop into a body
// block, a post-loop merge block and a header block that tests the
// condition, which is both the back-edge and the `continue` target. A
// literally-true condition is special-cased to an unconditional entry jump
// and an unconditional back-edge into the body, skipping the header/test
// block entirely — the smallest lowering that still gives `break`/`continue`
// a real target, and the one exercised by the "while true { break }" seed
// scenario (spec.md §8), which lowers to exactly two blocks (body, merge).
func buildWhileStmt(builder *Builder, s *ast.SWhile) error {
	bodyID := builder.BuildBasicBlock()
	mergeID := builder.BuildBasicBlock()

	continueID := bodyID
	if !isLiteralTrue(s.Cond) {
		continueID = builder.BuildBasicBlock()
		builder.BuildBreak(continueID)
		builder.BuildUsingBasicBlock(continueID)
	}
	if err := buildLoopEntry(builder, s.Cond, bodyID, mergeID); err != nil {
		return err
	}

	builder.BuildUsingBasicBlock(bodyID)
	builder.PushLoopLabel(s.Label, mergeID, continueID)
	err := BuildStatements(builder, s.Body)
	builder.PopLoopLabel()
	if err != nil {
		return err
	}
	if !builder.IsCurrentBlockTerminated() {
		builder.BuildBreak(continueID)
	}

	builder.BuildUsingBasicBlock(mergeID)
	return nil
}

// buildLoopEntry emits the edge from the current block into either the
// loop body or the merge block, testing cond unless it's the literal
// `true`.
func buildLoopEntry(builder *Builder, cond ast.Expr, bodyID, mergeID int) error {
	if isLiteralTrue(cond) {
		builder.BuildBreak(bodyID)
		return nil
	}
	value, err := buildExpr(builder, cond)
	if err != nil {
		return err
	}
	builder.BuildCondBreak(value, bodyID, mergeID)
	return nil
}

func isLiteralTrue(e ast.Expr) bool {
	b, ok := e.Data.(*ast.EBool)
	return ok && b.Value
}

// buildAddress resolves the storage location an assignment target
// denotes. Only a bare identifier and a dereference are supported — the
// closed expression set SPEC_FULL §2 fixes has no field- or
// index-access node, so no other addressable form exists to lower.
func buildAddress(builder *Builder, target ast.Expr) (Value, error) {
	switch d := target.Data.(type) {
	case *ast.EIdent:
		v, ok := builder.VarScope.Lookup(d.Name)
		if !ok {
			return Value{}, internalErrorf("assignment to undeclared variable %q during IR construction", d.Name)
		}
		return builder.BuildVarPtr(v.Type, v.ID), nil
	case *ast.EUnary:
		if d.Op != ast.UnaryDereference {
			return Value{}, internalErrorf("assignment target is not addressable")
		}
		return buildExpr(builder, d.Operand)
	default:
		return Value{}, internalErrorf("unhandled assignment target kind %T during IR construction", target.Data)
	}
}

// buildExpr lowers expr to a Value, emitting whatever instructions its
// evaluation requires.
func buildExpr(builder *Builder, expr ast.Expr) (Value, error) {
	switch d := expr.Data.(type) {
	case *ast.ENumber:
		return Value{Data: &ValueLiteralNumber{Value: d.Value}}, nil

	case *ast.EString:
		return Value{Data: &ValueLiteralString{Value: d.Value}}, nil

	case *ast.EBool:
		return Value{Data: &ValueLiteralBool{Value: d.Value}}, nil

	case *ast.ENull:
		return Value{Data: &ValueNullPointer{}}, nil

	case *ast.EIdent:
		v, ok := builder.VarScope.Lookup(d.Name)
		if !ok {
			return Value{}, internalErrorf("reference to undeclared variable %q during IR construction", d.Name)
		}
		ptr := builder.BuildVarPtr(v.Type, v.ID)
		return builder.BuildLoad(ptr), nil

	case *ast.ECall:
		name, ok := identName(d.Target)
		if !ok {
			return Value{}, internalErrorf("IR call target must be a direct function reference")
		}
		args := make([]Value, len(d.Args))
		for i, a := range d.Args {
			v, err := buildExpr(builder, a)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return builder.BuildCall(name, args, nil), nil

	case *ast.EBinary:
		left, err := buildExpr(builder, d.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := buildExpr(builder, d.Right)
		if err != nil {
			return Value{}, err
		}
		return builder.BuildArithmetic(d.Op, left, right), nil

	case *ast.EUnary:
		return buildUnary(builder, d)

	case *ast.EPolycount:
		return Value{}, internalErrorf("polycount expression %q reached IR construction uncollapsed", d.Name)

	default:
		return Value{}, internalErrorf("unhandled expression kind %T during IR construction", expr.Data)
	}
}

func buildUnary(builder *Builder, u *ast.EUnary) (Value, error) {
	switch u.Op {
	case ast.UnaryAddressOf:
		name, ok := identName(u.Operand)
		if !ok {
			return Value{}, internalErrorf("address-of operand must be a direct variable reference")
		}
		v, ok := builder.VarScope.Lookup(name)
		if !ok {
			return Value{}, internalErrorf("reference to undeclared variable %q during IR construction", name)
		}
		return builder.BuildVarPtr(v.Type, v.ID), nil

	case ast.UnaryDereference:
		operand, err := buildExpr(builder, u.Operand)
		if err != nil {
			return Value{}, err
		}
		return builder.BuildLoad(operand), nil

	case ast.UnaryNegate:
		operand, err := buildExpr(builder, u.Operand)
		if err != nil {
			return Value{}, err
		}
		zero := Value{Data: &ValueLiteralNumber{Value: 0}}
		return builder.BuildArithmetic(ast.BinSubtract, zero, operand), nil

	case ast.UnaryNot:
		operand, err := buildExpr(builder, u.Operand)
		if err != nil {
			return Value{}, err
		}
		falseVal := Value{Data: &ValueLiteralBool{Value: false}}
		return builder.BuildArithmetic(ast.BinEquals, operand, falseVal), nil

	default:
		return Value{}, internalErrorf("unhandled unary operator during IR construction")
	}
}

func identName(e ast.Expr) (string, bool) {
	id, ok := e.Data.(*ast.EIdent)
	if !ok {
		return "", false
	}
	return id.Name, true
}
