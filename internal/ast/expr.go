package ast

import "github.com/nyxlang/corec/internal/logger"

// Expr is an expression node: a tagged payload plus its source location,
// following the Expr{Data E; Loc} shape used throughout the retrieved
// compiler-style teacher's AST package.
type Expr struct {
	Data E
	Loc  logger.Loc
}

// E is never called; its only purpose is to encode a closed variant type
// in Go's type system, same as the teacher's own marker-method pattern.
type E interface{ isExpr() }

func (*EIdent) isExpr()     {}
func (*ECall) isExpr()      {}
func (*EBinary) isExpr()    {}
func (*EUnary) isExpr()     {}
func (*ENumber) isExpr()    {}
func (*EString) isExpr()    {}
func (*EBool) isExpr()      {}
func (*ENull) isExpr()      {}
func (*EPolycount) isExpr() {}

// EIdent is a bare identifier reference.
type EIdent struct{ Name string }

// ECall is a function call `Target(Args...)`.
type ECall struct {
	Target Expr
	Args   []Expr
}

// BinaryOp enumerates the binary operators the IR builder knows how to
// lower to an Arithmetic instruction.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSubtract
	BinMultiply
	BinDivide
	BinModulus
	BinEquals
	BinNotEquals
	BinLessThan
	BinGreaterThan
	BinLessThanEq
	BinGreaterThanEq
)

// EBinary is a binary operator expression.
type EBinary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota
	UnaryNot
	UnaryAddressOf
	UnaryDereference
)

// EUnary is a unary operator expression.
type EUnary struct {
	Op      UnaryOp
	Operand Expr
}

// ENumber is a numeric literal.
type ENumber struct{ Value float64 }

// EString is a string literal.
type EString struct{ Value string }

// EBool is a boolean literal.
type EBool struct{ Value bool }

// ENull is the null literal.
type ENull struct{}

// EPolycount is the pre-collapse `$#N` expression form that
// CollapsePolycountVarFixedArrays recognizes inside an ElemVarFixedArray's
// length expression (spec.md §4.1.1).
type EPolycount struct{ Name string }
