// Package parser turns a token.List into an ast.AST. It owns ParseContext,
// the stateful cursor spec.md §4.1 describes: the current token index, the
// composite association currently being parsed (if any), an optional
// stashed pre-name for `::`-qualified declarations, a next-builtin-traits
// flag, and a reentrancy-safe polymorphic-prerequisite flag.
package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/config"
	"github.com/nyxlang/corec/internal/logger"
	"github.com/nyxlang/corec/internal/token"
)

// Context carries all mutable parsing state across the whole translation
// unit. Only the cursor I is required to advance monotonically (spec.md
// §5); everything else is scoped push/pop state for a single production.
type Context struct {
	Tokens *token.List
	I      int

	AST     *ast.AST
	Options *config.Options

	// CompositeAssociation is non-nil while parsing the body of a struct
	// domain, driving implicit `this` argument insertion.
	CompositeAssociation *ast.Composite

	// Prename is a stashed `Namespace::name` identifier consumed by the
	// next function/alias declaration when Options.ColonColon is set.
	Prename string

	// NextBuiltinTraits is consumed (and reset to TraitNone) by the next
	// function declaration.
	NextBuiltinTraits ast.FuncTrait

	// AllowPolymorphicPrereqs is true only while parsing a function's
	// argument list; re-entrant parses of nested types must restore the
	// outer value on return, which is why it's a plain bool toggled by the
	// argument-list production itself rather than a stack.
	AllowPolymorphicPrereqs bool

	// Func is the function whose body is being parsed, or was parsed most
	// recently; nil until the first body is reached. It is not reset after
	// a body ends.
	Func *ast.Func
}

// New builds a Context ready to parse tokens from the start.
func New(tokens *token.List, astRoot *ast.AST, options *config.Options) *Context {
	return &Context{Tokens: tokens, AST: astRoot, Options: options}
}

// Peek returns the kind of the token at the cursor.
func (c *Context) Peek() token.Kind {
	return c.Tokens.At(c.I)
}

// PeekAt returns the kind of the token offset from the cursor by delta.
func (c *Context) PeekAt(delta int) token.Kind {
	return c.Tokens.At(c.I + delta)
}

// PeekSource returns the source location of the token at the cursor.
func (c *Context) PeekSource() logger.Loc {
	return c.Tokens.SourceAt(c.I)
}

// Log returns the diagnostic sink.
func (c *Context) Log() logger.Log {
	return c.Options.Log
}

// Panicf records a fatal diagnostic at the cursor's current source
// location and returns the FAILURE sentinel.
func (c *Context) Panicf(format string, args ...interface{}) error {
	return logger.Panicf(c.Log(), c.PeekSource(), format, args...)
}

// PanicfAt records a fatal diagnostic at an explicit source location.
func (c *Context) PanicfAt(loc logger.Loc, format string, args ...interface{}) error {
	return logger.Panicf(c.Log(), loc, format, args...)
}

// IgnoreNewlines advances past any run of TNewline tokens. If the cursor
// lands on TNone (end of stream) it reports the given message as a fatal
// diagnostic, matching parse_ignore_newlines's "expected more input" role
// throughout the original grammar.
func (c *Context) IgnoreNewlines(messageOnEOF string) error {
	for c.Peek() == token.TNewline {
		c.I++
	}
	if c.Peek() == token.TNone {
		return c.Panicf("%s", messageOnEOF)
	}
	return nil
}

// Eat consumes one token of kind k, or reports message as a fatal
// diagnostic if the token at the cursor doesn't match.
func (c *Context) Eat(k token.Kind, message string) error {
	if c.Peek() != k {
		return c.Panicf("%s", message)
	}
	c.I++
	return nil
}

// TakeWord consumes one TWord token and returns its spelling, or reports
// message as a fatal diagnostic if the token at the cursor isn't a word.
func (c *Context) TakeWord(message string) (string, error) {
	if c.Peek() != token.TWord {
		return "", c.Panicf("%s", message)
	}
	name, _ := c.Tokens.PayloadAt(c.I).(string)
	c.I++
	return name, nil
}
