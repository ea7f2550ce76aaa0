package parser

import (
	"github.com/nyxlang/corec/internal/ast"
	"github.com/nyxlang/corec/internal/logger"
	"github.com/nyxlang/corec/internal/token"
)

// maxFuncID bounds the number of AST functions a single translation unit may
// declare (spec.md §4.1.5's MAX_FUNCID, reused here for plain functions too
// since original_source/src/PARSE/parse_func.c checks it before every
// function, not only before aliases).
const maxFuncID = 1 << 16

// ParseFunc parses one function or foreign-function declaration, starting at
// an optional prefix keyword and ending after the body (foreign functions
// have none). Callers that see a `func` token immediately followed by
// `alias` must dispatch to ParseFuncAlias instead.
func ParseFunc(ctx *Context) (*ast.Func, error) {
	if len(ctx.AST.Funcs) >= maxFuncID {
		return nil, ctx.Panicf("Maximum number of AST functions reached")
	}

	source := ctx.PeekSource()

	head, err := ParseFuncHead(ctx)
	if err != nil {
		return nil, err
	}

	if head.IsForeign && ctx.CompositeAssociation != nil {
		return nil, ctx.PanicfAt(source, "Cannot declare foreign function within struct domain")
	}

	f := ast.NewFuncFromHead(head)
	funcID := ast.FuncID(len(ctx.AST.Funcs))
	ctx.AST.Funcs = append(ctx.AST.Funcs, f)

	if ctx.NextBuiltinTraits != ast.TraitNone {
		f.Traits |= ctx.NextBuiltinTraits
		ctx.NextBuiltinTraits = ast.TraitNone
	}

	if err := parseFuncArguments(ctx, f); err != nil {
		return nil, err
	}
	if err := ctx.IgnoreNewlines("Expected '{' after function head"); err != nil {
		return nil, err
	}

	if !head.IsForeign && (ctx.Peek() == token.TBegin || ctx.Peek() == token.TAssign) {
		f.ReturnType = ast.MakeBase("void")
	} else {
		rt, err := ParseType(ctx)
		if err != nil {
			f.ReturnType = nil
			return nil, err
		}
		f.ReturnType = rt
	}
	ast.CollapsePolycountVarFixedArrays(f.ReturnType, polycountExprName)

	if err := validateManagementPrototype(ctx, f, source); err != nil {
		return nil, err
	}

	if f.IsPolymorphic() {
		if head.IsForeign {
			return nil, ctx.PanicfAt(source, "Cannot declare polymorphic foreign functions")
		}
		f.Traits |= ast.TraitPolymorphic
		entry := &ast.PolymorphicFunc{Name: f.Name, FuncID: funcID, IsBeginningOfGroup: ast.Unknown}
		ctx.AST.PolymorphicFuncs = append(ctx.AST.PolymorphicFuncs, entry)
		if f.IsMethod() {
			ctx.AST.PolymorphicMethods = append(ctx.AST.PolymorphicMethods, &ast.PolymorphicFunc{
				Name: f.Name, FuncID: funcID, IsBeginningOfGroup: ast.Unknown,
			})
		}
	}

	if err := parseFuncBody(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFuncHead parses the prefix keywords, the 'func'/'foreign' keyword, an
// optional custom export-name string literal, and the function's name.
func ParseFuncHead(ctx *Context) (ast.Head, error) {
	source := ctx.PeekSource()

	prefixes, err := parseFuncPrefixes(ctx)
	if err != nil {
		return ast.Head{}, err
	}

	kind := ctx.Peek()
	isForeign := kind == token.TForeign
	if kind != token.TFunc && !isForeign {
		return ast.Head{}, ctx.Panicf("Expected 'func' or 'foreign' keyword after prefix keyword")
	}
	ctx.I++

	exportName := ""
	hasCustomExportName := false
	if ctx.Peek() == token.TString {
		exportName, _ = ctx.Tokens.PayloadAt(ctx.I).(string)
		hasCustomExportName = true
		ctx.I++
	}

	var name string
	if ctx.Options.ColonColon && ctx.Prename != "" {
		name = ctx.Prename
		ctx.Prename = ""
	} else {
		message := "Expected function name after 'func' keyword"
		if isForeign {
			message = "Expected function name after 'foreign' keyword"
		}
		name, err = ctx.TakeWord(message)
		if err != nil {
			return ast.Head{}, err
		}
	}

	if !hasCustomExportName {
		if prefixes.IsExternal {
			exportName = name
		} else {
			exportName = ""
		}
	}

	isEntry := ctx.Options.EntryPointName != "" && ctx.Options.EntryPointName == name

	return ast.Head{
		Name:       name,
		Source:     source,
		IsForeign:  isForeign,
		IsEntry:    isEntry,
		Prefixes:   prefixes,
		ExportName: exportName,
	}, nil
}

// parseFuncPrefixes consumes the stdcall/verbatim/implicit/external prefix
// keywords, in any order, each legal at most once.
func parseFuncPrefixes(ctx *Context) (ast.Prefixes, error) {
	var p ast.Prefixes
	for {
		switch ctx.Peek() {
		case token.TStdcall:
			if p.IsStdcall {
				return p, ctx.Panicf("Duplicate 'stdcall' prefix")
			}
			p.IsStdcall = true
			ctx.I++
		case token.TVerbatim:
			if p.IsVerbatim {
				return p, ctx.Panicf("Duplicate 'verbatim' prefix")
			}
			p.IsVerbatim = true
			ctx.I++
		case token.TImplicit:
			if p.IsImplicit {
				return p, ctx.Panicf("Duplicate 'implicit' prefix")
			}
			p.IsImplicit = true
			ctx.I++
		case token.TExternal:
			if p.IsExternal {
				return p, ctx.Panicf("Duplicate 'external' prefix")
			}
			p.IsExternal = true
			ctx.I++
		default:
			return p, nil
		}
	}
}

// insertImplicitThis prepends the synthesized 'this' argument to f when it
// is being parsed inside a composite association (spec.md §4.1.1).
func insertImplicitThis(ctx *Context, f *ast.Func) {
	assoc := ctx.CompositeAssociation

	var thisType ast.Type
	if assoc.IsPolymorphic {
		generics := make([]ast.Type, len(assoc.Generics))
		for i, g := range assoc.Generics {
			generics[i] = ast.MakePolymorph(g, false)
		}
		thisType = ast.Type{&ast.ElemPointer{}, &ast.ElemGenericBase{Name: assoc.Name, Generics: generics}}
	} else {
		thisType = ast.MakeBasePtr(assoc.Name)
	}

	f.ArgNames = append(f.ArgNames, "this")
	f.ArgTypes = append(f.ArgTypes, thisType)
	f.ArgSources = append(f.ArgSources, assoc.Source)
	f.ArgFlows = append(f.ArgFlows, ast.FlowIn)
	f.ArgTypeTraits = append(f.ArgTypeTraits, ast.ArgTraitNone)
	f.ArgDefaults = append(f.ArgDefaults, nil)
	f.Arity++
}

// parseFuncArguments parses the parenthesized, comma-separated argument
// list, including implicit-this insertion, backfill, and vararg/variadic
// handling (spec.md §4.1.1).
func parseFuncArguments(ctx *Context, f *ast.Func) error {
	if ctx.CompositeAssociation != nil {
		insertImplicitThis(ctx, f)
	}

	if err := ctx.IgnoreNewlines("Expected '(' after function name"); err != nil {
		return err
	}
	if ctx.Peek() != token.TOpen {
		return nil
	}
	ctx.I++ // eat '('

	ctx.AllowPolymorphicPrereqs = true
	defer func() { ctx.AllowPolymorphicPrereqs = false }()

	backfill := 0
	for ctx.Peek() != token.TClose {
		if err := ctx.IgnoreNewlines("Expected function argument"); err != nil {
			return err
		}

		solid, err := parseFuncArgument(ctx, f, &backfill)
		if err != nil {
			return err
		}
		if !solid {
			continue
		}

		takesVariableArity := f.Traits.Has(ast.TraitVararg) || f.Traits.Has(ast.TraitVariadic)

		if err := ctx.IgnoreNewlines("Expected type after ',' in argument list"); err != nil {
			return err
		}

		if ctx.Peek() == token.TNext && !takesVariableArity {
			ctx.I++
			if ctx.Peek() == token.TClose {
				return ctx.Panicf("Expected type after ',' in argument list")
			}
		} else if ctx.Peek() != token.TClose {
			if takesVariableArity {
				return ctx.Panicf("Expected ')' after variadic argument")
			}
			return ctx.Panicf("Expected ',' after argument type")
		}
	}

	if backfill != 0 {
		return ctx.Panicf("Expected argument type before end of argument list")
	}

	for _, t := range f.ArgTypes {
		ast.CollapsePolycountVarFixedArrays(t, polycountExprName)
	}

	ctx.I++ // eat ')'
	return nil
}

// parseFuncArgument parses one argument slot and reports whether it
// resolved a solid (typed) argument — false for a pending backfill slot or
// for a vararg/variadic marker, in which case the caller must not expect a
// following ',' or ')' check against a freshly parsed type.
func parseFuncArgument(ctx *Context, f *ast.Func, backfill *int) (bool, error) {
	flow := ast.FlowIn
	switch ctx.Peek() {
	case token.TIn:
		ctx.I++
	case token.TOut:
		flow = ast.FlowOut
		ctx.I++
	case token.TInout:
		flow = ast.FlowInout
		ctx.I++
	}

	argSource := ctx.PeekSource()

	if ctx.Peek() == token.TEllipsis {
		if *backfill != 0 {
			return false, ctx.Panicf("Expected type for previous arguments before ellipsis")
		}
		ctx.I++
		f.Traits |= ast.TraitVararg
		return false, nil
	}

	f.ArgFlows = append(f.ArgFlows, flow)
	f.ArgSources = append(f.ArgSources, argSource)
	f.ArgDefaults = append(f.ArgDefaults, nil)
	f.ArgTypes = append(f.ArgTypes, nil)
	f.ArgTypeTraits = append(f.ArgTypeTraits, ast.ArgTraitNone)
	argIndex := len(f.ArgTypes) - 1

	name := ""
	isForeign := f.IsForeign()

	if isForeign {
		lookahead := ctx.I
		isArgumentName := false
		if ctx.Tokens.At(lookahead) == token.TWord {
			lookahead++
			for ctx.Tokens.At(lookahead) == token.TNewline {
				lookahead++
			}
			if k := ctx.Tokens.At(lookahead); k != token.TNext && k != token.TClose {
				isArgumentName = true
			}
		}

		if isArgumentName {
			if argIndex != 0 && !anyForeignArgNamed(f, argIndex) && f.ArgTypes[argIndex-1].IsBase() {
				prevType := f.ArgTypes[argIndex-1].String()
				return false, ctx.PanicfAt(f.ArgSources[argIndex-1],
					"'%s' is ambiguous, did you mean '%s Type' (as a parameter name) or '_ %s' (as a type name)?",
					prevType, prevType, prevType)
			}
			var err error
			name, err = ctx.TakeWord("INTERNAL ERROR: expected argument name while parsing foreign function declaration")
			if err != nil {
				return false, err
			}
		}
		f.ArgNames = append(f.ArgNames, name)
	} else {
		var err error
		name, err = ctx.TakeWord("Expected argument name before argument type")
		if err != nil {
			return false, err
		}
		f.ArgNames = append(f.ArgNames, name)
	}

	if ctx.Peek() == token.TEllipsis {
		if isForeign {
			return false, ctx.Panicf("Foreign functions cannot have Adept-style named variadic arguments")
		}
		if *backfill != 0 {
			return false, ctx.Panicf("Expected type for previous arguments before ellipsis")
		}
		ctx.I++
		f.Traits |= ast.TraitVariadic
		f.VariadicArgName = name
		f.VariadicSource = argSource
		truncateLastArg(f)
		return false, nil
	}

	if err := ctx.IgnoreNewlines("Expected type"); err != nil {
		return false, err
	}
	if err := parseFuncDefaultIfApplicable(ctx, f, argIndex); err != nil {
		return false, err
	}
	if err := ctx.IgnoreNewlines("Expected type"); err != nil {
		return false, err
	}

	if !isForeign && ctx.Peek() == token.TNext {
		ctx.I++
		if ctx.Peek() == token.TClose {
			return false, ctx.Panicf("Expected type after ',' in argument list")
		}
		*backfill++
		return false, nil
	}

	if ctx.Peek() == token.TPod {
		f.ArgTypeTraits[argIndex] = ast.ArgTraitPOD
		ctx.I++
	}

	if err := ctx.IgnoreNewlines("Expected type"); err != nil {
		return false, err
	}
	typ, err := ParseType(ctx)
	if err != nil {
		return false, err
	}
	f.ArgTypes[argIndex] = typ
	if err := ctx.IgnoreNewlines("Expected type"); err != nil {
		return false, err
	}
	if err := parseFuncDefaultIfApplicable(ctx, f, argIndex); err != nil {
		return false, err
	}

	backfillArguments(f, backfill)
	f.Arity++
	return true, nil
}

// anyForeignArgNamed reports whether any of f's first upTo foreign
// arguments was given an explicit name, mirroring original_source's
// `func->arg_names == NULL` check (no name ever recorded yet).
func anyForeignArgNamed(f *ast.Func, upTo int) bool {
	for i := 0; i < upTo && i < len(f.ArgNames); i++ {
		if f.ArgNames[i] != "" {
			return true
		}
	}
	return false
}

// truncateLastArg removes the provisional argument slot appended by
// parseFuncArgument once it turns out to be a named-variadic marker rather
// than a solid argument; the variadic name/source live on the Func itself,
// not in the parallel arrays, and are not counted toward arity.
func truncateLastArg(f *ast.Func) {
	f.ArgNames = f.ArgNames[:len(f.ArgNames)-1]
	f.ArgFlows = f.ArgFlows[:len(f.ArgFlows)-1]
	f.ArgSources = f.ArgSources[:len(f.ArgSources)-1]
	f.ArgDefaults = f.ArgDefaults[:len(f.ArgDefaults)-1]
	f.ArgTypes = f.ArgTypes[:len(f.ArgTypes)-1]
	f.ArgTypeTraits = f.ArgTypeTraits[:len(f.ArgTypeTraits)-1]
}

// parseFuncDefaultIfApplicable consumes `= expr` at the argument slot idx,
// if present. It is called both immediately after the argument name (for a
// still-pending backfill argument) and again after the type is parsed (for
// the argument that finally supplies the type), matching
// original_source's parse_func_default_arg_value_if_applicable.
func parseFuncDefaultIfApplicable(ctx *Context, f *ast.Func, idx int) error {
	if ctx.Peek() != token.TAssign {
		return nil
	}
	if f.ArgDefaults[idx] != nil {
		return ctx.Panicf("Function argument already has default value")
	}
	ctx.I++
	value, err := ParseExpr(ctx)
	if err != nil {
		return err
	}
	f.ArgDefaults[idx] = &value
	return nil
}

// backfillArguments clones the just-resolved solid type (and type trait)
// back onto every pending argument, and propagates the solid argument's
// default expression to pending arguments that have none of their own,
// walking back from the solid argument and stopping at the first pending
// argument that already has a default (spec.md §4.1.1 "Backfill", laws 2
// and 3).
func backfillArguments(f *ast.Func, backfill *int) {
	masterIndex := len(f.ArgTypes) - 1
	masterType := f.ArgTypes[masterIndex]
	masterTrait := f.ArgTypeTraits[masterIndex]
	masterDefault := f.ArgDefaults[masterIndex]

	inheritDefaults := true
	for n := 1; n <= *backfill; n++ {
		idx := masterIndex - n
		f.ArgTypes[idx] = masterType.Clone()
		f.ArgTypeTraits[idx] = masterTrait

		if inheritDefaults {
			if masterDefault != nil && f.ArgDefaults[idx] == nil {
				cloned := *masterDefault
				f.ArgDefaults[idx] = &cloned
			} else {
				inheritDefaults = false
			}
		}

		f.Arity++
	}
	*backfill = 0
}

// parseFuncBody parses the function body: nothing for foreign functions, a
// single expression after '=', or a brace-delimited statement list
// (spec.md §4.1.4).
func parseFuncBody(ctx *Context, f *ast.Func) error {
	if f.IsForeign() {
		f.EndSource = ctx.PeekSource()
		return nil
	}

	if err := ctx.IgnoreNewlines("Expected function body"); err != nil {
		return err
	}

	if ctx.Peek() == token.TAssign {
		if f.ReturnType.IsVoid() {
			return ctx.Panicf("Cannot return 'void' from single line function")
		}
		ctx.I++
		if err := ctx.IgnoreNewlines("Expected function body"); err != nil {
			return err
		}
		ctx.Func = f
		value, err := ParseExpr(ctx)
		if err != nil {
			return err
		}
		f.Statements = []ast.Stmt{{Loc: value.Loc, Data: &ast.SReturn{ValueOrNil: &value}}}
		f.EndSource = ctx.PeekSource()
		return nil
	}

	ctx.Func = f
	stmts, err := parseBlock(ctx)
	if err != nil {
		return err
	}
	f.Statements = stmts
	f.EndSource = ctx.PeekSource()
	return nil
}

// validateManagementPrototype enforces the fixed signature of every
// reserved double-underscore management function by literal name
// (spec.md §4.1.2). Ordinary functions are left untouched.
func validateManagementPrototype(ctx *Context, f *ast.Func, source logger.Loc) error {
	switch f.Name {
	case "__defer__":
		if !f.ReturnType.IsVoid() ||
			f.Arity != 1 ||
			f.ArgNames[0] != "this" ||
			!(f.ArgTypes[0].IsBasePtr() || f.ArgTypes[0].IsPolymorphPtr() || f.ArgTypes[0].IsGenericBasePtr()) ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Management method __defer__ must be declared as 'func __defer__(this *T) void'")
		}

	case "__pass__":
		if !(f.ReturnType.IsBase() || f.ReturnType.IsPolymorph() || f.ReturnType.IsGenericBase() || f.ReturnType.IsFixedArray()) ||
			f.Arity != 1 ||
			!ast.Identical(f.ReturnType, f.ArgTypes[0]) ||
			f.ArgTypeTraits[0] != ast.ArgTraitPOD {
			return ctx.PanicfAt(source, "Management function __pass__ must be declared as 'func __pass__(value POD T) T'")
		}

	case "__assign__":
		if f.Traits != ast.TraitNone ||
			!f.ReturnType.IsVoid() ||
			f.Arity != 2 ||
			f.ArgNames[0] != "this" ||
			!(f.ArgTypes[0].IsBasePtr() || f.ArgTypes[0].IsPolymorphPtr() || f.ArgTypes[0].IsGenericBasePtr()) ||
			!ast.IsPointerTo(f.ArgTypes[0], f.ArgTypes[1]) ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Management method __assign__ must be declared like 'func __assign__(this *T, other T) void'")
		}

	case "__access__":
		if f.Traits != ast.TraitNone ||
			f.Arity != 2 ||
			!f.ArgTypes[0].IsPointer() ||
			!f.ReturnType.IsPointer() ||
			f.ArgNames[0] != "this" ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Management method __access__ must be declared like '__access__(this *T, index $Key) *$Value'")
		}

	case "__array__":
		if f.Traits != ast.TraitNone ||
			f.Arity != 1 ||
			!f.ArgTypes[0].IsPointer() ||
			!f.ReturnType.IsPointer() ||
			f.ArgNames[0] != "this" ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Management method __array__ must be declared like '__array__(this *T) *$ArrayElementType'")
		}

	case "__length__":
		if f.Traits != ast.TraitNone ||
			f.Arity != 1 ||
			!f.ArgTypes[0].IsPointer() ||
			!f.ReturnType.IsBaseOf("usize") ||
			f.ArgNames[0] != "this" ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Management method __length__ must be declared like '__length__(this *T) usize'")
		}

	case "__variadic_array__":
		if ctx.AST.VariadicArrayType != nil {
			ctx.PanicfAt(source, "The function __variadic_array__ can only be defined once")
			return ctx.PanicfAt(ctx.AST.VariadicArraySource, "Previous definition")
		}
		if f.ReturnType.IsVoid() {
			return ctx.PanicfAt(source, "The function __variadic_array__ must return a value")
		}
		if f.Traits != ast.TraitNone ||
			f.Arity != 4 ||
			!f.ArgTypes[0].IsBaseOf("ptr") ||
			!f.ArgTypes[1].IsBaseOf("usize") ||
			!f.ArgTypes[2].IsBaseOf("usize") ||
			!f.ArgTypes[3].IsBaseOf("ptr") ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone ||
			f.ArgTypeTraits[1] != ast.ArgTraitNone ||
			f.ArgTypeTraits[2] != ast.ArgTraitNone ||
			f.ArgTypeTraits[3] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Special function __variadic_array__ must be declared like:\n"+
				"'__variadic_array__(pointer ptr, bytes usize, length usize, maybe_types ptr) ReturnType'")
		}
		ctx.AST.VariadicArrayType = f.ReturnType.Clone()
		ctx.AST.VariadicArraySource = source

	case "__initializer_list__":
		if f.ReturnType.IsVoid() {
			return ctx.PanicfAt(source, "The function __initializer_list__ must return a value")
		}
		if f.Traits != ast.TraitNone ||
			f.Arity != 2 ||
			!f.ArgTypes[1].IsBaseOf("usize") ||
			f.ArgTypeTraits[0] != ast.ArgTraitNone ||
			f.ArgTypeTraits[1] != ast.ArgTraitNone {
			return ctx.PanicfAt(source, "Special function __initializer_list__ must be declared like:\n"+
				"'__initializer_list__(array *$T, length usize) <$T> ReturnType'")
		}
		if ctx.AST.InitializerListType == nil {
			ctx.AST.InitializerListType = f.ReturnType.Clone()
			ctx.AST.InitializerListSource = source
		}

	default:
		if isMathManagementFunc(f.Name) {
			if f.Arity != 2 {
				return ctx.PanicfAt(source, "Management method %s must take two arguments", f.Name)
			}
			if f.ArgTypes[0].IsPointer() {
				return ctx.PanicfAt(source, "Management method %s cannot have a pointer as the first argument", f.Name)
			}
		}
	}

	return nil
}

var mathManagementFuncs = map[string]bool{
	"__add__": true, "__divide__": true, "__equals__": true,
	"__greater_than__": true, "__greater_than_or_equal__": true,
	"__less_than__": true, "__less_than_or_equal__": true,
	"__modulus__": true, "__multiply__": true, "__not_equals__": true,
	"__subtract__": true,
}

func isMathManagementFunc(name string) bool { return mathManagementFuncs[name] }
