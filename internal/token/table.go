package token

// This file mirrors the shape of a generated table: no control flow, just
// data keyed by Kind. A future code generator could regenerate it from a
// single source-of-truth list the way the original token_data.h says it
// was produced by generate_c.py.

var names = map[Kind]string{
	TNone:    "TNone",
	TWord:    "TWord",
	TString:  "TString",
	TCString: "TCString",

	TAdd:           "TAdd",
	TSubtract:      "TSubtract",
	TMultiply:      "TMultiply",
	TDivide:        "TDivide",
	TAssign:        "TAssign",
	TEquals:        "TEquals",
	TNotEquals:     "TNotEquals",
	TLessThan:      "TLessThan",
	TGreaterThan:   "TGreaterThan",
	TLessThanEq:    "TLessThanEq",
	TGreaterThanEq: "TGreaterThanEq",
	TNot:           "TNot",
	TOpen:          "TOpen",
	TClose:         "TClose",
	TBegin:         "TBegin",
	TEnd:           "TEnd",
	TNewline:       "TNewline",
	TByte:          "TByte",
	TUByte:         "TUByte",
	TShort:         "TShort",
	TUShort:        "TUShort",
	TInt:           "TInt",
	TUInt:          "TUInt",
	TLong:          "TLong",
	TULong:         "TULong",
	TUsize:         "TUsize",
	TFloat:         "TFloat",
	TDouble:        "TDouble",
	TMember:        "TMember",
	TAddress:       "TAddress",
	TNext:          "TNext",
	TBracketOpen:   "TBracketOpen",
	TBracketClose:  "TBracketClose",
	TModulus:       "TModulus",
	TGenericInt:    "TGenericInt",
	TGenericFloat:  "TGenericFloat",

	TAddAssign:              "TAddAssign",
	TSubtractAssign:         "TSubtractAssign",
	TMultiplyAssign:         "TMultiplyAssign",
	TDivideAssign:           "TDivideAssign",
	TModulusAssign:          "TModulusAssign",
	TBitAndAssign:           "TBitAndAssign",
	TBitOrAssign:            "TBitOrAssign",
	TBitXorAssign:           "TBitXorAssign",
	TBitLShiftAssign:        "TBitLShiftAssign",
	TBitRShiftAssign:        "TBitRShiftAssign",
	TBitLogicalLShiftAssign: "TBitLogicalLShiftAssign",
	TBitLogicalRShiftAssign: "TBitLogicalRShiftAssign",
	TEllipsis:               "TEllipsis",
	TUberAnd:                "TUberAnd",
	TUberOr:                 "TUberOr",
	TTerminateJoin:          "TTerminateJoin",
	TColon:                  "TColon",
	TBitOr:                  "TBitOr",
	TBitXor:                 "TBitXor",
	TBitLShift:              "TBitLShift",
	TBitRShift:              "TBitRShift",
	TBitComplement:          "TBitComplement",
	TBitLogicalLShift:       "TBitLogicalLShift",
	TBitLogicalRShift:       "TBitLogicalRShift",
	TAssociate:              "TAssociate",
	TMeta:                   "TMeta",
	TPolymorph:              "TPolymorph",
	TMaybe:                  "TMaybe",
	TIncrement:              "TIncrement",
	TDecrement:              "TDecrement",
	TToggle:                 "TToggle",
	TStrongArrow:            "TStrongArrow",
	TRange:                  "TRange",
	TGives:                  "TGives",
	TPolycount:              "TPolycount",
	TBitAnd:                 "TBitAnd",

	TPod:          "TPod",
	TAlias:        "TAlias",
	TAlignof:      "TAlignof",
	TAnd:          "TAnd",
	TAs:           "TAs",
	TAt:           "TAt",
	TBreak:        "TBreak",
	TCase:         "TCase",
	TCast:         "TCast",
	TConst:        "TConst",
	TConstructor:  "TConstructor",
	TContinue:     "TContinue",
	TDef:          "TDef",
	TDefault:      "TDefault",
	TDefer:        "TDefer",
	TDefine:       "TDefine",
	TDelete:       "TDelete",
	TEach:         "TEach",
	TElse:         "TElse",
	TEmbed:        "TEmbed",
	TEnum:         "TEnum",
	TExhaustive:   "TExhaustive",
	TExternal:     "TExternal",
	TFallthrough:  "TFallthrough",
	TFalse:        "TFalse",
	TFor:          "TFor",
	TForeign:      "TForeign",
	TFunc:         "TFunc",
	TFuncptr:      "TFuncptr",
	TGlobal:       "TGlobal",
	TIf:           "TIf",
	TImplicit:     "TImplicit",
	TImport:       "TImport",
	TIn:           "TIn",
	TInout:        "TInout",
	TLlvmAsm:      "TLlvmAsm",
	TNamespace:    "TNamespace",
	TNew:          "TNew",
	TNull:         "TNull",
	TOr:           "TOr",
	TOut:          "TOut",
	TPacked:       "TPacked",
	TPragma:       "TPragma",
	TPrivate:      "TPrivate",
	TPublic:       "TPublic",
	TRecord:       "TRecord",
	TRepeat:       "TRepeat",
	TReturn:       "TReturn",
	TSizeof:       "TSizeof",
	TStatic:       "TStatic",
	TStdcall:      "TStdcall",
	TStruct:       "TStruct",
	TSwitch:       "TSwitch",
	TThreadLocal:  "TThreadLocal",
	TTrue:         "TTrue",
	TTypeinfo:     "TTypeinfo",
	TTypenameof:   "TTypenameof",
	TUndef:        "TUndef",
	TUnion:        "TUnion",
	TUnless:       "TUnless",
	TUntil:        "TUntil",
	TUsing:        "TUsing",
	TVaArg:        "TVaArg",
	TVaCopy:       "TVaCopy",
	TVaEnd:        "TVaEnd",
	TVaStart:      "TVaStart",
	TVerbatim:     "TVerbatim",
	TWhile:        "TWhile",
}

var extraFormats = map[Kind]Format{
	TWord:         FormatCString,
	TString:       FormatLenString,
	TCString:      FormatCString,
	TGenericInt:   FormatMemory,
	TGenericFloat: FormatMemory,
}

// Keywords holds the source spelling of every keyword token, in the exact
// order of the [FirstKeyword, MaxLexToken] Kind sub-range. A lexer may
// binary-search this table and recover the matching Kind via
// FirstKeyword + index.
var Keywords = []string{
	"POD",
	"alias",
	"alignof",
	"and",
	"as",
	"at",
	"break",
	"case",
	"cast",
	"const",
	"constructor",
	"continue",
	"def",
	"default",
	"defer",
	"define",
	"delete",
	"each",
	"else",
	"embed",
	"enum",
	"exhaustive",
	"external",
	"fallthrough",
	"false",
	"for",
	"foreign",
	"func",
	"funcptr",
	"global",
	"if",
	"implicit",
	"import",
	"in",
	"inout",
	"llvm_asm",
	"namespace",
	"new",
	"null",
	"or",
	"out",
	"packed",
	"pragma",
	"private",
	"public",
	"record",
	"repeat",
	"return",
	"sizeof",
	"static",
	"stdcall",
	"struct",
	"switch",
	"thread_local",
	"true",
	"typeinfo",
	"typenameof",
	"undef",
	"union",
	"unless",
	"until",
	"using",
	"va_arg",
	"va_copy",
	"va_end",
	"va_start",
	"verbatim",
	"while",
}
