// Package config holds the compiler-wide options threaded through the
// parser and IR builder — the "compiler handle (options, entry-point
// name, diagnostic sink)" spec.md's input contract names (§4.1).
package config

import "github.com/nyxlang/corec/internal/logger"

// Options groups the handful of compiler-wide settings the parser
// consults. The zero value is a reasonable default: no entry point name
// configured, the legacy `::`-qualified-declaration syntax disabled.
type Options struct {
	// EntryPointName is compared against each parsed function name to set
	// ast.TraitEntry / Head.IsEntry.
	EntryPointName string

	// ColonColon enables consuming a stashed "Namespace::name" prename in
	// place of reading a fresh name token (spec.md §4.1.1).
	ColonColon bool

	// MessageLimit caps how many diagnostics a stderr-backed Log will
	// print before summarizing the rest; 0 means unlimited.
	MessageLimit int

	Log logger.Log
}
