package parser

import "github.com/pkg/errors"

// internalError returns a wrapped, stack-tracing error for states the
// parser asserts can never happen — spec.md §7's "Internal" taxonomy
// category ("invariants the core expects; diagnosed with an explicit
// 'INTERNAL ERROR' prefix"). Unlike every other diagnostic, this one does
// not go through the Log sink: it means this package itself has a bug.
func internalError(message string) error {
	return errors.Wrap(errors.New(message), "INTERNAL ERROR")
}
