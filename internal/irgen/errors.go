package irgen

import (
	"fmt"

	"github.com/pkg/errors"
)

// internalErrorf panics-worthy conditions during IR construction are
// invariants the statement walker asserts can never happen once the parser
// has run (spec.md §7's "Internal" taxonomy category, same convention as
// internal/parser/errors.go): a stack trace survives to the driver
// boundary instead of a bare diagnostic through the Log sink.
func internalErrorf(format string, args ...interface{}) error {
	return errors.Wrap(fmt.Errorf(format, args...), "INTERNAL ERROR")
}
