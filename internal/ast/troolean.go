package ast

// Troolean is a three-variant tag used by the special-function cache and
// by the "is this function the beginning of its polymorphic group" hint.
// Values only ever move Unknown -> {Yes, No}, never back (spec.md §4.3).
type Troolean int8

const (
	Unknown Troolean = iota
	Yes
	No
)

func (t Troolean) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}
