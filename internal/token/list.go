package token

import "github.com/nyxlang/corec/internal/logger"

// List is a tokenlist: parallel arrays of kinds and source locations, plus
// an opaque per-token payload whose shape is determined by ExtraFormat(Kind).
// This is the parser's entire input contract (spec.md §6).
type List struct {
	Kinds   []Kind
	Sources []logger.Loc
	Payload []interface{}
}

// Len returns the number of tokens in the list.
func (l *List) Len() int { return len(l.Kinds) }

// At returns the kind of the token at i, or TNone if i is out of range (a
// tokenlist is conventionally terminated by a trailing sentinel, but
// callers that walk past the end should see "no token" rather than panic).
func (l *List) At(i int) Kind {
	if i < 0 || i >= len(l.Kinds) {
		return TNone
	}
	return l.Kinds[i]
}

// SourceAt returns the source location of the token at i.
func (l *List) SourceAt(i int) logger.Loc {
	if i < 0 || i >= len(l.Sources) {
		return logger.NullLoc
	}
	return l.Sources[i]
}

// PayloadAt returns the decoded payload of the token at i, or nil.
func (l *List) PayloadAt(i int) interface{} {
	if i < 0 || i >= len(l.Payload) {
		return nil
	}
	return l.Payload[i]
}

// Builder incrementally assembles a List. It exists so that test fixtures
// and (eventually) a lexer can append tokens one at a time without hand
// managing three parallel slices.
type Builder struct {
	list List
}

// Push appends a token with no payload.
func (b *Builder) Push(k Kind, source logger.Loc) *Builder {
	return b.PushPayload(k, source, nil)
}

// PushPayload appends a token carrying an extra payload.
func (b *Builder) PushPayload(k Kind, source logger.Loc, payload interface{}) *Builder {
	b.list.Kinds = append(b.list.Kinds, k)
	b.list.Sources = append(b.list.Sources, source)
	b.list.Payload = append(b.list.Payload, payload)
	return b
}

// Word appends a TWord token carrying its spelling as the payload.
func (b *Builder) Word(name string, source logger.Loc) *Builder {
	return b.PushPayload(TWord, source, name)
}

// Build returns the assembled List.
func (b *Builder) Build() *List {
	return &b.list
}
