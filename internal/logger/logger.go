// Package logger implements the diagnostics sink spec.md treats as an
// external collaborator: a callback accepting (source_location, severity,
// message). The core never formats user-facing strings itself beyond
// building a Msg; rendering (color, terminal width, summary counts) lives
// here, in the one place that's allowed to know about stderr.
package logger

import (
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/fatih/color"
)

// Loc is the 0-based byte offset of a source location within its origin.
// NullLoc is the sentinel for synthesized nodes that have no real source
// position (spec.md §3 "a sentinel 'null source' exists for synthesized
// nodes").
type Loc struct {
	Origin int32 // file/stream index; -1 for NullLoc
	Offset int32
}

// NullLoc is the sentinel null source location.
var NullLoc = Loc{Origin: -1, Offset: -1}

// IsNull reports whether loc is the null source sentinel.
func (loc Loc) IsNull() bool { return loc.Origin < 0 }

// Source describes one origin (file or stream) referenced by Loc.Origin.
type Source struct {
	Index    int32
	Path     string
	Contents string
}

// Severity classifies a diagnostic. Only Panic is fatal; spec.md §7 notes
// "there are no warnings in the core" for internally-raised diagnostics,
// but downstream consumers (the type checker, the driver) share this sink
// and do emit warnings, so the full taxonomy is kept here.
type Severity uint8

const (
	Note Severity = iota
	Warning
	Panic // fatal: the producing call must return FAILURE immediately after
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Panic:
		return "error"
	default:
		return "unknown"
	}
}

// Msg is one diagnostic: a severity, a location (possibly null), and a
// rendered message.
type Msg struct {
	Severity Severity
	Loc      Loc
	Text     string
}

func (m Msg) String() string {
	loc := ""
	if !m.Loc.IsNull() {
		loc = fmt.Sprintf("origin %d, offset %d: ", m.Loc.Origin, m.Loc.Offset)
	}
	return fmt.Sprintf("%s%s: %s\n", loc, m.Severity, m.Text)
}

// sortableMsgs lets Done() return diagnostics in a stable, deterministic
// order regardless of emission order across concurrent producers (there
// are none in the core itself, spec.md §5, but the sink is shared with
// downstream passes that may run in parallel across translation units).
type sortableMsgs []Msg

func (a sortableMsgs) Len() int      { return len(a) }
func (a sortableMsgs) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a sortableMsgs) Less(i, j int) bool {
	if a[i].Loc.Origin != a[j].Loc.Origin {
		return a[i].Loc.Origin < a[j].Loc.Origin
	}
	return a[i].Loc.Offset < a[j].Loc.Offset
}

// Log is the diagnostic sink handed to the parser and IR builder. AddMsg
// records a diagnostic; HasErrors reports whether any Panic-severity
// message has been recorded; Done returns every message recorded so far,
// sorted into source order (the recorded messages are kept, not cleared).
type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

// NewDeferLog builds a Log that buffers every message in memory instead of
// writing to stderr immediately — the shape tests want, mirroring the
// teacher's logger.NewDeferLog used throughout its parser test suite.
func NewDeferLog() Log {
	var mu sync.Mutex
	var msgs sortableMsgs
	hasErrors := false

	return Log{
		AddMsg: func(msg Msg) {
			mu.Lock()
			defer mu.Unlock()
			msgs = append(msgs, msg)
			if msg.Severity == Panic {
				hasErrors = true
			}
		},
		HasErrors: func() bool {
			mu.Lock()
			defer mu.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mu.Lock()
			defer mu.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

// NewStderrLog builds a Log that writes each message to stderr as it
// arrives, colorized by severity when the terminal supports it.
// messageLimit caps how many messages are actually printed before the rest
// are silently counted and folded into a trailing summary line printed by
// Done; 0 means unlimited, mirroring the teacher's OutputOptions.MessageLimit
// handling in logger.go's NewStderrLog.
func NewStderrLog(messageLimit int) Log {
	var mu sync.Mutex
	var msgs sortableMsgs
	hasErrors := false
	suppressed := 0
	remaining := messageLimit
	if remaining <= 0 {
		remaining = math.MaxInt32
	}
	info := GetTerminalInfo(os.Stderr)

	colorFor := func(sev Severity) func(format string, a ...interface{}) string {
		if !info.UseColorEscapes {
			return fmt.Sprintf
		}
		switch sev {
		case Panic:
			return color.New(color.FgRed, color.Bold).SprintfFunc()
		case Warning:
			return color.New(color.FgYellow, color.Bold).SprintfFunc()
		default:
			return color.New(color.FgCyan).SprintfFunc()
		}
	}

	return Log{
		AddMsg: func(msg Msg) {
			mu.Lock()
			defer mu.Unlock()
			msgs = append(msgs, msg)
			if msg.Severity == Panic {
				hasErrors = true
			}
			if remaining == 0 {
				suppressed++
				return
			}
			fmt.Fprint(color.Error, colorFor(msg.Severity)("%s", msg.String()))
			remaining--
		},
		HasErrors: func() bool {
			mu.Lock()
			defer mu.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mu.Lock()
			defer mu.Unlock()
			if suppressed > 0 {
				fmt.Fprintf(os.Stderr, "%d more message(s) not shown (message limit %d)\n", suppressed, messageLimit)
			}
			sort.Stable(msgs)
			return msgs
		},
	}
}

// Panicf records a fatal diagnostic and returns FAILURE, matching the
// compiler_panicf(ctx->compiler, source, fmt, ...) call sites throughout
// the original parser.
func Panicf(log Log, loc Loc, format string, args ...interface{}) error {
	log.AddMsg(Msg{Severity: Panic, Loc: loc, Text: fmt.Sprintf(format, args...)})
	return ErrFailure
}

// ErrFailure is the sentinel Go error standing in for the core's FAILURE
// return code (spec.md §7): any function returning a non-nil error has
// already reported a diagnostic to the Log and the caller must stop,
// propagating the error without wrapping.
var ErrFailure = fmt.Errorf("failure")
