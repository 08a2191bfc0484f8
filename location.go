// location.go — call-site capture for xgx-trace.
//
// Design goals:
//   - Correctness: resolve through runtime.Callers + runtime.CallersFrames so
//     inlined propagation helpers still report the user-visible call site.
//   - Cost only on failure paths: nothing here runs while a Result succeeds.
//   - Explicit escape hatch: At builds a Location by hand for callers that
//     already know where they are (generated code, tests, foreign frames).
package xgxtrace

import (
	"fmt"
	"runtime"
	"strconv"
)

// Location is a single source position recorded in a ReturnTrace.
type Location struct {
	File     string // file path as reported by the runtime
	Line     int    // 1-based line number
	Column   int    // 1-based column; 0 when unknown (runtime capture)
	Function string // fully-qualified function name; may be empty
}

// At builds a Location from explicit coordinates.
func At(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// Here returns the location of its caller.
func Here() Location {
	return captureLocation(1)
}

// IsZero reports whether l carries no position at all.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0 && l.Function == ""
}

// String renders file:line or file:line:column when a column is known.
func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "???"
	}
	s := file + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}
	return s
}

// Format implements fmt.Formatter.
//
//	%s, %v → file:line[:col]
//	%+v    → function file:line[:col]
//	%q     → quoted file:line[:col]
func (l Location) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && l.Function != "" {
			_, _ = fmt.Fprintf(s, "%s %s", l.Function, l.String())
			return
		}
		_, _ = fmt.Fprint(s, l.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", l.String())
	default:
		_, _ = fmt.Fprint(s, l.String())
	}
}

// captureLocation resolves a single frame, skipping 'skip' frames above the
// caller of captureLocation. skip=0 yields the function that called
// captureLocation; skip=1 yields its caller, and so on.
func captureLocation(skip int) Location {
	// +2 for runtime.Callers and captureLocation itself.
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return Location{}
	}
	fr, _ := runtime.CallersFrames(pc[:]).Next()
	return Location{
		File:     fr.File,
		Line:     fr.Line,
		Function: fr.Function,
	}
}
