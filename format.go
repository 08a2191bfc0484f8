// format.go — fmt.Formatter implementations for xgx-trace.
//
// Behavior:
//
//   ReturnTrace
//     %v, %s → one line, oldest first: [a.go:3 b.go:9]
//     %+v    → one location per line, numbered, with function names:
//                #0 pkg.raise /src/a.go:3
//                #1 pkg.mid /src/b.go:9
//
//   *Traced[E], *Failure[E]
//     %v, %s → the error value only
//     %+v    → the error, then "trace:" and the %+v trace listing
//     %q     → quoted error text
//
//   Result[T, E]
//     %v     → ok(<value>) or err(<error>)
//     %+v    → like %v, with the trace listing on failure
//
// Traces are for humans reading diagnostics; the layout is not a stable
// machine format.
package xgxtrace

import (
	"fmt"
	"io"
	"strings"
)

// String renders the one-line form.
func (t ReturnTrace) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, l := range t.locs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Format implements fmt.Formatter; %+v lists one location per line.
func (t ReturnTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeTraceVerbose(s, t, "")
			return
		}
		_, _ = io.WriteString(s, t.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", t.String())
	default:
		_, _ = io.WriteString(s, t.String())
	}
}

// writeTraceVerbose writes one numbered location per line, each line
// prefixed with indent. No trailing newline.
func writeTraceVerbose(w io.Writer, t ReturnTrace, indent string) {
	for i, l := range t.locs {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "%s#%d %+v", indent, i, l)
	}
}

// formatFailure renders an error value and its trace. Shared by *Traced and
// *Failure so both read the same in logs.
func formatFailure(s fmt.State, verb rune, err any, t ReturnTrace) {
	switch verb {
	case 'v':
		_, _ = fmt.Fprintf(s, "%v", err)
		if s.Flag('+') {
			_, _ = io.WriteString(s, "\ntrace:")
			if t.IsEmpty() {
				_, _ = io.WriteString(s, " (empty)")
				return
			}
			_, _ = io.WriteString(s, "\n")
			writeTraceVerbose(s, t, "  ")
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", fmt.Sprint(err))
	default:
		_, _ = fmt.Fprintf(s, "%v", err)
	}
}

// Format implements fmt.Formatter; %+v appends the trace listing.
func (t *Traced[E]) Format(s fmt.State, verb rune) {
	formatFailure(s, verb, t.err, t.trace)
}

// Format implements fmt.Formatter with the same layout as *Traced.
func (f *Failure[E]) Format(s fmt.State, verb rune) {
	formatFailure(s, verb, f.err, f.trace)
}

// Format implements fmt.Formatter as ok(v) or err(e).
func (r Result[T, E]) Format(s fmt.State, verb rune) {
	if r.fail == nil {
		_, _ = fmt.Fprintf(s, "ok(%v)", r.value)
		return
	}
	_, _ = fmt.Fprintf(s, "err(%v)", r.fail.err)
	if verb == 'v' && s.Flag('+') && !r.fail.trace.IsEmpty() {
		_, _ = io.WriteString(s, "\n")
		writeTraceVerbose(s, r.fail.trace, "  ")
	}
}
