// report.go — turning a Result into a process completion status.
package xgxtrace

import (
	"fmt"
	"io"
)

// Exit codes returned by Report.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Terminator is implemented by success values that choose their own exit
// code, such as a command that succeeded but wants to signal "nothing to do".
type Terminator interface {
	ExitCode() int
}

// Report writes a failure to w and returns the completion status.
//
// On failure it writes "Error: " followed by the %+v form of the Traced pair
// and returns ExitFailure. On success it returns the value's ExitCode when T
// implements Terminator, and ExitSuccess otherwise. Nothing is written on
// success.
func (r Result[T, E]) Report(w io.Writer) int {
	v, t := r.Split()
	if t != nil {
		_, _ = fmt.Fprintf(w, "Error: %+v\n", t)
		return ExitFailure
	}
	if term, ok := any(v).(Terminator); ok {
		return term.ExitCode()
	}
	return ExitSuccess
}
