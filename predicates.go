// predicates.go — reading traces back out of arbitrary errors.
//
// Everything here works on plain error values, so code that received a
// *Traced through (T, error) APIs, fmt.Errorf("%w") wrapping or errors.Join
// can still recover the trace.
package xgxtrace

import "errors"

// traceCarrier is satisfied by *Traced[E] for every E.
type traceCarrier interface {
	error
	Trace() ReturnTrace
}

// TraceOf returns the trace of the first traced error in err's chain.
func TraceOf(err error) (ReturnTrace, bool) {
	if err == nil {
		return ReturnTrace{}, false
	}
	var tc traceCarrier
	if errors.As(err, &tc) {
		return tc.Trace(), true
	}
	return ReturnTrace{}, false
}

// IsTraced reports whether err's chain contains a traced error.
func IsTraced(err error) bool {
	_, ok := TraceOf(err)
	return ok
}

// ErrorOf finds a *Traced[E] in err's chain and returns its error value.
func ErrorOf[E any](err error) (E, bool) {
	var t *Traced[E]
	if err != nil && errors.As(err, &t) {
		return t.err, true
	}
	var zero E
	return zero, false
}

// TracesOf returns the trace of every traced error in err's graph, in
// pre-order. Joined errors contribute one trace per traced branch.
func TracesOf(err error) []ReturnTrace {
	var out []ReturnTrace
	Walk(err, func(e error) bool {
		if tc, ok := e.(traceCarrier); ok {
			out = append(out, tc.Trace())
		}
		return true
	})
	return out
}
