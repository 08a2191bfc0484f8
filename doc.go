// doc.go — package documentation for xgx-trace
//
// Package xgxtrace provides a result type that records where a failure
// travelled. A Result[T, E] is either a success holding a T, or a failure
// holding an E together with a ReturnTrace: one Location for every frame that
// explicitly propagated the failure. The trace reads like a stack trace but is
// built from propagation alone, so it costs nothing until something fails.
//
// # Raising
//
//	func load(path string) xgxtrace.Result[[]byte, error] {
//	    b, err := os.ReadFile(path)
//	    if err != nil {
//	        return xgxtrace.ErrHere[[]byte](err) // records this line
//	    }
//	    return xgxtrace.Ok[error](b)
//	}
//
// Err records nothing at construction; the first propagation records the
// first location. ErrHere records the construction site as well.
//
// # Propagating
//
// Go has no `?` operator, so propagation is a Try followed by one of the
// Propagate helpers, which append the calling line and return early:
//
//	func parse(path string) xgxtrace.Result[Config, error] {
//	    b, f := load(path).Try()
//	    if f != nil {
//	        return xgxtrace.Propagate[Config](f)
//	    }
//	    ...
//	}
//
// PropagateInto converts the error on the way out with a total conversion
// func(E) F. AndThen is the combinator form. PropagateResult leaves the
// tracing discipline for functions returning an ordinary (T, error).
//
// # Causes
//
// A handler that replaces one failure by another keeps the first failure's
// path with CausedBy (or WithTrace). The combined trace lists the cause's
// locations first, then the new failure's own:
//
//	_, f := primary().Try()
//	if f != nil {
//	    return secondary().CausedBy(f.Trace())
//	}
//
// # Boundaries
//
// Split and Result convert to (T, *Traced[E]) and (T, error). Traced is an
// error, unwraps to E when E is an error, and never grows again. Report
// writes a failure with its trace and returns a process exit code:
//
//	func main() {
//	    os.Exit(run().Report(os.Stderr))
//	}
//
// TraceOf, ErrorOf and TracesOf recover traces from wrapped or joined errors.
//
// # Formatting
//
//   - %v on a ReturnTrace → [a.go:3 b.go:9]
//   - %+v on a ReturnTrace → one numbered location per line with functions
//   - %+v on a *Traced or *Failure → error, then the trace listing
//
// # Ownership
//
// Propagation moves a failure: the *Failure handed to Propagate is consumed
// and must not be propagated twice. Clone gives independent copies when the
// same failure has to flow down more than one path.
package xgxtrace
