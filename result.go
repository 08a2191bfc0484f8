// result.go — the trace-carrying result type and its constructors.
//
// Scope:
//   - Result[T, E]: success carrying T, or failure carrying E plus a trace.
//   - Failure[E]: the failure-only residual handed back by Try and consumed by
//     the propagation helpers in propagate.go. It has no success variant.
//   - Constructors Ok, Err, ErrHere.
//
// Ownership:
//   - A success never holds a *Failure, so the success path allocates nothing
//     and never looks at a trace.
//   - A failure owns exactly one trace (possibly empty). Propagation MOVES the
//     *Failure into the returned Result; the value it was taken from must not
//     be propagated again. Use Clone to branch.
package xgxtrace

// Result is either a success holding a T or a failure holding an E and the
// ReturnTrace of every site that propagated it.
type Result[T, E any] struct {
	value T
	fail  *Failure[E]
}

// Failure is a failed computation: the error value and its ReturnTrace.
type Failure[E any] struct {
	err   E
	trace ReturnTrace
}

// Ok wraps v as a success. The error type must be named explicitly:
//
//	return xgxtrace.Ok[MyError](42)
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err wraps e as a failure with an empty trace. The first propagation step
// records the first location.
//
//	return xgxtrace.Err[int](NotFound{})
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{fail: &Failure[E]{err: e}}
}

// ErrHere wraps e as a failure whose trace already holds the caller's
// location, so the raise site itself is recorded.
func ErrHere[T, E any](e E) Result[T, E] {
	f := &Failure[E]{err: e}
	f.trace.push(captureLocation(1))
	return Result[T, E]{fail: f}
}

// FromFailure rebuilds a Result around a failure without recording a
// location. It is the non-propagating counterpart of Propagate, for handlers
// that return a failure from the same frame that produced it.
func FromFailure[T, E any](f *Failure[E]) Result[T, E] {
	if f == nil {
		panic("xgxtrace: FromFailure called with nil *Failure")
	}
	return Result[T, E]{fail: f}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool { return r.fail == nil }

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool { return r.fail != nil }

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.fail != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Try is the check half of the propagation operator. On success it returns
// the value and a nil *Failure. On failure it returns the zero T and the
// failure, untouched: the trace grows only when the caller propagates it.
//
//	v, f := load().Try()
//	if f != nil {
//	    return xgxtrace.Propagate[Config](f)
//	}
func (r Result[T, E]) Try() (T, *Failure[E]) {
	return r.value, r.fail
}

// Clone returns a Result whose failure (if any) owns an independent copy of
// the trace.
func (r Result[T, E]) Clone() Result[T, E] {
	if r.fail == nil {
		return r
	}
	return Result[T, E]{fail: r.fail.Clone()}
}

// Err returns the error value.
func (f *Failure[E]) Err() E { return f.err }

// Trace returns a copy of the failure's trace.
func (f *Failure[E]) Trace() ReturnTrace { return f.trace.Clone() }

// Len returns the number of locations in the failure's trace.
func (f *Failure[E]) Len() int { return f.trace.Len() }

// Clone returns an independent failure with the same error and a copied trace.
func (f *Failure[E]) Clone() *Failure[E] {
	return &Failure[E]{err: f.err, trace: f.trace.Clone()}
}
