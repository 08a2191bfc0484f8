// traced.go — the terminal (error, trace) pair.
//
// Converting a Result into its Traced form is one-way: Traced has no Push
// and no propagation helper accepts it, so its trace is frozen at the moment
// of conversion. Traced implements error so it can cross into code that only
// speaks (T, error).
package xgxtrace

import "fmt"

// Traced is a failure that has left the tracing discipline.
type Traced[E any] struct {
	err   E
	trace ReturnTrace
}

// Err returns the error value.
func (t *Traced[E]) Err() E { return t.err }

// Trace returns a copy of the frozen trace.
func (t *Traced[E]) Trace() ReturnTrace { return t.trace.Clone() }

// Error renders the wrapped value. Error values use their own Error(); other
// values are printed with %v.
func (t *Traced[E]) Error() string {
	if e, ok := any(t.err).(error); ok && e != nil {
		return e.Error()
	}
	return fmt.Sprint(t.err)
}

// Unwrap exposes the wrapped value to errors.Is/As when it is an error.
func (t *Traced[E]) Unwrap() error {
	if e, ok := any(t.err).(error); ok {
		return e
	}
	return nil
}

// Split converts r into ordinary result form. On success it returns the
// value and a nil *Traced; on failure the zero T and the Traced pair holding
// exactly the failure's error and trace.
func (r Result[T, E]) Split() (T, *Traced[E]) {
	if r.fail == nil {
		return r.value, nil
	}
	var zero T
	return zero, &Traced[E]{err: r.fail.err, trace: r.fail.trace}
}

// Result is Split returning the standard error interface. A success yields a
// true nil error, never a typed nil.
func (r Result[T, E]) Result() (T, error) {
	v, t := r.Split()
	if t == nil {
		return v, nil
	}
	return v, t
}

var _ error = (*Traced[error])(nil)
