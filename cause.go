// cause.go — causal chaining between a superseded failure and its substitute.
//
// A handler that recovers from failure A by attempting something else may
// end up failing with B. CausedBy/WithTrace attach A's trace to B so the
// report shows how control got to B:
//
//	trace = A's locations (chronological) ++ B's own locations (chronological)
//
// Ordering is the same for every operation in this file. All operations are
// copy-on-write: the prior trace and any trace shared with another value are
// left untouched.
package xgxtrace

// CausedBy splices prior in front of the failure's own trace. On a success it
// returns r unchanged; an empty prior also leaves r unchanged.
//
//	_, f := attempt().Try()
//	if f != nil && f.Err() == ErrNotFound {
//	    return fallback().CausedBy(f.Trace())
//	}
func (r Result[T, E]) CausedBy(prior ReturnTrace) Result[T, E] {
	if r.fail == nil || prior.IsEmpty() {
		return r
	}
	return Result[T, E]{fail: r.fail.WithTrace(prior)}
}

// WithTrace attaches a previously captured trace with the same ordering as
// CausedBy. It reads better where the handler re-wraps a trace it already
// holds in hand, as in `hello().WithTrace(t)`.
func (r Result[T, E]) WithTrace(prior ReturnTrace) Result[T, E] {
	return r.CausedBy(prior)
}

// WithTrace returns a NEW failure carrying prior's locations followed by f's.
// f itself is not modified, even when prior is empty.
func (f *Failure[E]) WithTrace(prior ReturnTrace) *Failure[E] {
	if prior.IsEmpty() {
		return f.Clone()
	}
	return &Failure[E]{err: f.err, trace: spliceCause(prior, f.trace)}
}
