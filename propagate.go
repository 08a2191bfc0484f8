// propagate.go — the return half of the propagation operator.
//
// Go has no `?`, so every frame that forwards a failure spells it out:
//
//	v, f := open(path).Try()
//	if f != nil {
//	    return xgxtrace.Propagate[Doc](f)
//	}
//
// Each helper below appends exactly one Location (the frame that called the
// helper), converts the error if asked to, and hands back a failed Result for
// the enclosing function to return. The *Failure passed in is consumed.
package xgxtrace

// Propagate records the caller's location on f and returns it as a failed
// Result[U, E]. The error type is unchanged.
func Propagate[U, E any](f *Failure[E]) Result[U, E] {
	mustFailure(f)
	f.trace.push(captureLocation(1))
	return Result[U, E]{fail: f}
}

// PropagateInto records the caller's location and converts the error with
// into, which must be total: every E maps to some F.
//
//	return xgxtrace.PropagateInto[Doc](f, AppErrorFromIO)
func PropagateInto[U, F, E any](f *Failure[E], into func(E) F) Result[U, F] {
	mustFailure(f)
	loc := captureLocation(1)
	nf := &Failure[F]{err: into(f.err), trace: f.trace}
	nf.trace.push(loc)
	return Result[U, F]{fail: nf}
}

// PropagateAt is Propagate with an explicit location instead of the caller's.
func PropagateAt[U, E any](loc Location, f *Failure[E]) Result[U, E] {
	mustFailure(f)
	f.trace.push(loc)
	return Result[U, E]{fail: f}
}

// PropagateResult records the caller's location and leaves the tracing
// discipline in one step, for functions with an ordinary (U, error)
// signature. The returned error is a *Traced[E].
func PropagateResult[U, E any](f *Failure[E]) (U, error) {
	mustFailure(f)
	f.trace.push(captureLocation(1))
	var zero U
	return zero, &Traced[E]{err: f.err, trace: f.trace}
}

// PropagateResultInto is PropagateResult with an error conversion.
func PropagateResultInto[U, F, E any](f *Failure[E], into func(E) F) (U, error) {
	mustFailure(f)
	loc := captureLocation(1)
	t := f.trace
	t.push(loc)
	var zero U
	return zero, &Traced[F]{err: into(f.err), trace: t}
}

// AndThen chains fn onto a successful r. A failed r is propagated as if the
// caller had written Try + Propagate: the caller's location is appended and
// fn is not called.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.fail != nil {
		r.fail.trace.push(captureLocation(1))
		return Result[U, E]{fail: r.fail}
	}
	return fn(r.value)
}

// ToError is the total injection of any error type into the error interface,
// for use with PropagateInto.
func ToError[E error](e E) error { return e }

func mustFailure[E any](f *Failure[E]) {
	if f == nil {
		panic("xgxtrace: propagating a nil *Failure; check the Try result before propagating")
	}
}
