// program.go — a small call graph that exercises every propagation path.
//
//	Main → foo ─┬─ x >= 5 → bar ─┬─ baz → bang1   (FileNotFound)
//	            │                └─ on FileNotFound: hello → bang2, re-attached
//	            │                   to baz's trace with WithTrace
//	            └─ x < 5  → bang2                  (PermissionDenied)
//
// bang1 and bang2 raise with Err, so the first recorded location is the
// first frame that propagates.
package demo

import xgxtrace "github.com/xgx-io/xgx-trace"

// Unit is the value of a computation that only succeeds or fails.
type Unit = struct{}

// Main runs the graph with input x.
func Main(x int) xgxtrace.Result[Unit, Error] {
	f, fl := foo(x).Try()
	if fl != nil {
		return xgxtrace.Propagate[Unit](fl)
	}
	return xgxtrace.Ok[Error](f)
}

func foo(x int) xgxtrace.Result[Unit, Error] {
	if x >= 5 {
		v, fl := bar().Try()
		if fl != nil {
			return xgxtrace.Propagate[Unit](fl)
		}
		return xgxtrace.Ok[Error](v)
	}
	v, fl := bang2().Try()
	if fl != nil {
		return xgxtrace.PropagateInto[Unit](fl, FromPermissionDenied)
	}
	return xgxtrace.Ok[Error](v)
}

func bar() xgxtrace.Result[Unit, Error] {
	_, fl := baz().Try()
	if fl == nil {
		v, qf := quux().Try()
		if qf != nil {
			return xgxtrace.Propagate[Unit](qf)
		}
		return xgxtrace.Ok[Error](v)
	}
	// FileNotFound is the only thing baz can fail with; fall back to hello
	// and keep baz's path as the cause.
	v, hf := hello().WithTrace(fl.Trace()).Try()
	if hf != nil {
		return xgxtrace.Propagate[Unit](hf)
	}
	return xgxtrace.Ok[Error](v)
}

func baz() xgxtrace.Result[Unit, FileNotFound] {
	v, fl := bang1().Try()
	if fl != nil {
		return xgxtrace.Propagate[Unit](fl)
	}
	return xgxtrace.Ok[FileNotFound](v)
}

func quux() xgxtrace.Result[Unit, Error] {
	v, fl := bang2().Try()
	if fl != nil {
		return xgxtrace.PropagateInto[Unit](fl, FromPermissionDenied)
	}
	return xgxtrace.Ok[Error](v)
}

func hello() xgxtrace.Result[Unit, Error] {
	v, fl := bang2().Try()
	if fl != nil {
		return xgxtrace.PropagateInto[Unit](fl, FromPermissionDenied)
	}
	return xgxtrace.Ok[Error](v)
}

func bang1() xgxtrace.Result[Unit, FileNotFound] {
	return xgxtrace.Err[Unit](FileNotFound{})
}

func bang2() xgxtrace.Result[Unit, PermissionDenied] {
	return xgxtrace.Err[Unit](PermissionDenied{})
}
