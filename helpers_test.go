package xgxtrace

import (
	"strings"
	"testing"
)

// --- error kinds used across the tests ---------------------------------------

type notFound struct{ path string }

func (e notFound) Error() string { return "file not found: " + e.path }

type permissionDenied struct{ path string }

func (e permissionDenied) Error() string { return "permission denied: " + e.path }

// appError is the wider error type functions declare once they mix kinds.
type appError struct {
	kind  string
	cause error
}

func (e appError) Error() string { return e.kind + ": " + e.cause.Error() }
func (e appError) Unwrap() error { return e.cause }

func appErrorFromNotFound(e notFound) appError { return appError{kind: "not_found", cause: e} }

func appErrorFromDenied(e permissionDenied) appError {
	return appError{kind: "permission_denied", cause: e}
}

// --- a known call chain -------------------------------------------------------

func raise() Result[int, notFound] {
	return ErrHere[int](notFound{path: "cfg.toml"})
}

func mid() Result[int, notFound] {
	v, f := raise().Try()
	if f != nil {
		return Propagate[int](f)
	}
	return Ok[notFound](v + 1)
}

func top() Result[int, notFound] {
	v, f := mid().Try()
	if f != nil {
		return Propagate[int](f)
	}
	return Ok[notFound](v + 1)
}

// hop propagates leaf's result through n nested frames.
func hop[E any](n int, leaf func() Result[int, E]) Result[int, E] {
	if n == 0 {
		return leaf()
	}
	v, f := hop(n-1, leaf).Try()
	if f != nil {
		return Propagate[int](f)
	}
	return Ok[E](v)
}

// functionsOf returns the short function names recorded in t, oldest first.
func functionsOf(t ReturnTrace) []string {
	out := make([]string, 0, t.Len())
	for _, l := range t.All() {
		name := strings.TrimSuffix(l.Function, "[...]")
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		out = append(out, name)
	}
	return out
}

func locs(t testing.TB, n int, file string) []Location {
	t.Helper()
	out := make([]Location, n)
	for i := range out {
		out[i] = At(file, i+1, 1)
	}
	return out
}
