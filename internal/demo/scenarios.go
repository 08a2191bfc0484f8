package demo

import (
	"slices"

	xgxtrace "github.com/xgx-io/xgx-trace"
)

// Scenario is a named, runnable demonstration.
type Scenario struct {
	Name        string
	Description string
	Run         func(x int) xgxtrace.Result[Unit, Error]
}

var scenarios = []Scenario{
	{
		Name:        "original",
		Description: "foo/bar/baz call graph; x >= 5 recovers from FileNotFound and fails in the fallback",
		Run:         Main,
	},
	{
		Name:        "nested",
		Description: "raise → mid → top with the raise site recorded",
		Run:         func(int) xgxtrace.Result[Unit, Error] { return top() },
	},
	{
		Name:        "fallback",
		Description: "attempt fails with FileNotFound, the fallback fails with PermissionDenied caused by it",
		Run:         func(int) xgxtrace.Result[Unit, Error] { return readWithFallback() },
	},
	{
		Name:        "ok",
		Description: "a success that propagates through the same frames without a trace",
		Run:         func(x int) xgxtrace.Result[Unit, Error] { return succeed(x) },
	},
}

// Scenarios returns every scenario in display order.
func Scenarios() []Scenario {
	return slices.Clone(scenarios)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	i := slices.IndexFunc(scenarios, func(s Scenario) bool { return s.Name == name })
	if i < 0 {
		return Scenario{}, false
	}
	return scenarios[i], true
}

func raise() xgxtrace.Result[Unit, FileNotFound] {
	return xgxtrace.ErrHere[Unit](FileNotFound{})
}

func mid() xgxtrace.Result[Unit, FileNotFound] {
	v, fl := raise().Try()
	if fl != nil {
		return xgxtrace.Propagate[Unit](fl)
	}
	return xgxtrace.Ok[FileNotFound](v)
}

func top() xgxtrace.Result[Unit, Error] {
	v, fl := mid().Try()
	if fl != nil {
		return xgxtrace.PropagateInto[Unit](fl, FromFileNotFound)
	}
	return xgxtrace.Ok[Error](v)
}

func attempt() xgxtrace.Result[Unit, FileNotFound] {
	return xgxtrace.ErrHere[Unit](FileNotFound{})
}

func fallback() xgxtrace.Result[Unit, Error] {
	return xgxtrace.ErrHere[Unit](FromPermissionDenied(PermissionDenied{}))
}

func readWithFallback() xgxtrace.Result[Unit, Error] {
	v, fl := attempt().Try()
	if fl == nil {
		return xgxtrace.Ok[Error](v)
	}
	return fallback().CausedBy(fl.Trace())
}

func succeed(x int) xgxtrace.Result[Unit, Error] {
	return xgxtrace.AndThen(xgxtrace.Ok[Error](x), func(int) xgxtrace.Result[Unit, Error] {
		return xgxtrace.Ok[Error](Unit{})
	})
}
