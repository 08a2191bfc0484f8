// Package tracelog connects xgx-trace results to log/slog.
//
// The core package stays free of logging; this adapter turns traces into
// structured attributes and logs failures at a process boundary.
package tracelog

import (
	"context"
	"fmt"
	"log/slog"

	xgxtrace "github.com/xgx-io/xgx-trace"
)

// Attribute keys used by this package.
const (
	KeyError = "error"
	KeyTrace = "trace"
)

// Frames renders t as one "function file:line" string per location, oldest
// first. Locations without a function render as file:line.
func Frames(t xgxtrace.ReturnTrace) []string {
	if t.IsEmpty() {
		return []string{}
	}
	out := make([]string, 0, t.Len())
	for _, l := range t.All() {
		out = append(out, fmt.Sprintf("%+v", l))
	}
	return out
}

// TraceAttr returns t under KeyTrace.
func TraceAttr(t xgxtrace.ReturnTrace) slog.Attr {
	return slog.Any(KeyTrace, Frames(t))
}

// Value wraps t as a slog.LogValuer. Frames are rendered only when a handler
// actually emits the record, so it is cheap to pass at debug level.
func Value(t xgxtrace.ReturnTrace) slog.LogValuer { return traceValue{t: t} }

type traceValue struct{ t xgxtrace.ReturnTrace }

func (v traceValue) LogValue() slog.Value { return slog.AnyValue(Frames(v.t)) }

// ErrorAttr returns err under KeyError. A traced error becomes a group with
// the message and its trace; any other error is logged as its message.
func ErrorAttr(err error) slog.Attr {
	return errorAttr(KeyError, err)
}

func errorAttr(key string, err error) slog.Attr {
	if err == nil {
		return slog.Any(key, nil)
	}
	t, ok := xgxtrace.TraceOf(err)
	if !ok {
		return slog.String(key, err.Error())
	}
	return slog.Group(key,
		slog.String("msg", err.Error()),
		TraceAttr(t),
	)
}

// ReplaceAttr expands any error-valued attribute that carries a trace into a
// group holding its message and trace. It fits slog.HandlerOptions.ReplaceAttr
// and tint.Options.ReplaceAttr.
func ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	err, ok := a.Value.Any().(error)
	if !ok || !xgxtrace.IsTraced(err) {
		return a
	}
	return errorAttr(a.Key, err)
}

// Report logs a failed r at error level and returns the completion status,
// with the same decision as Result.Report: ExitFailure on failure, the
// value's ExitCode when it is a Terminator, ExitSuccess otherwise.
func Report[T, E any](ctx context.Context, logger *slog.Logger, r xgxtrace.Result[T, E]) int {
	v, traced := r.Split()
	if traced != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed",
			slog.String(KeyError, traced.Error()),
			TraceAttr(traced.Trace()),
		)
		return xgxtrace.ExitFailure
	}
	if term, ok := any(v).(xgxtrace.Terminator); ok {
		return term.ExitCode()
	}
	return xgxtrace.ExitSuccess
}
