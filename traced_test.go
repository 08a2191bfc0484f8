package xgxtrace

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Lossless(t *testing.T) {
	t.Parallel()

	r := top()
	_, f := r.Clone().Try()
	require.NotNil(t, f)

	v, tr := r.Split()
	assert.Zero(t, v)
	require.NotNil(t, tr)
	assert.Equal(t, notFound{path: "cfg.toml"}, tr.Err())
	assert.True(t, tr.Trace().Equal(f.Trace()))
	assert.Equal(t, 3, tr.Trace().Len())
}

func TestSplit_Success(t *testing.T) {
	t.Parallel()

	v, tr := Ok[notFound]("x").Split()
	assert.Equal(t, "x", v)
	assert.Nil(t, tr)
}

func TestResult_NoTypedNil(t *testing.T) {
	t.Parallel()

	v, err := Ok[notFound](3).Result()
	assert.Equal(t, 3, v)
	assert.NoError(t, err)
	assert.True(t, err == nil, "success must yield an untyped nil error")

	_, err = top().Result()
	require.Error(t, err)
	assert.Equal(t, "file not found: cfg.toml", err.Error())
}

func TestTraced_FrozenTrace(t *testing.T) {
	t.Parallel()

	_, tr := mid().Split()
	require.NotNil(t, tr)
	got := tr.Trace()
	got.Push(At("outside.go", 1, 0))
	assert.Equal(t, 2, tr.Trace().Len(), "reading the trace cannot extend it")
}

func TestTraced_StdlibInterop(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("disk gone")
	_, err := Err[int](fmt.Errorf("read: %w", sentinel)).Result()
	require.Error(t, err)

	assert.ErrorIs(t, err, sentinel)

	wrapped := fmt.Errorf("boot: %w", err)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.True(t, IsTraced(wrapped))

	var nf notFound
	_, err = top().Result()
	assert.ErrorAs(t, fmt.Errorf("ctx: %w", err), &nf)
	assert.Equal(t, "cfg.toml", nf.path)
}

type code int

func TestTraced_NonErrorValue(t *testing.T) {
	t.Parallel()

	_, err := Err[string](code(7)).Result()
	require.Error(t, err)
	assert.Equal(t, "7", err.Error())
	assert.Nil(t, errors.Unwrap(err))

	c, ok := ErrorOf[code](err)
	assert.True(t, ok)
	assert.Equal(t, code(7), c)
}

func TestTraceOf(t *testing.T) {
	t.Parallel()

	_, ok := TraceOf(nil)
	assert.False(t, ok)
	_, ok = TraceOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsTraced(nil))

	_, err := top().Result()
	tr, ok := TraceOf(fmt.Errorf("outer: %w", err))
	require.True(t, ok)
	assert.Equal(t, []string{"raise", "mid", "top"}, functionsOf(tr))
}

func TestErrorOf_WrongType(t *testing.T) {
	t.Parallel()

	_, err := top().Result()
	_, ok := ErrorOf[permissionDenied](err)
	assert.False(t, ok)
	_, ok = ErrorOf[notFound](nil)
	assert.False(t, ok)
}

func TestTracesOf_Joined(t *testing.T) {
	t.Parallel()

	_, a := top().Result()
	_, b := Err[int](permissionDenied{}).Result()
	_, c := mid().Result()
	joined := errors.Join(a, errors.New("untraced"), fmt.Errorf("wrapped: %w", b), c)

	traces := TracesOf(joined)
	require.Len(t, traces, 3)
	assert.Equal(t, 3, traces[0].Len())
	assert.Equal(t, 0, traces[1].Len())
	assert.Equal(t, 2, traces[2].Len())

	assert.Nil(t, TracesOf(nil))
	assert.Empty(t, TracesOf(errors.New("plain")))
}

type loopErr struct{ next error }

func (e *loopErr) Error() string { return "loop" }
func (e *loopErr) Unwrap() error { return e.next }

func TestWalk_CyclesAndEarlyStop(t *testing.T) {
	t.Parallel()

	a := &loopErr{}
	b := &loopErr{next: a}
	a.next = b

	n := 0
	Walk(a, func(error) bool { n++; return true })
	assert.Equal(t, 2, n)

	n = 0
	Walk(errors.Join(errors.New("x"), errors.New("y")), func(error) bool { n++; return n < 2 })
	assert.Equal(t, 2, n)

	Walk(nil, func(error) bool { t.Fatal("visited nil"); return true })
}

func TestQuickSplitPreservesTrace(t *testing.T) {
	property := func(lines []uint16, msg string) bool {
		f := &Failure[string]{err: msg}
		for _, l := range lines {
			f.trace.Push(At("q.go", int(l), 0))
		}
		want := f.Trace()
		_, tr := FromFailure[int](f).Split()
		return tr != nil && tr.Err() == msg && tr.Trace().Equal(want)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("split lost information: %v", err)
	}
}
