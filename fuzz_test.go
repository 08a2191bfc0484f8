package xgxtrace

import (
	"testing"
)

func FuzzCausedByOrdering(f *testing.F) {
	f.Add(uint8(2), uint8(1))
	f.Add(uint8(0), uint8(3))
	f.Add(uint8(5), uint8(0))
	f.Add(uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, nCause, nOwn uint8) {
		var cause ReturnTrace
		for i := range int(nCause) {
			cause.Push(At("cause.go", i+1, 0))
		}
		r := Err[int](notFound{})
		for i := range int(nOwn) {
			_, fl := r.Try()
			r = PropagateAt[int](At("own.go", i+1, 0), fl)
		}

		_, fl := r.CausedBy(cause).Try()
		got := fl.Trace()
		if got.Len() != int(nCause)+int(nOwn) {
			t.Fatalf("len = %d, want %d", got.Len(), int(nCause)+int(nOwn))
		}
		for i := 0; i < int(nCause); i++ {
			if l := got.At(i); l.File != "cause.go" || l.Line != i+1 {
				t.Fatalf("entry %d = %v, want cause.go:%d", i, l, i+1)
			}
		}
		for i := 0; i < int(nOwn); i++ {
			if l := got.At(int(nCause) + i); l.File != "own.go" || l.Line != i+1 {
				t.Fatalf("entry %d = %v, want own.go:%d", int(nCause)+i, l, i+1)
			}
		}
		if cause.Len() != int(nCause) {
			t.Fatalf("cause trace mutated: len %d", cause.Len())
		}
	})
}
