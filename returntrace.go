// returntrace.go — the ordered, append-only sequence of propagation sites.
//
// Design:
//   • Internal representation: []Location in propagation order (innermost
//     raise/propagation first, outermost last).
//   • push is the only in-place mutation and is reserved for the owner of
//     the trace (the Failure that is currently being propagated). The
//     exported Push never writes into a backing array a copy may share.
//   • Everything handed out to callers is a copy (copy-on-read), so a trace
//     read from a Failure can never be used to rewrite that Failure.
//   • Splicing a cause in front always allocates a fresh backing array.
package xgxtrace

import "iter"

// ReturnTrace records where a failure was propagated. The zero value is an
// empty trace ready to use.
type ReturnTrace struct {
	locs []Location
}

// NewReturnTrace builds a trace from locations in the given order.
func NewReturnTrace(locs ...Location) ReturnTrace {
	if len(locs) == 0 {
		return ReturnTrace{}
	}
	out := make([]Location, len(locs))
	copy(out, locs)
	return ReturnTrace{locs: out}
}

// Push appends one location. Copies of t taken before the call are not
// affected.
func (t *ReturnTrace) Push(loc Location) {
	t.locs = append(t.locs[:len(t.locs):len(t.locs)], loc)
}

// push appends in place, amortised O(1). Only a Failure that owns t may call it.
func (t *ReturnTrace) push(loc Location) {
	t.locs = append(t.locs, loc)
}

// Len returns the number of recorded locations.
func (t ReturnTrace) Len() int { return len(t.locs) }

// IsEmpty reports whether no location has been recorded.
func (t ReturnTrace) IsEmpty() bool { return len(t.locs) == 0 }

// At returns the i-th location. It panics if i is out of range, like a slice
// index would.
func (t ReturnTrace) At(i int) Location { return t.locs[i] }

// Locations returns a copy of the recorded locations, oldest first.
func (t ReturnTrace) Locations() []Location {
	if len(t.locs) == 0 {
		return nil
	}
	out := make([]Location, len(t.locs))
	copy(out, t.locs)
	return out
}

// All yields each location with its index, oldest first.
func (t ReturnTrace) All() iter.Seq2[int, Location] {
	return func(yield func(int, Location) bool) {
		for i, l := range t.locs {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Pushing onto the clone never affects
// the original and vice versa.
func (t ReturnTrace) Clone() ReturnTrace {
	return NewReturnTrace(t.locs...)
}

// Equal reports whether both traces hold the same locations in the same order.
func (t ReturnTrace) Equal(o ReturnTrace) bool {
	if len(t.locs) != len(o.locs) {
		return false
	}
	for i := range t.locs {
		if t.locs[i] != o.locs[i] {
			return false
		}
	}
	return true
}

// spliceCause returns a NEW trace holding cause's locations followed by own's.
// Neither input is modified. An empty cause returns own unchanged.
func spliceCause(cause, own ReturnTrace) ReturnTrace {
	if len(cause.locs) == 0 {
		return own
	}
	out := make([]Location, len(cause.locs)+len(own.locs))
	n := copy(out, cause.locs)
	copy(out[n:], own.locs)
	return ReturnTrace{locs: out}
}
