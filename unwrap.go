// unwrap.go — cycle-safe traversal of error graphs.
//
// Traced values usually arrive wrapped: by fmt.Errorf("%w"), by errors.Join,
// or by other packages' wrappers. Walk visits every distinct node so the
// predicates in predicates.go can find all traces in a graph, not only the
// first one errors.As would stop at.
//
// Notes (Go ≥1.20):
//   - errors.Join returns an error with Unwrap() []error; errors.Unwrap only
//     calls Unwrap() error, so traversal handles BOTH forms.
//   - map[error] as a blanket "seen" set panics for non-comparable dynamic
//     types. Comparable values are tracked by value, pointers by address,
//     anything else is treated as acyclic and bounded by depth.
package xgxtrace

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// Walk traverses an error graph depth-first and calls visit for each distinct
// node in pre-order. If visit returns false, traversal stops. nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Push children in reverse so they pop left to right.
		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seenErr, seenPtr) {
				stack = append(stack, c)
			}
		}
	}
}
