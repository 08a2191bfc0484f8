// kinds.go — the demo's error kinds and their total conversions.
//
// FileNotFound and PermissionDenied are raised by leaf functions. Error is
// the wider type mid-level functions declare; every kind converts into it
// through a From* function, which is what PropagateInto is given.
package demo

// Kind names an Error variant.
type Kind string

const (
	KindFileNotFound     Kind = "file_not_found"
	KindPermissionDenied Kind = "permission_denied"
)

// FileNotFound is raised when a file does not exist.
type FileNotFound struct{}

func (FileNotFound) Error() string { return "File not found" }

// PermissionDenied is raised when a file may not be read.
type PermissionDenied struct{}

func (PermissionDenied) Error() string { return "Permission denied" }

// Error is the union of the demo's kinds.
type Error struct {
	kind  Kind
	cause error
}

// FromFileNotFound injects e into Error.
func FromFileNotFound(e FileNotFound) Error {
	return Error{kind: KindFileNotFound, cause: e}
}

// FromPermissionDenied injects e into Error.
func FromPermissionDenied(e PermissionDenied) Error {
	return Error{kind: KindPermissionDenied, cause: e}
}

// Kind reports which variant e holds.
func (e Error) Kind() Kind { return e.kind }

// Error renders the wrapped kind's message unchanged.
func (e Error) Error() string {
	if e.cause == nil {
		return string(e.kind)
	}
	return e.cause.Error()
}

// Unwrap exposes the wrapped kind to errors.As.
func (e Error) Unwrap() error { return e.cause }
