package rotation3d

import "errors"

var (
	// ErrZeroLength is raised when a zero-length Vector3 is normalized or used as a direction.
	ErrZeroLength = errors.New("zero-length vector")
	// ErrZeroNorm is raised when a zero Quaternion is normalized or inverted.
	ErrZeroNorm = errors.New("zero-norm quaternion")
	// ErrAxisNotUnit is raised when an axis-angle constructor is handed an axis that isn't unit-length.
	ErrAxisNotUnit = errors.New("rotation axis is not unit-length")
)

// Error is the fault raised (through panic) by an operation whose precondition was violated.
// A violated precondition is a programming error; use Try at the boundary where inputs come from
// somewhere untrusted (like a configuration file) to turn it back into an ordinary error.
type Error struct {
	Op  string // The operation that failed, e.g. "Vector3.Normalize"
	Err error  // One of the Err* sentinels
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fault(op string, err error) {
	panic(&Error{Op: op, Err: err})
}

// Try runs fn, returning the *Error it panicked with, if any. Any other panic is passed along untouched.
func Try(fn func()) (err error) {

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var rotErr *Error
		if e, ok := r.(error); ok && errors.As(e, &rotErr) {
			err = rotErr
			return
		}
		panic(r)
	}()

	fn()

	return nil

}
