package mojolib

import "fmt"

// Status is the result code returned by every mutating operation in this
// package. Zero value is StatusNotInitialized so a zero-valued container
// that never went through its constructor reads as not-initialized rather
// than ok, and its guard checks (`if s.status != StatusOK`) correctly
// refuse to run.
type Status int

const (
	StatusNotInitialized Status = iota
	StatusOK
	StatusDoubleInitialized
	StatusInvalidArguments
	StatusCouldNotAlloc
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotInitialized:
		return "not-initialized"
	case StatusDoubleInitialized:
		return "double-initialized"
	case StatusInvalidArguments:
		return "invalid-arguments"
	case StatusCouldNotAlloc:
		return "could-not-alloc"
	case StatusNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Error lets Status be used anywhere an error is expected, without forcing
// callers who just want the code to import errors.As/Is machinery.
func (s Status) Error() string {
	return s.String()
}

// OK reports whether s is StatusOK. Named to read well at call sites:
// if status := set.Insert(k); !status.OK() { ... }
func (s Status) OK() bool {
	return s == StatusOK
}
