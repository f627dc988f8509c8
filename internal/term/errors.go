package term

import "fmt"

// OutputError wraps a failed write or flush on the output sink. Terminal
// I/O failures are usually fatal to the session, so the engine propagates
// them without retrying; retry policy belongs to the caller.
type OutputError struct {
	Op  string
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("terminal output: %s: %v", e.Op, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OutputError{Op: op, Err: err}
}
