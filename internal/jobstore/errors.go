package jobstore

import "fmt"

// StoreError represents a job store read/write failure. The in-memory
// document is never modified by a failed store operation.
type StoreError struct {
	Op      string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("jobstore %s: %s: %v", e.Op, e.Message, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
