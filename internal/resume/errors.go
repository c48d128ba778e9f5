package resume

import "fmt"

// ImportError represents a failure to parse or validate imported resume
// JSON.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
