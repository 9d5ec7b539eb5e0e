// Package translate wraps the machine-translation step applied to chat
// messages before broadcast.
package translate

import "fmt"

// Error reports a failed translation call against the external service.
type Error struct {
	TargetLang string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate to %q: %v", e.TargetLang, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
