package engine

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an operation referenced a task id absent from the
// store. Callers that want no-op semantics check for it with IsNotFound.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// InvalidInputError rejects a mutation before any state change.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return e.Reason
}
