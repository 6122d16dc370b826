package ecs

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity is returned when an operation names a handle that is not
// in the directory.
var ErrUnknownEntity = errors.New("unknown entity")

// EntityError records the operation and the handle that was rejected.
type EntityError struct {
	Op     string
	Entity Entity
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("ecs: %s: unknown entity %d", e.Op, e.Entity)
}

func (e *EntityError) Unwrap() error { return ErrUnknownEntity }
