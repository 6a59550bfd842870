package scaffold

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by generated repositories when update or delete targets a missing key.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrBadRequest marks request input that could not be parsed.
var ErrBadRequest = errors.New("bad request")
