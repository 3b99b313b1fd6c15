package records

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrBadColumn = errors.New("bad column alias")
)
