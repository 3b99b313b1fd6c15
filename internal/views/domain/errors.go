package domain

import "errors"

var (
	ErrForbidden = errors.New("not allowed to view this project")
	ErrNotFound  = errors.New("not found")
)
