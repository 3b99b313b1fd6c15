package users

import "errors"

var (
	ErrUnknownUser  = errors.New("unknown user")
	ErrInactiveUser = errors.New("user is not active")
)
