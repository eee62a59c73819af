package impl

import "errors"

var (
	ErrEmptyPassword = errors.New("empty password")
	ErrEmptyToken    = errors.New("empty token")
)
