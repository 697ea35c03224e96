package identity

import "errors"

var (
	ErrIncomplete = errors.New("incomplete identity")
)
