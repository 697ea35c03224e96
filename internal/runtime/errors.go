package runtime

import "errors"

var (
	ErrMissingTag     = errors.New("image tag required")
	ErrMissingContext = errors.New("build context directory required")
	ErrMissingImage   = errors.New("image name required")
)
