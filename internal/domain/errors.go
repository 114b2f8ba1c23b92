package domain

import "errors"

// ErrInvalidParams marks a request that failed boundary validation.
var ErrInvalidParams = errors.New("invalid parameters")
