package domain

import "errors"

// ErrNotFound indicates the requested row or stored blob does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput indicates the caller supplied malformed or missing input.
var ErrInvalidInput = errors.New("invalid input")
