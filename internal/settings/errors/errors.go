package errors

import "errors"

var (
	ErrNotFound = errors.New("settings document not found")
)
