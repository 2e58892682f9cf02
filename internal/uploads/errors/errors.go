package errors

import "errors"

var (
	ErrFileTooLarge  = errors.New("file too large")
	ErrNotAnImage    = errors.New("file is not an image")
	ErrNoFile        = errors.New("no file provided")
	ErrTooManyFiles  = errors.New("too many files")
	ErrStorageFailed = errors.New("storage upload failed")
)
