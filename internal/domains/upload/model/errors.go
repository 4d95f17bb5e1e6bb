package model

import "errors"

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrAccessDenied   = errors.New("access denied")
	ErrNoFiles        = errors.New("no files uploaded")
	ErrTooManyFiles   = errors.New("too many files")
)
