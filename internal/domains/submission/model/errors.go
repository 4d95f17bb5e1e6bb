package model

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAccessDenied       = errors.New("access denied")
)
