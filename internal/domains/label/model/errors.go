package model

import "errors"

var (
	ErrLabelNotFound      = errors.New("label not found")
	ErrLabelAlreadyExists = errors.New("label with this name already exists")
	ErrLabelInUse         = errors.New("cannot delete label that is used by releases")
)
