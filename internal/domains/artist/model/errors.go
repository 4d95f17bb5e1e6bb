package model

import "errors"

var (
	ErrArtistNotFound      = errors.New("artist not found")
	ErrArtistAlreadyExists = errors.New("artist with this name already exists")
	ErrArtistInUse         = errors.New("cannot delete artist with existing releases")
)
