package model

import "errors"

var (
	ErrReleaseNotFound  = errors.New("release not found")
	ErrUPCAlreadyExists = errors.New("UPC already exists")
	ErrInvalidStatus    = errors.New("invalid status. Must be one of: pending, approved, delivered, takedown, rejected")
	// artist_id/label_id không tồn tại (foreign key violation)
	ErrInvalidReference = errors.New("artist or label does not exist")
)
