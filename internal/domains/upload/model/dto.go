package model

import "github.com/google/uuid"

type ListUploadsRequest struct {
	UploadedBy uuid.UUID
	Page       int
	Limit      int
}
