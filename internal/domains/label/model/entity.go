package model

import (
	"time"

	"github.com/google/uuid"
)

// Label - hãng đĩa; name được trim và là duy nhất
type Label struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ContactEmail *string    `json:"contact_email,omitempty"`
	Website      *string    `json:"website,omitempty"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
