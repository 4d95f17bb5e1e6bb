package model

import (
	"time"

	"github.com/google/uuid"
)

// Artist - nghệ sĩ phát hành; name là duy nhất (artists_name_key)
type Artist struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Bio         *string           `json:"bio,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	SocialLinks map[string]string `json:"social_links"`
	CreatedBy   *uuid.UUID        `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
