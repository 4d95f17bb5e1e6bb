package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateArtistRequest - POST /artist
type CreateArtistRequest struct {
	Name        string            `json:"name"`
	Bio         *string           `json:"bio,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Phone, validation.Length(0, 50)),
	)
}

func (r *CreateArtistRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateArtistRequest - PUT /artist/:id; nil = giữ nguyên
type UpdateArtistRequest struct {
	Name        *string           `json:"name,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty"), validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Phone, validation.Length(0, 50)),
	)
}

// ListArtistsRequest - GET /artist?search=&page=&limit=
type ListArtistsRequest struct {
	Search string
	Page   int
	Limit  int
}
