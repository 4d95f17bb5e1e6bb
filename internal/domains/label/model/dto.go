package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateLabelRequest - POST /label
type CreateLabelRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Website      *string `json:"website,omitempty"`
}

func (r CreateLabelRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.ContactEmail, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Website, validation.NilOrNotEmpty, is.URL.Error("invalid website URL")),
	)
}

func (r *CreateLabelRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateLabelRequest - PUT /label/:id
type UpdateLabelRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Website      *string `json:"website,omitempty"`
}

func (r UpdateLabelRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty"), validation.Length(1, 255)),
		validation.Field(&r.ContactEmail, validation.NilOrNotEmpty, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Website, validation.NilOrNotEmpty, is.URL.Error("invalid website URL")),
	)
}

func (r *UpdateLabelRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	if r.Description != nil {
		desc := strings.TrimSpace(*r.Description)
		r.Description = &desc
	}
}

// ListLabelsRequest - GET /label?search=&page=&limit=
type ListLabelsRequest struct {
	Search string
	Page   int
	Limit  int
}
