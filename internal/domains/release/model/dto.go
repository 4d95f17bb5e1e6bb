package model

import (
	"mime/multipart"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// CreateReleaseRequest - POST /releases (multipart hoặc JSON)
type CreateReleaseRequest struct {
	Title       string   `json:"title" form:"title"`
	Version     string   `json:"version" form:"version"`
	ArtistID    string   `json:"artist_id" form:"artist_id"`
	LabelID     string   `json:"label_id" form:"label_id"`
	UPC         string   `json:"upc" form:"upc"`
	Genre       string   `json:"genre" form:"genre"`
	ReleaseDate string   `json:"release_date" form:"release_date"`
	Description string   `json:"description" form:"description"`
	Metadata    Metadata `json:"metadata" form:"-"`
}

func (r CreateReleaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 500)),
		validation.Field(&r.ArtistID, validation.Required.Error("artist_id is required"), is.UUID.Error("artist_id must be a valid UUID")),
		validation.Field(&r.LabelID, is.UUID.Error("label_id must be a valid UUID")),
		validation.Field(&r.UPC, validation.Required.Error("upc is required"), validation.Length(1, 64)),
		validation.Field(&r.Genre, validation.Required.Error("genre is required"), validation.Length(1, 100)),
		validation.Field(&r.ReleaseDate, validation.Date(DateLayout).Error("release_date must be YYYY-MM-DD")),
	)
}

func (r *CreateReleaseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Version = strings.TrimSpace(r.Version)
	r.ArtistID = strings.TrimSpace(r.ArtistID)
	r.LabelID = strings.TrimSpace(r.LabelID)
	r.UPC = strings.TrimSpace(r.UPC)
	r.Genre = strings.TrimSpace(r.Genre)
	r.ReleaseDate = strings.TrimSpace(r.ReleaseDate)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateReleaseRequest - PUT /releases/:id; nil = giữ nguyên.
// Status không đổi qua endpoint này (dùng PATCH /releases/:id/status).
type UpdateReleaseRequest struct {
	Title       *string   `json:"title,omitempty" form:"title"`
	Version     *string   `json:"version,omitempty" form:"version"`
	ArtistID    *string   `json:"artist_id,omitempty" form:"artist_id"`
	LabelID     *string   `json:"label_id,omitempty" form:"label_id"`
	UPC         *string   `json:"upc,omitempty" form:"upc"`
	Genre       *string   `json:"genre,omitempty" form:"genre"`
	ReleaseDate *string   `json:"release_date,omitempty" form:"release_date"`
	Description *string   `json:"description,omitempty" form:"description"`
	Metadata    *Metadata `json:"metadata,omitempty" form:"-"`
}

func (r UpdateReleaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty"), validation.Length(1, 500)),
		validation.Field(&r.ArtistID, validation.NilOrNotEmpty, is.UUID.Error("artist_id must be a valid UUID")),
		validation.Field(&r.LabelID, is.UUID.Error("label_id must be a valid UUID")),
		validation.Field(&r.UPC, validation.NilOrNotEmpty.Error("upc cannot be empty"), validation.Length(1, 64)),
		validation.Field(&r.Genre, validation.NilOrNotEmpty.Error("genre cannot be empty")),
		validation.Field(&r.ReleaseDate, validation.Date(DateLayout).Error("release_date must be YYYY-MM-DD")),
	)
}

// Normalize trim các field được gửi lên; nil giữ nguyên
func (r *UpdateReleaseRequest) Normalize() {
	for _, f := range []*string{r.Title, r.Version, r.ArtistID, r.LabelID, r.UPC, r.Genre, r.ReleaseDate, r.Description} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// UpdateStatusRequest - PATCH /releases/:id/status
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// ReleaseFiles là các file đính kèm multipart (coverArt, audioFile)
type ReleaseFiles struct {
	Cover *multipart.FileHeader
	Audio *multipart.FileHeader
}

// ListReleasesRequest - GET /releases?status=&artist_id=&label_id=&search=
type ListReleasesRequest struct {
	Status    string
	ArtistID  *uuid.UUID
	LabelID   *uuid.UUID
	CreatedBy *uuid.UUID
	Search    string // title hoặc upc
	Page      int
	Limit     int
}

// ParseDate: chuỗi rỗng -> nil
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
