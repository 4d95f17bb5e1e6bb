package model

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	releasemodel "labelhub-backend/internal/domains/release/model"
)

// CreateSubmissionRequest - POST /release-form/create (multipart: trackFile, coverArt).
// Field names giữ camelCase như form của frontend.
type CreateSubmissionRequest struct {
	Title           string `form:"title" json:"title"`
	Version         string `form:"version" json:"version"`
	UPCCode         string `form:"upcCode" json:"upcCode"`
	PrimaryArtist   string `form:"primaryArtist" json:"primaryArtist"`
	Featuring       string `form:"featuring" json:"featuring"`
	Lyricist        string `form:"lyricist" json:"lyricist"`
	Composer        string `form:"composer" json:"composer"`
	Arranger        string `form:"arranger" json:"arranger"`
	Producer        string `form:"producer" json:"producer"`
	Genre           string `form:"genre" json:"genre"`
	TrackLanguage   string `form:"trackLanguage" json:"trackLanguage"`
	PLine           string `form:"pLine" json:"pLine"`
	CLine           string `form:"cLine" json:"cLine"`
	ReleaseLanguage string `form:"releaseLanguage" json:"releaseLanguage"`
	ProductionYear  string `form:"productionYear" json:"productionYear"`
	ReleaseDate     string `form:"releaseDate" json:"releaseDate"`
	Instrumental    string `form:"instrumental" json:"instrumental"`
	RemixOf         string `form:"remixOf" json:"remixOf"`
	ExplicitContent string `form:"explicitContent" json:"explicitContent"`
	OtherLsp        string `form:"otherLsp" json:"otherLsp"`
	Mood            string `form:"mood" json:"mood"`
	Tags            string `form:"tags" json:"tags"` // comma separated
}

func (r CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 500)),
		validation.Field(&r.PrimaryArtist, validation.Required.Error("primary artist is required"), validation.Length(1, 255)),
		validation.Field(&r.Genre, validation.Required.Error("genre is required"), validation.Length(1, 100)),
		validation.Field(&r.UPCCode, validation.Length(0, 64)),
		validation.Field(&r.ReleaseDate, validation.Date(releasemodel.DateLayout).Error("releaseDate must be YYYY-MM-DD")),
		validation.Field(&r.ProductionYear, validation.By(isYear)),
	)
}

func isYear(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if y, err := strconv.Atoi(s); err != nil || y < 1900 || y > 2100 {
		return validation.NewError("validation_year", "productionYear must be a year")
	}
	return nil
}

// Normalize trim mọi field text
func (r *CreateSubmissionRequest) Normalize() {
	for _, f := range []*string{
		&r.Title, &r.Version, &r.UPCCode, &r.PrimaryArtist, &r.Featuring, &r.Lyricist,
		&r.Composer, &r.Arranger, &r.Producer, &r.Genre, &r.TrackLanguage, &r.PLine,
		&r.CLine, &r.ReleaseLanguage, &r.ProductionYear, &r.ReleaseDate, &r.Instrumental,
		&r.RemixOf, &r.ExplicitContent, &r.OtherLsp, &r.Mood, &r.Tags,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// Metadata chuyển các field form sang metadata block của release.
// Boolean chỉ true khi giá trị là chuỗi "true".
func (r CreateSubmissionRequest) Metadata() releasemodel.Metadata {
	m := releasemodel.Metadata{
		Featuring:       r.Featuring,
		Lyricist:        r.Lyricist,
		Composer:        r.Composer,
		Arranger:        r.Arranger,
		Producer:        r.Producer,
		TrackLanguage:   r.TrackLanguage,
		PLine:           r.PLine,
		CLine:           r.CLine,
		ReleaseLanguage: r.ReleaseLanguage,
		Instrumental:    r.Instrumental == "true",
		RemixOf:         r.RemixOf,
		ExplicitContent: r.ExplicitContent == "true",
		OtherLsp:        r.OtherLsp == "true",
		Mood:            r.Mood,
		Tags:            SplitTags(r.Tags),
	}
	if y, err := strconv.Atoi(r.ProductionYear); err == nil {
		m.ProductionYear = &y
	}
	return m
}

// FormData là snapshot của form gốc, lưu vào uploads.form_data
func (r CreateSubmissionRequest) FormData() map[string]interface{} {
	return map[string]interface{}{
		"title":           r.Title,
		"version":         r.Version,
		"upcCode":         r.UPCCode,
		"primaryArtist":   r.PrimaryArtist,
		"featuring":       r.Featuring,
		"lyricist":        r.Lyricist,
		"composer":        r.Composer,
		"arranger":        r.Arranger,
		"producer":        r.Producer,
		"genre":           r.Genre,
		"trackLanguage":   r.TrackLanguage,
		"pLine":           r.PLine,
		"cLine":           r.CLine,
		"releaseLanguage": r.ReleaseLanguage,
		"productionYear":  r.ProductionYear,
		"releaseDate":     r.ReleaseDate,
		"instrumental":    r.Instrumental,
		"remixOf":         r.RemixOf,
		"explicitContent": r.ExplicitContent,
		"otherLsp":        r.OtherLsp,
		"mood":            r.Mood,
		"tags":            r.Tags,
	}
}

// SplitTags: "a, b,,c" -> [a b c]
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CreateSubmissionResult - response của POST /release-form/create
type CreateSubmissionResult struct {
	Release      *releasemodel.Release `json:"release"`
	SubmissionID uuid.UUID             `json:"submissionId"`
}

// UpdateStatusRequest - PATCH /release-form/submission/:id/status
type UpdateStatusRequest struct {
	Status releasemodel.Status `json:"status"`
	Notes  *string             `json:"notes,omitempty"`
}

// ListSubmissionsRequest: ReleaseStatus lọc theo status của release liên kết
type ListSubmissionsRequest struct {
	UploadedBy    *uuid.UUID
	ReleaseStatus string
	Page          int
	Limit         int
}
