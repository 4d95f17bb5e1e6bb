package model

import (
	"time"

	"github.com/google/uuid"
)

// FormTypeReleaseCreation phân biệt submission với file upload thường trong bảng uploads
const FormTypeReleaseCreation = "release_creation"

// Submission - một lần nộp release-form, lưu trong bảng uploads
type Submission struct {
	ID         uuid.UUID              `json:"id"`
	UploadedBy uuid.UUID              `json:"uploaded_by"`
	ReleaseID  *uuid.UUID             `json:"release_id,omitempty"`
	FormType   string                 `json:"form_type"`
	FormData   map[string]interface{} `json:"form_data,omitempty"`
	AdminNotes *string                `json:"admin_notes,omitempty"`
	ReviewedBy *uuid.UUID             `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time             `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`

	Release  *ReleaseSummary `json:"release,omitempty"`
	Uploader *Uploader       `json:"uploader,omitempty"`
}

type ReleaseSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	ArtistName *string   `json:"artist_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Uploader struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Statistics - GET /release-form/statistics
type Statistics struct {
	StatusCounts      map[string]int64 `json:"statusCounts"`
	RecentSubmissions int64            `json:"recentSubmissions"` // 30 ngày gần nhất
	TotalUsers        int64            `json:"totalUsers"`
	TotalArtists      int64            `json:"totalArtists"`
}
