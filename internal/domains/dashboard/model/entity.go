package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminStats - dashboard của admin/manager, toàn hệ thống
type AdminStats struct {
	TotalReleases     int64            `json:"totalReleases"`
	ReleasesByStatus  map[string]int64 `json:"releasesByStatus"`
	TotalUsers        int64            `json:"totalUsers"`
	TotalArtists      int64            `json:"totalArtists"`
	TotalLabels       int64            `json:"totalLabels"`
	RecentSubmissions int64            `json:"recentSubmissions"` // 7 ngày gần nhất
	PendingApprovals  int64            `json:"pendingApprovals"`
	GeneratedAt       time.Time        `json:"generatedAt"`
}

// UserStats - dashboard của artist, chỉ tính release/submission của chính user
type UserStats struct {
	TotalReleases    int64            `json:"totalReleases"`
	ReleasesByStatus map[string]int64 `json:"releasesByStatus"`
	TotalSubmissions int64            `json:"totalSubmissions"`
	PendingReleases  int64            `json:"pendingReleases"`
	ApprovedReleases int64            `json:"approvedReleases"`
}

type Activity struct {
	ID        uuid.UUID     `json:"id"`
	FormType  string        `json:"form_type"`
	FileName  *string       `json:"original_name,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Uploader  *UserRef      `json:"uploaded_by,omitempty"`
	Release   *ReleaseBrief `json:"release,omitempty"`
}

type RecentRelease struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Status            string    `json:"status"`
	CoverThumbnailURL *string   `json:"cover_thumbnail_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	Artist            *NamedRef `json:"artist,omitempty"`
	Label             *NamedRef `json:"label,omitempty"`
	Creator           *UserRef  `json:"created_by,omitempty"`
}

type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type NamedRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReleaseBrief struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
}

// Scope: OwnerID nil = toàn hệ thống (staff)
type Scope struct {
	OwnerID *uuid.UUID
}
