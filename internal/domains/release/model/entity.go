package model

import (
	"time"

	"github.com/google/uuid"
)

// Status - trạng thái phát hành. Không có state machine: admin/manager
// chuyển được sang bất kỳ trạng thái hợp lệ nào.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDelivered Status = "delivered"
	StatusTakedown  Status = "takedown"
	StatusRejected  Status = "rejected"
)

var AllStatuses = []Status{StatusPending, StatusApproved, StatusDelivered, StatusTakedown, StatusRejected}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Metadata lưu trong cột JSONB releases.metadata
type Metadata struct {
	Featuring       string   `json:"featuring,omitempty"`
	Lyricist        string   `json:"lyricist,omitempty"`
	Composer        string   `json:"composer,omitempty"`
	Arranger        string   `json:"arranger,omitempty"`
	Producer        string   `json:"producer,omitempty"`
	TrackLanguage   string   `json:"trackLanguage,omitempty"`
	PLine           string   `json:"pLine,omitempty"`
	CLine           string   `json:"cLine,omitempty"`
	ReleaseLanguage string   `json:"releaseLanguage,omitempty"`
	ProductionYear  *int     `json:"productionYear,omitempty"`
	Instrumental    bool     `json:"instrumental"`
	RemixOf         string   `json:"remixOf,omitempty"`
	ExplicitContent bool     `json:"explicitContent"`
	OtherLsp        bool     `json:"otherLsp"`
	Mood            string   `json:"mood,omitempty"`
	Tags            []string `json:"tags"`
}

type Release struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Version           *string    `json:"version,omitempty"`
	UPC               *string    `json:"upc,omitempty"`
	ArtistID          uuid.UUID  `json:"artist_id"`
	LabelID           *uuid.UUID `json:"label_id,omitempty"`
	Genre             *string    `json:"genre,omitempty"`
	ReleaseDate       *time.Time `json:"release_date,omitempty"`
	Description       *string    `json:"description,omitempty"`
	CoverArtURL       *string    `json:"cover_art_url,omitempty"`
	CoverThumbnailURL *string    `json:"cover_thumbnail_url,omitempty"`
	AudioFileURL      *string    `json:"audio_file_url,omitempty"`
	Status            Status     `json:"status"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	ApprovedBy        *uuid.UUID `json:"approved_by,omitempty"`
	CreatedBy         *uuid.UUID `json:"created_by,omitempty"`
	Metadata          Metadata   `json:"metadata"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Populated khi đọc (LEFT JOIN artists/labels)
	Artist *ArtistRef `json:"artist,omitempty"`
	Label  *LabelRef  `json:"label,omitempty"`
}

type ArtistRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Bio  *string   `json:"bio,omitempty"`
}

type LabelRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
