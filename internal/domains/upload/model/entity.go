package model

import (
	"time"

	"github.com/google/uuid"
)

// FormTypeFileUpload - bản ghi của /uploads (khác release_creation của release-form)
const FormTypeFileUpload = "file_upload"

// Upload - metadata của một file đã lưu vào object storage
type Upload struct {
	ID           uuid.UUID  `json:"id"`
	OriginalName string     `json:"original_name"`
	Filename     string     `json:"filename"`
	FilePath     string     `json:"file_path"`
	FileURL      string     `json:"file_url"`
	MimeType     string     `json:"mime_type"`
	FileSize     int64      `json:"file_size"`
	UploadedBy   uuid.UUID  `json:"uploaded_by"`
	ReleaseID    *uuid.UUID `json:"release_id,omitempty"`
	FormType     string     `json:"form_type"`
	CreatedAt    time.Time  `json:"created_at"`
}
