package storage

import "context"

// ObjectStorage là contract cho nơi lưu file upload (MinIO ở production, in-memory trong tests)
type ObjectStorage interface {
	// Upload lưu data tại key và trả về URL public của file
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
