package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"labelhub-backend/internal/domains/upload/model"
)

type Service interface {
	UploadSingle(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*model.Upload, error)
	// UploadMultiple: tất cả hoặc không gì cả; object đã lưu bị xoá khi một file lỗi
	UploadMultiple(ctx context.Context, owner uuid.UUID, files []*multipart.FileHeader) ([]model.Upload, error)
	ListMine(ctx context.Context, req model.ListUploadsRequest) ([]model.Upload, int64, error)
	// Delete chỉ xoá metadata; object trong storage được giữ lại
	Delete(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error
}
