package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrInvalidImage       = errors.New("invalid cover art image")
)

// IsRejected: file bị từ chối do input của client (-> 400), không phải lỗi storage
func IsRejected(err error) bool {
	return errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrFileTypeNotAllowed) ||
		errors.Is(err, ErrInvalidImage)
}

// StoredFile là metadata của một file đã lưu vào object storage
type StoredFile struct {
	OriginalName string
	Filename     string // <uuid><ext>
	Key          string // uploads/<user-id>/<uuid><ext>
	URL          string
	MimeType     string
	Size         int64

	// Chỉ có với cover art
	ThumbnailKey string
	ThumbnailURL string
}

// Keys trả về mọi object key đã ghi cho file này (bản gốc + thumbnail)
func (f *StoredFile) Keys() []string {
	keys := []string{f.Key}
	if f.ThumbnailKey != "" {
		keys = append(keys, f.ThumbnailKey)
	}
	return keys
}

// Media lưu file upload từ multipart form
type Media interface {
	Save(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*StoredFile, error)
	// SaveCover validate ảnh, lưu bản gốc và thumbnail (ThumbnailKey/ThumbnailURL)
	SaveCover(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*StoredFile, error)
	Remove(ctx context.Context, key string) error
}

type MediaStore struct {
	storage      ObjectStorage
	images       *ImageProcessor
	maxSize      int64
	allowedTypes []string
}

// NewMediaStore: allowedTypes là prefix ("image/", "audio/") hoặc MIME đầy đủ ("application/pdf")
func NewMediaStore(storage ObjectStorage, images *ImageProcessor, maxSize int64, allowedTypes []string) *MediaStore {
	return &MediaStore{
		storage:      storage,
		images:       images,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (m *MediaStore) Save(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*StoredFile, error) {
	data, mime, err := m.read(fh)
	if err != nil {
		return nil, err
	}
	return m.put(ctx, owner, fh.Filename, data, mime)
}

func (m *MediaStore) SaveCover(ctx context.Context, owner uuid.UUID, fh *multipart.FileHeader) (*StoredFile, error) {
	data, mime, err := m.read(fh)
	if err != nil {
		return nil, err
	}
	if err := m.images.ValidateCover(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	thumb, err := m.images.Thumbnail(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	stored, err := m.put(ctx, owner, fh.Filename, data, mime)
	if err != nil {
		return nil, err
	}

	thumbKey := strings.TrimSuffix(stored.Key, filepath.Ext(stored.Key)) + "_thumb.jpg"
	thumbURL, err := m.storage.Upload(ctx, thumbKey, thumb, "image/jpeg")
	if err != nil {
		// Không để lại bản gốc khi thumbnail fail
		if rmErr := m.storage.Delete(ctx, stored.Key); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	stored.ThumbnailKey = thumbKey
	stored.ThumbnailURL = thumbURL
	return stored, nil
}

func (m *MediaStore) Remove(ctx context.Context, key string) error {
	return m.storage.Delete(ctx, key)
}

// read đọc toàn bộ file (tối đa maxSize) và sniff MIME từ nội dung, không tin header của client
func (m *MediaStore) read(fh *multipart.FileHeader) ([]byte, *mimetype.MIME, error) {
	if m.maxSize > 0 && fh.Size > m.maxSize {
		return nil, nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	reader := io.Reader(f)
	if m.maxSize > 0 {
		reader = io.LimitReader(f, m.maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	if m.maxSize > 0 && int64(len(data)) > m.maxSize {
		return nil, nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !m.allowed(mtype.String()) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
	}
	return data, mtype, nil
}

func (m *MediaStore) allowed(mime string) bool {
	if len(m.allowedTypes) == 0 {
		return true
	}
	// "audio/mpeg; charset=..." -> "audio/mpeg"
	base := strings.TrimSpace(strings.SplitN(mime, ";", 2)[0])
	for _, t := range m.allowedTypes {
		if strings.HasSuffix(t, "/") {
			if strings.HasPrefix(base, t) {
				return true
			}
			continue
		}
		if base == t {
			return true
		}
	}
	return false
}

func (m *MediaStore) put(ctx context.Context, owner uuid.UUID, original string, data []byte, mtype *mimetype.MIME) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = mtype.Extension()
	}
	mime := mtype.String()
	filename := uuid.NewString() + ext
	key := fmt.Sprintf("uploads/%s/%s", owner, filename)

	url, err := m.storage.Upload(ctx, key, data, mime)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", original, err)
	}

	return &StoredFile{
		OriginalName: original,
		Filename:     filename,
		Key:          key,
		URL:          url,
		MimeType:     mime,
		Size:         int64(len(data)),
	}, nil
}
