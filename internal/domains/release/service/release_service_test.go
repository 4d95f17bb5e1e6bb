package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared/response"
)

func newTestService() (*releaseService, *mockRepo, *mockMedia, *recordingRefresher) {
	repo := new(mockRepo)
	media := new(mockMedia)
	ref := &recordingRefresher{}
	return NewReleaseService(repo, media, ref).(*releaseService), repo, media, ref
}

func validCreate() model.CreateReleaseRequest {
	return model.CreateReleaseRequest{
		Title:       "Discovery",
		ArtistID:    uuid.NewString(),
		UPC:         "724384960650",
		Genre:       "Electronic",
		ReleaseDate: "2001-03-12",
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	svc, repo, _, _ := newTestService()

	tests := []struct {
		name  string
		mut   func(*model.CreateReleaseRequest)
		field string
	}{
		{"title", func(r *model.CreateReleaseRequest) { r.Title = " " }, "title"},
		{"artist", func(r *model.CreateReleaseRequest) { r.ArtistID = "" }, "artist_id"},
		{"artist uuid", func(r *model.CreateReleaseRequest) { r.ArtistID = "abc" }, "artist_id"},
		{"upc", func(r *model.CreateReleaseRequest) { r.UPC = "" }, "upc"},
		{"genre", func(r *model.CreateReleaseRequest) { r.Genre = "" }, "genre"},
		{"date", func(r *model.CreateReleaseRequest) { r.ReleaseDate = "12/03/2001" }, "release_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mut(&req)

			_, err := svc.Create(context.Background(), uuid.New(), req, model.ReleaseFiles{})
			require.Error(t, err)
			assert.True(t, response.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateUPC(t *testing.T) {
	svc, repo, _, ref := newTestService()
	req := validCreate()
	repo.On("FindByUPC", mock.Anything, req.UPC).Return(&model.Release{ID: uuid.New()}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), req, model.ReleaseFiles{})
	assert.ErrorIs(t, err, model.ErrUPCAlreadyExists)
	assert.Empty(t, ref.reasons)
}

func TestCreate_WithCoverAndAudio(t *testing.T) {
	svc, repo, media, ref := newTestService()
	actor := uuid.New()
	req := validCreate()
	cover := &multipart.FileHeader{Filename: "cover.png"}
	audio := &multipart.FileHeader{Filename: "track.wav"}

	repo.On("FindByUPC", mock.Anything, req.UPC).Return(nil, model.ErrReleaseNotFound)
	media.On("SaveCover", mock.Anything, actor, cover).
		Return(&storage.StoredFile{URL: "http://cdn/cover.png", ThumbnailURL: "http://cdn/cover_thumb.jpg"}, nil)
	media.On("Save", mock.Anything, actor, audio).
		Return(&storage.StoredFile{URL: "http://cdn/track.wav"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Release) bool {
		return r.Status == model.StatusPending &&
			*r.CreatedBy == actor &&
			*r.CoverArtURL == "http://cdn/cover.png" &&
			*r.CoverThumbnailURL == "http://cdn/cover_thumb.jpg" &&
			*r.AudioFileURL == "http://cdn/track.wav" &&
			r.ReleaseDate.Format(model.DateLayout) == "2001-03-12"
	})).Return(nil)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rel, err := svc.Create(context.Background(), actor, req, model.ReleaseFiles{Cover: cover, Audio: audio})
	require.NoError(t, err)
	assert.Equal(t, "Discovery", rel.Title)
	assert.Equal(t, []string{"release_created"}, ref.reasons)
	repo.AssertExpectations(t)
	media.AssertExpectations(t)
}

func TestCreate_RejectedFile(t *testing.T) {
	svc, repo, media, _ := newTestService()
	req := validCreate()
	audio := &multipart.FileHeader{Filename: "virus.exe"}

	repo.On("FindByUPC", mock.Anything, req.UPC).Return(nil, model.ErrReleaseNotFound)
	media.On("Save", mock.Anything, mock.Anything, audio).Return(nil, storage.ErrFileTypeNotAllowed)

	_, err := svc.Create(context.Background(), uuid.New(), req, model.ReleaseFiles{Audio: audio})
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InsertFailureRemovesUploadedFiles(t *testing.T) {
	svc, repo, media, ref := newTestService()
	actor := uuid.New()
	req := validCreate()
	cover := &multipart.FileHeader{Filename: "cover.png"}
	audio := &multipart.FileHeader{Filename: "track.wav"}

	repo.On("FindByUPC", mock.Anything, req.UPC).Return(nil, model.ErrReleaseNotFound)
	media.On("SaveCover", mock.Anything, actor, cover).Return(&storage.StoredFile{
		Key: "uploads/a/cover.png", URL: "http://cdn/cover.png",
		ThumbnailKey: "uploads/a/cover_thumb.jpg", ThumbnailURL: "http://cdn/cover_thumb.jpg",
	}, nil)
	media.On("Save", mock.Anything, actor, audio).
		Return(&storage.StoredFile{Key: "uploads/a/track.wav", URL: "http://cdn/track.wav"}, nil)
	media.On("Remove", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(model.ErrInvalidReference)

	_, err := svc.Create(context.Background(), actor, req, model.ReleaseFiles{Cover: cover, Audio: audio})
	assert.ErrorIs(t, err, model.ErrInvalidReference)
	for _, key := range []string{"uploads/a/cover.png", "uploads/a/cover_thumb.jpg", "uploads/a/track.wav"} {
		media.AssertCalled(t, "Remove", mock.Anything, key)
	}
	assert.Empty(t, ref.reasons)
}

func TestCreate_AudioRejectedRemovesCover(t *testing.T) {
	svc, repo, media, _ := newTestService()
	actor := uuid.New()
	req := validCreate()
	cover := &multipart.FileHeader{Filename: "cover.png"}
	audio := &multipart.FileHeader{Filename: "virus.exe"}

	repo.On("FindByUPC", mock.Anything, req.UPC).Return(nil, model.ErrReleaseNotFound)
	media.On("SaveCover", mock.Anything, actor, cover).Return(&storage.StoredFile{
		Key: "uploads/a/cover.png", ThumbnailKey: "uploads/a/cover_thumb.jpg",
	}, nil)
	media.On("Save", mock.Anything, actor, audio).Return(nil, storage.ErrFileTypeNotAllowed)
	media.On("Remove", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), actor, req, model.ReleaseFiles{Cover: cover, Audio: audio})
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	media.AssertNumberOfCalls(t, "Remove", 2)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdate_PersistFailureRemovesUploadedFiles(t *testing.T) {
	svc, repo, media, _ := newTestService()
	actor := uuid.New()
	id := uuid.New()
	audio := &multipart.FileHeader{Filename: "track.wav"}

	repo.On("FindByID", mock.Anything, id).Return(&model.Release{ID: id, Title: "Old"}, nil)
	media.On("Save", mock.Anything, actor, audio).
		Return(&storage.StoredFile{Key: "uploads/a/track.wav", URL: "http://cdn/track.wav"}, nil)
	media.On("Remove", mock.Anything, "uploads/a/track.wav").Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(model.ErrInvalidReference)

	_, err := svc.Update(context.Background(), actor, id, model.UpdateReleaseRequest{}, model.ReleaseFiles{Audio: audio})
	assert.ErrorIs(t, err, model.ErrInvalidReference)
	media.AssertCalled(t, "Remove", mock.Anything, "uploads/a/track.wav")
}

func TestUpdateStatus(t *testing.T) {
	actor := uuid.New()
	id := uuid.New()

	t.Run("invalid", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		_, err := svc.UpdateStatus(context.Background(), actor, id, "archived")
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("approve stamps approver", func(t *testing.T) {
		svc, repo, _, ref := newTestService()
		approvedAt := time.Now()
		repo.On("UpdateStatus", mock.Anything, id, model.StatusApproved, &actor).
			Return(&model.Release{ID: id, Status: model.StatusApproved, ApprovedBy: &actor, ApprovedAt: &approvedAt}, nil)

		rel, err := svc.UpdateStatus(context.Background(), actor, id, model.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, &actor, rel.ApprovedBy)
		assert.NotNil(t, rel.ApprovedAt)
		assert.Equal(t, []string{"status_changed"}, ref.reasons)
	})

	t.Run("other status leaves approver", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		repo.On("UpdateStatus", mock.Anything, id, model.StatusTakedown, (*uuid.UUID)(nil)).
			Return(&model.Release{ID: id, Status: model.StatusTakedown}, nil)

		rel, err := svc.UpdateStatus(context.Background(), actor, id, model.StatusTakedown)
		require.NoError(t, err)
		assert.Equal(t, model.StatusTakedown, rel.Status)
	})

	t.Run("missing release", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		repo.On("UpdateStatus", mock.Anything, id, model.StatusRejected, (*uuid.UUID)(nil)).
			Return(nil, model.ErrReleaseNotFound)

		_, err := svc.UpdateStatus(context.Background(), actor, id, model.StatusRejected)
		assert.ErrorIs(t, err, model.ErrReleaseNotFound)
	})
}

func TestUpdate_ChangedUPCMustBeFree(t *testing.T) {
	svc, repo, _, _ := newTestService()
	id := uuid.New()
	old := "111"
	repo.On("FindByID", mock.Anything, id).Return(&model.Release{ID: id, UPC: &old}, nil)
	repo.On("FindByUPC", mock.Anything, "222").Return(&model.Release{ID: uuid.New()}, nil)

	upc := "222"
	_, err := svc.Update(context.Background(), uuid.New(), id, model.UpdateReleaseRequest{UPC: &upc}, model.ReleaseFiles{})
	assert.ErrorIs(t, err, model.ErrUPCAlreadyExists)
}

func TestUpdate_ClearsLabel(t *testing.T) {
	svc, repo, _, _ := newTestService()
	id := uuid.New()
	label := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.Release{ID: id, Title: "Old", LabelID: &label}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *model.Release) bool {
		return r.LabelID == nil && r.Title == "New"
	})).Return(nil)
	repo.On("FindByID", mock.Anything, id).Return(&model.Release{ID: id, Title: "New"}, nil)

	title, empty := "New", ""
	rel, err := svc.Update(context.Background(), uuid.New(), id, model.UpdateReleaseRequest{Title: &title, LabelID: &empty}, model.ReleaseFiles{})
	require.NoError(t, err)
	assert.Equal(t, "New", rel.Title)
}

func TestUpdate_TrimsFields(t *testing.T) {
	svc, repo, _, _ := newTestService()
	id := uuid.New()

	blank := "   "
	_, err := svc.Update(context.Background(), uuid.New(), id, model.UpdateReleaseRequest{Title: &blank}, model.ReleaseFiles{})
	require.Error(t, err)
	assert.True(t, response.IsValidationError(err))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

	repo.On("FindByID", mock.Anything, id).Return(&model.Release{ID: id, Title: "Old"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *model.Release) bool {
		return r.Title == "Homework" && *r.Genre == "House"
	})).Return(nil)

	title, genre := "  Homework ", "House  "
	_, err = svc.Update(context.Background(), uuid.New(), id, model.UpdateReleaseRequest{Title: &title, Genre: &genre}, model.ReleaseFiles{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, _, err := svc.List(context.Background(), model.ListReleasesRequest{Status: "unknown"})
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestExport(t *testing.T) {
	svc, repo, _, _ := newTestService()
	upc := "724384960650"
	date := time.Date(2001, 3, 12, 0, 0, 0, 0, time.UTC)
	repo.On("ListAll", mock.Anything, model.ListReleasesRequest{Status: "approved"}, MaxExportRows).Return([]model.Release{{
		ID:          uuid.New(),
		Title:       "Discovery",
		UPC:         &upc,
		Status:      model.StatusApproved,
		ReleaseDate: &date,
		Artist:      &model.ArtistRef{Name: "Daft Punk"},
		Metadata:    model.Metadata{Tags: []string{"house", "french"}},
	}}, nil)

	f, err := svc.Export(context.Background(), model.ListReleasesRequest{Status: "approved"})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Discovery", rows[1][1])
	assert.Equal(t, upc, rows[1][3])
	assert.Equal(t, "Daft Punk", rows[1][4])
	assert.Equal(t, "2001-03-12", rows[1][7])
	assert.Equal(t, "approved", rows[1][8])
	assert.Equal(t, "house, french", rows[1][13])
}
