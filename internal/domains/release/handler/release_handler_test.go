package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"labelhub-backend/internal/domains/release/model"
	"labelhub-backend/internal/infrastructure/storage"
	"labelhub-backend/internal/shared"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) release(args mock.Arguments) (*model.Release, error) {
	if r := args.Get(0); r != nil {
		return r.(*model.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, actorID uuid.UUID, req model.CreateReleaseRequest, files model.ReleaseFiles) (*model.Release, error) {
	return m.release(m.Called(ctx, actorID, req, files))
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return m.release(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, req model.ListReleasesRequest) ([]model.Release, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.Release), args.Get(1).(int64), args.Error(2)
}

func (m *mockService) Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdateReleaseRequest, files model.ReleaseFiles) (*model.Release, error) {
	return m.release(m.Called(ctx, actorID, id, req, files))
}

func (m *mockService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, status model.Status) (*model.Release, error) {
	return m.release(m.Called(ctx, actorID, id, status))
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Export(ctx context.Context, req model.ListReleasesRequest) (*excelize.File, error) {
	args := m.Called(ctx, req)
	if f := args.Get(0); f != nil {
		return f.(*excelize.File), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(h *ReleaseHandler, actor uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(shared.ContextUserID, actor)
		c.Set(shared.ContextRole, shared.RoleAdmin)
	})
	r.GET("/releases", h.List)
	r.GET("/releases/export", h.Export)
	r.GET("/releases/:id", h.Get)
	r.POST("/releases", h.Create)
	r.PATCH("/releases/:id/status", h.UpdateStatus)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreate_MultipartWithCover(t *testing.T) {
	svc := new(mockService)
	actor := uuid.New()
	artistID := uuid.NewString()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", "Discovery")
	_ = mw.WriteField("artist_id", artistID)
	_ = mw.WriteField("upc", "724384960650")
	_ = mw.WriteField("genre", "Electronic")
	fw, _ := mw.CreateFormFile("coverArt", "cover.png")
	_, _ = fw.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())

	svc.On("Create", mock.Anything, actor, mock.MatchedBy(func(req model.CreateReleaseRequest) bool {
		return req.Title == "Discovery" && req.ArtistID == artistID && req.UPC == "724384960650"
	}), mock.MatchedBy(func(f model.ReleaseFiles) bool {
		return f.Cover != nil && f.Cover.Filename == "cover.png" && f.Audio == nil
	})).Return(&model.Release{ID: uuid.New(), Title: "Discovery"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/releases", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(svc), actor).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate upc", model.ErrUPCAlreadyExists, http.StatusBadRequest},
		{"missing artist", model.ErrInvalidReference, http.StatusBadRequest},
		{"bad file", storage.ErrFileTypeNotAllowed, http.StatusBadRequest},
		{"validation", model.CreateReleaseRequest{}.Validate(), http.StatusBadRequest},
		{"db down", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/releases", strings.NewReader(`{"title":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter(NewReleaseHandler(svc), uuid.New()).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, false, decode(t, w)["success"])
		})
	}
}

func TestUpdateStatus_Approve(t *testing.T) {
	svc := new(mockService)
	actor := uuid.New()
	id := uuid.New()
	now := time.Now()
	svc.On("UpdateStatus", mock.Anything, actor, id, model.StatusApproved).
		Return(&model.Release{ID: id, Status: model.StatusApproved, ApprovedBy: &actor, ApprovedAt: &now}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/releases/"+id.String()+"/status", strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(svc), actor).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, actor.String(), data["approved_by"])
	assert.NotEmpty(t, data["approved_at"])
}

func TestUpdateStatus_Invalid(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	svc.On("UpdateStatus", mock.Anything, mock.Anything, id, model.Status("bogus")).Return(nil, model.ErrInvalidStatus)

	req := httptest.NewRequest(http.MethodPatch, "/releases/"+id.String()+"/status", strings.NewReader(`{"status":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(svc), uuid.New()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Filters(t *testing.T) {
	svc := new(mockService)
	artist := uuid.New()
	svc.On("List", mock.Anything, model.ListReleasesRequest{
		Status: "pending", ArtistID: &artist, Search: "disc", Page: 2, Limit: 3,
	}).Return([]model.Release{{ID: uuid.New()}, {ID: uuid.New()}}, int64(5), nil)

	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(svc), uuid.New()).ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/releases?status=pending&artist_id="+artist.String()+"&search=disc&page=2&limit=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["pagination"].(map[string]interface{})["pages"])
}

func TestList_BadArtistFilter(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(new(mockService)), uuid.New()).ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/releases?artist_id=nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport_WritesWorkbook(t *testing.T) {
	svc := new(mockService)
	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "ID")
	svc.On("Export", mock.Anything, model.ListReleasesRequest{}).Return(f, nil)

	w := httptest.NewRecorder()
	newRouter(NewReleaseHandler(svc), uuid.New()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/releases/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	v, _ := book.GetCellValue("Sheet1", "A1")
	assert.Equal(t, "ID", v)
}
