package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"labelhub-backend/internal/domains/label/model"
	"labelhub-backend/internal/shared"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) label(args mock.Arguments) (*model.Label, error) {
	if l := args.Get(0); l != nil {
		return l.(*model.Label), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, createdBy uuid.UUID, req model.CreateLabelRequest) (*model.Label, error) {
	return m.label(m.Called(ctx, createdBy, req))
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*model.Label, error) {
	return m.label(m.Called(ctx, id))
}

func (m *mockService) List(ctx context.Context, req model.ListLabelsRequest) ([]model.Label, int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]model.Label), args.Get(1).(int64), args.Error(2)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req model.UpdateLabelRequest) (*model.Label, error) {
	return m.label(m.Called(ctx, id, req))
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Search(ctx context.Context, term string, limit int) ([]model.Label, error) {
	args := m.Called(ctx, term, limit)
	return args.Get(0).([]model.Label), args.Error(1)
}

func newRouter(h *LabelHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(shared.ContextUserID, uuid.New())
		c.Set(shared.ContextRole, shared.RoleAdmin)
	})
	r.GET("/label/:id", h.Get)
	r.POST("/label", h.Create)
	r.DELETE("/label/:id", h.Delete)
	return r
}

func TestDelete_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unreferenced", nil, http.StatusOK},
		{"referenced", model.ErrLabelInUse, http.StatusBadRequest},
		{"missing", model.ErrLabelNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			id := uuid.New()
			svc.On("Delete", mock.Anything, id).Return(tt.err)

			w := httptest.NewRecorder()
			newRouter(NewLabelHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/label/"+id.String(), nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestCreate_Created(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, mock.Anything, model.CreateLabelRequest{Name: "Warp"}).
		Return(&model.Label{ID: uuid.New(), Name: "Warp"}, nil)

	w := httptest.NewRecorder()
	newRouter(NewLabelHandler(svc)).ServeHTTP(w,
		httptest.NewRequest(http.MethodPost, "/label", strings.NewReader(`{"name":"Warp"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGet_InvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(NewLabelHandler(new(mockService))).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/label/123", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
