package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelhub-backend/internal/shared"
	"labelhub-backend/pkg/jwt"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m *jwt.Manager, roles ...string) *gin.Engine {
	r := gin.New()
	r.Use(Recovery())
	chain := []gin.HandlerFunc{AuthMiddleware(m)}
	if len(roles) > 0 {
		chain = append(chain, RequireRoles(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       id.String(),
			"username": GetUsername(c),
			"role":     GetRole(c),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newRouter(jwt.NewManager(testSecret, time.Hour))

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer ").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour)
	r := newRouter(m)

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer garbage").Code)

	other := jwt.NewManager("another-secret", time.Hour)
	token, err := other.GenerateAccessToken(uuid.NewString(), "mallory", shared.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+token).Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour)
	r := newRouter(m)

	id := uuid.New()
	token, err := m.GenerateAccessToken(id.String(), "alice", shared.RoleArtist)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, shared.RoleArtist, body["role"])
}

func TestRequireRoles(t *testing.T) {
	m := jwt.NewManager(testSecret, time.Hour)
	r := newRouter(m, shared.RoleAdmin, shared.RoleManager)

	artist, _ := m.GenerateAccessToken(uuid.NewString(), "artist", shared.RoleArtist)
	manager, _ := m.GenerateAccessToken(uuid.NewString(), "manager", shared.RoleManager)

	assert.Equal(t, http.StatusForbidden, doRequest(r, "Bearer "+artist).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+manager).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
