package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(q string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+q, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		page  int
		limit int
	}{
		{"", 1, 10},
		{"page=3&limit=25", 3, 25},
		{"page=abc&limit=xyz", 1, 10},
		{"page=0&limit=-4", 1, 10},
		{"limit=1000", 1, 100},
	}
	for _, tt := range tests {
		p := ParsePagination(contextWithQuery(tt.query))
		assert.Equal(t, tt.page, p.Page, tt.query)
		assert.Equal(t, tt.limit, p.Limit, tt.query)
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageParams{Page: 3, Limit: 20}.Offset())
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 5, ParseLimit(contextWithQuery(""), 5))
	assert.Equal(t, 7, ParseLimit(contextWithQuery("limit=7"), 5))
	assert.Equal(t, 100, ParseLimit(contextWithQuery("limit=500"), 5))
}

func TestWhereBuilder(t *testing.T) {
	var w WhereBuilder
	assert.Equal(t, "", w.Clause())

	w.Add("status = ?", "pending")
	w.Add("(title ILIKE ? OR upc ILIKE ?)", "%abc%")

	assert.Equal(t, " WHERE status = $1 AND (title ILIKE $2 OR upc ILIKE $2)", w.Clause())
	assert.Equal(t, []any{"pending", "%abc%"}, w.Args())
	assert.Equal(t, 3, w.Next())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%abc%", ContainsPattern("abc"))
	assert.Equal(t, `%50\%\_off%`, ContainsPattern("50%_off"))
}

func TestOptionalFormFile_JSONRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"a":1}`))
	c.Request.Header.Set("Content-Type", "application/json")

	fh, err := OptionalFormFile(c, "coverArt")
	assert.NoError(t, err)
	assert.Nil(t, fh)
}
