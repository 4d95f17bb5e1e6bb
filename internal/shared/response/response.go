package response

import (
	"errors"
	"math"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Response là envelope chung cho mọi JSON response
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Pagination: Pages = ceil(Total/Limit)
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination tính số trang; limit <= 0 trả về 0 trang
func NewPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Paginated(c *gin.Context, statusCode int, message string, data interface{}, p *Pagination) {
	c.JSON(statusCode, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
	})
}

// Error trả về {"success": false, "error": message}.
// details chỉ được render khi là validation errors; error thường không được expose.
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	resp := Response{
		Success: false,
		Error:   message,
	}
	switch d := details.(type) {
	case nil:
	case error:
		var verrs validation.Errors
		if errors.As(d, &verrs) {
			resp.Details = verrs
		}
	default:
		resp.Details = d
	}
	c.JSON(statusCode, resp)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message, nil)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message, nil)
}

func InternalServerError(c *gin.Context) {
	Error(c, 500, "Internal server error", nil)
}
