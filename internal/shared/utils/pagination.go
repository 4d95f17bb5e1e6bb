package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams là page/limit đã được chuẩn hoá từ query string
type PageParams struct {
	Page  int
	Limit int
}

// Offset = (page - 1) * limit
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination đọc ?page=&limit=. Giá trị không phải số hoặc < 1 dùng default,
// limit bị chặn tối đa MaxLimit.
func ParsePagination(c *gin.Context) PageParams {
	return NormalizePage(
		parsePositive(c.Query("page"), DefaultPage),
		parsePositive(c.Query("limit"), DefaultLimit),
	)
}

// NormalizePage áp dụng cùng quy tắc cho giá trị đã parse sẵn
func NormalizePage(page, limit int) PageParams {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageParams{Page: page, Limit: limit}
}

// ParseLimit dùng cho các endpoint "recent N" (không có page)
func ParseLimit(c *gin.Context, def int) int {
	n := parsePositive(c.Query("limit"), def)
	if n > MaxLimit {
		n = MaxLimit
	}
	return n
}

func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
