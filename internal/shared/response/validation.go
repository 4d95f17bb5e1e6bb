package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IsValidationError: ozzo validation.Errors marshal thành map field -> message
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// ValidationFailed trả về 400 kèm chi tiết từng field.
// Lỗi validation không có field (validation.Error) dùng message của chính nó.
func ValidationFailed(c *gin.Context, err error) {
	if IsValidationError(err) {
		Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}
	Error(c, http.StatusBadRequest, err.Error(), nil)
}
