package handler

import (
	"encoding/json"
	"errors"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errEmptyBody = errors.New("request body is empty")

// bindJSON decodes the body into dst, trims it, validates the trimmed values
// and finally HTML-escapes it. On failure the VAL_001 reply is already
// written.
func bindJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil {
		response.Error(c, apperror.Validation(errEmptyBody.Error()))
		return false
	}
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.TrimStruct(dst)
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(dst)
	return true
}
