// Package response writes the gateway's JSON envelopes. Every body carries
// the request id and an RFC3339 UTC timestamp so merchants can quote both
// when reporting a problem.
package response

import (
	"errors"
	"net/http"
	"time"

	"cryptopay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request id middleware fills.
const RequestIDKey = "request_id"

// SuccessResponse wraps every 2xx payload.
type SuccessResponse struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the only shape a failed call returns.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// PageData is the data of a list endpoint.
type PageData struct {
	Items      any   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func OK(c *gin.Context, data any) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	success(c, http.StatusCreated, data)
}

// Page replies 200 with one page of items and the paging counters.
func Page(c *gin.Context, items any, page, pageSize int, total int64) {
	success(c, http.StatusOK, PageData{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	})
}

// Error maps err onto its AppError code and status. Anything else is
// reported as SYS_000 without leaking its text; the cause stays on the gin
// context for the request logger.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	status, body := http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		body.ErrorCode = appErr.Code
		body.Message = appErr.Message
	}
	body.RequestID = requestID(c)
	body.Timestamp = timestamp()
	c.JSON(status, body)
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.NewString()
}
