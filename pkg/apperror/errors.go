package apperror

import (
	"fmt"
	"net/http"
)

// AppError carries the error_code, message and HTTP status of a failed
// request.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	msg := "[" + e.Code + "] " + e.Message
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so callers can compare against a constructor:
// errors.Is(err, apperror.ErrAlreadyProcessed("")).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches an internal cause that is logged but never serialized.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes returned in the error_code field.
const (
	CodeValidation          = "VAL_001"
	CodeNotFound            = "NF_001"
	CodeInvalidState        = "STATE_001"
	CodeAlreadyProcessed    = "STATE_002"
	CodeInsufficientBalance = "BAL_001"
	CodeOracleUnavailable   = "ORC_001"

	CodeInvalidAccessKey = "SEC_001"
	CodeInvalidSignature = "SEC_002"
	CodeTimestampExpired = "SEC_003"
	CodeNonceUsed        = "SEC_004"

	CodeInvalidCredentials = "AUTH_001"
	CodeUsernameExists     = "AUTH_002"
	CodeInvalidToken       = "AUTH_003"
	CodeMerchantSuspended  = "AUTH_004"
	CodeForbidden          = "AUTH_005"

	CodeRateLimited = "RATE_001"
	CodeInternal    = "SYS_001"
	CodeCrypto      = "SYS_003"
)

// Validation reports malformed input: non-positive amount, unknown currency,
// missing wallet, unknown withdrawal action.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("amount must be greater than zero")
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrInvalidState is returned when an operation is attempted on a record that
// is not in the state the operation requires.
func ErrInvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

// ErrAlreadyProcessed is returned for a duplicate resolve or confirm call. It
// never changes state.
func ErrAlreadyProcessed(message string) *AppError {
	return New(CodeAlreadyProcessed, message, http.StatusConflict)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient merchant balance", http.StatusPaymentRequired)
}

func ErrOracleUnavailable(err error) *AppError {
	return Wrap(CodeOracleUnavailable, "Confirmation oracle unavailable", http.StatusServiceUnavailable, err)
}

// HMAC request signing.

func ErrInvalidAccessKey() *AppError {
	return New(CodeInvalidAccessKey, "Invalid access key", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(CodeTimestampExpired, "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New(CodeNonceUsed, "Nonce has already been used", http.StatusForbidden)
}

// Dashboard and admin sessions.

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New(CodeUsernameExists, "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New(CodeMerchantSuspended, "Merchant account is suspended", http.StatusForbidden)
}

func ErrForbidden() *AppError {
	return New(CodeForbidden, "Insufficient role for this operation", http.StatusForbidden)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeCrypto, "Encryption service failure", http.StatusInternalServerError, err)
}

func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
