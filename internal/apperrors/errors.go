package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrInvalidOperation indicates that the operation is not permitted in the
// resource's current state, e.g. closing a shift that is already closed.
var ErrInvalidOperation = errors.New("operation not allowed in current state")

// ErrLimitExceeded indicates that a subscription plan limit would be exceeded.
var ErrLimitExceeded = errors.New("plan limit exceeded")

// ErrUnauthorized indicates missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrRefreshTokenExpired indicates the presented refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInvalidRefreshToken indicates the presented refresh token does not match the stored one.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AppError carries an HTTP status code alongside the underlying error so
// handlers can respond without re-mapping every sentinel.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates a 400 AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewBadRequestError creates a 400 AppError wrapping ErrValidation.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError creates a 409 AppError wrapping ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewUnauthorizedError creates a 401 AppError wrapping ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

// NewForbiddenError creates a 403 AppError wrapping ErrForbidden.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewInternalServerError creates a 500 AppError wrapping ErrInternal.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: ErrInternal}
}

// NewGatewayTimeoutError creates a 504 AppError for upstream service timeouts.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message, Err: ErrInternal}
}

// LimitExceededError reports that creating another business would exceed the
// user's subscription plan. It unwraps to ErrLimitExceeded and keeps the plan
// numbers so the API can tell the caller exactly what the ceiling is.
type LimitExceededError struct {
	PlanName      string
	MaxBusinesses int
	CurrentCount  int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("plan %s allows %d businesses, user already has %d", e.PlanName, e.MaxBusinesses, e.CurrentCount)
}

func (e *LimitExceededError) Unwrap() error {
	return ErrLimitExceeded
}

// NewLimitExceededError creates a LimitExceededError from plan details.
func NewLimitExceededError(planName string, maxBusinesses, currentCount int) *LimitExceededError {
	return &LimitExceededError{
		PlanName:      planName,
		MaxBusinesses: maxBusinesses,
		CurrentCount:  currentCount,
	}
}
