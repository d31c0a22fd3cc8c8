// errors.go - structured error responses for the inventory API
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is the JSON error envelope every endpoint returns on failure.
type APIError struct {
	Status  int      `json:"-"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 for malformed requests.
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = []string{cause.Error()}
	}
	return err
}

// NewParseError creates a 400 for a fatal CSV decode failure. The upload
// is aborted with no partial result; the user has to pick another file.
func NewParseError(cause error) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "PARSE_ERROR",
		Message: "无法解析文件，请检查CSV格式",
		Details: []string{cause.Error()},
	}
}

// NewValidationFailedError creates a 422 carrying the validator's error
// list. Nothing is stored when validation fails.
func NewValidationFailedError(errors []string) *APIError {
	return &APIError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_FAILED",
		Message: "文件校验失败",
		Details: errors,
	}
}

// NewNotFoundError creates a 404 for an id that is absent from the loaded
// dataset.
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewNoDataError creates a 404 for the empty state before any upload.
// Deliberately a different code from NOT_FOUND so the UI can show "please
// upload a file" instead of "no such device".
func NewNoDataError() *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NO_DATA",
		Message: "尚未上传设备清单",
	}
}

// NewConflictError creates a 409, used when an upload is already running.
func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: message,
	}
}

// NewInternalError creates a 500.
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = []string{cause.Error()}
	}
	return err
}

// ErrorHandler converts any returned error into the APIError envelope.
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "UNKNOWN_ERROR",
			Message: "An unexpected error occurred",
			Details: []string{err.Error()},
		}
	}

	c.JSON(apiErr.Status, apiErr)
}
