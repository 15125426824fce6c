package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondSuccess writes a success envelope.
func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// RespondError writes an error envelope.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: message}})
}

// RespondDomainError maps domain errors onto HTTP statuses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "access denied")
	case errors.Is(err, domain.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, domain.ErrUserInactive):
		RespondError(c, http.StatusForbidden, "USER_INACTIVE", "account is deactivated")
	case errors.Is(err, domain.ErrDuplicateEmail):
		RespondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "email already registered")
	case errors.Is(err, domain.ErrUnsupportedFileType):
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only pdf, jpg and png files are accepted")
	case errors.Is(err, domain.ErrFileTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the maximum allowed size")
	case errors.Is(err, domain.ErrUploadFailed):
		RespondError(c, http.StatusBadGateway, "UPLOAD_FAILED", "could not store the uploaded file")
	case errors.Is(err, domain.ErrDocumentNotReady):
		RespondError(c, http.StatusConflict, "DOCUMENT_NOT_READY", "document cannot accept processing results in its current state")
	default:
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}
