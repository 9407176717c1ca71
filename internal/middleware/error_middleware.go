package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

// HandleAPIError maps service errors onto the wire error envelope.
// Wrapped CustomError messages travel verbatim so the client sees the
// same text the storage layer produced.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrConstraintViolation):
		// A rejected delete is reported, not failed: the dashboard shows
		// the message and keeps the row.
		c.JSON(http.StatusOK, api.MessageResponse{Message: message})

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrGradeNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeResourceExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeResourceExists, message)))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeValidationFailed, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeUnauthorized, "Authentication required")))

	default:
		// Internal detail stays out of the payload.
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(
			api.NewErrorDetail(api.ErrorCodeInternalServer, "Internal server error")))
	}
}

// BindError reports a request-body binding failure.
func BindError(c *gin.Context, err error) {
	detail := api.NewErrorDetail(api.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, api.NewErrorResponse(detail))
}
