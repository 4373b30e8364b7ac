package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers funnel
// every service error through here so status codes and messages stay in one
// place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Signin / signup
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid password!")
	case errors.Is(err, apperrors.ErrLinkAccessDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Link Access Denied. You are not authorized to login as Administrator.")
	case errors.Is(err, apperrors.ErrAccountBanned):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Your account has been banned. Contact the placement cell.")
	case errors.Is(err, apperrors.ErrRoleRestricted):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Registration for Admin/TPO is restricted. Contact system administrator.")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Email is already in use!")
	case errors.Is(err, apperrors.ErrStudentIDExists):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Student ID is already in use!")

	// Drives and applications
	case errors.Is(err, apperrors.ErrDriveNotPending):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeConflict, "Drive has already been reviewed")
	case errors.Is(err, apperrors.ErrRejectionNoReason):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Rejection reason is required")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeConflict, "Already applied")

	// Questions, chat, courses
	case errors.Is(err, apperrors.ErrOwnQuestionLike):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "You cannot mark your own question as helpful")
	case errors.Is(err, apperrors.ErrSelfChat):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "You cannot send a message to yourself")
	case errors.Is(err, apperrors.ErrCourseCodeExists):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Course code already exists")

	// Not found
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrReceiverNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Receiver not found")
	case errors.Is(err, apperrors.ErrDriveNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Drive not found")
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found")
	case errors.Is(err, apperrors.ErrQuestionNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Question not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Notification not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	// Auth plumbing
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, errorMessage(err, "Permission denied"))

	// Generic validation / conflict with a custom message
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, errorMessage(err, "Invalid request"))
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeConflict, errorMessage(err, "Conflict"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// errorMessage prefers the wrapped CustomError message over the fallback
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
