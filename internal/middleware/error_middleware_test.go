package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid password", apperrors.ErrInvalidPassword, http.StatusUnauthorized, "Invalid password!"},
		{"link access denied", apperrors.ErrLinkAccessDenied, http.StatusForbidden, "Link Access Denied"},
		{"banned", apperrors.ErrAccountBanned, http.StatusForbidden, "banned"},
		{"role restricted", apperrors.ErrRoleRestricted, http.StatusBadRequest, "Registration for Admin/TPO is restricted"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "Email is already in use!"},
		{"drive reviewed", apperrors.ErrDriveNotPending, http.StatusBadRequest, "Drive has already been reviewed"},
		{"no rejection reason", apperrors.ErrRejectionNoReason, http.StatusBadRequest, "Rejection reason is required"},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusBadRequest, "Already applied"},
		{"own question", apperrors.ErrOwnQuestionLike, http.StatusBadRequest, "own question"},
		{"self chat", apperrors.ErrSelfChat, http.StatusBadRequest, "yourself"},
		{"user missing", apperrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"drive missing", apperrors.ErrDriveNotFound, http.StatusNotFound, "Drive not found"},
		{"receiver missing", apperrors.ErrReceiverNotFound, http.StatusNotFound, "Receiver not found"},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respond(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w := respond(t, apperrors.NewBadRequestError("Invalid drive date, expected YYYY-MM-DD"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid drive date, expected YYYY-MM-DD")
}

func TestHandleAPIErrorForbiddenMessage(t *testing.T) {
	w := respond(t, apperrors.NewForbiddenError("You cannot modify this drive"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You cannot modify this drive")
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrAlreadyApplied, "")
	w := respond(t, wrapped)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already applied")
}
