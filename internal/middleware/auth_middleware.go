package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/auth"
)

const currentUserKey = "currentUser"

// AuthMiddleware handles per-request identity extraction and role gating
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
	adminEmail string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository, adminEmail string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		adminEmail: adminEmail,
	}
}

// Identify attaches the authenticated user to the context when a valid
// bearer token is present. It never aborts; enforcement is the job of the
// Require* gates, so anonymous routes can share the chain.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			c.Next()
			return
		}

		// Role and account status are read fresh so a ban or role change
		// takes effect before the token expires
		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless an ACTIVE authenticated user is attached
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		if user.AccountStatus != models.AccountActive {
			abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Your account has been banned. Contact the placement cell.")
			return
		}

		c.Next()
	}
}

// RequireTPO aborts unless the caller holds a privileged role AND signs in
// through the single configured admin address.
func (m *AuthMiddleware) RequireTPO() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		if !user.Role.IsPrivileged() || !strings.EqualFold(user.Email, m.adminEmail) {
			abortWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Link Access Denied. You are not authorized to login as Administrator.")
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Identify
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
