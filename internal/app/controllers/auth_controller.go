package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// AuthController handles registration, signin, profile and public stats
type AuthController struct {
	authService      *services.AuthService
	analyticsService *services.AnalyticsService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, analyticsService *services.AnalyticsService) *AuthController {
	return &AuthController{
		authService:      authService,
		analyticsService: analyticsService,
	}
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid signup request: "+err.Error()))
		return
	}

	resp, err := ac.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Signin handles POST /api/auth/signin
func (ac *AuthController) Signin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid signin request: "+err.Error()))
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// An unknown address gets its own 401, distinct from a wrong password
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "User not found! Please register.")))
			return
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/auth/profile
func (ac *AuthController) GetProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	profile, err := ac.authService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJwtResponse("", profile))
}

// UpdateProfile handles PUT /api/auth/profile
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid profile request: "+err.Error()))
		return
	}

	resp, err := ac.authService.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PublicStats handles GET /api/auth/stats
func (ac *AuthController) PublicStats(c *gin.Context) {
	stats, err := ac.analyticsService.PublicStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
