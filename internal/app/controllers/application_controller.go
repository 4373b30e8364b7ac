package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// ApplicationController handles student applications to drives
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply handles POST /api/applications/apply?userId=&driveId=.
// The userId parameter defaults to the caller.
func (ac *ApplicationController) Apply(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	userID := user.ID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid userId parameter"))
			return
		}
		userID = parsed
	}

	driveID, err := strconv.ParseInt(c.Query("driveId"), 10, 64)
	if err != nil || driveID <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid driveId parameter"))
		return
	}

	if _, err := ac.applicationService.Apply(c.Request.Context(), userID, driveID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Applied successfully"))
}

// ListMine handles GET /api/applications/my
func (ac *ApplicationController) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	applications, err := ac.applicationService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListByDrive handles GET /api/applications/drive/:driveId
func (ac *ApplicationController) ListByDrive(c *gin.Context) {
	driveID, err := pathID(c, "driveId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	applications, err := ac.applicationService.ListByDrive(c.Request.Context(), driveID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListAll handles GET /api/applications?status=
func (ac *ApplicationController) ListAll(c *gin.Context) {
	var status *models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ApplicationStatus(raw)
		if !s.IsValid() {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid application status"))
			return
		}
		status = &s
	}

	applications, err := ac.applicationService.ListAll(c.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateStatus handles PUT /api/applications/:id/status
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid status request: "+err.Error()))
		return
	}

	if err := ac.applicationService.UpdateStatus(c.Request.Context(), id, models.ApplicationStatus(req.Status)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Application status updated"))
}
