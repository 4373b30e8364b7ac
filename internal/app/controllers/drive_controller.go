package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// DriveController handles the placement-drive CRUD surface
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{driveService: driveService}
}

// List handles GET /api/drives: the APPROVED drives every user sees
func (dc *DriveController) List(c *gin.Context) {
	drives, err := dc.driveService.ListApproved(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// ListActive handles GET /api/drives/active: approved drives that are still
// open for applications (deadline today or later).
func (dc *DriveController) ListActive(c *gin.Context) {
	drives, err := dc.driveService.ListActive(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// ListManaged handles GET /api/drives/all: HR sees their own drives in every
// state, TPO/ADMIN sees everything.
func (dc *DriveController) ListManaged(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	drives, err := dc.driveService.ListForManager(c.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// Get handles GET /api/drives/:id
func (dc *DriveController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	drive, err := dc.driveService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// Create handles POST /api/drives
func (dc *DriveController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.DriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid drive request: "+err.Error()))
		return
	}

	drive, err := dc.driveService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// Update handles PUT /api/drives/:id
func (dc *DriveController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.DriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid drive request: "+err.Error()))
		return
	}

	drive, err := dc.driveService.Update(c.Request.Context(), id, user, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// Delete handles DELETE /api/drives/:id. Applications go with the drive.
func (dc *DriveController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := dc.driveService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Drive deleted successfully"))
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
