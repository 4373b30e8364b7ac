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

// TPOController handles the privileged moderation and administration surface:
// drive approval, student management, course management and TPO analytics.
type TPOController struct {
	driveService     *services.DriveService
	userService      *services.UserService
	courseService    *services.CourseService
	analyticsService *services.AnalyticsService
}

// NewTPOController creates a new TPOController
func NewTPOController(
	driveService *services.DriveService,
	userService *services.UserService,
	courseService *services.CourseService,
	analyticsService *services.AnalyticsService,
) *TPOController {
	return &TPOController{
		driveService:     driveService,
		userService:      userService,
		courseService:    courseService,
		analyticsService: analyticsService,
	}
}

// ListPendingDrives handles GET /api/tpo/drives/pending
func (tc *TPOController) ListPendingDrives(c *gin.Context) {
	drives, err := tc.driveService.ListPending(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// ApproveDrive handles PUT /api/tpo/drives/:id/approve
func (tc *TPOController) ApproveDrive(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	drive, err := tc.driveService.Approve(c.Request.Context(), id, user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// RejectDrive handles PUT /api/tpo/drives/:id/reject
func (tc *TPOController) RejectDrive(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.RejectDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.ErrRejectionNoReason)
		return
	}

	drive, err := tc.driveService.Reject(c.Request.Context(), id, user.ID, req.Reason)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, drive)
}

// ListStudents handles GET /api/tpo/students?status=
func (tc *TPOController) ListStudents(c *gin.Context) {
	var status *models.AccountStatus
	if raw := c.Query("status"); raw != "" {
		s := models.AccountStatus(raw)
		status = &s
	}

	students, err := tc.userService.ListStudents(c.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// StudentDetails handles GET /api/tpo/students/:id
func (tc *TPOController) StudentDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	details, err := tc.userService.GetStudentDetails(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// BanStudent handles PUT /api/tpo/students/:id/ban
func (tc *TPOController) BanStudent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := tc.userService.Ban(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student banned"))
}

// ActivateStudent handles PUT /api/tpo/students/:id/activate
func (tc *TPOController) ActivateStudent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := tc.userService.Activate(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Student activated"))
}

// Stats handles GET /api/tpo/stats
func (tc *TPOController) Stats(c *gin.Context) {
	stats, err := tc.analyticsService.TPOStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateCourse handles POST /api/tpo/courses
func (tc *TPOController) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid course request: "+err.Error()))
		return
	}

	course, err := tc.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// ListCourses handles GET /api/tpo/courses?semester=
func (tc *TPOController) ListCourses(c *gin.Context) {
	var semester int
	if raw := c.Query("semester"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid semester parameter"))
			return
		}
		semester = n
	}

	courses, err := tc.courseService.List(c.Request.Context(), semester)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// UpdateCourse handles PUT /api/tpo/courses/:id
func (tc *TPOController) UpdateCourse(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid course request: "+err.Error()))
		return
	}

	course, err := tc.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/tpo/courses/:id
func (tc *TPOController) DeleteCourse(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := tc.courseService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}

// AssignCourse handles POST /api/tpo/courses/:id/assign/:userId
func (tc *TPOController) AssignCourse(c *gin.Context) {
	courseID, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := tc.courseService.Assign(c.Request.Context(), courseID, userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Course assigned"))
}

// UnassignCourse handles DELETE /api/tpo/courses/:id/unassign/:userId
func (tc *TPOController) UnassignCourse(c *gin.Context) {
	courseID, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := tc.courseService.Unassign(c.Request.Context(), courseID, userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Course unassigned"))
}
