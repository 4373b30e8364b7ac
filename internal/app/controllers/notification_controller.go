package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
)

// NotificationController handles the per-user notification feed
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List handles GET /api/notifications
func (nc *NotificationController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	notifications, err := nc.notificationService.List(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	count, err := nc.notificationService.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead handles PUT /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := nc.notificationService.MarkRead(c.Request.Context(), id, user.ID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked as read"))
}

// MarkAllRead handles PUT /api/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := nc.notificationService.MarkAllRead(c.Request.Context(), user.ID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("All notifications marked as read"))
}
