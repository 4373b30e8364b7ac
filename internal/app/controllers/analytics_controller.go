package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
)

// AnalyticsController handles the authenticated dashboard counters
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// StudentStats handles GET /api/analytics/student
func (ac *AnalyticsController) StudentStats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := ac.analyticsService.StudentStats(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
