package controller

import (
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetDashboardStats backs the overview and analytics pages
// GET /api/v1/analytics/dashboard
func (ctrl *AnalyticsController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.analyticsService.GetDashboardStats()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
