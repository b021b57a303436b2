package controller

import (
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	resourceService service.ResourceService
}

func NewResourceController(resourceService service.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// ListResources returns help center entries
// GET /api/v1/resources
func (ctrl *ResourceController) ListResources(c *gin.Context) {
	resources, err := ctrl.resourceService.ListResources(c.Query("category"))
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list resources")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"count":     len(resources),
	})
}
