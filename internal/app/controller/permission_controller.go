package controller

import (
	"net/http"

	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/Harry9429/Distro-app/internal/permission"
	"github.com/gin-gonic/gin"
)

// PermissionController exposes the role permission table so the client-side
// route guard and the server enforce the same rules.
type PermissionController struct{}

func NewPermissionController() *PermissionController {
	return &PermissionController{}
}

// CheckPath reports whether the caller's role may navigate to a console path
// GET /api/v1/permissions/check?path=...
func (ctrl *PermissionController) CheckPath(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	path := c.Query("path")
	if path == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "path is required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":         path,
		"allowed":      permission.CanAccessPath(role, path),
		"default_path": permission.DefaultPath(role),
	})
}

// GetNavigation returns the caller's visible sections, tabs and landing route
// GET /api/v1/permissions/navigation
func (ctrl *PermissionController) GetNavigation(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":         role,
		"role_label":   permission.RoleLabels[role],
		"default_path": permission.DefaultPath(role),
		"sections":     permission.VisibleSidebarSections(role),
		"tabs":         permission.VisibleTabs(role),
	})
}
