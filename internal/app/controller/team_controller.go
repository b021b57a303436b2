package controller

import (
	"errors"
	"net/http"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/Harry9429/Distro-app/internal/permission"
	"github.com/gin-gonic/gin"
)

type TeamController struct {
	userService service.UserService
}

func NewTeamController(userService service.UserService) *TeamController {
	return &TeamController{
		userService: userService,
	}
}

type CreateMemberRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ListMembers returns all console accounts with their role labels
// GET /api/v1/team
func (ctrl *TeamController) ListMembers(c *gin.Context) {
	users, err := ctrl.userService.ListUsers()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list team members")
		return
	}

	members := make([]gin.H, 0, len(users))
	for i := range users {
		members = append(members, gin.H{
			"id":         users[i].ID,
			"email":      users[i].Email,
			"name":       users[i].Name,
			"role":       users[i].Role,
			"role_label": permission.RoleLabels[users[i].Role],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// CreateMember adds a console account with a role
// POST /api/v1/team
func (ctrl *TeamController) CreateMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	user, err := ctrl.userService.CreateUser(req.Email, req.Password, req.Name, model.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "An account with this email already exists")
		case errors.Is(err, service.ErrInvalidRole):
			apperrors.BadRequest(c, apperrors.AuthzInvalidRole, "Unknown role")
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrInvalidEmail):
			apperrors.BadRequest(c, apperrors.AuthInvalidEmail, "Please enter a valid email")
		case errors.Is(err, service.ErrPasswordRequired), errors.Is(err, service.ErrPasswordTooShort):
			apperrors.BadRequest(c, apperrors.AuthPasswordTooShort, "Password must be at least 6 characters")
		default:
			log.Error("Failed to create team member", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create team member")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team member created",
		"member": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"role_label": permission.RoleLabels[user.Role],
		},
	})
}
