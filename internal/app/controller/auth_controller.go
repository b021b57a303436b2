package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/Harry9429/Distro-app/internal/permission"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login validation lives in the service so each failure mode gets its own
// error code; the request struct deliberately carries no binding tags.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Login handles user login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		respondLoginError(c, err, req.Email)
		return
	}

	log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":      "Logged in successfully",
		"user":         userPayload(user),
		"tokens":       tokens,
		"default_path": permission.DefaultPath(user.Role),
	})
}

// Signup handles account creation
// POST /api/v1/auth/signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	role := model.UserRole(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleMerchant
	}

	user, tokens, err := ctrl.authService.Signup(req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "An account with this email already exists")
		case errors.Is(err, service.ErrInvalidRole):
			apperrors.BadRequest(c, apperrors.AuthzInvalidRole, "Unknown role")
		case errors.Is(err, service.ErrPasswordTooShort):
			apperrors.BadRequest(c, apperrors.AuthPasswordTooShort, "Password must be at least 6 characters")
		default:
			respondLoginError(c, err, req.Email)
		}
		return
	}

	log.Info("User signed up", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Account created successfully",
		"user":         userPayload(user),
		"tokens":       tokens,
		"default_path": permission.DefaultPath(user.Role),
	})
}

// Logout revokes the presented access token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	ctrl.authService.Logout(c.Request.Context(), token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user's profile and console entitlements
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         userPayload(user),
		"default_path": permission.DefaultPath(user.Role),
		"sections":     permission.VisibleSidebarSections(user.Role),
		"tabs":         permission.VisibleTabs(user.Role),
	})
}

// UpdateProfile updates the authenticated user's name and phone
// PUT /api/v1/auth/me
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    userPayload(user),
	})
}

func respondLoginError(c *gin.Context, err error, email string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrEmailRequired):
		apperrors.BadRequest(c, apperrors.AuthEmailRequired, "Email is required")
	case errors.Is(err, service.ErrInvalidEmail):
		apperrors.BadRequest(c, apperrors.AuthInvalidEmail, "Please enter a valid email")
	case errors.Is(err, service.ErrPasswordRequired):
		apperrors.BadRequest(c, apperrors.AuthPasswordRequired, "Password is required")
	case errors.Is(err, service.ErrAccountNotFound):
		log.Warn("Login failed: account not found", map[string]interface{}{
			"email": email,
		})
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthAccountNotFound, "No account found with this email")
	case errors.Is(err, service.ErrIncorrectPassword):
		log.Warn("Login failed: incorrect password", map[string]interface{}{
			"email": email,
		})
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthIncorrectPassword, "Incorrect password")
	default:
		log.Error("Login failed", err, map[string]interface{}{
			"email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "login")
	}
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"phone": user.Phone,
		"role":  user.Role,
	}
}
