package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/service"
	apperrors "github.com/Harry9429/Distro-app/internal/errors"
	"github.com/Harry9429/Distro-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type DistributorController struct {
	distributorService service.DistributorService
}

func NewDistributorController(distributorService service.DistributorService) *DistributorController {
	return &DistributorController{
		distributorService: distributorService,
	}
}

type ReviewProfileRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AttachFileRequest struct {
	Name string `json:"name" binding:"required"`
	Size string `json:"size"`
	URL  string `json:"url" binding:"required"`
}

// GetDraft returns the caller's onboarding draft
// GET /api/v1/distributor/draft
func (ctrl *DistributorController) GetDraft(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	draft, err := ctrl.distributorService.GetDraft(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":    draft,
		"complete": draft.Complete(),
	})
}

// SaveStep saves one wizard step
// PUT /api/v1/distributor/draft/steps/:step
func (ctrl *DistributorController) SaveStep(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.DistributorInvalidStep, "Step must be a number between 1 and 5")
		return
	}

	var data service.StepData
	if err := c.ShouldBindJSON(&data); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body is not valid JSON")
		return
	}

	draft, err := ctrl.distributorService.SaveDraftStep(userID, step, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStep) {
			apperrors.BadRequest(c, apperrors.DistributorInvalidStep, "Step must be a number between 1 and 5")
			return
		}
		log.Error("Failed to save draft step", err, map[string]interface{}{
			"user_id": userID,
			"step":    step,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "save draft step")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":    draft,
		"complete": draft.Complete(),
	})
}

// ClearDraft abandons the in-progress application
// DELETE /api/v1/distributor/draft
func (ctrl *DistributorController) ClearDraft(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	if err := ctrl.distributorService.ClearDraft(userID); err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "clear draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draft cleared"})
}

// Submit finalizes a complete draft into a pending application
// POST /api/v1/distributor/draft/submit
func (ctrl *DistributorController) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := ctrl.distributorService.Finalize(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftNotFound):
			apperrors.NotFound(c, apperrors.DistributorDraftNotFound, "No draft in progress")
		case errors.Is(err, service.ErrDraftIncomplete):
			apperrors.BadRequest(c, apperrors.DistributorDraftIncomplete, "All five steps must be completed first")
		case errors.Is(err, service.ErrProfileExists):
			apperrors.Conflict(c, apperrors.DistributorProfileExists, "A profile already exists for this email")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "submit application")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted",
		"profile": profile,
	})
}

// ListProfiles returns distributor profiles, optionally filtered by status
// GET /api/v1/distributors
func (ctrl *DistributorController) ListProfiles(c *gin.Context) {
	status := model.ProfileStatus(c.Query("status"))

	profiles, err := ctrl.distributorService.ListProfiles(status)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// GetProfile returns a profile by email. When no saved profile exists, a
// listing row passed through query parameters yields a synthesized preview
// so the detail view always renders.
// GET /api/v1/distributors/profile?email=...
func (ctrl *DistributorController) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email is required")
		return
	}

	profile, err := ctrl.distributorService.GetProfile(email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			if name := c.Query("name"); name != "" {
				preview := ctrl.distributorService.ProfileFromListing(service.ProfileListing{
					Name:         name,
					BusinessName: c.Query("business_name"),
					Email:        email,
					Phone:        c.Query("phone"),
					Status:       c.Query("listing_status"),
				})
				c.JSON(http.StatusOK, gin.H{
					"profile": preview,
					"preview": true,
				})
				return
			}
			apperrors.NotFound(c, apperrors.DistributorProfileNotFound, "Distributor profile not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Review approves or rejects a pending application
// PUT /api/v1/distributors/profile/review?email=...
func (ctrl *DistributorController) Review(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	email := c.Query("email")
	if email == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email is required")
		return
	}

	var req ReviewProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "status is required")
		return
	}

	profile, err := ctrl.distributorService.Review(reviewerID, email, model.ProfileStatus(req.Status), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			apperrors.NotFound(c, apperrors.DistributorProfileNotFound, "Distributor profile not found")
		case errors.Is(err, service.ErrInvalidReviewStatus):
			apperrors.BadRequest(c, apperrors.DistributorInvalidStatus, "Status must be approved or rejected")
		case errors.Is(err, service.ErrAlreadyReviewed):
			apperrors.Conflict(c, apperrors.DistributorAlreadyReviewed, "Profile has already been reviewed")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "review profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application " + req.Status,
		"profile": profile,
	})
}

// AttachFile records an uploaded document against a profile
// POST /api/v1/distributors/profile/files?email=...
func (ctrl *DistributorController) AttachFile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "email is required")
		return
	}

	var req AttachFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name and url are required")
		return
	}

	profile, err := ctrl.distributorService.AttachFile(email, model.AttachedFile{
		Name: req.Name,
		Size: req.Size,
		URL:  req.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.DistributorProfileNotFound, "Distributor profile not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "attach file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File attached",
		"profile": profile,
	})
}
