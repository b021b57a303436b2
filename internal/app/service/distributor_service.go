package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/notify"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrInvalidStep         = errors.New("step number must be between 1 and 5")
	ErrDraftNotFound       = errors.New("no draft in progress")
	ErrDraftIncomplete     = errors.New("all five steps must be completed first")
	ErrProfileNotFound     = errors.New("distributor profile not found")
	ErrProfileExists       = errors.New("a profile already exists for this email")
	ErrAlreadyReviewed     = errors.New("profile has already been reviewed")
	ErrInvalidReviewStatus = errors.New("status must be approved or rejected")
)

// Placeholder commercial terms stamped onto every newly finalized profile;
// an admin adjusts them after approval.
const (
	defaultAssignedPricing = "-50% on all order"
	defaultOrderLimits     = "20/30"
)

// StepData carries whichever step payload the wizard submitted; exactly one
// field is set, matching the step number.
type StepData struct {
	Company    *model.StepCompany    `json:"company,omitempty"`
	Contacts   *model.StepContacts   `json:"contacts,omitempty"`
	Operations *model.StepOperations `json:"operations,omitempty"`
	Ordering   *model.StepOrdering   `json:"ordering,omitempty"`
	Billing    *model.StepBilling    `json:"billing,omitempty"`
}

// ProfileListing is a table row on the distributors page; used both for
// rendering and as the seed for the detail-view fallback profile.
type ProfileListing struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
}

type DistributorService interface {
	GetDraft(userID uint) (*model.DistributorDraft, error)
	SaveDraftStep(userID uint, step int, data StepData) (*model.DistributorDraft, error)
	ClearDraft(userID uint) error
	Finalize(userID uint) (*model.DistributorProfile, error)

	GetProfile(email string) (*model.DistributorProfile, error)
	SetProfile(email string, profile *model.DistributorProfile) error
	ListProfiles(status model.ProfileStatus) ([]model.DistributorProfile, error)
	Review(reviewerID uint, email string, status model.ProfileStatus, reason string) (*model.DistributorProfile, error)
	AttachFile(email string, file model.AttachedFile) (*model.DistributorProfile, error)

	ProfileFromListing(row ProfileListing) *model.DistributorProfile
}

type distributorService struct {
	repo repository.DistributorRepository
	hub  *notify.Hub
}

func NewDistributorService(repo repository.DistributorRepository, hub *notify.Hub) DistributorService {
	return &distributorService{repo: repo, hub: hub}
}

// GetDraft returns the user's in-progress draft, or an empty one when
// nothing has been saved yet.
func (s *distributorService) GetDraft(userID uint) (*model.DistributorDraft, error) {
	draft, err := s.repo.FindDraftByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.DistributorDraft{UserID: userID}, nil
		}
		return nil, err
	}
	return draft, nil
}

// SaveDraftStep replaces the named step's data wholesale; other steps are
// untouched.
func (s *distributorService) SaveDraftStep(userID uint, step int, data StepData) (*model.DistributorDraft, error) {
	if step < 1 || step > 5 {
		return nil, ErrInvalidStep
	}

	draft, err := s.GetDraft(userID)
	if err != nil {
		return nil, err
	}

	switch step {
	case 1:
		draft.Company = data.Company
	case 2:
		draft.Contacts = data.Contacts
	case 3:
		draft.Operations = data.Operations
	case 4:
		draft.Ordering = data.Ordering
	case 5:
		draft.Billing = data.Billing
	}

	if err := s.repo.SaveDraft(draft); err != nil {
		return nil, err
	}

	logger.Info("Distributor draft step saved", map[string]interface{}{
		"user_id": userID,
		"step":    step,
	})
	return draft, nil
}

func (s *distributorService) ClearDraft(userID uint) error {
	return s.repo.DeleteDraftByUserID(userID)
}

// BuildProfileFromDraft produces a pending profile from a complete draft,
// or nil when any of the five steps is missing. The step data is carried
// over verbatim.
func BuildProfileFromDraft(draft *model.DistributorDraft) *model.DistributorProfile {
	if draft == nil || !draft.Complete() {
		return nil
	}
	return &model.DistributorProfile{
		Email:           util.NormalizeEmail(draft.Contacts.WorkEmail),
		Status:          model.ProfileStatusPending,
		Company:         *draft.Company,
		Contacts:        *draft.Contacts,
		Operations:      *draft.Operations,
		Ordering:        *draft.Ordering,
		Billing:         *draft.Billing,
		AssignedPricing: defaultAssignedPricing,
		OrderLimits:     defaultOrderLimits,
		AttachedFiles:   []model.AttachedFile{},
	}
}

// Finalize converts a complete draft into a pending profile keyed by the
// primary contact's work email, then clears the draft. Partial drafts never
// produce a profile.
func (s *distributorService) Finalize(userID uint) (*model.DistributorProfile, error) {
	draft, err := s.repo.FindDraftByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	profile := BuildProfileFromDraft(draft)
	if profile == nil {
		logger.Warn("Cannot finalize: draft incomplete", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrDraftIncomplete
	}

	existing, err := s.repo.FindProfileByEmail(profile.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	if err := s.repo.SaveProfile(profile); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteDraftByUserID(userID); err != nil {
		// the profile exists; a stale draft is only cosmetic
		logger.Warn("Failed to clear draft after finalize", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	logger.Info("Distributor application submitted", map[string]interface{}{
		"user_id": userID,
		"email":   profile.Email,
	})
	s.broadcast("distributor.submitted", profile)

	return profile, nil
}

func (s *distributorService) GetProfile(email string) (*model.DistributorProfile, error) {
	key := util.NormalizeEmail(email)
	if key == "" {
		return nil, ErrProfileNotFound
	}

	profile, err := s.repo.FindProfileByEmail(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SetProfile writes a profile under the normalized email key, creating or
// replacing as needed.
func (s *distributorService) SetProfile(email string, profile *model.DistributorProfile) error {
	key := util.NormalizeEmail(email)
	if key == "" {
		return ErrProfileNotFound
	}

	existing, err := s.repo.FindProfileByEmail(key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	profile.Email = key

	return s.repo.SaveProfile(profile)
}

func (s *distributorService) ListProfiles(status model.ProfileStatus) ([]model.DistributorProfile, error) {
	return s.repo.FindAllProfiles(status)
}

// Review moves a pending profile to approved or rejected. Both outcomes are
// terminal: a second review attempt fails.
func (s *distributorService) Review(reviewerID uint, email string, status model.ProfileStatus, reason string) (*model.DistributorProfile, error) {
	if status != model.ProfileStatusApproved && status != model.ProfileStatusRejected {
		return nil, ErrInvalidReviewStatus
	}

	profile, err := s.GetProfile(email)
	if err != nil {
		return nil, err
	}
	if profile.Status != model.ProfileStatusPending {
		logger.Warn("Review rejected: profile not pending", map[string]interface{}{
			"email":  profile.Email,
			"status": profile.Status,
		})
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	profile.Status = status
	profile.ReviewedByID = &reviewerID
	profile.ReviewedAt = &now
	if status == model.ProfileStatusRejected {
		profile.RejectionReason = reason
	}

	if err := s.repo.SaveProfile(profile); err != nil {
		return nil, err
	}

	logger.Info("Distributor profile reviewed", map[string]interface{}{
		"email":       profile.Email,
		"status":      status,
		"reviewer_id": reviewerID,
	})
	s.broadcast("distributor."+string(status), profile)

	return profile, nil
}

func (s *distributorService) AttachFile(email string, file model.AttachedFile) (*model.DistributorProfile, error) {
	profile, err := s.GetProfile(email)
	if err != nil {
		return nil, err
	}

	profile.AttachedFiles = append(profile.AttachedFiles, file)
	if err := s.repo.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ProfileFromListing synthesizes a plausible profile from a table row so the
// detail view always has something to render when no saved profile exists.
// Presentation fallback only; nothing is persisted.
func (s *distributorService) ProfileFromListing(row ProfileListing) *model.DistributorProfile {
	parts := strings.Fields(strings.TrimSpace(row.Name))
	firstName := row.Name
	lastName := row.Name
	if len(parts) > 0 {
		firstName = parts[0]
		if rest := strings.Join(parts[1:], " "); rest != "" {
			lastName = rest
		}
	}

	status := model.ProfileStatusPending
	if row.Status == "active" {
		status = model.ProfileStatusApproved
	}

	profile := sampleProfile()
	profile.Status = status
	profile.Email = util.NormalizeEmail(row.Email)
	if row.BusinessName != "" {
		profile.Company.LegalName = row.BusinessName
		profile.Company.TradingName = row.BusinessName
	}
	profile.Contacts.FirstName = firstName
	profile.Contacts.LastName = lastName
	profile.Contacts.WorkEmail = row.Email
	profile.Contacts.PhoneNumber = row.Phone
	return profile
}

func (s *distributorService) broadcast(event string, profile *model.DistributorProfile) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(notify.Event{
		Type: event,
		Payload: map[string]interface{}{
			"email":  profile.Email,
			"status": profile.Status,
		},
	})
}

// sampleProfile is the filler used by the listing fallback
func sampleProfile() *model.DistributorProfile {
	return &model.DistributorProfile{
		Status: model.ProfileStatusPending,
		Company: model.StepCompany{
			LegalName:         "Northstar Distribution Group LLC",
			TradingName:       "Northstar Distributors",
			CompanyRegNo:      "REG-4583921",
			TaxID:             "87-6543210",
			YearEstablished:   "2016",
			Country:           "US",
			Phone:             "+1 (303) 555-0198",
			RegisteredAddress: "2450 Industrial Parkway, Suite 300, Denver, CO 80216, United States",
			ShippingAddress:   "Same as registered business address",
			SameAsRegistered:  true,
		},
		Contacts: model.StepContacts{
			FirstName:    "Michael",
			LastName:     "Turner",
			JobTitle:     "Operations Manager",
			WorkEmail:    "m.turner@northstardistribution.com",
			PhoneCountry: "US",
			PhoneNumber:  "(303) 555-0198",
		},
		Operations: model.StepOperations{
			DistributorType: "Regional, Wholesale, B2B only",
			Industries:      []string{"CPG", "Beverage", "Supplements", "Health"},
			Countries:       []string{"US"},
			Locations:       "6-20",
		},
		Ordering: model.StepOrdering{
			OrderFrequency: "Bi-weekly",
			OrderSize:      "$25k-$100k",
		},
		Billing: model.StepBilling{
			PaymentMethod: "Invoice (Net terms)",
			CreditTerms:   "Net 30",
			Authorized:    true,
			TermsAgreed:   true,
		},
		AssignedPricing: defaultAssignedPricing,
		OrderLimits:     defaultOrderLimits,
		AttachedFiles:   []model.AttachedFile{},
	}
}
