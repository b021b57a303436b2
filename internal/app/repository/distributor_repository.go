package repository

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"gorm.io/gorm"
)

// DistributorRepository persists onboarding drafts (one slot per user) and
// finalized profiles (keyed by primary contact email).
type DistributorRepository interface {
	FindDraftByUserID(userID uint) (*model.DistributorDraft, error)
	SaveDraft(draft *model.DistributorDraft) error
	DeleteDraftByUserID(userID uint) error

	FindProfileByEmail(email string) (*model.DistributorProfile, error)
	SaveProfile(profile *model.DistributorProfile) error
	FindAllProfiles(status model.ProfileStatus) ([]model.DistributorProfile, error)
	CountProfiles(status model.ProfileStatus) (int64, error)
}

type distributorRepository struct {
	db *gorm.DB
}

func NewDistributorRepository(db *gorm.DB) DistributorRepository {
	return &distributorRepository{db: db}
}

func (r *distributorRepository) FindDraftByUserID(userID uint) (*model.DistributorDraft, error) {
	var draft model.DistributorDraft
	if err := r.db.Where("user_id = ?", userID).First(&draft).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *distributorRepository) SaveDraft(draft *model.DistributorDraft) error {
	if err := r.db.Save(draft).Error; err != nil {
		logger.Error("Failed to save distributor draft", err, map[string]interface{}{
			"user_id": draft.UserID,
		})
		return err
	}

	logger.Debug("Distributor draft saved", map[string]interface{}{
		"draft_id": draft.ID,
		"user_id":  draft.UserID,
	})
	return nil
}

func (r *distributorRepository) DeleteDraftByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.DistributorDraft{}).Error; err != nil {
		logger.Error("Failed to delete distributor draft", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}

// FindProfileByEmail expects an already-normalized email key
func (r *distributorRepository) FindProfileByEmail(email string) (*model.DistributorProfile, error) {
	var profile model.DistributorProfile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *distributorRepository) SaveProfile(profile *model.DistributorProfile) error {
	if err := r.db.Save(profile).Error; err != nil {
		logger.Error("Failed to save distributor profile", err, map[string]interface{}{
			"email": profile.Email,
		})
		return err
	}

	logger.Debug("Distributor profile saved", map[string]interface{}{
		"profile_id": profile.ID,
		"email":      profile.Email,
		"status":     profile.Status,
	})
	return nil
}

func (r *distributorRepository) FindAllProfiles(status model.ProfileStatus) ([]model.DistributorProfile, error) {
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var profiles []model.DistributorProfile
	if err := query.Find(&profiles).Error; err != nil {
		logger.Error("Failed to list distributor profiles", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return profiles, nil
}

func (r *distributorRepository) CountProfiles(status model.ProfileStatus) (int64, error) {
	var count int64
	query := r.db.Model(&model.DistributorProfile{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}
