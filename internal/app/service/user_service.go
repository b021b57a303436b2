package service

import (
	"errors"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
	"gorm.io/gorm"
)

// UserService is the admin-facing team management surface. CreateUser is the
// only path that assigns an arbitrary role to a new account; users can never
// change their own role.
type UserService interface {
	CreateUser(email, password, name string, role model.UserRole) (*model.User, error)
	ListUsers() ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(email, password, name string, role model.UserRole) (*model.User, error) {
	normalized := util.NormalizeEmail(email)

	logger.Info("Admin creating user", map[string]interface{}{
		"email": normalized,
		"role":  role,
	})

	if normalized == "" {
		return nil, ErrEmailRequired
	}
	if !util.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(normalized)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = util.DisplayNameFromEmail(normalized)
	}

	user := &model.User{
		Email:        normalized,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User created by admin", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
	return user, nil
}

func (s *userService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}
