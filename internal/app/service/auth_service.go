package service

import (
	"context"
	"errors"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/redis"
	"github.com/Harry9429/Distro-app/pkg/util"
	"gorm.io/gorm"
)

// Login failures are deliberately specific: this is a demo console and the
// login form shows the user exactly what went wrong, including whether the
// email exists at all.
var (
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrAccountNotFound    = errors.New("no account found with this email")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrInvalidRole        = errors.New("unknown role")
	ErrUserNotFound       = errors.New("user not found")
)

const minPasswordLength = 6

type AuthService interface {
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Signup(email, password string, role model.UserRole) (*model.User, *util.TokenPair, error)
	Logout(ctx context.Context, token string)
	GetUserByID(id uint) (*model.User, error)
	UpdateProfile(userID uint, name, phone string) (*model.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	normalized := util.NormalizeEmail(email)

	logger.Info("Login attempt", map[string]interface{}{
		"email": normalized,
	})

	if normalized == "" {
		return nil, nil, ErrEmailRequired
	}
	if !util.IsValidEmail(email) {
		return nil, nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, nil, ErrPasswordRequired
	}

	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: account not found", map[string]interface{}{
				"email": normalized,
			})
			return nil, nil, ErrAccountNotFound
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": normalized,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: incorrect password", map[string]interface{}{
			"email":   normalized,
			"user_id": user.ID,
		})
		return nil, nil, ErrIncorrectPassword
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

func (s *authService) Signup(email, password string, role model.UserRole) (*model.User, *util.TokenPair, error) {
	normalized := util.NormalizeEmail(email)

	logger.Info("Attempting signup", map[string]interface{}{
		"email": normalized,
		"role":  role,
	})

	if normalized == "" {
		return nil, nil, ErrEmailRequired
	}
	if !util.IsValidEmail(email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}
	if !model.ValidRole(role) {
		return nil, nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(normalized)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing account", err, map[string]interface{}{
			"email": normalized,
		})
		return nil, nil, err
	}
	if existing != nil {
		logger.Warn("Signup failed: email already exists", map[string]interface{}{
			"email": normalized,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": normalized,
		})
		return nil, nil, err
	}

	user := &model.User{
		Email:        normalized,
		PasswordHash: hash,
		Name:         util.DisplayNameFromEmail(normalized),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create account", err, map[string]interface{}{
			"email": normalized,
		})
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("Account created successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

// Logout clears the session. The blacklist write is best-effort: a Redis
// failure is logged and swallowed so signing out never fails from the user's
// point of view.
func (s *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}

	claims, err := util.ValidateToken(token, s.jwtSecret)
	if err != nil {
		// already invalid or expired, nothing to revoke
		return
	}

	if redis.GetClient() == nil {
		return
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return
	}
	if err := redis.BlacklistToken(ctx, token, remaining); err != nil {
		logger.Warn("Failed to blacklist token on logout", map[string]interface{}{
			"user_id": claims.UserID,
			"error":   err.Error(),
		})
		return
	}

	logger.Info("User logged out", map[string]interface{}{
		"user_id": claims.UserID,
	})
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(userID uint, name, phone string) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for profile update", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	updated := false
	if name != "" && name != user.Name {
		user.Name = name
		updated = true
	}
	if phone != "" && phone != user.Phone {
		user.Phone = phone
		updated = true
	}
	if !updated {
		return user, nil
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User profile updated", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}
