package service

import (
	"testing"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func TestAuthService_Signup(t *testing.T) {
	authService := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		role     model.UserRole
		wantName string
		wantErr  error
	}{
		{
			name:     "Valid signup derives display name",
			email:    "hanzla@demo.com",
			password: "password123",
			role:     model.RoleMerchant,
			wantName: "Hanzla",
		},
		{
			name:     "Duplicate email",
			email:    "hanzla@demo.com",
			password: "password456",
			role:     model.RoleMerchant,
			wantErr:  ErrEmailAlreadyExists,
		},
		{
			name:     "Short password",
			email:    "short@demo.com",
			password: "123",
			role:     model.RoleMerchant,
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "Unknown role",
			email:    "weird@demo.com",
			password: "password123",
			role:     model.UserRole("superuser"),
			wantErr:  ErrInvalidRole,
		},
		{
			name:     "Invalid email format",
			email:    "not-an-email",
			password: "password123",
			role:     model.RoleMerchant,
			wantErr:  ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Signup(tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.wantName, user.Name)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	email := "areeba@demo.com"
	password := "password123"
	_, _, err := authService.Signup(email, password, model.RolePurchasingManager)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid login",
			email:    email,
			password: password,
		},
		{
			name:     "Email normalized before lookup",
			email:    "  AREEBA@Demo.com ",
			password: password,
		},
		{
			name:    "Empty email",
			email:   "",
			wantErr: ErrEmailRequired,
		},
		{
			name:    "Malformed email",
			email:   "areeba",
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "Empty password",
			email:   email,
			wantErr: ErrPasswordRequired,
		},
		{
			name:     "Unknown account",
			email:    "nobody@demo.com",
			password: password,
			wantErr:  ErrAccountNotFound,
		},
		{
			name:     "Wrong password",
			email:    email,
			password: "wrongpassword",
			wantErr:  ErrIncorrectPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, email, user.Email)
				assert.NotEmpty(t, tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_PasswordSecurity(t *testing.T) {
	authService := setupAuthServiceTest(t)

	password := "mySecretPassword123"
	user, _, err := authService.Signup("secure@demo.com", password, model.RoleMerchant)
	require.NoError(t, err)

	assert.NotEqual(t, password, user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$2a$")
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Signup("kumail@demo.com", "password123", model.RoleFinanceManager)
	require.NoError(t, err)

	found, err := authService.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = authService.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Signup("profile@demo.com", "password123", model.RoleMerchant)
	require.NoError(t, err)

	updated, err := authService.UpdateProfile(user.ID, "New Name", "+1 555 0100")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "+1 555 0100", updated.Phone)
}
