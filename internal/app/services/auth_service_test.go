package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/auth"
)

const testAdminEmail = "admin@placement.test"

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func newTestAuthService(userRepo *fakeUserRepo) *AuthService {
	return NewAuthService(userRepo, newTestJWTService(), testAdminEmail, zerolog.Nop())
}

func hashOrFail(t *testing.T, password string) string {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hashed
}

func TestSignupCreatesActiveUserAndToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	resp, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Asha Rao",
		Email:    "asha@students.test",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "STUDENT", resp.Role)

	stored, err := userRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountActive, stored.AccountStatus)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestSignupRejectsPrivilegedRoles(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	for _, role := range []models.Role{models.RoleTPO, models.RoleAdmin} {
		_, err := service.Signup(context.Background(), &dto.SignupRequest{
			Name:     "Mallory",
			Email:    "mallory@test",
			Password: "secret123",
			Role:     role,
		})
		assert.ErrorIs(t, err, apperrors.ErrRoleRestricted)
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Nobody",
		Email:    "nobody@test",
		Password: "secret123",
		Role:     models.Role("SUPERUSER"),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{
		Email:         "taken@students.test",
		Password:      hashOrFail(t, "whatever"),
		Role:          models.RoleStudent,
		AccountStatus: models.AccountActive,
	})
	service := newTestAuthService(userRepo)

	_, err := service.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Copycat",
		Email:    "taken@students.test",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{
		Email:         "asha@students.test",
		Password:      hashOrFail(t, "rightpass"),
		Role:          models.RoleStudent,
		AccountStatus: models.AccountActive,
	})
	service := newTestAuthService(userRepo)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@students.test",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestLoginBannedAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{
		Email:         "banned@students.test",
		Password:      hashOrFail(t, "secret123"),
		Role:          models.RoleStudent,
		AccountStatus: models.AccountBanned,
	})
	service := newTestAuthService(userRepo)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "banned@students.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountBanned)
}

func TestLoginPrivilegedRoleRequiresAdminAddress(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{
		Email:         "rogue-tpo@test",
		Password:      hashOrFail(t, "secret123"),
		Role:          models.RoleTPO,
		AccountStatus: models.AccountActive,
	})
	service := newTestAuthService(userRepo)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "rogue-tpo@test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrLinkAccessDenied)
}

func TestLoginAdminAddressSucceeds(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add(&models.User{
		Email:         testAdminEmail,
		Password:      hashOrFail(t, "tpo@123"),
		Role:          models.RoleTPO,
		AccountStatus: models.AccountActive,
	})
	service := newTestAuthService(userRepo)

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    testAdminEmail,
		Password: "tpo@123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "TPO", resp.Role)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	branch := "CSE"
	user := userRepo.add(&models.User{
		Name:          "Asha Rao",
		Email:         "asha@students.test",
		Password:      hashOrFail(t, "secret123"),
		Role:          models.RoleStudent,
		AccountStatus: models.AccountActive,
		Branch:        &branch,
	})
	service := newTestAuthService(userRepo)

	cgpa := 8.7
	resp, err := service.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{
		CGPA: &cgpa,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Token)
	require.NotNil(t, resp.CGPA)
	assert.Equal(t, 8.7, *resp.CGPA)

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", stored.Name)
	require.NotNil(t, stored.Branch)
	assert.Equal(t, "CSE", *stored.Branch)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{
		Name:          "Asha Rao",
		Email:         "asha@students.test",
		Password:      hashOrFail(t, "oldpass"),
		Role:          models.RoleStudent,
		AccountStatus: models.AccountActive,
	})
	service := newTestAuthService(userRepo)

	newPassword := "newpass99"
	_, err := service.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{
		Password: &newPassword,
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "newpass99"))
	assert.False(t, auth.CheckPassword(stored.Password, "oldpass"))
}
