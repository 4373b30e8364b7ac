package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/auth"
)

// AuthService handles registration, signin and profile maintenance
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	adminEmail string
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, adminEmail string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Signup registers a new STUDENT, ALUMNI or HR account and signs the user in.
// TPO and ADMIN registration is refused; the privileged account only comes
// from the boot seed.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.JwtResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	if req.Role.IsPrivileged() {
		return nil, apperrors.ErrRoleRestricted
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Password:      hashed,
		Role:          req.Role,
		AccountStatus: models.AccountActive,
		Branch:        req.Branch,
		CGPA:          req.CGPA,
		Phone:         req.Phone,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return dto.NewJwtResponse(token, user), nil
}

// Login authenticates a user and mints an access token. Unknown email and bad
// password are reported separately. A privileged role may only sign in through
// the single configured admin address.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.JwtResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}

	if user.Role.IsPrivileged() && !strings.EqualFold(user.Email, s.adminEmail) {
		s.logger.Warn().Str("email", user.Email).Msg("Privileged login refused for non-admin address")
		return nil, apperrors.ErrLinkAccessDenied
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	if user.AccountStatus == models.AccountBanned {
		return nil, apperrors.ErrAccountBanned
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User signed in")

	return dto.NewJwtResponse(token, user), nil
}

// GetProfile retrieves the caller's own user record
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies profile field updates. Optional fields only change
// when present in the request; a provided password is re-hashed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.JwtResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.CGPA != nil {
		user.CGPA = req.CGPA
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.StudentID != nil {
		user.StudentID = req.StudentID
	}
	if req.ResumeData != nil {
		user.ResumeData = req.ResumeData
	}
	if req.Backlogs != nil {
		user.Backlogs = req.Backlogs
	}
	if req.Attendance != nil {
		user.Attendance = req.Attendance
	}
	if req.TenthMarks != nil {
		user.TenthMarks = req.TenthMarks
	}
	if req.TwelfthMarks != nil {
		user.TwelfthMarks = req.TwelfthMarks
	}
	if req.About != nil {
		user.About = req.About
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Experience != nil {
		user.Experience = req.Experience
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return dto.NewJwtResponse("", user), nil
}

// SaveResume stores a resume as a data URI on the user's profile
func (s *AuthService) SaveResume(ctx context.Context, userID int64, dataURI string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.ResumeData = &dataURI
	return s.userRepo.Update(ctx, user)
}
