package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
)

// UserService handles the TPO student-management surface
type UserService struct {
	userRepo        repositories.IUserRepository
	applicationRepo repositories.IApplicationRepository
	courseRepo      repositories.ICourseRepository
	logger          zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	applicationRepo repositories.IApplicationRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		courseRepo:      courseRepo,
		logger:          logger,
	}
}

// ListStudents retrieves all students, optionally filtered by account status
func (s *UserService) ListStudents(ctx context.Context, status *models.AccountStatus) ([]*models.User, error) {
	students, err := s.userRepo.ListByRoles(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return students, nil
	}

	filtered := make([]*models.User, 0, len(students))
	for _, student := range students {
		if student.AccountStatus == *status {
			filtered = append(filtered, student)
		}
	}
	return filtered, nil
}

// GetStudentDetails retrieves a student with their applications and courses
func (s *UserService) GetStudentDetails(ctx context.Context, studentID int64) (*dto.StudentDetailsResponse, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.List(ctx, repositories.ApplicationFilter{UserID: &studentID})
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.ListByUser(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDetailsResponse{
		Student:      student,
		Applications: applications,
		Courses:      courses,
	}, nil
}

// Ban sets a student's account status to BANNED
func (s *UserService) Ban(ctx context.Context, userID int64) error {
	if err := s.userRepo.UpdateAccountStatus(ctx, userID, models.AccountBanned); err != nil {
		return err
	}
	s.logger.Warn().Int64("userId", userID).Msg("Account banned")
	return nil
}

// Activate sets a student's account status back to ACTIVE
func (s *UserService) Activate(ctx context.Context, userID int64) error {
	if err := s.userRepo.UpdateAccountStatus(ctx, userID, models.AccountActive); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("Account activated")
	return nil
}
