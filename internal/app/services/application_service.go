package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
)

// ApplicationService handles student applications to placement drives
type ApplicationService struct {
	applicationRepo  repositories.IApplicationRepository
	driveRepo        repositories.IDriveRepository
	userRepo         repositories.IUserRepository
	notificationRepo repositories.INotificationRepository
	dispatcher       *tasks.Dispatcher
	logger           zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	driveRepo repositories.IDriveRepository,
	userRepo repositories.IUserRepository,
	notificationRepo repositories.INotificationRepository,
	dispatcher *tasks.Dispatcher,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:  applicationRepo,
		driveRepo:        driveRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// Apply records a student's application to a drive. A friendly duplicate
// check runs first, but the real guarantee is the (user, drive) unique
// constraint, so concurrent double-applies also come back as AlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, userID, driveID int64) (*models.Application, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	existing, err := s.applicationRepo.List(ctx, repositories.ApplicationFilter{UserID: &userID, DriveID: &driveID})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		UserID:  userID,
		DriveID: driveID,
		Status:  models.ApplicationApplied,
		Resume:  user.ResumeData,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Int64("driveId", driveID).Msg("Application submitted")

	return application, nil
}

// ListByUser retrieves a user's applications with drive details
func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	return s.applicationRepo.List(ctx, repositories.ApplicationFilter{UserID: &userID})
}

// ListByDrive retrieves a drive's applications with applicant details
func (s *ApplicationService) ListByDrive(ctx context.Context, driveID int64) ([]*models.Application, error) {
	return s.applicationRepo.List(ctx, repositories.ApplicationFilter{DriveID: &driveID})
}

// ListAll retrieves applications with an optional status filter
func (s *ApplicationService) ListAll(ctx context.Context, status *models.ApplicationStatus) ([]*models.Application, error) {
	return s.applicationRepo.List(ctx, repositories.ApplicationFilter{Status: status})
}

// UpdateStatus moves an application to a new status and tells the applicant
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	if !status.IsValid() {
		return apperrors.NewBadRequestError("Invalid application status")
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	drive, err := s.driveRepo.GetByID(ctx, application.DriveID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("applicationId", id).Msg("Status updated but drive lookup failed, skipping notification")
		return nil
	}

	notificationType := models.NotificationInfo
	if status == models.ApplicationSelected {
		notificationType = models.NotificationSuccess
	}
	notification := &models.Notification{
		UserID:  application.UserID,
		Message: fmt.Sprintf("Your application for %s was updated to %s.", drive.CompanyName, status),
		Type:    notificationType,
	}

	s.dispatcher.Submit(func(ctx context.Context) {
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.Error().Err(err).Int64("applicationId", id).Msg("Failed to notify applicant of status change")
		}
	})

	return nil
}
