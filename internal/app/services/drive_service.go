package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/email"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
)

const driveDateLayout = "2006-01-02"

// DriveService handles placement-drive CRUD and the approval workflow.
// Approval side effects (notification broadcast, e-mail batch) run on the
// background dispatcher and never fail the request.
type DriveService struct {
	driveRepo        repositories.IDriveRepository
	userRepo         repositories.IUserRepository
	notificationRepo repositories.INotificationRepository
	emailService     email.EmailService
	dispatcher       *tasks.Dispatcher
	logger           zerolog.Logger
}

// NewDriveService creates a new DriveService
func NewDriveService(
	driveRepo repositories.IDriveRepository,
	userRepo repositories.IUserRepository,
	notificationRepo repositories.INotificationRepository,
	emailService email.EmailService,
	dispatcher *tasks.Dispatcher,
	logger zerolog.Logger,
) *DriveService {
	return &DriveService{
		driveRepo:        driveRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// Create registers a new PENDING drive owned by the caller
func (s *DriveService) Create(ctx context.Context, creatorID int64, req *dto.DriveRequest) (*models.PlacementDrive, error) {
	drive, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	drive.CreatedBy = creatorID

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("driveId", drive.ID).Str("company", drive.CompanyName).Msg("Drive created")

	return drive, nil
}

// GetByID retrieves a single drive
func (s *DriveService) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	return s.driveRepo.GetByID(ctx, id)
}

// ListApproved retrieves the drives visible to students and alumni
func (s *DriveService) ListApproved(ctx context.Context) ([]*models.PlacementDrive, error) {
	status := models.ApprovalApproved
	return s.driveRepo.List(ctx, repositories.DriveFilter{Status: &status})
}

// ListActive retrieves the approved drives whose application deadline has not
// passed yet
func (s *DriveService) ListActive(ctx context.Context) ([]*models.PlacementDrive, error) {
	status := models.ApprovalApproved
	return s.driveRepo.List(ctx, repositories.DriveFilter{Status: &status, ActiveOnly: true})
}

// ListForManager retrieves drives for the management view: HR sees their own
// drives in every state, TPO/ADMIN sees everything.
func (s *DriveService) ListForManager(ctx context.Context, actor *models.User) ([]*models.PlacementDrive, error) {
	filter := repositories.DriveFilter{}
	if !actor.Role.IsPrivileged() {
		filter.CreatedBy = &actor.ID
	}
	return s.driveRepo.List(ctx, filter)
}

// ListPending retrieves the moderation queue
func (s *DriveService) ListPending(ctx context.Context) ([]*models.PlacementDrive, error) {
	status := models.ApprovalPending
	return s.driveRepo.List(ctx, repositories.DriveFilter{Status: &status})
}

// Update rewrites a drive's descriptive fields. Only the drive's creator or a
// privileged user may update it.
func (s *DriveService) Update(ctx context.Context, id int64, actor *models.User, req *dto.DriveRequest) (*models.PlacementDrive, error) {
	existing, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != actor.ID && !actor.Role.IsPrivileged() {
		return nil, apperrors.NewForbiddenError("You cannot modify this drive")
	}

	drive, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	drive.ID = existing.ID

	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, err
	}

	return s.driveRepo.GetByID(ctx, id)
}

// Delete removes a drive together with its applications
func (s *DriveService) Delete(ctx context.Context, id int64) error {
	if err := s.driveRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("driveId", id).Msg("Drive deleted with its applications")
	return nil
}

// Approve moves a PENDING drive to APPROVED and broadcasts the announcement
// to every student. The PENDING guard in the repository makes the
// transition, and therefore the fan-out, happen at most once per drive.
func (s *DriveService) Approve(ctx context.Context, driveID, reviewerID int64) (*models.PlacementDrive, error) {
	drive, err := s.driveRepo.UpdateApproval(ctx, driveID, reviewerID, models.ApprovalApproved, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("driveId", drive.ID).Int64("reviewerId", reviewerID).Msg("Drive approved")
	s.broadcastApproval(drive)

	return drive, nil
}

// Reject moves a PENDING drive to REJECTED. A non-empty reason is mandatory;
// the drive's creator is notified off the request path.
func (s *DriveService) Reject(ctx context.Context, driveID, reviewerID int64, reason string) (*models.PlacementDrive, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrRejectionNoReason
	}

	drive, err := s.driveRepo.UpdateApproval(ctx, driveID, reviewerID, models.ApprovalRejected, &reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("driveId", drive.ID).Int64("reviewerId", reviewerID).Msg("Drive rejected")
	s.notifyRejection(drive, reason)

	return drive, nil
}

// broadcastApproval queues the notification and e-mail fan-out for an
// approved drive. Failures are logged and swallowed.
func (s *DriveService) broadcastApproval(drive *models.PlacementDrive) {
	message := fmt.Sprintf("New Drive: %s - %s posted.", drive.CompanyName, drive.Role)
	company := drive.CompanyName
	role := drive.Role

	s.dispatcher.Submit(func(ctx context.Context) {
		ids, err := s.userRepo.ListIDsByRoles(ctx, models.RoleStudent)
		if err != nil {
			s.logger.Error().Err(err).Msg("Approval fan-out: failed to list recipients")
			return
		}
		if err := s.notificationRepo.CreateForUsers(ctx, ids, message, models.NotificationInfo); err != nil {
			s.logger.Error().Err(err).Msg("Approval fan-out: failed to create notifications")
		}
	})

	s.dispatcher.Submit(func(ctx context.Context) {
		emails, err := s.userRepo.ListEmailsByRoles(ctx, models.RoleStudent)
		if err != nil {
			s.logger.Error().Err(err).Msg("Approval fan-out: failed to list e-mail recipients")
			return
		}
		if err := s.emailService.SendDriveAlert(emails, company, role); err != nil {
			s.logger.Error().Err(err).Msg("Approval fan-out: e-mail batch failed")
		}
	})
}

// notifyRejection tells the drive's creator why the drive was turned down
func (s *DriveService) notifyRejection(drive *models.PlacementDrive, reason string) {
	notification := &models.Notification{
		UserID:  drive.CreatedBy,
		Message: fmt.Sprintf("Your drive %s - %s was rejected. Reason: %s", drive.CompanyName, drive.Role, reason),
		Type:    models.NotificationAlert,
	}

	s.dispatcher.Submit(func(ctx context.Context) {
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.Error().Err(err).Int64("driveId", drive.ID).Msg("Failed to notify drive creator of rejection")
		}
	})
}

func driveFromRequest(req *dto.DriveRequest) (*models.PlacementDrive, error) {
	date, err := time.Parse(driveDateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid drive date, expected YYYY-MM-DD")
	}
	deadline, err := time.Parse(driveDateLayout, req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid deadline, expected YYYY-MM-DD")
	}

	return &models.PlacementDrive{
		CompanyName: strings.TrimSpace(req.CompanyName),
		Role:        strings.TrimSpace(req.Role),
		Package:     req.Package,
		Location:    req.Location,
		Date:        date,
		Deadline:    deadline,
		Description: req.Description,
		Eligibility: req.Eligibility,
		Type:        req.Type,
	}, nil
}
