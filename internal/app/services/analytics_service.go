package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
)

const recentPartnerLimit = 8

// AnalyticsService computes dashboard counters on demand. Nothing is
// materialized; every call hits the database.
type AnalyticsService struct {
	userRepo        repositories.IUserRepository
	driveRepo       repositories.IDriveRepository
	applicationRepo repositories.IApplicationRepository
	logger          zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	userRepo repositories.IUserRepository,
	driveRepo repositories.IDriveRepository,
	applicationRepo repositories.IApplicationRepository,
	logger zerolog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:        userRepo,
		driveRepo:       driveRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// PublicStats returns the anonymous landing-page counters
func (s *AnalyticsService) PublicStats(ctx context.Context) (*dto.StatsResponse, error) {
	drives, err := s.driveRepo.CountByStatus(ctx, models.ApprovalApproved)
	if err != nil {
		return nil, err
	}

	placed, err := s.applicationRepo.CountDistinctUsersByStatus(ctx, models.ApplicationSelected)
	if err != nil {
		return nil, err
	}

	partners, err := s.driveRepo.RecentApprovedCompanies(ctx, recentPartnerLimit)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Drives:         drives,
		Placed:         placed,
		RecentPartners: partners,
	}, nil
}

// StudentStats returns the student dashboard counters.
// interviewsScheduled is always 0 until interview scheduling exists.
func (s *AnalyticsService) StudentStats(ctx context.Context, userID int64) (*dto.StudentStatsResponse, error) {
	total, err := s.applicationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.driveRepo.CountByStatus(ctx, models.ApprovalApproved)
	if err != nil {
		return nil, err
	}

	offers, err := s.applicationRepo.CountByUserAndStatus(ctx, userID, models.ApplicationSelected)
	if err != nil {
		return nil, err
	}

	return &dto.StudentStatsResponse{
		TotalApplications:   total,
		DrivesEligible:      eligible,
		InterviewsScheduled: 0,
		OffersReceived:      offers,
	}, nil
}

// TPOStats returns the TPO dashboard counters.
// avgPackage stays a placeholder; package is an opaque display string.
func (s *AnalyticsService) TPOStats(ctx context.Context) (*dto.TPOStatsResponse, error) {
	students, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	placed, err := s.applicationRepo.CountDistinctUsersByStatus(ctx, models.ApplicationSelected)
	if err != nil {
		return nil, err
	}

	active, err := s.driveRepo.CountByStatus(ctx, models.ApprovalApproved)
	if err != nil {
		return nil, err
	}

	return &dto.TPOStatsResponse{
		TotalStudents:  students,
		PlacedStudents: placed,
		ActiveDrives:   active,
		AvgPackage:     "0 LPA",
	}, nil
}
