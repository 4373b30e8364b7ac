package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevateconnect/backend/internal/app/models"
)

func newAnalyticsFixture() (*AnalyticsService, *fakeUserRepo, *fakeDriveRepo, *fakeApplicationRepo) {
	userRepo := newFakeUserRepo()
	driveRepo := newFakeDriveRepo()
	applicationRepo := newFakeApplicationRepo()
	service := NewAnalyticsService(userRepo, driveRepo, applicationRepo, zerolog.Nop())
	return service, userRepo, driveRepo, applicationRepo
}

func seedApprovedDrive(t *testing.T, driveRepo *fakeDriveRepo, company string) *models.PlacementDrive {
	t.Helper()
	drive := &models.PlacementDrive{
		CompanyName:    company,
		Role:           "SDE",
		Date:           time.Now().AddDate(0, 1, 0),
		Deadline:       time.Now().AddDate(0, 0, 14),
		ApprovalStatus: models.ApprovalApproved,
		CreatedBy:      1,
	}
	require.NoError(t, driveRepo.Create(context.Background(), drive))
	return drive
}

func TestPublicStatsCountsApprovedDrivesAndPlacements(t *testing.T) {
	service, _, driveRepo, applicationRepo := newAnalyticsFixture()

	first := seedApprovedDrive(t, driveRepo, "Innotech")
	second := seedApprovedDrive(t, driveRepo, "Datakraft")
	pending := &models.PlacementDrive{CompanyName: "Pending Corp", CreatedBy: 1}
	require.NoError(t, driveRepo.Create(context.Background(), pending))

	// Two selected applications by the same student count as one placement
	selected := models.ApplicationSelected
	require.NoError(t, applicationRepo.Create(context.Background(), &models.Application{UserID: 10, DriveID: first.ID, Status: selected}))
	require.NoError(t, applicationRepo.Create(context.Background(), &models.Application{UserID: 10, DriveID: second.ID, Status: selected}))
	require.NoError(t, applicationRepo.Create(context.Background(), &models.Application{UserID: 11, DriveID: first.ID, Status: models.ApplicationApplied}))

	stats, err := service.PublicStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Drives)
	assert.Equal(t, int64(1), stats.Placed)
	assert.Len(t, stats.RecentPartners, 2)
}

func TestStudentStatsPlaceholders(t *testing.T) {
	service, _, driveRepo, applicationRepo := newAnalyticsFixture()

	drive := seedApprovedDrive(t, driveRepo, "Innotech")
	require.NoError(t, applicationRepo.Create(context.Background(), &models.Application{UserID: 10, DriveID: drive.ID, Status: models.ApplicationSelected}))

	stats, err := service.StudentStats(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalApplications)
	assert.Equal(t, int64(1), stats.DrivesEligible)
	assert.Zero(t, stats.InterviewsScheduled)
	assert.Equal(t, int64(1), stats.OffersReceived)
}

func TestTPOStats(t *testing.T) {
	service, userRepo, driveRepo, applicationRepo := newAnalyticsFixture()

	userRepo.add(&models.User{Email: "s1@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	userRepo.add(&models.User{Email: "s2@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	userRepo.add(&models.User{Email: "hr@test", Role: models.RoleHR, AccountStatus: models.AccountActive})

	drive := seedApprovedDrive(t, driveRepo, "Innotech")
	require.NoError(t, applicationRepo.Create(context.Background(), &models.Application{UserID: 1, DriveID: drive.ID, Status: models.ApplicationSelected}))

	stats, err := service.TPOStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalStudents)
	assert.Equal(t, int64(1), stats.PlacedStudents)
	assert.Equal(t, int64(1), stats.ActiveDrives)
	assert.Equal(t, "0 LPA", stats.AvgPackage)
}
