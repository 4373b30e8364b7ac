package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/dberrors"
)

// ApplicationFilter holds optional listing filters for applications
type ApplicationFilter struct {
	UserID  *int64
	DriveID *int64
	Status  *models.ApplicationStatus
}

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status models.ApplicationStatus) (int64, error)
	CountDistinctUsersByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
}

// ApplicationRepository handles database operations for drive applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. A second application by the same user to
// the same drive trips the unique constraint, which surfaces as
// apperrors.ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (user_id, drive_id, status, resume)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		application.UserID,
		application.DriveID,
		application.Status,
		application.Resume,
	).Scan(&application.ID, &application.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintApplicationUserDrive) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, user_id, drive_id, status, resume, created_at
		FROM applications
		WHERE id = $1
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.UserID,
		&application.DriveID,
		&application.Status,
		&application.Resume,
		&application.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// List retrieves applications matching the filter, newest first, with the
// applicant and drive attached.
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]*models.Application, error) {
	queryBuilder := squirrel.Select(
		"a.id", "a.user_id", "a.drive_id", "a.status", "a.resume", "a.created_at",
		"u.name", "u.email", "u.branch", "u.cgpa", "u.student_id",
		"d.company_name", "d.role", "d.package_val", "d.location", "d.date", "d.deadline", "d.type",
	).
		From("applications a").
		Join("users u ON a.user_id = u.id").
		Join("placement_drives d ON a.drive_id = d.id").
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != nil {
		queryBuilder = queryBuilder.Where("a.user_id = ?", *filter.UserID)
	}
	if filter.DriveID != nil {
		queryBuilder = queryBuilder.Where("a.drive_id = ?", *filter.DriveID)
	}
	if filter.Status != nil {
		queryBuilder = queryBuilder.Where("a.status = ?", *filter.Status)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var user models.User
		var drive models.PlacementDrive

		err := rows.Scan(
			&application.ID,
			&application.UserID,
			&application.DriveID,
			&application.Status,
			&application.Resume,
			&application.CreatedAt,
			&user.Name,
			&user.Email,
			&user.Branch,
			&user.CGPA,
			&user.StudentID,
			&drive.CompanyName,
			&drive.Role,
			&drive.Package,
			&drive.Location,
			&drive.Date,
			&drive.Deadline,
			&drive.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}

		user.ID = application.UserID
		drive.ID = application.DriveID
		application.User = &user
		application.Drive = &drive
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}

// UpdateStatus sets a new status on an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// CountByUser counts a user's applications
func (r *ApplicationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applications WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountByUserAndStatus counts a user's applications in the given status
func (r *ApplicationRepository) CountByUserAndStatus(ctx context.Context, userID int64, status models.ApplicationStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applications WHERE user_id = $1 AND status = $2`
	if err := r.db.QueryRow(ctx, query, userID, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications by status: %w", err)
	}
	return count, nil
}

// CountDistinctUsersByStatus counts how many distinct users hold an
// application in the given status.
func (r *ApplicationRepository) CountDistinctUsersByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(DISTINCT user_id) FROM applications WHERE status = $1`
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting placed users: %w", err)
	}
	return count, nil
}
