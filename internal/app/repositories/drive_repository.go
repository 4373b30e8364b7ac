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
)

const driveColumns = `id, company_name, role, package_val, location, date, deadline,
		description, eligibility, type, approval_status, reviewed_by, reviewed_at,
		rejection_reason, created_by, created_at`

// DriveFilter holds optional listing filters for placement drives.
// ActiveOnly keeps only drives whose deadline is today or later.
type DriveFilter struct {
	Status     *models.ApprovalStatus
	CreatedBy  *int64
	Company    string
	ActiveOnly bool
}

// IDriveRepository defines the interface for placement-drive database operations
type IDriveRepository interface {
	Create(ctx context.Context, drive *models.PlacementDrive) error
	GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error)
	List(ctx context.Context, filter DriveFilter) ([]*models.PlacementDrive, error)
	Update(ctx context.Context, drive *models.PlacementDrive) error
	UpdateApproval(ctx context.Context, driveID, reviewerID int64, status models.ApprovalStatus, reason *string) (*models.PlacementDrive, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error)
	RecentApprovedCompanies(ctx context.Context, limit int) ([]string, error)
}

// DriveRepository handles database operations for placement drives
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new DriveRepository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{db: db}
}

// Create inserts a new drive. Every drive starts out PENDING.
func (r *DriveRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		INSERT INTO placement_drives (
			company_name, role, package_val, location, date, deadline,
			description, eligibility, type, approval_status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		drive.CompanyName,
		drive.Role,
		drive.Package,
		drive.Location,
		drive.Date,
		drive.Deadline,
		drive.Description,
		drive.Eligibility,
		drive.Type,
		models.ApprovalPending,
		drive.CreatedBy,
	).Scan(&drive.ID, &drive.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}
	drive.ApprovalStatus = models.ApprovalPending

	return nil
}

// GetByID retrieves a drive by ID
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	query := `SELECT ` + driveColumns + ` FROM placement_drives WHERE id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	return drive, nil
}

// List retrieves drives matching the filter, newest first
func (r *DriveRepository) List(ctx context.Context, filter DriveFilter) ([]*models.PlacementDrive, error) {
	queryBuilder := squirrel.Select(
		"id", "company_name", "role", "package_val", "location", "date", "deadline",
		"description", "eligibility", "type", "approval_status", "reviewed_by",
		"reviewed_at", "rejection_reason", "created_by", "created_at",
	).
		From("placement_drives").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where("approval_status = ?", *filter.Status)
	}
	if filter.CreatedBy != nil {
		queryBuilder = queryBuilder.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.Company != "" {
		queryBuilder = queryBuilder.Where("company_name ILIKE ?", "%"+filter.Company+"%")
	}
	if filter.ActiveOnly {
		queryBuilder = queryBuilder.Where("deadline >= CURRENT_DATE")
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing drives: %w", err)
	}
	defer rows.Close()

	var drives []*models.PlacementDrive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning drive: %w", err)
		}
		drives = append(drives, drive)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drives: %w", err)
	}

	return drives, nil
}

// Update persists a drive's descriptive fields. Approval columns are only
// touched by UpdateApproval.
func (r *DriveRepository) Update(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		UPDATE placement_drives SET
			company_name = $1, role = $2, package_val = $3, location = $4,
			date = $5, deadline = $6, description = $7, eligibility = $8, type = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		drive.CompanyName,
		drive.Role,
		drive.Package,
		drive.Location,
		drive.Date,
		drive.Deadline,
		drive.Description,
		drive.Eligibility,
		drive.Type,
		drive.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// UpdateApproval moves a PENDING drive to a terminal status and stamps the
// reviewer. The WHERE clause guards the transition so a drive that has
// already been reviewed is left untouched.
func (r *DriveRepository) UpdateApproval(ctx context.Context, driveID, reviewerID int64, status models.ApprovalStatus, reason *string) (*models.PlacementDrive, error) {
	query := `
		UPDATE placement_drives SET
			approval_status = $1, reviewed_by = $2, reviewed_at = NOW(), rejection_reason = $3
		WHERE id = $4 AND approval_status = $5
		RETURNING ` + driveColumns

	drive, err := scanDrive(r.db.QueryRow(ctx, query,
		status,
		reviewerID,
		reason,
		driveID,
		models.ApprovalPending,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the drive does not exist or it is no longer pending
			if _, getErr := r.GetByID(ctx, driveID); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrDriveNotPending
		}
		return nil, fmt.Errorf("error updating drive approval: %w", err)
	}

	return drive, nil
}

// Delete removes a drive and its applications in a single transaction
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE drive_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting drive applications: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM placement_drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing drive deletion: %w", err)
	}

	return nil
}

// CountByStatus counts drives in the given approval status
func (r *DriveRepository) CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM placement_drives WHERE approval_status = $1`
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting drives: %w", err)
	}
	return count, nil
}

// RecentApprovedCompanies returns distinct company names of the most recently
// approved drives.
func (r *DriveRepository) RecentApprovedCompanies(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT company_name FROM placement_drives
		WHERE approval_status = $1
		GROUP BY company_name
		ORDER BY MAX(reviewed_at) DESC NULLS LAST
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, models.ApprovalApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent companies: %w", err)
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning company name: %w", err)
		}
		companies = append(companies, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

func scanDrive(row pgx.Row) (*models.PlacementDrive, error) {
	var drive models.PlacementDrive
	err := row.Scan(
		&drive.ID,
		&drive.CompanyName,
		&drive.Role,
		&drive.Package,
		&drive.Location,
		&drive.Date,
		&drive.Deadline,
		&drive.Description,
		&drive.Eligibility,
		&drive.Type,
		&drive.ApprovalStatus,
		&drive.ReviewedBy,
		&drive.ReviewedAt,
		&drive.RejectionReason,
		&drive.CreatedBy,
		&drive.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &drive, nil
}
