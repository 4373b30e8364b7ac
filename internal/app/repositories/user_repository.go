package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password, role, account_status, branch, cgpa, phone,
		student_id, resume_data, backlogs, attendance, tenth_marks, twelfth_marks,
		about, skills, experience, created_at, updated_at`

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateAccountStatus(ctx context.Context, userID int64, status models.AccountStatus) error
	ListByRoles(ctx context.Context, roles ...models.Role) ([]*models.User, error)
	ListEmailsByRoles(ctx context.Context, roles ...models.Role) ([]string, error)
	ListIDsByRoles(ctx context.Context, roles ...models.Role) ([]int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			name, email, password, role, account_status, branch, cgpa, phone,
			student_id, resume_data, backlogs, attendance, tenth_marks, twelfth_marks,
			about, skills, experience
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
		user.AccountStatus,
		user.Branch,
		user.CGPA,
		user.Phone,
		user.StudentID,
		user.ResumeData,
		user.Backlogs,
		user.Attendance,
		user.TenthMarks,
		user.TwelfthMarks,
		user.About,
		user.Skills,
		user.Experience,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintUsersEmail) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintUsersStudentID) {
			return apperrors.ErrStudentIDExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// Update persists the user's mutable fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = $1, password = $2, role = $3, account_status = $4, branch = $5,
			cgpa = $6, phone = $7, student_id = $8, resume_data = $9, backlogs = $10,
			attendance = $11, tenth_marks = $12, twelfth_marks = $13, about = $14,
			skills = $15, experience = $16, updated_at = NOW()
		WHERE id = $17
	`

	tag, err := r.db.Exec(ctx, query,
		user.Name,
		user.Password,
		user.Role,
		user.AccountStatus,
		user.Branch,
		user.CGPA,
		user.Phone,
		user.StudentID,
		user.ResumeData,
		user.Backlogs,
		user.Attendance,
		user.TenthMarks,
		user.TwelfthMarks,
		user.About,
		user.Skills,
		user.Experience,
		user.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintUsersStudentID) {
			return apperrors.ErrStudentIDExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateAccountStatus sets a user's account status
func (r *UserRepository) UpdateAccountStatus(ctx context.Context, userID int64, status models.AccountStatus) error {
	query := `UPDATE users SET account_status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		return fmt.Errorf("error updating account status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ListByRoles retrieves all users with any of the given roles, newest first
func (r *UserRepository) ListByRoles(ctx context.Context, roles ...models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, rolesToStrings(roles))
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// ListEmailsByRoles retrieves the email addresses of all active users with any
// of the given roles.
func (r *UserRepository) ListEmailsByRoles(ctx context.Context, roles ...models.Role) ([]string, error) {
	query := `SELECT email FROM users WHERE role = ANY($1) AND account_status = $2`

	rows, err := r.db.Query(ctx, query, rolesToStrings(roles), models.AccountActive)
	if err != nil {
		return nil, fmt.Errorf("error listing user emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning email: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emails: %w", err)
	}

	return emails, nil
}

// ListIDsByRoles retrieves the IDs of all active users with any of the given roles
func (r *UserRepository) ListIDsByRoles(ctx context.Context, roles ...models.Role) ([]int64, error) {
	query := `SELECT id FROM users WHERE role = ANY($1) AND account_status = $2`

	rows, err := r.db.Query(ctx, query, rolesToStrings(roles), models.AccountActive)
	if err != nil {
		return nil, fmt.Errorf("error listing user IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning user ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user IDs: %w", err)
	}

	return ids, nil
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE role = $1`
	if err := r.db.QueryRow(ctx, query, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func rolesToStrings(roles []models.Role) []string {
	out := make([]string, len(roles))
	for i, role := range roles {
		out[i] = string(role)
	}
	return out
}

// scanUser reads a full user row from either pgx.Row or pgx.Rows
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.AccountStatus,
		&user.Branch,
		&user.CGPA,
		&user.Phone,
		&user.StudentID,
		&user.ResumeData,
		&user.Backlogs,
		&user.Attendance,
		&user.TenthMarks,
		&user.TwelfthMarks,
		&user.About,
		&user.Skills,
		&user.Experience,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
