package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names declared in migrations/001_init.sql. Unique violations are
// matched by name so the handler can translate them to domain errors.
const (
	ConstraintUsersEmail           = "uq_users_email"
	ConstraintUsersStudentID       = "uq_users_student_id"
	ConstraintApplicationUserDrive = "uq_applications_user_drive"
	ConstraintCoursesCode          = "uq_courses_code"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation
// error for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
