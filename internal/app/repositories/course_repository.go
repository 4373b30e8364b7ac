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

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, semester int) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	AssignToUser(ctx context.Context, courseID, userID int64) error
	UnassignFromUser(ctx context.Context, courseID, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Course, error)
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, description, credits, semester)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code,
		course.Name,
		course.Description,
		course.Credits,
		course.Semester,
	).Scan(&course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintCoursesCode) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT id, code, name, description, credits, semester FROM courses WHERE id = $1`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.Credits,
		&course.Semester,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves courses ordered by code. A positive semester restricts the
// listing to that semester.
func (r *CourseRepository) List(ctx context.Context, semester int) ([]*models.Course, error) {
	query := `SELECT id, code, name, description, credits, semester FROM courses`
	var args []interface{}
	if semester > 0 {
		query += ` WHERE semester = $1`
		args = append(args, semester)
	}
	query += ` ORDER BY code ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// Update persists a course's fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses SET code = $1, name = $2, description = $3, credits = $4, semester = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		course.Code,
		course.Name,
		course.Description,
		course.Credits,
		course.Semester,
		course.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintCoursesCode) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and its assignments
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// AssignToUser enrols a user in a course. Re-assigning is a no-op.
func (r *CourseRepository) AssignToUser(ctx context.Context, courseID, userID int64) error {
	query := `
		INSERT INTO user_courses (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, courseID); err != nil {
		return fmt.Errorf("error assigning course: %w", err)
	}

	return nil
}

// UnassignFromUser removes a user's enrolment. Removing an enrolment that
// does not exist is a no-op, mirroring AssignToUser.
func (r *CourseRepository) UnassignFromUser(ctx context.Context, courseID, userID int64) error {
	query := `DELETE FROM user_courses WHERE user_id = $1 AND course_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, courseID); err != nil {
		return fmt.Errorf("error unassigning course: %w", err)
	}

	return nil
}

// ListByUser retrieves the courses a user is enrolled in
func (r *CourseRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.name, c.description, c.credits, c.semester
		FROM courses c
		JOIN user_courses uc ON uc.course_id = c.id
		WHERE uc.user_id = $1
		ORDER BY c.code ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Description,
			&course.Credits,
			&course.Semester,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}
