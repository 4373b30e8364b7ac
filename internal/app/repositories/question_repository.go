package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// IQuestionRepository defines the interface for interview-question database operations
type IQuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context, filter dto.QuestionFilter) ([]*models.Question, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Question, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	ToggleLike(ctx context.Context, questionID, userID int64) (*models.Question, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionRepository handles database operations for interview questions
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (user_id, company, role, question, answer, difficulty, category, helpful_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		question.UserID,
		question.Company,
		question.Role,
		question.Question,
		question.Answer,
		question.Difficulty,
		question.Category,
	).Scan(&question.ID, &question.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating question: %w", err)
	}
	question.HelpfulCount = 0

	return nil
}

// GetByID retrieves a question with its author name and liker IDs
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := questionSelect + ` WHERE q.id = $1 GROUP BY q.id, u.name`

	question, err := scanQuestion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}

	return question, nil
}

const questionSelect = `
	SELECT q.id, q.user_id, q.company, q.role, q.question, q.answer, q.difficulty,
		q.category, q.helpful_count, q.created_at, u.name,
		COALESCE(ARRAY_AGG(ql.user_id) FILTER (WHERE ql.user_id IS NOT NULL), '{}')
	FROM questions q
	JOIN users u ON q.user_id = u.id
	LEFT JOIN question_likes ql ON ql.question_id = q.id`

// List retrieves questions matching the filter, newest first
func (r *QuestionRepository) List(ctx context.Context, filter dto.QuestionFilter) ([]*models.Question, error) {
	queryBuilder := squirrel.Select(
		"q.id", "q.user_id", "q.company", "q.role", "q.question", "q.answer",
		"q.difficulty", "q.category", "q.helpful_count", "q.created_at", "u.name",
		"COALESCE(ARRAY_AGG(ql.user_id) FILTER (WHERE ql.user_id IS NOT NULL), '{}')",
	).
		From("questions q").
		Join("users u ON q.user_id = u.id").
		LeftJoin("question_likes ql ON ql.question_id = q.id").
		GroupBy("q.id", "u.name").
		OrderBy("q.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Company != "" {
		queryBuilder = queryBuilder.Where("q.company ILIKE ?", "%"+filter.Company+"%")
	}
	if filter.Difficulty != "" {
		queryBuilder = queryBuilder.Where("q.difficulty = ?", filter.Difficulty)
	}
	if filter.Category != "" {
		queryBuilder = queryBuilder.Where("q.category = ?", filter.Category)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

// ListByUser retrieves the questions a user has shared, newest first
func (r *QuestionRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Question, error) {
	query := questionSelect + ` WHERE q.user_id = $1 GROUP BY q.id, u.name ORDER BY q.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing user questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

// DistinctCompanies returns the distinct company names questions exist for
func (r *QuestionRepository) DistinctCompanies(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT company FROM questions ORDER BY company ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing question companies: %w", err)
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var company string
		if err := rows.Scan(&company); err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

// ToggleLike adds or removes the user's helpful mark in one transaction and
// keeps helpful_count in step with the question_likes rows. Returns the
// refreshed question.
func (r *QuestionRepository) ToggleLike(ctx context.Context, questionID, userID int64) (*models.Question, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM question_likes WHERE question_id = $1 AND user_id = $2`,
		questionID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error removing helpful mark: %w", err)
	}

	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx,
			`INSERT INTO question_likes (question_id, user_id) VALUES ($1, $2)`,
			questionID, userID,
		)
		if err != nil {
			return nil, fmt.Errorf("error adding helpful mark: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE questions SET helpful_count =
			(SELECT COUNT(*) FROM question_likes WHERE question_id = $1)
		WHERE id = $1
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("error updating helpful count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing helpful toggle: %w", err)
	}

	return r.GetByID(ctx, questionID)
}

// Delete removes a question and its helpful marks
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var question models.Question
	err := row.Scan(
		&question.ID,
		&question.UserID,
		&question.Company,
		&question.Role,
		&question.Question,
		&question.Answer,
		&question.Difficulty,
		&question.Category,
		&question.HelpfulCount,
		&question.CreatedAt,
		&question.AuthorName,
		&question.LikedByUsers,
	)
	if err != nil {
		return nil, err
	}
	return &question, nil
}
