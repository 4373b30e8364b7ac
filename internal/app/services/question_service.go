package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
)

// QuestionService handles the interview-question sharing surface
type QuestionService struct {
	questionRepo     repositories.IQuestionRepository
	userRepo         repositories.IUserRepository
	notificationRepo repositories.INotificationRepository
	dispatcher       *tasks.Dispatcher
	logger           zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionRepo repositories.IQuestionRepository,
	userRepo repositories.IUserRepository,
	notificationRepo repositories.INotificationRepository,
	dispatcher *tasks.Dispatcher,
	logger zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo:     questionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// Create shares a new question and announces it to all students off the
// request path.
func (s *QuestionService) Create(ctx context.Context, userID int64, req *dto.QuestionRequest) (*models.Question, error) {
	question := &models.Question{
		UserID:     userID,
		Company:    strings.TrimSpace(req.Company),
		Role:       req.Role,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New interview question for %s shared.", question.Company)
	s.dispatcher.Submit(func(ctx context.Context) {
		ids, err := s.userRepo.ListIDsByRoles(ctx, models.RoleStudent)
		if err != nil {
			s.logger.Error().Err(err).Msg("Question broadcast: failed to list students")
			return
		}
		if err := s.notificationRepo.CreateForUsers(ctx, ids, message, models.NotificationInfo); err != nil {
			s.logger.Error().Err(err).Msg("Question broadcast: failed to create notifications")
		}
	})

	return question, nil
}

// List retrieves questions matching the optional filters
func (s *QuestionService) List(ctx context.Context, filter dto.QuestionFilter) ([]*models.Question, error) {
	return s.questionRepo.List(ctx, filter)
}

// ListMine retrieves the caller's own questions
func (s *QuestionService) ListMine(ctx context.Context, userID int64) ([]*models.Question, error) {
	return s.questionRepo.ListByUser(ctx, userID)
}

// Companies retrieves the distinct companies questions exist for
func (s *QuestionService) Companies(ctx context.Context) ([]string, error) {
	return s.questionRepo.DistinctCompanies(ctx)
}

// ToggleHelpful flips the caller's helpful mark on a question. Marking your
// own question is refused.
func (s *QuestionService) ToggleHelpful(ctx context.Context, questionID, userID int64) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.UserID == userID {
		return nil, apperrors.ErrOwnQuestionLike
	}

	return s.questionRepo.ToggleLike(ctx, questionID, userID)
}

// Delete removes a question. Only the author or a privileged user may do it.
func (s *QuestionService) Delete(ctx context.Context, questionID int64, actor *models.User) error {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question.UserID != actor.ID && !actor.Role.IsPrivileged() {
		return apperrors.NewForbiddenError("You cannot delete this question")
	}

	return s.questionRepo.Delete(ctx, questionID)
}
