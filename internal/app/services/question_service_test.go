package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
)

type fakeQuestionRepo struct {
	mu        sync.Mutex
	nextID    int64
	questions map[int64]*models.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[int64]*models.Question)}
}

func (f *fakeQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	question.ID = f.nextID
	copied := *question
	f.questions[question.ID] = &copied
	return nil
}

func (f *fakeQuestionRepo) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	question, ok := f.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	copied := *question
	copied.LikedByUsers = append([]int64(nil), question.LikedByUsers...)
	return &copied, nil
}

func (f *fakeQuestionRepo) List(ctx context.Context, filter dto.QuestionFilter) ([]*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Question
	for _, question := range f.questions {
		if filter.Company != "" && !strings.EqualFold(question.Company, filter.Company) {
			continue
		}
		if filter.Difficulty != "" && question.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Category != "" && question.Category != filter.Category {
			continue
		}
		copied := *question
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeQuestionRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Question
	for _, question := range f.questions {
		if question.UserID == userID {
			copied := *question
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) DistinctCompanies(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, question := range f.questions {
		if _, ok := seen[question.Company]; !ok {
			seen[question.Company] = struct{}{}
			out = append(out, question.Company)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) ToggleLike(ctx context.Context, questionID, userID int64) (*models.Question, error) {
	f.mu.Lock()
	question, ok := f.questions[questionID]
	if !ok {
		f.mu.Unlock()
		return nil, apperrors.ErrQuestionNotFound
	}
	liked := -1
	for i, id := range question.LikedByUsers {
		if id == userID {
			liked = i
			break
		}
	}
	if liked >= 0 {
		question.LikedByUsers = append(question.LikedByUsers[:liked], question.LikedByUsers[liked+1:]...)
	} else {
		question.LikedByUsers = append(question.LikedByUsers, userID)
	}
	question.HelpfulCount = len(question.LikedByUsers)
	f.mu.Unlock()
	return f.GetByID(ctx, questionID)
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.questions[id]; !ok {
		return apperrors.ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

type questionFixture struct {
	service          *QuestionService
	questionRepo     *fakeQuestionRepo
	userRepo         *fakeUserRepo
	notificationRepo *fakeNotificationRepo
	dispatcher       *tasks.Dispatcher
}

func newQuestionFixture() *questionFixture {
	f := &questionFixture{
		questionRepo:     newFakeQuestionRepo(),
		userRepo:         newFakeUserRepo(),
		notificationRepo: newFakeNotificationRepo(),
		dispatcher:       tasks.NewDispatcher(1, 16, zerolog.Nop()),
	}
	f.service = NewQuestionService(f.questionRepo, f.userRepo, f.notificationRepo, f.dispatcher, zerolog.Nop())
	return f
}

func TestCreateQuestionBroadcastsToStudents(t *testing.T) {
	f := newQuestionFixture()

	student := f.userRepo.add(&models.User{Email: "s1@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	alumni := f.userRepo.add(&models.User{Email: "a1@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})

	question, err := f.service.Create(context.Background(), alumni.ID, &dto.QuestionRequest{
		Company:  "Innotech",
		Question: "Explain consistent hashing.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Innotech", question.Company)

	f.dispatcher.Stop()

	notifications := f.notificationRepo.all()
	require.Len(t, notifications, 1)
	assert.Equal(t, student.ID, notifications[0].UserID)
	assert.Equal(t, "New interview question for Innotech shared.", notifications[0].Message)
}

func TestToggleHelpfulOwnQuestionRefused(t *testing.T) {
	f := newQuestionFixture()
	defer f.dispatcher.Stop()

	author := f.userRepo.add(&models.User{Email: "a1@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})
	question, err := f.service.Create(context.Background(), author.ID, &dto.QuestionRequest{
		Company:  "Innotech",
		Question: "Explain consistent hashing.",
	})
	require.NoError(t, err)

	_, err = f.service.ToggleHelpful(context.Background(), question.ID, author.ID)
	assert.ErrorIs(t, err, apperrors.ErrOwnQuestionLike)
}

func TestToggleHelpfulFlipsMarkAndCount(t *testing.T) {
	f := newQuestionFixture()
	defer f.dispatcher.Stop()

	author := f.userRepo.add(&models.User{Email: "a1@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})
	reader := f.userRepo.add(&models.User{Email: "s1@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})

	question, err := f.service.Create(context.Background(), author.ID, &dto.QuestionRequest{
		Company:  "Innotech",
		Question: "Explain consistent hashing.",
	})
	require.NoError(t, err)

	marked, err := f.service.ToggleHelpful(context.Background(), question.ID, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, marked.HelpfulCount)
	assert.Contains(t, marked.LikedByUsers, reader.ID)

	unmarked, err := f.service.ToggleHelpful(context.Background(), question.ID, reader.ID)
	require.NoError(t, err)
	assert.Zero(t, unmarked.HelpfulCount)
	assert.NotContains(t, unmarked.LikedByUsers, reader.ID)
}

func TestDeleteQuestionRequiresAuthorOrPrivilege(t *testing.T) {
	f := newQuestionFixture()
	defer f.dispatcher.Stop()

	author := f.userRepo.add(&models.User{Email: "a1@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})
	stranger := f.userRepo.add(&models.User{Email: "s1@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	tpo := f.userRepo.add(&models.User{Email: "tpo@test", Role: models.RoleTPO, AccountStatus: models.AccountActive})

	first, err := f.service.Create(context.Background(), author.ID, &dto.QuestionRequest{Company: "Innotech", Question: "Q1"})
	require.NoError(t, err)
	second, err := f.service.Create(context.Background(), author.ID, &dto.QuestionRequest{Company: "Innotech", Question: "Q2"})
	require.NoError(t, err)

	err = f.service.Delete(context.Background(), first.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, f.service.Delete(context.Background(), first.ID, author))
	require.NoError(t, f.service.Delete(context.Background(), second.ID, tpo))
}
