package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

func newChatFixture() (*ChatService, *fakeChatRepo, *fakeUserRepo) {
	chatRepo := newFakeChatRepo()
	userRepo := newFakeUserRepo()
	return NewChatService(chatRepo, userRepo, zerolog.Nop()), chatRepo, userRepo
}

func TestSendToSelfRefused(t *testing.T) {
	service, _, userRepo := newChatFixture()
	user := userRepo.add(&models.User{Email: "a@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})

	_, err := service.Send(context.Background(), user.ID, &dto.ChatRequest{
		ReceiverID: user.ID,
		Message:    "hello me",
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfChat)
}

func TestSendEmptyMessageRefused(t *testing.T) {
	service, _, userRepo := newChatFixture()
	sender := userRepo.add(&models.User{Email: "a@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	receiver := userRepo.add(&models.User{Email: "b@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})

	_, err := service.Send(context.Background(), sender.ID, &dto.ChatRequest{
		ReceiverID: receiver.ID,
		Message:    "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSendMediaOnlyAllowed(t *testing.T) {
	service, _, userRepo := newChatFixture()
	sender := userRepo.add(&models.User{Email: "a@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	receiver := userRepo.add(&models.User{Email: "b@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})

	mediaURL := "http://localhost:8080/uploads/chat/pic.png"
	mediaType := "image/png"
	chat, err := service.Send(context.Background(), sender.ID, &dto.ChatRequest{
		ReceiverID: receiver.ID,
		MediaURL:   &mediaURL,
		MediaType:  &mediaType,
	})
	require.NoError(t, err)
	require.NotNil(t, chat.MediaURL)
	assert.Equal(t, mediaURL, *chat.MediaURL)
}

func TestSendUnknownReceiver(t *testing.T) {
	service, _, userRepo := newChatFixture()
	sender := userRepo.add(&models.User{Email: "a@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})

	_, err := service.Send(context.Background(), sender.ID, &dto.ChatRequest{
		ReceiverID: 999,
		Message:    "anyone there?",
	})
	assert.ErrorIs(t, err, apperrors.ErrReceiverNotFound)
}

func TestConversationMarksPartnerMessagesRead(t *testing.T) {
	service, _, userRepo := newChatFixture()
	alice := userRepo.add(&models.User{Email: "alice@test", Role: models.RoleStudent, AccountStatus: models.AccountActive})
	bob := userRepo.add(&models.User{Email: "bob@test", Role: models.RoleAlumni, AccountStatus: models.AccountActive})

	_, err := service.Send(context.Background(), bob.ID, &dto.ChatRequest{ReceiverID: alice.ID, Message: "hi alice"})
	require.NoError(t, err)
	_, err = service.Send(context.Background(), bob.ID, &dto.ChatRequest{ReceiverID: alice.ID, Message: "you there?"})
	require.NoError(t, err)

	counts, err := service.UnreadCounts(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[bob.ID])

	history, err := service.Conversation(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	counts, err = service.UnreadCounts(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Zero(t, counts[bob.ID])

	countsBob, err := service.UnreadCounts(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, countsBob)
}
