package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
	"github.com/elevateconnect/backend/internal/pkg/filestorage"
)

// chatMediaMaxBytes caps chat uploads at 10 MB
const chatMediaMaxBytes = 10 << 20

// ChatController handles one-to-one messaging and media upload
type ChatController struct {
	chatService *services.ChatService
	storage     filestorage.FileStorage
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService, storage filestorage.FileStorage) *ChatController {
	return &ChatController{
		chatService: chatService,
		storage:     storage,
	}
}

// Send handles POST /api/chat/send
func (cc *ChatController) Send(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid chat request: "+err.Error()))
		return
	}

	chat, err := cc.chatService.Send(c.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, chat)
}

// Conversation handles GET /api/chat/conversation/:partnerId. Reading the
// conversation marks the partner's messages as read.
func (cc *ChatController) Conversation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	partnerID, err := pathID(c, "partnerId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	chats, err := cc.chatService.Conversation(c.Request.Context(), user.ID, partnerID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, chats)
}

// Unread handles GET /api/chat/unread: {senderId: count}
func (cc *ChatController) Unread(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	counts, err := cc.chatService.UnreadCounts(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// Partners handles GET /api/chat/partners
func (cc *ChatController) Partners(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	partners, err := cc.chatService.RecentPartners(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, partners)
}

// AlumniDirectory handles GET /api/chat/alumni
func (cc *ChatController) AlumniDirectory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	alumni, err := cc.chatService.AlumniDirectory(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, alumni)
}

// Upload handles POST /api/chat/upload (multipart). The blob lands under the
// storage root with a UUID-prefixed name; the response carries its URL.
func (cc *ChatController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("No file in request"))
		return
	}
	if fileHeader.Size > chatMediaMaxBytes {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("File exceeds the 10 MB limit"))
		return
	}

	url, err := cc.storage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}
