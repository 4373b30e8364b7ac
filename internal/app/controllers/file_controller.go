package controllers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// resumeMaxBytes caps resume uploads at 5 MB
const resumeMaxBytes = 5 << 20

// FileController handles the resume upload surface. The resume is stored
// inline on the user row as a base64 data URI rather than on disk.
type FileController struct {
	authService *services.AuthService
}

// NewFileController creates a new FileController
func NewFileController(authService *services.AuthService) *FileController {
	return &FileController{authService: authService}
}

// UploadResume handles POST /api/files/upload/resume (multipart)
func (fc *FileController) UploadResume(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("No file in request"))
		return
	}
	if fileHeader.Size > resumeMaxBytes {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Resume exceeds the 5 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content)

	if err := fc.authService.SaveResume(c.Request.Context(), user.ID, dataURI); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Resume uploaded successfully"))
}
