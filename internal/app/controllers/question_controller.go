package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/middleware"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// QuestionController handles the interview-question sharing surface
type QuestionController struct {
	questionService *services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List handles GET /api/questions?company=&difficulty=&category=
func (qc *QuestionController) List(c *gin.Context) {
	var filter dto.QuestionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid question filter"))
		return
	}

	questions, err := qc.questionService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// ListMine handles GET /api/questions/my
func (qc *QuestionController) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	questions, err := qc.questionService.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// Companies handles GET /api/questions/companies
func (qc *QuestionController) Companies(c *gin.Context) {
	companies, err := qc.questionService.Companies(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// Create handles POST /api/questions
func (qc *QuestionController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Invalid question request: "+err.Error()))
		return
	}

	question, err := qc.questionService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// ToggleHelpful handles PUT /api/questions/:id/helpful
func (qc *QuestionController) ToggleHelpful(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	question, err := qc.questionService.ToggleHelpful(c.Request.Context(), id, user.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// Delete handles DELETE /api/questions/:id
func (qc *QuestionController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := qc.questionService.Delete(c.Request.Context(), id, user); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Question deleted"))
}
