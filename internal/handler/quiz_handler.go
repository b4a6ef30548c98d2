package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler exposes the quiz catalog and the submit workflow over HTTP.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns the quiz catalog. Instructors see only quizzes they authored; students see all quizzes.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 401 {object} domain.DomainError
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	summaries, err := h.quizService.ListQuizzes(c.UserContext(), middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns one quiz with its questions. Correct answers are never included.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizDetailResponse
// @Failure 401 {object} domain.DomainError
// @Failure 404 {object} domain.DomainError
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	detail, err := h.quizService.GetQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Persists a quiz draft. Requires the INSTRUCTOR role.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizRequest true "Quiz draft"
// @Success 201 {object} dto.QuizDetailResponse
// @Failure 400 {object} domain.DomainError
// @Failure 401 {object} domain.DomainError
// @Failure 403 {object} domain.DomainError
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeValidation, "invalid request body", err)
	}

	detail, err := h.quizService.CreateQuiz(c.UserContext(), middleware.CallerID(c), middleware.CallerRole(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(detail)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades a submission against the quiz's answer key, records the result, and returns the score.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Answers keyed by question ID"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} domain.DomainError
// @Failure 401 {object} domain.DomainError
// @Failure 404 {object} domain.DomainError
// @Failure 500 {object} domain.DomainError
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeValidation, "invalid request body", err)
	}

	result, err := h.quizService.SubmitQuiz(c.UserContext(), middleware.CallerID(c), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
