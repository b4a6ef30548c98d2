package handler

import (
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves the authenticated caller's profile and result history.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description Returns the authenticated caller's profile.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} domain.DomainError
// @Failure 404 {object} domain.DomainError
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.UserContext(), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetMyResults godoc
// @Summary Get my quiz results
// @Description Returns the caller's recorded quiz results, newest first. Retakes appear as separate entries.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResultResponse
// @Failure 401 {object} domain.DomainError
// @Router /users/me/results [get]
func (h *UserHandler) GetMyResults(c *fiber.Ctx) error {
	results, err := h.userService.GetMyResults(c.UserContext(), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.JSON(results)
}
