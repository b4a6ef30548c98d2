package middleware

import (
	"errors"

	"quizdeck/internal/domain"
	"quizdeck/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler returns the global Fiber error handler. Handlers and
// middleware return domain errors; this is the single place where error
// codes become HTTP statuses and response bodies. Causes are logged, never
// serialized.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appLogger := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    string(domain.CodeValidation),
				"message": "request validation failed",
				"details": validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := statusForCode(domainErr.Code)
			if status >= fiber.StatusInternalServerError {
				appLogger.Error("request failed",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.Error(err))
			}
			return c.Status(status).JSON(domainErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    string(domain.CodeInternal),
				"message": fiberErr.Message,
			})
		}

		appLogger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    string(domain.CodeInternal),
			"message": "internal server error",
		})
	}
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case domain.CodeForbidden:
		return fiber.StatusForbidden
	case domain.CodeNotFound, domain.CodeQuizNotFound:
		return fiber.StatusNotFound
	case domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return fiber.StatusBadRequest
	case domain.CodeStorage, domain.CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
