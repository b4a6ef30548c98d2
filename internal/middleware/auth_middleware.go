package middleware

import (
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserIDKey is the Locals key under which the authenticated user's ID
	// is stored for downstream handlers.
	UserIDKey = "userID"
	// RoleKey is the Locals key holding the caller's role claim.
	RoleKey = "userRole"
)

// Protected returns a middleware that enforces the access guard: every
// request must carry a valid bearer access token. On success the caller's
// identity and role are placed in Locals; on failure the request never
// reaches the handler.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.NewUnauthorizedError("no token provided", nil)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domain.NewUnauthorizedError("no token provided", nil)
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return err
		}
		if claims.TokenType != "access" {
			return domain.NewUnauthorizedError("invalid token", nil)
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, domain.ParseRole(claims.Role))
		return c.Next()
	}
}

// RequireRole gates a route on the role claim set by Protected. It must
// run after Protected in the chain.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerRole, ok := c.Locals(RoleKey).(domain.Role)
		if !ok {
			return domain.NewUnauthorizedError("no token provided", nil)
		}
		if callerRole != role {
			return domain.NewForbiddenError("insufficient role for this operation")
		}
		return c.Next()
	}
}

// CallerID returns the authenticated user's ID from Locals.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

// CallerRole returns the authenticated user's role from Locals.
func CallerRole(c *fiber.Ctx) domain.Role {
	role, _ := c.Locals(RoleKey).(domain.Role)
	return role
}
