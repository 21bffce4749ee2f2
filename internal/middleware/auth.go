package middleware

import (
	"errors"
	"strings"

	"recipe-share/domain"
	"recipe-share/internal/api/presenters"
	"recipe-share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires a valid bearer token and stores its user id in
// c.Locals("user_id"). With auth disabled every request passes through.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.authEnabled {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		userID, err := jwtService.GetUserIDByToken(strings.TrimSpace(token))
		if err != nil {
			msg := domain.MessageFailedTokenInvalid
			if errors.Is(err, domain.ErrTokenExpired) {
				msg = domain.MessageFailedTokenExpired
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, msg, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
