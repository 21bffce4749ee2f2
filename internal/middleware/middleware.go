package middleware

import (
	"recipe-share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	middleware struct {
		authEnabled bool
	}
)

func NewMiddleware(authEnabled bool) Middleware {
	return &middleware{authEnabled: authEnabled}
}
