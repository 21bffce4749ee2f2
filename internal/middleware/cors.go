package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: strings.Join([]string{
			fiber.MethodOptions,
			fiber.MethodGet,
			fiber.MethodPut,
			fiber.MethodPost,
			fiber.MethodDelete,
		}, ","),
		AllowHeaders:  "Origin, X-Requested-With, Content-Type, Accept, Authorization, x-mac",
		ExposeHeaders: "x-mac, x-host",
	})
}
