package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"msg": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// SuccessResponse writes data with msg merged in at the top level, so
// handlers keep the flat {"msg": ..., "recipe": ...} shape.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, status int, message string) error {
	body := fiber.Map{"msg": message}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
