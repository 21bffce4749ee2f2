package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

const homeMessage = "We live boys"

type (
	HomeHandler interface {
		Home(c *fiber.Ctx) error
	}

	homeHandler struct {
		hostHeader string
	}
)

func NewHomeHandler() HomeHandler {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &homeHandler{hostHeader: "server-" + hostname}
}

func (h *homeHandler) Home(c *fiber.Ctx) error {
	c.Set("x-host", h.hostHeader)
	return c.Status(fiber.StatusOK).SendString(homeMessage)
}
