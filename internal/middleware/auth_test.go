package middleware

import (
	"net/http/httptest"
	"testing"

	"recipe-share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(authEnabled bool, jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewMiddleware(authEnabled).AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.SendString("user:" + userID)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "RECIPE-SHARE")
	token, err := jwtService.GenerateTokenUser("7")
	require.NoError(t, err)

	tests := []struct {
		name    string
		enabled bool
		header  string
		status  int
	}{
		{"disabled passes through", false, "", fiber.StatusOK},
		{"missing header", true, "", fiber.StatusUnauthorized},
		{"not bearer", true, "Basic abc", fiber.StatusUnauthorized},
		{"bad token", true, "Bearer nope", fiber.StatusUnauthorized},
		{"valid token", true, "Bearer " + token, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(tt.enabled, jwtService)
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware(false).CORSMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodOptions, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodDelete)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), fiber.MethodDelete)
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowHeaders), "x-mac")
}
