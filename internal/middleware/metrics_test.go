package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareLabelsSurviveRequestReuse(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware(false).MetricsMiddleware())
	app.Post("/widgets", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Get("/widgets/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// alternate methods so pooled request buffers get overwritten
	for range 5 {
		for _, req := range []struct{ method, path string }{
			{fiber.MethodPost, "/widgets"},
			{fiber.MethodGet, "/widgets/1"},
			{fiber.MethodGet, "/missing"},
		} {
			resp, err := app.Test(httptest.NewRequest(req.method, req.path, nil))
			require.NoError(t, err)
			resp.Body.Close()
		}
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	body := string(raw)
	assert.Contains(t, body, `recipe_http_requests_total{method="POST",route="/widgets",status="201"}`)
	assert.Contains(t, body, `recipe_http_requests_total{method="GET",route="/widgets/:id",status="200"}`)
	assert.False(t, strings.Contains(body, `method="GETT"`))
}
