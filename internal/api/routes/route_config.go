package routes

import (
	"recipe-share/internal/api/handlers"
	"recipe-share/internal/middleware"
	"recipe-share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	Config struct {
		App           *fiber.App
		HomeHandler   handlers.HomeHandler
		RecipeHandler handlers.RecipeHandler
		UserHandler   handlers.UserHandler
		LookupHandler handlers.LookupHandler
		Middleware    middleware.Middleware
		JWTService    jwt.JWTService
	}

	route struct {
		method   string
		path     string
		handlers []fiber.Handler
	}
)

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())

	for _, r := range c.routes() {
		c.App.Add(r.method, r.path, r.handlers...)
	}
}

// routes is the full HTTP surface. Order matters only where fiber would
// otherwise match a parameter segment first.
func (c *Config) routes() []route {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	return []route{
		{fiber.MethodGet, "/", []fiber.Handler{c.HomeHandler.Home}},
		{fiber.MethodGet, "/metrics", []fiber.Handler{adaptor.HTTPHandler(promhttp.Handler())}},

		// recipes
		{fiber.MethodPost, "/recipe", []fiber.Handler{auth, c.RecipeHandler.CreateRecipe}},
		{fiber.MethodPost, "/recipe/cover-image", []fiber.Handler{auth, c.RecipeHandler.UploadCoverImage}},
		{fiber.MethodGet, "/recipe/:username/:slug", []fiber.Handler{c.RecipeHandler.GetRecipe}},
		{fiber.MethodGet, "/recipes/recent", []fiber.Handler{c.RecipeHandler.GetRecentRecipes}},
		{fiber.MethodDelete, "/recipe/:recipeId", []fiber.Handler{auth, c.RecipeHandler.DeleteRecipe}},

		// users
		{fiber.MethodPost, "/user", []fiber.Handler{c.UserHandler.Register}},
		{fiber.MethodPost, "/user/login", []fiber.Handler{c.UserHandler.Login}},
		{fiber.MethodGet, "/user/:username", []fiber.Handler{c.UserHandler.GetUser}},

		// lookups
		{fiber.MethodGet, "/lookups/ingredients", []fiber.Handler{c.LookupHandler.GetIngredients}},
		{fiber.MethodPost, "/lookups/ingredients", []fiber.Handler{c.LookupHandler.CreateIngredient}},
		{fiber.MethodGet, "/lookups/metrics", []fiber.Handler{c.LookupHandler.GetMetrics}},
		{fiber.MethodPost, "/lookups/metrics", []fiber.Handler{c.LookupHandler.CreateMetric}},
	}
}
