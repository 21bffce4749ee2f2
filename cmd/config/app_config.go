package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"recipe-share/domain"
	"recipe-share/internal/api/handlers"
	"recipe-share/internal/api/presenters"
	"recipe-share/internal/api/routes"
	"recipe-share/internal/middleware"
	"recipe-share/internal/utils"
	"recipe-share/internal/utils/storage"
	"recipe-share/pkg/jwt"
	"recipe-share/pkg/lookup"
	"recipe-share/pkg/recipe"
	"recipe-share/pkg/tag"
	"recipe-share/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "recipe-share",
		ErrorHandler: errorHandler,
	})
	middlewares := middleware.NewMiddleware(cfg.AuthEnabled)
	validator := utils.Validate

	// setting up logging and limiter
	output, err := logOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${method} -> ${url} ${status} ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.DBTimeZone,
		Output:     output,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	var s3 storage.AwsS3
	if cfg.AWSS3Bucket != "" {
		s3, err = storage.NewAwsS3(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("AWS_S3_BUCKET not set, cover image upload disabled")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	tagRepository := tag.NewTagRepository(db)
	lookupRepository := lookup.NewLookupRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, tagRepository, s3)
	lookupService := lookup.NewLookupService(lookupRepository)

	// Handler
	homeHandler := handlers.NewHomeHandler()
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	lookupHandler := handlers.NewLookupHandler(lookupService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		HomeHandler:   homeHandler,
		RecipeHandler: recipeHandler,
		UserHandler:   userHandler,
		LookupHandler: lookupHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := domain.MessageFailedProcessRequest

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code == fiber.StatusNotFound {
			msg = domain.MessageNotFound
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return presenters.ErrorResponse(c, code, msg, err)
}
