package handlers

import (
	"errors"
	"strconv"

	"recipe-share/domain"
	"recipe-share/internal/api/presenters"
	"recipe-share/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		GetRecentRecipes(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadCoverImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// authenticated callers may omit userId
	if req.UserID == 0 {
		if tokenUserID, ok := c.Locals("user_id").(string); ok {
			if id, err := strconv.ParseUint(tokenUserID, 10, 64); err == nil {
				req.UserID = uint(id)
			}
		}
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			// existing clients expect 200 here
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": domain.MessageRecipeUserNotFound})
		case errors.Is(err, domain.ErrSaveRecipe):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveRecipe, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipe": res}, fiber.StatusOK, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipe(c.UserContext(), c.Params("username"), c.Params("slug"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageLookupUserNotFound, nil)
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageLookupRecipeNotFound, nil)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *recipeHandler) GetRecentRecipes(c *fiber.Ctx) error {
	take, err := strconv.Atoi(c.Query("take"))
	if err != nil || take < 1 {
		take = domain.DefaultRecentTake
	}

	skip, err := strconv.Atoi(c.Query("skip"))
	if err != nil || skip < 0 {
		skip = domain.DefaultRecentSkip
	}

	recipes, err := h.recipeService.GetRecentRecipes(c.UserContext(), take, skip)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"recipes": recipes})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("recipeId"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, domain.ErrInvalidRecipeID)
	}

	res, err := h.recipeService.DeleteRecipe(c.UserContext(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"result": res})
}

func (h *recipeHandler) UploadCoverImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.recipeService.UploadCoverImage(c.UserContext(), file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedUploadCover, err)
		case errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadCover, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadCover, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{"coverImage": url}, fiber.StatusOK, domain.MessageSuccessUploadCover)
}
