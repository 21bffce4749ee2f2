package handlers

import (
	"errors"

	"recipe-share/domain"
	"recipe-share/internal/api/presenters"
	"recipe-share/pkg/lookup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LookupHandler interface {
		GetIngredients(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		GetMetrics(c *fiber.Ctx) error
		CreateMetric(c *fiber.Ctx) error
	}

	lookupHandler struct {
		lookupService lookup.LookupService
		validator     *validator.Validate
	}
)

func NewLookupHandler(lookupService lookup.LookupService, validator *validator.Validate) LookupHandler {
	return &lookupHandler{
		lookupService: lookupService,
		validator:     validator,
	}
}

func (h *lookupHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.lookupService.GetIngredients(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLookups, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"ingredients": res}, fiber.StatusOK, domain.MessageSuccessGetLookups)
}

func (h *lookupHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveLookup, err)
	}

	res, err := h.lookupService.CreateIngredient(c.UserContext(), *req)
	if err != nil {
		return lookupError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"ingredient": res}, fiber.StatusOK, domain.MessageSuccessSaveLookup)
}

func (h *lookupHandler) GetMetrics(c *fiber.Ctx) error {
	res, err := h.lookupService.GetMetrics(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLookups, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"metrics": res}, fiber.StatusOK, domain.MessageSuccessGetLookups)
}

func (h *lookupHandler) CreateMetric(c *fiber.Ctx) error {
	req := new(domain.CreateMetricRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveLookup, err)
	}

	res, err := h.lookupService.CreateMetric(c.UserContext(), *req)
	if err != nil {
		return lookupError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"metric": res}, fiber.StatusOK, domain.MessageSuccessSaveLookup)
}

func lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrLookupNameRequired) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveLookup, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveLookup, err)
}
