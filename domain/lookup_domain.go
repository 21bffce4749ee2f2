package domain

import "errors"

var (
	MessageSuccessGetLookups = "success get lookups"
	MessageSuccessSaveLookup = "lookup saved"
	MessageFailedGetLookups  = "failed to get lookups"
	MessageFailedSaveLookup  = "failed to save lookup"

	ErrLookupNameRequired = errors.New("lookup name is required")
)

type (
	CreateIngredientRequest struct {
		Ingredient string `json:"ingredient" validate:"required,max=128"`
	}

	CreateMetricRequest struct {
		Metric string `json:"metric" validate:"required,max=64"`
	}

	Ingredient struct {
		ID         uint   `json:"id"`
		Ingredient string `json:"ingredient"`
	}

	Metric struct {
		ID     uint   `json:"id"`
		Metric string `json:"metric"`
	}
)
