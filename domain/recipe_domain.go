package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe  = "No errors"
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessDeleteRecipe  = "recipe deleted"
	MessageSuccessUploadCover   = "cover image uploaded"
	MessageFailedSaveRecipe     = "Error saving recipe"
	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedDeleteRecipe   = "failed to delete recipe"
	MessageFailedUploadCover    = "failed to upload cover image"
	MessageRecipeUserNotFound   = "Couldn't find user with that id"
	MessageLookupUserNotFound   = "User not found"
	MessageLookupRecipeNotFound = "Recipe not found"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrSaveRecipe         = errors.New("error saving recipe")
	ErrInvalidRecipeID    = errors.New("recipe id must be a base-10 integer")
	ErrStorageUnavailable = errors.New("cover image storage is not configured")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

const (
	DefaultRecentTake = 20
	DefaultRecentSkip = 0
)

type (
	CreateRecipeRequest struct {
		UserID        uint                      `json:"userId"`
		Title         string                    `json:"title" validate:"required,max=200"`
		Slug          string                    `json:"slug" validate:"omitempty,max=200"`
		Description   string                    `json:"description"`
		CoverImage    string                    `json:"coverImage" validate:"omitempty,max=2048"`
		Public        *bool                     `json:"public"`
		EstimatedTime *int                      `json:"estimatedTime" validate:"omitempty,min=0"`
		CreatedAt     *time.Time                `json:"createdAt"`
		Steps         []RecipeStepRequest       `json:"steps"`
		Tags          []string                  `json:"tags"`
		Ingredients   []RecipeIngredientRequest `json:"ingredients"`
	}

	// RecipeStepRequest accepts either a bare string or {"content", "stepNumber"}.
	RecipeStepRequest struct {
		Content    string `json:"content"`
		StepNumber int    `json:"stepNumber"`
	}

	RecipeIngredientRequest struct {
		IngredientID *uint    `json:"ingredientId"`
		MetricID     *uint    `json:"metricId"`
		Amount       *float64 `json:"amount"`
	}

	Recipe struct {
		ID            uint      `json:"id"`
		UserID        uint      `json:"userId"`
		Title         string    `json:"title"`
		Slug          string    `json:"slug"`
		Description   string    `json:"description"`
		CoverImage    string    `json:"coverImage"`
		Public        bool      `json:"public"`
		EstimatedTime *int      `json:"estimatedTime"`
		CreatedAt     time.Time `json:"createdAt"`
		EditedAt      time.Time `json:"editedAt"`
	}

	RecipeStep struct {
		ID         uint   `json:"id"`
		RecipeID   uint   `json:"recipeId"`
		StepNumber int    `json:"stepNumber"`
		Content    string `json:"content"`
	}

	RecipeComment struct {
		ID        uint      `json:"id"`
		RecipeID  uint      `json:"recipeId"`
		UserID    uint      `json:"userId"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"createdAt"`
	}

	Tag struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	RecipeIngredient struct {
		ID           uint    `json:"id"`
		RecipeID     uint    `json:"recipeId"`
		IngredientID uint    `json:"ingredientId"`
		MetricID     uint    `json:"metricId"`
		Amount       float64 `json:"amount"`
		Ingredient   string  `json:"ingredient"`
		Metric       string  `json:"metric"`
	}

	RecipeDetail struct {
		Recipe
		RecipeSteps    []RecipeStep       `json:"recipeSteps"`
		RecipeComments []RecipeComment    `json:"recipeComments"`
		Tags           []Tag              `json:"tags"`
		Ingredients    []RecipeIngredient `json:"ingredients"`
	}

	RecentRecipe struct {
		Recipe
		Author string `json:"author"`
		Tags   []Tag  `json:"tags"`
	}

	DeleteRecipeResult struct {
		Affected int64 `json:"affected"`
	}
)

// Valid reports whether the entry carries all of ingredientId, metricId and a non-zero amount.
func (r RecipeIngredientRequest) Valid() bool {
	return r.IngredientID != nil && *r.IngredientID != 0 &&
		r.MetricID != nil && *r.MetricID != 0 &&
		r.Amount != nil && *r.Amount != 0
}

func (s *RecipeStepRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &s.Content)
	}

	type plain RecipeStepRequest
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*s = RecipeStepRequest(p)
	return nil
}
