package recipe

import (
	"context"

	"recipe-share/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateRecipeSteps(ctx context.Context, steps []*entities.RecipeStep) error
		CreateRecipeIngredient(ctx context.Context, ingredient *entities.RecipeHasIngredient) error
		GetRecipeByUserAndSlug(ctx context.Context, userID uint, slug string) (*entities.Recipe, error)
		GetRecentRecipes(ctx context.Context, take, skip int) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) CreateRecipeSteps(ctx context.Context, steps []*entities.RecipeStep) error {
	if len(steps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&steps).Error
}

func (r *recipeRepository) CreateRecipeIngredient(ctx context.Context, ingredient *entities.RecipeHasIngredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

// GetRecipeByUserAndSlug returns the lowest-id recipe owned by userID with the
// exact slug, with steps, ingredients, comments and tags preloaded.
func (r *recipeRepository) GetRecipeByUserAndSlug(ctx context.Context, userID uint, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number asc, id asc")
		}).
		Preload("RecipeHasIngredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("RecipeHasIngredients.Ingredient").
		Preload("RecipeHasIngredients.Metric").
		Preload("RecipeComments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, id asc")
		}).
		Preload("RecipeHasTags.Tag").
		Where("user_id = ? AND slug = ?", userID, slug).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecentRecipes(ctx context.Context, take, skip int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("RecipeHasTags.Tag").
		Order("created_at desc, id desc").
		Offset(skip).
		Limit(take).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe row together with its steps, comments,
// ingredient joins and tag joins. Missing ids report zero affected rows.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Select(clause.Associations).
		Where("id = ?", id).
		Delete(&entities.Recipe{ID: id})
	return res.RowsAffected, res.Error
}
