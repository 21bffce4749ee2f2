package lookup

import (
	"context"

	"recipe-share/entities"

	"gorm.io/gorm"
)

type (
	LookupRepository interface {
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetMetrics(ctx context.Context) ([]*entities.Metric, error)
		UpsertIngredient(ctx context.Context, name string) (*entities.Ingredient, error)
		UpsertMetric(ctx context.Context, name string) (*entities.Metric, error)
	}

	lookupRepository struct {
		db *gorm.DB
	}
)

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("ingredient asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *lookupRepository) GetMetrics(ctx context.Context) ([]*entities.Metric, error) {
	var metrics []*entities.Metric
	if err := r.db.WithContext(ctx).Order("metric asc").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *lookupRepository) UpsertIngredient(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where(entities.Ingredient{Ingredient: name}).
		FirstOrCreate(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *lookupRepository) UpsertMetric(ctx context.Context, name string) (*entities.Metric, error) {
	var metric entities.Metric
	if err := r.db.WithContext(ctx).
		Where(entities.Metric{Metric: name}).
		FirstOrCreate(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}
