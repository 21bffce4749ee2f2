package lookup

import (
	"context"
	"strings"

	"recipe-share/domain"
)

type (
	LookupService interface {
		GetIngredients(ctx context.Context) ([]domain.Ingredient, error)
		GetMetrics(ctx context.Context) ([]domain.Metric, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.Ingredient, error)
		CreateMetric(ctx context.Context, req domain.CreateMetricRequest) (domain.Metric, error)
	}

	lookupService struct {
		lookupRepository LookupRepository
	}
)

func NewLookupService(lookupRepository LookupRepository) LookupService {
	return &lookupService{lookupRepository: lookupRepository}
}

func (s *lookupService) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := s.lookupRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Ingredient{ID: row.ID, Ingredient: row.Ingredient})
	}
	return res, nil
}

func (s *lookupService) GetMetrics(ctx context.Context) ([]domain.Metric, error) {
	rows, err := s.lookupRepository.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Metric, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Metric{ID: row.ID, Metric: row.Metric})
	}
	return res, nil
}

func (s *lookupService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.Ingredient, error) {
	name := strings.ToLower(strings.TrimSpace(req.Ingredient))
	if name == "" {
		return domain.Ingredient{}, domain.ErrLookupNameRequired
	}

	row, err := s.lookupRepository.UpsertIngredient(ctx, name)
	if err != nil {
		return domain.Ingredient{}, err
	}
	return domain.Ingredient{ID: row.ID, Ingredient: row.Ingredient}, nil
}

func (s *lookupService) CreateMetric(ctx context.Context, req domain.CreateMetricRequest) (domain.Metric, error) {
	name := strings.TrimSpace(req.Metric)
	if name == "" {
		return domain.Metric{}, domain.ErrLookupNameRequired
	}

	row, err := s.lookupRepository.UpsertMetric(ctx, name)
	if err != nil {
		return domain.Metric{}, err
	}
	return domain.Metric{ID: row.ID, Metric: row.Metric}, nil
}
