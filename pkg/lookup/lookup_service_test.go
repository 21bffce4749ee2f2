package lookup

import (
	"context"
	"testing"

	"recipe-share/domain"
	"recipe-share/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewLookupService(NewLookupRepository(db))
	ctx := context.Background()

	flour, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Ingredient: " Flour "})
	require.NoError(t, err)
	assert.Equal(t, "flour", flour.Ingredient)

	again, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Ingredient: "flour"})
	require.NoError(t, err)
	assert.Equal(t, flour.ID, again.ID)

	_, err = svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Ingredient: "butter"})
	require.NoError(t, err)

	ingredients, err := svc.GetIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "butter", ingredients[0].Ingredient)

	_, err = svc.CreateMetric(ctx, domain.CreateMetricRequest{Metric: "  "})
	assert.ErrorIs(t, err, domain.ErrLookupNameRequired)

	cup, err := svc.CreateMetric(ctx, domain.CreateMetricRequest{Metric: "cup"})
	require.NoError(t, err)
	metrics, err := svc.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Metric{cup}, metrics)
}
