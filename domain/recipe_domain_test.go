package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeStepRequestUnmarshal(t *testing.T) {
	var steps []RecipeStepRequest
	body := `["Whisk eggs", {"content": "Fry", "stepNumber": 5}, {"content": "Serve"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &steps))

	assert.Equal(t, []RecipeStepRequest{
		{Content: "Whisk eggs"},
		{Content: "Fry", StepNumber: 5},
		{Content: "Serve"},
	}, steps)

	assert.Error(t, json.Unmarshal([]byte(`[42]`), &steps))
}

func TestRecipeIngredientRequestValid(t *testing.T) {
	id := func(v uint) *uint { return &v }
	amount := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		req  RecipeIngredientRequest
		want bool
	}{
		{"complete", RecipeIngredientRequest{IngredientID: id(1), MetricID: id(2), Amount: amount(1.5)}, true},
		{"missing ingredient", RecipeIngredientRequest{MetricID: id(2), Amount: amount(1)}, false},
		{"missing metric", RecipeIngredientRequest{IngredientID: id(1), Amount: amount(1)}, false},
		{"missing amount", RecipeIngredientRequest{IngredientID: id(1), MetricID: id(2)}, false},
		{"zero amount", RecipeIngredientRequest{IngredientID: id(1), MetricID: id(2), Amount: amount(0)}, false},
		{"zero id", RecipeIngredientRequest{IngredientID: id(0), MetricID: id(2), Amount: amount(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Valid())
		})
	}
}
