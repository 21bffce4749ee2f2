package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Pancakes", "pancakes"},
		{"spaces", "Best  Banana Bread", "best-banana-bread"},
		{"punctuation", "Mom's Chili (spicy!)", "mom-s-chili-spicy"},
		{"accents", "Crème Brûlée", "creme-brulee"},
		{"edges", "  --Hello World--  ", "hello-world"},
		{"digits", "3 Bean Salad 2024", "3-bean-salad-2024"},
		{"empty", "", ""},
		{"symbols only", "!!!", ""},
		{"no ascii", "麻婆豆腐", ""},
		{"mixed scripts", "麻婆 Tofu", "tofu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestRandomString(t *testing.T) {
	a := RandomString()
	b := RandomString()

	assert.Len(t, a, randomStringLength)
	assert.Regexp(t, "^[0-9a-f]+$", a)
	assert.NotEqual(t, a, b)
}
