// File: entities/recipe.go
package entities

import (
	"time"
)

type Recipe struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	Title         string    `gorm:"not null" json:"title"`
	Slug          string    `gorm:"not null;index" json:"slug"`
	Description   string    `gorm:"type:text" json:"description"`
	CoverImage    string    `json:"coverImage"`
	Public        bool      `gorm:"not null" json:"public"`
	EstimatedTime *int      `json:"estimatedTime"` // minutes
	CreatedAt     time.Time `json:"createdAt"`
	EditedAt      time.Time `json:"editedAt"`

	User                 *User                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	RecipeSteps          []*RecipeStep          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipeSteps,omitempty"`
	RecipeHasIngredients []*RecipeHasIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipeHasIngredients,omitempty"`
	RecipeComments       []*RecipeComment       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipeComments,omitempty"`
	RecipeHasTags        []*RecipeHasTag        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipeHasTags,omitempty"`
}

type RecipeStep struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RecipeID   uint   `gorm:"not null;index" json:"recipeId"`
	StepNumber int    `json:"stepNumber"`
	Content    string `gorm:"type:text" json:"content"`
}

// RecipeComment has no write path in the API; rows are created out of band.
type RecipeComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipeId"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
