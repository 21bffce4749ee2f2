package entities

type Ingredient struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Ingredient string `gorm:"type:varchar(128);uniqueIndex;not null" json:"ingredient"`

	Timestamp
}

type Metric struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Metric string `gorm:"type:varchar(64);uniqueIndex;not null" json:"metric"`

	Timestamp
}

type RecipeHasIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipeId"`
	IngredientID uint    `gorm:"not null" json:"ingredientId"`
	MetricID     uint    `gorm:"not null" json:"metricId"`
	Amount       float64 `gorm:"not null" json:"amount"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Metric     *Metric     `gorm:"foreignKey:MetricID" json:"metric,omitempty"`
}
