package migration

import (
	"fmt"

	"recipe-share/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// parents before children so foreign keys resolve
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"ingredient", &entities.Ingredient{}},
		{"metric", &entities.Metric{}},
		{"tag", &entities.Tag{}},
		{"recipe", &entities.Recipe{}},
		{"recipe step", &entities.RecipeStep{}},
		{"recipe comment", &entities.RecipeComment{}},
		{"recipe ingredient", &entities.RecipeHasIngredient{}},
		{"recipe tag", &entities.RecipeHasTag{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
