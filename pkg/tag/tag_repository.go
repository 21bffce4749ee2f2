package tag

import (
	"context"
	"strings"

	"recipe-share/entities"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		UpsertTag(ctx context.Context, name string) (*entities.Tag, error)
		UpsertTags(ctx context.Context, names []string) ([]*entities.Tag, error)
		AttachTags(ctx context.Context, recipeID uint, tags []*entities.Tag) error
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// UpsertTag returns the tag row named name, creating it when absent.
func (r *tagRepository) UpsertTag(ctx context.Context, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).
		Where(entities.Tag{Name: name}).
		FirstOrCreate(&tag).Error
	if err == nil {
		return &tag, nil
	}

	// another request may have inserted the same name between our select and insert
	var existing entities.Tag
	if findErr := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; findErr != nil {
		return nil, err
	}
	return &existing, nil
}

// UpsertTags trims names, skips blanks and duplicates, and upserts the rest in order.
func (r *tagRepository) UpsertTags(ctx context.Context, names []string) ([]*entities.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]*entities.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := r.UpsertTag(ctx, name)
		if err != nil {
			return tags, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *tagRepository) AttachTags(ctx context.Context, recipeID uint, tags []*entities.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	rows := make([]*entities.RecipeHasTag, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, &entities.RecipeHasTag{RecipeID: recipeID, TagID: tag.ID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
