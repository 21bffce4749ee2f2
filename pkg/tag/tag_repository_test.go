package tag

import (
	"context"
	"testing"

	"recipe-share/entities"
	"recipe-share/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertTagIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	first, err := repo.UpsertTag(ctx, "breakfast")
	require.NoError(t, err)
	second, err := repo.UpsertTag(ctx, "breakfast")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertTagsSkipsBlankAndDuplicates(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTagRepository(db)

	tags, err := repo.UpsertTags(context.Background(), []string{"vegan", " ", "quick", "vegan", " quick "})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "vegan", tags[0].Name)
	assert.Equal(t, "quick", tags[1].Name)
}

func TestAttachTags(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	user := entities.User{Username: "chef", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	recipe := entities.Recipe{UserID: user.ID, Title: "Toast", Slug: "toast", Public: true}
	require.NoError(t, db.Create(&recipe).Error)

	tags, err := repo.UpsertTags(ctx, []string{"bread", "snack"})
	require.NoError(t, err)
	require.NoError(t, repo.AttachTags(ctx, recipe.ID, tags))
	require.NoError(t, repo.AttachTags(ctx, recipe.ID, nil))

	var joins []entities.RecipeHasTag
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Find(&joins).Error)
	assert.Len(t, joins, 2)

	// the pair is unique
	assert.Error(t, repo.AttachTags(ctx, recipe.ID, tags[:1]))
}
