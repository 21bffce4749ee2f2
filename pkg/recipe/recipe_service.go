package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"recipe-share/domain"
	"recipe-share/entities"
	"recipe-share/internal/utils"
	"recipe-share/internal/utils/storage"
	"recipe-share/pkg/tag"
	"recipe-share/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	coverImageFolder = "covers"
	// used when a title has no ASCII letters or digits to slug from
	defaultSlugBase = "recipe"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		GetRecipe(ctx context.Context, username, slug string) (domain.RecipeDetail, error)
		GetRecentRecipes(ctx context.Context, take, skip int) ([]domain.RecentRecipe, error)
		DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResult, error)
		UploadCoverImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		tagRepository    tag.TagRepository
		s3               storage.AwsS3
	}
)

// NewRecipeService wires the recipe service. s3 may be nil, in which case
// cover image uploads report domain.ErrStorageUnavailable.
func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	tagRepository tag.TagRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		tagRepository:    tagRepository,
		s3:               s3,
	}
}

// CreateRecipe saves the recipe row and then writes steps, tags and
// ingredient joins. The child writes are not transactional: a failure is
// logged and counted but the already saved recipe is still returned.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	author, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrUserNotFound
		}
		return domain.Recipe{}, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		slug = defaultSlugBase
	}

	now := time.Now()
	createdAt := now
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		createdAt = *req.CreatedAt
	}

	public := true
	if req.Public != nil {
		public = *req.Public
	}

	recipe := entities.Recipe{
		UserID:        author.ID,
		Title:         strings.TrimSpace(req.Title) + utils.RandomString(),
		Slug:          slug + "-" + utils.RandomString(),
		Description:   req.Description,
		CoverImage:    req.CoverImage,
		Public:        public,
		EstimatedTime: req.EstimatedTime,
		CreatedAt:     createdAt,
		EditedAt:      now,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		log.Errorf("error saving recipe for user %d: %v", author.ID, err)
		return domain.Recipe{}, errors.Join(domain.ErrSaveRecipe, err)
	}
	recipesCreated.Inc()

	s.createSteps(ctx, recipe.ID, req.Steps)
	s.createTags(ctx, recipe.ID, req.Tags)
	s.createIngredients(ctx, recipe.ID, req.Ingredients)

	return toDomainRecipe(&recipe), nil
}

func (s *recipeService) createSteps(ctx context.Context, recipeID uint, reqSteps []domain.RecipeStepRequest) {
	if len(reqSteps) == 0 {
		return
	}

	steps := make([]*entities.RecipeStep, 0, len(reqSteps))
	for i, step := range reqSteps {
		number := step.StepNumber
		if number == 0 {
			number = i + 1
		}
		steps = append(steps, &entities.RecipeStep{
			RecipeID:   recipeID,
			StepNumber: number,
			Content:    step.Content,
		})
	}

	if err := s.recipeRepository.CreateRecipeSteps(ctx, steps); err != nil {
		childWriteFailures.WithLabelValues("step").Inc()
		log.Errorf("error creating steps for recipe %d: %v", recipeID, err)
	}
}

func (s *recipeService) createTags(ctx context.Context, recipeID uint, names []string) {
	if len(names) == 0 {
		return
	}

	tags, err := s.tagRepository.UpsertTags(ctx, names)
	if err != nil {
		childWriteFailures.WithLabelValues("tag").Inc()
		log.Errorf("error upserting tags for recipe %d: %v", recipeID, err)
	}

	if err := s.tagRepository.AttachTags(ctx, recipeID, tags); err != nil {
		childWriteFailures.WithLabelValues("tag").Inc()
		log.Errorf("error attaching tags to recipe %d: %v", recipeID, err)
	}
}

// createIngredients writes one join row per valid entry, each on its own
// goroutine. Entries missing ingredientId, metricId or amount are dropped.
func (s *recipeService) createIngredients(ctx context.Context, recipeID uint, reqIngredients []domain.RecipeIngredientRequest) {
	var wg sync.WaitGroup
	for _, ingredient := range reqIngredients {
		if !ingredient.Valid() {
			continue
		}

		row := &entities.RecipeHasIngredient{
			RecipeID:     recipeID,
			IngredientID: *ingredient.IngredientID,
			MetricID:     *ingredient.MetricID,
			Amount:       *ingredient.Amount,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.recipeRepository.CreateRecipeIngredient(ctx, row); err != nil {
				childWriteFailures.WithLabelValues("ingredient").Inc()
				log.Errorf("error creating ingredient %d for recipe %d: %v", row.IngredientID, recipeID, err)
			}
		}()
	}
	wg.Wait()
}

func (s *recipeService) GetRecipe(ctx context.Context, username, slug string) (domain.RecipeDetail, error) {
	author, err := s.userRepository.GetUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrUserNotFound
		}
		return domain.RecipeDetail{}, err
	}

	recipe, err := s.recipeRepository.GetRecipeByUserAndSlug(ctx, author.ID, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		Recipe:         toDomainRecipe(recipe),
		RecipeSteps:    make([]domain.RecipeStep, 0, len(recipe.RecipeSteps)),
		RecipeComments: make([]domain.RecipeComment, 0, len(recipe.RecipeComments)),
		Tags:           toDomainTags(recipe.RecipeHasTags),
		Ingredients:    make([]domain.RecipeIngredient, 0, len(recipe.RecipeHasIngredients)),
	}

	for _, step := range recipe.RecipeSteps {
		detail.RecipeSteps = append(detail.RecipeSteps, domain.RecipeStep{
			ID:         step.ID,
			RecipeID:   step.RecipeID,
			StepNumber: step.StepNumber,
			Content:    step.Content,
		})
	}

	for _, comment := range recipe.RecipeComments {
		detail.RecipeComments = append(detail.RecipeComments, domain.RecipeComment{
			ID:        comment.ID,
			RecipeID:  comment.RecipeID,
			UserID:    comment.UserID,
			Comment:   comment.Comment,
			CreatedAt: comment.CreatedAt,
		})
	}

	for _, join := range recipe.RecipeHasIngredients {
		ingredient := domain.RecipeIngredient{
			ID:           join.ID,
			RecipeID:     join.RecipeID,
			IngredientID: join.IngredientID,
			MetricID:     join.MetricID,
			Amount:       join.Amount,
		}
		if join.Ingredient != nil {
			ingredient.Ingredient = join.Ingredient.Ingredient
		}
		if join.Metric != nil {
			ingredient.Metric = join.Metric.Metric
		}
		detail.Ingredients = append(detail.Ingredients, ingredient)
	}

	return detail, nil
}

func (s *recipeService) GetRecentRecipes(ctx context.Context, take, skip int) ([]domain.RecentRecipe, error) {
	recipes, err := s.recipeRepository.GetRecentRecipes(ctx, take, skip)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecentRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		recent := domain.RecentRecipe{
			Recipe: toDomainRecipe(recipe),
			Tags:   toDomainTags(recipe.RecipeHasTags),
		}
		if recipe.User != nil {
			recent.Author = recipe.User.Username
		}
		res = append(res, recent)
	}
	return res, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResult, error) {
	affected, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		return domain.DeleteRecipeResult{}, err
	}
	return domain.DeleteRecipeResult{Affected: affected}, nil
}

func (s *recipeService) UploadCoverImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.s3 == nil {
		return "", domain.ErrStorageUnavailable
	}

	key, err := s.s3.UploadFile(ctx, uuid.NewString(), file, coverImageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return "", domain.ErrInvalidImageFormat
		}
		return "", err
	}
	return s.s3.GetPublicLinkKey(key), nil
}

func toDomainRecipe(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:            recipe.ID,
		UserID:        recipe.UserID,
		Title:         recipe.Title,
		Slug:          recipe.Slug,
		Description:   recipe.Description,
		CoverImage:    recipe.CoverImage,
		Public:        recipe.Public,
		EstimatedTime: recipe.EstimatedTime,
		CreatedAt:     recipe.CreatedAt,
		EditedAt:      recipe.EditedAt,
	}
}

func toDomainTags(joins []*entities.RecipeHasTag) []domain.Tag {
	tags := make([]domain.Tag, 0, len(joins))
	for _, join := range joins {
		if join.Tag == nil {
			continue
		}
		tags = append(tags, domain.Tag{ID: join.Tag.ID, Name: join.Tag.Name})
	}
	return tags
}
