package recipe

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/category"
	"recipebox/pkg/submission"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.RecipeSubmission{},
	))
	return db
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	service := NewRecipeService(
		NewRecipeRepository(db),
		submission.NewSubmissionRepository(db),
		category.NewCategoryRepository(db),
		nil,
	)
	return service, db
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:        uuid.New(),
		Email:     uuid.NewString() + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      string(domain.RoleUser),
	}
	u.PasswordHash = "x"
	require.NoError(t, db.Create(u).Error)
	return u
}

func basicRecipeRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:        "Shakshuka",
		Description:  "Eggs poached in tomato sauce",
		Instructions: "Simmer sauce, crack eggs, cover.",
		Servings:     2,
		Difficulty:   domain.DifficultyEasy,
		Ingredients: []domain.IngredientRequest{
			{Name: "Eggs", Quantity: "4"},
			{Name: "Tomatoes", Quantity: "400g"},
			{Name: "Paprika", Quantity: "1 tsp"},
		},
	}
}

func TestCreateRecipePreservesIngredientOrder(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	res, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	require.Len(t, res.Ingredients, 3)
	assert.Equal(t, "Eggs", res.Ingredients[0].Name)
	assert.Equal(t, "Tomatoes", res.Ingredients[1].Name)
	assert.Equal(t, "Paprika", res.Ingredients[2].Name)
	for i, ingredient := range res.Ingredients {
		assert.Equal(t, i+1, ingredient.Position)
	}
	assert.True(t, res.IsOwner)
	assert.False(t, res.IsFeatured)
}

func TestCreateRecipeInvalidDifficulty(t *testing.T) {
	service, db := newTestService(t)
	owner := seedUser(t, db)

	req := basicRecipeRequest()
	req.Difficulty = "impossible"

	_, err := service.CreateRecipe(context.Background(), req, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestGetRecipeDetailOwnerOnly(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	_, err = service.GetRecipeDetail(ctx, created.ID, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	_, err = service.GetRecipeDetail(ctx, uuid.NewString(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title:        "Shakshuka deluxe",
		Instructions: "Same, but with feta.",
		Ingredients: []domain.IngredientRequest{
			{Name: "Eggs", Quantity: "4"},
			{Name: "Feta", Quantity: "100g"},
		},
	}, owner.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Shakshuka deluxe", updated.Title)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "Feta", updated.Ingredients[1].Name)

	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).
		Where("recipe_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpdateRecipeGuards(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Title:        "New title",
		Instructions: "New instructions",
		Ingredients:  []domain.IngredientRequest{{Name: "Salt", Quantity: "1 tsp"}},
	}

	_, err = service.UpdateRecipe(ctx, created.ID, update, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	// an active submission freezes the recipe
	sub := entities.RecipeSubmission{
		ID:          uuid.New(),
		RecipeID:    uuid.MustParse(created.ID),
		SubmittedBy: owner.ID,
		Status:      domain.SubmissionStatusPending,
		SubmittedAt: time.Now(),
	}
	require.NoError(t, db.Create(&sub).Error)

	_, err = service.UpdateRecipe(ctx, created.ID, update, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrEditForbidden)

	// so does being featured, even with no active submission
	require.NoError(t, db.Delete(&sub).Error)
	now := time.Now()
	require.NoError(t, db.Model(&entities.Recipe{}).
		Where("id = ?", created.ID).
		Updates(map[string]interface{}{"is_featured": true, "featured_at": now}).Error)

	_, err = service.UpdateRecipe(ctx, created.ID, update, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrEditForbidden)
}

func TestCopyRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	copier := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	clone, err := service.CopyRecipe(ctx, created.ID, copier.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Shakshuka (Copy)", clone.Title)
	assert.Equal(t, created.ID, clone.OriginalRecipeID)
	assert.Equal(t, copier.ID.String(), clone.OwnerID)
	assert.False(t, clone.IsFeatured)
	require.Len(t, clone.Ingredients, 3)
	assert.Equal(t, "Eggs", clone.Ingredients[0].Name)
	assert.Equal(t, "Paprika", clone.Ingredients[2].Name)

	// the source is untouched
	source, err := service.GetRecipeDetail(ctx, created.ID, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", source.Title)
}

func TestDeleteRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	assert.ErrorIs(t,
		service.DeleteRecipe(ctx, created.ID, stranger.ID.String()),
		domain.ErrUnauthorizedRecipeAccess)

	require.NoError(t, service.DeleteRecipe(ctx, created.ID, owner.ID.String()))

	_, err = service.GetRecipeDetail(ctx, created.ID, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

type stubStorage struct {
	uploads int
}

func (s *stubStorage) UploadFile(ctx context.Context, file *multipart.FileHeader, key string) (string, error) {
	s.uploads++
	return "https://example.com/" + key, nil
}

func TestUploadRecipeImageReadOnlyGuard(t *testing.T) {
	db := setupTestDB(t)
	store := &stubStorage{}
	service := NewRecipeService(
		NewRecipeRepository(db),
		submission.NewSubmissionRepository(db),
		category.NewCategoryRepository(db),
		store,
	)
	ctx := context.Background()
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	created, err := service.CreateRecipe(ctx, basicRecipeRequest(), owner.ID.String())
	require.NoError(t, err)

	upload := domain.UploadRecipeImageRequest{
		RecipeID: created.ID,
		Image:    &multipart.FileHeader{Filename: "dish.png"},
	}

	_, err = service.UploadRecipeImage(ctx, upload, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	url, err := service.UploadRecipeImage(ctx, upload, owner.ID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, 1, store.uploads)

	// an active submission freezes the image along with the rest of the recipe
	sub := entities.RecipeSubmission{
		ID:          uuid.New(),
		RecipeID:    uuid.MustParse(created.ID),
		SubmittedBy: owner.ID,
		Status:      domain.SubmissionStatusPending,
		SubmittedAt: time.Now(),
	}
	require.NoError(t, db.Create(&sub).Error)

	_, err = service.UploadRecipeImage(ctx, upload, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrEditForbidden)

	// so does being featured
	require.NoError(t, db.Delete(&sub).Error)
	now := time.Now()
	require.NoError(t, db.Model(&entities.Recipe{}).
		Where("id = ?", created.ID).
		Updates(map[string]interface{}{"is_featured": true, "featured_at": now}).Error)

	_, err = service.UploadRecipeImage(ctx, upload, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrEditForbidden)

	// nothing reached storage and the stored URL is unchanged
	assert.Equal(t, 1, store.uploads)
	var stored entities.Recipe
	require.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	assert.Equal(t, url, stored.ImageURL)
}

func TestGetMyRecipesSearch(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	owner := seedUser(t, db)
	other := seedUser(t, db)

	first := basicRecipeRequest()
	_, err := service.CreateRecipe(ctx, first, owner.ID.String())
	require.NoError(t, err)

	second := basicRecipeRequest()
	second.Title = "Lentil soup"
	_, err = service.CreateRecipe(ctx, second, owner.ID.String())
	require.NoError(t, err)

	_, err = service.CreateRecipe(ctx, basicRecipeRequest(), other.ID.String())
	require.NoError(t, err)

	all, err := service.GetMyRecipes(ctx, owner.ID.String(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := service.GetMyRecipes(ctx, owner.ID.String(), "LENTIL")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Lentil soup", matched[0].Title)
}
