package featured

import (
	"context"
	"fmt"
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
	"recipebox/pkg/recipe"
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

func newTestService(t *testing.T) (FeaturedService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	service := NewFeaturedService(NewFeaturedRepository(db), recipe.NewRecipeRepository(db))
	return service, db
}

func seedUser(t *testing.T, db *gorm.DB, role domain.Role) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         string(role),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRecipe(t *testing.T, db *gorm.DB, owner *entities.User, title string, feature bool) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       owner.ID,
		Title:        title,
		Instructions: "Cook it.",
		Difficulty:   domain.DifficultyMedium,
		Ingredients: []*entities.Ingredient{
			{ID: uuid.New(), Name: "Flour", Quantity: "200g", Position: 1},
			{ID: uuid.New(), Name: "Water", Quantity: "120ml", Position: 2},
		},
	}
	if feature {
		now := time.Now()
		r.IsFeatured = true
		r.FeaturedAt = &now
	}
	for _, ing := range r.Ingredients {
		ing.RecipeID = r.ID
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestGetFeaturedRecipesOnlyFeatured(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	seedRecipe(t, db, owner, "Flatbread", true)
	seedRecipe(t, db, owner, "Draft recipe", false)

	res, err := service.GetFeaturedRecipes(ctx, "")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Flatbread", res[0].Title)
	assert.Equal(t, "Test User", res[0].OwnerName)

	matched, err := service.GetFeaturedRecipes(ctx, "flat")
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	none, err := service.GetFeaturedRecipes(ctx, "draft")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetFeaturedByCategory(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	breakfast := &entities.Category{ID: uuid.New(), Name: "Breakfast"}
	require.NoError(t, db.Create(breakfast).Error)

	inCategory := seedRecipe(t, db, owner, "Shakshuka", true)
	otherFeatured := seedRecipe(t, db, owner, "Flatbread", true)
	draftInCategory := seedRecipe(t, db, owner, "Draft omelette", false)

	require.NoError(t, db.Model(inCategory).Association("Categories").Append(breakfast))
	require.NoError(t, db.Model(draftInCategory).Association("Categories").Append(breakfast))

	res, err := service.GetFeaturedByCategory(ctx, breakfast.ID.String())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, inCategory.ID.String(), res[0].ID)
	assert.Equal(t, "Shakshuka", res[0].Title)

	// a featured recipe outside the category stays out of the result
	for _, r := range res {
		assert.NotEqual(t, otherFeatured.ID.String(), r.ID)
	}

	empty, err := service.GetFeaturedByCategory(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetFeaturedDetail(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	featured := seedRecipe(t, db, owner, "Flatbread", true)
	draft := seedRecipe(t, db, owner, "Draft recipe", false)

	res, err := service.GetFeaturedDetail(ctx, featured.ID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, "Flatbread", res.Title)
	assert.False(t, res.IsOwner)
	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, "Flour", res.Ingredients[0].Name)

	asOwner, err := service.GetFeaturedDetail(ctx, featured.ID.String(), owner.ID.String())
	require.NoError(t, err)
	assert.True(t, asOwner.IsOwner)

	// unfeatured recipes are invisible here
	_, err = service.GetFeaturedDetail(ctx, draft.ID.String(), "")
	assert.ErrorIs(t, err, domain.ErrFeaturedNotFound)
}

func TestCopyFeaturedRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	copier := seedUser(t, db, domain.RoleUser)
	featured := seedRecipe(t, db, owner, "Flatbread", true)

	_, err := service.CopyFeaturedRecipe(ctx, featured.ID.String(), owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	clone, err := service.CopyFeaturedRecipe(ctx, featured.ID.String(), copier.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Flatbread (Copy)", clone.Title)
	assert.Equal(t, featured.ID.String(), clone.OriginalRecipeID)
	assert.Equal(t, copier.ID.String(), clone.OwnerID)
	assert.False(t, clone.IsFeatured)
	require.Len(t, clone.Ingredients, 2)
}

func TestUnfeatureRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	featured := seedRecipe(t, db, owner, "Flatbread", true)

	require.NoError(t, service.UnfeatureRecipe(ctx, featured.ID.String()))

	var stored entities.Recipe
	require.NoError(t, db.Where("id = ?", featured.ID).First(&stored).Error)
	assert.False(t, stored.IsFeatured)
	assert.Nil(t, stored.FeaturedAt)

	// already unfeatured
	assert.ErrorIs(t, service.UnfeatureRecipe(ctx, featured.ID.String()), domain.ErrFeaturedNotFound)
}

func TestDeleteFeaturedRecipeAuthorization(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	owner := seedUser(t, db, domain.RoleUser)
	stranger := seedUser(t, db, domain.RoleUser)
	contributor := seedUser(t, db, domain.RoleContributor)

	first := seedRecipe(t, db, owner, "Flatbread", true)
	second := seedRecipe(t, db, owner, "Soup", true)

	// a plain user who does not own the recipe is refused
	err := service.DeleteFeaturedRecipe(ctx, first.ID.String(), stranger.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	// the owner may delete their own featured recipe
	require.NoError(t, service.DeleteFeaturedRecipe(ctx, first.ID.String(), owner.ID.String(), domain.RoleUser))

	// a contributor may delete anyone's featured recipe
	require.NoError(t, service.DeleteFeaturedRecipe(ctx, second.ID.String(), contributor.ID.String(), domain.RoleContributor))

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
