package category

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipebox/domain"
	"recipebox/entities"
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

func TestCreateCategory(t *testing.T) {
	service := NewCategoryService(NewCategoryRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateCategory(ctx, domain.CategoryRequest{
		Name:        "  Desserts ",
		Description: "Sweet things",
	})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", res.Name)

	_, err = service.CreateCategory(ctx, domain.CategoryRequest{Name: "Desserts"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestUpdateCategory(t *testing.T) {
	service := NewCategoryService(NewCategoryRepository(setupTestDB(t)))
	ctx := context.Background()

	desserts, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Desserts"})
	require.NoError(t, err)
	soups, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Soups"})
	require.NoError(t, err)

	// renaming onto another category's name is rejected
	_, err = service.UpdateCategory(ctx, soups.ID, domain.CategoryRequest{Name: "Desserts"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	// keeping your own name is fine
	updated, err := service.UpdateCategory(ctx, desserts.ID, domain.CategoryRequest{
		Name:        "Desserts",
		Description: "Now with a description",
	})
	require.NoError(t, err)
	assert.Equal(t, "Now with a description", updated.Description)

	_, err = service.UpdateCategory(ctx, uuid.NewString(), domain.CategoryRequest{Name: "Breakfast"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategory(t *testing.T) {
	service := NewCategoryService(NewCategoryRepository(setupTestDB(t)))
	ctx := context.Background()

	res, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: "Starters"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCategory(ctx, res.ID))
	assert.ErrorIs(t, service.DeleteCategory(ctx, res.ID), domain.ErrCategoryNotFound)

	_, err = service.GetCategory(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestGetCategoriesSorted(t *testing.T) {
	service := NewCategoryService(NewCategoryRepository(setupTestDB(t)))
	ctx := context.Background()

	for _, name := range []string{"Soups", "Breakfast", "Mains"} {
		_, err := service.CreateCategory(ctx, domain.CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := service.GetCategories(ctx, false)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Breakfast", categories[0].Name)
	assert.Equal(t, "Mains", categories[1].Name)
	assert.Equal(t, "Soups", categories[2].Name)
}
