package featured

import (
	"context"

	"gorm.io/gorm"

	"recipebox/entities"
)

type (
	FeaturedRepository interface {
		GetFeaturedRecipes(ctx context.Context, search string) ([]*entities.Recipe, error)
		GetFeaturedByCategory(ctx context.Context, categoryID string) ([]*entities.Recipe, error)
		GetFeaturedByID(ctx context.Context, recipeID string) (*entities.Recipe, error)
		UnfeatureRecipe(ctx context.Context, recipeID string) error
	}

	featuredRepository struct {
		db *gorm.DB
	}
)

func NewFeaturedRepository(db *gorm.DB) FeaturedRepository {
	return &featuredRepository{db: db}
}

func (r *featuredRepository) GetFeaturedRecipes(ctx context.Context, search string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Preload("User").
		Where("is_featured = ?", true)
	if search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.
		Order("featured_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *featuredRepository) GetFeaturedByCategory(ctx context.Context, categoryID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN recipe_categories ON recipes.id = recipe_categories.recipe_id").
		Where("recipes.is_featured = ? AND recipe_categories.category_id = ?", true, categoryID).
		Order("recipes.featured_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *featuredRepository) GetFeaturedByID(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.position asc")
		}).
		Preload("Categories").
		Where("id = ? AND is_featured = ?", recipeID, true).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UnfeatureRecipe clears the featured flag and timestamp. A recipe that is
// not currently featured is reported as not found.
func (r *featuredRepository) UnfeatureRecipe(ctx context.Context, recipeID string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND is_featured = ?", recipeID, true).
		Updates(map[string]interface{}{
			"is_featured": false,
			"featured_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
