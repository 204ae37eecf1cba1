package recipe

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipesByOwner(ctx context.Context, userID string, search string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient) error
		DeleteRecipe(ctx context.Context, id string) error
		UserOwnsRecipe(ctx context.Context, userID, recipeID string) (bool, error)
		CopyRecipe(ctx context.Context, recipeID, newOwnerID string) (*entities.Recipe, error)
		SetImageURL(ctx context.Context, recipeID, imageURL string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe inserts the recipe together with its ingredients and category
// links. GORM runs the association inserts inside one transaction, so a
// failing ingredient insert rolls the recipe back too.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.position asc")
		}).
		Preload("Categories").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByOwner(ctx context.Context, userID string, search string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe saves the recipe fields and replaces its ingredient list in a
// single transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"title":             recipe.Title,
				"description":       recipe.Description,
				"instructions":      recipe.Instructions,
				"prep_time_minutes": recipe.PrepTimeMinutes,
				"cook_time_minutes": recipe.CookTimeMinutes,
				"servings":          recipe.Servings,
				"difficulty":        recipe.Difficulty,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}

		for _, ingredient := range ingredients {
			if err := tx.Create(ingredient).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) UserOwnsRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CopyRecipe clones a recipe and its ingredients under a new owner. The clone
// records its source through original_recipe_id and keeps ingredient order.
// Any failure rolls the whole clone back.
func (r *recipeRepository) CopyRecipe(ctx context.Context, recipeID, newOwnerID string) (*entities.Recipe, error) {
	ownerUUID, err := uuid.Parse(newOwnerID)
	if err != nil {
		return nil, err
	}

	var clone entities.Recipe

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source entities.Recipe
		if err := tx.
			Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
				return db.Order("ingredients.position asc")
			}).
			Where("id = ?", recipeID).
			First(&source).Error; err != nil {
			return err
		}

		sourceID := source.ID
		clone = entities.Recipe{
			ID:               uuid.New(),
			UserID:           ownerUUID,
			Title:            source.Title + " (Copy)",
			Description:      source.Description,
			Instructions:     source.Instructions,
			PrepTimeMinutes:  source.PrepTimeMinutes,
			CookTimeMinutes:  source.CookTimeMinutes,
			Servings:         source.Servings,
			Difficulty:       source.Difficulty,
			ImageURL:         source.ImageURL,
			OriginalRecipeID: &sourceID,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		for _, ingredient := range source.Ingredients {
			copied := entities.Ingredient{
				ID:       uuid.New(),
				RecipeID: clone.ID,
				Name:     ingredient.Name,
				Quantity: ingredient.Quantity,
				Position: ingredient.Position,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *recipeRepository) SetImageURL(ctx context.Context, recipeID, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Update("image_url", imageURL).Error
}
