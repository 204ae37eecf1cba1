package category

import (
	"context"

	"gorm.io/gorm"

	"recipebox/entities"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoriesByIDs(ctx context.Context, ids []string) ([]*entities.Category, error)
		CountRecipes(ctx context.Context, categoryID string) (int64, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error
		ReplaceRecipeCategories(ctx context.Context, recipe *entities.Recipe, categories []*entities.Category) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, ids []string) ([]*entities.Category, error) {
	var categories []*entities.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountRecipes(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("recipe_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) ReplaceRecipeCategories(ctx context.Context, recipe *entities.Recipe, categories []*entities.Category) error {
	return r.db.WithContext(ctx).
		Model(recipe).
		Association("Categories").
		Replace(categories)
}
