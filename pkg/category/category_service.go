package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context, withCount bool) ([]domain.CategoryResponse, error)
		GetCategory(ctx context.Context, categoryID string) (domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, categoryID string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context, withCount bool) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		item := toCategoryResponse(c)
		if withCount {
			count, err := s.categoryRepository.CountRecipes(ctx, c.ID.String())
			if err == nil {
				item.RecipeCount = count
			}
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (domain.CategoryResponse, error) {
	found, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(found), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	if _, err := s.categoryRepository.GetCategoryByName(ctx, name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	newCategory := entities.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.categoryRepository.CreateCategory(ctx, &newCategory); err != nil {
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(&newCategory), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	found, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if existing, err := s.categoryRepository.GetCategoryByName(ctx, name); err == nil && existing.ID != found.ID {
		return domain.CategoryResponse{}, domain.ErrCategoryNameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	found.Name = name
	found.Description = strings.TrimSpace(req.Description)
	if err := s.categoryRepository.UpdateCategory(ctx, found); err != nil {
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(found), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepository.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func toCategoryResponse(c *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
