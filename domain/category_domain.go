package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessCreateCategory  = "category created successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("a category with this name already exists")
)

type (
	CategoryRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description"`
	}

	CategoryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		RecipeCount int64     `json:"recipe_count,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
