package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessCopyRecipe      = "recipe copied to your collection"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedCopyRecipe      = "failed to copy recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidDifficulty        = errors.New("difficulty must be easy, medium or hard")
	ErrEditForbidden            = errors.New("recipe cannot be edited while featured or under review")
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title           string              `json:"title" validate:"required,max=200"`
		Description     string              `json:"description"`
		Instructions    string              `json:"instructions" validate:"required"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                 `json:"servings" validate:"omitempty,min=1"`
		Difficulty      string              `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		CategoryIDs     []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
	}

	UpdateRecipeRequest struct {
		Title           string              `json:"title" validate:"required,max=200"`
		Description     string              `json:"description"`
		Instructions    string              `json:"instructions" validate:"required"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                 `json:"servings" validate:"omitempty,min=1"`
		Difficulty      string              `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		CategoryIDs     []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	IngredientResponse struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Position int    `json:"position"`
	}

	RecipeResponse struct {
		ID               string     `json:"id"`
		Title            string     `json:"title"`
		Description      string     `json:"description"`
		PrepTimeMinutes  int        `json:"prep_time_minutes"`
		CookTimeMinutes  int        `json:"cook_time_minutes"`
		Servings         int        `json:"servings"`
		Difficulty       string     `json:"difficulty"`
		ImageURL         string     `json:"image_url,omitempty"`
		IsFeatured       bool       `json:"is_featured"`
		FeaturedAt       *time.Time `json:"featured_at,omitempty"`
		OriginalRecipeID string     `json:"original_recipe_id,omitempty"`
		CreatedAt        time.Time  `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Instructions string               `json:"instructions"`
		OwnerID      string               `json:"owner_id"`
		OwnerName    string               `json:"owner_name,omitempty"`
		Ingredients  []IngredientResponse `json:"ingredients"`
		Categories   []CategoryResponse   `json:"categories"`
		IsOwner      bool                 `json:"is_owner"`
	}
)
