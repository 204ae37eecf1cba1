package domain

import "errors"

var (
	MessageSuccessGetFeatured     = "success get featured recipes"
	MessageSuccessUnfeatureRecipe = "recipe removed from featured list"

	MessageFailedGetFeatured     = "failed to get featured recipes"
	MessageFailedUnfeatureRecipe = "failed to remove featured status"

	ErrFeaturedNotFound = errors.New("featured recipe not found")
	ErrAlreadyOwned     = errors.New("you already own this recipe")
)

type FeaturedRecipeResponse struct {
	RecipeResponse
	OwnerName string `json:"owner_name"`
}
