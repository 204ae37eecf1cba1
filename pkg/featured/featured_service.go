package featured

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/recipe"
)

type (
	FeaturedService interface {
		GetFeaturedRecipes(ctx context.Context, search string) ([]domain.FeaturedRecipeResponse, error)
		GetFeaturedByCategory(ctx context.Context, categoryID string) ([]domain.FeaturedRecipeResponse, error)
		GetFeaturedDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeDetailResponse, error)
		CopyFeaturedRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error)
		UnfeatureRecipe(ctx context.Context, recipeID string) error
		DeleteFeaturedRecipe(ctx context.Context, recipeID, userID string, role domain.Role) error
	}

	featuredService struct {
		featuredRepository FeaturedRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFeaturedService(featuredRepository FeaturedRepository, recipeRepository recipe.RecipeRepository) FeaturedService {
	return &featuredService{
		featuredRepository: featuredRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *featuredService) GetFeaturedRecipes(ctx context.Context, search string) ([]domain.FeaturedRecipeResponse, error) {
	recipes, err := s.featuredRepository.GetFeaturedRecipes(ctx, search)
	if err != nil {
		return nil, err
	}
	return toFeaturedResponses(recipes), nil
}

func (s *featuredService) GetFeaturedByCategory(ctx context.Context, categoryID string) ([]domain.FeaturedRecipeResponse, error) {
	recipes, err := s.featuredRepository.GetFeaturedByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toFeaturedResponses(recipes), nil
}

func (s *featuredService) GetFeaturedDetail(ctx context.Context, recipeID, viewerID string) (domain.RecipeDetailResponse, error) {
	found, err := s.featuredRepository.GetFeaturedByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrFeaturedNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	res := domain.RecipeDetailResponse{
		RecipeResponse: domain.RecipeResponse{
			ID:              found.ID.String(),
			Title:           found.Title,
			Description:     found.Description,
			PrepTimeMinutes: found.PrepTimeMinutes,
			CookTimeMinutes: found.CookTimeMinutes,
			Servings:        found.Servings,
			Difficulty:      found.Difficulty,
			ImageURL:        found.ImageURL,
			IsFeatured:      found.IsFeatured,
			FeaturedAt:      found.FeaturedAt,
			CreatedAt:       found.CreatedAt,
		},
		Instructions: found.Instructions,
		OwnerID:      found.UserID.String(),
		IsOwner:      found.UserID.String() == viewerID,
	}
	if found.User != nil {
		res.OwnerName = found.User.FirstName + " " + found.User.LastName
	}

	res.Ingredients = make([]domain.IngredientResponse, 0, len(found.Ingredients))
	for _, ingredient := range found.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Position: ingredient.Position,
		})
	}

	res.Categories = make([]domain.CategoryResponse, 0, len(found.Categories))
	for _, c := range found.Categories {
		res.Categories = append(res.Categories, domain.CategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
		})
	}
	return res, nil
}

// CopyFeaturedRecipe clones a featured recipe into the caller's collection.
// Copying a recipe you already own is rejected.
func (s *featuredService) CopyFeaturedRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error) {
	found, err := s.featuredRepository.GetFeaturedByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrFeaturedNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	if found.UserID.String() == userID {
		return domain.RecipeDetailResponse{}, domain.ErrAlreadyOwned
	}

	clone, err := s.recipeRepository.CopyRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	full, err := s.recipeRepository.GetRecipeByID(ctx, clone.ID.String())
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toCloneDetail(full, userID), nil
}

func (s *featuredService) UnfeatureRecipe(ctx context.Context, recipeID string) error {
	if err := s.featuredRepository.UnfeatureRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFeaturedNotFound
		}
		return err
	}
	return nil
}

// DeleteFeaturedRecipe allows the recipe owner OR any contributor/admin to
// delete a featured recipe. This is deliberately wider than plain recipe
// deletion, which is owner-only.
func (s *featuredService) DeleteFeaturedRecipe(ctx context.Context, recipeID, userID string, role domain.Role) error {
	found, err := s.featuredRepository.GetFeaturedByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFeaturedNotFound
		}
		return err
	}

	canDelete := found.UserID.String() == userID || role.AtLeast(domain.RoleContributor)
	if !canDelete {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func toFeaturedResponses(recipes []*entities.Recipe) []domain.FeaturedRecipeResponse {
	res := make([]domain.FeaturedRecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		item := domain.FeaturedRecipeResponse{
			RecipeResponse: domain.RecipeResponse{
				ID:              r.ID.String(),
				Title:           r.Title,
				Description:     r.Description,
				PrepTimeMinutes: r.PrepTimeMinutes,
				CookTimeMinutes: r.CookTimeMinutes,
				Servings:        r.Servings,
				Difficulty:      r.Difficulty,
				ImageURL:        r.ImageURL,
				IsFeatured:      r.IsFeatured,
				FeaturedAt:      r.FeaturedAt,
				CreatedAt:       r.CreatedAt,
			},
		}
		if r.User != nil {
			item.OwnerName = r.User.FirstName + " " + r.User.LastName
		}
		res = append(res, item)
	}
	return res
}

func toCloneDetail(r *entities.Recipe, viewerID string) domain.RecipeDetailResponse {
	res := domain.RecipeDetailResponse{
		RecipeResponse: domain.RecipeResponse{
			ID:              r.ID.String(),
			Title:           r.Title,
			Description:     r.Description,
			PrepTimeMinutes: r.PrepTimeMinutes,
			CookTimeMinutes: r.CookTimeMinutes,
			Servings:        r.Servings,
			Difficulty:      r.Difficulty,
			ImageURL:        r.ImageURL,
			IsFeatured:      r.IsFeatured,
			FeaturedAt:      r.FeaturedAt,
			CreatedAt:       r.CreatedAt,
		},
		Instructions: r.Instructions,
		OwnerID:      r.UserID.String(),
		IsOwner:      r.UserID.String() == viewerID,
	}
	if r.OriginalRecipeID != nil {
		res.OriginalRecipeID = r.OriginalRecipeID.String()
	}

	res.Ingredients = make([]domain.IngredientResponse, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Position: ingredient.Position,
		})
	}
	return res
}
