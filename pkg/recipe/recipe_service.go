package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/storage"
	"recipebox/pkg/category"
	"recipebox/pkg/submission"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetMyRecipes(ctx context.Context, userID string, search string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, recipeID, userID string) error
		CopyRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		submissionRepository submission.SubmissionRepository
		categoryRepository   category.CategoryRepository
		storage              storage.Storage
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	submissionRepository submission.SubmissionRepository,
	categoryRepository category.CategoryRepository,
	s3 storage.Storage,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		submissionRepository: submissionRepository,
		categoryRepository:   categoryRepository,
		storage:              s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}
	if req.Difficulty != "" && !validDifficulty(req.Difficulty) {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidDifficulty
	}

	categories, err := s.categoryRepository.GetCategoriesByIDs(ctx, req.CategoryIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	newRecipe := entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
		Categories:      categories,
	}
	for i, ingredient := range req.Ingredients {
		newRecipe.Ingredients = append(newRecipe.Ingredients, &entities.Ingredient{
			ID:       uuid.New(),
			RecipeID: newRecipe.ID,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Position: i + 1,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &newRecipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.GetRecipeDetail(ctx, newRecipe.ID.String(), userID)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string, search string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByOwner(ctx, userID, search)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error) {
	found, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if found.UserID.String() != userID {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	return toRecipeDetailResponse(found, userID), nil
}

// UpdateRecipe enforces its own guards: only the owner may edit, and a recipe
// that is featured or has an active submission is read-only.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	owns, err := s.recipeRepository.UserOwnsRecipe(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if !owns {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}
	if req.Difficulty != "" && !validDifficulty(req.Difficulty) {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidDifficulty
	}

	featured, err := s.submissionRepository.IsRecipeFeatured(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	submitted, err := s.submissionRepository.HasActiveSubmission(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if featured || submitted {
		return domain.RecipeDetailResponse{}, domain.ErrEditForbidden
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	updated := entities.Recipe{
		ID:              recipeUUID,
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
	}
	ingredients := make([]*entities.Ingredient, 0, len(req.Ingredients))
	for i, ingredient := range req.Ingredients {
		ingredients = append(ingredients, &entities.Ingredient{
			ID:       uuid.New(),
			RecipeID: recipeUUID,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Position: i + 1,
		})
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, &updated, ingredients); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if req.CategoryIDs != nil {
		categories, err := s.categoryRepository.GetCategoriesByIDs(ctx, req.CategoryIDs)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if err := s.categoryRepository.ReplaceRecipeCategories(ctx, &entities.Recipe{ID: recipeUUID}, categories); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID string) error {
	owns, err := s.recipeRepository.UserOwnsRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !owns {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) CopyRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeDetailResponse, error) {
	clone, err := s.recipeRepository.CopyRecipe(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	return s.GetRecipeDetail(ctx, clone.ID.String(), userID)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (string, error) {
	owns, err := s.recipeRepository.UserOwnsRecipe(ctx, userID, req.RecipeID)
	if err != nil {
		return "", err
	}
	if !owns {
		return "", domain.ErrUnauthorizedRecipeAccess
	}

	// The image is part of the recipe, so the read-only rules for featured
	// and mid-review recipes apply here too.
	featured, err := s.submissionRepository.IsRecipeFeatured(ctx, req.RecipeID)
	if err != nil {
		return "", err
	}
	submitted, err := s.submissionRepository.HasActiveSubmission(ctx, req.RecipeID)
	if err != nil {
		return "", err
	}
	if featured || submitted {
		return "", domain.ErrEditForbidden
	}

	key := fmt.Sprintf("recipes/%s/%s", req.RecipeID, req.Image.Filename)
	url, err := s.storage.UploadFile(ctx, req.Image, key)
	if err != nil {
		return "", err
	}

	if err := s.recipeRepository.SetImageURL(ctx, req.RecipeID, url); err != nil {
		return "", err
	}
	return url, nil
}

func validDifficulty(difficulty string) bool {
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		return true
	}
	return false
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
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
	}
	if r.OriginalRecipeID != nil {
		res.OriginalRecipeID = r.OriginalRecipeID.String()
	}
	return res
}

func toRecipeDetailResponse(r *entities.Recipe, viewerID string) domain.RecipeDetailResponse {
	res := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(r),
		Instructions:   r.Instructions,
		OwnerID:        r.UserID.String(),
		IsOwner:        r.UserID.String() == viewerID,
	}
	if r.User != nil {
		res.OwnerName = r.User.FirstName + " " + r.User.LastName
	}

	res.Ingredients = make([]domain.IngredientResponse, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Position: ingredient.Position,
		})
	}

	res.Categories = make([]domain.CategoryResponse, 0, len(r.Categories))
	for _, c := range r.Categories {
		res.Categories = append(res.Categories, domain.CategoryResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
		})
	}
	return res
}
