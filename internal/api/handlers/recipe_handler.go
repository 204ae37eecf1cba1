package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/recipe"
	"recipebox/pkg/submission"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		SubmitRecipe(c *fiber.Ctx) error
		GetMySubmissions(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService     recipe.RecipeService
		submissionService submission.SubmissionService
		validator         *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	submissionService submission.SubmissionService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:     recipeService,
		submissionService: submissionService,
		validator:         validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	search := c.Query("search")

	res, err := h.recipeService.GetMyRecipes(c.Context(), userID, search)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("id"), userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return serviceError(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) SubmitRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.submissionService.Submit(c.Context(), c.Params("id"), userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedSubmitRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRecipe)
}

func (h *recipeHandler) GetMySubmissions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.submissionService.GetUserSubmissions(c.Context(), userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadRecipeImageRequest{
		RecipeID: c.Params("id"),
		Image:    image,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	url, err := h.recipeService.UploadRecipeImage(c.Context(), req, userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
