package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/featured"
)

type (
	FeaturedHandler interface {
		GetFeaturedRecipes(c *fiber.Ctx) error
		GetFeaturedDetail(c *fiber.Ctx) error
		CopyFeaturedRecipe(c *fiber.Ctx) error
		UnfeatureRecipe(c *fiber.Ctx) error
		DeleteFeaturedRecipe(c *fiber.Ctx) error
	}

	featuredHandler struct {
		featuredService featured.FeaturedService
	}
)

func NewFeaturedHandler(featuredService featured.FeaturedService) FeaturedHandler {
	return &featuredHandler{
		featuredService: featuredService,
	}
}

func (h *featuredHandler) GetFeaturedRecipes(c *fiber.Ctx) error {
	var (
		res []domain.FeaturedRecipeResponse
		err error
	)

	if categoryID := c.Query("category_id"); categoryID != "" {
		res, err = h.featuredService.GetFeaturedByCategory(c.Context(), categoryID)
	} else {
		res, err = h.featuredService.GetFeaturedRecipes(c.Context(), c.Query("search"))
	}
	if err != nil {
		return serviceError(c, domain.MessageFailedGetFeatured, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeatured)
}

func (h *featuredHandler) GetFeaturedDetail(c *fiber.Ctx) error {
	viewerID, _ := c.Locals("user_id").(string)

	res, err := h.featuredService.GetFeaturedDetail(c.Context(), c.Params("id"), viewerID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetFeatured, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeatured)
}

func (h *featuredHandler) CopyFeaturedRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.featuredService.CopyFeaturedRecipe(c.Context(), c.Params("id"), userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedCopyRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCopyRecipe)
}

func (h *featuredHandler) UnfeatureRecipe(c *fiber.Ctx) error {
	if err := h.featuredService.UnfeatureRecipe(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, domain.MessageFailedUnfeatureRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnfeatureRecipe)
}

func (h *featuredHandler) DeleteFeaturedRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	err := h.featuredService.DeleteFeaturedRecipe(c.Context(), c.Params("id"), userID, domain.Role(role))
	if err != nil {
		return serviceError(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
