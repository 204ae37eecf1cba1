package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/category"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetCategory(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	withCount := c.QueryBool("with_count")

	res, err := h.categoryService.GetCategories(c.Context(), withCount)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategory(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategory(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.categoryService.UpdateCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return serviceError(c, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
