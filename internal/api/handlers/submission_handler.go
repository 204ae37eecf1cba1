package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
	"recipebox/pkg/submission"
)

type (
	SubmissionHandler interface {
		GetPendingSubmissions(c *fiber.Ctx) error
		OpenForReview(c *fiber.Ctx) error
		Approve(c *fiber.Ctx) error
		Reject(c *fiber.Ctx) error
	}

	submissionHandler struct {
		submissionService submission.SubmissionService
		validator         *validator.Validate
	}
)

func NewSubmissionHandler(submissionService submission.SubmissionService, validator *validator.Validate) SubmissionHandler {
	return &submissionHandler{
		submissionService: submissionService,
		validator:         validator,
	}
}

func (h *submissionHandler) GetPendingSubmissions(c *fiber.Ctx) error {
	res, err := h.submissionService.GetPendingSubmissions(c.Context())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) OpenForReview(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)

	res, err := h.submissionService.OpenForReview(c.Context(), c.Params("id"), reviewerID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetSubmissions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubmissions)
}

func (h *submissionHandler) Approve(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	req := new(domain.ReviewRequest)

	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.submissionService.Approve(c.Context(), c.Params("id"), reviewerID, req.Notes)
	if err != nil {
		return serviceError(c, domain.MessageFailedApproveSubmission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveSubmission)
}

func (h *submissionHandler) Reject(c *fiber.Ctx) error {
	reviewerID := c.Locals("user_id").(string)
	req := new(domain.ReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.submissionService.Reject(c.Context(), c.Params("id"), reviewerID, req.Notes)
	if err != nil {
		return serviceError(c, domain.MessageFailedRejectSubmission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRejectSubmission)
}
