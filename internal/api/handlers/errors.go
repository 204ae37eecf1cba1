package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"recipebox/domain"
	"recipebox/internal/api/presenters"
)

// errorStatus maps service errors to HTTP status codes. Anything
// unrecognized is a storage or driver failure and maps to 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrSubmissionNotFound),
		errors.Is(err, domain.ErrFeaturedNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrEditForbidden),
		errors.Is(err, domain.ErrCannotChangeOwnRole):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrDuplicateSubmission),
		errors.Is(err, domain.ErrAlreadyOwned):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrMissingReason):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError renders a service failure. Domain errors are safe to echo
// back; anything else is logged and answered with the generic message only.
func serviceError(c *fiber.Ctx, message string, err error) error {
	code := errorStatus(err)
	if code == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
		return presenters.ErrorResponse(c, code, message, nil)
	}
	return presenters.ErrorResponse(c, code, message, err)
}
