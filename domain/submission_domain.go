package domain

import (
	"errors"
	"time"
)

// Submission lifecycle. Pending and under_review are the active states;
// approved and rejected are terminal.
const (
	SubmissionStatusPending     = "pending"
	SubmissionStatusUnderReview = "under_review"
	SubmissionStatusApproved    = "approved"
	SubmissionStatusRejected    = "rejected"
)

var (
	MessageSuccessSubmitRecipe      = "recipe submitted for review"
	MessageSuccessGetSubmissions    = "success get submissions"
	MessageSuccessApproveSubmission = "recipe approved and added to featured recipes"
	MessageSuccessRejectSubmission  = "recipe rejected, the owner has been notified"

	MessageFailedSubmitRecipe      = "failed to submit recipe for review"
	MessageFailedGetSubmissions    = "failed to get submissions"
	MessageFailedApproveSubmission = "failed to approve submission"
	MessageFailedRejectSubmission  = "failed to reject submission"

	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrDuplicateSubmission  = errors.New("recipe is already submitted for review")
	ErrMissingReason        = errors.New("a reason is required to reject a submission")
	ErrNotRecipeOwner       = errors.New("you can only submit your own recipes")
)

type (
	ReviewRequest struct {
		Notes string `json:"notes"`
	}

	SubmissionResponse struct {
		ID          string     `json:"id"`
		RecipeID    string     `json:"recipe_id"`
		Status      string     `json:"status"`
		SubmittedAt time.Time  `json:"submitted_at"`
		ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
		ReviewNotes string     `json:"review_notes,omitempty"`

		RecipeTitle       string `json:"recipe_title"`
		RecipeDescription string `json:"recipe_description,omitempty"`
		RecipeDifficulty  string `json:"recipe_difficulty,omitempty"`
		RecipeImageURL    string `json:"recipe_image_url,omitempty"`

		SubmitterName  string `json:"submitter_name,omitempty"`
		SubmitterEmail string `json:"submitter_email,omitempty"`
		ReviewerName   string `json:"reviewer_name,omitempty"`
	}

	SubmissionDetailResponse struct {
		SubmissionResponse
		RecipeInstructions    string               `json:"recipe_instructions"`
		RecipePrepTimeMinutes int                  `json:"recipe_prep_time_minutes"`
		RecipeCookTimeMinutes int                  `json:"recipe_cook_time_minutes"`
		RecipeServings        int                  `json:"recipe_servings"`
		RecipeOwnerID         string               `json:"recipe_owner_id"`
		Ingredients           []IngredientResponse `json:"ingredients"`
	}
)
