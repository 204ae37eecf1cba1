package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/utils/mailing"
)

type (
	SubmissionService interface {
		Submit(ctx context.Context, recipeID, userID string) (domain.SubmissionResponse, error)
		GetPendingSubmissions(ctx context.Context) ([]domain.SubmissionResponse, error)
		GetUserSubmissions(ctx context.Context, userID string) ([]domain.SubmissionResponse, error)
		OpenForReview(ctx context.Context, submissionID, reviewerID string) (domain.SubmissionDetailResponse, error)
		Approve(ctx context.Context, submissionID, reviewerID, notes string) (domain.SubmissionResponse, error)
		Reject(ctx context.Context, submissionID, reviewerID, notes string) (domain.SubmissionResponse, error)
		IsSubmitted(ctx context.Context, recipeID string) (bool, error)
		IsFeatured(ctx context.Context, recipeID string) (bool, error)
	}

	submissionService struct {
		submissionRepository SubmissionRepository
		mailer               mailing.Mailer
	}
)

func NewSubmissionService(submissionRepository SubmissionRepository, mailer mailing.Mailer) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		mailer:               mailer,
	}
}

func (s *submissionService) Submit(ctx context.Context, recipeID, userID string) (domain.SubmissionResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.SubmissionResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmissionResponse{}, domain.ErrParseUUID
	}

	owns, err := s.submissionRepository.UserOwnsRecipe(ctx, userID, recipeID)
	if err != nil {
		return domain.SubmissionResponse{}, err
	}
	if !owns {
		return domain.SubmissionResponse{}, domain.ErrNotRecipeOwner
	}

	active, err := s.submissionRepository.HasActiveSubmission(ctx, recipeID)
	if err != nil {
		return domain.SubmissionResponse{}, err
	}
	if active {
		return domain.SubmissionResponse{}, domain.ErrDuplicateSubmission
	}

	newSubmission := entities.RecipeSubmission{
		ID:          uuid.New(),
		RecipeID:    recipeUUID,
		SubmittedBy: userUUID,
		Status:      domain.SubmissionStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.submissionRepository.CreateSubmission(ctx, &newSubmission); err != nil {
		// The partial unique index on active submissions closes the
		// check-then-insert race; a concurrent loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domain.SubmissionResponse{}, domain.ErrDuplicateSubmission
		}
		return domain.SubmissionResponse{}, err
	}

	return toSubmissionResponse(&newSubmission), nil
}

func (s *submissionService) GetPendingSubmissions(ctx context.Context) ([]domain.SubmissionResponse, error) {
	submissions, err := s.submissionRepository.GetPendingSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		res = append(res, toSubmissionResponse(sub))
	}
	return res, nil
}

func (s *submissionService) GetUserSubmissions(ctx context.Context, userID string) ([]domain.SubmissionResponse, error) {
	submissions, err := s.submissionRepository.GetSubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		res = append(res, toSubmissionResponse(sub))
	}
	return res, nil
}

// OpenForReview loads the full submission for the review page and, when the
// submission is still pending, transitions it to under_review for the calling
// reviewer. Re-opening an already-open or terminal submission just returns
// its current state.
func (s *submissionService) OpenForReview(ctx context.Context, submissionID, reviewerID string) (domain.SubmissionDetailResponse, error) {
	found, err := s.submissionRepository.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubmissionDetailResponse{}, domain.ErrSubmissionNotFound
		}
		return domain.SubmissionDetailResponse{}, err
	}

	if found.Status == domain.SubmissionStatusPending {
		if err := s.submissionRepository.MarkUnderReview(ctx, submissionID, reviewerID); err != nil {
			return domain.SubmissionDetailResponse{}, err
		}
		found.Status = domain.SubmissionStatusUnderReview
	}

	return toSubmissionDetailResponse(found), nil
}

func (s *submissionService) Approve(ctx context.Context, submissionID, reviewerID, notes string) (domain.SubmissionResponse, error) {
	approved, transitioned, err := s.submissionRepository.ApproveSubmission(ctx, submissionID, reviewerID, notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubmissionResponse{}, domain.ErrSubmissionNotFound
		}
		return domain.SubmissionResponse{}, err
	}

	// A terminal submission is a no-op; do not mail the owner again.
	if transitioned {
		s.notifyOwner(ctx, submissionID, "Your recipe has been featured!",
			"Congratulations, your recipe %q was approved and now appears in the featured gallery.")
	}

	return toSubmissionResponse(approved), nil
}

func (s *submissionService) Reject(ctx context.Context, submissionID, reviewerID, notes string) (domain.SubmissionResponse, error) {
	if strings.TrimSpace(notes) == "" {
		return domain.SubmissionResponse{}, domain.ErrMissingReason
	}

	rejected, transitioned, err := s.submissionRepository.RejectSubmission(ctx, submissionID, reviewerID, notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubmissionResponse{}, domain.ErrSubmissionNotFound
		}
		return domain.SubmissionResponse{}, err
	}

	if transitioned {
		s.notifyOwner(ctx, submissionID, "Your recipe submission was reviewed",
			"Your recipe %q was not selected for the featured gallery this time. See the review notes for details.")
	}

	return toSubmissionResponse(rejected), nil
}

func (s *submissionService) IsSubmitted(ctx context.Context, recipeID string) (bool, error) {
	return s.submissionRepository.HasActiveSubmission(ctx, recipeID)
}

func (s *submissionService) IsFeatured(ctx context.Context, recipeID string) (bool, error) {
	return s.submissionRepository.IsRecipeFeatured(ctx, recipeID)
}

// notifyOwner sends a best-effort decision mail to the recipe owner. Failures
// are logged, never surfaced: the review itself has already been committed.
func (s *submissionService) notifyOwner(ctx context.Context, submissionID, subject, bodyFormat string) {
	if s.mailer == nil {
		return
	}

	found, err := s.submissionRepository.GetSubmissionByID(ctx, submissionID)
	if err != nil || found.Recipe == nil || found.Recipe.User == nil {
		return
	}

	body := fmt.Sprintf(bodyFormat, found.Recipe.Title)
	if err := s.mailer.Send(found.Recipe.User.Email, subject, body); err != nil {
		log.Printf("error sending review notification: %v", err)
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func toSubmissionResponse(sub *entities.RecipeSubmission) domain.SubmissionResponse {
	res := domain.SubmissionResponse{
		ID:          sub.ID.String(),
		RecipeID:    sub.RecipeID.String(),
		Status:      sub.Status,
		SubmittedAt: sub.SubmittedAt,
		ReviewedAt:  sub.ReviewedAt,
		ReviewNotes: sub.ReviewNotes,
	}

	if sub.Recipe != nil {
		res.RecipeTitle = sub.Recipe.Title
		res.RecipeDescription = sub.Recipe.Description
		res.RecipeDifficulty = sub.Recipe.Difficulty
		res.RecipeImageURL = sub.Recipe.ImageURL
	}
	if sub.Submitter != nil {
		res.SubmitterName = sub.Submitter.FirstName + " " + sub.Submitter.LastName
		res.SubmitterEmail = sub.Submitter.Email
	}
	if sub.Reviewer != nil {
		res.ReviewerName = sub.Reviewer.FirstName + " " + sub.Reviewer.LastName
	}
	return res
}

func toSubmissionDetailResponse(sub *entities.RecipeSubmission) domain.SubmissionDetailResponse {
	res := domain.SubmissionDetailResponse{
		SubmissionResponse: toSubmissionResponse(sub),
	}

	if sub.Recipe != nil {
		res.RecipeInstructions = sub.Recipe.Instructions
		res.RecipePrepTimeMinutes = sub.Recipe.PrepTimeMinutes
		res.RecipeCookTimeMinutes = sub.Recipe.CookTimeMinutes
		res.RecipeServings = sub.Recipe.Servings
		res.RecipeOwnerID = sub.Recipe.UserID.String()

		res.Ingredients = make([]domain.IngredientResponse, 0, len(sub.Recipe.Ingredients))
		for _, ing := range sub.Recipe.Ingredients {
			res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Position: ing.Position,
			})
		}
	}
	return res
}
