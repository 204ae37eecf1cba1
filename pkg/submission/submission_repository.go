package submission

import (
	"context"
	"time"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	SubmissionRepository interface {
		CreateSubmission(ctx context.Context, submission *entities.RecipeSubmission) error
		GetSubmissionByID(ctx context.Context, id string) (*entities.RecipeSubmission, error)
		GetPendingSubmissions(ctx context.Context) ([]*entities.RecipeSubmission, error)
		GetSubmissionsByUser(ctx context.Context, userID string) ([]*entities.RecipeSubmission, error)
		MarkUnderReview(ctx context.Context, submissionID, reviewerID string) error
		ApproveSubmission(ctx context.Context, submissionID, reviewerID, notes string) (*entities.RecipeSubmission, bool, error)
		RejectSubmission(ctx context.Context, submissionID, reviewerID, notes string) (*entities.RecipeSubmission, bool, error)
		HasActiveSubmission(ctx context.Context, recipeID string) (bool, error)
		IsRecipeFeatured(ctx context.Context, recipeID string) (bool, error)
		UserOwnsRecipe(ctx context.Context, userID, recipeID string) (bool, error)
	}

	submissionRepository struct {
		db *gorm.DB
	}
)

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateSubmission(ctx context.Context, submission *entities.RecipeSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) GetSubmissionByID(ctx context.Context, id string) (*entities.RecipeSubmission, error) {
	var submission entities.RecipeSubmission
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.User").
		Preload("Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.position asc")
		}).
		Preload("Submitter").
		Preload("Reviewer").
		Where("id = ?", id).
		First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) GetPendingSubmissions(ctx context.Context) ([]*entities.RecipeSubmission, error) {
	var submissions []*entities.RecipeSubmission
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Submitter").
		Where("status = ?", domain.SubmissionStatusPending).
		Order("submitted_at asc").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) GetSubmissionsByUser(ctx context.Context, userID string) ([]*entities.RecipeSubmission, error) {
	var submissions []*entities.RecipeSubmission
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Reviewer").
		Where("submitted_by = ?", userID).
		Order("submitted_at desc").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// MarkUnderReview transitions pending -> under_review. A submission that is
// no longer pending is left untouched, so re-opening a review page is safe.
func (r *submissionRepository) MarkUnderReview(ctx context.Context, submissionID, reviewerID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.RecipeSubmission{}).
		Where("id = ? AND status = ?", submissionID, domain.SubmissionStatusPending).
		Updates(map[string]interface{}{
			"status":      domain.SubmissionStatusUnderReview,
			"reviewed_by": reviewerID,
		}).Error
}

// ApproveSubmission moves the submission to approved and flags the recipe as
// featured in the same transaction: either both writes land or neither does.
// The bool reports whether a transition happened; a submission already in a
// terminal state is returned unchanged with false.
func (r *submissionRepository) ApproveSubmission(ctx context.Context, submissionID, reviewerID, notes string) (*entities.RecipeSubmission, bool, error) {
	var (
		submission   entities.RecipeSubmission
		transitioned bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", submissionID).First(&submission).Error; err != nil {
			return err
		}
		if isTerminal(submission.Status) {
			return nil
		}

		now := time.Now()
		if err := tx.Model(&entities.RecipeSubmission{}).
			Where("id = ?", submissionID).
			Updates(map[string]interface{}{
				"status":       domain.SubmissionStatusApproved,
				"reviewed_by":  reviewerID,
				"reviewed_at":  now,
				"review_notes": notes,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", submission.RecipeID).
			Updates(map[string]interface{}{
				"is_featured": true,
				"featured_at": now,
			}).Error; err != nil {
			return err
		}

		submission.Status = domain.SubmissionStatusApproved
		submission.ReviewedAt = &now
		submission.ReviewNotes = notes
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &submission, transitioned, nil
}

func (r *submissionRepository) RejectSubmission(ctx context.Context, submissionID, reviewerID, notes string) (*entities.RecipeSubmission, bool, error) {
	var (
		submission   entities.RecipeSubmission
		transitioned bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", submissionID).First(&submission).Error; err != nil {
			return err
		}
		if isTerminal(submission.Status) {
			return nil
		}

		now := time.Now()
		if err := tx.Model(&entities.RecipeSubmission{}).
			Where("id = ?", submissionID).
			Updates(map[string]interface{}{
				"status":       domain.SubmissionStatusRejected,
				"reviewed_by":  reviewerID,
				"reviewed_at":  now,
				"review_notes": notes,
			}).Error; err != nil {
			return err
		}

		submission.Status = domain.SubmissionStatusRejected
		submission.ReviewedAt = &now
		submission.ReviewNotes = notes
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &submission, transitioned, nil
}

func (r *submissionRepository) HasActiveSubmission(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeSubmission{}).
		Where("recipe_id = ? AND status IN ?", recipeID, []string{
			domain.SubmissionStatusPending,
			domain.SubmissionStatusUnderReview,
		}).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *submissionRepository) IsRecipeFeatured(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND is_featured = ?", recipeID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *submissionRepository) UserOwnsRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isTerminal(status string) bool {
	return status == domain.SubmissionStatusApproved || status == domain.SubmissionStatusRejected
}
