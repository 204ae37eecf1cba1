package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSubmission tracks one review attempt of a recipe. At most one
// submission per recipe may be "pending" or "under_review" at a time.
type RecipeSubmission struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID  `gorm:"not null;index" json:"recipe_id"`
	SubmittedBy uuid.UUID  `gorm:"not null" json:"submitted_by"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"` // "pending", "under_review", "approved", "rejected"
	ReviewedBy  *uuid.UUID `json:"reviewed_by,omitempty"`
	SubmittedAt time.Time  `gorm:"type:timestamp" json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`

	Recipe    *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Submitter *User   `gorm:"foreignKey:SubmittedBy"`
	Reviewer  *User   `gorm:"foreignKey:ReviewedBy"`
}
