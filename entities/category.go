package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Recipes []*Recipe `gorm:"many2many:recipe_categories"`
	Timestamp
}
