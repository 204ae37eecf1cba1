package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"not null" json:"user_id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	Instructions     string     `gorm:"type:text;not null" json:"instructions"`
	PrepTimeMinutes  int        `json:"prep_time_minutes"`
	CookTimeMinutes  int        `json:"cook_time_minutes"`
	Servings         int        `json:"servings"`
	Difficulty       string     `gorm:"type:varchar(20)" json:"difficulty"` // "easy", "medium", "hard"
	ImageURL         string     `json:"image_url,omitempty"`
	IsFeatured       bool       `gorm:"default:false" json:"is_featured"`
	FeaturedAt       *time.Time `json:"featured_at,omitempty"`
	OriginalRecipeID *uuid.UUID `json:"original_recipe_id,omitempty"`

	User        *User         `gorm:"foreignKey:UserID"`
	Ingredients []*Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Categories  []*Category   `gorm:"many2many:recipe_categories;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"not null;index" json:"recipe_id"`
	Name     string    `gorm:"not null" json:"name"`
	Quantity string    `gorm:"not null" json:"quantity"`
	Position int       `gorm:"not null" json:"position"` // explicit order within the recipe

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
