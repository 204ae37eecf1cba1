package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `gorm:"type:varchar(20);default:'user'" json:"role"`

	// Deleting a user removes their recipes as well.
	Recipes []*Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
