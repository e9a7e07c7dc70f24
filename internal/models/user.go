package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	FavoriteRecipeIDs UUIDSet   `gorm:"type:jsonb;not null;default:'[]'" json:"favorite_recipe_ids"`
	LikedRecipeIDs    UUIDSet   `gorm:"type:jsonb;not null;default:'[]'" json:"liked_recipe_ids"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
