package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Ingredients  StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Image        string      `gorm:"size:512" json:"image"`
	Servings     int         `gorm:"not null;default:1" json:"servings"`
	LikeCount    int         `gorm:"not null;default:0" json:"like_count"`
	Comments     CommentList `gorm:"type:jsonb;not null;default:'[]'" json:"comments"`
	OwnerID      uuid.UUID   `gorm:"type:varchar(36);not null;index" json:"owner_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
