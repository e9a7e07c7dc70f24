package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingList holds one user's purchase items. Created lazily on the first
// item add.
type ShoppingList struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OwnerID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"owner_id"`
	Items     ItemList  `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
