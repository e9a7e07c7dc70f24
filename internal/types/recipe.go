package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/slastice/backend/internal/models"
)

// RecipeResponse is a recipe document optionally annotated with the caller's
// favorite flag. The flag is omitted on anonymous reads.
type RecipeResponse struct {
	models.Recipe
	IsFavorite *bool `json:"isFavorite,omitempty"`
}

// UserSummary is the safe subset of a user returned with a login token
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CommentView is a comment resolved with its author's display name
type CommentView struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
