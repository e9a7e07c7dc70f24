package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slastice/backend/internal/models"
	"github.com/slastice/backend/internal/types"
)

// unknownAuthorLabel is shown for comments whose author no longer resolves.
const unknownAuthorLabel = "nepoznat korisnik"

// SocialService owns the favorite/like id sets on users and the comment
// list embedded in recipes. Set mutations are read-modify-write on a JSONB
// column, wrapped in a transaction so the write pairs (user set + recipe
// like count) stay consistent.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// AddFavorite puts recipeID into the user's favorite set. A duplicate add
// is rejected with ErrConflict; likes deliberately behave differently, see
// Like.
func (s *SocialService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := loadUser(tx, userID)
		if err != nil {
			return err
		}
		if err := ensureRecipeExists(tx, recipeID); err != nil {
			return err
		}
		if !user.FavoriteRecipeIDs.Add(recipeID) {
			return fmt.Errorf("recipe already in favorites: %w", ErrConflict)
		}
		return tx.Model(user).Update("favorite_recipe_ids", user.FavoriteRecipeIDs).Error
	})
}

// RemoveFavorite takes recipeID out of the user's favorite set, restoring
// the pre-add state.
func (s *SocialService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := loadUser(tx, userID)
		if err != nil {
			return err
		}
		if !user.FavoriteRecipeIDs.Remove(recipeID) {
			return fmt.Errorf("recipe not in favorites: %w", ErrConflict)
		}
		return tx.Model(user).Update("favorite_recipe_ids", user.FavoriteRecipeIDs).Error
	})
}

// IsFavorite reports whether recipeID is in the user's favorite set.
func (s *SocialService) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	user, err := loadUser(s.db.WithContext(ctx), userID)
	if err != nil {
		return false, err
	}
	return user.FavoriteRecipeIDs.Contains(recipeID), nil
}

// Like records the user's like and bumps the recipe's like count. Liking a
// recipe twice is an idempotent no-op, unlike AddFavorite.
func (s *SocialService) Like(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := loadUser(tx, userID)
		if err != nil {
			return err
		}
		if err := ensureRecipeExists(tx, recipeID); err != nil {
			return err
		}
		if !user.LikedRecipeIDs.Add(recipeID) {
			return nil
		}
		if err := tx.Model(user).Update("liked_recipe_ids", user.LikedRecipeIDs).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Update("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// Unlike removes the user's like and decrements the recipe's like count,
// never below zero.
func (s *SocialService) Unlike(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := loadUser(tx, userID)
		if err != nil {
			return err
		}
		if !user.LikedRecipeIDs.Remove(recipeID) {
			return fmt.Errorf("recipe not liked: %w", ErrConflict)
		}
		if err := tx.Model(user).Update("liked_recipe_ids", user.LikedRecipeIDs).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recipe{}).
			Where("id = ? AND like_count > 0", recipeID).
			Update("like_count", gorm.Expr("like_count - 1")).Error
	})
}

// ListFavorites resolves the user's favorite ids to full recipe documents.
// An empty set yields an empty list; dangling ids are skipped.
func (s *SocialService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	user, err := loadUser(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return s.resolveRecipes(ctx, user.FavoriteRecipeIDs)
}

// ListLiked resolves the user's liked ids to full recipe documents.
func (s *SocialService) ListLiked(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	user, err := loadUser(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return s.resolveRecipes(ctx, user.LikedRecipeIDs)
}

func (s *SocialService) resolveRecipes(ctx context.Context, ids models.UUIDSet) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if len(ids) == 0 {
		return recipes, nil
	}
	var found []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", []uuid.UUID(ids)).Find(&found).Error; err != nil {
		return nil, err
	}
	// keep set order
	byID := make(map[uuid.UUID]models.Recipe, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// AddComment appends an authored, timestamped comment to the recipe.
func (s *SocialService) AddComment(ctx context.Context, recipeID, authorID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrValidation)
	}

	comment := models.Comment{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := loadRecipe(tx, recipeID)
		if err != nil {
			return err
		}
		recipe.Comments = append(recipe.Comments, comment)
		return tx.Model(recipe).Update("comments", recipe.Comments).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// RemoveComment drops the comment matching both id and author. A wrong id
// and a wrong author come back as the same not-found signal.
func (s *SocialService) RemoveComment(ctx context.Context, recipeID, commentID, authorID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := loadRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		kept := recipe.Comments[:0]
		removed := false
		for _, c := range recipe.Comments {
			if c.ID == commentID && c.AuthorID == authorID {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return fmt.Errorf("no such comment for this author: %w", ErrNotFound)
		}
		return tx.Model(recipe).Update("comments", kept).Error
	})
}

// ListComments returns the recipe's comments with author ids resolved to
// display names.
func (s *SocialService) ListComments(ctx context.Context, recipeID uuid.UUID) ([]types.CommentView, error) {
	recipe, err := loadRecipe(s.db.WithContext(ctx), recipeID)
	if err != nil {
		return nil, err
	}

	views := make([]types.CommentView, 0, len(recipe.Comments))
	if len(recipe.Comments) == 0 {
		return views, nil
	}

	authorIDs := make([]uuid.UUID, 0, len(recipe.Comments))
	seen := map[uuid.UUID]bool{}
	for _, c := range recipe.Comments {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	var authors []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(authors))
	for _, a := range authors {
		names[a.ID] = a.Name
	}

	for _, c := range recipe.Comments {
		name, ok := names[c.AuthorID]
		if !ok {
			name = unknownAuthorLabel
		}
		views = append(views, types.CommentView{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorName: name,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		})
	}
	return views, nil
}

func loadUser(tx *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func loadRecipe(tx *gorm.DB, recipeID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", recipeID, ErrNotFound)
		}
		return nil, err
	}
	return &recipe, nil
}

func ensureRecipeExists(tx *gorm.DB, recipeID uuid.UUID) error {
	_, err := loadRecipe(tx, recipeID)
	return err
}
