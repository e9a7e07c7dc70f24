package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slastice/backend/internal/models"
	"github.com/slastice/backend/internal/types"
)

// RecipeService handles recipe CRUD and search.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns recipes in insertion order, optionally filtered by a
// case-insensitive substring match on name. An empty filter returns all.
func (s *RecipeService) List(ctx context.Context, nameFilter string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := s.db.WithContext(ctx).Order("created_at ASC")
	if nameFilter != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nameFilter)+"%")
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Search is the strict variant of List: a missing query is a validation
// error and zero matches is not-found, so "no query" and "no results" stay
// distinguishable.
func (s *RecipeService) Search(ctx context.Context, nameQuery string) ([]models.Recipe, error) {
	if strings.TrimSpace(nameQuery) == "" {
		return nil, fmt.Errorf("search query is required: %w", ErrValidation)
	}
	recipes, err := s.List(ctx, nameQuery)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes match %q: %w", nameQuery, ErrNotFound)
	}
	return recipes, nil
}

// Get retrieves a recipe by id.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create validates and stores a new recipe owned by ownerID.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if len(req.Ingredients) == 0 {
		return nil, fmt.Errorf("ingredients are required: %w", ErrValidation)
	}
	if len(req.Instructions) == 0 {
		return nil, fmt.Errorf("instructions are required: %w", ErrValidation)
	}
	servings := req.Servings
	if servings < 1 {
		servings = 1
	}

	recipe := models.Recipe{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Image:        req.Image,
		Servings:     servings,
		LikeCount:    0,
		Comments:     models.CommentList{},
		OwnerID:      ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update merges the set fields of req into the recipe. Existence is checked
// before ownership so a non-owner gets ErrForbidden, not ErrNotFound.
func (s *RecipeService) Update(ctx context.Context, id, callerID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrValidation)
	}

	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(recipe.OwnerID, callerID) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Ingredients != nil {
		updates["ingredients"] = models.StringArray(*req.Ingredients)
	}
	if req.Instructions != nil {
		updates["instructions"] = models.StringArray(*req.Instructions)
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Servings != nil {
		if *req.Servings < 1 {
			return nil, fmt.Errorf("servings must be at least 1: %w", ErrValidation)
		}
		updates["servings"] = *req.Servings
	}

	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a recipe after the same existence and ownership checks as
// Update.
func (s *RecipeService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(recipe.OwnerID, callerID) {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// ListMine returns the caller's own recipes. Owning none is treated as
// not-found rather than an empty list, consistent with Search.
func (s *RecipeService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("no recipes owned by %s: %w", ownerID, ErrNotFound)
	}
	return recipes, nil
}
