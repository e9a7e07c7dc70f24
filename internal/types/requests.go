package types

// SignupRequest represents the request body for user registration
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for a profile update.
// A password change requires the current password to verify first; the name
// update is independent.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Image        string   `json:"image"`
	Servings     int      `json:"servings"`
}

// UpdateRecipeRequest represents the request body for a partial recipe
// update. Nil fields are left untouched; set fields replace the stored value
// wholesale (shallow merge only).
type UpdateRecipeRequest struct {
	Name         *string   `json:"name"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Image        *string   `json:"image"`
	Servings     *int      `json:"servings"`
}

// Empty reports whether no field of the update is set.
func (r *UpdateRecipeRequest) Empty() bool {
	return r.Name == nil && r.Ingredients == nil && r.Instructions == nil &&
		r.Image == nil && r.Servings == nil
}

// RecipeRefRequest carries a recipe id for favorite/like toggles
type RecipeRefRequest struct {
	RecipeID string `json:"recipeId" binding:"required"`
}

// CommentRequest represents the request body for adding a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// AddShoppingItemRequest represents the request body for adding an item
type AddShoppingItemRequest struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// UpdateShoppingItemRequest represents the request body for an item update
type UpdateShoppingItemRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
