package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slastice/backend/internal/middleware"
	"github.com/slastice/backend/internal/service"
	"github.com/slastice/backend/internal/types"
)

// RecipeHandler adapts the recipe repository to the HTTP surface.
type RecipeHandler struct {
	recipeService *service.RecipeService
	socialService *service.SocialService
	authService   *service.AuthService
	logger        *zap.Logger
}

func NewRecipeHandler(recipeService *service.RecipeService, socialService *service.SocialService, authService *service.AuthService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		socialService: socialService,
		authService:   authService,
		logger:        logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recepti")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/pretraga", h.SearchRecipes)
		recipes.GET("/:id", middleware.AuthOptional(h.authService), h.GetRecipe)
		recipes.POST("", middleware.AuthRequired(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthRequired(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthRequired(h.authService), h.DeleteRecipe)
	}
	router.GET("/mojirecepti", middleware.AuthRequired(h.authService), h.ListMyRecipes)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context(), c.Query("naziv"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.recipeService.Search(c.Request.Context(), c.Query("naziv"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one recipe. When the request carries a valid bearer
// identity the response is annotated with the caller's favorite flag.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	resp := types.RecipeResponse{Recipe: *recipe}
	if callerID, authed := middleware.CallerID(c); authed {
		fav, err := h.socialService.IsFavorite(c.Request.Context(), callerID, id)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		resp.IsFavorite = &fav
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, callerID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, callerID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully"})
}

func (h *RecipeHandler) ListMyRecipes(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := h.recipeService.ListMine(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}
