package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slastice/backend/internal/middleware"
	"github.com/slastice/backend/internal/models"
	"github.com/slastice/backend/internal/service"
	"github.com/slastice/backend/internal/types"
)

// SocialHandler adapts the favorite/like sets and recipe comments to the
// HTTP surface.
type SocialHandler struct {
	socialService *service.SocialService
	authService   *service.AuthService
	logger        *zap.Logger
}

func NewSocialHandler(socialService *service.SocialService, authService *service.AuthService, logger *zap.Logger) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
		authService:   authService,
		logger:        logger,
	}
}

func (h *SocialHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/korisnici", middleware.AuthRequired(h.authService))
	{
		users.GET("/omiljeni", h.ListFavorites)
		users.POST("/omiljeni", h.AddFavorite)
		users.DELETE("/omiljeni", h.RemoveFavorite)
		users.GET("/lajk", h.ListLiked)
		users.POST("/lajk", h.Like)
		users.DELETE("/lajk", h.Unlike)
	}

	comments := router.Group("/recepti/:id/komentari")
	{
		comments.GET("", h.ListComments)
		comments.POST("", middleware.AuthRequired(h.authService), h.AddComment)
		comments.DELETE("/:commentId", middleware.AuthRequired(h.authService), h.RemoveComment)
	}
}

func (h *SocialHandler) AddFavorite(c *gin.Context) {
	h.toggleSet(c, h.socialService.AddFavorite, http.StatusCreated, "recipe added to favorites")
}

func (h *SocialHandler) RemoveFavorite(c *gin.Context) {
	h.toggleSet(c, h.socialService.RemoveFavorite, http.StatusOK, "recipe removed from favorites")
}

func (h *SocialHandler) Like(c *gin.Context) {
	h.toggleSet(c, h.socialService.Like, http.StatusOK, "recipe liked")
}

func (h *SocialHandler) Unlike(c *gin.Context) {
	h.toggleSet(c, h.socialService.Unlike, http.StatusOK, "recipe unliked")
}

func (h *SocialHandler) ListFavorites(c *gin.Context) {
	h.listSet(c, h.socialService.ListFavorites)
}

func (h *SocialHandler) ListLiked(c *gin.Context) {
	h.listSet(c, h.socialService.ListLiked)
}

func (h *SocialHandler) AddComment(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipeID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req types.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.socialService.AddComment(c.Request.Context(), recipeID, callerID, req.Text)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *SocialHandler) RemoveComment(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipeID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	commentID, ok := parseID(c, c.Param("commentId"))
	if !ok {
		return
	}

	if err := h.socialService.RemoveComment(c.Request.Context(), recipeID, commentID, callerID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment removed"})
}

func (h *SocialHandler) ListComments(c *gin.Context) {
	recipeID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	comments, err := h.socialService.ListComments(c.Request.Context(), recipeID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

type setOp func(ctx context.Context, userID, recipeID uuid.UUID) error

func (h *SocialHandler) toggleSet(c *gin.Context, op setOp, status int, message string) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.RecipeRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	recipeID, ok := parseID(c, req.RecipeID)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), callerID, recipeID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(status, gin.H{"message": message})
}

func (h *SocialHandler) listSet(c *gin.Context, list func(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := list(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}
