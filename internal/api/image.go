package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slastice/backend/internal/middleware"
	"github.com/slastice/backend/internal/service"
	"github.com/slastice/backend/internal/types"
)

const maxImageUploadBytes = 5 << 20 // 5 MiB

// ImageHandler uploads recipe images to object storage and records the
// resulting URL on the recipe. Registered only when S3 is configured.
type ImageHandler struct {
	imageService  *service.ImageService
	recipeService *service.RecipeService
	authService   *service.AuthService
	logger        *zap.Logger
}

func NewImageHandler(imageService *service.ImageService, recipeService *service.RecipeService, authService *service.AuthService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageService:  imageService,
		recipeService: recipeService,
		authService:   authService,
		logger:        logger,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recepti/:id/slika", middleware.AuthRequired(h.authService), h.UploadRecipeImage)
}

func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipeID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	// existence and ownership checks run inside the recipe update
	recipe, err := h.recipeService.Update(c.Request.Context(), recipeID, callerID, &types.UpdateRecipeRequest{Image: &url})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
