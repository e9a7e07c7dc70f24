package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slastice/backend/internal/middleware"
	"github.com/slastice/backend/internal/service"
	"github.com/slastice/backend/internal/types"
)

// ShoppingHandler adapts the per-user shopping list to the HTTP surface.
type ShoppingHandler struct {
	shoppingService *service.ShoppingService
	authService     *service.AuthService
	logger          *zap.Logger
}

func NewShoppingHandler(shoppingService *service.ShoppingService, authService *service.AuthService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingService: shoppingService,
		authService:     authService,
		logger:          logger,
	}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shoppingLista", middleware.AuthRequired(h.authService))
	{
		list.GET("", h.GetItems)
		list.POST("", h.AddItem)
		list.PUT("/:id", h.UpdateItem)
		list.DELETE("/zavrsene", h.RemoveCompleted)
		list.DELETE("/:id", h.RemoveItem)
		list.DELETE("", h.ClearItems)
	}
}

func (h *ShoppingHandler) GetItems(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.shoppingService.GetItems(c.Request.Context(), callerID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.shoppingService.AddItem(c.Request.Context(), callerID, req.Name, req.Completed)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req types.UpdateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.shoppingService.UpdateItem(c.Request.Context(), callerID, itemID, *req.Completed)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ShoppingHandler) RemoveItem(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	itemID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.shoppingService.RemoveItem(c.Request.Context(), callerID, itemID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

func (h *ShoppingHandler) RemoveCompleted(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.shoppingService.RemoveCompleted(c.Request.Context(), callerID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "completed items removed"})
}

func (h *ShoppingHandler) ClearItems(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.shoppingService.ClearItems(c.Request.Context(), callerID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all items removed"})
}
