package handlers

import (
	"context"

	"github.com/mazyaa/API-ML-RFC/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the table lifecycle endpoints: explicit schema
// creation and the full wipe.
type AdminHandler struct {
	store *services.PredictionStore
	cache *services.CacheService
}

func NewAdminHandler(store *services.PredictionStore, cache *services.CacheService) *AdminHandler {
	return &AdminHandler{store: store, cache: cache}
}

func (h *AdminHandler) CreateTable(c *gin.Context) {
	if err := h.store.EnsureSchema(); err != nil {
		errorResponse(c, "Error occurred during table creation", err)
		return
	}
	okResponse(c, gin.H{"message": "Table created successfully"})
}

func (h *AdminHandler) DeleteAllData(c *gin.Context) {
	if err := h.store.DeleteAll(); err != nil {
		errorResponse(c, "Error occurred during deletion", err)
		return
	}
	go h.cache.Delete(context.Background(), predictionsCacheKey)
	okResponse(c, gin.H{"message": "All data deleted successfully"})
}
