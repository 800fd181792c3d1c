package handlers

import (
	"context"
	"fmt"

	"github.com/mazyaa/API-ML-RFC/services"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	store *services.PredictionStore
	cache *services.CacheService
}

func NewImportHandler(store *services.PredictionStore, cache *services.CacheService) *ImportHandler {
	return &ImportHandler{store: store, cache: cache}
}

type ImportCSVRequest struct {
	CSVPath string `json:"csv_path" binding:"required"`
	// "replace" (default) recreates the table from the file, "append" adds
	// the file's rows to whatever is already stored.
	Mode string `json:"mode"`
}

func (h *ImportHandler) ImportCSV(c *gin.Context) {
	var req ImportCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "Error occurred during CSV import", err)
		return
	}

	mode := services.BulkLoadMode(req.Mode)
	if req.Mode == "" {
		mode = services.BulkLoadReplace
	}
	if mode != services.BulkLoadReplace && mode != services.BulkLoadAppend {
		errorResponse(c, "Error occurred during CSV import", fmt.Errorf("unknown mode %q", req.Mode))
		return
	}

	rows, err := services.LoadPredictionsCSV(req.CSVPath)
	if err != nil {
		errorResponse(c, "Error occurred during CSV import", err)
		return
	}

	if err := h.store.BulkLoad(rows, mode); err != nil {
		errorResponse(c, "Error occurred during CSV import", err)
		return
	}

	csvRowsImported.Add(float64(len(rows)))
	go h.cache.Delete(context.Background(), predictionsCacheKey)

	okResponse(c, gin.H{
		"message":       "CSV imported successfully",
		"rows_imported": len(rows),
		"mode":          string(mode),
	})
}
