package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/mazyaa/API-ML-RFC/models"
	"github.com/mazyaa/API-ML-RFC/services"

	"github.com/gin-gonic/gin"
)

const (
	predictionsCacheKey = "predictions:all"
	predictionsChannel  = "stock:predictions"
	listCacheTTL        = 30 * time.Second
)

type PredictionHandler struct {
	store *services.PredictionStore
	clf   *services.Classifier
	cache *services.CacheService
}

func NewPredictionHandler(store *services.PredictionStore, clf *services.Classifier, cache *services.CacheService) *PredictionHandler {
	return &PredictionHandler{store: store, clf: clf, cache: cache}
}

// PredictRequest carries the encoded feature fields. Pointers so that zero
// values (offset 0, product code 0) still pass the required check.
type PredictRequest struct {
	DateOffsetDays *int `json:"date_offset_days" binding:"required"`
	ProductCode    *int `json:"product_code" binding:"required"`
	DayCode        *int `json:"day_code" binding:"required"`
	UnitPrice      *int `json:"unit_price" binding:"required"`
	QuantitySold   *int `json:"quantity_sold" binding:"required"`
	StockOnHand    *int `json:"stock_on_hand" binding:"required"`
}

// featureVector builds the model input. The order matches the training
// pipeline: date offset, product, day, stock, price, quantity.
func (r PredictRequest) featureVector() []float64 {
	return []float64{
		float64(*r.DateOffsetDays),
		float64(*r.ProductCode),
		float64(*r.DayCode),
		float64(*r.StockOnHand),
		float64(*r.UnitPrice),
		float64(*r.QuantitySold),
	}
}

func (h *PredictionHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		predictionsFailed.Inc()
		errorResponse(c, "Error occurred during prediction", err)
		return
	}

	class, probs, err := h.clf.Predict(req.featureVector())
	if err != nil {
		predictionsFailed.Inc()
		errorResponse(c, "Error occurred during prediction", err)
		return
	}
	confidence := probs[class]

	rec := models.Prediction{
		Date:         models.EncodeDate(*req.DateOffsetDays),
		DayOfWeek:    models.DayName(*req.DayCode),
		ProductName:  models.ProductName(*req.ProductCode),
		UnitPrice:    *req.UnitPrice,
		QuantitySold: *req.QuantitySold,
		StockOnHand:  *req.StockOnHand,
		StockStatus:  models.StatusLabel(class),
	}
	if err := h.store.Insert(&rec); err != nil {
		predictionsFailed.Inc()
		errorResponse(c, "Error occurred during prediction", err)
		return
	}

	go h.cache.Delete(context.Background(), predictionsCacheKey)
	go h.cache.Publish(context.Background(), predictionsChannel, rec)
	predictionsServed.Inc()

	body := gin.H{
		"message":    "Prediction successful",
		"prediction": rec.StockStatus,
		"confidence": roundPercent(confidence),
	}
	if m := h.clf.Metrics(); m != nil {
		body["accuracy"] = m.Accuracy
		body["precision"] = m.Precision
		body["recall"] = m.Recall
		body["F1_score"] = m.F1Score
	}
	okResponse(c, body)
}

type listResponse struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Data    []models.Prediction `json:"data"`
}

func (h *PredictionHandler) GetAllPredictions(c *gin.Context) {
	var cached listResponse
	if err := h.cache.Get(c.Request.Context(), predictionsCacheKey, &cached); err == nil && cached.Data != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := h.store.ListAll()
	if err != nil {
		errorResponse(c, "Error occurred retrieving data", err)
		return
	}
	if rows == nil {
		rows = []models.Prediction{}
	}

	resp := listResponse{
		Status:  http.StatusOK,
		Message: "Data retrieved successfully",
		Data:    rows,
	}
	go h.cache.Set(context.Background(), predictionsCacheKey, resp, listCacheTTL)

	c.JSON(http.StatusOK, resp)
}

// roundPercent converts a probability to a percentage with two decimals,
// the shape existing clients display directly.
func roundPercent(p float64) float64 {
	return math.Round(p*100*100) / 100
}
