package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iris-api/internal/domain"
	"iris-api/internal/service"
)

const (
	defaultListLimit  = 10
	defaultListOffset = 0
)

// PredictionHandler mantiene dependencias para los endpoints de predicción.
type PredictionHandler struct {
	logger      *zap.Logger
	predictions *service.PredictionService
}

// NewPredictionHandler crea una instancia de PredictionHandler.
func NewPredictionHandler(logger *zap.Logger, predictions *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		logger:      logger,
		predictions: predictions,
	}
}

// floatParam acepta números JSON y también strings numéricos ("5.1");
// cualquier otra cosa no parsea y termina en 400.
type floatParam float64

func (f *floatParam) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*f = floatParam(val)
	return nil
}

// Predict maneja POST /predict.
func (h *PredictionHandler) Predict(c *gin.Context) {
	// Punteros para distinguir campo ausente de un cero legítimo.
	var req struct {
		SepalLength *floatParam `json:"sepal_length" binding:"required"`
		SepalWidth  *floatParam `json:"sepal_width" binding:"required"`
		PetalLength *floatParam `json:"petal_length" binding:"required"`
		PetalWidth  *floatParam `json:"petal_width" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid predict request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input, check parameters"})
		return
	}

	features := domain.FeatureVector{
		SepalLength: float64(*req.SepalLength),
		SepalWidth:  float64(*req.SepalWidth),
		PetalLength: float64(*req.PetalLength),
		PetalWidth:  float64(*req.PetalWidth),
	}

	class, _, err := h.predictions.Predict(c.Request.Context(), features)
	if err != nil {
		h.logger.Error("record prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predicted_class": class})
}

// List maneja GET /predictions.
func (h *PredictionHandler) List(c *gin.Context) {
	limit, ok := queryInt(c, "limit", defaultListLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", defaultListOffset)
	if !ok {
		return
	}

	preds, err := h.predictions.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("list predictions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list predictions"})
		return
	}

	c.JSON(http.StatusOK, preds)
}

// queryInt lee un parámetro entero no negativo; responde 400 y devuelve
// ok=false si no parsea.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return val, true
}
