package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iris-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	predictionH *PredictionHandler,
	healthH *HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging y recovery.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/", Root)
	r.POST("/login", authH.Login)
	r.GET("/health", healthH.Health)

	protected := r.Group("/", JWTAuthMiddleware(jwtSvc))
	protected.POST("/predict", predictionH.Predict)
	protected.GET("/predictions", predictionH.List)

	return r
}
