package service

import (
	"context"

	"go.uber.org/zap"

	"iris-api/internal/domain"
	"iris-api/internal/model"
	"iris-api/internal/repository"
)

// PredictionService coordina cache, modelo y persistencia para cada request
// de predicción.
type PredictionService struct {
	logger      *zap.Logger
	classifier  model.Classifier
	cache       PredictionCache
	predictions repository.PredictionRepository
}

func NewPredictionService(
	logger *zap.Logger,
	classifier model.Classifier,
	cache PredictionCache,
	predictions repository.PredictionRepository,
) *PredictionService {
	return &PredictionService{
		logger:      logger,
		classifier:  classifier,
		cache:       cache,
		predictions: predictions,
	}
}

// Predict resuelve la clase (cache primero, modelo en miss) y registra la
// predicción servida. Cada request genera su propio registro, incluso en
// cache hit. Si la escritura durable falla el error se propaga: una
// predicción que no se pudo registrar no se reporta como exitosa, aunque el
// cache ya haya quedado poblado para el próximo intento.
func (s *PredictionService) Predict(ctx context.Context, features domain.FeatureVector) (int, bool, error) {
	class, hit := s.cache.Lookup(features)
	if hit {
		s.logger.Info("cache hit", zap.Any("features", features))
	} else {
		class = s.classifier.Predict(features)
		s.cache.Store(features, class)
		s.logger.Info("cache updated", zap.Any("features", features), zap.Int("class", class))
	}

	_, err := s.predictions.Create(ctx, domain.Prediction{
		SepalLength:    features.SepalLength,
		SepalWidth:     features.SepalWidth,
		PetalLength:    features.PetalLength,
		PetalWidth:     features.PetalWidth,
		PredictedClass: class,
	})
	if err != nil {
		return 0, hit, err
	}
	return class, hit, nil
}

// List devuelve la ventana pedida del historial, de la más reciente a la
// más antigua.
func (s *PredictionService) List(ctx context.Context, limit, offset int) ([]domain.Prediction, error) {
	return s.predictions.List(ctx, limit, offset)
}
