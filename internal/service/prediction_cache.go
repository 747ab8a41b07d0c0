package service

import (
	"sync"

	"iris-api/internal/domain"
)

// PredictionCache memoiza clases ya calculadas por vector de entrada.
type PredictionCache interface {
	Lookup(v domain.FeatureVector) (int, bool)
	Store(v domain.FeatureVector, class int)
}

// MemoryPredictionCache es un cache exacto en memoria, sin TTL ni tope de
// tamaño: crece sin límite con cada vector distinto. Eso es deliberado y
// está asumido como riesgo de memoria en despliegues largos.
type MemoryPredictionCache struct {
	mu      sync.RWMutex
	entries map[domain.FeatureVector]int
}

func NewMemoryPredictionCache() *MemoryPredictionCache {
	return &MemoryPredictionCache{
		entries: make(map[domain.FeatureVector]int),
	}
}

// Lookup es una lectura pura; no toca el estado del cache.
func (c *MemoryPredictionCache) Lookup(v domain.FeatureVector) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	class, ok := c.entries[v]
	return class, ok
}

// Store es idempotente para el mismo par vector/clase; el modelo es
// determinista, asi que escrituras concurrentes de la misma clave son
// seguras en cualquier orden.
func (c *MemoryPredictionCache) Store(v domain.FeatureVector, class int) {
	c.mu.Lock()
	c.entries[v] = class
	c.mu.Unlock()
}

// Len devuelve la cantidad de entradas memorizadas.
func (c *MemoryPredictionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
