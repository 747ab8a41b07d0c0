package domain

import "time"

// FeatureVector agrupa las cuatro medidas de entrada del modelo.
// Es comparable, asi que sirve directamente como clave de cache;
// la igualdad es exacta sobre los float64, sin tolerancia.
type FeatureVector struct {
	SepalLength float64 `json:"sepal_length"`
	SepalWidth  float64 `json:"sepal_width"`
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

// Values devuelve las medidas en el orden que espera el modelo.
func (v FeatureVector) Values() []float64 {
	return []float64{v.SepalLength, v.SepalWidth, v.PetalLength, v.PetalWidth}
}

// Prediction es el registro durable de una predicción servida.
type Prediction struct {
	ID             int64     `json:"id"`
	SepalLength    float64   `json:"sepal_length"`
	SepalWidth     float64   `json:"sepal_width"`
	PetalLength    float64   `json:"petal_length"`
	PetalWidth     float64   `json:"petal_width"`
	PredictedClass int       `json:"predicted_class"`
	CreatedAt      time.Time `json:"created_at"`
}

// Features reconstruye el vector de entrada del registro.
func (p Prediction) Features() FeatureVector {
	return FeatureVector{
		SepalLength: p.SepalLength,
		SepalWidth:  p.SepalWidth,
		PetalLength: p.PetalLength,
		PetalWidth:  p.PetalWidth,
	}
}
