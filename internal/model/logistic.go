package model

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"iris-api/internal/domain"
)

// Classifier es la capacidad opaca de clasificación que consume el servicio.
type Classifier interface {
	Predict(v domain.FeatureVector) int
}

// LogisticRegression evalúa un modelo de regresión logística multinomial
// ya entrenado: argmax(W·x + b). Es determinista y seguro para uso
// concurrente porque nunca muta sus parámetros.
type LogisticRegression struct {
	classes    []int
	weights    *mat.Dense
	intercepts *mat.VecDense
}

type artifact struct {
	Classes      []int       `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// Load lee el artefacto del modelo desde disco. Se llama una sola vez al
// arrancar el proceso; un artefacto ausente o inconsistente es fatal.
func Load(path string) (*LogisticRegression, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	return New(art.Classes, art.Coefficients, art.Intercepts)
}

// New construye el clasificador a partir de parámetros ya entrenados.
func New(classes []int, coefficients [][]float64, intercepts []float64) (*LogisticRegression, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("model has no classes")
	}
	if len(coefficients) != len(classes) || len(intercepts) != len(classes) {
		return nil, fmt.Errorf("model shape mismatch: %d classes, %d coefficient rows, %d intercepts",
			len(classes), len(coefficients), len(intercepts))
	}
	features := len(coefficients[0])
	if want := len(domain.FeatureVector{}.Values()); features != want {
		return nil, fmt.Errorf("model expects %d features per class, got %d", want, features)
	}
	weights := mat.NewDense(len(classes), features, nil)
	for i, row := range coefficients {
		if len(row) != features {
			return nil, fmt.Errorf("model coefficient row %d has %d values, want %d", i, len(row), features)
		}
		weights.SetRow(i, row)
	}
	return &LogisticRegression{
		classes:    classes,
		weights:    weights,
		intercepts: mat.NewVecDense(len(intercepts), intercepts),
	}, nil
}

// NumFeatures devuelve la dimensión de entrada esperada.
func (m *LogisticRegression) NumFeatures() int {
	_, cols := m.weights.Dims()
	return cols
}

// Predict devuelve la clase con mayor puntaje lineal. El softmax no cambia
// el argmax, asi que no se calcula.
func (m *LogisticRegression) Predict(v domain.FeatureVector) int {
	x := mat.NewVecDense(m.NumFeatures(), v.Values())
	rows, _ := m.weights.Dims()
	scores := mat.NewVecDense(rows, nil)
	scores.MulVec(m.weights, x)
	scores.AddVec(scores, m.intercepts)

	best := 0
	for i := 1; i < rows; i++ {
		if scores.AtVec(i) > scores.AtVec(best) {
			best = i
		}
	}
	return m.classes[best]
}
