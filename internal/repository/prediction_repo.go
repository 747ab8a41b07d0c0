package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"iris-api/internal/domain"
)

// PredictionRepository define el contrato de persistencia para predicciones.
type PredictionRepository interface {
	Create(ctx context.Context, p domain.Prediction) (int64, error)
	List(ctx context.Context, limit, offset int) ([]domain.Prediction, error)
}

// PgPredictionRepository implementa PredictionRepository usando pgxpool.
// Cada llamada toma y devuelve su propia conexión del pool; ninguna
// transacción sobrevive al request.
type PgPredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPgPredictionRepository(pool *pgxpool.Pool) *PgPredictionRepository {
	return &PgPredictionRepository{pool: pool}
}

func (r *PgPredictionRepository) Create(ctx context.Context, p domain.Prediction) (int64, error) {
	const query = `
		INSERT INTO predictions (sepal_length, sepal_width, petal_length, petal_width, predicted_class)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		p.SepalLength,
		p.SepalWidth,
		p.PetalLength,
		p.PetalWidth,
		p.PredictedClass,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert prediction: %w", err)
	}
	return id, nil
}

func (r *PgPredictionRepository) List(ctx context.Context, limit, offset int) ([]domain.Prediction, error) {
	const query = `
		SELECT id, sepal_length, sepal_width, petal_length, petal_width, predicted_class, created_at
		FROM predictions
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	preds := make([]domain.Prediction, 0, listCapacity(limit))
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(
			&p.ID,
			&p.SepalLength,
			&p.SepalWidth,
			&p.PetalLength,
			&p.PetalWidth,
			&p.PredictedClass,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		preds = append(preds, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return preds, nil
}

// listCapacity acota la capacidad inicial del slice de resultados. El LIMIT
// de la consulta ya acota las filas, pero el limit viene del caller y puede
// ser enorme; no se reserva memoria por adelantado en base a él.
func listCapacity(limit int) int {
	const maxPrealloc = 64
	if limit < 0 {
		return 0
	}
	if limit > maxPrealloc {
		return maxPrealloc
	}
	return limit
}
