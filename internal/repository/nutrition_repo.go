package repository

import (
	"context"
	"encoding/json"

	"github.com/percytaquila/apiGYM/internal/models"
)

type NutritionRepository struct {
	db DBTX
}

func NewNutritionRepository(db DBTX) *NutritionRepository {
	return &NutritionRepository{db: db}
}

func (r *NutritionRepository) Insert(ctx context.Context, userID int64, plan models.MealPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recomendaciones_diarias (id_usuario, recomendaciones)
		VALUES ($1, $2)
	`
	_, err = r.db.Exec(ctx, query, userID, payload)
	return err
}

// GetLatest returns the most recently created plan for the user, or nil
// when none exists.
func (r *NutritionRepository) GetLatest(ctx context.Context, userID int64) (models.MealPlan, error) {
	query := `
		SELECT recomendaciones
		FROM recomendaciones_diarias
		WHERE id_usuario = $1
		ORDER BY fecha_creacion DESC
		LIMIT 1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}

	var plan models.MealPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}
