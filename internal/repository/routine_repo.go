package repository

import (
	"context"
	"encoding/json"

	"github.com/percytaquila/apiGYM/internal/models"
)

type RoutineRepository struct {
	db DBTX
}

func NewRoutineRepository(db DBTX) *RoutineRepository {
	return &RoutineRepository{db: db}
}

// Save appends a new routine row; prior routines for the user are kept.
func (r *RoutineRepository) Save(ctx context.Context, userID int64, routine []models.RoutineDay) error {
	payload, err := json.Marshal(routine)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO usuario_rutinas (usuario_id, rutina)
		VALUES ($1, $2)
	`
	_, err = r.db.Exec(ctx, query, userID, payload)
	return err
}

// GetLatest returns the most recently created routine for the user, or
// nil when none exists.
func (r *RoutineRepository) GetLatest(ctx context.Context, userID int64) ([]models.RoutineDay, error) {
	query := `
		SELECT rutina
		FROM usuario_rutinas
		WHERE usuario_id = $1
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

	var routine []models.RoutineDay
	if err := json.Unmarshal(payload, &routine); err != nil {
		return nil, err
	}
	return routine, nil
}
