package repository

import (
	"context"

	"github.com/percytaquila/apiGYM/internal/models"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, userID, exerciseID int64, reps int, weight *float64) error {
	query := `
		INSERT INTO usuario_avances (usuario_id, ejercicio_id, repeticiones, peso)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, userID, exerciseID, reps, weight)
	return err
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64) ([]models.ProgressEntry, error) {
	query := `
		SELECT u.id, u.repeticiones, u.peso, TO_CHAR(u.fecha, 'DD-MM-YYYY'), e.name_es
		FROM usuario_avances u
		INNER JOIN ejercicios e ON e.id = u.ejercicio_id
		WHERE u.usuario_id = $1
		ORDER BY u.fecha DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ProgressEntry{}
	for rows.Next() {
		var entry models.ProgressEntry
		if err := rows.Scan(&entry.ID, &entry.Repeticiones, &entry.Peso, &entry.Fecha, &entry.NameES); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Delete reports whether a row was actually removed.
func (r *ProgressRepository) Delete(ctx context.Context, progressID int64) (bool, error) {
	query := `DELETE FROM usuario_avances WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, progressID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
