package repository

import (
	"context"

	"github.com/percytaquila/apiGYM/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) GetRandomByBodyPart(ctx context.Context, bodyPart string, limit int) ([]models.Exercise, error) {
	query := `
		SELECT id, name_es, body_part_es, target_es
		FROM ejercicios
		WHERE body_part_es = $1
		ORDER BY RANDOM()
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, bodyPart, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.NameES, &e.BodyPartES, &e.TargetES); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *ExerciseRepository) ListBodyParts(ctx context.Context) ([]string, error) {
	query := `
		SELECT body_part_es
		FROM ejercicios
		GROUP BY body_part_es
		ORDER BY body_part_es
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bodyParts := []string{}
	for rows.Next() {
		var bodyPart string
		if err := rows.Scan(&bodyPart); err != nil {
			return nil, err
		}
		bodyParts = append(bodyParts, bodyPart)
	}
	return bodyParts, rows.Err()
}

func (r *ExerciseRepository) ListByBodyPart(ctx context.Context, bodyPart string) ([]models.ExerciseSummary, error) {
	query := `
		SELECT id, name_es
		FROM ejercicios
		WHERE body_part_es = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, bodyPart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []models.ExerciseSummary{}
	for rows.Next() {
		var e models.ExerciseSummary
		if err := rows.Scan(&e.ID, &e.NameES); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
