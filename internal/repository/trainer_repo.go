package repository

import (
	"context"

	"github.com/percytaquila/apiGYM/internal/models"
)

type TrainerRepository struct {
	db DBTX
}

func NewTrainerRepository(db DBTX) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) ListBySpecialty(ctx context.Context, specialty *string) ([]models.TrainerSchedule, error) {
	query := `
		SELECT e.id_entrenador, e.nombre, e.especialidad, c.nombre_clase, h.id_horario, h.dia_semana
		FROM entrenadores e
		INNER JOIN clases c ON c.id_entrenador = e.id_entrenador
		INNER JOIN horario h ON h.id_clase = c.id_clase
		WHERE e.estado = true
		  AND ($1::text IS NULL OR e.especialidad = $1)
		ORDER BY e.id_entrenador, h.id_horario
	`
	rows, err := r.db.Query(ctx, query, specialty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainers := []models.TrainerSchedule{}
	for rows.Next() {
		var t models.TrainerSchedule
		if err := rows.Scan(&t.IDEntrenador, &t.Nombre, &t.Especialidad, &t.NombreClase, &t.IDHorario, &t.DiaSemana); err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func (r *TrainerRepository) GetClassDetails(ctx context.Context, scheduleID int64) (*models.ClassDetails, error) {
	query := `
		SELECT e.nombre, e.descripcion, e.telefono, e.correo,
			   c.nombre_clase, c.descripcion AS descripcion_clase, c.nivel,
			   h.dia_semana,
			   TO_CHAR(h.hora_inicio, 'HH24:MI') AS hora_inicio,
			   TO_CHAR(h.hora_fin, 'HH24:MI') AS hora_fin
		FROM entrenadores e
		INNER JOIN clases c ON c.id_entrenador = e.id_entrenador
		INNER JOIN horario h ON h.id_clase = c.id_clase
		WHERE h.id_horario = $1
	`
	var details models.ClassDetails
	err := r.db.QueryRow(ctx, query, scheduleID).Scan(
		&details.Nombre,
		&details.Descripcion,
		&details.Telefono,
		&details.Correo,
		&details.NombreClase,
		&details.DescripcionClase,
		&details.Nivel,
		&details.DiaSemana,
		&details.HoraInicio,
		&details.HoraFin,
	)
	if err != nil {
		return nil, err
	}
	return &details, nil
}
