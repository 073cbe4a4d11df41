package services

import (
	"context"

	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/repository"
)

type levelConfig struct {
	days            int
	exercisesPerDay int
}

var levelConfigs = map[string]levelConfig{
	"Principiante": {days: 3, exercisesPerDay: 6},
	"Intermedio":   {days: 4, exercisesPerDay: 8},
	"Avanzado":     {days: 5, exercisesPerDay: 8},
}

// objectiveBodyParts maps each objective to the body parts trained per
// day. Content fixture from the product team; edit the data, not the
// generation loop.
var objectiveBodyParts = map[string][][]string{
	"Bajar de peso": {
		{"cardio", "parte superior de las piernas", "cintura"},
		{"espalda", "cardio", "cintura"},
		{"cardio", "parte superior de las piernas", "espalda"},
		{"cintura", "espalda"},
		{"cardio", "cintura"},
	},
	"Ganar masa muscular": {
		{"pecho", "hombros"},
		{"parte superior de los brazos", "parte superior de las piernas"},
		{"espalda", "pecho"},
		{"hombros", "parte superior de los brazos"},
		{"parte superior de las piernas", "espalda"},
	},
	"Mantenerse en forma": {
		{"cintura", "parte inferior de las piernas"},
		{"espalda", "brazos inferiores"},
		{"hombros", "cintura"},
		{"brazos inferiores", "parte inferior de las piernas"},
		{"cintura", "espalda"},
	},
}

type exerciseCatalog interface {
	GetRandomByBodyPart(ctx context.Context, bodyPart string, limit int) ([]models.Exercise, error)
}

type routineStore interface {
	Save(ctx context.Context, userID int64, routine []models.RoutineDay) error
	GetLatest(ctx context.Context, userID int64) ([]models.RoutineDay, error)
}

type RoutineService struct {
	exerciseRepo exerciseCatalog
	routineRepo  routineStore
}

func NewRoutineService(exerciseRepo *repository.ExerciseRepository, routineRepo *repository.RoutineRepository) *RoutineService {
	return &RoutineService{exerciseRepo: exerciseRepo, routineRepo: routineRepo}
}

// Generate builds a multi-day routine for the user and appends it to
// their routine history. The per-day exercise count is split evenly
// across that day's body parts; the integer division drops any
// remainder.
func (s *RoutineService) Generate(ctx context.Context, userID int64, objective, experienceLevel string) ([]models.RoutineDay, error) {
	config, ok := levelConfigs[experienceLevel]
	if !ok {
		return nil, ErrUnknownExperienceLevel
	}
	bodyPartsPerDay, ok := objectiveBodyParts[objective]
	if !ok {
		return nil, ErrUnknownObjective
	}

	routine := []models.RoutineDay{}
	for day, bodyParts := range bodyPartsPerDay[:config.days] {
		perBodyPart := config.exercisesPerDay / len(bodyParts)

		exercises := []models.Exercise{}
		for _, bodyPart := range bodyParts {
			found, err := s.exerciseRepo.GetRandomByBodyPart(ctx, bodyPart, perBodyPart)
			if err != nil {
				return nil, err
			}
			exercises = append(exercises, found...)
		}
		routine = append(routine, models.RoutineDay{Day: day + 1, Exercises: exercises})
	}

	if err := s.routineRepo.Save(ctx, userID, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// GetLatest returns the user's most recent routine, or nil when the
// user has none.
func (s *RoutineService) GetLatest(ctx context.Context, userID int64) ([]models.RoutineDay, error) {
	return s.routineRepo.GetLatest(ctx, userID)
}
