package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/percytaquila/apiGYM/internal/models"
)

type catalogRequest struct {
	bodyPart string
	limit    int
}

type stubExerciseCatalog struct {
	requests []catalogRequest
	err      error
	nextID   int64
}

func (s *stubExerciseCatalog) GetRandomByBodyPart(_ context.Context, bodyPart string, limit int) ([]models.Exercise, error) {
	s.requests = append(s.requests, catalogRequest{bodyPart: bodyPart, limit: limit})
	if s.err != nil {
		return nil, s.err
	}

	exercises := make([]models.Exercise, limit)
	for i := range exercises {
		s.nextID++
		exercises[i] = models.Exercise{
			ID:         s.nextID,
			NameES:     fmt.Sprintf("ejercicio %d", s.nextID),
			BodyPartES: bodyPart,
			TargetES:   "target",
		}
	}
	return exercises, nil
}

type stubRoutineStore struct {
	saved      [][]models.RoutineDay
	saveErr    error
	latest     []models.RoutineDay
	lastUserID int64
}

func (s *stubRoutineStore) Save(_ context.Context, userID int64, routine []models.RoutineDay) error {
	s.lastUserID = userID
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, routine)
	return nil
}

func (s *stubRoutineStore) GetLatest(_ context.Context, userID int64) ([]models.RoutineDay, error) {
	s.lastUserID = userID
	if len(s.saved) > 0 {
		return s.saved[len(s.saved)-1], nil
	}
	return s.latest, nil
}

func TestGenerateBeginnerProducesThreeDays(t *testing.T) {
	catalog := &stubExerciseCatalog{}
	store := &stubRoutineStore{}
	service := &RoutineService{exerciseRepo: catalog, routineRepo: store}

	routine, err := service.Generate(context.Background(), 1, "Bajar de peso", "Principiante")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(routine) != 3 {
		t.Fatalf("expected 3 days for Principiante, got %d", len(routine))
	}
	for i, day := range routine {
		if day.Day != i+1 {
			t.Fatalf("expected day %d, got %d", i+1, day.Day)
		}
		// 3 body parts per day, 6/3 = 2 exercises each.
		if len(day.Exercises) != 6 {
			t.Fatalf("day %d: expected 6 exercises, got %d", day.Day, len(day.Exercises))
		}
	}
	if catalog.requests[0].bodyPart != "cardio" || catalog.requests[0].limit != 2 {
		t.Fatalf("expected first request (cardio, 2), got %+v", catalog.requests[0])
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected routine persisted once, got %d", len(store.saved))
	}
}

func TestGenerateAdvancedProducesFiveDays(t *testing.T) {
	catalog := &stubExerciseCatalog{}
	store := &stubRoutineStore{}
	service := &RoutineService{exerciseRepo: catalog, routineRepo: store}

	routine, err := service.Generate(context.Background(), 1, "Ganar masa muscular", "Avanzado")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(routine) != 5 {
		t.Fatalf("expected 5 days for Avanzado, got %d", len(routine))
	}
	for _, day := range routine {
		// 2 body parts per day, 8/2 = 4 each.
		if len(day.Exercises) != 8 {
			t.Fatalf("day %d: expected 8 exercises, got %d", day.Day, len(day.Exercises))
		}
	}
}

func TestGenerateDropsRemainderExercises(t *testing.T) {
	catalog := &stubExerciseCatalog{}
	store := &stubRoutineStore{}
	service := &RoutineService{exerciseRepo: catalog, routineRepo: store}

	// Intermedio allows 8 per day; "Bajar de peso" day 1 has 3 body
	// parts, so 8/3 = 2 each and only 6 exercises land in the day.
	routine, err := service.Generate(context.Background(), 1, "Bajar de peso", "Intermedio")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(routine) != 4 {
		t.Fatalf("expected 4 days for Intermedio, got %d", len(routine))
	}
	if len(routine[0].Exercises) != 6 {
		t.Fatalf("expected 6 exercises on day 1, got %d", len(routine[0].Exercises))
	}
	// Day 4 has 2 body parts, 8/2 = 4 each.
	if len(routine[3].Exercises) != 8 {
		t.Fatalf("expected 8 exercises on day 4, got %d", len(routine[3].Exercises))
	}
}

func TestGenerateRejectsUnknownEnums(t *testing.T) {
	service := &RoutineService{exerciseRepo: &stubExerciseCatalog{}, routineRepo: &stubRoutineStore{}}

	if _, err := service.Generate(context.Background(), 1, "Bajar de peso", "Experto"); !errors.Is(err, ErrUnknownExperienceLevel) {
		t.Fatalf("expected ErrUnknownExperienceLevel, got %v", err)
	}
	if _, err := service.Generate(context.Background(), 1, "Volar", "Principiante"); !errors.Is(err, ErrUnknownObjective) {
		t.Fatalf("expected ErrUnknownObjective, got %v", err)
	}
}

func TestGenerateAppendsAndGetLatestReturnsNewest(t *testing.T) {
	catalog := &stubExerciseCatalog{}
	store := &stubRoutineStore{}
	service := &RoutineService{exerciseRepo: catalog, routineRepo: store}

	first, err := service.Generate(context.Background(), 42, "Mantenerse en forma", "Principiante")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := service.Generate(context.Background(), 42, "Mantenerse en forma", "Principiante")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(store.saved) != 2 {
		t.Fatalf("expected both generations persisted, got %d", len(store.saved))
	}

	latest, err := service.GetLatest(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if latest[0].Exercises[0].ID != second[0].Exercises[0].ID {
		t.Fatalf("expected latest routine to be the second generation")
	}
	if first[0].Exercises[0].ID == second[0].Exercises[0].ID {
		t.Fatalf("expected distinct generations in the fixture")
	}
}

func TestGenerateCatalogFailurePersistsNothing(t *testing.T) {
	catalog := &stubExerciseCatalog{err: errors.New("db down")}
	store := &stubRoutineStore{}
	service := &RoutineService{exerciseRepo: catalog, routineRepo: store}

	if _, err := service.Generate(context.Background(), 1, "Bajar de peso", "Principiante"); err == nil {
		t.Fatalf("expected catalog error to propagate")
	}
	if len(store.saved) != 0 {
		t.Fatalf("expected no persistence on failure, got %d", len(store.saved))
	}
}
