package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/percytaquila/apiGYM/internal/models"
)

type stubTextGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

type stubNutritionStore struct {
	inserted   []models.MealPlan
	insertErr  error
	latest     models.MealPlan
	lastUserID int64
}

func (s *stubNutritionStore) Insert(_ context.Context, userID int64, plan models.MealPlan) error {
	s.lastUserID = userID
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, plan)
	return nil
}

func (s *stubNutritionStore) GetLatest(_ context.Context, userID int64) (models.MealPlan, error) {
	s.lastUserID = userID
	return s.latest, nil
}

func TestCalculateCaloriesMaleMaintain(t *testing.T) {
	got, err := CalculateCalories("masculino", 25, 70, 175, "Principiante", "Mantenerse en forma")
	if err != nil {
		t.Fatalf("CalculateCalories: %v", err)
	}

	// bmr = 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; * 1.2 = 2008.5
	if got != 2008.5 {
		t.Fatalf("expected 2008.5 kcal, got %v", got)
	}
}

func TestCalculateCaloriesFemaleAdjustments(t *testing.T) {
	bmr := 10*60.0 + 6.25*165 - 5*30 - 161

	lose, err := CalculateCalories("femenino", 30, 60, 165, "Intermedio", "Bajar de peso")
	if err != nil {
		t.Fatalf("CalculateCalories: %v", err)
	}
	if want := bmr*1.55 - 500; lose != want {
		t.Fatalf("expected %v kcal for Bajar de peso, got %v", want, lose)
	}

	gain, err := CalculateCalories("femenino", 30, 60, 165, "Avanzado", "Ganar masa muscular")
	if err != nil {
		t.Fatalf("CalculateCalories: %v", err)
	}
	if want := bmr*1.9 + 500; gain != want {
		t.Fatalf("expected %v kcal for Ganar masa muscular, got %v", want, gain)
	}
}

func TestCalculateCaloriesUnknownEnums(t *testing.T) {
	if _, err := CalculateCalories("masculino", 25, 70, 175, "Experto", "Mantenerse en forma"); !errors.Is(err, ErrUnknownExperienceLevel) {
		t.Fatalf("expected ErrUnknownExperienceLevel, got %v", err)
	}
	if _, err := CalculateCalories("masculino", 25, 70, 175, "Principiante", "Correr"); !errors.Is(err, ErrUnknownObjective) {
		t.Fatalf("expected ErrUnknownObjective, got %v", err)
	}
}

func TestCalculateMacrosLoseWeight(t *testing.T) {
	macros, err := CalculateMacros(2000, "Bajar de peso")
	if err != nil {
		t.Fatalf("CalculateMacros: %v", err)
	}

	if macros.Proteinas != 200 {
		t.Fatalf("expected 200g protein, got %v", macros.Proteinas)
	}
	if macros.Carbohidratos != 200 {
		t.Fatalf("expected 200g carbs, got %v", macros.Carbohidratos)
	}
	if math.Abs(macros.Grasas-44.444444444444443) > 1e-9 {
		t.Fatalf("expected ~44.44g fat, got %v", macros.Grasas)
	}
}

func TestGeneratePlanPersistsNormalizedPlan(t *testing.T) {
	generator := &stubTextGenerator{response: `{
		"dia 1": {"desayuno": "Avena\ncon fruta", "almuerzo": "Pollo", "cena": "Pescado", "snack": "Nueces"},
		"dia 2": {"desayuno": "Huevos", "almuerzo": "Arroz", "cena": "Sopa", "snack": "Yogur"},
		"dia 3": {"desayuno": "Tostadas", "almuerzo": "Pasta", "cena": "Ensalada", "snack": "Fruta"},
		"dia 4": {"desayuno": "Batido", "almuerzo": "Carne", "cena": "Verduras", "snack": "Queso"}
	}`}
	store := &stubNutritionStore{}
	service := &NutritionService{nutritionRepo: store, generator: generator}

	plan, err := service.GeneratePlan(context.Background(), NutritionInput{
		UserID:           9,
		Genero:           "masculino",
		Edad:             25,
		PesoActual:       70,
		Altura:           175,
		NivelExperiencia: "Principiante",
		Objetivo:         "Mantenerse en forma",
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.Calorias != 2008.5 {
		t.Fatalf("expected 2008.5 kcal, got %v", plan.Calorias)
	}
	if got := plan.Plan["dia 1"].Desayuno; got != "Avena con fruta" {
		t.Fatalf("expected newline collapsed to space, got %q", got)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected plan persisted once, got %d", len(store.inserted))
	}
	if store.lastUserID != 9 {
		t.Fatalf("expected persistence for user 9, got %d", store.lastUserID)
	}
	if got := store.inserted[0]["dia 1"].Desayuno; got != "Avena con fruta" {
		t.Fatalf("expected normalized text persisted, got %q", got)
	}
	if !strings.Contains(generator.lastPrompt, "Calorias calculadas: 2008.5 kcal") {
		t.Fatalf("expected computed calories in prompt, got %q", generator.lastPrompt)
	}
}

func TestGeneratePlanInvalidAIResponsePersistsNothing(t *testing.T) {
	generator := &stubTextGenerator{response: "Claro! Aqui tienes tu plan: ..."}
	store := &stubNutritionStore{}
	service := &NutritionService{nutritionRepo: store, generator: generator}

	_, err := service.GeneratePlan(context.Background(), NutritionInput{
		UserID:           9,
		Genero:           "masculino",
		Edad:             25,
		PesoActual:       70,
		Altura:           175,
		NivelExperiencia: "Principiante",
		Objetivo:         "Mantenerse en forma",
	})
	if !errors.Is(err, ErrInvalidAIResponse) {
		t.Fatalf("expected ErrInvalidAIResponse, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("expected nothing persisted on parse failure, got %d", len(store.inserted))
	}
}

func TestGeneratePlanNullResponsePersistsNothing(t *testing.T) {
	generator := &stubTextGenerator{response: "null"}
	store := &stubNutritionStore{}
	service := &NutritionService{nutritionRepo: store, generator: generator}

	_, err := service.GeneratePlan(context.Background(), NutritionInput{
		UserID:           9,
		Genero:           "masculino",
		Edad:             25,
		PesoActual:       70,
		Altura:           175,
		NivelExperiencia: "Principiante",
		Objetivo:         "Mantenerse en forma",
	})
	if !errors.Is(err, ErrInvalidAIResponse) {
		t.Fatalf("expected ErrInvalidAIResponse for null plan, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("expected nothing persisted for null plan, got %d", len(store.inserted))
	}
}

func TestGeneratePlanGeneratorFailurePropagates(t *testing.T) {
	generator := &stubTextGenerator{err: errors.New("upstream down")}
	store := &stubNutritionStore{}
	service := &NutritionService{nutritionRepo: store, generator: generator}

	_, err := service.GeneratePlan(context.Background(), NutritionInput{
		UserID:           9,
		Genero:           "masculino",
		Edad:             25,
		PesoActual:       70,
		Altura:           175,
		NivelExperiencia: "Principiante",
		Objetivo:         "Mantenerse en forma",
	})
	if err == nil || err.Error() != "upstream down" {
		t.Fatalf("expected generator error to propagate, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("expected nothing persisted on generator failure")
	}
}

func TestNormalizeMealTextIsIdempotent(t *testing.T) {
	once := normalizeMealText("A\nB")
	if once != "A B" {
		t.Fatalf("expected %q, got %q", "A B", once)
	}
	if twice := normalizeMealText(once); twice != once {
		t.Fatalf("expected idempotent normalization, got %q", twice)
	}
	if got := normalizeMealText("A\r\nB"); got != "A B" {
		t.Fatalf("expected %q, got %q", "A B", got)
	}
}
