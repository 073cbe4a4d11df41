package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/repository"
)

var activityMultipliers = map[string]float64{
	"Principiante": 1.2,
	"Intermedio":   1.55,
	"Avanzado":     1.9,
}

type nutritionStore interface {
	Insert(ctx context.Context, userID int64, plan models.MealPlan) error
	GetLatest(ctx context.Context, userID int64) (models.MealPlan, error)
}

type NutritionService struct {
	nutritionRepo nutritionStore
	generator     TextGenerator
}

func NewNutritionService(nutritionRepo *repository.NutritionRepository, generator TextGenerator) *NutritionService {
	return &NutritionService{nutritionRepo: nutritionRepo, generator: generator}
}

type NutritionInput struct {
	UserID           int64
	Genero           string
	Edad             int
	PesoActual       float64
	Altura           float64
	NivelExperiencia string
	Objetivo         string
}

type NutritionPlan struct {
	Calorias float64         `json:"calorias"`
	Macros   models.Macros   `json:"macros"`
	Plan     models.MealPlan `json:"recomendaciones"`
}

// CalculateCalories computes the daily calorie target: Mifflin-St Jeor
// BMR, scaled by the activity level and shifted by the objective.
func CalculateCalories(genero string, edad int, peso, altura float64, nivelExperiencia, objetivo string) (float64, error) {
	multiplier, ok := activityMultipliers[nivelExperiencia]
	if !ok {
		return 0, ErrUnknownExperienceLevel
	}

	var bmr float64
	if genero == "masculino" {
		bmr = 10*peso + 6.25*altura - 5*float64(edad) + 5
	} else {
		bmr = 10*peso + 6.25*altura - 5*float64(edad) - 161
	}

	maintenance := bmr * multiplier
	switch objetivo {
	case "Bajar de peso":
		return maintenance - 500, nil
	case "Ganar masa muscular":
		return maintenance + 500, nil
	case "Mantenerse en forma":
		return maintenance, nil
	default:
		return 0, ErrUnknownObjective
	}
}

// CalculateMacros splits the calorie target into grams of protein,
// carbs, and fat at 4/4/9 kcal per gram.
func CalculateMacros(calorias float64, objetivo string) (models.Macros, error) {
	var proteinas, carbohidratos, grasas float64
	switch objetivo {
	case "Bajar de peso":
		proteinas, carbohidratos, grasas = 0.4, 0.4, 0.2
	case "Ganar masa muscular":
		proteinas, carbohidratos, grasas = 0.3, 0.5, 0.2
	case "Mantenerse en forma":
		proteinas, carbohidratos, grasas = 0.3, 0.4, 0.3
	default:
		return models.Macros{}, ErrUnknownObjective
	}

	return models.Macros{
		Proteinas:     calorias * proteinas / 4,
		Carbohidratos: calorias * carbohidratos / 4,
		Grasas:        calorias * grasas / 9,
	}, nil
}

// GeneratePlan computes calorie and macro targets, asks the text
// generator for a 4-day meal plan, and persists the normalized result.
// A plan is only stored after the response parses cleanly.
func (s *NutritionService) GeneratePlan(ctx context.Context, input NutritionInput) (*NutritionPlan, error) {
	calorias, err := CalculateCalories(
		input.Genero, input.Edad, input.PesoActual, input.Altura,
		input.NivelExperiencia, input.Objetivo,
	)
	if err != nil {
		return nil, err
	}

	macros, err := CalculateMacros(calorias, input.Objetivo)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.GenerateText(ctx, buildMealPrompt(input, calorias, macros))
	if err != nil {
		return nil, err
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, ErrInvalidAIResponse
	}
	// A bare JSON null unmarshals into a nil map without error.
	if plan == nil {
		return nil, ErrInvalidAIResponse
	}

	for day, meals := range plan {
		plan[day] = models.DailyMeals{
			Desayuno: normalizeMealText(meals.Desayuno),
			Almuerzo: normalizeMealText(meals.Almuerzo),
			Cena:     normalizeMealText(meals.Cena),
			Snack:    normalizeMealText(meals.Snack),
		}
	}

	if err := s.nutritionRepo.Insert(ctx, input.UserID, plan); err != nil {
		return nil, err
	}

	return &NutritionPlan{Calorias: calorias, Macros: macros, Plan: plan}, nil
}

// GetLatest returns the user's most recent stored plan, or nil when the
// user has none.
func (s *NutritionService) GetLatest(ctx context.Context, userID int64) (models.MealPlan, error) {
	return s.nutritionRepo.GetLatest(ctx, userID)
}

// normalizeMealText collapses line breaks into single spaces. Applying
// it twice is a no-op.
func normalizeMealText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

func buildMealPrompt(input NutritionInput, calorias float64, macros models.Macros) string {
	var b strings.Builder
	b.WriteString("Genera un plan alimenticio para 4 dias basado en los siguientes datos:\n")
	fmt.Fprintf(&b, "- Genero: %s\n", input.Genero)
	fmt.Fprintf(&b, "- Edad: %d\n", input.Edad)
	fmt.Fprintf(&b, "- Peso actual: %g kg\n", input.PesoActual)
	fmt.Fprintf(&b, "- Altura: %g cm\n", input.Altura)
	fmt.Fprintf(&b, "- Nivel de experiencia: %s\n", input.NivelExperiencia)
	fmt.Fprintf(&b, "- Objetivo: %s\n", input.Objetivo)
	fmt.Fprintf(&b, "- Calorias calculadas: %g kcal\n", calorias)
	fmt.Fprintf(&b, "- Macronutrientes (g): Proteinas: %g, Carbohidratos: %g, Grasas: %g\n",
		macros.Proteinas, macros.Carbohidratos, macros.Grasas)
	b.WriteString(`
Devuelve las recomendaciones en formato JSON con la siguiente estructura:
{
    "dia 1": {
        "desayuno": "Descripcion del desayuno",
        "almuerzo": "Descripcion del almuerzo",
        "cena": "Descripcion de la cena",
        "snack": "Descripcion del snack"
    },
    "dia 2": { ... },
    "dia 3": { ... },
    "dia 4": { ... }
}
No incluyas explicaciones ni introducciones, solo responde en formato JSON.
`)
	return b.String()
}
