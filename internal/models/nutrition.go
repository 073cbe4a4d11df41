package models

// DailyMeals holds the four meal slots of one plan day, as generated by
// the nutrition service.
type DailyMeals struct {
	Desayuno string `json:"desayuno"`
	Almuerzo string `json:"almuerzo"`
	Cena     string `json:"cena"`
	Snack    string `json:"snack"`
}

// MealPlan maps day labels ("dia 1".."dia 4") to their meals.
type MealPlan map[string]DailyMeals

type Macros struct {
	Proteinas     float64 `json:"proteinas"`
	Carbohidratos float64 `json:"carbohidratos"`
	Grasas        float64 `json:"grasas"`
}
