package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/services"
)

type nutritionPlanner interface {
	GeneratePlan(ctx context.Context, input services.NutritionInput) (*services.NutritionPlan, error)
	GetLatest(ctx context.Context, userID int64) (models.MealPlan, error)
}

type NutritionHandler struct {
	nutritionService nutritionPlanner
}

func NewNutritionHandler(nutritionService nutritionPlanner) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

type nutritionPlanRequest struct {
	IDUsuario        int64   `json:"id_usuario"`
	Genero           string  `json:"genero"`
	Edad             int     `json:"edad"`
	PesoActual       float64 `json:"peso_actual"`
	Altura           float64 `json:"altura"`
	NivelExperiencia string  `json:"nivel_experiencia"`
	Objetivo         string  `json:"objetivo"`
}

func (h *NutritionHandler) GeneratePlan(c *fiber.Ctx) error {
	var req nutritionPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de la solicitud inválido"})
	}
	if req.IDUsuario <= 0 || req.Edad <= 0 || req.PesoActual <= 0 || req.Altura <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Datos biométricos inválidos"})
	}

	plan, err := h.nutritionService.GeneratePlan(c.Context(), services.NutritionInput{
		UserID:           req.IDUsuario,
		Genero:           req.Genero,
		Edad:             req.Edad,
		PesoActual:       req.PesoActual,
		Altura:           req.Altura,
		NivelExperiencia: req.NivelExperiencia,
		Objetivo:         req.Objetivo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownObjective):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Objetivo desconocido: " + req.Objetivo})
		case errors.Is(err, services.ErrUnknownExperienceLevel):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "Nivel de experiencia desconocido: " + req.NivelExperiencia})
		case errors.Is(err, services.ErrInvalidAIResponse):
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "La IA no devolvió un JSON válido. Revisa el prompt o los datos."})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "Error al generar plan: " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"calorias":        plan.Calorias,
		"macros":          plan.Macros,
		"recomendaciones": plan.Plan,
	})
}

func (h *NutritionHandler) GetDailyRecommendations(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de usuario inválido"})
	}

	plan, err := h.nutritionService.GetLatest(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al realizar la consulta: " + err.Error()})
	}
	if plan == nil {
		return c.JSON(fiber.Map{
			"message":         "No se encontraron recomendaciones para el usuario",
			"recommendations": nil,
		})
	}

	return c.JSON(fiber.Map{
		"message":         "Recomendaciones encontradas",
		"recommendations": plan,
	})
}
