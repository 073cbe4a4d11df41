package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/services"
)

type routineGenerator interface {
	Generate(ctx context.Context, userID int64, objective, experienceLevel string) ([]models.RoutineDay, error)
	GetLatest(ctx context.Context, userID int64) ([]models.RoutineDay, error)
}

type exerciseCatalogStore interface {
	ListBodyParts(ctx context.Context) ([]string, error)
	ListByBodyPart(ctx context.Context, bodyPart string) ([]models.ExerciseSummary, error)
}

type ExerciseHandler struct {
	routineService routineGenerator
	exerciseRepo   exerciseCatalogStore
}

func NewExerciseHandler(routineService routineGenerator, exerciseRepo exerciseCatalogStore) *ExerciseHandler {
	return &ExerciseHandler{routineService: routineService, exerciseRepo: exerciseRepo}
}

// Recommend generates a fresh routine for the user. Objective and
// experience level arrive as query parameters, in the deployment's
// domain language.
func (h *ExerciseHandler) Recommend(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de usuario inválido"})
	}
	objective := c.Query("objective")
	experienceLevel := c.Query("experience_level")

	routine, err := h.routineService.Generate(c.Context(), userID, objective, experienceLevel)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownObjective):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Objetivo desconocido: " + objective})
		case errors.Is(err, services.ErrUnknownExperienceLevel):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "Nivel de experiencia desconocido: " + experienceLevel})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "Error al generar la rutina: " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Rutina generada exitosamente",
		"routine": routine,
	})
}

func (h *ExerciseHandler) GetRoutine(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de usuario inválido"})
	}

	routine, err := h.routineService.GetLatest(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al consultar la rutina: " + err.Error()})
	}
	if routine == nil {
		return c.JSON(fiber.Map{
			"message": "No se encontró una rutina para el usuario",
			"routine": nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Rutina encontrada",
		"routine": routine,
	})
}

func (h *ExerciseHandler) GetBodyParts(c *fiber.Ctx) error {
	bodyParts, err := h.exerciseRepo.ListBodyParts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al obtener body parts: " + err.Error()})
	}

	return c.JSON(fiber.Map{"body_parts": bodyParts})
}

func (h *ExerciseHandler) GetByBodyPart(c *fiber.Ctx) error {
	bodyPart := c.Query("body_part")
	if bodyPart == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Se requiere body_part"})
	}

	exercises, err := h.exerciseRepo.ListByBodyPart(c.Context(), bodyPart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al obtener ejercicios: " + err.Error()})
	}

	return c.JSON(fiber.Map{"exercises": exercises})
}
