package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/percytaquila/apiGYM/internal/repository"
)

type TrainerHandler struct {
	trainerRepo *repository.TrainerRepository
}

func NewTrainerHandler(trainerRepo *repository.TrainerRepository) *TrainerHandler {
	return &TrainerHandler{trainerRepo: trainerRepo}
}

func (h *TrainerHandler) GetTrainers(c *fiber.Ctx) error {
	var specialty *string
	if value := c.Query("specialty"); value != "" {
		specialty = &value
	}

	trainers, err := h.trainerRepo.ListBySpecialty(c.Context(), specialty)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}

	return c.JSON(trainers)
}

func (h *TrainerHandler) GetClassDetails(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("id_horario"), 10, 64)
	if err != nil || scheduleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de horario inválido"})
	}

	details, err := h.trainerRepo.GetClassDetails(c.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Entrenador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}

	return c.JSON(details)
}
