package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/percytaquila/apiGYM/internal/repository"
)

type ProgressHandler struct {
	progressRepo *repository.ProgressRepository
}

func NewProgressHandler(progressRepo *repository.ProgressRepository) *ProgressHandler {
	return &ProgressHandler{progressRepo: progressRepo}
}

type registerProgressRequest struct {
	UsuarioID    int64    `json:"usuario_id"`
	EjercicioID  int64    `json:"ejercicio_id"`
	Repeticiones int      `json:"repeticiones"`
	Peso         *float64 `json:"peso"`
}

func (h *ProgressHandler) Register(c *fiber.Ctx) error {
	var req registerProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de la solicitud inválido"})
	}
	if req.UsuarioID <= 0 || req.EjercicioID <= 0 || req.Repeticiones <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Datos de avance inválidos"})
	}

	if err := h.progressRepo.Create(c.Context(), req.UsuarioID, req.EjercicioID, req.Repeticiones, req.Peso); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al registrar el avance: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Avance registrado exitosamente"})
}

func (h *ProgressHandler) List(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("usuario_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de usuario inválido"})
	}

	progress, err := h.progressRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al obtener el progreso: " + err.Error()})
	}

	return c.JSON(fiber.Map{"progress": progress})
}

func (h *ProgressHandler) Delete(c *fiber.Ctx) error {
	progressID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || progressID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de registro inválido"})
	}

	deleted, err := h.progressRepo.Delete(c.Context(), progressID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al eliminar el registro: " + err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Registro no encontrado"})
	}

	return c.JSON(fiber.Map{"message": "Registro eliminado exitosamente"})
}
