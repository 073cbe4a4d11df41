package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/percytaquila/apiGYM/internal/services"
)

const maxImageSizeBytes = 10 * 1024 * 1024

type biometricEnroller interface {
	Enroll(ctx context.Context, userID int64, imageBytes []byte, fields services.BiometricFields) error
}

type BiometricHandler struct {
	biometricService biometricEnroller
}

func NewBiometricHandler(biometricService biometricEnroller) *BiometricHandler {
	return &BiometricHandler{biometricService: biometricService}
}

// Update handles the biometric enrollment request: a multipart form
// with an "imagen" file and a "data" field holding the optional profile
// fields as JSON.
func (h *BiometricHandler) Update(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "ID de usuario inválido"})
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Se requiere una imagen"})
	}
	if fileHeader.Size > maxImageSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "La imagen excede el tamaño máximo"})
	}

	var fields services.BiometricFields
	if data := c.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &fields); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "El campo data no es JSON válido"})
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al leer la imagen"})
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al leer la imagen"})
	}

	if err := h.biometricService.Enroll(c.Context(), userID, imageBytes, fields); err != nil {
		var shapeErr *services.InvalidVectorShapeError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Usuario no encontrado"})
		case errors.Is(err, services.ErrUndecodableImage):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "No se pudo decodificar la imagen."})
		case errors.Is(err, services.ErrNoFaceDetected):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"detail": "No se detectó un rostro en la imagen."})
		case errors.As(err, &shapeErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "El vector biométrico tiene un tamaño inválido: " +
					strconv.Itoa(shapeErr.Len) + ". Debe tener 128 elementos.",
			})
		case errors.Is(err, services.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "No hay datos para actualizar"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"detail": "Error al procesar el vector biométrico: " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Usuario actualizado exitosamente"})
}
