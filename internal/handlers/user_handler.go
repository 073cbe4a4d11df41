package handlers

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/repository"
	"github.com/percytaquila/apiGYM/pkg/utils"
)

type UserHandler struct {
	userRepo  *repository.UserRepository
	jwtSecret string
}

func NewUserHandler(userRepo *repository.UserRepository, jwtSecret string) *UserHandler {
	return &UserHandler{userRepo: userRepo, jwtSecret: jwtSecret}
}

type insertUserRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password_hash"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password_hash"`
}

type updateGoalsRequest struct {
	UsuarioID        int64   `json:"usuario_id"`
	Objetivo         *string `json:"objetivo"`
	NivelExperiencia *string `json:"nivel_experiencia"`
}

func (h *UserHandler) Insert(c *fiber.Ctx) error {
	var req insertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de la solicitud inválido"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Formato de email inválido"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if strings.TrimSpace(req.Nombre) == "" || strings.TrimSpace(req.Apellido) == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Faltan campos obligatorios"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al procesar la contraseña"})
	}

	user := &models.User{
		Nombre:       strings.TrimSpace(req.Nombre),
		Apellido:     strings.TrimSpace(req.Apellido),
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := h.userRepo.CreateUser(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "El email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al crear el usuario"})
	}

	return c.JSON(fiber.Map{"message": "Usuario creado exitosamente"})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de la solicitud inválido"})
	}

	user, err := h.userRepo.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Credenciales incorrectas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al consultar el usuario"})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Credenciales incorrectas"})
	}

	token, err := utils.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Error al generar el token"})
	}

	return c.JSON(fiber.Map{
		"message":         "Login exitoso",
		"token":           token,
		"user_id":         user.ID,
		"nombre":          user.Nombre,
		"apellido":        user.Apellido,
		"email":           user.Email,
		"datos_completos": user.DatosCompletos,
	})
}

func (h *UserHandler) UpdateGoals(c *fiber.Ctx) error {
	var req updateGoalsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de la solicitud inválido"})
	}
	if req.UsuarioID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "usuario_id inválido"})
	}

	if err := h.userRepo.UpdateGoals(c.Context(), req.UsuarioID, req.Objetivo, req.NivelExperiencia); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Error al actualizar los objetivos: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Objetivo y/o nivel actualizados exitosamente"})
}
