package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/percytaquila/apiGYM/pkg/utils"
)

func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Falta el encabezado de autorización",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Formato del encabezado de autorización inválido",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Token inválido o expirado",
			})
		}

		c.Locals("user_id", claims.UserID)

		return c.Next()
	}
}
