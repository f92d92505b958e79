package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/pkg/jwt"
)

// Locals keys para UserID e Papel no Fiber.
const (
	LocalUserID = "user_id"
	LocalPapel  = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e extrai UserID e Papel para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// RequireRole exige que o papel do token seja um dos informados.
// Usar depois de AuthMiddleware.
func RequireRole(papeis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		for _, p := range papeis {
			if papel == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPapel devolve o papel do usuário do contexto (depois do middleware de auth).
func GetPapel(c *fiber.Ctx) string {
	v := c.Locals(LocalPapel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
