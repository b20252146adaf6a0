package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/floorplan-service/internal/pkg/utils"
)

// AdminPasswordHeader - заголовок с паролем админки
const AdminPasswordHeader = "X-Admin-Password"

// PasswordVerifier - проверка пароля админки
type PasswordVerifier interface {
	Verify(password string) error
}

// AdminPassword пропускает запрос только с верным паролем в X-Admin-Password
func AdminPassword(verifier PasswordVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := verifier.Verify(c.Get(AdminPasswordHeader)); err != nil {
			return utils.SendError(c, err)
		}
		return c.Next()
	}
}
