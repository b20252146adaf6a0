package usecase

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/floorplan-service/internal/pkg/errors"
)

// AdminGuard проверяет пароль админки перед деструктивными операциями
type AdminGuard struct {
	hash   []byte
	logger *zap.Logger
}

// NewAdminGuard создает проверку по bcrypt-хешу.
// С пустым хешем любые деструктивные операции запрещены.
func NewAdminGuard(passwordHash string, logger *zap.Logger) *AdminGuard {
	if passwordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is not set, destructive actions are disabled")
	}
	return &AdminGuard{
		hash:   []byte(passwordHash),
		logger: logger,
	}
}

// Verify сверяет пароль с хешем
func (g *AdminGuard) Verify(password string) error {
	if len(g.hash) == 0 || password == "" {
		return errors.ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		g.logger.Warn("Admin password rejected", zap.Error(err))
		return errors.ErrInvalidPassword
	}
	return nil
}

// HashPassword - bcrypt-хеш для ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
