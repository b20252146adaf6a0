package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/pkg/validator"
)

// paramID читает положительный int64 из пути
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			name: "must be a positive integer",
		})
	}
	return id, nil
}

// parseBody разбирает JSON тело и валидирует его
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		})
	}
	return validator.Validate(out)
}
