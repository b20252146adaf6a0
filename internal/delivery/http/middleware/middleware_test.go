package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/pkg/errors"
)

type staticVerifier string

func (v staticVerifier) Verify(password string) error {
	if password == "" || password != string(v) {
		return errors.ErrInvalidPassword
	}
	return nil
}

func newAdminApp() *fiber.App {
	app := fiber.New()
	app.Use(Logger(zap.NewNop()))
	app.Delete("/items/:id", AdminPassword(staticVerifier("secret")), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAdminPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{name: "missing header", password: "", want: fiber.StatusForbidden},
		{name: "wrong password", password: "guess", want: fiber.StatusForbidden},
		{name: "correct password", password: "secret", want: fiber.StatusNoContent},
	}

	app := newAdminApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodDelete, "/items/1", nil)
			if tt.password != "" {
				req.Header.Set(AdminPasswordHeader, tt.password)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestCORS_AllowsAdminHeader(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("http://localhost:3000"))
	app.Delete("/items/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodOptions, "/items/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", fiber.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", AdminPasswordHeader)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), AdminPasswordHeader)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	app := fiber.New()
	app.Use(Recovery(zap.NewNop()))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
