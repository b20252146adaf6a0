package validator

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorplan-service/internal/pkg/errors"
)

type sample struct {
	Name   string `validate:"required,min=2"`
	Status string `validate:"required,apartment_status"`
	Paths  string `validate:"omitempty,coords"`
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Validate(&sample{Name: "A1", Status: "free", Paths: "0,0,10,0,10,10"})
		assert.NoError(t, err)
	})

	t.Run("field errors become app error", func(t *testing.T) {
		err := Validate(&sample{Name: "A", Status: "gone", Paths: "0,0,10,10"})
		require.Error(t, err)

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
		assert.Equal(t, "min", appErr.Details["name"])
		assert.Equal(t, "apartment_status", appErr.Details["status"])
		assert.Equal(t, "coords", appErr.Details["paths"])
	})
}
