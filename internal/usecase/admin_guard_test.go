package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/usecase"
)

func TestAdminGuard_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	guard := usecase.NewAdminGuard(string(hash), zap.NewNop())

	assert.NoError(t, guard.Verify("s3cret"))
	assert.ErrorIs(t, guard.Verify("wrong"), apperrors.ErrInvalidPassword)
	assert.ErrorIs(t, guard.Verify(""), apperrors.ErrInvalidPassword)
}

func TestAdminGuard_EmptyHashDeniesEverything(t *testing.T) {
	guard := usecase.NewAdminGuard("", zap.NewNop())
	assert.ErrorIs(t, guard.Verify("anything"), apperrors.ErrInvalidPassword)
}

func TestHashPassword(t *testing.T) {
	hash, err := usecase.HashPassword("s3cret")
	require.NoError(t, err)

	guard := usecase.NewAdminGuard(hash, zap.NewNop())
	assert.NoError(t, guard.Verify("s3cret"))
}
