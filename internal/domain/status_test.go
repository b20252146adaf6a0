package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApartmentStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected ApartmentStatus
		ok       bool
	}{
		{"available", StatusAvailable, true},
		{"free", StatusAvailable, true},
		{" Reserved ", StatusReserved, true},
		{"booked", StatusReserved, true},
		{"SOLD", StatusSold, true},
		{"demolished", StatusUnknown, false},
		{"", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, ok := ParseApartmentStatus(tt.raw)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestApartmentStatus_JSON(t *testing.T) {
	var apartment struct {
		Status ApartmentStatus `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"free"}`), &apartment))
	assert.Equal(t, StatusAvailable, apartment.Status)

	err := json.Unmarshal([]byte(`{"status":"on-hold"}`), &apartment)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"unknown"}`), &apartment))
	assert.Equal(t, StatusUnknown, apartment.Status)

	data, err := json.Marshal(struct {
		Status ApartmentStatus `json:"status"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unknown"}`, string(data))
}

func TestApartmentStatus_Scan(t *testing.T) {
	var status ApartmentStatus

	require.NoError(t, status.Scan([]byte("sold")))
	assert.Equal(t, StatusSold, status)

	require.NoError(t, status.Scan("legacy-value"))
	assert.Equal(t, StatusUnknown, status)

	require.NoError(t, status.Scan(nil))
	assert.Equal(t, StatusUnknown, status)

	assert.Error(t, status.Scan(42))
}

func TestApartmentStatus_Value(t *testing.T) {
	v, err := StatusReserved.Value()
	require.NoError(t, err)
	assert.Equal(t, "reserved", v)

	_, err = StatusUnknown.Value()
	assert.Error(t, err)
}

func TestApartmentStatus_IsSelectable(t *testing.T) {
	assert.True(t, StatusAvailable.IsSelectable())
	assert.False(t, StatusReserved.IsSelectable())
	assert.False(t, StatusSold.IsSelectable())
	assert.False(t, StatusUnknown.IsSelectable())
}
