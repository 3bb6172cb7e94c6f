// internal/vehicles/store_test.go
package vehicles

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-pricing/internal/common/logger"
)

func TestStore_MultiplierFromDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT multiplier FROM vehicle_multipliers`).
		WithArgs("Car").
		WillReturnRows(sqlmock.NewRows([]string{"multiplier"}).AddRow(1.2))

	store := NewStore(db, logger.NewNoOpLogger())

	multiplier, err := store.Multiplier(context.Background(), "Car")
	require.NoError(t, err)
	assert.Equal(t, 1.2, multiplier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MissingRowFallsBackToDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT multiplier FROM vehicle_multipliers`).
		WithArgs("TukTuk").
		WillReturnRows(sqlmock.NewRows([]string{"multiplier"}))

	store := NewStore(db, logger.NewNoOpLogger())

	multiplier, err := store.Multiplier(context.Background(), "TukTuk")
	require.NoError(t, err)
	assert.Equal(t, 0.4, multiplier)
}

func TestStore_QueryErrorIsReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT multiplier FROM vehicle_multipliers`).
		WithArgs("Van").
		WillReturnError(errors.New("connection reset"))

	store := NewStore(db, logger.NewNoOpLogger())

	_, err = store.Multiplier(context.Background(), "Van")
	assert.Error(t, err)
}

func TestStore_NilDatabaseServesDefaults(t *testing.T) {
	store := NewStore(nil, logger.NewNoOpLogger())
	ctx := context.Background()

	tests := []struct {
		vehicleType string
		expected    float64
	}{
		{"Bike", 0.3},
		{"TukTuk", 0.4},
		{"Car", 1.0},
		{"Van", 1.3},
		{"SUV", 1.5},
		{"MiniBus", 1.8},
		{"LargeBus", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.vehicleType, func(t *testing.T) {
			multiplier, err := store.Multiplier(ctx, tt.vehicleType)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, multiplier)
		})
	}
}

func TestStore_UnknownTypeUsesNeutralMultiplier(t *testing.T) {
	store := NewStore(nil, logger.NewNoOpLogger())

	for _, vehicleType := range []string{"Helicopter", "", "car"} {
		multiplier, err := store.Multiplier(context.Background(), vehicleType)
		require.NoError(t, err)
		assert.Equal(t, UnknownTypeMultiplier, multiplier, "type %q", vehicleType)
	}
}

func TestDefaultMultiplier(t *testing.T) {
	m, ok := DefaultMultiplier("SUV")
	assert.True(t, ok)
	assert.Equal(t, 1.5, m)

	_, ok = DefaultMultiplier("Helicopter")
	assert.False(t, ok)
}
