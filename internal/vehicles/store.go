// Package vehicles resolves transport cost multipliers by vehicle type.
// Multipliers live in an admin-managed postgres table; the hardcoded table
// below is the fallback when a type has no row or the database is down, and
// the whole store runs defaults-only when no database is wired at all.
package vehicles

import (
	"context"
	"database/sql"
	"errors"

	"itinerary-pricing/internal/common/logger"
)

// defaultMultipliers mirrors the admin-seeded configuration so pricing keeps
// working without the database.
var defaultMultipliers = map[string]float64{
	"Bike":     0.3,
	"TukTuk":   0.4,
	"Car":      1.0,
	"Van":      1.3,
	"SUV":      1.5,
	"MiniBus":  1.8,
	"LargeBus": 2.5,
}

// UnknownTypeMultiplier applies when a vehicle type matches neither the
// persisted store nor the default table.
const UnknownTypeMultiplier = 1.0

type Store struct {
	db     *sql.DB
	logger logger.Logger
}

// NewStore creates a multiplier store. db may be nil; the store then serves
// defaults only.
func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "vehicles"}),
	}
}

// Multiplier returns the cost multiplier for vehicleType. A missing row falls
// back to the default table silently; an unexpected query error is returned
// so the caller can apply its own fallback and log.
func (s *Store) Multiplier(ctx context.Context, vehicleType string) (float64, error) {
	if s.db != nil {
		row := s.db.QueryRowContext(ctx,
			`SELECT multiplier FROM vehicle_multipliers WHERE type = $1`, vehicleType)

		var multiplier float64
		err := row.Scan(&multiplier)
		if err == nil {
			return multiplier, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
	}

	if multiplier, ok := defaultMultipliers[vehicleType]; ok {
		return multiplier, nil
	}

	s.logger.Debug("unknown vehicle type, using neutral multiplier", map[string]interface{}{
		"vehicleType": vehicleType,
	})
	return UnknownTypeMultiplier, nil
}

// DefaultMultiplier exposes the fallback table for tests and seeding.
func DefaultMultiplier(vehicleType string) (float64, bool) {
	m, ok := defaultMultipliers[vehicleType]
	return m, ok
}
