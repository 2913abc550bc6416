package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewFlightRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFlightRepository(pool)
	assert.NotNil(t, repo)
}

func TestFlightFilter_Where_Empty(t *testing.T) {
	where, args := FlightFilter{}.where()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFlightFilter_Where_SingleClause(t *testing.T) {
	id := int64(7)
	where, args := FlightFilter{ID: &id}.where()

	assert.Equal(t, " WHERE f.id = $1", where)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestFlightFilter_Where_CombinedClauses(t *testing.T) {
	routeID := int64(3)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	filter := FlightFilter{RouteID: &routeID, DepartureFrom: &from, DepartureTo: &to}

	where, args := filter.where()

	assert.Equal(t, " WHERE f.route_id = $1 AND f.departure_time >= $2 AND f.departure_time < $3", where)
	assert.Equal(t, []any{int64(3), from, to}, args)
}

func TestFlightFilter_Where_HalfOpenBoundsRequireBoth(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// A lower bound without an upper bound is ignored.
	where, args := FlightFilter{DepartureFrom: &from}.where()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
