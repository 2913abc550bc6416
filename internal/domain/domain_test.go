package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirplaneCapacity(t *testing.T) {
	airplane := Airplane{Rows: 10, SeatsInRow: 6}
	assert.Equal(t, 60, airplane.Capacity())
}

func TestCrewFullName(t *testing.T) {
	crew := Crew{FirstName: "Anna", LastName: "Berg"}
	assert.Equal(t, "Anna Berg", crew.FullName())
}

func TestRouteLabel(t *testing.T) {
	route := Route{
		Source:      &Airport{Name: "Heathrow"},
		Destination: &Airport{Name: "Schiphol"},
	}
	assert.Equal(t, "Heathrow - Schiphol", route.Label())
}

func TestRouteLabel_MissingAirports(t *testing.T) {
	assert.Equal(t, " - ", Route{}.Label())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"row":  "Row must be between 1 and 10",
		"seat": "Seat must be between 1 and 6",
	}}
	assert.Equal(t, "row: Row must be between 1 and 10; seat: Seat must be between 1 and 6", err.Error())
}
