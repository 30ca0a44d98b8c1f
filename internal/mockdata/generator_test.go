package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/skysearch/internal/models"
)

func TestFlightsWithDestination(t *testing.T) {
	params := models.SearchParams{
		From:          "LAX",
		To:            "JFK",
		DepartureDate: "2024-01-15",
	}

	flights := Flights(params)

	assert.Len(t, flights, 1)
	f := flights[0]
	assert.Equal(t, "1", f.ID)
	assert.Equal(t, "American Airlines", f.Airline)
	assert.Equal(t, "AA123", f.FlightNumber)
	assert.Equal(t, "LAX", f.Departure.Airport)
	assert.Equal(t, "Los Angeles", f.Departure.City)
	assert.Equal(t, "08:00", f.Departure.Time)
	assert.Equal(t, "2024-01-15", f.Departure.Date)
	assert.Equal(t, "JFK", f.Arrival.Airport)
	assert.Equal(t, "New York", f.Arrival.City)
	assert.Equal(t, "16:00", f.Arrival.Time)
	assert.Equal(t, "2024-01-15", f.Arrival.Date)
	assert.Equal(t, float64(299), f.Price)
	assert.Equal(t, "8h 30m", f.Duration)
	assert.Equal(t, 0, f.Stops)
}

func TestFlightsWithoutDestination(t *testing.T) {
	params := models.SearchParams{
		From:          "LAX",
		DepartureDate: "2024-01-15",
	}

	flights := Flights(params)

	assert.Len(t, flights, 4, "listing is capped at four records")

	wantDestinations := []string{"JFK", "SFO", "ORD", "MIA"}
	for i, f := range flights {
		assert.Equal(t, wantDestinations[i], f.Arrival.Airport)
		assert.Equal(t, i%2, f.Stops, "stops alternate by position parity")
		assert.Equal(t, "8h 30m", f.Duration)
	}
}

func TestFlightsDefaultsOriginToLAX(t *testing.T) {
	params := models.SearchParams{
		To:            "JFK",
		DepartureDate: "2024-01-15",
	}

	flights := Flights(params)

	assert.Len(t, flights, 1)
	assert.Equal(t, "LAX", flights[0].Departure.Airport)
	// The city lookup still sees the empty origin, matching the original
	// listing behavior.
	assert.Equal(t, "Unknown", flights[0].Departure.City)
}

func TestFlightsIsDeterministic(t *testing.T) {
	params := models.SearchParams{
		From:          "SFO",
		To:            "SEA",
		DepartureDate: "2024-03-02",
	}

	assert.Equal(t, Flights(params), Flights(params))
}

func TestFlightsUnknownDestinationCity(t *testing.T) {
	params := models.SearchParams{
		From:          "LAX",
		To:            "ZRH",
		DepartureDate: "2024-01-15",
	}

	flights := Flights(params)

	assert.Len(t, flights, 1)
	assert.Equal(t, "ZRH", flights[0].Arrival.Airport)
	assert.Equal(t, "Unknown", flights[0].Arrival.City)
}

func TestArrivalTimeWrapsAtMidnight(t *testing.T) {
	tests := []struct {
		departure string
		want      string
	}{
		{"08:00", "16:00"},
		{"14:45", "22:45"},
		{"20:00", "04:00"},
		{"16:30", "00:30"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, arrivalTime(tt.departure), "departure %s", tt.departure)
	}
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "Chicago", CityName("ORD"))
	assert.Equal(t, "Unknown", CityName("ZZZ"))
	assert.Equal(t, "Unknown", CityName(""))
}
