// Package mockdata synthesizes plausible flight records from search
// parameters. It backs the whole pipeline when no API key is configured and
// is the fallback when the live path fails; the generator itself has no
// idea which, and must stay a pure function of its input so both contexts
// are fully deterministic.
package mockdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dharmasatrya/skysearch/internal/models"
)

// maxFlights caps the no-destination listing.
const maxFlights = 4

const (
	defaultOrigin = "LAX"
	flightTime    = "8h 30m"
	// Every generated flight is an eight hour hop; arrival wraps at
	// midnight, minutes carry unchanged.
	flightHours = 8
)

// popularDestinations is consumed in order when the search has no
// destination.
var popularDestinations = []string{"JFK", "SFO", "ORD", "MIA", "DFW", "ATL", "DEN", "LAS", "SEA"}

// The four parallel arrays below are indexed position mod 4.
var (
	airlines      = []string{"American Airlines", "Delta Airlines", "United Airlines", "Southwest Airlines"}
	flightNumbers = []string{"AA123", "DL456", "UA789", "WN101"}
	times         = []string{"08:00", "10:15", "12:30", "14:45"}
	prices        = []float64{299, 275, 320, 245}
)

var cities = map[string]string{
	"LAX": "Los Angeles",
	"JFK": "New York",
	"SFO": "San Francisco",
	"ORD": "Chicago",
	"MIA": "Miami",
	"DFW": "Dallas",
	"ATL": "Atlanta",
	"DEN": "Denver",
	"LAS": "Las Vegas",
	"SEA": "Seattle",
}

// Flights generates mock flight records for a search. A non-empty
// destination produces exactly one record for it; an empty destination
// produces one record per popular destination, capped at four.
func Flights(params models.SearchParams) []models.Flight {
	destinations := popularDestinations
	if params.To != "" {
		destinations = []string{params.To}
	}

	origin := params.From
	if origin == "" {
		origin = defaultOrigin
	}

	flights := make([]models.Flight, 0, maxFlights)
	for i, dest := range destinations {
		if i >= maxFlights {
			break
		}

		depTime := times[i%len(times)]
		flights = append(flights, models.Flight{
			ID:           strconv.Itoa(i + 1),
			Airline:      airlines[i%len(airlines)],
			FlightNumber: flightNumbers[i%len(flightNumbers)],
			Departure: models.LegEndpoint{
				Airport: origin,
				City:    CityName(params.From),
				Time:    depTime,
				Date:    params.DepartureDate,
			},
			Arrival: models.LegEndpoint{
				Airport: dest,
				City:    CityName(dest),
				Time:    arrivalTime(depTime),
				Date:    params.DepartureDate,
			},
			Price:    prices[i%len(prices)],
			Duration: flightTime,
			// Even positions are direct, odd ones have a stop.
			Stops: i % 2,
		})
	}
	return flights
}

// CityName maps an airport code to its city, "Unknown" for anything not in
// the table.
func CityName(code string) string {
	if city, ok := cities[code]; ok {
		return city
	}
	return "Unknown"
}

func arrivalTime(departure string) string {
	parts := strings.SplitN(departure, ":", 2)
	if len(parts) != 2 {
		return departure
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return departure
	}
	return fmt.Sprintf("%02d:%s", (hours+flightHours)%24, parts[1])
}
