// Package normalize reshapes the loosely structured remote flight-search
// payload into canonical flight records. The remote API has shipped the
// itinerary list under several different nestings over time, and individual
// itineraries vary in shape, so every field is extracted through an ordered
// list of candidate paths with a terminal default. Adding support for a new
// shape means adding a path to a table, not touching control flow.
package normalize

import (
	"strconv"

	"github.com/dharmasatrya/skysearch/internal/models"
)

// A path is one candidate location for a field inside a decoded JSON value:
// string steps index objects, int steps index arrays.
type path []any

var itineraryPaths = []path{
	{"data", "data", "itineraries"},
	{"data", "itineraries"},
	{"data", "data"},
}

var (
	airlinePaths = []path{
		{"legs", 0, "carriers", "marketing", 0, "name"},
		{"airline"},
	}
	flightNumberPaths = []path{
		{"legs", 0, "carriers", "marketing", 0, "flightNumber"},
		{"flightNumber"},
	}
	originCodePaths = []path{
		{"legs", 0, "origin", "displayCode"},
		{"origin", "displayCode"},
	}
	originCityPaths = []path{
		{"legs", 0, "origin", "city"},
		{"origin", "city"},
	}
	departurePaths = []path{
		{"legs", 0, "departure"},
		{"departure"},
	}
	destinationCodePaths = []path{
		{"legs", 0, "destination", "displayCode"},
		{"destination", "displayCode"},
	}
	destinationCityPaths = []path{
		{"legs", 0, "destination", "city"},
		{"destination", "city"},
	}
	arrivalPaths = []path{
		{"legs", 0, "arrival"},
		{"arrival"},
	}
	pricePaths = []path{
		{"pricing_options", 0, "price", "amount"},
		{"price", "raw"},
		{"price"},
	}
	durationPaths = []path{
		{"legs", 0, "duration"},
		{"duration"},
	}
	stopsPaths = []path{
		{"legs", 0, "stopCount"},
		{"stops"},
	}
)

// Flights extracts the itinerary list from an already-decoded response body
// and normalizes each entry. A body with no recognizable itinerary list
// yields an empty slice; structurally missing fields never fail, they hit
// their defaults. Departure and arrival dates are always the requested
// search date, regardless of what the payload claims.
func Flights(raw map[string]any, requestedDate string) []models.Flight {
	list := itineraries(raw)

	flights := make([]models.Flight, 0, len(list))
	for i, entry := range list {
		flights = append(flights, flight(entry, i, requestedDate))
	}
	return flights
}

func itineraries(raw map[string]any) []any {
	for _, p := range itineraryPaths {
		if v, ok := dig(raw, p); ok {
			if list, ok := v.([]any); ok {
				return list
			}
		}
	}
	return nil
}

func flight(entry any, index int, requestedDate string) models.Flight {
	return models.Flight{
		ID:           "flight-" + strconv.Itoa(index),
		Airline:      firstString(entry, airlinePaths, "Unknown"),
		FlightNumber: firstString(entry, flightNumberPaths, "N/A"),
		Departure: models.LegEndpoint{
			Airport: firstString(entry, originCodePaths, ""),
			City:    firstString(entry, originCityPaths, ""),
			Time:    firstString(entry, departurePaths, ""),
			Date:    requestedDate,
		},
		Arrival: models.LegEndpoint{
			Airport: firstString(entry, destinationCodePaths, ""),
			City:    firstString(entry, destinationCityPaths, ""),
			Time:    firstString(entry, arrivalPaths, ""),
			Date:    requestedDate,
		},
		Price:    firstFloat(entry, pricePaths, 0),
		Duration: firstString(entry, durationPaths, ""),
		Stops:    firstInt(entry, stopsPaths, 0),
	}
}

// dig walks one candidate path through nested maps and slices.
func dig(v any, p path) (any, bool) {
	for _, step := range p {
		switch s := step.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				return nil, false
			}
			if v, ok = m[s]; !ok {
				return nil, false
			}
		case int:
			list, ok := v.([]any)
			if !ok || s < 0 || s >= len(list) {
				return nil, false
			}
			v = list[s]
		default:
			return nil, false
		}
	}
	return v, true
}

func firstString(entry any, paths []path, def string) string {
	for _, p := range paths {
		if v, ok := dig(entry, p); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return def
}

func firstFloat(entry any, paths []path, def float64) float64 {
	for _, p := range paths {
		if v, ok := dig(entry, p); ok {
			if f, ok := v.(float64); ok {
				return f
			}
		}
	}
	return def
}

func firstInt(entry any, paths []path, def int) int {
	for _, p := range paths {
		if v, ok := dig(entry, p); ok {
			// json.Decoder hands numbers back as float64.
			if f, ok := v.(float64); ok {
				return int(f)
			}
		}
	}
	return def
}
