package models

import "encoding/json"

// AirportRecord is an airport resolved from a free-text query. The remote
// provider's sky ID is the canonical identifier; the IATA code and display
// code it reports are always the same value, so they are derived accessors
// rather than independently settable fields.
type AirportRecord struct {
	SkyID      string `json:"skyId"`
	Name       string `json:"name"`
	City       string `json:"city"`
	CityName   string `json:"cityName"`
	EntityType string `json:"entityType"`
	Subtitle   string `json:"subtitle"`
}

// IATACode is an alias for the sky ID.
func (a AirportRecord) IATACode() string { return a.SkyID }

// DisplayCode is an alias for the sky ID.
func (a AirportRecord) DisplayCode() string { return a.SkyID }

// MarshalJSON emits the aliased wire shape consumers expect, with iataCode
// and displayCode duplicated from the sky ID.
func (a AirportRecord) MarshalJSON() ([]byte, error) {
	type wire struct {
		SkyID       string `json:"skyId"`
		IATACode    string `json:"iataCode"`
		Name        string `json:"name"`
		City        string `json:"city"`
		DisplayCode string `json:"displayCode"`
		CityName    string `json:"cityName"`
		EntityType  string `json:"entityType"`
		Subtitle    string `json:"subtitle"`
	}
	return json.Marshal(wire{
		SkyID:       a.SkyID,
		IATACode:    a.SkyID,
		Name:        a.Name,
		City:        a.City,
		DisplayCode: a.SkyID,
		CityName:    a.CityName,
		EntityType:  a.EntityType,
		Subtitle:    a.Subtitle,
	})
}
