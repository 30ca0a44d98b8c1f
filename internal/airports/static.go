package airports

import "github.com/dharmasatrya/skysearch/internal/models"

// staticAirports is the offline fallback table, keyed by uppercased IATA
// code. It covers the airports the demo data knows about plus a few common
// international hubs.
var staticAirports = map[string]models.AirportRecord{
	"LAX": {SkyID: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", CityName: "Los Angeles", EntityType: "AIRPORT"},
	"JFK": {SkyID: "JFK", Name: "John F. Kennedy International Airport", City: "New York", CityName: "New York", EntityType: "AIRPORT"},
	"SFO": {SkyID: "SFO", Name: "San Francisco International Airport", City: "San Francisco", CityName: "San Francisco", EntityType: "AIRPORT"},
	"ORD": {SkyID: "ORD", Name: "O'Hare International Airport", City: "Chicago", CityName: "Chicago", EntityType: "AIRPORT"},
	"MIA": {SkyID: "MIA", Name: "Miami International Airport", City: "Miami", CityName: "Miami", EntityType: "AIRPORT"},
	"DFW": {SkyID: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", CityName: "Dallas", EntityType: "AIRPORT"},
	"ATL": {SkyID: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", CityName: "Atlanta", EntityType: "AIRPORT"},
	"DEN": {SkyID: "DEN", Name: "Denver International Airport", City: "Denver", CityName: "Denver", EntityType: "AIRPORT"},
	"LAS": {SkyID: "LAS", Name: "McCarran International Airport", City: "Las Vegas", CityName: "Las Vegas", EntityType: "AIRPORT"},
	"SEA": {SkyID: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", CityName: "Seattle", EntityType: "AIRPORT"},
	"LHR": {SkyID: "LHR", Name: "London Heathrow Airport", City: "London", CityName: "London", EntityType: "AIRPORT"},
	"CDG": {SkyID: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", CityName: "Paris", EntityType: "AIRPORT"},
	"NRT": {SkyID: "NRT", Name: "Narita International Airport", City: "Tokyo", CityName: "Tokyo", EntityType: "AIRPORT"},
	"YYZ": {SkyID: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", CityName: "Toronto", EntityType: "AIRPORT"},
}
