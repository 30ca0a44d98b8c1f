package models

// LegEndpoint is one side of a flight leg. Time and date are kept as the
// provider-supplied strings ("15:04" / "2006-01-02"); nothing downstream
// does calendar arithmetic on them.
type LegEndpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

// Flight is the canonical flight record handed to the presentation layer.
// IDs are unique within a single search response only.
type Flight struct {
	ID           string      `json:"id"`
	Airline      string      `json:"airline"`
	FlightNumber string      `json:"flightNumber"`
	Departure    LegEndpoint `json:"departure"`
	Arrival      LegEndpoint `json:"arrival"`
	Price        float64     `json:"price"`
	Duration     string      `json:"duration"`
	Stops        int         `json:"stops"`
}
