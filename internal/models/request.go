package models

// SearchParams carries one flight-search request. From and To are free text
// (an IATA code or a city name); resolution to a canonical code happens in
// the airport resolver, never before.
type SearchParams struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    *string `json:"returnDate,omitempty"`
	Passengers    int     `json:"passengers,omitempty"`
	CabinClass    string  `json:"class,omitempty"`
	IsRoundTrip   bool    `json:"isRoundTrip,omitempty"`
}

// Validate checks the required fields and fills defaults for the optional
// ones. Missing endpoints are the one failure that is reported to the user
// directly instead of degrading to mock data.
func (p *SearchParams) Validate() error {
	if p.From == "" || p.To == "" {
		return ErrMissingEndpoints
	}
	if p.Passengers <= 0 {
		p.Passengers = 1
	}
	if p.CabinClass == "" {
		p.CabinClass = "economy"
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingEndpoints ValidationError = "please fill in both departure and destination"
)
