// Package search sequences one flight search: validate, resolve airports,
// call the remote search, normalize, and degrade to generated data when the
// live path fails or was never configured. No failure leaves this package
// as a Go error; every outcome the caller can observe is an Outcome value.
package search

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/skysearch/internal/mockdata"
	"github.com/dharmasatrya/skysearch/internal/models"
	"github.com/dharmasatrya/skysearch/internal/normalize"
	"github.com/dharmasatrya/skysearch/internal/skyapi"
)

// SourceMode selects the data source for the whole pipeline. It is fixed at
// construction so tests and callers can inject either mode deterministically
// instead of reading ambient configuration mid-search.
type SourceMode int

const (
	// ModeUnconfigured means no API key is available; every search is
	// served from generated data. This is a first-class mode, not a
	// failure.
	ModeUnconfigured SourceMode = iota
	// ModeLive runs the remote pipeline with generated data as fallback.
	ModeLive
)

func (m SourceMode) String() string {
	if m == ModeLive {
		return "live"
	}
	return "unconfigured"
}

// Phase is the terminal state a search ended in.
type Phase string

const (
	// PhaseDone: the pipeline ran to completion on its intended source.
	PhaseDone Phase = "done"
	// PhaseDegraded: the live path failed and generated data stands in.
	PhaseDegraded Phase = "degraded"
	// PhaseInvalid: the request never passed validation; nothing ran.
	PhaseInvalid Phase = "invalid"
)

// Outcome is the single value object handed to the presentation layer.
// Invariants: APIFailed implies !UsingRealAPI, and a false Success always
// carries a non-empty Error (the data may still hold generated records).
type Outcome struct {
	Success      bool            `json:"success"`
	Flights      []models.Flight `json:"data"`
	Error        string          `json:"error,omitempty"`
	UsingRealAPI bool            `json:"isUsingRealApi"`
	APIFailed    bool            `json:"apiFailed"`
	Phase        Phase           `json:"phase"`
}

// AirportResolver is the resolver surface the orchestrator consumes.
type AirportResolver interface {
	Resolve(ctx context.Context, query string) []models.AirportRecord
}

// FlightSearcher is the remote-search surface the orchestrator consumes.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, req skyapi.FlightSearchRequest) (map[string]any, error)
}

type Orchestrator struct {
	mode     SourceMode
	resolver AirportResolver
	client   FlightSearcher
	log      zerolog.Logger
}

func NewOrchestrator(mode SourceMode, resolver AirportResolver, client FlightSearcher, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		mode:     mode,
		resolver: resolver,
		client:   client,
		log:      log,
	}
}

// Configured reports whether the live remote source is in play.
func (o *Orchestrator) Configured() bool {
	return o.mode == ModeLive
}

// Mode returns the source mode fixed at construction.
func (o *Orchestrator) Mode() SourceMode {
	return o.mode
}

// SearchFlights runs one search to completion. There are no retries within
// an invocation; running the whole pipeline again is the caller's retry.
func (o *Orchestrator) SearchFlights(ctx context.Context, params models.SearchParams) Outcome {
	if err := params.Validate(); err != nil {
		// The one failure surfaced to the user instead of degraded: an
		// incomplete request gets no mock data and no remote calls.
		return Outcome{
			Success: false,
			Flights: []models.Flight{},
			Error:   err.Error(),
			Phase:   PhaseInvalid,
		}
	}

	if o.mode != ModeLive {
		return o.MockFlights(params)
	}

	origins := o.resolver.Resolve(ctx, params.From)
	destinations := o.resolver.Resolve(ctx, params.To)
	if len(origins) == 0 || len(destinations) == 0 {
		o.log.Warn().Str("from", params.From).Str("to", params.To).
			Msg("could not resolve one or both airports, serving demo data")
		return o.degraded(params, "could not find airports for the given locations, try IATA codes like LAX or JFK")
	}

	body, err := o.client.SearchFlights(ctx, skyapi.FlightSearchRequest{
		Origin:      origins[0].SkyID,
		Destination: destinations[0].SkyID,
		Date:        params.DepartureDate,
		Adults:      params.Passengers,
		CabinClass:  params.CabinClass,
	})
	if err != nil {
		if skyapi.IsRateLimited(err) {
			o.log.Warn().Int("status", 429).
				Msg("flight search rate limited, serving demo data")
		} else {
			o.log.Warn().Err(err).Msg("flight search failed, serving demo data")
		}
		return o.degraded(params, "failed to search flights, showing demo results")
	}

	flights := normalize.Flights(body, params.DepartureDate)
	if len(flights) == 0 {
		// A 200 with no recognizable itinerary list still counts as a live
		// success; only logged so empty sessions are diagnosable.
		o.log.Warn().Str("from", params.From).Str("to", params.To).
			Msg("live search returned no recognizable itineraries")
	}
	return Outcome{
		Success:      true,
		Flights:      flights,
		UsingRealAPI: true,
		Phase:        PhaseDone,
	}
}

// MockFlights serves generated data directly. It always succeeds and sets
// neither degraded flag; the unconfigured mode is intended behavior.
func (o *Orchestrator) MockFlights(params models.SearchParams) Outcome {
	return Outcome{
		Success: true,
		Flights: mockdata.Flights(params),
		Phase:   PhaseDone,
	}
}

func (o *Orchestrator) degraded(params models.SearchParams, msg string) Outcome {
	return Outcome{
		Success:   false,
		Flights:   mockdata.Flights(params),
		Error:     msg,
		APIFailed: true,
		Phase:     PhaseDegraded,
	}
}
