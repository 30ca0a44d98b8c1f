// Package airports resolves free-text location queries to normalized
// airport records. The remote lookup is tried once; any transport failure
// or empty result drops to a static table keyed by uppercased IATA code.
// An unknown code yields an empty list, which is a terminal outcome for
// the caller to interpret, not an error.
package airports

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/skysearch/internal/models"
	"github.com/dharmasatrya/skysearch/internal/skyapi"
)

// Lookup is the slice of the remote client the resolver needs.
type Lookup interface {
	SearchAirports(ctx context.Context, query string) (map[string]any, error)
	NearbyAirports(ctx context.Context, lat, lng float64) (map[string]any, error)
}

type Resolver struct {
	client Lookup
	log    zerolog.Logger
}

func NewResolver(client Lookup, log zerolog.Logger) *Resolver {
	return &Resolver{client: client, log: log}
}

// Resolve maps a query (IATA code or city name) to airport records. The
// query must be non-empty; validating that is the caller's job.
func (r *Resolver) Resolve(ctx context.Context, query string) []models.AirportRecord {
	body, err := r.client.SearchAirports(ctx, query)
	if err != nil {
		if skyapi.IsRateLimited(err) {
			// Called out separately so degraded search sessions caused by
			// free-tier throttling are easy to spot in the logs.
			r.log.Warn().Int("status", 429).Str("query", query).
				Msg("airport search rate limited, using static table")
		} else {
			r.log.Warn().Err(err).Str("query", query).
				Msg("airport search failed, using static table")
		}
		return r.staticLookup(query)
	}

	records := Transform(extractEntries(body))
	if len(records) == 0 {
		return r.staticLookup(query)
	}
	return records
}

// Nearby resolves airports around a coordinate pair, used to seed a
// default origin from device location. Failures degrade to an empty list.
func (r *Resolver) Nearby(ctx context.Context, lat, lng float64) []models.AirportRecord {
	body, err := r.client.NearbyAirports(ctx, lat, lng)
	if err != nil {
		if skyapi.IsRateLimited(err) {
			r.log.Warn().Int("status", 429).Msg("nearby airport lookup rate limited")
		} else {
			r.log.Warn().Err(err).Msg("nearby airport lookup failed")
		}
		return nil
	}
	return Transform(extractEntries(body))
}

func (r *Resolver) staticLookup(query string) []models.AirportRecord {
	if record, ok := staticAirports[strings.ToUpper(query)]; ok {
		return []models.AirportRecord{record}
	}
	return nil
}

// extractEntries pulls the raw airport list out of the response body,
// which nests it under data.data or just data depending on the endpoint.
func extractEntries(body map[string]any) []any {
	if inner, ok := body["data"].(map[string]any); ok {
		if list, ok := inner["data"].([]any); ok {
			return list
		}
		return nil
	}
	if list, ok := body["data"].([]any); ok {
		return list
	}
	return nil
}

// Transform normalizes raw airport entries. Each field has a tiered
// fallback: the presentation block, then the navigation block, then the sky
// ID itself for the name and empty strings for the rest. Entries without a
// sky ID carry nothing usable and are dropped.
func Transform(entries []any) []models.AirportRecord {
	records := make([]models.AirportRecord, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		skyID, _ := entry["skyId"].(string)
		if skyID == "" {
			continue
		}

		presentation, _ := entry["presentation"].(map[string]any)
		navigation, _ := entry["navigation"].(map[string]any)

		title := stringField(presentation, "title")
		localized := stringField(navigation, "localizedName")

		name := firstNonEmpty(title, localized, skyID)
		city := firstNonEmpty(localized, title)

		entityType := stringField(navigation, "entityType")
		if entityType == "" {
			entityType = "AIRPORT"
		}

		records = append(records, models.AirportRecord{
			SkyID:      skyID,
			Name:       name,
			City:       city,
			CityName:   city,
			EntityType: entityType,
			Subtitle:   stringField(presentation, "subtitle"),
		})
	}
	return records
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
