package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimiterReusesPerEndpoint(t *testing.T) {
	l := NewEndpointLimiterWithDefaults()

	first := l.GetLimiter("/api/v1/flights/search")
	second := l.GetLimiter("/api/v1/flights/search")
	other := l.GetLimiter("/api/v1/flights/searchAirport")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestSetEndpointLimit(t *testing.T) {
	l := NewEndpointLimiterWithDefaults()
	l.SetEndpointLimit("/api/v1/flights/search", 2, 3)

	limiter := l.GetLimiter("/api/v1/flights/search")
	assert.Equal(t, float64(2), float64(limiter.Limit()))
	assert.Equal(t, 3, limiter.Burst())
}

func TestWaitWithinBurst(t *testing.T) {
	l := NewEndpointLimiter(Config{RequestsPerSecond: 1, BurstSize: 2})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, l.Wait(ctx, "/x"))
	require.NoError(t, l.Wait(ctx, "/x"))
}
