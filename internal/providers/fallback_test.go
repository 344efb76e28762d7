package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qarenlabs/travelsearch/internal/models"
)

func stripIDs(legs []models.FlightLeg) []models.FlightLeg {
	out := make([]models.FlightLeg, len(legs))
	for i, leg := range legs {
		leg.ID = ""
		out[i] = leg
	}
	return out
}

func TestFallbackOutboundDeterministic(t *testing.T) {
	p := NewFallbackProvider()
	ctx := context.Background()

	first, err := p.FetchOutbound(ctx, "RUH", "JED", "2026-09-10", models.Passengers{Adults: 1})
	require.NoError(t, err)
	second, err := p.FetchOutbound(ctx, "RUH", "JED", "2026-09-10", models.Passengers{Adults: 1})
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Equal(t, stripIDs(first), stripIDs(second))

	for _, leg := range first {
		require.Equal(t, "RUH", leg.Origin)
		require.Equal(t, "JED", leg.Destination)
		require.NotEmpty(t, leg.ID)
		require.Zero(t, leg.Stops)
		require.Greater(t, leg.Price, 0.0)
	}
}

func TestFallbackInboundReversesRoute(t *testing.T) {
	p := NewFallbackProvider()

	legs, err := p.FetchInbound(context.Background(), "RUH", "JED", "2026-09-15", models.Passengers{Adults: 1})
	require.NoError(t, err)
	require.Len(t, legs, 2)

	for _, leg := range legs {
		require.Equal(t, "JED", leg.Origin)
		require.Equal(t, "RUH", leg.Destination)
	}
}
