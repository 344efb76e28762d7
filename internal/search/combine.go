package search

import "github.com/qarenlabs/travelsearch/internal/models"

// Combine pairs every outbound leg with every inbound leg. Ordering is
// outbound-major so identical inputs always yield the same bundle order.
func Combine(outbound, inbound []models.FlightLeg) []models.RoundTripBundle {
	bundles := make([]models.RoundTripBundle, 0, len(outbound)*len(inbound))
	for _, out := range outbound {
		for _, in := range inbound {
			bundles = append(bundles, models.RoundTripBundle{
				Outbound: out,
				Inbound:  in,
				Price:    out.Price + in.Price,
			})
		}
	}
	return bundles
}
