package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/qarenlabs/travelsearch/internal/models"
)

type fallbackSchedule struct {
	airline    string
	departTime string
	arriveTime string
	duration   string
	price      float64
}

// Leg content is fixed so repeated searches produce identical offers; only
// the minted IDs differ and IDs carry no search semantics.
var outboundSchedules = []fallbackSchedule{
	{airline: "فلاي أديل", departTime: "09:10", arriveTime: "11:15", duration: "PT2H5M", price: 350},
	{airline: "الخطوط السعودية", departTime: "14:30", arriveTime: "16:45", duration: "PT2H15M", price: 520},
}

var inboundSchedules = []fallbackSchedule{
	{airline: "فلاي أديل", departTime: "18:00", arriveTime: "20:05", duration: "PT2H5M", price: 360},
	{airline: "الخطوط السعودية", departTime: "21:30", arriveTime: "23:45", duration: "PT2H15M", price: 500},
}

// FallbackProvider synthesizes plausible offers when no live credentials
// are configured. It never fails.
type FallbackProvider struct{}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

func (p *FallbackProvider) Name() string {
	return "fallback"
}

func (p *FallbackProvider) FetchOutbound(ctx context.Context, origin, destination, departDate string, pax models.Passengers) ([]models.FlightLeg, error) {
	return buildLegs(outboundSchedules, origin, destination), nil
}

func (p *FallbackProvider) FetchInbound(ctx context.Context, origin, destination, returnDate string, pax models.Passengers) ([]models.FlightLeg, error) {
	return buildLegs(inboundSchedules, destination, origin), nil
}

func buildLegs(schedules []fallbackSchedule, from, to string) []models.FlightLeg {
	legs := make([]models.FlightLeg, len(schedules))
	for i, s := range schedules {
		legs[i] = models.FlightLeg{
			ID:          uuid.NewString(),
			Airline:     s.airline,
			Origin:      from,
			Destination: to,
			DepartTime:  s.departTime,
			ArriveTime:  s.arriveTime,
			Duration:    s.duration,
			Stops:       0,
			Price:       s.price,
		}
	}
	return legs
}
