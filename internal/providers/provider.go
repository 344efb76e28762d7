package providers

import (
	"context"

	"github.com/qarenlabs/travelsearch/internal/models"
)

// OfferProvider fetches flight legs for one direction of a trip. Both
// methods take the trip's origin and destination: FetchOutbound returns
// origin→destination legs for the departure date, FetchInbound returns
// destination→origin legs for the return date.
type OfferProvider interface {
	Name() string
	FetchOutbound(ctx context.Context, origin, destination, departDate string, pax models.Passengers) ([]models.FlightLeg, error)
	FetchInbound(ctx context.Context, origin, destination, returnDate string, pax models.Passengers) ([]models.FlightLeg, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
