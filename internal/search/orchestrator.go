// Package search runs a flight search end to end: validation, cache
// lookup, offer fetching, round-trip combination, cache write-back.
package search

import (
	"context"
	"time"

	"github.com/qarenlabs/travelsearch/internal/cache"
	"github.com/qarenlabs/travelsearch/internal/fingerprint"
	"github.com/qarenlabs/travelsearch/internal/models"
	"github.com/qarenlabs/travelsearch/internal/providers"
)

type Orchestrator struct {
	provider providers.OfferProvider
	cache    cache.ResultCache
	now      func() time.Time
}

func NewOrchestrator(provider providers.OfferProvider, resultCache cache.ResultCache) *Orchestrator {
	return NewOrchestratorWithClock(provider, resultCache, time.Now)
}

func NewOrchestratorWithClock(provider providers.OfferProvider, resultCache cache.ResultCache, now func() time.Time) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		cache:    resultCache,
		now:      now,
	}
}

// Search is the single entry point for the request-handling layer. A fresh
// cache hit returns without touching the offer provider; a miss fetches,
// combines, and writes the result back under the request fingerprint so
// identical searches inside the TTL window are served from cache.
func (o *Orchestrator) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	if err := req.Validate(o.now()); err != nil {
		return nil, err
	}

	key := fingerprint.Key(req)
	if result, found := o.cache.Get(ctx, key); found {
		return result, nil
	}

	var result *models.SearchResult
	if req.TripType == models.TripRound {
		outbound, inbound, err := o.fetchRoundTrip(ctx, req)
		if err != nil {
			return nil, err
		}
		result = &models.SearchResult{
			Type:    models.TripRound,
			Bundles: Combine(outbound, inbound),
		}
	} else {
		outbound, err := o.provider.FetchOutbound(ctx, req.Origin, req.Destination, req.DepartDate, req.Passengers)
		if err != nil {
			return nil, err
		}
		result = &models.SearchResult{
			Type:    models.TripOneWay,
			Flights: outbound,
		}
	}

	// Written even though the caller already holds the result: the cache
	// exists for the next identical request.
	_ = o.cache.Set(ctx, key, result)

	return result, nil
}

func (o *Orchestrator) fetchRoundTrip(ctx context.Context, req models.SearchRequest) ([]models.FlightLeg, []models.FlightLeg, error) {
	type legResult struct {
		legs     []models.FlightLeg
		err      error
		isReturn bool
	}

	resultCh := make(chan legResult, 2)

	go func() {
		legs, err := o.provider.FetchOutbound(ctx, req.Origin, req.Destination, req.DepartDate, req.Passengers)
		resultCh <- legResult{legs: legs, err: err, isReturn: false}
	}()

	go func() {
		legs, err := o.provider.FetchInbound(ctx, req.Origin, req.Destination, req.ReturnDate, req.Passengers)
		resultCh <- legResult{legs: legs, err: err, isReturn: true}
	}()

	var outbound, inbound []models.FlightLeg
	var outboundErr, inboundErr error

	for i := 0; i < 2; i++ {
		lr := <-resultCh
		if lr.isReturn {
			inbound = lr.legs
			inboundErr = lr.err
		} else {
			outbound = lr.legs
			outboundErr = lr.err
		}
	}

	if outboundErr != nil {
		return nil, nil, outboundErr
	}
	if inboundErr != nil {
		return nil, nil, inboundErr
	}

	return outbound, inbound, nil
}
