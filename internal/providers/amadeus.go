package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/qarenlabs/travelsearch/internal/models"
)

const (
	amadeusTokenURL  = "https://test.api.amadeus.com/v1/security/oauth2/token"
	amadeusOffersURL = "https://test.api.amadeus.com/v2/shopping/flight-offers"

	tokenTimeout  = 20 * time.Second
	offersTimeout = 30 * time.Second

	// Refresh the bearer token this long before its declared expiry so an
	// in-flight request never races the cutoff.
	tokenExpiryMargin = 30 * time.Second
)

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	OffersURL    string
	Currency     string
	MaxResults   int
}

// AmadeusProvider talks to the Amadeus flight-offers API using a cached
// client-credentials bearer token.
type AmadeusProvider struct {
	cfg        AmadeusConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusProvider(cfg AmadeusConfig) (*AmadeusProvider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("amadeus: missing client credentials")
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = amadeusTokenURL
	}
	if cfg.OffersURL == "" {
		cfg.OffersURL = amadeusOffersURL
	}
	if cfg.Currency == "" {
		cfg.Currency = "SAR"
	}
	if cfg.MaxResults < 1 || cfg.MaxResults > 50 {
		cfg.MaxResults = 20
	}

	return &AmadeusProvider{
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		now:        time.Now,
	}, nil
}

func (p *AmadeusProvider) Name() string {
	return "amadeus"
}

func (p *AmadeusProvider) FetchOutbound(ctx context.Context, origin, destination, departDate string, pax models.Passengers) ([]models.FlightLeg, error) {
	return p.fetchOffers(ctx, origin, destination, departDate, pax)
}

func (p *AmadeusProvider) FetchInbound(ctx context.Context, origin, destination, returnDate string, pax models.Passengers) ([]models.FlightLeg, error) {
	return p.fetchOffers(ctx, destination, origin, returnDate, pax)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (p *AmadeusProvider) token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.accessToken != "" && p.now().Before(p.tokenExpiry.Add(-tokenExpiryMargin)) {
		return p.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
	}

	reqCtx, cancel := context.WithTimeout(ctx, tokenTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token exchange returned %d: %s", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", errors.New("token exchange returned empty access_token")
	}

	p.accessToken = tok.AccessToken
	p.tokenExpiry = p.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return p.accessToken, nil
}

type amadeusOffersResponse struct {
	Data []amadeusOffer `json:"data"`
}

type amadeusOffer struct {
	ID          string             `json:"id"`
	Itineraries []amadeusItinerary `json:"itineraries"`
	Price       amadeusPrice       `json:"price"`
}

type amadeusItinerary struct {
	Duration string           `json:"duration"`
	Segments []amadeusSegment `json:"segments"`
}

type amadeusSegment struct {
	CarrierCode string          `json:"carrierCode"`
	Departure   amadeusEndpoint `json:"departure"`
	Arrival     amadeusEndpoint `json:"arrival"`
}

type amadeusEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type amadeusPrice struct {
	GrandTotal string `json:"grandTotal"`
}

func (p *AmadeusProvider) fetchOffers(ctx context.Context, origin, destination, date string, pax models.Passengers) ([]models.FlightLeg, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	adults := pax.Normalized().Adults

	params := url.Values{
		"originLocationCode":      {strings.ToUpper(origin)},
		"destinationLocationCode": {strings.ToUpper(destination)},
		"departureDate":           {date},
		"adults":                  {strconv.Itoa(adults)},
		"nonStop":                 {"false"},
		"max":                     {strconv.Itoa(p.cfg.MaxResults)},
		"currencyCode":            {p.cfg.Currency},
	}

	reqCtx, cancel := context.WithTimeout(ctx, offersTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.cfg.OffersURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewProviderError(p.Name(), fmt.Errorf("flight offers returned %d: %s", resp.StatusCode, body))
	}

	var offers amadeusOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	legs := make([]models.FlightLeg, 0, len(offers.Data))
	for _, offer := range offers.Data {
		leg, ok := p.normalize(offer)
		if !ok {
			continue
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

func (p *AmadeusProvider) normalize(offer amadeusOffer) (models.FlightLeg, bool) {
	if len(offer.Itineraries) == 0 {
		return models.FlightLeg{}, false
	}

	itin := offer.Itineraries[0]
	if len(itin.Segments) == 0 {
		return models.FlightLeg{}, false
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
	if err != nil || price < 0 {
		return models.FlightLeg{}, false
	}

	return models.FlightLeg{
		ID:          offer.ID,
		Airline:     first.CarrierCode,
		Origin:      first.Departure.IataCode,
		Destination: last.Arrival.IataCode,
		DepartTime:  clockTime(first.Departure.At),
		ArriveTime:  clockTime(last.Arrival.At),
		Duration:    itin.Duration,
		Stops:       len(itin.Segments) - 1,
		Price:       price,
	}, true
}

// clockTime reduces an Amadeus local timestamp ("2025-01-10T09:10:00") to
// the wall-clock form the rest of the system uses.
func clockTime(at string) string {
	t, err := time.Parse("2006-01-02T15:04:05", at)
	if err != nil {
		return at
	}
	return t.Format("15:04")
}
