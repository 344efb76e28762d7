// Package locations proxies the travelpayouts autocomplete service with a
// long-lived cache, since airport and city metadata changes on the scale
// of days, not minutes.
package locations

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/qarenlabs/travelsearch/internal/cache"
	"github.com/qarenlabs/travelsearch/internal/models"
)

const (
	autocompleteURL     = "https://autocomplete.travelpayouts.com/places2"
	autocompleteTimeout = 10 * time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Memory[[]models.Location]
}

func NewClient(locationCache *cache.Memory[[]models.Location]) *Client {
	return &Client{
		baseURL:    autocompleteURL,
		httpClient: &http.Client{},
		cache:      locationCache,
	}
}

type placeItem struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryName string `json:"country_name"`
}

// Suggest returns location completions for a partial query. Upstream
// trouble never surfaces to the client: any failure yields an empty list.
func (c *Client) Suggest(ctx context.Context, query string) []models.Location {
	q := strings.TrimSpace(query)
	if len(q) < 2 {
		return []models.Location{}
	}

	key := strings.ToLower(q)
	if cached, found := c.cache.Get(key); found {
		return cached
	}

	params := url.Values{
		"term":   {q},
		"locale": {"en"},
	}

	reqCtx, cancel := context.WithTimeout(ctx, autocompleteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return []models.Location{}
	}
	// The upstream rejects default Go user agents.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Autocomplete error: %v", err)
		return []models.Location{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Autocomplete status: %d", resp.StatusCode)
		return []models.Location{}
	}

	var items []placeItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		log.Printf("Autocomplete decode error: %v", err)
		return []models.Location{}
	}

	results := make([]models.Location, 0, len(items))
	for _, item := range items {
		if item.Code == "" || item.Name == "" || item.CountryName == "" {
			continue
		}
		results = append(results, models.Location{
			City: item.Name,
			IATA: item.Code,
			Slug: Slugify(item.Name) + "-" + Slugify(item.CountryName),
		})
	}

	c.cache.Set(key, results)
	return results
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(text string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(text), "-"), "-")
}
