// Package catalog searches the static product catalog used for non-travel
// intents.
package catalog

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/qarenlabs/travelsearch/internal/catalog/data"
)

// Item keeps the open field set of the catalog file: filters may reference
// any key an item happens to carry.
type Item map[string]any

type Catalog struct {
	items []Item
}

// Load parses the embedded catalog file.
func Load() (*Catalog, error) {
	var items []Item
	if err := json.Unmarshal(data.Products, &items); err != nil {
		return nil, err
	}
	return &Catalog{items: items}, nil
}

func NewCatalog(items []Item) *Catalog {
	return &Catalog{items: items}
}

// Search filters items by domain and the given conditions, then orders
// them according to priority (cheapest when unset or unrecognized).
func (c *Catalog) Search(domain string, filters []Filter, priority string) []Item {
	matched := make([]Item, 0)
	for _, item := range c.items {
		if d, _ := item["domain"].(string); d != domain {
			continue
		}
		if !matchesAll(item, filters) {
			continue
		}
		matched = append(matched, item)
	}

	switch priority {
	case "best_value":
		sortByBestValue(matched)
	case "top_rated":
		sort.SliceStable(matched, func(i, j int) bool {
			ri, _ := asNumber(matched[i]["rating"])
			rj, _ := asNumber(matched[j]["rating"])
			return ri > rj
		})
	default:
		sortByPrice(matched)
	}

	return matched
}

func matchesAll(item Item, filters []Filter) bool {
	for _, f := range filters {
		if !f.matches(item) {
			return false
		}
	}
	return true
}

func sortByPrice(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return priceOf(items[i]) < priceOf(items[j])
	})
}

func priceOf(item Item) float64 {
	price, ok := asNumber(item["price"])
	if !ok {
		return math.Inf(1)
	}
	return price
}

const (
	priceWeight  = 0.6
	ratingWeight = 0.4
)

// Lower score = better value
func sortByBestValue(items []Item) {
	maxPrice := 0.0
	for _, item := range items {
		if p, ok := asNumber(item["price"]); ok && p > maxPrice {
			maxPrice = p
		}
	}

	score := func(item Item) float64 {
		priceScore := 0.0
		if maxPrice > 0 {
			p, _ := asNumber(item["price"])
			priceScore = (p / maxPrice) * 100
		}
		rating, _ := asNumber(item["rating"])
		ratingScore := (5 - rating) / 5 * 100
		return priceScore*priceWeight + ratingScore*ratingWeight
	}

	sort.SliceStable(items, func(i, j int) bool {
		return score(items[i]) < score(items[j])
	})
}
