package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type FilterKind int

const (
	Equals FilterKind = iota
	OneOf
	RangeMin
	RangeMax
)

// Filter is one resolved condition. The wire format is duck-typed (a list
// means membership, price_min/price_max mean a numeric bound, anything
// else means equality); resolving that to a kind happens once here at
// parse time, never per item during matching.
type Filter struct {
	Field  string
	Kind   FilterKind
	Value  any
	Values []any
}

// ParseFilters resolves a raw filter map into tagged filters. Output is
// ordered by field name so repeated requests match in the same order.
func ParseFilters(raw map[string]any) []Filter {
	filters := make([]Filter, 0, len(raw))

	for field, value := range raw {
		switch {
		case field == "price_min":
			filters = append(filters, Filter{Field: "price", Kind: RangeMin, Value: value})
		case field == "price_max":
			filters = append(filters, Filter{Field: "price", Kind: RangeMax, Value: value})
		default:
			if values, ok := value.([]any); ok {
				filters = append(filters, Filter{Field: field, Kind: OneOf, Values: values})
			} else {
				filters = append(filters, Filter{Field: field, Kind: Equals, Value: value})
			}
		}
	}

	sort.Slice(filters, func(i, j int) bool {
		if filters[i].Field != filters[j].Field {
			return filters[i].Field < filters[j].Field
		}
		return filters[i].Kind < filters[j].Kind
	})

	return filters
}

func (f Filter) matches(item Item) bool {
	switch f.Kind {
	case RangeMin:
		bound, ok := asNumber(f.Value)
		if !ok {
			return true
		}
		price, _ := asNumber(item[f.Field])
		return price >= bound

	case RangeMax:
		bound, ok := asNumber(f.Value)
		if !ok {
			return true
		}
		price, _ := asNumber(item[f.Field])
		return price <= bound

	case OneOf:
		val, ok := item[f.Field]
		if !ok {
			return true
		}
		for _, candidate := range f.Values {
			if equalLoose(val, candidate) {
				return true
			}
		}
		return false

	default:
		val, ok := item[f.Field]
		if !ok {
			return true
		}
		return equalLoose(val, f.Value)
	}
}

// equalLoose compares values the way the filter wire format does:
// stringified, case-insensitive.
func equalLoose(a, b any) bool {
	return strings.EqualFold(fmt.Sprint(a), fmt.Sprint(b))
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
