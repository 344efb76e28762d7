package models

type FlightLeg struct {
	ID          string  `json:"id,omitempty"`
	Airline     string  `json:"airline"`
	Origin      string  `json:"from"`
	Destination string  `json:"to"`
	DepartTime  string  `json:"departTime"`
	ArriveTime  string  `json:"arriveTime"`
	Duration    string  `json:"duration"`
	Stops       int     `json:"stops"`
	Price       float64 `json:"price"`
}

type RoundTripBundle struct {
	Outbound FlightLeg `json:"outbound"`
	Inbound  FlightLeg `json:"inbound"`
	Price    float64   `json:"price"`
}

// SearchResult is the cached unit: either a flat list of legs (oneway)
// or a list of bundles (round), never both.
type SearchResult struct {
	Type    string            `json:"type"`
	Flights []FlightLeg       `json:"flights,omitempty"`
	Bundles []RoundTripBundle `json:"bundles,omitempty"`
}
