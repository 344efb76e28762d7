// Package fingerprint derives stable cache keys from search requests.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/qarenlabs/travelsearch/internal/models"
)

// Key maps a request to a deterministic cache key. Two requests that agree
// on trip type, route, dates, and effective passenger counts collide on the
// same key; passenger counts are normalized first so omitted defaults and
// explicit equal values hash identically.
//
// Currency and locale are not part of the key. If they ever become
// caller-configurable they must be added here, or cached results will be
// served across currencies.
func Key(req models.SearchRequest) string {
	pax := req.Passengers.Normalized()

	keyData := struct {
		TripType    string
		Origin      string
		Destination string
		DepartDate  string
		ReturnDate  string
		Adults      int
		Children    int
		Infants     int
	}{
		TripType:    req.TripType,
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartDate:  req.DepartDate,
		ReturnDate:  req.ReturnDate,
		Adults:      pax.Adults,
		Children:    pax.Children,
		Infants:     pax.Infants,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "search:" + hex.EncodeToString(hash[:])
}
