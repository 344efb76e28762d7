package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qarenlabs/travelsearch/internal/fingerprint"
	"github.com/qarenlabs/travelsearch/internal/models"
)

func baseRequest() models.SearchRequest {
	return models.SearchRequest{
		TripType:    models.TripRound,
		Origin:      "RUH",
		Destination: "JED",
		DepartDate:  "2026-09-10",
		ReturnDate:  "2026-09-15",
		Passengers:  models.Passengers{Adults: 1},
	}
}

func TestKeyDeterministic(t *testing.T) {
	req := baseRequest()
	require.Equal(t, fingerprint.Key(req), fingerprint.Key(req))
}

func TestKeyDefaultsCollideWithExplicitValues(t *testing.T) {
	explicit := baseRequest()
	explicit.Passengers = models.Passengers{Adults: 1, Children: 0, Infants: 0}

	omitted := baseRequest()
	omitted.Passengers = models.Passengers{}

	require.Equal(t, fingerprint.Key(explicit), fingerprint.Key(omitted))
}

func TestKeyChangesWithEverySemanticField(t *testing.T) {
	base := baseRequest()
	baseKey := fingerprint.Key(base)

	variants := map[string]models.SearchRequest{}

	v := base
	v.TripType = models.TripOneWay
	variants["tripType"] = v

	v = base
	v.Origin = "DMM"
	variants["origin"] = v

	v = base
	v.Destination = "MED"
	variants["destination"] = v

	v = base
	v.DepartDate = "2026-09-11"
	variants["departDate"] = v

	v = base
	v.ReturnDate = "2026-09-16"
	variants["returnDate"] = v

	v = base
	v.Passengers.Adults = 2
	variants["adults"] = v

	v = base
	v.Passengers.Children = 1
	variants["children"] = v

	v = base
	v.Passengers.Infants = 1
	variants["infants"] = v

	for field, req := range variants {
		require.NotEqual(t, baseKey, fingerprint.Key(req), "changing %s must change the key", field)
	}
}
