package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qarenlabs/travelsearch/internal/models"
)

var today = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SearchRequest
		wantErr *models.ValidationError
	}{
		{
			name: "valid oneway",
			req: models.SearchRequest{
				TripType:    models.TripOneWay,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-09-10",
			},
		},
		{
			name: "valid round",
			req: models.SearchRequest{
				TripType:    models.TripRound,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-09-10",
				ReturnDate:  "2026-09-15",
			},
		},
		{
			name: "departure today is allowed",
			req: models.SearchRequest{
				TripType:    models.TripOneWay,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-08-30",
			},
		},
		{
			name: "same city",
			req: models.SearchRequest{
				TripType:    models.TripOneWay,
				Origin:      "RUH",
				Destination: "RUH",
				DepartDate:  "2026-09-10",
			},
			wantErr: models.ErrSameCity,
		},
		{
			name: "past departure",
			req: models.SearchRequest{
				TripType:    models.TripOneWay,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-08-29",
			},
			wantErr: models.ErrPastDeparture,
		},
		{
			name: "round trip without return date",
			req: models.SearchRequest{
				TripType:    models.TripRound,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-09-10",
			},
			wantErr: models.ErrMissingReturnDate,
		},
		{
			name: "return before departure",
			req: models.SearchRequest{
				TripType:    models.TripRound,
				Origin:      "RUH",
				Destination: "JED",
				DepartDate:  "2026-09-10",
				ReturnDate:  "2026-09-05",
			},
			wantErr: models.ErrReturnBeforeDeparture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(today)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Same-city must win regardless of what else is wrong with the request.
func TestValidateSameCityShortCircuits(t *testing.T) {
	req := models.SearchRequest{
		TripType:    models.TripRound,
		Origin:      "RUH",
		Destination: "RUH",
		DepartDate:  "2020-01-01",
	}
	require.ErrorIs(t, req.Validate(today), models.ErrSameCity)
}

// Past dates trip the departure rule before the return-order rule gets a
// look, so the return comparison only applies to otherwise valid requests.
func TestValidateRuleOrderOnPastDates(t *testing.T) {
	req := models.SearchRequest{
		TripType:    models.TripRound,
		Origin:      "RUH",
		Destination: "JED",
		DepartDate:  "2025-01-10",
		ReturnDate:  "2025-01-05",
	}

	require.ErrorIs(t, req.Validate(today), models.ErrPastDeparture)

	earlier := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	require.ErrorIs(t, req.Validate(earlier), models.ErrReturnBeforeDeparture)
}

func TestPassengersNormalized(t *testing.T) {
	require.Equal(t, models.Passengers{Adults: 1}, models.Passengers{}.Normalized())
	require.Equal(t,
		models.Passengers{Adults: 2, Children: 1, Infants: 1},
		models.Passengers{Adults: 2, Children: 1, Infants: 1}.Normalized())
	require.Equal(t, models.Passengers{Adults: 1}, models.Passengers{Children: -3, Infants: -1}.Normalized())
}
