package models

import "time"

const (
	TripOneWay = "oneway"
	TripRound  = "round"
)

type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Normalized fills the defaults used when the client omits passenger
// counts, so an explicit {adults:1} and an empty object mean the same thing.
func (p Passengers) Normalized() Passengers {
	if p.Adults < 1 {
		p.Adults = 1
	}
	if p.Children < 0 {
		p.Children = 0
	}
	if p.Infants < 0 {
		p.Infants = 0
	}
	return p
}

type SearchRequest struct {
	TripType    string     `json:"tripType"`
	Origin      string     `json:"from"`
	Destination string     `json:"to"`
	DepartDate  string     `json:"departDate"`
	ReturnDate  string     `json:"returnDate,omitempty"`
	Passengers  Passengers `json:"passengers"`
}

type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// User-facing messages are Arabic, matching the product's audience.
var (
	ErrSameCity = &ValidationError{
		Code:    "same-city",
		Message: "مدينة المغادرة والوصول يجب أن تكون مختلفة",
	}
	ErrPastDeparture = &ValidationError{
		Code:    "past-departure",
		Message: "لا يمكن اختيار تاريخ ذهاب سابق",
	}
	ErrMissingReturnDate = &ValidationError{
		Code:    "missing-return-date",
		Message: "تاريخ العودة مطلوب",
	}
	ErrReturnBeforeDeparture = &ValidationError{
		Code:    "return-before-departure",
		Message: "تاريخ العودة لا يمكن أن يكون قبل الذهاب",
	}
)

const dateLayout = "2006-01-02"

// Validate checks business rules in a fixed order, stopping at the first
// failure. now supplies "today" so callers control the clock.
func (r *SearchRequest) Validate(now time.Time) error {
	if r.Origin == r.Destination {
		return ErrSameCity
	}

	if r.DepartDate != "" {
		depart, err := time.Parse(dateLayout, r.DepartDate)
		if err != nil {
			return ErrPastDeparture
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if depart.Before(today) {
			return ErrPastDeparture
		}
	}

	if r.TripType == TripRound {
		if r.ReturnDate == "" {
			return ErrMissingReturnDate
		}
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return ErrMissingReturnDate
		}
		depart, err := time.Parse(dateLayout, r.DepartDate)
		if err == nil && ret.Before(depart) {
			return ErrReturnBeforeDeparture
		}
	}

	return nil
}
