package models

const (
	IntentTravel  = "travel"
	IntentProduct = "product"
	IntentService = "service"
	IntentUnknown = "unknown"
)

// IntentResult is always structurally complete: every field is populated
// even when extraction fails, so callers can branch on Intent alone.
type IntentResult struct {
	Intent     string         `json:"intent"`
	Domain     *string        `json:"domain"`
	Entities   map[string]any `json:"entities"`
	Priority   *string        `json:"priority"`
	Confidence float64        `json:"confidence"`
}

// UnknownIntent returns the degraded result used whenever extraction
// cannot run or fails partway through.
func UnknownIntent(confidence float64) IntentResult {
	return IntentResult{
		Intent:     IntentUnknown,
		Domain:     nil,
		Entities:   map[string]any{},
		Priority:   nil,
		Confidence: confidence,
	}
}
