package models

type Location struct {
	City string `json:"city"`
	IATA string `json:"iata"`
	Slug string `json:"slug"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
