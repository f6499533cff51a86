package models

// ErrorResponse is the standard error body returned by the API.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // error detail
}
