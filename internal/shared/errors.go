package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed = fmt.Errorf("invalid Genius API access token")

	// API and service errors
	ErrAPIRequest    = fmt.Errorf("API request failed")
	ErrExtraction    = fmt.Errorf("could not extract track metadata")
	ErrTrackNotFound = fmt.Errorf("no matching song found")
	ErrScrapeFailed  = fmt.Errorf("lyrics scraping failed")
	ErrMissingField  = fmt.Errorf("missing or malformed song field")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
