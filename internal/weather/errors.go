package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrWeatherUnavailable is the only failure the gateway reports. Every
	// transport, status or decoding failure wraps it.
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrMissingAPIKey indicates no provider key was configured. It is
	// always reported wrapped in ErrWeatherUnavailable.
	ErrMissingAPIKey = errors.New("weather api key not configured")

	// ErrInvalidResponse indicates a 2xx response whose body lacks the
	// temperature or condition. Also wrapped in ErrWeatherUnavailable.
	ErrInvalidResponse = errors.New("invalid weather response")
)

func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrWeatherUnavailable, cause)
}

// StatusError records a non-2xx provider response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.Code)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}
