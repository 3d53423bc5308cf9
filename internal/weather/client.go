// Package weather fetches current conditions from the OpenWeatherMap
// current-weather endpoint.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 1 << 20

// Reading is a normalized current-weather observation.
type Reading struct {
	City         string
	Condition    string // provider category, e.g. "Clear", "Rain", "Clouds"
	TemperatureC float64
}

// Gateway provides current weather for a location.
type Gateway interface {
	// Current performs a single fetch. Any failure is reported as an
	// error wrapping ErrWeatherUnavailable.
	Current(ctx context.Context, city string) (Reading, error)
}

// Client implements Gateway against the OpenWeatherMap HTTP API.
// It makes exactly one request per call: no retry, no cache.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client. A nil observer discards events.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// owmCurrent is the subset of GET /data/2.5/weather the client needs.
// Pointers distinguish a missing field from a zero value.
type owmCurrent struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Current fetches conditions for city, or the configured city when empty.
func (c *Client) Current(ctx context.Context, city string) (Reading, error) {
	if strings.TrimSpace(city) == "" {
		city = c.cfg.City
	}
	start := time.Now()
	event := CallEvent{RequestID: uuid.NewString(), City: city}

	reading, status, err := c.fetch(ctx, city)

	event.LatencyMs = time.Since(start).Milliseconds()
	event.StatusCode = status
	event.Success = err == nil
	if err != nil {
		event.ErrorCode = errorCode(err)
		err = unavailable(err)
	}
	c.observer.OnFetchComplete(event)

	return reading, err
}

func (c *Client) fetch(ctx context.Context, city string) (Reading, int, error) {
	if c.cfg.APIKey == "" {
		return Reading{}, 0, ErrMissingAPIKey
	}

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(city), nil)
	if err != nil {
		return Reading{}, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return Reading{}, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Reading{}, resp.StatusCode, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out owmCurrent
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return Reading{}, resp.StatusCode, fmt.Errorf("%w: decoding body: %w", ErrInvalidResponse, err)
	}
	if out.Main == nil || out.Main.Temp == nil {
		return Reading{}, resp.StatusCode, fmt.Errorf("%w: missing main.temp", ErrInvalidResponse)
	}
	if len(out.Weather) == 0 || strings.TrimSpace(out.Weather[0].Main) == "" {
		return Reading{}, resp.StatusCode, fmt.Errorf("%w: missing weather[0].main", ErrInvalidResponse)
	}

	return Reading{
		City:         city,
		Condition:    out.Weather[0].Main,
		TemperatureC: *out.Main.Temp,
	}, resp.StatusCode, nil
}

func (c *Client) requestURL(city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.cfg.APIKey)
	return strings.TrimRight(c.cfg.Endpoint, "/") + "/data/2.5/weather?" + q.Encode()
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &netErr) || errors.As(err, &dnsErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_KEY"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	case isConnectionError(err):
		return "UNREACHABLE"
	case errors.As(err, new(*StatusError)):
		return "STATUS"
	default:
		return "UNKNOWN"
	}
}
