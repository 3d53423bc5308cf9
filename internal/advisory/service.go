package advisory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/sprout/internal/weather"
)

// WeatherUnavailableText is shown in the weather region when the fetch failed.
const WeatherUnavailableText = "Weather unavailable"

// Source identifies which branch of the fallback chain produced a suggestion.
type Source string

const (
	SourceWeather  Source = "weather"
	SourceCalendar Source = "calendar"
)

// Advisory is the content of the two display regions. Weather and
// Suggestion are never empty.
type Advisory struct {
	Weather    string
	Suggestion string
	Source     Source

	// Reading is set when Source is SourceWeather.
	Reading *weather.Reading
	// Cause records why the calendar was used. Informational only.
	Cause error
}

// CalendarAdvisor supplies the offline suggestion for a point in time.
type CalendarAdvisor interface {
	CurrentMonthAdvice(now time.Time) string
}

// Service composes the weather gateway and the calendar into a
// suggestion that always resolves.
type Service struct {
	gateway  weather.Gateway
	calendar CalendarAdvisor
	city     string
}

// NewService creates a Service. A nil gateway always falls back to the
// calendar.
func NewService(gateway weather.Gateway, calendar CalendarAdvisor, city string) *Service {
	return &Service{gateway: gateway, calendar: calendar, city: city}
}

// City returns the default location used by Advise.
func (s *Service) City() string { return s.city }

// Advise fetches weather for the default city and derives a suggestion.
func (s *Service) Advise(ctx context.Context, now time.Time) Advisory {
	return s.AdviseFor(ctx, s.city, now)
}

// AdviseFor is Advise for an explicit city; an empty city means the
// default. On any gateway failure the suggestion comes from the calendar
// month of now.
func (s *Service) AdviseFor(ctx context.Context, city string, now time.Time) Advisory {
	if city == "" {
		city = s.city
	}
	if s.gateway == nil {
		return s.fromCalendar(now, weather.ErrWeatherUnavailable)
	}

	reading, err := s.gateway.Current(ctx, city)
	if err != nil {
		return s.fromCalendar(now, err)
	}
	return FromReading(reading)
}

// FromReading builds the weather branch of an Advisory. The temperature is
// rounded half-up to whole degrees before it is shown and before the rules
// see it.
func FromReading(r weather.Reading) Advisory {
	temp := roundHalfUp(r.TemperatureC)
	return Advisory{
		Weather:    fmt.Sprintf("Today in %s: %s, %d°C", r.City, r.Condition, int(temp)),
		Suggestion: Recommend(r.Condition, temp),
		Source:     SourceWeather,
		Reading:    &r,
	}
}

func (s *Service) fromCalendar(now time.Time, cause error) Advisory {
	return Advisory{
		Weather:    WeatherUnavailableText,
		Suggestion: s.calendar.CurrentMonthAdvice(now),
		Source:     SourceCalendar,
		Cause:      cause,
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
