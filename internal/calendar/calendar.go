// Package calendar provides the static month-by-month planting calendar used
// when live weather is not available.
package calendar

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed calendar.yaml
var defaultTable []byte

var (
	// ErrIncompleteCalendar indicates a table missing one or more months.
	ErrIncompleteCalendar = errors.New("calendar must define all 12 months")

	// ErrUnknownMonth indicates a month name that is not an English month.
	ErrUnknownMonth = errors.New("unknown month")

	// ErrDuplicateMonth indicates two keys naming the same month, such as
	// "January" and "jan".
	ErrDuplicateMonth = errors.New("month defined more than once")
)

// Calendar maps each calendar month to planting advice. It is immutable.
type Calendar struct {
	advice [12]string
}

type calendarFile struct {
	Months map[string]string `yaml:"months"`
}

// Default returns the calendar compiled into the binary.
func Default() (*Calendar, error) {
	return Load(bytes.NewReader(defaultTable))
}

// MustDefault is Default that panics on a malformed embedded table.
func MustDefault() *Calendar {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("calendar: embedded table: %v", err))
	}
	return c
}

// Load parses a YAML calendar keyed by English month name.
func Load(r io.Reader) (*Calendar, error) {
	var f calendarFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrIncompleteCalendar
		}
		return nil, fmt.Errorf("decoding calendar: %w", err)
	}

	c := &Calendar{}
	var seen [12]string
	for name, advice := range f.Months {
		m, err := ParseMonth(name)
		if err != nil {
			return nil, err
		}
		if prev := seen[m-1]; prev != "" {
			return nil, fmt.Errorf("%w: %s (%q and %q)", ErrDuplicateMonth, m, prev, name)
		}
		seen[m-1] = name
		c.advice[m-1] = strings.TrimSpace(advice)
	}
	for i, a := range c.advice {
		if a == "" {
			return nil, fmt.Errorf("%w: %s has no advice", ErrIncompleteCalendar, time.Month(i+1))
		}
	}
	return c, nil
}

// AdviceForMonth returns the advice for m. The second result is false for
// values outside January..December.
func (c *Calendar) AdviceForMonth(m time.Month) (string, bool) {
	if m < time.January || m > time.December {
		return "", false
	}
	return c.advice[m-1], true
}

// CurrentMonthAdvice formats the advice for the month of now. It never
// consults the wall clock.
func (c *Calendar) CurrentMonthAdvice(now time.Time) string {
	m := now.Month()
	advice, _ := c.AdviceForMonth(m)
	return fmt.Sprintf("This month (%s): %s", m, advice)
}

// ParseMonth accepts an English month name (any case, three-letter
// abbreviations allowed) or a number 1-12.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownMonth)
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %s", ErrUnknownMonth, s)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if s == full || (len(s) == 3 && strings.HasPrefix(full, s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownMonth, s)
}
