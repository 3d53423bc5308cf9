package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdviceForMonth_DefinedForAllTwelveMonths(t *testing.T) {
	cal := MustDefault()

	for m := time.January; m <= time.December; m++ {
		advice, ok := cal.AdviceForMonth(m)
		assert.True(t, ok, "month %s", m)
		assert.NotEmpty(t, advice, "month %s", m)
	}
}

func TestAdviceForMonth_UndefinedOutsideRange(t *testing.T) {
	cal := MustDefault()

	for _, m := range []time.Month{0, 13, -1, 100} {
		advice, ok := cal.AdviceForMonth(m)
		assert.False(t, ok, "month %d", m)
		assert.Empty(t, advice)
	}
}

func TestCurrentMonthAdvice_UsesSuppliedTime(t *testing.T) {
	cal := MustDefault()

	now := time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"This month (June): Rainy season — carrots, leafy crops, and tomatoes thrive. Watch for fungal diseases.",
		cal.CurrentMonthAdvice(now))

	now = time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t,
		"This month (December): Good for calamansi, chayote, and tomatoes. Avoid eggplant in cooler temps.",
		cal.CurrentMonthAdvice(now))
}

func TestLoad_RejectsIncompleteCalendar(t *testing.T) {
	_, err := Load(strings.NewReader("months:\n  January: plant things\n"))
	assert.ErrorIs(t, err, ErrIncompleteCalendar)

	_, err = Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrIncompleteCalendar)
}

func TestLoad_RejectsUnknownMonth(t *testing.T) {
	_, err := Load(strings.NewReader("months:\n  Smarch: cold\n"))
	assert.ErrorIs(t, err, ErrUnknownMonth)
}

func TestLoad_AcceptsAbbreviatedMonths(t *testing.T) {
	var b strings.Builder
	b.WriteString("months:\n")
	for m := time.January; m <= time.December; m++ {
		b.WriteString("  " + m.String()[:3] + ": advice for " + m.String() + "\n")
	}

	cal, err := Load(strings.NewReader(b.String()))
	require.NoError(t, err)

	advice, ok := cal.AdviceForMonth(time.March)
	require.True(t, ok)
	assert.Equal(t, "advice for March", advice)
}

func TestLoad_RejectsMonthDefinedTwice(t *testing.T) {
	var b strings.Builder
	b.WriteString("months:\n")
	for m := time.January; m <= time.December; m++ {
		b.WriteString("  " + m.String() + ": advice for " + m.String() + "\n")
	}
	b.WriteString("  jan: other January advice\n")

	// Map order is random, so repeat to hit both orderings.
	for i := 0; i < 20; i++ {
		_, err := Load(strings.NewReader(b.String()))
		require.ErrorIs(t, err, ErrDuplicateMonth)
		assert.Contains(t, err.Error(), "January")
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Month
		wantErr bool
	}{
		{in: "January", want: time.January},
		{in: "sep", want: time.September},
		{in: " OCTOBER ", want: time.October},
		{in: "12", want: time.December},
		{in: "1", want: time.January},
		{in: "0", wantErr: true},
		{in: "13", wantErr: true},
		{in: "ju", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
