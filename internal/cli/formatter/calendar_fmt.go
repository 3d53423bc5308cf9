package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/calendar"
)

// FormatCalendarYear renders all twelve months, highlighting current.
func FormatCalendarYear(cal *calendar.Calendar, current time.Month) string {
	rows := make([][]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		advice, _ := cal.AdviceForMonth(m)
		name := m.String()
		if m == current {
			name = StyleGreen.Render("▸ " + name)
		} else {
			name = "  " + name
		}
		rows = append(rows, []string{name, advice})
	}

	var b strings.Builder
	b.WriteString(Header("Planting calendar"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"  MONTH", "ADVICE"}, rows))
	return b.String()
}

// FormatMonthAdvice renders a single month's calendar line.
func FormatMonthAdvice(line string) string {
	return fmt.Sprintf("%s %s\n", StyleYellow.Render("📅"), line)
}
