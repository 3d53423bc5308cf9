package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/advisory"
)

// Placeholders shown before the first fetch completes.
const (
	WeatherLoadingText    = "Checking today's weather..."
	SuggestionLoadingText = "Preparing planting suggestion..."
)

// FormatAdvisoryRegions renders the two read-only display regions. A nil
// advisory renders the loading placeholders.
func FormatAdvisoryRegions(a *advisory.Advisory) string {
	weatherText, suggestionText := WeatherLoadingText, SuggestionLoadingText
	var src advisory.Source
	if a != nil {
		weatherText, suggestionText, src = a.Weather, a.Suggestion, a.Source
	}

	weatherStyle := StyleFg
	if src == advisory.SourceCalendar {
		weatherStyle = StyleYellow
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBlue.Render("Today's weather    "), weatherStyle.Render(weatherText)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleGreen.Render("Planting suggestion"), suggestionText))
	b.WriteString(fmt.Sprintf("%s  %s", Dim("Source             "), SourceBadge(src)))
	return b.String()
}

// FormatAdvisory renders an advisory in a titled box for one-shot output.
// When verbose is set, the reason for a calendar fallback is included.
func FormatAdvisory(a advisory.Advisory, verbose bool) string {
	content := FormatAdvisoryRegions(&a)
	if verbose && a.Cause != nil {
		content += "\n\n" + Dim("  "+a.Cause.Error())
	}
	return RenderBox("Garden outlook", content)
}
