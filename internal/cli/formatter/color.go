package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/advisory"
	"github.com/alexanderramin/sprout/internal/intelligence"
	"github.com/charmbracelet/lipgloss"
)

// Garden palette: leaf, sun, clay, sky and bark tones.
var (
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorYellow = lipgloss.Color("#ebcb8b")
	ColorRed    = lipgloss.Color("#bf616a")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorDim    = lipgloss.Color("#7b8b7a")
	ColorFg     = lipgloss.Color("#e5e9f0")
	ColorHeader = lipgloss.Color("#d08770")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = StyleFg.Bold(true)
)

// SourceBadge returns a colored indicator of where a suggestion came from.
func SourceBadge(src advisory.Source) string {
	switch src {
	case advisory.SourceWeather:
		return StyleGreen.Render("● LIVE WEATHER")
	case advisory.SourceCalendar:
		return StyleYellow.Render("○ CALENDAR")
	default:
		return StyleDim.Render("● LOADING")
	}
}

// IntentBadge returns a colored label for a detected intent.
func IntentBadge(intent intelligence.Intent) string {
	switch intent {
	case intelligence.IntentPests:
		return StyleRed.Render("pests")
	case intelligence.IntentPlanting:
		return StyleGreen.Render("planting")
	case intelligence.IntentOverview:
		return StyleBlue.Render("overview")
	default:
		return StyleDim.Render(string(intent))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
