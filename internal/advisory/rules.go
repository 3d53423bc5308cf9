// Package advisory turns current weather, or the static calendar when the
// weather is unavailable, into a planting suggestion.
package advisory

import "strings"

// Fixed recommendations, one per rule.
const (
	HotSunny = "🌞 Hot & sunny — Best for eggplant, bitter melon, chayote, bottle gourd, and corn."
	Warm     = "🌤️ Warm but not too hot — Good for calamansi, olive trees, and corn."
	Rainy    = "🌧️ Rainy weather — Carrots and leafy crops thrive. Watch for fungal pests."
	Cool     = "❄️ Cool weather — Carrots thrive. Avoid tropical crops like eggplant or chayote."
	Mixed    = "Mixed conditions — check soil moisture and sunlight before planting."
)

const (
	hotMinC  = 28.0
	warmMinC = 20.0
)

// Recommend maps a provider condition and a Celsius temperature to one of
// the fixed recommendations. Rules are checked in order and the first match
// wins, so a clear-sky band always beats the rain rule.
func Recommend(condition string, tempC float64) string {
	cond := strings.ToLower(condition)
	clear := strings.Contains(cond, "clear")

	switch {
	case tempC >= hotMinC && clear:
		return HotSunny
	case tempC >= warmMinC && tempC < hotMinC && clear:
		return Warm
	case strings.Contains(cond, "rain"):
		return Rainy
	case tempC < warmMinC:
		return Cool
	default:
		return Mixed
	}
}
