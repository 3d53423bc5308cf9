package formatter

import (
	"strings"
)

// FormatChatWelcome renders the banner shown when chat starts.
func FormatChatWelcome(examples []string) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("  sprout") + StyleDim.Render(" garden assistant"))
	b.WriteString("\n")
	b.WriteString(Dim("  Ask about planting or pests for a crop."))
	if len(examples) > 0 {
		quoted := make([]string, len(examples))
		for i, ex := range examples {
			quoted[i] = "\"" + ex + "\""
		}
		b.WriteString(Dim(" Try " + strings.Join(quoted, " or ") + "."))
	}
	b.WriteString("\n")
	b.WriteString(Dim("  /refresh updates the weather, /crops lists crops, /quit exits."))
	return b.String()
}

// FormatUserMessage renders a message typed by the user.
func FormatUserMessage(text string) string {
	return Dim("You: ") + text
}

// FormatBotMessage renders a reply, wrapped to width cells (0 disables
// wrapping) with continuation lines indented under the speaker label.
func FormatBotMessage(text string, width int) string {
	const label = "Sprout: "
	body := text
	if width > len(label)+10 {
		body = wrapText(text, width-len(label))
		body = strings.ReplaceAll(body, "\n", "\n"+strings.Repeat(" ", len(label)))
	}
	return StyleGreen.Render(label) + body
}
