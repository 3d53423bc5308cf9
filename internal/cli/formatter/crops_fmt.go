package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/intelligence"
	"github.com/alexanderramin/sprout/internal/knowledge"
)

// FormatCropList renders the knowledge base as a table.
func FormatCropList(crops []knowledge.CropEntry) string {
	if len(crops) == 0 {
		return Dim("No crops configured.") + "\n"
	}

	rows := make([][]string, len(crops))
	for i, c := range crops {
		rows[i] = []string{
			StyleDim.Render(fmt.Sprintf("%2d", i+1)),
			StyleBold.Render(c.Name),
			c.Label,
		}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Crops (%d)", len(crops))))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "NAME", "LABEL"}, rows))
	return b.String()
}

// FormatCropNames renders a compact, single-line crop list for the chat.
func FormatCropNames(crops []knowledge.CropEntry) string {
	names := make([]string, len(crops))
	for i, c := range crops {
		names[i] = c.Name
	}
	return Dim("Known crops: ") + strings.Join(names, ", ")
}

// FormatClassification renders how a question was interpreted.
func FormatClassification(c intelligence.Classification) string {
	crop := Dim("none")
	if c.Crop != nil {
		crop = StyleBold.Render(c.Crop.Name)
	}
	return fmt.Sprintf("%s %s  %s %s", Dim("intent:"), IntentBadge(c.Intent), Dim("crop:"), crop)
}

// FormatAnswer renders a one-shot answer.
func FormatAnswer(text string) string {
	return indentWrapped(text, 2, textWrapWidth) + "\n"
}
