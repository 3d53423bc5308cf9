package cli

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/intelligence"
	"github.com/alexanderramin/sprout/internal/knowledge"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Topics offered by the question picker.
const (
	topicPlanting = "planting"
	topicPests    = "pests"
	topicBoth     = "both"
)

// pickerTheme styles huh selects with the formatter palette. Only the
// select and title styles matter since the picker has no text inputs.
func pickerTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	muted := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Focused.Base = t.Focused.Base.BorderForeground(formatter.ColorGreen)
	t.Focused.Title = formatter.StyleHeader
	t.Focused.SelectSelector = accent.SetString("❯ ")
	t.Focused.SelectedOption = accent.Bold(true)
	t.Focused.UnselectedOption = formatter.StyleFg

	t.Blurred.Title = muted
	t.Blurred.SelectSelector = muted.SetString("  ")
	t.Blurred.SelectedOption = muted
	t.Blurred.UnselectedOption = muted

	return t
}

// cropSelect returns a huh.Select over the crops in table order.
func cropSelect(crops []knowledge.CropEntry, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], len(crops))
	for i, c := range crops {
		opts[i] = huh.NewOption(c.Label, c.Name)
	}
	return huh.NewSelect[string]().
		Title("Crop").
		Options(opts...).
		Value(value)
}

// topicSelect returns a huh.Select for the advice category.
func topicSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Topic").
		Options(
			huh.NewOption("How to plant it", topicPlanting),
			huh.NewOption("Pests to watch for", topicPests),
			huh.NewOption("Both", topicBoth),
		).
		Value(value)
}

// questionForm builds the crop and topic picker used by "ask --pick".
func questionForm(crops []knowledge.CropEntry, crop, topic *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			cropSelect(crops, crop),
			topicSelect(topic),
		),
	).WithTheme(pickerTheme()).WithShowHelp(false)
}

// topicIntent maps a picker topic to the resolver intent it selects.
func topicIntent(topic string) intelligence.Intent {
	switch topic {
	case topicPests:
		return intelligence.IntentPests
	case topicPlanting:
		return intelligence.IntentPlanting
	default:
		return intelligence.IntentOverview
	}
}

// pickQuestion runs the picker and returns the chosen crop and topic as a
// classification. The selection is used as-is, without keyword detection.
func pickQuestion(app *App) (intelligence.Classification, error) {
	crops := app.Knowledge.Crops()
	if len(crops) == 0 {
		return intelligence.Classification{}, fmt.Errorf("no crops configured")
	}
	crop, topic := crops[0].Name, topicPlanting
	if err := app.runForm(questionForm(crops, &crop, &topic)); err != nil {
		return intelligence.Classification{}, err
	}
	return classifyPick(app.Knowledge, crop, topic)
}

func classifyPick(kb *knowledge.Base, crop, topic string) (intelligence.Classification, error) {
	entry, ok := kb.Lookup(crop)
	if !ok {
		return intelligence.Classification{}, fmt.Errorf("unknown crop %q", crop)
	}
	return intelligence.Classification{Intent: topicIntent(topic), Crop: &entry}, nil
}
