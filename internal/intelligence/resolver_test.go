package intelligence

import (
	"strings"
	"testing"

	"github.com/alexanderramin/sprout/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHelp = "I can help with olive trees, carrots, eggplant, corn, calamansi, bitter melon, " +
	"chayote, bottle gourd, tomatoes, and lettuce. " +
	"Try asking like: 'How to plant carrots?' or 'Pests in eggplant?'."

func testResolver(t *testing.T) (*Resolver, *knowledge.Base) {
	t.Helper()
	kb, err := knowledge.Default()
	require.NoError(t, err)
	return NewResolver(kb), kb
}

func TestResolve_PlantCarrots(t *testing.T) {
	r, kb := testResolver(t)
	carrot, _ := kb.Lookup("carrot")

	assert.Equal(t, carrot.Planting, r.Resolve("How to plant carrots?"))
}

func TestResolve_PestsInEggplant(t *testing.T) {
	r, kb := testResolver(t)
	eggplant, _ := kb.Lookup("eggplant")

	assert.Equal(t, eggplant.Pests, r.Resolve("Pests in eggplant?"))
}

func TestResolve_PestKeywordReturnsPestAdviceForEveryCrop(t *testing.T) {
	r, kb := testResolver(t)

	for _, c := range kb.Crops() {
		for _, q := range []string{
			"any pest problems with " + c.Name + "?",
			strings.ToUpper(c.Name) + " PESTS",
			c.Name + " pest, and how do I plant it",
		} {
			got := r.Resolve(q)
			// A crop earlier in the table may be embedded in this crop's
			// name, so compare against whatever crop the scan picks first.
			first, ok := kb.MatchFirst(strings.ToLower(q))
			require.True(t, ok)
			assert.Equal(t, first.Pests, got, "question %q", q)
		}
	}
}

func TestResolve_GrowAndPlantKeywords(t *testing.T) {
	r, kb := testResolver(t)
	corn, _ := kb.Lookup("corn")

	assert.Equal(t, corn.Planting, r.Resolve("when should I grow corn"))
	assert.Equal(t, corn.Planting, r.Resolve("Planting CORN"))
}

func TestResolve_CropWithoutKeywordReturnsBoth(t *testing.T) {
	r, kb := testResolver(t)
	lettuce, _ := kb.Lookup("lettuce")

	got := r.Resolve("tell me about lettuce")
	assert.Equal(t, lettuce.Planting+" Also, "+lettuce.Pests, got)
}

func TestResolve_FirstMatchWinsAcrossCrops(t *testing.T) {
	r, kb := testResolver(t)
	olive, _ := kb.Lookup("olive")

	// Lettuce is mentioned first, but olive comes first in the table.
	assert.Equal(t, olive.Pests, r.Resolve("lettuce or olive pests?"))
}

func TestResolve_NoStemming(t *testing.T) {
	r, kb := testResolver(t)

	// "tomato" is not the stored key "tomatoes", so only the generic
	// planting advice applies.
	assert.Equal(t, kb.General().Planting, r.Resolve("how do I plant a tomato"))
	tomatoes, _ := kb.Lookup("tomatoes")
	assert.Equal(t, tomatoes.Planting, r.Resolve("how do I plant tomatoes"))
}

func TestResolve_GenericFallbacks(t *testing.T) {
	r, kb := testResolver(t)

	assert.Equal(t, kb.General().Pests, r.Resolve("how do I deal with pests?"))
	assert.Equal(t, kb.General().Planting, r.Resolve("what should I plant?"))
	assert.Equal(t, kb.General().Planting, r.Resolve("Can okra GROW here?"))
}

func TestResolve_HelpForUnrecognizedInput(t *testing.T) {
	r, _ := testResolver(t)

	for _, in := range []string{"", "   ", "hello", "what's the weather?", "🌱"} {
		assert.Equal(t, wantHelp, r.Resolve(in), "input %q", in)
	}
}

func TestResolve_TotalAndNonEmpty(t *testing.T) {
	r, _ := testResolver(t)

	inputs := []string{
		"", "\x00", "\n\t", strings.Repeat("carrot", 1000),
		"\xff\xfe invalid utf8", "PEST", "plant", "grow", "pesticide for corn",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, r.Resolve(in))
		})
	}
}

func TestHelpMessage_ListsEveryCrop(t *testing.T) {
	r, kb := testResolver(t)
	msg := r.HelpMessage()

	for _, label := range kb.Labels() {
		assert.Contains(t, msg, label)
	}
}

func TestHelpMessage_CustomTable(t *testing.T) {
	kb, err := knowledge.New(
		[]knowledge.CropEntry{
			{Name: "okra", Planting: "p1", Pests: "q1"},
			{Name: "kale", Label: "kale greens", Planting: "p2", Pests: "q2"},
		},
		knowledge.General{Planting: "gp", Pests: "gq"},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "I can help with okra and kale greens.", NewResolver(kb).HelpMessage())
}

func TestClassify(t *testing.T) {
	r, _ := testResolver(t)

	tests := []struct {
		input    string
		intent   Intent
		wantCrop string
	}{
		{input: "Pests in eggplant?", intent: IntentPests, wantCrop: "eggplant"},
		{input: "How to plant carrots?", intent: IntentPlanting, wantCrop: "carrot"},
		{input: "chayote", intent: IntentOverview, wantCrop: "chayote"},
		{input: "pests everywhere", intent: IntentPests},
		{input: "grow something", intent: IntentPlanting},
		{input: "hi", intent: IntentHelp},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := r.Classify(tt.input)
			assert.Equal(t, tt.intent, c.Intent)
			if tt.wantCrop == "" {
				assert.Nil(t, c.Crop)
				return
			}
			require.NotNil(t, c.Crop)
			assert.Equal(t, tt.wantCrop, c.Crop.Name)
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil))
	assert.Equal(t, "a", joinList([]string{"a"}))
	assert.Equal(t, "a and b", joinList([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", joinList([]string{"a", "b", "c"}))
}

func TestAnswer_OverviewForCropNamesContainingKeywords(t *testing.T) {
	r, kb := testResolver(t)
	eggplant, _ := kb.Lookup("eggplant")

	got := r.Answer(Classification{Intent: IntentOverview, Crop: &eggplant})

	assert.Equal(t, eggplant.Planting+" Also, "+eggplant.Pests, got)
}

func TestAnswer_MatchesResolveForClassifiedInput(t *testing.T) {
	r, _ := testResolver(t)

	for _, q := range []string{"", "hello", "pests?", "grow", "Pests in corn?", "chayote"} {
		assert.Equal(t, r.Resolve(q), r.Answer(r.Classify(q)), q)
	}
}
