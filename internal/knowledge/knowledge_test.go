package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsTableInAuthoringOrder(t *testing.T) {
	kb, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"olive", "carrot", "eggplant", "corn", "calamansi",
		"bitter melon", "chayote", "bottle gourd", "tomatoes", "lettuce",
	}, kb.Names())
	assert.Equal(t, 10, kb.Len())
	assert.Equal(t, "olive trees", kb.Crops()[0].Label)
	assert.NotEmpty(t, kb.General().Planting)
	assert.NotEmpty(t, kb.General().Pests)
	assert.Equal(t, []string{"How to plant carrots?", "Pests in eggplant?"}, kb.Examples())
}

func TestLookup_CaseInsensitive(t *testing.T) {
	kb := MustDefault()

	entry, ok := kb.Lookup("CARROT")
	require.True(t, ok)
	assert.Equal(t, "carrot", entry.Name)
	assert.Equal(t, "Carrots grow best in loose, sandy soil. Sow seeds directly, thin seedlings, and keep soil moist.", entry.Planting)

	entry, ok = kb.Lookup("  Bitter Melon ")
	require.True(t, ok)
	assert.Equal(t, "bitter melon", entry.Name)
}

func TestLookup_NoStemming(t *testing.T) {
	kb := MustDefault()

	_, ok := kb.Lookup("carrots")
	assert.False(t, ok, "plural form is not a stored key")
	_, ok = kb.Lookup("tomato")
	assert.False(t, ok, "stored key is 'tomatoes'")
	_, ok = kb.Lookup("")
	assert.False(t, ok)
}

func TestMatchFirst_TableOrderWins(t *testing.T) {
	kb := MustDefault()

	// Position in the input is irrelevant; carrot sits above corn in the table.
	entry, ok := kb.MatchFirst("corn or carrot?")
	require.True(t, ok)
	assert.Equal(t, "carrot", entry.Name)

	entry, ok = kb.MatchFirst("lettuce and olive")
	require.True(t, ok)
	assert.Equal(t, "olive", entry.Name)

	_, ok = kb.MatchFirst("a tomato plant")
	assert.False(t, ok)
}

func TestCrops_ReturnsCopy(t *testing.T) {
	kb := MustDefault()
	crops := kb.Crops()
	crops[0].Pests = "mutated"

	entry, _ := kb.Lookup("olive")
	assert.NotEqual(t, "mutated", entry.Pests)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "empty document",
			yaml:    "",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "no crops",
			yaml:    "general: {planting: p, pests: q}\n",
			wantErr: ErrEmptyTable,
		},
		{
			name: "duplicate names ignore case",
			yaml: `crops:
  - {name: Corn, planting: a, pests: b}
  - {name: corn, planting: c, pests: d}
general: {planting: p, pests: q}
`,
			wantErr: ErrDuplicateCrop,
		},
		{
			name: "blank advice",
			yaml: `crops:
  - {name: corn, planting: "", pests: b}
general: {planting: p, pests: q}
`,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "blank general advice",
			yaml: `crops:
  - {name: corn, planting: a, pests: b}
`,
			wantErr: ErrInvalidEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_NormalizesNameAndDefaultsLabel(t *testing.T) {
	kb, err := Load(strings.NewReader(`crops:
  - {name: " Okra ", planting: a, pests: b}
general: {planting: p, pests: q}
`))
	require.NoError(t, err)

	entry, ok := kb.Lookup("okra")
	require.True(t, ok)
	assert.Equal(t, "okra", entry.Name)
	assert.Equal(t, "okra", entry.Label)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("crops: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding crop table")
}
