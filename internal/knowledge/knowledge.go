// Package knowledge holds the crop advice table the chat resolver answers from.
//
// The table is authored as YAML, loaded once at startup and never mutated
// afterwards. Crops keep their authoring order so that scans over the table
// are deterministic.
package knowledge

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed crops.yaml
var defaultTable []byte

var (
	// ErrEmptyTable indicates a crop table with no entries.
	ErrEmptyTable = errors.New("crop table has no entries")

	// ErrInvalidEntry indicates a crop entry with a blank name or blank advice.
	ErrInvalidEntry = errors.New("invalid crop entry")

	// ErrDuplicateCrop indicates two entries share the same name.
	ErrDuplicateCrop = errors.New("duplicate crop name")
)

// CropEntry is a single crop's planting and pest advice.
type CropEntry struct {
	Name     string `yaml:"name"`  // lowercase lookup key, matched as a substring
	Label    string `yaml:"label"` // display form used in help text
	Planting string `yaml:"planting"`
	Pests    string `yaml:"pests"`
}

// General holds the crop-independent fallback advice.
type General struct {
	Planting string `yaml:"planting"`
	Pests    string `yaml:"pests"`
}

type tableFile struct {
	Crops    []CropEntry `yaml:"crops"`
	General  General     `yaml:"general"`
	Examples []string    `yaml:"examples"`
}

// Base is an immutable, ordered crop table.
type Base struct {
	crops    []CropEntry
	index    map[string]int
	general  General
	examples []string
}

// Default returns the crop table compiled into the binary.
func Default() (*Base, error) {
	return Load(bytes.NewReader(defaultTable))
}

// MustDefault is Default for package-level wiring; it panics if the
// embedded table is malformed.
func MustDefault() *Base {
	kb, err := Default()
	if err != nil {
		panic(fmt.Sprintf("knowledge: embedded table: %v", err))
	}
	return kb
}

// Load parses and validates a YAML crop table.
func Load(r io.Reader) (*Base, error) {
	var f tableFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decoding crop table: %w", err)
	}
	return New(f.Crops, f.General, f.Examples)
}

// New builds a Base from already-parsed entries. Names are normalized to
// lowercase; entry order is preserved.
func New(crops []CropEntry, general General, examples []string) (*Base, error) {
	if len(crops) == 0 {
		return nil, ErrEmptyTable
	}
	if strings.TrimSpace(general.Planting) == "" || strings.TrimSpace(general.Pests) == "" {
		return nil, fmt.Errorf("%w: general advice is blank", ErrInvalidEntry)
	}

	kb := &Base{
		crops:    make([]CropEntry, 0, len(crops)),
		index:    make(map[string]int, len(crops)),
		general:  general,
		examples: append([]string(nil), examples...),
	}
	for i, c := range crops {
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
		if c.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidEntry, i)
		}
		if strings.TrimSpace(c.Planting) == "" || strings.TrimSpace(c.Pests) == "" {
			return nil, fmt.Errorf("%w: %q is missing advice", ErrInvalidEntry, c.Name)
		}
		if _, dup := kb.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCrop, c.Name)
		}
		if strings.TrimSpace(c.Label) == "" {
			c.Label = c.Name
		}
		kb.index[c.Name] = len(kb.crops)
		kb.crops = append(kb.crops, c)
	}
	return kb, nil
}

// Lookup finds a crop by exact name, ignoring case.
func (b *Base) Lookup(name string) (CropEntry, bool) {
	i, ok := b.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CropEntry{}, false
	}
	return b.crops[i], true
}

// MatchFirst returns the first crop, in table order, whose name occurs in
// lowerInput. The caller lowercases the input.
func (b *Base) MatchFirst(lowerInput string) (CropEntry, bool) {
	for _, c := range b.crops {
		if strings.Contains(lowerInput, c.Name) {
			return c, true
		}
	}
	return CropEntry{}, false
}

// Crops returns the entries in table order.
func (b *Base) Crops() []CropEntry {
	return append([]CropEntry(nil), b.crops...)
}

// Names returns the crop keys in table order.
func (b *Base) Names() []string {
	names := make([]string, len(b.crops))
	for i, c := range b.crops {
		names[i] = c.Name
	}
	return names
}

// Labels returns the crop display labels in table order.
func (b *Base) Labels() []string {
	labels := make([]string, len(b.crops))
	for i, c := range b.crops {
		labels[i] = c.Label
	}
	return labels
}

func (b *Base) General() General { return b.general }

func (b *Base) Examples() []string {
	return append([]string(nil), b.examples...)
}

func (b *Base) Len() int { return len(b.crops) }
