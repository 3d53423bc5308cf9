// Package intelligence answers free-text garden questions from the crop table.
package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/knowledge"
)

// Intent is the advice category inferred from keyword presence.
type Intent string

const (
	IntentPests    Intent = "pests"
	IntentPlanting Intent = "planting"
	IntentOverview Intent = "overview" // crop named, no keyword: planting + pests
	IntentHelp     Intent = "help"     // nothing recognized
)

// Classification explains how a reply was chosen.
type Classification struct {
	Intent Intent
	Crop   *knowledge.CropEntry // nil when no crop matched
}

// Resolver turns free-text questions into advice from a crop table.
// It is safe for concurrent use: the table is read-only.
type Resolver struct {
	kb *knowledge.Base
}

// NewResolver creates a Resolver over kb.
func NewResolver(kb *knowledge.Base) *Resolver {
	return &Resolver{kb: kb}
}

// Resolve returns the reply for a question. It never fails; unrecognized
// input (including "") gets the help message.
func (r *Resolver) Resolve(input string) string {
	return r.Answer(r.Classify(input))
}

// Answer returns the reply for an already classified question. Callers
// that know the crop and topic up front, such as the question picker,
// use it to skip keyword detection.
func (r *Resolver) Answer(c Classification) string {
	general := r.kb.General()

	if c.Crop != nil {
		switch c.Intent {
		case IntentPests:
			return c.Crop.Pests
		case IntentPlanting:
			return c.Crop.Planting
		default:
			return fmt.Sprintf("%s Also, %s", c.Crop.Planting, c.Crop.Pests)
		}
	}

	switch c.Intent {
	case IntentPests:
		return general.Pests
	case IntentPlanting:
		return general.Planting
	default:
		return r.HelpMessage()
	}
}

// Classify detects the crop and intent of a question. The first crop in
// table order that appears in the lowercased input wins, even when later
// crops are also mentioned.
func (r *Resolver) Classify(input string) Classification {
	lower := strings.ToLower(input)
	intent := keywordIntent(lower)

	crop, ok := r.kb.MatchFirst(lower)
	if !ok {
		return Classification{Intent: intent}
	}
	if intent == IntentHelp {
		intent = IntentOverview
	}
	return Classification{Intent: intent, Crop: &crop}
}

// HelpMessage lists every crop in the table with example questions.
func (r *Resolver) HelpMessage() string {
	var b strings.Builder
	b.WriteString("I can help with ")
	b.WriteString(joinList(r.kb.Labels()))
	b.WriteString(".")

	if examples := r.kb.Examples(); len(examples) > 0 {
		quoted := make([]string, len(examples))
		for i, ex := range examples {
			quoted[i] = "'" + ex + "'"
		}
		b.WriteString(" Try asking like: ")
		b.WriteString(strings.Join(quoted, " or "))
		b.WriteString(".")
	}
	return b.String()
}

func keywordIntent(lower string) Intent {
	switch {
	case strings.Contains(lower, "pest"):
		return IntentPests
	case strings.Contains(lower, "plant"), strings.Contains(lower, "grow"):
		return IntentPlanting
	default:
		return IntentHelp
	}
}

// joinList renders "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
