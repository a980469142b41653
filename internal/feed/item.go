// Package feed holds the canonical representation of agent-run feed items
// and the style-bucket computation shared by the terminal and web renderers.
package feed

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Source identifies which feed an item belongs to. The feed renderer picks
// the message component based on it: environment items always carry a title
// line, agent items render their title as an inline badge when present.
type Source int

const (
	SourceEnv Source = iota
	SourceAgent
)

func (s Source) String() string {
	switch s {
	case SourceAgent:
		return "agent"
	default:
		return "env"
	}
}

// ParseSource maps a feed name back to its Source; anything unknown lands
// on the environment feed.
func ParseSource(s string) Source {
	if s == SourceAgent.String() {
		return SourceAgent
	}
	return SourceEnv
}

// Item is a single entry in an agent-run feed.
type Item struct {
	ID      string
	Feed    Source
	Format  string // visual style bucket, e.g. "thought", "action", "observation"
	Step    *int   // optional ordinal grouping items into stages of a run
	Title   string
	Message string
}

// NewItem stamps a fresh ID on an item bound for a feed.
func NewItem(src Source, format, message string) Item {
	return Item{ID: uuid.NewString(), Feed: src, Format: format, Message: message}
}

// Tokens computes the style buckets for an item: base, format, step bucket
// when a step is set, and the highlight bucket when the item is the
// highlighted one. Empty components are omitted.
func Tokens(base string, it Item, highlighted bool) []string {
	tokens := make([]string, 0, 4)
	if base != "" {
		tokens = append(tokens, base)
	}
	if it.Format != "" {
		tokens = append(tokens, it.Format)
	}
	if it.Step != nil {
		tokens = append(tokens, "step"+strconv.Itoa(*it.Step))
	}
	if highlighted {
		tokens = append(tokens, "highlight")
	}
	return tokens
}

// ClassName joins the item's style tokens into a class attribute value.
func ClassName(base string, it Item, highlighted bool) string {
	return strings.Join(Tokens(base, it, highlighted), " ")
}
