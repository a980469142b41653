package feed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreOrderAndFilter(t *testing.T) {
	req := require.New(t)
	var s Store

	thought := NewItem(SourceAgent, "thought", "I should run the tests")
	action := NewItem(SourceAgent, "action", "pytest -x")
	obs := NewItem(SourceEnv, "observation", "3 passed")
	s.Add(thought)
	s.Add(action)
	s.Add(obs)

	req.Equal(3, s.Len())
	req.Equal([]Item{thought, action, obs}, s.All())
	req.Equal([]Item{thought, action}, s.Items(SourceAgent))
	req.Equal([]Item{obs}, s.Items(SourceEnv))
}

func TestStoreHighlight(t *testing.T) {
	req := require.New(t)
	var s Store

	a := NewItem(SourceEnv, "info", "hello")
	b := NewItem(SourceEnv, "info", "world")
	s.Add(a)
	s.Add(b)

	_, ok := s.Highlighted()
	req.False(ok)

	s.Highlight(b.ID)
	req.True(s.IsHighlighted(b.ID))
	req.False(s.IsHighlighted(a.ID))
	got, ok := s.Highlighted()
	req.True(ok)
	req.Equal(b, got)

	// Hovering something that is no longer in the feed clears the highlight.
	s.Highlight("gone")
	_, ok = s.Highlighted()
	req.False(ok)
	req.False(s.IsHighlighted(b.ID))
}
