package ui

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/atailhq/atail/internal/feed"
)

func TestRenderItemEnvAlwaysHasTitleLine(t *testing.T) {
	req := require.New(t)

	it := feed.NewItem(feed.SourceEnv, "observation", "2 tests passed")
	it.Title = "Observation"
	lines := strings.Split(renderItem(it, false, 0), "\n")
	req.GreaterOrEqual(len(lines), 2)
	req.Contains(lines[0], "Observation")
	req.Contains(lines[1], "2 tests passed")

	// An empty title still occupies a line.
	it.Title = ""
	lines = strings.Split(renderItem(it, false, 0), "\n")
	req.GreaterOrEqual(len(lines), 2)
	req.Contains(lines[1], "2 tests passed")
}

func TestRenderItemAgentBadge(t *testing.T) {
	req := require.New(t)

	it := feed.NewItem(feed.SourceAgent, "action", "ls -la")
	it.Title = "Action"
	out := renderItem(it, false, 0)
	req.Contains(out, "Action")
	req.Contains(out, "ls -la")

	it.Title = ""
	out = renderItem(it, false, 0)
	req.NotContains(out, "Action")
	req.Contains(out, "ls -la")
}

func TestStyleForStepEdge(t *testing.T) {
	req := require.New(t)

	it := feed.Item{Format: "observation", Step: lo.ToPtr(2)}
	st := styleFor(feed.Tokens("", it, false))
	req.Equal(stepColor(2), st.GetBorderLeftForeground())

	it.Step = nil
	st = styleFor(feed.Tokens("", it, false))
	req.Equal(defaultEdge, st.GetBorderLeftForeground())
}

func TestStyleForHighlightBackground(t *testing.T) {
	it := feed.Item{Format: "info"}
	st := styleFor(feed.Tokens("", it, true))
	require.Equal(t, highlightBg, st.GetBackground())

	st = styleFor(feed.Tokens("", it, false))
	require.NotEqual(t, highlightBg, st.GetBackground())
}

func TestStepColorWraps(t *testing.T) {
	req := require.New(t)
	req.Equal(stepColor(0), stepColor(stepRampSize))
	req.Equal(stepColor(3), stepColor(-stepRampSize+3))
	req.Len(stepRamp, stepRampSize)
}

func TestLineIndexItemAt(t *testing.T) {
	req := require.New(t)

	thought := feed.NewItem(feed.SourceAgent, "thought", "hm")
	obs := feed.NewItem(feed.SourceEnv, "observation", "a\nb\nc")
	obs.Title = "Observation"

	var ix lineIndex
	ix.rebuild([]feed.Item{thought, obs}, func(feed.Item) bool { return false }, 0)

	req.Equal(len(ix.lines), ix.total())
	got, ok := ix.itemAt(0)
	req.True(ok)
	req.Equal(thought.ID, got.ID)

	got, ok = ix.itemAt(ix.total() - 1)
	req.True(ok)
	req.Equal(obs.ID, got.ID)

	_, ok = ix.itemAt(ix.total())
	req.False(ok)
}
