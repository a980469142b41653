package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/atailhq/atail/internal/feed"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func testFeed() (feed.Item, feed.Item) {
	thought := feed.NewItem(feed.SourceAgent, "thought", "check the failing test")
	obs := feed.NewItem(feed.SourceEnv, "observation", "FAIL: TestParse\nexpected 2 items\ngot 1")
	obs.Title = "Observation"
	return thought, obs
}

func TestHoverFiresOncePerItemEntry(t *testing.T) {
	req := require.New(t)

	thought, obs := testFeed()
	m := newModel(nil, nil, nil)
	m.store.Add(thought)
	m.store.Add(obs)

	var hovers []feed.Item
	var refs []*viewport.Model
	m.onHover = func(it feed.Item, vp *viewport.Model) {
		hovers = append(hovers, it)
		refs = append(refs, vp)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	req.True(m.follow)

	// Entering browse mode puts the cursor on the last line and hovers the
	// item under it.
	m = update(t, m, keyMsg("f"))
	req.False(m.follow)
	req.Len(hovers, 1)
	req.Equal(obs.ID, hovers[0].ID)
	req.NotNil(refs[0])
	req.True(m.store.IsHighlighted(obs.ID))

	// Moving within the same multi-line item fires nothing new.
	m = update(t, m, keyMsg("k"))
	m = update(t, m, keyMsg("k"))
	m = update(t, m, keyMsg("k"))
	req.Len(hovers, 1)

	// Crossing into the previous item fires exactly once, with that item.
	m = update(t, m, keyMsg("k"))
	req.Len(hovers, 2)
	req.Equal(thought.ID, hovers[1].ID)
	req.True(m.store.IsHighlighted(thought.ID))
	req.False(m.store.IsHighlighted(obs.ID))

	// Bumping against the top does not re-fire.
	m = update(t, m, keyMsg("k"))
	req.Len(hovers, 2)
}

func TestFollowResumeClearsHighlight(t *testing.T) {
	req := require.New(t)

	thought, obs := testFeed()
	m := newModel(nil, nil, nil)
	m.store.Add(thought)
	m.store.Add(obs)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, keyMsg("f"))
	req.True(m.store.IsHighlighted(obs.ID))

	m = update(t, m, keyMsg("f"))
	req.True(m.follow)
	_, ok := m.store.Highlighted()
	req.False(ok)
}

func TestItemsMsgRoutedToSinkAndTabs(t *testing.T) {
	req := require.New(t)

	thought, obs := testFeed()
	var sunk []feed.Item
	m := newModel(nil, nil, func(it feed.Item) { sunk = append(sunk, it) })

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = update(t, m, itemsMsg{thought, obs})
	req.Len(sunk, 2)
	req.Equal(2, m.store.Len())

	m = update(t, m, keyMsg("g"))
	req.Equal(viewAgent, m.active)
	req.Len(m.visibleItems(), 1)
	req.Equal(thought.ID, m.visibleItems()[0].ID)

	m = update(t, m, keyMsg("e"))
	req.Len(m.visibleItems(), 1)
	req.Equal(obs.ID, m.visibleItems()[0].ID)

	m = update(t, m, keyMsg("a"))
	req.Len(m.visibleItems(), 2)
}
