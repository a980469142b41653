package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"

	"github.com/atailhq/atail/internal/feed"
	"github.com/atailhq/atail/internal/transport"
)

// cursorBuffer is the number of lines to keep between the cursor and the edge of the viewport while navigating.
const cursorBuffer = 3

// itemsMsg carries the items parsed from one stream frame.
type itemsMsg []feed.Item

// HoverFunc is notified when the cursor enters an item while browsing. The
// viewport is the scrolling container, passed through untouched.
type HoverFunc func(it feed.Item, vp *viewport.Model)

// Model is the Bubble Tea model driving the UI.
type Model struct {
	stream *transport.Stream
	cancel context.CancelFunc

	spinner spinner.Model
	help    help.Model
	ready   bool
	follow  bool

	viewport viewport.Model
	cur      int    // cursor line while browsing
	hovered  string // ID of the item the cursor last entered

	store  feed.Store
	index  lineIndex
	active view

	onHover HoverFunc
	onItem  func(feed.Item)

	clipboardOK bool
	err         error
}

func newModel(stream *transport.Stream, cancel context.CancelFunc, onItem func(feed.Item)) Model {
	return Model{
		stream:  stream,
		cancel:  cancel,
		spinner: spinner.New(),
		help:    help.New(),
		follow:  true,
		onItem:  onItem,
	}
}

func (m *Model) visibleItems() []feed.Item {
	switch m.active {
	case viewAgent:
		return m.store.Items(feed.SourceAgent)
	case viewEnv:
		return m.store.Items(feed.SourceEnv)
	default:
		return m.store.All()
	}
}

// sync re-renders the visible feed into the viewport.
func (m *Model) sync() {
	m.index.rebuild(m.visibleItems(), func(it feed.Item) bool {
		return m.store.IsHighlighted(it.ID)
	}, m.viewport.Width)
	if total := m.index.total(); m.cur >= total {
		m.cur = total - 1
	}
	if m.cur < 0 {
		m.cur = 0
	}
	m.viewport.SetContent(m.index.content())
}

// hoverCheck fires the hover event when the cursor has entered a different
// item: exactly once per entry, with the item and the scrolling container.
// The highlight follows the hover; callers re-sync afterwards.
func (m *Model) hoverCheck() {
	it, ok := m.index.itemAt(m.cur)
	if !ok || it.ID == m.hovered {
		return
	}
	m.hovered = it.ID
	m.store.Highlight(it.ID)
	if m.onHover != nil {
		m.onHover(it, &m.viewport)
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.follow {
		return
	}
	if m.cur < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cur)
	} else if m.cur >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cur - m.viewport.Height + 1)
	}
}

func (m *Model) cursorUp() {
	if m.cur == 0 {
		return
	}
	m.cur--
	if m.cur < m.viewport.YOffset+cursorBuffer && !m.viewport.AtTop() {
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	}
}

func (m *Model) cursorDown() {
	if m.cur >= m.index.total()-1 {
		return
	}
	m.cur++
	bottom := m.viewport.YOffset + m.viewport.VisibleLineCount() - cursorBuffer
	if m.cur >= bottom && !m.viewport.AtBottom() {
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.stream != nil {
		cmds = append(cmds, readFrame(m.stream))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, Keys.All):
			m.active = viewAll
			m.sync()
		case key.Matches(msg, Keys.Agent):
			m.active = viewAgent
			m.sync()
		case key.Matches(msg, Keys.Env):
			m.active = viewEnv
			m.sync()
		case key.Matches(msg, Keys.Follow):
			m.follow = !m.follow
			if m.follow {
				m.hovered = ""
				m.store.Highlight("")
			} else {
				m.cur = m.viewport.YOffset + m.viewport.VisibleLineCount() - 1
				if m.cur < 0 {
					m.cur = 0
				}
				m.hoverCheck()
			}
			m.sync()
			// Keep the viewport from also paging on the follow key.
			return m, nil
		case !m.follow && key.Matches(msg, Keys.Yank):
			if it, ok := m.store.Highlighted(); ok && m.clipboardOK {
				clipboard.Write(clipboard.FmtText, []byte(it.Message))
			}
			return m, nil
		case !m.follow && key.Matches(msg, m.viewport.KeyMap.Up):
			m.cursorUp()
			m.hoverCheck()
			m.sync()
			return m, nil
		case !m.follow && key.Matches(msg, m.viewport.KeyMap.Down):
			m.cursorDown()
			m.hoverCheck()
			m.sync()
			return m, nil
		}
		var c tea.Cmd
		m.help, c = m.help.Update(msg)
		cmds = append(cmds, c)

	case tea.WindowSizeMsg:
		verticalMargin := 5
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = msg.Width, msg.Height-verticalMargin
		}
		m.sync()

	case itemsMsg:
		for _, it := range msg {
			if m.onItem != nil {
				m.onItem(it)
			}
			m.store.Add(it)
		}
		if m.follow {
			m.sync()
			m.viewport.GotoBottom()
		}
		if m.stream != nil {
			cmds = append(cmds, readFrame(m.stream))
		}

	case error:
		m.err = msg
		return m, tea.Quit

	case spinner.TickMsg:
		var c tea.Cmd
		m.spinner, c = m.spinner.Update(msg)
		cmds = append(cmds, c)
	}

	var c tea.Cmd
	m.viewport, c = m.viewport.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	var status strings.Builder
	if m.follow {
		status.WriteString(m.spinner.View())
		status.WriteString(" Following ")
	} else {
		status.WriteString("[BROWSE] ")
	}
	status.WriteString(m.active.String())
	if it, ok := m.store.Highlighted(); ok && it.Step != nil {
		status.WriteString(fmt.Sprintf(" (step %d)", *it.Step))
	}
	b.WriteString(statusStyle.Render(status.String()))
	b.WriteString("\n")
	b.WriteString(m.help.View(Keys))

	return b.String()
}
