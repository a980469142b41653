package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"

	"github.com/atailhq/atail/internal/feed"
	"github.com/atailhq/atail/internal/trajectory"
	"github.com/atailhq/atail/internal/transport"
)

// readFrame returns a command that receives one frame from the stream.
func readFrame(s *transport.Stream) tea.Cmd {
	return func() tea.Msg {
		select {
		case b, ok := <-s.Frames():
			if !ok {
				return fmt.Errorf("stream closed")
			}
			return itemsMsg(trajectory.Parse(b))
		case err, ok := <-s.Errors():
			if ok {
				return err
			}
			return fmt.Errorf("stream error channel closed")
		}
	}
}

// Run attaches to a runner endpoint, spins up the Bubble Tea program, and
// blocks until the TUI exits. The optional onItem sink receives every item,
// used to record the run.
func Run(endpoint string, onItem func(feed.Item)) error {
	if u, err := url.Parse(endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: %v", endpoint, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	stream, err := transport.Dial(ctx, endpoint, "http://localhost/", transport.Config{
		PingInterval: 30 * time.Second,
		Logger:       log.New(os.Stderr, "[transport] ", log.LstdFlags),
	})
	if err != nil {
		cancel()
		return err
	}

	m := newModel(stream, cancel, onItem)
	m.clipboardOK = clipboard.Init() == nil
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Replay opens the TUI in browse mode over a fixed set of items, with no
// stream attached.
func Replay(items []feed.Item) error {
	m := newModel(nil, nil, nil)
	m.clipboardOK = clipboard.Init() == nil
	m.follow = false
	for _, it := range items {
		m.store.Add(it)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
