// Package transport maintains the websocket connection to an agent runner
// and exposes its frames as a channel.
package transport

import (
	"context"
	"errors"
	"io"
	"log"
	"net/url"
	"time"

	"golang.org/x/net/websocket"
)

// Stream delivers raw frames from the runner plus a channel of unrecoverable
// faults. Both channels close when the stream shuts down, so callers should
// select on both.
type Stream struct {
	frames chan []byte
	errs   chan error
	cancel context.CancelFunc
}

// Frames returns the channel on which callers receive raw frames.
func (s *Stream) Frames() <-chan []byte { return s.frames }

// Errors returns the error stream.
func (s *Stream) Errors() <-chan error { return s.errs }

// Close cancels the underlying context; the reader goroutine then closes
// both channels.
func (s *Stream) Close() { s.cancel() }

// Config tweaks reconnect behaviour; the zero value is usable.
type Config struct {
	PingInterval time.Duration // 0 = no keep-alive pings
	BaseBackoff  time.Duration // default 500ms
	MaxBackoff   time.Duration // default 30s
	Logger       *log.Logger   // nil = discard
}

func (c Config) withDefaults() Config {
	if c.BaseBackoff == 0 {
		c.BaseBackoff = 500 * time.Millisecond
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c
}

// Dial validates the endpoint and starts a background goroutine that keeps a
// websocket connection alive, redialing with jittered exponential backoff,
// and pipes every received frame into the stream.
func Dial(ctx context.Context, endpoint, origin string, cfg Config) (*Stream, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("transport: invalid websocket endpoint")
	}
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithCancel(ctx)
	s := &Stream{
		frames: make(chan []byte, 1024),
		errs:   make(chan error, 1),
		cancel: cancel,
	}

	go s.run(ctx, endpoint, origin, cfg)
	return s, nil
}

func (s *Stream) run(ctx context.Context, endpoint, origin string, cfg Config) {
	defer func() {
		s.cancel()
		close(s.frames)
		close(s.errs)
	}()

	attempt := 0
	for ctx.Err() == nil {
		conn, err := websocket.Dial(endpoint, "", origin)
		if err != nil {
			delay := backoff(attempt, cfg.BaseBackoff, cfg.MaxBackoff)
			cfg.Logger.Printf("dial %s: %v (retry in %s)", endpoint, err, delay)
			attempt++
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}
		attempt = 0

		if cfg.PingInterval > 0 {
			go pingLoop(ctx, conn, cfg.PingInterval, cfg.Logger)
		}

		if err := s.readLoop(ctx, conn); err != nil {
			if ctx.Err() != nil {
				s.errs <- err
				return
			}
			cfg.Logger.Printf("read loop ended: %v (redialing)", err)
		}
	}
}

// readLoop copies frames into the stream until the connection drops or the
// context is cancelled. Frames are dropped when no reader is draining the
// channel (paused UI).
func (s *Stream) readLoop(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var frame []byte
		if err := websocket.Message.Receive(conn, &frame); err != nil {
			return err // includes io.EOF on clean close
		}
		select {
		case s.frames <- frame:
		default:
		}
	}
}

// pingLoop keeps the connection alive by writing a bare ping frame
// (opcode 0x9, empty payload) every interval.
func pingLoop(ctx context.Context, conn *websocket.Conn, interval time.Duration, l *log.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := conn.SetDeadline(time.Now().Add(interval)); err != nil {
				continue
			}
			if _, err := conn.Write([]byte{0x89, 0}); err != nil {
				l.Printf("ping failed: %v", err)
				return
			}
		}
	}
}
