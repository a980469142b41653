// Package server is the web surface: it serves the feed page and pushes each
// parsed item to browsers as a rendered message block over SSE.
package server

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	"github.com/atailhq/atail/internal/feed"
	"github.com/atailhq/atail/internal/trajectory"
	"github.com/atailhq/atail/internal/view/message"
	"github.com/atailhq/atail/internal/view/page"
)

// frameSource is the part of the transport the server consumes.
type frameSource interface {
	Frames() <-chan []byte
	Errors() <-chan error
}

// Server owns the echo application. The optional sink receives every parsed
// item, used to record runs.
type Server struct {
	e      *echo.Echo
	stream frameSource
	sink   func(feed.Item)
}

func New(stream frameSource, sink func(feed.Item)) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(glog.INFO)
	e.Use(middleware.Recover())

	s := &Server{e: e, stream: stream, sink: sink}
	e.GET("/", s.home)
	e.GET("/events", s.events)
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error { return s.e.Start(addr) }

func render(c echo.Context, status int, t templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return t.Render(c.Request().Context(), c.Response())
}

func (s *Server) home(c echo.Context) error {
	return render(c, http.StatusOK, page.Feed())
}

// events streams rendered message blocks. The event name is the feed the
// item belongs to, so the page can route agent and environment items to
// their containers.
func (s *Server) events(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	id := 0
	for {
		select {
		case <-c.Request().Context().Done():
			c.Logger().Infof("SSE client disconnected, ip: %v", c.RealIP())
			return nil
		case frame, ok := <-s.stream.Frames():
			if !ok {
				return nil
			}
			for _, it := range trajectory.Parse(frame) {
				if s.sink != nil {
					s.sink(it)
				}
				if err := s.writeItem(c, w, id, it); err != nil {
					return err
				}
				id++
			}
			w.Flush()
		case err, ok := <-s.stream.Errors():
			if !ok {
				return nil
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
}

func (s *Server) writeItem(c echo.Context, w *echo.Response, id int, it feed.Item) error {
	container := it.Feed.String() + "-feed"
	block := message.Message(it, false, container)
	if it.Feed == feed.SourceAgent {
		block = message.AgentMessage(it, false, container)
	}

	var buf bytes.Buffer
	if err := block.Render(c.Request().Context(), &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed: "+err.Error())
	}

	ev := Event{ID: id, Event: []byte(it.Feed.String()), Data: buf.Bytes()}
	if err := ev.MarshalTo(w); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return nil
}
