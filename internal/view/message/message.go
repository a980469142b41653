// Package message renders feed items as HTML message blocks. The class
// attribute is the composed style-bucket string, so the stylesheet picks the
// visual treatment per format, step, and highlight state.
package message

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/atailhq/atail/internal/feed"
)

// baseClass is the style bucket shared by every message block.
const baseClass = "message"

// Message renders an item with an unconditional title line; an absent title
// still produces an (empty) title element. Entering the pointer over the
// block hands the element and the scrolling container to the page's hover
// handler, which owns highlight tracking.
func Message(it feed.Item, highlighted bool, container string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openBlock(w, it, highlighted, container); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h4 class="title">%s</h4>`, templ.EscapeString(it.Title)); err != nil {
			return err
		}
		return closeBlock(w, it)
	})
}

// AgentMessage is the agent-feed variant: same block and class computation,
// but the title renders as an inline badge and only when present.
func AgentMessage(it feed.Item, highlighted bool, container string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openBlock(w, it, highlighted, container); err != nil {
			return err
		}
		if it.Title != "" {
			if _, err := fmt.Fprintf(w, `<span class="badge">%s</span>`, templ.EscapeString(it.Title)); err != nil {
				return err
			}
		}
		return closeBlock(w, it)
	})
}

func openBlock(w io.Writer, it feed.Item, highlighted bool, container string) error {
	_, err := fmt.Fprintf(w,
		`<div id="item-%s" class="%s" onmouseenter="atailHover(this, &#39;%s&#39;)">`,
		templ.EscapeString(it.ID),
		templ.EscapeString(feed.ClassName(baseClass, it, highlighted)),
		templ.EscapeString(container),
	)
	return err
}

func closeBlock(w io.Writer, it feed.Item) error {
	_, err := fmt.Fprintf(w, `<pre class="body">%s</pre></div>`, templ.EscapeString(it.Message))
	return err
}
