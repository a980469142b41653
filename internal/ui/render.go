package ui

import (
	"strings"

	"github.com/atailhq/atail/internal/feed"
)

// renderItem lays out one feed item as a terminal block. Environment items
// carry a title line even when the title is empty; agent items get an inline
// badge instead, and only when a title is present.
func renderItem(it feed.Item, highlighted bool, width int) string {
	var b strings.Builder
	if it.Feed == feed.SourceAgent {
		if it.Title != "" {
			b.WriteString(badgeStyle.Render(it.Title))
			b.WriteString(" ")
		}
		b.WriteString(highlightJSONKeys(it.Message))
	} else {
		b.WriteString(titleStyle.Render(it.Title))
		b.WriteString("\n")
		b.WriteString(highlightJSONKeys(it.Message))
	}

	st := styleFor(feed.Tokens("", it, highlighted))
	if width > 2 {
		st = st.Width(width - 2) // room for the left edge and padding
	}
	return st.Render(b.String())
}
