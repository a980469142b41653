package ui

import (
	"strings"

	"github.com/atailhq/atail/internal/feed"
)

// span maps a rendered block back to the item it came from.
type span struct {
	item  feed.Item
	start int // inclusive
	end   int // exclusive
}

// lineIndex is the flattened rendered feed, so viewport lines can be mapped
// back to items while browsing.
type lineIndex struct {
	spans []span
	lines []string
}

func (ix *lineIndex) rebuild(items []feed.Item, highlighted func(feed.Item) bool, width int) {
	ix.spans = ix.spans[:0]
	ix.lines = ix.lines[:0]
	for _, it := range items {
		block := strings.Split(renderItem(it, highlighted(it), width), "\n")
		start := len(ix.lines)
		ix.lines = append(ix.lines, block...)
		ix.spans = append(ix.spans, span{item: it, start: start, end: start + len(block)})
	}
}

func (ix *lineIndex) content() string { return strings.Join(ix.lines, "\n") }

func (ix *lineIndex) total() int { return len(ix.lines) }

// itemAt returns the item rendered at the given line.
func (ix *lineIndex) itemAt(line int) (feed.Item, bool) {
	for i := len(ix.spans) - 1; i >= 0; i-- {
		if line >= ix.spans[i].start && line < ix.spans[i].end {
			return ix.spans[i].item, true
		}
	}
	return feed.Item{}, false
}
