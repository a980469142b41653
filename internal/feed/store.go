package feed

import "github.com/samber/lo"

// Store keeps feed items in arrival order and tracks which one is
// highlighted. Highlighting is recomputed on every hover event, so the store
// only remembers the last hovered ID.
type Store struct {
	items         []Item
	highlightedID string
}

func (s *Store) Add(it Item) {
	s.items = append(s.items, it)
}

// All returns every item in arrival order.
func (s *Store) All() []Item {
	return s.items
}

// Items returns the items belonging to one feed, in arrival order.
func (s *Store) Items(src Source) []Item {
	return lo.Filter(s.items, func(it Item, _ int) bool {
		return it.Feed == src
	})
}

func (s *Store) Len() int { return len(s.items) }

// Highlight marks the item with the given ID as highlighted. An unknown ID
// clears the highlight rather than failing.
func (s *Store) Highlight(id string) {
	if _, ok := lo.Find(s.items, func(it Item) bool { return it.ID == id }); !ok {
		s.highlightedID = ""
		return
	}
	s.highlightedID = id
}

func (s *Store) IsHighlighted(id string) bool {
	return id != "" && s.highlightedID == id
}

// Highlighted returns the currently highlighted item, if any.
func (s *Store) Highlighted() (Item, bool) {
	return lo.Find(s.items, func(it Item) bool { return it.ID == s.highlightedID })
}
