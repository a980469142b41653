package trajectory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atailhq/atail/internal/feed"
	"github.com/samber/lo"
)

// trajFile is the on-disk shape written by agent runners: the ordered steps
// plus metadata we don't need here.
type trajFile struct {
	Trajectory []rawStep `json:"trajectory"`
}

// LoadFile reads a saved trajectory and expands it into feed items. Both the
// wrapped form ({"trajectory": [...]}) and a bare step array are accepted.
// Steps without an explicit step index are numbered by position.
func LoadFile(path string) ([]feed.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}

	var steps []rawStep
	var wrapped trajFile
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Trajectory) > 0 {
		steps = wrapped.Trajectory
	} else if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse trajectory %s: %w", path, err)
	}

	var items []feed.Item
	for i, s := range steps {
		if s.Step == nil {
			s.Step = lo.ToPtr(i)
		}
		items = append(items, stepItems(s)...)
	}
	return items, nil
}
