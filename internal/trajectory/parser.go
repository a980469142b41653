// Package trajectory classifies raw frames from an agent-run stream into
// feed items.
package trajectory

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	plog "go.opentelemetry.io/collector/pdata/plog"

	"github.com/atailhq/atail/internal/feed"
)

// rawItem is the native wire shape: one feed item per frame.
type rawItem struct {
	Feed    string `json:"feed"`
	Format  string `json:"format"`
	Step    *int   `json:"step"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// rawStep is one trajectory step as emitted by agent runners: the model's
// thought, the command it issued, and what the environment answered.
type rawStep struct {
	Step        *int   `json:"step"`
	Thought     string `json:"thought"`
	Action      string `json:"action"`
	Observation string `json:"observation"`
}

func (s rawStep) empty() bool {
	return s.Thought == "" && s.Action == "" && s.Observation == ""
}

// Parse inspects a raw frame and expands it into feed items.
// It never returns an error; unrecognized data becomes a single item with
// format "unknown".
func Parse(data []byte) []feed.Item {
	var it rawItem
	if err := json.Unmarshal(data, &it); err == nil && it.Format != "" {
		return []feed.Item{itemFrom(it)}
	}

	var step rawStep
	if err := json.Unmarshal(data, &step); err == nil && !step.empty() {
		return stepItems(step)
	}

	if logs, err := (&plog.JSONUnmarshaler{}).UnmarshalLogs(data); err == nil &&
		logs.ResourceLogs().Len() > 0 {
		return logItems(logs)
	}

	unknown := feed.NewItem(feed.SourceEnv, "unknown", prettify(string(data)))
	return []feed.Item{unknown}
}

func itemFrom(raw rawItem) feed.Item {
	src := feed.SourceEnv
	if raw.Feed == feed.SourceAgent.String() {
		src = feed.SourceAgent
	}
	it := feed.NewItem(src, raw.Format, prettify(raw.Message))
	it.Step = raw.Step
	it.Title = raw.Title
	return it
}

// stepItems expands one trajectory step into up to three feed items, all
// sharing the step bucket: thought and action on the agent feed, the
// observation on the environment feed.
func stepItems(s rawStep) []feed.Item {
	var items []feed.Item
	if s.Thought != "" {
		it := feed.NewItem(feed.SourceAgent, "thought", s.Thought)
		it.Step = s.Step
		items = append(items, it)
	}
	if s.Action != "" {
		it := feed.NewItem(feed.SourceAgent, "action", s.Action)
		it.Step = s.Step
		it.Title = "Action"
		items = append(items, it)
	}
	if s.Observation != "" {
		it := feed.NewItem(feed.SourceEnv, "observation", prettify(s.Observation))
		it.Step = s.Step
		it.Title = "Observation"
		items = append(items, it)
	}
	return items
}

// logItems maps OTLP log records onto the environment feed, for runners that
// report through an OpenTelemetry pipeline. Severity text selects the style
// bucket; "step" and "title" attributes carry through when present.
func logItems(logs plog.Logs) []feed.Item {
	var items []feed.Item
	for i := 0; i < logs.ResourceLogs().Len(); i++ {
		scopes := logs.ResourceLogs().At(i).ScopeLogs()
		for j := 0; j < scopes.Len(); j++ {
			records := scopes.At(j).LogRecords()
			for k := 0; k < records.Len(); k++ {
				lr := records.At(k)
				format := strings.ToLower(lr.SeverityText())
				if format == "" {
					format = "info"
				}
				it := feed.NewItem(feed.SourceEnv, format, prettify(lr.Body().AsString()))
				if v, ok := lr.Attributes().Get("step"); ok {
					it.Step = lo.ToPtr(int(v.Int()))
				}
				if v, ok := lr.Attributes().Get("title"); ok {
					it.Title = v.Str()
				}
				items = append(items, it)
			}
		}
	}
	return items
}

// prettify re-indents message bodies that happen to be JSON so the viewers
// can show them line by line. Anything else passes through untouched.
func prettify(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return s
	}
	var v interface{}
	if json.Unmarshal([]byte(trimmed), &v) != nil {
		return s
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s
	}
	return string(pretty)
}
