package trajectory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atailhq/atail/internal/feed"
)

func TestParseNativeItem(t *testing.T) {
	req := require.New(t)

	items := Parse([]byte(`{"feed":"agent","format":"thought","step":2,"title":"","message":"Thinking..."}`))
	req.Len(items, 1)
	it := items[0]
	req.NotEmpty(it.ID)
	req.Equal(feed.SourceAgent, it.Feed)
	req.Equal("thought", it.Format)
	req.NotNil(it.Step)
	req.Equal(2, *it.Step)
	req.Empty(it.Title)
	req.Equal("Thinking...", it.Message)
}

func TestParseTrajectoryStep(t *testing.T) {
	req := require.New(t)

	items := Parse([]byte(`{"step":1,"thought":"run tests","action":"pytest","observation":"2 passed"}`))
	req.Len(items, 3)

	req.Equal("thought", items[0].Format)
	req.Equal(feed.SourceAgent, items[0].Feed)
	req.Empty(items[0].Title)

	req.Equal("action", items[1].Format)
	req.Equal("Action", items[1].Title)

	req.Equal("observation", items[2].Format)
	req.Equal(feed.SourceEnv, items[2].Feed)
	req.Equal("Observation", items[2].Title)

	for _, it := range items {
		req.NotNil(it.Step)
		req.Equal(1, *it.Step)
	}
}

func TestParsePartialStep(t *testing.T) {
	items := Parse([]byte(`{"observation":"collecting..."}`))
	require.Len(t, items, 1)
	require.Equal(t, "observation", items[0].Format)
	require.Nil(t, items[0].Step)
}

func TestParseOTLPLogs(t *testing.T) {
	req := require.New(t)

	payload := `{"resourceLogs":[{"scopeLogs":[{"logRecords":[
		{"severityText":"WARN","body":{"stringValue":"container slow to start"},
		 "attributes":[{"key":"step","value":{"intValue":"4"}},{"key":"title","value":{"stringValue":"Environment"}}]}
	]}]}]}`

	items := Parse([]byte(payload))
	req.Len(items, 1)
	it := items[0]
	req.Equal(feed.SourceEnv, it.Feed)
	req.Equal("warn", it.Format)
	req.Equal("container slow to start", it.Message)
	req.Equal("Environment", it.Title)
	req.NotNil(it.Step)
	req.Equal(4, *it.Step)
}

func TestParseUnknown(t *testing.T) {
	items := Parse([]byte("not json at all"))
	require.Len(t, items, 1)
	require.Equal(t, "unknown", items[0].Format)
	require.Equal(t, "not json at all", items[0].Message)
}

func TestParsePrettifiesJSONBodies(t *testing.T) {
	items := Parse([]byte(`{"format":"observation","message":"{\"exit\":0}"}`))
	require.Len(t, items, 1)
	require.Equal(t, "{\n  \"exit\": 0\n}", items[0].Message)
}

func TestLoadFile(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "run.traj")
	data := `{"trajectory":[
		{"thought":"look around","action":"ls","observation":"main.go"},
		{"thought":"open it","action":"cat main.go","observation":"package main"}
	],"info":{"exit_status":"submitted"}}`
	req.NoError(os.WriteFile(path, []byte(data), 0o644))

	items, err := LoadFile(path)
	req.NoError(err)
	req.Len(items, 6)
	// Steps are numbered by position when the file doesn't carry indexes.
	req.Equal(0, *items[0].Step)
	req.Equal(1, *items[3].Step)
}

func TestLoadFileBareArray(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "steps.json")
	req.NoError(os.WriteFile(path, []byte(`[{"action":"ls","observation":"main.go"}]`), 0o644))

	items, err := LoadFile(path)
	req.NoError(err)
	req.Len(items, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.traj"))
	require.Error(t, err)
}
