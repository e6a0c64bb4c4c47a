package figsync

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() SyncResult {
	change := DesignChange{
		NodeID:             "7:1",
		NodeName:           "accent1 swatch",
		Token:              "accent1-fill-0",
		LocalToken:         "accent1",
		ChangeType:         "color",
		OldValue:           "rgb(99, 102, 241)",
		NewValue:           "rgb(0, 0, 0)",
		CSSProperty:        "color",
		AffectedComponents: []string{"PersonaBubble"},
	}
	return SyncResult{
		ID:             "01J0000000000000000000TICK",
		Changes:        []DesignChange{change},
		AppliedChanges: []DesignChange{change},
		Updates: []StyleUpdate{
			{Selector: ".text-accent1, .bg-accent1", CSSProperty: "color", NewValue: "rgb(0, 0, 0)", Token: "accent1"},
		},
		DocumentVersion: "42",
		Timestamp:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputText},
		{"text", false, OutputText},
		{"json", false, OutputJSON},
		{"css", false, OutputCSS},
		{"yaml", false, OutputText},
		{"json", true, OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "01J0000000000000000000TICK", out.ID)
	assert.Equal(t, "2026-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, 1, out.Summary.Changes)
	assert.Equal(t, 1, out.Summary.Applied)
	assert.Equal(t, "42", out.Summary.DocumentVersion)
	assert.Equal(t, "accent1", out.Changes[0].LocalToken)
	assert.Contains(t, buf.String(), "\n  \"summary\"")
}

func TestWriteJSON_EmptyResultUsesEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, SyncResult{ID: "x", Skipped: true}))

	assert.Contains(t, buf.String(), `"changes": []`)
	assert.Contains(t, buf.String(), `"errors": []`)
	assert.Contains(t, buf.String(), `"skipped": true`)
}

func TestWriteOutput_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputText, false))

	out := buf.String()
	assert.Contains(t, out, "accent1 swatch (7:1): accent1-fill-0 color rgb(99, 102, 241) -> rgb(0, 0, 0) (color)")
	assert.Contains(t, out, "applied .text-accent1, .bg-accent1 { color: rgb(0, 0, 0) }")
	assert.Contains(t, out, "1 change (1 change applied):")
}

func TestWriteOutput_CSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputCSS, false))
	assert.Equal(t, ".text-accent1, .bg-accent1 {\n  color: rgb(0, 0, 0);\n}\n", buf.String())
}

func TestWriteSnapshot(t *testing.T) {
	snapshot := testSnapshot()

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snapshot, OutputJSON, false))

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, snapshot.Colors, decoded.Colors)

	buf.Reset()
	t.Setenv("NO_COLOR", "1")
	require.NoError(t, WriteSnapshot(&buf, snapshot, OutputText, false))
	assert.Contains(t, buf.String(), "accent1")
}
