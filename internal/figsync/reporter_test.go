package figsync

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporterPrintResult(t *testing.T) {
	result := SyncResult{
		ID: "01J000000000000000000000AA",
		Changes: []DesignChange{
			{
				NodeID: "2:1", NodeName: "Title", Token: "title", ChangeType: ChangeTypography,
				OldValue: "24px", NewValue: "28px", CSSProperty: "font-size",
				AffectedComponents: []string{"Header"},
			},
			{
				NodeID: "1:1", NodeName: "Accent", Token: "accent-fill-0", ChangeType: ChangeColor,
				OldValue: "rgb(99,102,241)", NewValue: "rgb(0,0,0)", CSSProperty: "color",
			},
		},
	}

	var buf bytes.Buffer
	r := &Reporter{w: &buf, printComponent: true}
	r.PrintResult(result)

	assert.Equal(t, `Accent (1:1): accent-fill-0 color rgb(99,102,241) -> rgb(0,0,0) (color)
Title (2:1): title font-size 24px -> 28px (typography)
	Header

2 changes:
* color: 1
* typography: 1

Hint: Run with --auto-apply to turn changes into style updates
`, buf.String())
}

func TestReporterPrintResult_Applied(t *testing.T) {
	change := DesignChange{NodeID: "1:1", NodeName: "accent1", Token: "accent1-fill-0", ChangeType: ChangeColor,
		OldValue: "a", NewValue: "b", CSSProperty: "color"}
	result := SyncResult{
		Changes:        []DesignChange{change},
		AppliedChanges: []DesignChange{change},
		Updates:        []StyleUpdate{{Selector: ".text-accent1", CSSProperty: "color", NewValue: "b"}},
	}

	var buf bytes.Buffer
	(&Reporter{w: &buf}).PrintResult(result)

	assert.Contains(t, buf.String(), "applied .text-accent1 { color: b }\n")
	assert.Contains(t, buf.String(), "1 change (1 change applied):\n")
	assert.NotContains(t, buf.String(), "Hint:")
}

func TestReporterPrintResult_ErrorsAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}

	r.PrintResult(SyncResult{Errors: []string{"fetch document: figma: 401"}})
	assert.Equal(t, "error: fetch document: figma: 401\n\n1 error:\n", buf.String())

	buf.Reset()
	r.PrintResult(SyncResult{ID: "x", Skipped: true})
	assert.Equal(t, "! tick x skipped: another sync is in flight\n", buf.String())
}

func TestVerboseReporterPrintSnapshot(t *testing.T) {
	s := ExtractSnapshot(Source{
		Colors:     []ColorToken{{Name: "accent1", Value: "#6366F1", Category: CategoryAccent}},
		Typography: []TypographyToken{{Name: "body-md", FontFamily: "Inter", FontSize: "1rem", FontWeight: "400", LineHeight: "1.5"}},
	}, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintSnapshot(s)

	out := buf.String()
	assert.Contains(t, out, "Source:    portfolio-code\n")
	assert.Contains(t, out, "Extracted: 2026-01-02 03:04:05\n")
	assert.Contains(t, out, "\nColors\n------\n")
	assert.Contains(t, out, "accent1")
	assert.Contains(t, out, "body-md")
	assert.Contains(t, out, "Inter 1rem/400 line-height 1.5\n")
	assert.NotContains(t, out, "Spacing")
}

func TestVerboseReporterPrintStats(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintStats(Stats{Ticks: 3, Failed: 1, Changes: 2})

	assert.Contains(t, buf.String(), "Ticks:   3\n")
	assert.Contains(t, buf.String(), "Failed:  1\n")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 change", pluralizeCount(1, "change", "changes"))
	assert.Equal(t, "0 changes", pluralizeCount(0, "change", "changes"))
}

func TestSwatch(t *testing.T) {
	assert.Empty(t, Swatch("#6366F1", false))
	assert.Empty(t, Swatch("rgb(0,0,0)", true))
}
