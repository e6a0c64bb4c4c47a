package figsync

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter prints sync results one change per line:
//
//	Accent Swatch (1:23): accent1-fill-0 color rgb(99,102,241) -> rgb(0,0,0) (color)
type Reporter struct {
	w              io.Writer
	useColors      bool
	printComponent bool
}

// NewReporter creates a reporter writing to w. forceColors enables colors
// even when w is not a terminal.
func NewReporter(w io.Writer, forceColors, printComponents bool) *Reporter {
	return &Reporter{
		w:              w,
		useColors:      ShouldUseColors(forceColors),
		printComponent: printComponents,
	}
}

// ShouldUseColors reports whether terminal colors should be enabled.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintResult outputs the changes, applied updates and errors of one tick.
func (r *Reporter) PrintResult(result SyncResult) {
	if result.Skipped {
		fmt.Fprintf(r.w, "%s tick %s skipped: another sync is in flight\n",
			RenderStyle(StyleYellow, "!", r.useColors), result.ID)
		return
	}

	changes := append([]DesignChange(nil), result.Changes...)
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].NodeName < changes[j].NodeName
	})
	for _, change := range changes {
		r.printChange(change)
	}

	for _, u := range result.Updates {
		fmt.Fprintf(r.w, "%s %s { %s: %s }\n",
			RenderStyle(StyleGreen, "applied", r.useColors),
			u.Selector, u.CSSProperty, u.NewValue)
	}

	for _, e := range result.Errors {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "error:", r.useColors), e)
	}

	r.printSummary(result)
}

func (r *Reporter) printChange(change DesignChange) {
	location := fmt.Sprintf("%s (%s):", change.NodeName, change.NodeID)

	fmt.Fprintf(r.w, "%s %s %s %s -> %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		change.Token,
		change.CSSProperty,
		RenderStyle(StyleRed, change.OldValue, r.useColors),
		RenderStyle(StyleGreen, change.NewValue, r.useColors),
		RenderStyle(StyleGray, fmt.Sprintf(" (%s)", change.ChangeType), r.useColors))

	if r.printComponent && len(change.AffectedComponents) > 0 {
		for _, comp := range change.AffectedComponents {
			fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGray, comp, r.useColors))
		}
	}
}

func (r *Reporter) printSummary(result SyncResult) {
	fmt.Fprintln(r.w, "")

	switch {
	case len(result.Errors) > 0 && len(result.Changes) == 0:
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(result.Errors), "error", "errors"))
	case len(result.AppliedChanges) > 0:
		fmt.Fprintf(r.w, "%s (%s applied):\n",
			pluralizeCount(len(result.Changes), "change", "changes"),
			pluralizeCount(len(result.AppliedChanges), "change", "changes"))
	default:
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(result.Changes), "change", "changes"))
	}

	byType := make(map[ChangeType]int)
	for _, c := range result.Changes {
		byType[c.ChangeType]++
	}
	kinds := make([]string, 0, len(byType))
	for k := range byType {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(r.w, "* %s: %d\n", k, byType[ChangeType(k)])
	}

	if len(result.Changes) > 0 && len(result.AppliedChanges) == 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --auto-apply to turn changes into style updates", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
