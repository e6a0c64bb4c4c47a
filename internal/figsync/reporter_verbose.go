package figsync

import (
	"fmt"
	"io"
)

// VerboseReporter prints snapshots and controller statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintSnapshot outputs every token of s grouped by kind.
func (r *VerboseReporter) PrintSnapshot(s *Snapshot) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Design Tokens", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	fmt.Fprintf(r.w, "Source:    %s\n", s.Source)
	fmt.Fprintf(r.w, "Version:   %s\n", s.Version)
	fmt.Fprintf(r.w, "Extracted: %s\n", s.ExtractedAt.Format("2006-01-02 15:04:05"))

	if len(s.Colors) > 0 {
		r.section("Colors")
		for _, c := range s.Colors {
			fmt.Fprintf(r.w, "%s%-26s %-9s %s\n", Swatch(c.Value, r.useColors), c.Name, c.Category, c.Value)
		}
	}

	if len(s.Typography) > 0 {
		r.section("Typography")
		for _, t := range s.Typography {
			fmt.Fprintf(r.w, "%-26s %s %s/%s", t.Name, t.FontFamily, t.FontSize, t.FontWeight)
			if t.LineHeight != "" {
				fmt.Fprintf(r.w, " line-height %s", t.LineHeight)
			}
			if t.LetterSpacing != "" {
				fmt.Fprintf(r.w, " letter-spacing %s", t.LetterSpacing)
			}
			fmt.Fprintln(r.w)
		}
	}

	if len(s.Spacing) > 0 {
		r.section("Spacing")
		for _, sp := range s.Spacing {
			fmt.Fprintf(r.w, "%-26s %s\n", sp.Name, sp.Value)
		}
	}

	if len(s.Animations) > 0 {
		r.section("Animations")
		for _, a := range s.Animations {
			fmt.Fprintf(r.w, "%-26s %s %s\n", a.Name, a.Duration, a.Easing)
		}
	}

	if len(s.Components) > 0 {
		r.section("Components")
		for _, c := range s.Components {
			fmt.Fprintf(r.w, "%-26s %s (%d styles)\n", c.Name, c.Type, len(c.Styles))
		}
	}
}

// PrintStats outputs controller counters.
func (r *VerboseReporter) PrintStats(stats Stats) {
	r.section("Sync Statistics")
	fmt.Fprintf(r.w, "Ticks:   %d\n", stats.Ticks)
	fmt.Fprintf(r.w, "Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(r.w, "Failed:  %d\n", stats.Failed)
	fmt.Fprintf(r.w, "Changes: %d\n", stats.Changes)
	fmt.Fprintf(r.w, "Applied: %d\n", stats.Applied)
}

// PrintWarnings shows source loading warnings.
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	r.section("Warnings")
	for _, warning := range warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "•", r.useColors), warning)
	}
}

func (r *VerboseReporter) section(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	for range title {
		fmt.Fprint(r.w, "-")
	}
	fmt.Fprintln(r.w)
}
