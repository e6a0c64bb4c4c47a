package figsync

import (
	"strings"
	"time"
)

// DefaultVersion is stamped on snapshots whose source does not set one.
const DefaultVersion = "1.0.0"

// SourceLocal marks snapshots extracted from the local design source.
const SourceLocal = "portfolio-code"

// MainGradient is the built-in main bubble gradient.
const MainGradient = "linear-gradient(45deg, #3B82F6 0%, #60A5FA 40%, #8B5CF6 60%, #EC4899 100%)"

// Source is the local design source: the table of style values the site is
// built from.
type Source struct {
	Version    string            `yaml:"version"`
	Colors     []ColorToken      `yaml:"colors"`
	Typography []TypographyToken `yaml:"typography"`
	Spacing    []SpacingToken    `yaml:"spacing"`
	Animations []AnimationToken  `yaml:"animations"`
	Components []ComponentToken  `yaml:"components"`
}

// ExtractSnapshot captures src as a new Snapshot. It has no side effects and
// always succeeds; the result shares no memory with src.
func ExtractSnapshot(src Source, now time.Time) *Snapshot {
	version := src.Version
	if version == "" {
		version = DefaultVersion
	}
	s := &Snapshot{
		Colors:      src.Colors,
		Typography:  src.Typography,
		Spacing:     src.Spacing,
		Animations:  src.Animations,
		Components:  src.Components,
		ExtractedAt: now.UTC(),
		Version:     version,
		Source:      SourceLocal,
	}
	return s.Clone()
}

// DefaultSource returns the portfolio's built-in design table.
func DefaultSource() Source {
	return Source{
		Version: DefaultVersion,
		Colors: []ColorToken{
			{Name: "accent1", Value: "#6366F1", Category: CategoryAccent, Description: "Primary indigo accent color"},
			{Name: "accent2", Value: "#8B5CF6", Category: CategoryAccent, Description: "Secondary purple accent color"},
			{Name: "accent3", Value: "#EC4899", Category: CategoryAccent, Description: "Tertiary pink accent color"},
			{Name: "hover", Value: "#4B5563", Category: CategorySemantic, Description: "Hover state color"},
			{Name: "persona-engineer", Value: "#6366F1", Category: CategoryPrimary, Description: "Color for Engineer persona"},
			{Name: "persona-educator", Value: "#8B5CF6", Category: CategoryPrimary, Description: "Color for Educator persona"},
			{Name: "persona-movement-builder", Value: "#EC4899", Category: CategoryPrimary, Description: "Color for Movement Builder persona"},
			{
				Name:        "main-gradient",
				Value:       MainGradient,
				Category:    CategoryGradient,
				Description: "Main bubble gradient",
			},
			{
				Name:        "shimmer-gradient",
				Value:       "linear-gradient(110deg, #fff 15%, #6366F1 35%, #8B5CF6 50%, #EC4899 65%, #fff 85%)",
				Category:    CategoryGradient,
				Description: "Shimmer animation gradient",
			},
		},
		Typography: []TypographyToken{
			{Name: "heading-xl", FontFamily: "var(--font-inter)", FontSize: "3rem", FontWeight: "700", LineHeight: "1.2"},
			{Name: "heading-lg", FontFamily: "var(--font-inter)", FontSize: "2rem", FontWeight: "600", LineHeight: "1.3"},
			{Name: "heading-md", FontFamily: "var(--font-inter)", FontSize: "1.5rem", FontWeight: "600", LineHeight: "1.4"},
			{Name: "body-lg", FontFamily: "var(--font-inter)", FontSize: "1.125rem", FontWeight: "400", LineHeight: "1.6"},
			{Name: "body-md", FontFamily: "var(--font-inter)", FontSize: "1rem", FontWeight: "400", LineHeight: "1.5"},
			{Name: "body-sm", FontFamily: "var(--font-inter)", FontSize: "0.875rem", FontWeight: "400", LineHeight: "1.4"},
			{Name: "mono", FontFamily: "var(--font-mono)", FontSize: "0.875rem", FontWeight: "400", LineHeight: "1.4"},
		},
		Spacing: []SpacingToken{
			{Name: "xs", Value: "0.25rem", Description: "4px"},
			{Name: "sm", Value: "0.5rem", Description: "8px"},
			{Name: "md", Value: "1rem", Description: "16px"},
			{Name: "lg", Value: "1.5rem", Description: "24px"},
			{Name: "xl", Value: "2rem", Description: "32px"},
			{Name: "2xl", Value: "3rem", Description: "48px"},
			{Name: "3xl", Value: "4rem", Description: "64px"},
			{Name: "4xl", Value: "6rem", Description: "96px"},
			{Name: "container-padding", Value: "2rem", Description: "Container padding"},
			{Name: "section-spacing", Value: "6rem", Description: "Section spacing"},
		},
		Animations: []AnimationToken{
			{Name: "shimmer", Duration: "8s", Easing: "linear"},
			{Name: "fade-in", Duration: "0.3s", Easing: "ease-out"},
			{Name: "slide-in", Duration: "0.3s", Easing: "ease-out"},
			{Name: "hover-transition", Duration: "0.2s", Easing: "ease-in-out"},
			{Name: "bubble-glow", Duration: "0.3s", Easing: "ease-out"},
		},
		Components: []ComponentToken{
			{
				Name: "main-bubble",
				Type: ComponentBubble,
				Styles: map[string]string{
					"width":         "200px",
					"height":        "200px",
					"fill":          "url(#gradient)",
					"filter":        "url(#main-glow)",
					"border-radius": "50%",
				},
				Animations:  []AnimationToken{{Name: "glow", Duration: "0.3s", Easing: "ease-out"}},
				Description: "Main interactive bubble component",
			},
			{
				Name: "persona-bubble",
				Type: ComponentBubble,
				Styles: map[string]string{
					"width":         "120px",
					"height":        "120px",
					"border-radius": "50%",
					"transition":    "all 0.3s ease",
				},
				Description: "Persona selection bubbles",
			},
			{
				Name: "inspiration-card",
				Type: ComponentCard,
				Styles: map[string]string{
					"padding":         "1.5rem",
					"border-radius":   "0.5rem",
					"background":      "rgba(0, 0, 0, 0.6)",
					"backdrop-filter": "blur(8px)",
				},
				Description: "Inspiration cards in persona sections",
			},
			{
				Name: "experience-timeline",
				Type: ComponentTimeline,
				Styles: map[string]string{
					"border-left":  "2px solid currentColor",
					"padding-left": "1rem",
				},
				Animations:  []AnimationToken{{Name: "slide-in", Duration: "0.3s", Easing: "ease-out"}},
				Description: "Experience timeline component",
			},
		},
	}
}

// Merge overlays other onto src by token name: tokens present in both are
// replaced in place, new tokens are appended in other's order. A replacing
// color keeps the old category and description unless it sets its own.
func (src Source) Merge(other Source) Source {
	out := Source{
		Version:    src.Version,
		Colors:     mergeByName(src.Colors, other.Colors, func(t ColorToken) string { return t.Name }, keepColorMeta),
		Typography: mergeByName(src.Typography, other.Typography, func(t TypographyToken) string { return t.Name }, nil),
		Spacing:    mergeByName(src.Spacing, other.Spacing, func(t SpacingToken) string { return t.Name }, nil),
		Animations: mergeByName(src.Animations, other.Animations, func(t AnimationToken) string { return t.Name }, nil),
		Components: mergeByName(src.Components, other.Components, func(t ComponentToken) string { return t.Name }, nil),
	}
	if other.Version != "" {
		out.Version = other.Version
	}
	return out
}

// mergeByName replaces base entries with same-named overlay entries and
// appends the rest. When keep is set it sees every overlay entry along with
// the base entry it replaces, or nil for a new name.
func mergeByName[T any](base, overlay []T, name func(T) string, keep func(prev *T, t T) T) []T {
	out := append([]T(nil), base...)
	index := make(map[string]int, len(out))
	for i, t := range out {
		index[name(t)] = i
	}
	for _, t := range overlay {
		if i, ok := index[name(t)]; ok {
			if keep != nil {
				t = keep(&out[i], t)
			}
			out[i] = t
			continue
		}
		if keep != nil {
			t = keep(nil, t)
		}
		index[name(t)] = len(out)
		out = append(out, t)
	}
	return out
}

// keepColorMeta carries category and description over from the token being
// replaced when the overlay leaves them empty. New uncategorized tokens are
// primary, or gradient for gradient values.
func keepColorMeta(prev *ColorToken, t ColorToken) ColorToken {
	if prev != nil {
		if t.Category == "" {
			t.Category = prev.Category
		}
		if t.Description == "" {
			t.Description = prev.Description
		}
		return t
	}
	if t.Category == "" {
		t.Category = CategoryPrimary
		if strings.HasPrefix(t.Value, "linear-gradient(") {
			t.Category = CategoryGradient
		}
	}
	return t
}
