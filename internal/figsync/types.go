// Package figsync implements design token extraction, Figma document
// construction, remote token diffing and the polling sync controller.
package figsync

import (
	"time"
)

// ColorCategory classifies a color token
type ColorCategory string

// Color categories
const (
	CategoryPrimary  ColorCategory = "primary"
	CategoryAccent   ColorCategory = "accent"
	CategorySemantic ColorCategory = "semantic"
	CategoryGradient ColorCategory = "gradient"
)

// ComponentType classifies a component token
type ComponentType string

// Component types
const (
	ComponentBubble     ComponentType = "bubble"
	ComponentCard       ComponentType = "card"
	ComponentTimeline   ComponentType = "timeline"
	ComponentHeader     ComponentType = "header"
	ComponentNavigation ComponentType = "navigation"
)

// ColorToken is a named color or gradient
type ColorToken struct {
	Name        string        `json:"name" yaml:"name"`   // "accent1"
	Value       string        `json:"value" yaml:"value"` // "#6366F1" or "linear-gradient(...)"
	Category    ColorCategory `json:"category" yaml:"category"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// TypographyToken is one step of the type scale
type TypographyToken struct {
	Name          string `json:"name" yaml:"name"`
	FontFamily    string `json:"fontFamily" yaml:"fontFamily"`
	FontSize      string `json:"fontSize" yaml:"fontSize"`     // "3rem", "24px"
	FontWeight    string `json:"fontWeight" yaml:"fontWeight"` // "700"
	LineHeight    string `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing string `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SpacingToken is a named length
type SpacingToken struct {
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"` // "1rem", "120px"
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AnimationToken is a named duration and easing
type AnimationToken struct {
	Name        string `json:"name" yaml:"name"`
	Duration    string `json:"duration" yaml:"duration"` // "0.3s"
	Easing      string `json:"easing,omitempty" yaml:"easing,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ComponentToken groups the styles of one UI component
type ComponentToken struct {
	Name        string            `json:"name" yaml:"name"`
	Type        ComponentType     `json:"type" yaml:"type"`
	Styles      map[string]string `json:"styles" yaml:"styles"` // CSS property -> value
	Animations  []AnimationToken  `json:"animations,omitempty" yaml:"animations,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// Snapshot is an immutable capture of every token at one point in time.
// Holders never modify a Snapshot; a newer one replaces it.
type Snapshot struct {
	Colors      []ColorToken      `json:"colors"`
	Typography  []TypographyToken `json:"typography"`
	Spacing     []SpacingToken    `json:"spacing"`
	Animations  []AnimationToken  `json:"animations"`
	Components  []ComponentToken  `json:"components"`
	ExtractedAt time.Time         `json:"extractedAt"`
	Version     string            `json:"version"`
	Source      string            `json:"source"` // "portfolio-code" or "figma"
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Colors = append([]ColorToken(nil), s.Colors...)
	out.Typography = append([]TypographyToken(nil), s.Typography...)
	out.Spacing = append([]SpacingToken(nil), s.Spacing...)
	out.Animations = append([]AnimationToken(nil), s.Animations...)
	out.Components = cloneComponents(s.Components)
	return &out
}

func cloneComponents(in []ComponentToken) []ComponentToken {
	if in == nil {
		return nil
	}
	out := make([]ComponentToken, len(in))
	for i, c := range in {
		out[i] = c
		if c.Styles != nil {
			out[i].Styles = make(map[string]string, len(c.Styles))
			for k, v := range c.Styles {
				out[i].Styles[k] = v
			}
		}
		out[i].Animations = append([]AnimationToken(nil), c.Animations...)
	}
	return out
}

// Color returns the color token with the given name.
func (s *Snapshot) Color(name string) (ColorToken, bool) {
	if s == nil {
		return ColorToken{}, false
	}
	for _, c := range s.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return ColorToken{}, false
}

// NodeRef identifies the Figma node a token was read from
type NodeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PartialSnapshot holds the tokens reconstructed from Figma nodes
type PartialSnapshot struct {
	Colors     []ColorToken
	Typography []TypographyToken
	Spacing    []SpacingToken
	Origins    map[string]NodeRef // token name -> source node
}

// ChangeType classifies a design change
type ChangeType string

// Change types
const (
	ChangeColor      ChangeType = "color"
	ChangeTypography ChangeType = "typography"
	ChangeSpacing    ChangeType = "spacing"
	ChangeEffects    ChangeType = "effects"
	ChangeLayout     ChangeType = "layout"
)

// DesignChange is one value that differs between the last snapshot and Figma
type DesignChange struct {
	NodeID             string     `json:"nodeId"`
	NodeName           string     `json:"nodeName"`
	Token              string     `json:"token"`                // "accent1-fill-0"
	LocalToken         string     `json:"localToken,omitempty"` // Swatch match: "accent1"
	ChangeType         ChangeType `json:"changeType"`
	OldValue           string     `json:"oldValue"`
	NewValue           string     `json:"newValue"`
	CSSProperty        string     `json:"cssProperty"` // "color", "font-size"
	AffectedComponents []string   `json:"affectedComponents"`
}

// StyleUpdate is the local property update derived from an applied change
type StyleUpdate struct {
	Selector    string `json:"selector"` // ".text-accent1, .bg-accent1"
	CSSProperty string `json:"cssProperty"`
	NewValue    string `json:"newValue"`
	Token       string `json:"token"`
}

// SyncConfig configures a Controller. It is copied at construction.
type SyncConfig struct {
	FileKey      string              // Figma file key (required)
	WatchedNodes []string            // Node ids polled each tick
	Interval     time.Duration       // Tick period (default: 30s)
	AutoApply    bool                // Apply changes as they are detected
	Selectors    map[string][]string // Extra token -> selector entries
	Components   map[string][]string // Extra token -> component entries
}

// SyncResult is the outcome of one sync tick
type SyncResult struct {
	ID              string         `json:"id"`
	Changes         []DesignChange `json:"changes"`
	AppliedChanges  []DesignChange `json:"appliedChanges"`
	Updates         []StyleUpdate  `json:"updates"`
	Errors          []string       `json:"errors"`
	Skipped         bool           `json:"skipped,omitempty"` // Another tick was in flight
	DocumentVersion string         `json:"documentVersion,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}

// OK reports whether the tick completed without errors.
func (r SyncResult) OK() bool {
	return len(r.Errors) == 0 && !r.Skipped
}
