package figsync

import "strings"

var builtinSelectors = map[string][]string{
	"accent1":          {".text-accent1", ".bg-accent1", ".border-accent1"},
	"accent2":          {".text-accent2", ".bg-accent2", ".border-accent2"},
	"accent3":          {".text-accent3", ".bg-accent3", ".border-accent3"},
	"main-gradient":    {".main-bubble"},
	"shimmer-gradient": {".animate-shimmer"},
	"heading-xl":       {".text-3xl"},
	"heading-lg":       {".text-2xl"},
	"body-md":          {".text-base"},
}

var builtinComponents = map[string][]string{
	"accent1":          {"BubbleChart", "Header", "PersonaSection"},
	"accent2":          {"BubbleChart", "PersonaSection"},
	"accent3":          {"BubbleChart", "PersonaSection"},
	"main-gradient":    {"BubbleChart"},
	"shimmer-gradient": {"Header", "MainBubbleBio"},
	"heading-xl":       {"MainBubbleBio"},
	"heading-lg":       {"PersonaSection"},
	"body-md":          {"InspirationCard", "ExperienceTimeline"},
}

// Lookup maps token names to the selectors and UI components that use them.
// Matching is exact.
type Lookup struct {
	selectors  map[string][]string
	components map[string][]string
}

// NewLookup returns the built-in tables extended by the given entries.
// Extra entries replace built-in ones with the same token name.
func NewLookup(selectors, components map[string][]string) Lookup {
	return Lookup{
		selectors:  overlay(builtinSelectors, selectors),
		components: overlay(builtinComponents, components),
	}
}

// DefaultLookup returns the built-in tables.
func DefaultLookup() Lookup {
	return NewLookup(nil, nil)
}

func overlay(base, extra map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Selector returns the comma-joined selector list for token, or "" if the
// token is not mapped to any selector.
func (l Lookup) Selector(token string) string {
	return strings.Join(l.selectors[token], ", ")
}

// Components returns the UI components affected by token. Unknown tokens
// yield an empty, non-nil slice.
func (l Lookup) Components(token string) []string {
	return append([]string{}, l.components[token]...)
}

// AffectedComponents looks token up in the built-in component table.
func AffectedComponents(token string) []string {
	return DefaultLookup().Components(token)
}

// Diff reports every token present in both old and partial whose value
// changed. It never reports created or removed tokens: tokens only in old are
// ignored, and tokens only in partial produce nothing with one exception. A
// "<name>-fill-0" or "<name>-gradient-0" color read off a palette swatch has
// no same-key entry in old, so it is compared with the local token <name> the
// swatch was pushed from.
//
// Besides color and typography changes, Diff reports spacing changes for
// "-width", "-height" and plain spacing tokens, so callers applying changes
// must handle ChangeSpacing. Changes come out as colors, typography, then
// spacing, each in partial's order.
func Diff(old *Snapshot, partial PartialSnapshot, lookup Lookup) []DesignChange {
	if old == nil {
		return nil
	}

	var changes []DesignChange
	emit := func(token, local string, kind ChangeType, prop, from, to string) {
		ref, ok := partial.Origins[token]
		if !ok {
			ref = NodeRef{ID: token, Name: token}
		}
		key := token
		if local != "" {
			key = local
		}
		changes = append(changes, DesignChange{
			NodeID:             ref.ID,
			NodeName:           ref.Name,
			Token:              token,
			LocalToken:         local,
			ChangeType:         kind,
			OldValue:           from,
			NewValue:           to,
			CSSProperty:        prop,
			AffectedComponents: lookup.Components(key),
		})
	}

	colors := make(map[string]ColorToken, len(old.Colors))
	for _, c := range old.Colors {
		colors[c.Name] = c
	}
	for _, c := range partial.Colors {
		if prev, ok := colors[c.Name]; ok {
			if prev.Value != c.Value {
				emit(c.Name, "", ChangeColor, "color", prev.Value, c.Value)
			}
			continue
		}
		if prev, ok := swatchToken(colors, c.Name); ok {
			if from := normalizeColor(prev.Value); from != c.Value {
				emit(c.Name, prev.Name, ChangeColor, "color", from, c.Value)
			}
		}
	}

	typography := make(map[string]TypographyToken, len(old.Typography))
	for _, t := range old.Typography {
		typography[t.Name] = t
	}
	for _, t := range partial.Typography {
		prev, ok := typography[t.Name]
		if !ok {
			continue
		}
		if prev.FontSize != t.FontSize {
			emit(t.Name, "", ChangeTypography, "font-size", prev.FontSize, t.FontSize)
		}
		if prev.FontWeight != t.FontWeight {
			emit(t.Name, "", ChangeTypography, "font-weight", prev.FontWeight, t.FontWeight)
		}
	}

	spacing := make(map[string]SpacingToken, len(old.Spacing))
	for _, s := range old.Spacing {
		spacing[s.Name] = s
	}
	for _, s := range partial.Spacing {
		if prev, ok := spacing[s.Name]; ok && prev.Value != s.Value {
			emit(s.Name, "", ChangeSpacing, spacingProperty(s.Name), prev.Value, s.Value)
		}
	}

	return changes
}

// swatchToken finds the local color a palette swatch was pushed from. Swatches
// are named after their token, so the first fill of node "accent1" comes back
// as "accent1-fill-0" (or "-gradient-0") and maps onto local token "accent1".
func swatchToken(colors map[string]ColorToken, name string) (ColorToken, bool) {
	for _, suffix := range []string{"-fill-0", "-gradient-0"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			c, found := colors[base]
			return c, found
		}
	}
	return ColorToken{}, false
}

// normalizeColor renders a local color value the way values read from Figma
// are rendered, so the two can be compared.
func normalizeColor(value string) string {
	switch {
	case IsHexColor(value):
		return ColorToCSS(HexToColor(value))
	case strings.Contains(value, "gradient("):
		if css := PaintToGradientCSS(GradientToPaint(value)); css != "" {
			return css
		}
	}
	return value
}

func spacingProperty(name string) string {
	switch {
	case strings.HasSuffix(name, "-width"):
		return "width"
	case strings.HasSuffix(name, "-height"):
		return "height"
	default:
		return "spacing"
	}
}
