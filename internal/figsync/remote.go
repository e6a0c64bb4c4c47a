package figsync

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/figsync/internal/figma"
)

// SourceFigma marks snapshots whose token collections were last replaced by
// values read from Figma.
const SourceFigma = "figma"

// Slugify lowercases name and replaces each run of whitespace with "-".
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// ExtractTokensFromRemote reads tokens off the given nodes. Only the nodes
// themselves are inspected, not their children. Nodes are visited in id
// order so the result is deterministic.
func ExtractTokensFromRemote(nodes map[string]figma.Node) PartialSnapshot {
	partial := PartialSnapshot{Origins: make(map[string]NodeRef)}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := nodes[id]
		slug := Slugify(node.Name)
		ref := NodeRef{ID: id, Name: node.Name}
		if node.ID != "" {
			ref.ID = node.ID
		}

		for i, fill := range node.Fills {
			if color, ok := fill.Solid(); ok {
				name := fmt.Sprintf("%s-fill-%d", slug, i)
				partial.Colors = append(partial.Colors, ColorToken{
					Name:     name,
					Value:    ColorToCSS(color),
					Category: CategoryPrimary,
				})
				partial.Origins[name] = ref
				continue
			}
			if stops, ok := fill.Stops(); ok {
				name := fmt.Sprintf("%s-gradient-%d", slug, i)
				partial.Colors = append(partial.Colors, ColorToken{
					Name:     name,
					Value:    stopsToCSS(stops),
					Category: CategoryGradient,
				})
				partial.Origins[name] = ref
			}
		}

		if node.Type == figma.NodeText && node.Style != nil {
			partial.Typography = append(partial.Typography, typographyFromStyle(slug, *node.Style))
			partial.Origins[slug] = ref
		}

		if w, h, ok := node.Size(); ok {
			partial.Spacing = append(partial.Spacing,
				SpacingToken{Name: slug + "-width", Value: px(w)},
				SpacingToken{Name: slug + "-height", Value: px(h)},
			)
			partial.Origins[slug+"-width"] = ref
			partial.Origins[slug+"-height"] = ref
		}
	}

	return partial
}

func typographyFromStyle(name string, style figma.TypeStyle) TypographyToken {
	t := TypographyToken{
		Name:       name,
		FontFamily: style.FontFamily,
		FontSize:   "16px",
		FontWeight: "400",
		LineHeight: "1.5",
	}
	if t.FontFamily == "" {
		t.FontFamily = "Inter"
	}
	if style.FontSize != 0 {
		t.FontSize = px(style.FontSize)
	}
	if style.FontWeight != 0 {
		t.FontWeight = number(style.FontWeight)
	}
	if style.LineHeightPx != 0 {
		t.LineHeight = px(style.LineHeightPx)
	}
	if style.LetterSpacing != 0 {
		t.LetterSpacing = px(style.LetterSpacing)
	}
	return t
}

func px(v float64) string { return number(v) + "px" }

func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
