package figsync

import (
	"strings"

	"github.com/yacobolo/figsync/internal/figma"
)

// DefaultDocumentName names documents created by a push without a file key.
const DefaultDocumentName = "Portfolio - Generated from Code"

const (
	paletteColumns  = 6
	swatchSize      = 100
	swatchPitch     = 120
	paletteMinH     = 600
	paletteOffsetX  = 1300
	personaPrefix   = "persona-"
	gradientMainKey = "main-gradient"
)

var (
	white     = figma.Color{R: 1, G: 1, B: 1, A: 1}
	personaUI = map[string]string{
		"engineer":         "⚡",
		"educator":         "📚",
		"movement-builder": "🌟",
	}
)

// PushDocument is the node tree sent to Figma for one snapshot
type PushDocument struct {
	Name  string       `json:"name"`
	Nodes []figma.Node `json:"nodes"`
}

// BuildPushDocument lays out s as two top-level frames: the portfolio design
// frame and the color palette. The same snapshot always yields the same tree.
func BuildPushDocument(s *Snapshot) PushDocument {
	if s == nil {
		s = &Snapshot{}
	}
	return PushDocument{
		Name: DefaultDocumentName,
		Nodes: []figma.Node{
			designFrame(s),
			paletteFrame(s),
		},
	}
}

func designFrame(s *Snapshot) figma.Node {
	children := []figma.Node{mainBubble(s)}
	children = append(children, personaBubbles(s)...)
	for _, x := range []float64{50, 400, 750} {
		children = append(children, inspirationCard(x, 400))
	}
	children = append(children, textNode("Portfolio Title", "Portfolio Design System", 50, 50, 500, 40,
		figma.TypeStyle{FontFamily: "Inter", FontSize: 28, FontWeight: 700, TextAlignHorizontal: "LEFT"}))

	return figma.Node{
		Name:     "Portfolio Design System",
		Type:     figma.NodeFrame,
		Width:    1200,
		Height:   800,
		Fills:    []figma.Paint{solid(figma.Color{R: 0.02, G: 0.02, B: 0.02, A: 1})},
		Children: children,
	}
}

func mainBubble(s *Snapshot) figma.Node {
	gradient := MainGradient
	if token, ok := s.Color(gradientMainKey); ok {
		gradient = token.Value
	}
	fill := GradientToPaint(gradient)

	return figma.Node{
		Name:   "Main Bubble",
		Type:   figma.NodeEllipse,
		X:      100,
		Y:      100,
		Width:  200,
		Height: 200,
		Fills:  []figma.Paint{fill},
		Effects: []figma.Effect{
			dropShadow(figma.Color{R: 0.4, G: 0.4, B: 1, A: 0.3}, 4, 15),
		},
		Children: []figma.Node{
			textNode("Main Bubble Text", "@", 85, 85, 30, 30,
				figma.TypeStyle{FontFamily: "Inter", FontSize: 24, FontWeight: 700, TextAlignHorizontal: "CENTER"}),
		},
	}
}

func personaBubbles(s *Snapshot) []figma.Node {
	var out []figma.Node
	for _, c := range s.Colors {
		key, ok := strings.CutPrefix(c.Name, personaPrefix)
		if !ok {
			continue
		}
		title := titleCase(key)
		x, y := 350.0, 50+float64(len(out))*150
		color := HexToColor(c.Value)

		emoji, ok := personaUI[key]
		if !ok {
			emoji = "•"
		}

		out = append(out, figma.Node{
			Name:    title + " Bubble",
			Type:    figma.NodeEllipse,
			X:       x,
			Y:       y,
			Width:   120,
			Height:  120,
			Fills:   []figma.Paint{solid(color)},
			Effects: []figma.Effect{dropShadow(color, 2, 8)},
			Children: []figma.Node{
				textNode(title+" Emoji", emoji, x+45, y+45, 30, 30,
					figma.TypeStyle{FontFamily: "Inter", FontSize: 20, TextAlignHorizontal: "CENTER"}),
			},
		})
	}
	return out
}

func inspirationCard(x, y float64) figma.Node {
	return figma.Node{
		Name:         "Inspiration Card",
		Type:         figma.NodeRectangle,
		X:            x,
		Y:            y,
		Width:        300,
		Height:       200,
		CornerRadius: 8,
		Fills:        []figma.Paint{solid(figma.Color{A: 0.6})},
		Effects: []figma.Effect{
			{Type: figma.EffectLayerBlur, Radius: 8, Visible: true},
			dropShadow(figma.Color{A: 0.1}, 4, 12),
		},
		Children: []figma.Node{
			{
				Name:   "Avatar Placeholder",
				Type:   figma.NodeEllipse,
				X:      x + 24,
				Y:      y + 24,
				Width:  48,
				Height: 48,
				Fills:  []figma.Paint{solid(figma.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})},
			},
			textNode("Card Title", "Inspiration Name", x+90, y+24, 180, 24,
				figma.TypeStyle{FontFamily: "Inter", FontSize: 16, FontWeight: 600, TextAlignHorizontal: "LEFT"}),
			withFill(textNode("Card Subtitle", "Role/Position", x+90, y+52, 180, 20,
				figma.TypeStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 400, TextAlignHorizontal: "LEFT"}),
				figma.Color{R: 0.7, G: 0.7, B: 0.7, A: 1}),
		},
	}
}

func paletteFrame(s *Snapshot) figma.Node {
	children := []figma.Node{
		textNode("Palette Title", "Portfolio Color Palette", 50, 30, 300, 40,
			figma.TypeStyle{FontFamily: "Inter", FontSize: 24, FontWeight: 700}),
	}

	for i, c := range s.Colors {
		x := float64(50 + (i%paletteColumns)*swatchPitch)
		y := float64(100 + (i/paletteColumns)*swatchPitch)

		fill := solid(HexToColor(c.Value))
		if c.Category == CategoryGradient {
			fill = GradientToPaint(c.Value)
		}

		children = append(children, figma.Node{
			Name:         c.Name,
			Type:         figma.NodeRectangle,
			X:            x,
			Y:            y,
			Width:        swatchSize,
			Height:       swatchSize,
			CornerRadius: 8,
			Fills:        []figma.Paint{fill},
			Children: []figma.Node{
				textNode(c.Name+" Label", c.Name, x, y+110, swatchSize, 20,
					figma.TypeStyle{FontFamily: "Inter", FontSize: 12, FontWeight: 500, TextAlignHorizontal: "CENTER"}),
			},
		})
	}

	rows := (len(s.Colors) + paletteColumns - 1) / paletteColumns
	height := float64(100 + rows*swatchPitch + 40)
	if height < paletteMinH {
		height = paletteMinH
	}

	return figma.Node{
		Name:     "Color Palette",
		Type:     figma.NodeFrame,
		X:        paletteOffsetX,
		Width:    800,
		Height:   height,
		Fills:    []figma.Paint{solid(figma.Color{R: 0.05, G: 0.05, B: 0.05, A: 1})},
		Children: children,
	}
}

func textNode(name, characters string, x, y, w, h float64, style figma.TypeStyle) figma.Node {
	return figma.Node{
		Name:       name,
		Type:       figma.NodeText,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		Characters: characters,
		Style:      &style,
		Fills:      []figma.Paint{solid(white)},
	}
}

func withFill(n figma.Node, c figma.Color) figma.Node {
	n.Fills = []figma.Paint{solid(c)}
	return n
}

func solid(c figma.Color) figma.Paint {
	return figma.Paint{Type: figma.PaintSolid, Color: &c}
}

func dropShadow(c figma.Color, offsetY, radius float64) figma.Effect {
	return figma.Effect{
		Type:      figma.EffectDropShadow,
		Color:     &c,
		Offset:    &figma.Vector{X: 0, Y: offsetY},
		Radius:    radius,
		Visible:   true,
		BlendMode: "NORMAL",
	}
}

// titleCase turns "movement-builder" into "Movement Builder".
func titleCase(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
