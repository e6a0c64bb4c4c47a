package figma

// NodeType is the closed set of Figma node kinds figsync understands.
type NodeType string

// Node types returned by the Figma REST API.
const (
	NodeDocument  NodeType = "DOCUMENT"
	NodeCanvas    NodeType = "CANVAS"
	NodeFrame     NodeType = "FRAME"
	NodeGroup     NodeType = "GROUP"
	NodeEllipse   NodeType = "ELLIPSE"
	NodeRectangle NodeType = "RECTANGLE"
	NodeText      NodeType = "TEXT"
	NodeVector    NodeType = "VECTOR"
	NodeComponent NodeType = "COMPONENT"
	NodeInstance  NodeType = "INSTANCE"
)

// PaintType tags the variant held by a Paint.
type PaintType string

// Paint variants. Only SOLID and the gradient family carry data figsync reads.
const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintType = "GRADIENT_DIAMOND"
	PaintImage           PaintType = "IMAGE"
)

// IsGradient reports whether the paint carries gradient stops.
func (t PaintType) IsGradient() bool {
	switch t {
	case PaintGradientLinear, PaintGradientRadial, PaintGradientAngular, PaintGradientDiamond:
		return true
	case PaintSolid, PaintImage:
		return false
	default:
		return false
	}
}

// EffectType tags the variant held by an Effect.
type EffectType string

// Effect variants.
const (
	EffectDropShadow     EffectType = "DROP_SHADOW"
	EffectInnerShadow    EffectType = "INNER_SHADOW"
	EffectLayerBlur      EffectType = "LAYER_BLUR"
	EffectBackgroundBlur EffectType = "BACKGROUND_BLUR"
)

// Color is an RGBA color with channels normalized to 0..1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ColorStop is one stop of a gradient paint.
type ColorStop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Paint is a fill or stroke. Type decides which fields are meaningful:
// SOLID uses Color, gradients use GradientStops and GradientTransform.
type Paint struct {
	Type              PaintType   `json:"type"`
	Color             *Color      `json:"color,omitempty"`
	GradientStops     []ColorStop `json:"gradientStops,omitempty"`
	GradientTransform [][]float64 `json:"gradientTransform,omitempty"`
}

// Solid returns the color of a SOLID paint. It reports false for any other
// paint type and for a solid paint without a color.
func (p Paint) Solid() (Color, bool) {
	if p.Type != PaintSolid || p.Color == nil {
		return Color{}, false
	}
	return *p.Color, true
}

// Stops returns the stops of a gradient paint, which may be empty. It
// reports false for solid and image paints.
func (p Paint) Stops() ([]ColorStop, bool) {
	if !p.Type.IsGradient() {
		return nil, false
	}
	return p.GradientStops, true
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Effect is a shadow or blur attached to a node.
type Effect struct {
	Type      EffectType `json:"type"`
	Color     *Color     `json:"color,omitempty"`
	Offset    *Vector    `json:"offset,omitempty"`
	Radius    float64    `json:"radius"`
	Spread    float64    `json:"spread,omitempty"`
	Visible   bool       `json:"visible"`
	BlendMode string     `json:"blendMode,omitempty"`
}

// TypeStyle holds the text properties of a TEXT node.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
}

// Rectangle is an absolute bounding box.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is one element of a Figma document tree. The same shape is used for
// nodes read from the API and for node-creation payloads; reads populate
// AbsoluteBoundingBox, writes populate X/Y/Width/Height.
type Node struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name"`
	Type                NodeType   `json:"type"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Effects             []Effect   `json:"effects,omitempty"`
	X                   float64    `json:"x,omitempty"`
	Y                   float64    `json:"y,omitempty"`
	Width               float64    `json:"width,omitempty"`
	Height              float64    `json:"height,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
	CornerRadius        float64    `json:"cornerRadius,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
}

// Size returns the node's width and height, preferring the bounding box
// reported by the API. ok is false when either dimension is zero.
func (n Node) Size() (width, height float64, ok bool) {
	width, height = n.Width, n.Height
	if n.AbsoluteBoundingBox != nil {
		width, height = n.AbsoluteBoundingBox.Width, n.AbsoluteBoundingBox.Height
	}
	return width, height, width != 0 && height != 0
}

// Walk visits n and its descendants depth-first, stopping early when fn
// returns false.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Document is the metadata and tree of a Figma file.
type Document struct {
	Key          string `json:"-"`
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Root         Node   `json:"document"`
}

// CreatedDocument is returned when a new file is created.
type CreatedDocument struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// nodesResponse is the body of GET /files/:key/nodes. Unknown ids map to null.
type nodesResponse struct {
	Name         string               `json:"name"`
	LastModified string               `json:"lastModified"`
	Version      string               `json:"version"`
	Nodes        map[string]*nodeData `json:"nodes"`
}

type nodeData struct {
	Document Node `json:"document"`
}

// imagesResponse is the body of GET /images/:key.
type imagesResponse struct {
	Err    string             `json:"err"`
	Images map[string]*string `json:"images"`
}

// errorResponse is the error body Figma returns on non-2xx responses.
type errorResponse struct {
	Status  int    `json:"status"`
	Err     string `json:"err"`
	Message string `json:"message"`
}
