package export

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ShapeKind is the preset geometry a shape ends up with in the package.
type ShapeKind string

const (
	ShapeRect      = ShapeKind(ppt.AutoShapeRectangle)
	ShapeRoundRect = ShapeKind(ppt.AutoShapeRoundedRect)
	ShapeEllipse   = ShapeKind(ppt.AutoShapeEllipse)
	ShapeText      ShapeKind = "text"
)

// Align is the horizontal alignment of a text box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

const defaultTextSize = 14

// TextStyle is the single style applied to every run of a text box.
type TextStyle struct {
	Size   int // pt, 0 means 14
	Bold   bool
	Italic bool
	Color  Color
	Align  Align
}

// ShapeSpec records one placed shape. The finishing pass and the
// companion exports read these instead of the GoPPT objects.
type ShapeSpec struct {
	Kind ShapeKind

	// EMU
	X, Y, W, H int64

	Fill   *Color
	Border *Color
	Radius int // roundRect adj guide value
	Alpha  int // fill opacity in percent, 0 means opaque

	Text  string
	Style TextStyle
}

// Canvas wraps one GoPPT slide and the plan of what was drawn on it.
type Canvas struct {
	Info       SlideInfo
	slide      *ppt.Slide
	background *Color
	shapes     []ShapeSpec
}

func newCanvas(slide *ppt.Slide, info SlideInfo) *Canvas {
	return &Canvas{Info: info, slide: slide}
}

// BackgroundColor returns the slide background, nil when none was set.
func (c *Canvas) BackgroundColor() *Color {
	return c.background
}

// Shapes returns a copy of the shapes in drawing order.
func (c *Canvas) Shapes() []ShapeSpec {
	return append([]ShapeSpec(nil), c.shapes...)
}

// Background sets the slide background to a solid color.
func (c *Canvas) Background(color Color) {
	c.background = &color
	c.slide.SetBackground(solidFill(color.ARGB()))
}

// outline returns a border color for Rect.
func outline(color Color) *Color {
	return &color
}

// Rect draws a filled rectangle. A nil border removes the outline; a
// non-zero radius makes it a rounded rectangle with that adj value.
func (c *Canvas) Rect(x, y, w, h float64, fill Color, border *Color, radius int) {
	kind := ShapeRect
	if radius > 0 {
		kind = ShapeRoundRect
	}
	c.fillShape(ShapeSpec{
		Kind:   kind,
		X:      Inches(x),
		Y:      Inches(y),
		W:      Inches(w),
		H:      Inches(h),
		Fill:   &fill,
		Border: border,
		Radius: radius,
	})
}

// Overlay draws a borderless rectangle whose fill is alpha percent opaque.
func (c *Canvas) Overlay(x, y, w, h float64, fill Color, alpha int) {
	c.fillShape(ShapeSpec{
		Kind:  ShapeRect,
		X:     Inches(x),
		Y:     Inches(y),
		W:     Inches(w),
		H:     Inches(h),
		Fill:  &fill,
		Alpha: alpha,
	})
}

// Dot draws a filled circle centered on (x, y).
func (c *Canvas) Dot(x, y, r float64, fill Color) {
	c.fillShape(ShapeSpec{
		Kind: ShapeEllipse,
		X:    Inches(x) - Inches(r),
		Y:    Inches(y) - Inches(r),
		W:    Inches(r * 2),
		H:    Inches(r * 2),
		Fill: &fill,
	})
}

// fillShape adds a preset autoshape. Borderless shapes get no <a:ln>.
func (c *Canvas) fillShape(spec ShapeSpec) {
	shape := c.slide.CreateAutoShape().SetAutoShapeType(ppt.AutoShapeType(spec.Kind))
	shape.SetOffsetX(spec.X).SetOffsetY(spec.Y)
	shape.SetWidth(spec.W).SetHeight(spec.H)
	shape.SetSolidFill(ppt.NewColor(spec.Fill.ARGB()))
	if spec.Border != nil {
		shape.SetBorder(ppt.NewBorder().
			SetSolidFill(ppt.NewColor(spec.Border.ARGB())).
			SetWidth(lineWidthEMU))
	}
	c.shapes = append(c.shapes, spec)
}

// Text places a word-wrapped text box. Each line of text becomes its own
// paragraph carrying the same style.
func (c *Canvas) Text(text string, x, y, w, h float64, style TextStyle) {
	if style.Size == 0 {
		style.Size = defaultTextSize
	}
	spec := ShapeSpec{
		Kind:  ShapeText,
		X:     Inches(x),
		Y:     Inches(y),
		W:     Inches(w),
		H:     Inches(h),
		Text:  text,
		Style: style,
	}

	shape := c.slide.CreateRichTextShape()
	shape.SetOffsetX(spec.X).SetOffsetY(spec.Y)
	shape.SetWidth(spec.W).SetHeight(spec.H)
	shape.SetWordWrap(true)

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		font := tr.GetFont()
		font.SetSize(style.Size).SetBold(style.Bold).SetColor(ppt.NewColor(style.Color.ARGB()))
		font.Italic = style.Italic
		font.Name = deckFontFamily
		alignParagraph(shape.GetActiveParagraph(), style.Align)
	}
	c.shapes = append(c.shapes, spec)
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignParagraph(p *ppt.Paragraph, align Align) {
	h := ppt.HorizontalLeft
	switch align {
	case AlignCenter:
		h = ppt.HorizontalCenter
	case AlignRight:
		h = ppt.HorizontalRight
	}
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(h))
}
