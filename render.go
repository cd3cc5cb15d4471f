package nova

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	defaultCircleSegments = 32
	defaultStrokeWidth    = 1.5
)

// MaxCircleSegments is the most points an ellipse outline is built from.
// Larger requests are capped so fan indices stay within uint16.
const MaxCircleSegments = 4096

// Default palette used when DrawOptions leaves a color unset.
var (
	DefaultFillColor     color.Color = color.RGBA{R: 70, G: 130, B: 180, A: 128} // translucent blue
	DefaultStrokeColor   color.Color = colornames.Lightsteelblue
	DefaultSelectedColor color.Color = colornames.Orange
)

// DrawOptions controls DrawWorld.
type DrawOptions struct {
	// Viewport is the screen-space region being drawn. Entities whose bounds
	// fall outside it are skipped. Zero means the destination image bounds.
	Viewport Rect

	// Segments is the number of points used to approximate an ellipse.
	// Zero means 32; values above MaxCircleSegments are capped.
	Segments int

	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float32

	// SelectedID is drawn with SelectedColor as its stroke. Zero selects nothing.
	SelectedID    int
	SelectedColor color.Color
}

func (o *DrawOptions) segments() int {
	return clampSegments(o.Segments)
}

// clampSegments maps values below 3 to the default and caps the rest.
func clampSegments(n int) int {
	switch {
	case n < 3:
		return defaultCircleSegments
	case n > MaxCircleSegments:
		return MaxCircleSegments
	}
	return n
}

func (o *DrawOptions) strokeWidth() float32 {
	if o.StrokeWidth <= 0 {
		return defaultStrokeWidth
	}
	return o.StrokeWidth
}

func (o *DrawOptions) colors(id int) (fill, stroke color.Color) {
	fill, stroke = o.Fill, o.Stroke
	if fill == nil {
		fill = DefaultFillColor
	}
	if stroke == nil {
		stroke = DefaultStrokeColor
	}
	if id != 0 && id == o.SelectedID {
		stroke = o.SelectedColor
		if stroke == nil {
			stroke = DefaultSelectedColor
		}
	}
	return fill, stroke
}

// LocalOutline returns the entity's outline in its local frame. Box and
// triangle vertices are returned as stored; an ellipse is approximated by
// segments points (capped at MaxCircleSegments), starting at angle 0 and
// running clockwise on screen.
func LocalOutline(e *Entity, segments int) []Vec2 {
	switch s := e.Shape().(type) {
	case *Box:
		out := make([]Vec2, len(s.Vertices))
		copy(out, s.Vertices[:])
		return out
	case *Triangle:
		out := make([]Vec2, len(s.Vertices))
		copy(out, s.Vertices[:])
		return out
	case *Circle:
		segments = clampSegments(segments)
		out := make([]Vec2, segments)
		step := 2 * math.Pi / float64(segments)
		for i := range out {
			sin, cos := math.Sincos(float64(i) * step)
			out[i] = Vec2{cos * s.RadiusX, sin * s.RadiusY}
		}
		return out
	default:
		return nil
	}
}

// ScreenOutline returns the entity's outline in screen coordinates: local
// vertices composed with the entity transform, then the camera view.
func ScreenOutline(e *Entity, cam *Camera, segments int) []Vec2 {
	pts := LocalOutline(e, segments)
	m := multiplyAffine(cam.computeViewMatrix(), e.Transform.matrix())
	for i, p := range pts {
		pts[i] = transformPoint(m, p)
	}
	return pts
}

// DrawWorld draws every visible entity of w onto dst in creation order, so
// later entities appear on top.
func DrawWorld(dst *ebiten.Image, w *World, cam *Camera, opts DrawOptions) {
	vp := opts.Viewport
	if vp == (Rect{}) {
		b := dst.Bounds()
		vp = Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
	visible := cam.VisibleBounds(vp)
	segments := opts.segments()
	width := opts.strokeWidth()

	for _, e := range w.Entities() {
		if !e.Bounds().Intersects(visible) {
			continue
		}
		pts := ScreenOutline(e, cam, segments)
		fill, stroke := opts.colors(e.ID())
		fillPolygon(dst, pts, fill)
		strokePolygon(dst, pts, stroke, width)
	}
}

// fillPolygon fills a convex polygon with a solid color.
func fillPolygon(dst *ebiten.Image, pts []Vec2, clr color.Color) {
	verts, inds := buildPolygonFan(pts, clr)
	if len(inds) == 0 {
		return
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// strokePolygon draws the closed outline through pts.
func strokePolygon(dst *ebiten.Image, pts []Vec2, clr color.Color, width float32) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon drawn from the white pixel. N vertices, 3*(N-2) indices.
// Polygons with more points than uint16 indices can address yield nothing.
func buildPolygonFan(points []Vec2, clr color.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 || n > math.MaxUint16+1 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	// ebiten vertex colors are premultiplied, which matches color.Color.RGBA.
	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = cr
		v.ColorG = cg
		v.ColorB = cb
		v.ColorA = ca
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
