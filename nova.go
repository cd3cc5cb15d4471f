package nova

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. It is always passed and stored by value.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied component-wise by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// boundsOf returns the axis-aligned bounding rect of points.
// Returns the zero Rect for an empty slice.
func boundsOf(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ShapeKind identifies which payload an Entity carries.
type ShapeKind uint8

const (
	ShapeBox      ShapeKind = iota // four-vertex rectangle
	ShapeCircle                    // ellipse given by two radii
	ShapeTriangle                  // three-vertex isosceles triangle
)

// String returns the human-readable shape name. It is also the entity name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "Box"
	case ShapeCircle:
		return "Circle"
	case ShapeTriangle:
		return "Triangle"
	default:
		return "Entity"
	}
}
