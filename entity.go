package nova

import "math"

// Shape is the geometric payload of an Entity. The set of implementations is
// closed: *Box, *Circle and *Triangle. Consumers switch on the concrete type.
//
// All vertex data is expressed in the entity's local frame.
type Shape interface {
	Kind() ShapeKind
	isShape()
}

// Box is a rectangle with corners (0,0), (w,0), (w,h), (0,h).
type Box struct {
	Vertices [4]Vec2
}

// Circle is an ellipse centered on the entity position. RadiusX == RadiusY
// for a true circle.
type Circle struct {
	RadiusX float64
	RadiusY float64
}

// Triangle is an isosceles triangle: apex at (w/2, 0), base corners at
// (w, h) and (0, h).
type Triangle struct {
	Vertices [3]Vec2
}

func (*Box) Kind() ShapeKind      { return ShapeBox }
func (*Circle) Kind() ShapeKind   { return ShapeCircle }
func (*Triangle) Kind() ShapeKind { return ShapeTriangle }

func (*Box) isShape()      {}
func (*Circle) isShape()   {}
func (*Triangle) isShape() {}

func newBox(size Vec2) *Box {
	return &Box{Vertices: [4]Vec2{
		{0, 0},
		{size.X, 0},
		{size.X, size.Y},
		{0, size.Y},
	}}
}

func newCircle(rx, ry float64) *Circle {
	return &Circle{RadiusX: rx, RadiusY: ry}
}

func newTriangle(size Vec2) *Triangle {
	return &Triangle{Vertices: [3]Vec2{
		{size.X / 2, 0},
		{size.X, size.Y},
		{0, size.Y},
	}}
}

// Entity is a placed, drawable shape owned by a World.
//
// The id, name and shape payload are assigned once by the World and cannot
// be replaced. The payload's own fields stay editable.
type Entity struct {
	id    int
	name  string
	shape Shape

	// Transform is owned by the entity. Position was copied from the
	// constructor argument.
	Transform Transform
}

func newEntity(id int, pos Vec2, shape Shape) *Entity {
	e := &Entity{
		id:        id,
		name:      shape.Kind().String(),
		Transform: NewTransform(),
		shape:     shape,
	}
	e.Transform.Position = pos
	return e
}

// ID returns the entity's world-unique identifier.
func (e *Entity) ID() int {
	return e.id
}

// Name returns the human-readable shape kind ("Box", "Circle", "Triangle").
func (e *Entity) Name() string {
	return e.name
}

// Shape returns the shape payload. It is never nil.
func (e *Entity) Shape() Shape {
	return e.shape
}

// Kind returns the kind of the entity's shape payload.
func (e *Entity) Kind() ShapeKind {
	return e.shape.Kind()
}

// Box returns the box payload, or false if the entity is not a box.
func (e *Entity) Box() (*Box, bool) {
	b, ok := e.shape.(*Box)
	return b, ok
}

// Circle returns the circle payload, or false if the entity is not a circle.
func (e *Entity) Circle() (*Circle, bool) {
	c, ok := e.shape.(*Circle)
	return c, ok
}

// Triangle returns the triangle payload, or false if the entity is not a triangle.
func (e *Entity) Triangle() (*Triangle, bool) {
	t, ok := e.shape.(*Triangle)
	return t, ok
}

// LocalBounds returns the shape's bounding rect in the local frame.
// Negative sizes and radii are normalized so Width and Height are never negative.
func (e *Entity) LocalBounds() Rect {
	switch s := e.shape.(type) {
	case *Box:
		return boundsOf(s.Vertices[:])
	case *Triangle:
		return boundsOf(s.Vertices[:])
	case *Circle:
		rx, ry := math.Abs(s.RadiusX), math.Abs(s.RadiusY)
		return Rect{X: -rx, Y: -ry, Width: 2 * rx, Height: 2 * ry}
	default:
		return Rect{}
	}
}

// Bounds returns the entity's axis-aligned bounding rect in world space.
func (e *Entity) Bounds() Rect {
	r := e.LocalBounds()
	r.X += e.Transform.Position.X
	r.Y += e.Transform.Position.Y
	return r
}

// Contains reports whether the world-space point p lies inside the shape.
// Degenerate shapes (zero area) contain nothing.
func (e *Entity) Contains(p Vec2) bool {
	local := e.Transform.ToLocal(p)
	switch s := e.shape.(type) {
	case *Box:
		return convexContains(s.Vertices[:], local)
	case *Triangle:
		return convexContains(s.Vertices[:], local)
	case *Circle:
		rx, ry := math.Abs(s.RadiusX), math.Abs(s.RadiusY)
		if rx == 0 || ry == 0 {
			return false
		}
		nx := local.X / rx
		ny := local.Y / ry
		return nx*nx+ny*ny <= 1
	default:
		return false
	}
}

// convexContains reports whether p lies inside a convex polygon using a
// cross-product sign test. Works for either winding order.
func convexContains(points []Vec2, p Vec2) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]

		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	// All crosses zero means a degenerate polygon.
	return positive || negative
}
