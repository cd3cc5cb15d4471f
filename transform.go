package nova

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform places an entity in world space.
//
// Only Position is applied by the current shapes. Rotation and Scale are kept
// as data so they survive edits until renderers start honoring them.
type Transform struct {
	Position Vec2
	Rotation float64 // radians
	Scale    Vec2
}

// NewTransform returns a Transform at the origin with no rotation and unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vec2{1, 1}}
}

// ToWorld converts a point in the entity's local frame to world space.
// Translation only.
func (t Transform) ToWorld(local Vec2) Vec2 {
	return local.Add(t.Position)
}

// ToLocal converts a world-space point into the entity's local frame.
func (t Transform) ToLocal(world Vec2) Vec2 {
	return world.Sub(t.Position)
}

// matrix returns the local-to-world affine matrix. Translation only, matching
// ToWorld.
func (t Transform) matrix() [6]float64 {
	return [6]float64{1, 0, 0, 1, t.Position.X, t.Position.Y}
}

// translateScale builds the affine matrix Translate(tx, ty) * Scale(s).
// Returns [a, b, c, d, tx, ty].
func translateScale(tx, ty, s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, tx, ty}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}
