package coverage

import "math"

// Field geometry in yards. The x axis runs sideline to sideline, the y axis
// runs down the field with the defense on the positive side of the LOS.
const (
	FieldWidth  = 53.33  // sideline to sideline
	FieldCenter = 26.665 // midfield line used for strength/slot classification
	LeftHashX   = 23.58
	RightHashX  = 29.75
)

// Vec2 is a 2D field position in yards.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp linearly interpolates between a and b. t is clamped to [0,1].
func Lerp(a, b Vec2, t float64) Vec2 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// ClampX keeps an x coordinate on the field, one yard in from each sideline.
func ClampX(x float64) float64 {
	const margin = 1.0
	if x < margin {
		return margin
	}
	if x > FieldWidth-margin {
		return FieldWidth - margin
	}
	return x
}

// StepToward advances from cur toward target by at most maxStep, snapping to
// the target when the remaining distance is within one step. This is the only
// movement-integration primitive in the engine; every per-tick mover uses it
// so the snap behaviour is uniform.
func StepToward(cur, target Vec2, maxStep float64) Vec2 {
	d := target.Sub(cur)
	dist := d.Len()
	if dist <= maxStep || dist < 1e-9 {
		return target
	}
	return cur.Add(d.Scale(maxStep / dist))
}
