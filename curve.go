package grain

import (
	"math"
	"sort"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// XYWH creates a rectangle from its top-left corner and size.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// TopRight returns the corner at (Max.X, Min.Y).
func (r Rect) TopRight() Point {
	return Pt(r.Max.X, r.Min.Y)
}

// BottomLeft returns the corner at (Min.X, Max.Y).
func (r Rect) BottomLeft() Point {
	return Pt(r.Min.X, r.Max.Y)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ScaleCenter returns the rectangle scaled by s around its center.
func (r Rect) ScaleCenter(s float64) Rect {
	c := r.Center()
	hw, hh := r.Width()*s/2, r.Height()*s/2
	return NewRect(Pt(c.X-hw, c.Y-hh), Pt(c.X+hw, c.Y+hh))
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
// Straight path segments are cubics with P1 == P0 and P2 == P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// IsLine reports whether both control points sit on their endpoints.
func (c CubicBez) IsLine() bool {
	return c.P1 == c.P0 && c.P2 == c.P3
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	if c.IsLine() {
		return c.P0.Lerp(c.P3, t)
	}
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// SplitAt splits the curve at t using de Casteljau.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Tangent returns the derivative vector at parameter t.
// At the ends of a curve whose handle collapses onto its endpoint the
// derivative is zero; the chord toward the next distinct control point
// stands in for it there.
func (c CubicBez) Tangent(t float64) Point {
	if c.IsLine() {
		return c.P3.Sub(c.P0)
	}
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	d := d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
	if d.LengthSquared() > 1e-18 {
		return d
	}
	switch {
	case t < 0.5 && c.P2 != c.P0:
		return c.P2.Sub(c.P0)
	case t >= 0.5 && c.P3 != c.P1:
		return c.P3.Sub(c.P1)
	}
	return c.P3.Sub(c.P0)
}

// Length returns the arc length of the curve.
// accuracy controls the precision of the approximation (smaller = more accurate).
func (c CubicBez) Length(accuracy float64) float64 {
	if c.IsLine() {
		return c.P0.Distance(c.P3)
	}
	return cubicLengthRecursive(c, accuracy*accuracy, 0)
}

// cubicLengthRecursive recursively computes cubic arc length.
func cubicLengthRecursive(c CubicBez, accuracySq float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)

	diff := polygon - chord
	if diff*diff <= accuracySq || depth > 16 {
		return (chord + polygon) / 2
	}

	c1, c2 := c.Subdivide()
	return cubicLengthRecursive(c1, accuracySq, depth+1) + cubicLengthRecursive(c2, accuracySq, depth+1)
}

// Extrema returns parameter values where the derivative is zero (extrema points).
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	if c.IsLine() {
		return bbox
	}
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// flatten emits points along the curve (excluding P0) so that no chord
// deviates from the curve by more than tolerance.
func (c CubicBez) flatten(tolerance float64, fn func(Point)) {
	if c.IsLine() {
		fn(c.P3)
		return
	}
	flattenCubicRecursive(c, tolerance*tolerance, 0, fn)
}

func flattenCubicRecursive(c CubicBez, toleranceSq float64, depth int, fn func(Point)) {
	if cubicFlatness(c) <= toleranceSq || depth > 16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, depth+1, fn)
	flattenCubicRecursive(c2, toleranceSq, depth+1, fn)
}

// cubicFlatness returns the squared maximum distance of the control points
// from the chord, an upper bound on the curve's deviation.
func cubicFlatness(c CubicBez) float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return (math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)) / 16
}

// solveQuadraticInUnitInterval returns the real roots of a*t^2 + b*t + c
// that fall within [0, 1].
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	var roots []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		roots = []float64{-c / b}
	} else {
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return nil
		case disc == 0:
			roots = []float64{-b / (2 * a)}
		default:
			// Numerically stable form avoids cancellation.
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			roots = []float64{q / a}
			if q != 0 {
				roots = append(roots, c/q)
			}
		}
	}

	result := roots[:0]
	for _, t := range roots {
		if t >= 0 && t <= 1 {
			result = append(result, t)
		}
	}
	return result
}
