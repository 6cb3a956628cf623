package grain

import "math"

// Path operations for arc length measurement, arclength queries,
// resampling, vertex insertion, containment testing and bounding boxes.

// lengthAccuracy is the tolerance used for Bezier arc length estimates.
const lengthAccuracy = 0.01

// lutSteps is the number of chords used to invert arclength on a curve.
const lutSteps = 32

// Sampler is the arclength view of a curve that the stroke and hatch
// builders consume. Queries outside [0, Length()] or on degenerate
// geometry report ok == false; callers skip such samples.
type Sampler interface {
	Length() float64
	PointAt(offset float64) (Point, bool)
	NormalAt(offset float64) (Point, bool)
}

var _ Sampler = (*Path)(nil)

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	var length float64
	for _, c := range p.Curves() {
		length += c.Length(lengthAccuracy)
	}
	return length
}

// location identifies a point on the path by curve index and curve parameter.
type location struct {
	index int
	t     float64
	curve CubicBez
}

// locate maps an arclength offset to a curve and parameter.
func (p *Path) locate(offset float64) (location, bool) {
	curves := p.Curves()
	if len(curves) == 0 || offset < 0 || math.IsNaN(offset) {
		return location{}, false
	}

	const eps = 1e-9
	var walked float64
	for i, c := range curves {
		l := c.Length(lengthAccuracy)
		if offset <= walked+l+eps {
			if l == 0 {
				return location{index: i, curve: c}, true
			}
			f := math.Min(math.Max((offset-walked)/l, 0), 1)
			return location{index: i, t: curveParamAt(c, f), curve: c}, true
		}
		walked += l
	}
	return location{}, false
}

// curveParamAt returns the curve parameter at which the fraction f of the
// curve's arc length has been covered.
func curveParamAt(c CubicBez, f float64) float64 {
	if c.IsLine() || f <= 0 || f >= 1 {
		return f
	}

	var cumulative [lutSteps + 1]float64
	prev := c.P0
	for k := 1; k <= lutSteps; k++ {
		pt := c.Eval(float64(k) / lutSteps)
		cumulative[k] = cumulative[k-1] + prev.Distance(pt)
		prev = pt
	}
	total := cumulative[lutSteps]
	if total == 0 {
		return f
	}

	target := f * total
	for k := 1; k <= lutSteps; k++ {
		if cumulative[k] >= target {
			span := cumulative[k] - cumulative[k-1]
			frac := 0.0
			if span > 0 {
				frac = (target - cumulative[k-1]) / span
			}
			return (float64(k-1) + frac) / lutSteps
		}
	}
	return 1
}

// PointAt returns the point at the given arclength offset.
func (p *Path) PointAt(offset float64) (Point, bool) {
	loc, ok := p.locate(offset)
	if !ok {
		return Point{}, false
	}
	return loc.curve.Eval(loc.t), true
}

// TangentAt returns the unit tangent at the given arclength offset.
func (p *Path) TangentAt(offset float64) (Point, bool) {
	loc, ok := p.locate(offset)
	if !ok {
		return Point{}, false
	}
	tan := loc.curve.Tangent(loc.t).Normalize()
	if tan.IsZero() {
		return Point{}, false
	}
	return tan, true
}

// NormalAt returns the unit normal at the given arclength offset.
// For paths running clockwise on screen the normal points outward.
func (p *Path) NormalAt(offset float64) (Point, bool) {
	tan, ok := p.TangentAt(offset)
	if !ok {
		return Point{}, false
	}
	return tan.Perp(), true
}

// Flatten resamples the path into straight edges whose vertices are
// evenly spaced by approximately spacing along the original arclength.
// Handles are dropped. Paths shorter than spacing keep their vertices, as
// do paths whose length or spacing is not a positive finite number. The
// result never has more than maxFlattenVertices vertices; smaller spacings
// are widened to fit.
func (p *Path) Flatten(spacing float64) {
	length := p.Length()
	if !(spacing > 0) || !(length > spacing) || math.IsInf(length, 0) {
		return
	}

	n := int(math.Min(math.Ceil(length/spacing), maxFlattenVertices))
	step := length / float64(n)
	count := n + 1
	if p.Closed {
		count = n
	}

	curves := p.Curves()
	lengths := make([]float64, len(curves))
	for i, c := range curves {
		lengths[i] = c.Length(lengthAccuracy)
	}

	segments := make([]Segment, 0, count)
	ci, walked := 0, 0.0
	for k := 0; k < count; k++ {
		offset := math.Min(float64(k)*step, length)
		for ci < len(curves)-1 && offset > walked+lengths[ci] {
			walked += lengths[ci]
			ci++
		}
		f := 0.0
		if lengths[ci] > 0 {
			f = math.Min(math.Max((offset-walked)/lengths[ci], 0), 1)
		}
		c := curves[ci]
		segments = append(segments, Segment{Point: c.Eval(curveParamAt(c, f))})
	}
	p.Segments = segments
}

// maxFlattenVertices bounds the vertex count produced by Flatten.
const maxFlattenVertices = 1 << 16

// DivideAt inserts a vertex at the given arclength offset without
// changing the path's shape. It reports false when the offset is out of
// range or already lands on a vertex.
func (p *Path) DivideAt(offset float64) bool {
	loc, ok := p.locate(offset)
	if !ok {
		return false
	}
	const eps = 1e-9
	if loc.t <= eps || loc.t >= 1-eps {
		return false
	}

	i := loc.index
	j := (i + 1) % len(p.Segments)
	c := loc.curve

	var inserted Segment
	if c.IsLine() {
		inserted = Segment{Point: c.Eval(loc.t)}
	} else {
		c1, c2 := c.SplitAt(loc.t)
		p.Segments[i].Out = c1.P1.Sub(c1.P0)
		p.Segments[j].In = c2.P2.Sub(c2.P3)
		inserted = Segment{
			Point: c1.P3,
			In:    c1.P2.Sub(c1.P3),
			Out:   c2.P1.Sub(c2.P0),
		}
	}

	at := i + 1
	p.Segments = append(p.Segments, Segment{})
	copy(p.Segments[at+1:], p.Segments[at:])
	p.Segments[at] = inserted
	return true
}

// Outline flattens the path into a polyline with the given tolerance.
// The first vertex is not repeated at the end of closed paths.
func (p *Path) Outline(tolerance float64) []Point {
	if len(p.Segments) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	pts := make([]Point, 0, len(p.Segments)*4)
	pts = append(pts, p.Segments[0].Point)
	for _, c := range p.Curves() {
		c.flatten(tolerance, func(pt Point) {
			pts = append(pts, pt)
		})
	}
	if p.Closed && len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// Winding returns the winding number of a point relative to the path,
// treating open paths as implicitly closed the way fills do.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (p *Path) Winding(pt Point) int {
	pts := p.Outline(0.25)
	if len(pts) < 3 {
		return 0
	}
	var winding int
	for i := range pts {
		winding += lineWinding(pts[i], pts[(i+1)%len(pts)], pt)
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft returns positive if pt is left of line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// ContainsRect reports whether all four corners of r lie inside the path.
// For convex paths this means the whole rectangle is enclosed.
func (p *Path) ContainsRect(r Rect) bool {
	return p.Contains(r.Min) && p.Contains(r.TopRight()) &&
		p.Contains(r.Max) && p.Contains(r.BottomLeft())
}

// Bounds returns the tight axis-aligned bounding box of the path.
// Uses curve extrema for accuracy.
func (p *Path) Bounds() Rect {
	switch len(p.Segments) {
	case 0:
		return Rect{}
	case 1:
		pt := p.Segments[0].Point
		return NewRect(pt, pt)
	}

	bbox := NewRect(p.Segments[0].Point, p.Segments[0].Point)
	for _, c := range p.Curves() {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}
