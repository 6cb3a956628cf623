package grain

import "math"

// Segment is a path vertex with Bezier handles.
// In and Out are relative to Point; zero handles give straight edges.
type Segment struct {
	Point Point
	In    Point
	Out   Point
}

// Path is an ordered sequence of segments with an arclength
// parameterization. Consecutive segments are joined by cubic Bezier
// curves; a closed path adds a curve from the last segment back to the
// first.
//
// Paths are mutated in place by the texturing operations (Displace,
// Wiggle, Flatten, Smooth); callers own every path they create or
// receive.
type Path struct {
	Segments []Segment
	Closed   bool

	// Fill and Stroke are nil when the path is not filled or stroked.
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64

	// ClipMask marks the path as the mask of its parent Group.
	ClipMask bool
}

func (*Path) isItem() {}

// NewPath creates an open path through the given points.
func NewPath(points ...Point) *Path {
	p := &Path{Segments: make([]Segment, 0, max(len(points), 16))}
	for _, pt := range points {
		p.Add(pt)
	}
	return p
}

// Line creates a two-vertex open path from a to b.
func Line(a, b Point) *Path {
	return NewPath(a, b)
}

// RegularPolygon creates a closed polygon with the given number of sides
// inscribed in a circle of radius around center.
// Polygons whose side count is a multiple of three point upward; the
// others have a flat top edge.
func RegularPolygon(center Point, sides int, radius float64) *Path {
	p := &Path{Closed: true}
	if sides < 3 {
		sides = 3
	}
	step := 2 * math.Pi / float64(sides)
	vector := Pt(0, radius)
	offset := 0.5
	if sides%3 == 0 {
		vector = Pt(0, -radius)
		offset = -1
	}
	p.Segments = make([]Segment, 0, sides)
	for i := 0; i < sides; i++ {
		p.Add(center.Add(vector.Rotate((float64(i) + offset) * step)))
	}
	return p
}

// Circle creates a closed circle made of four cubic Bezier arcs.
func Circle(center Point, r float64) *Path {
	return Ellipse(center, r, r)
}

// Ellipse creates a closed axis-aligned ellipse with radii rx and ry made
// of four cubic Bezier arcs, starting at its rightmost point.
func Ellipse(center Point, rx, ry float64) *Path {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox, oy := rx*k, ry*k
	cx, cy := center.X, center.Y

	return &Path{
		Closed: true,
		Segments: []Segment{
			{Point: Pt(cx+rx, cy), In: Pt(0, -oy), Out: Pt(0, oy)},
			{Point: Pt(cx, cy+ry), In: Pt(ox, 0), Out: Pt(-ox, 0)},
			{Point: Pt(cx-rx, cy), In: Pt(0, oy), Out: Pt(0, -oy)},
			{Point: Pt(cx, cy-ry), In: Pt(-ox, 0), Out: Pt(ox, 0)},
		},
	}
}

// Star creates a closed star with the given number of points. Vertices
// alternate between radius1 and radius2, starting straight above the
// center at radius1.
func Star(center Point, points int, radius1, radius2 float64) *Path {
	points = max(points, 2) * 2
	p := &Path{Closed: true, Segments: make([]Segment, 0, points)}
	step := 2 * math.Pi / float64(points)
	for i := 0; i < points; i++ {
		r := radius1
		if i%2 == 1 {
			r = radius2
		}
		p.Add(center.Add(Pt(0, -r).Rotate(float64(i) * step)))
	}
	return p
}

// RectPath creates a closed path tracing r clockwise (on screen) from its
// top-left corner.
func RectPath(r Rect) *Path {
	p := NewPath(r.Min, r.TopRight(), r.Max, r.BottomLeft())
	p.Closed = true
	return p
}

// Add appends a vertex with zero handles.
func (p *Path) Add(pt Point) {
	p.Segments = append(p.Segments, Segment{Point: pt})
}

// Close marks the path closed.
func (p *Path) Close() {
	p.Closed = true
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	return len(p.Segments)
}

// Points returns a copy of the vertex positions.
func (p *Path) Points() []Point {
	pts := make([]Point, len(p.Segments))
	for i, s := range p.Segments {
		pts[i] = s.Point
	}
	return pts
}

// Curves returns the Bezier curves between consecutive segments,
// including the closing curve of a closed path.
func (p *Path) Curves() []CubicBez {
	n := len(p.Segments)
	if n < 2 {
		return nil
	}
	count := n - 1
	if p.Closed {
		count = n
	}
	curves := make([]CubicBez, count)
	for i := range curves {
		curves[i] = p.curve(i)
	}
	return curves
}

// curve returns the curve starting at segment i.
func (p *Path) curve(i int) CubicBez {
	a := p.Segments[i]
	b := p.Segments[(i+1)%len(p.Segments)]
	return CubicBez{
		P0: a.Point,
		P1: a.Point.Add(a.Out),
		P2: b.Point.Add(b.In),
		P3: b.Point,
	}
}

// Smooth sets each segment's handles so the path passes through its
// vertices as a Catmull-Rom spline. Vertex positions are unchanged.
func (p *Path) Smooth() {
	n := len(p.Segments)
	if n < 3 {
		return
	}
	pts := p.Points()
	for i := range p.Segments {
		var prev, next Point
		switch {
		case p.Closed:
			prev = pts[(i-1+n)%n]
			next = pts[(i+1)%n]
		case i == 0:
			p.Segments[i].In = Point{}
			p.Segments[i].Out = pts[1].Sub(pts[0]).Div(3)
			continue
		case i == n-1:
			p.Segments[i].In = pts[n-2].Sub(pts[n-1]).Div(3)
			p.Segments[i].Out = Point{}
			continue
		default:
			prev = pts[i-1]
			next = pts[i+1]
		}
		tangent := next.Sub(prev).Div(6)
		p.Segments[i].In = tangent.Neg()
		p.Segments[i].Out = tangent
	}
}

// ClearHandles turns every curve into a straight edge.
func (p *Path) ClearHandles() {
	for i := range p.Segments {
		p.Segments[i].In = Point{}
		p.Segments[i].Out = Point{}
	}
}

// Clone creates a deep copy of the path, style included.
func (p *Path) Clone() *Path {
	result := *p
	result.Segments = make([]Segment, len(p.Segments))
	copy(result.Segments, p.Segments)
	if p.Fill != nil {
		c := *p.Fill
		result.Fill = &c
	}
	if p.Stroke != nil {
		c := *p.Stroke
		result.Stroke = &c
	}
	return &result
}

// CloneItem implements Item.
func (p *Path) CloneItem() Item {
	return p.Clone()
}

// Transform applies m to every vertex and handle in place.
func (p *Path) Transform(m Matrix) {
	for i, s := range p.Segments {
		p.Segments[i] = Segment{
			Point: m.TransformPoint(s.Point),
			In:    m.TransformVector(s.In),
			Out:   m.TransformVector(s.Out),
		}
	}
}

// Rotate rotates the path by deg degrees around center.
func (p *Path) Rotate(deg float64, center Point) {
	p.Transform(RotateAbout(deg, center))
}

// Translate moves the path by d.
func (p *Path) Translate(d Point) {
	p.Transform(Translate(d.X, d.Y))
}

// Scale scales the path around its bounds center.
func (p *Path) Scale(sx, sy float64) {
	p.Transform(ScaleAbout(sx, sy, p.Bounds().Center()))
}

// SetFill sets the fill color.
func (p *Path) SetFill(c Color) *Path {
	p.Fill = &c
	return p
}

// SetStroke sets the stroke color and width.
func (p *Path) SetStroke(c Color, width float64) *Path {
	p.Stroke = &c
	p.StrokeWidth = width
	return p
}
