package grain

import (
	"fmt"
	"math"
)

// GrowPreset selects how Grow lays out the points of a stem.
type GrowPreset int

const (
	// GrowStraight places the points on a straight line.
	GrowStraight GrowPreset = iota
	// GrowWobbly pushes each point sideways, more so toward the tip.
	GrowWobbly
)

// StemPreset selects how Stem renders a list of points.
type StemPreset int

const (
	// StemLine draws a thin polyline, smoothed half of the time.
	StemLine StemPreset = iota
	// StemTapered widens the smoothed points into a white shape that
	// narrows toward its end half of the time.
	StemTapered
)

// BlossomPreset selects the shape of a flower head.
type BlossomPreset int

const (
	BlossomEllipse BlossomPreset = iota
	BlossomCircle
	BlossomStar
)

// LeafPreset selects what Leaves places around a flower head.
type LeafPreset int

const (
	// LeavesAsLines draws a short line along the outward normal.
	LeavesAsLines LeafPreset = iota
	// LeavesAsCircles draws small white circles resting on the outline.
	LeavesAsCircles
)

var (
	growPresetNames    = []string{GrowStraight: "straight", GrowWobbly: "wobbly"}
	stemPresetNames    = []string{StemLine: "line", StemTapered: "tapered"}
	blossomPresetNames = []string{BlossomEllipse: "ellipse", BlossomCircle: "circle", BlossomStar: "star"}
	leafPresetNames    = []string{LeavesAsLines: "lines", LeavesAsCircles: "circles"}
)

func presetName(names []string, kind string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func (p GrowPreset) String() string    { return presetName(growPresetNames, "GrowPreset", int(p)) }
func (p StemPreset) String() string    { return presetName(stemPresetNames, "StemPreset", int(p)) }
func (p BlossomPreset) String() string { return presetName(blossomPresetNames, "BlossomPreset", int(p)) }
func (p LeafPreset) String() string    { return presetName(leafPresetNames, "LeafPreset", int(p)) }

// pickPreset returns round(u * (n-1)) for a uniform u, so the first and
// last of n presets are half as likely as the ones in between.
func pickPreset(r *Rand, n int) int {
	return int(math.Round(r.Float64() * float64(n-1)))
}

// PickGrowPreset picks a grow preset at random.
func PickGrowPreset(r *Rand) GrowPreset {
	return GrowPreset(pickPreset(r, len(growPresetNames)))
}

// PickStemPreset picks a stem preset at random.
func PickStemPreset(r *Rand) StemPreset {
	return StemPreset(pickPreset(r, len(stemPresetNames)))
}

// PickBlossomPreset picks a blossom preset at random; circles are picked
// half of the time.
func PickBlossomPreset(r *Rand) BlossomPreset {
	return BlossomPreset(pickPreset(r, len(blossomPresetNames)))
}

// PickLeafPreset picks a leaf preset at random.
func PickLeafPreset(r *Rand) LeafPreset {
	return LeafPreset(pickPreset(r, len(leafPresetNames)))
}

// Flower drawing constants.
const (
	stemSegments    = 11
	stemSamples     = 20
	outlineShakeW   = 0.35
	minStemLength   = 15
	maxStemLength   = 165
	maxStemTiltDeg  = 60
	minBlossomSize  = 5
	maxBlossomSize  = 15
	minLeafLength   = 1
	maxLeafLength   = 6
	wobbleMinFactor = 0.01
	wobbleMaxFactor = 0.21
)

// Grow lays out segments points starting at origin and heading along
// dir, spaced length/segments apart. The wobbly preset draws an offset
// factor f in [0.01, 0.21) once and moves point i sideways by a uniform
// share of length*f*i/segments.
func (sk *Sketch) Grow(preset GrowPreset, origin, dir Point, length float64, segments int) []Point {
	if segments < 1 {
		return nil
	}
	dir = dir.Normalize()
	step := length / float64(segments)

	var normal Point
	var maxOffset float64
	if preset == GrowWobbly {
		maxOffset = length * sk.rand.Range(wobbleMinFactor, wobbleMaxFactor)
		normal = dir.Rotate(math.Pi / 2)
	}

	pts := make([]Point, segments)
	for i := range pts {
		p := origin.Add(dir.Mul(step * float64(i)))
		if preset == GrowWobbly {
			p = p.Add(normal.Mul(maxOffset * sk.rand.Float64() * float64(i) / float64(segments)))
		}
		pts[i] = p
	}
	return pts
}

// Stem renders pts with the given preset. Both presets stroke in black;
// the tapered one is also filled white.
func (sk *Sketch) Stem(preset StemPreset, pts []Point) *Path {
	if preset != StemTapered {
		p := NewPath(pts...).SetStroke(Black, 1)
		if !sk.rand.Chance(0.5) {
			p.Smooth()
		}
		return p
	}

	thickness := sk.rand.Range(1, 11)
	taper := !sk.rand.Chance(0.5)

	center := NewPath(pts...).SetFill(White)
	center.Smooth()
	return sk.Taper(center, TaperOptions{
		MinThickness: thickness,
		MaxThickness: thickness,
		Samples:      stemSamples,
		Taper:        taper,
		Profile:      EndTaperScale,
	}).SetStroke(Black, 1)
}

// Blossom creates a flower head of about size at pos, stroked in black
// and filled with a random opaque color.
func (sk *Sketch) Blossom(preset BlossomPreset, pos Point, size float64) *Path {
	var p *Path
	switch preset {
	case BlossomStar:
		points := int(math.Round(sk.rand.Range(3, 6)))
		inner := sk.rand.Range(0.25, 1)
		p = Star(pos, points, size*inner, size*(1-inner))
	case BlossomEllipse:
		w := size * sk.rand.Range(0.75, 1.5)
		h := size * sk.rand.Range(0.75, 1.5)
		p = Ellipse(pos, w/2, h/2)
	default:
		p = Circle(pos, size/2)
	}
	return p.SetStroke(Black, 1).SetFill(RGB(sk.rand.Float64(), sk.rand.Float64(), sk.rand.Float64()))
}

// Leaves rings head with 5 to 15 leaves spaced evenly along its outline.
// Line leaves run along the outward normal for 75 to 100% of leafLength;
// circle leaves share a base radius in [1, 6) and sit just outside the
// outline. Positions without a point or normal are skipped.
//
// Leaves panics if head is nil.
func (sk *Sketch) Leaves(preset LeafPreset, head *Path, leafLength float64) *Group {
	if head == nil {
		panic("grain: Leaves called with nil blossom")
	}
	g := NewGroup()
	count := sk.rand.Range(5, 15)
	length := head.Length()
	step := length / count

	var radius float64
	if preset == LeavesAsCircles {
		radius = sk.rand.Range(1, 6)
	}

	for i := 0; float64(i) < count; i++ {
		at := math.Min(length, step*float64(i))
		p, okP := head.PointAt(at)
		n, okN := head.NormalAt(at)
		if !okP || !okN {
			continue
		}
		n = n.Normalize()

		if preset == LeavesAsCircles {
			r := radius * sk.rand.Range(0.75, 1)
			g.Add(Circle(p.Add(n.Mul(r)), r).SetStroke(Black, 1).SetFill(White))
			continue
		}
		tip := p.Add(n.Mul(leafLength * sk.rand.Range(0.75, 1)))
		g.Add(Line(p, tip).SetStroke(Black, 1))
	}
	return g
}

// Flower draws a small flower growing up from origin, tilted by up to 60
// degrees. Each part uses a randomly picked preset. The drawing is
// roughened with noise and covered by a thinner, unfilled copy roughened
// again, which gives it a shaky hand-drawn outline. The result holds the
// drawing and the copy, in that order.
func (sk *Sketch) Flower(origin Point) *Group {
	grow := PickGrowPreset(sk.rand)
	stem := PickStemPreset(sk.rand)
	blossom := PickBlossomPreset(sk.rand)
	leaves := PickLeafPreset(sk.rand)
	Logger().Debug("growing flower",
		"grow", grow.String(), "stem", stem.String(),
		"blossom", blossom.String(), "leaves", leaves.String())

	dir := Pt(0, -1).Rotate(deg2rad(sk.rand.Range(-maxStemTiltDeg, maxStemTiltDeg)))
	pts := sk.Grow(grow, origin, dir, sk.rand.Range(minStemLength, maxStemLength), stemSegments)

	stemPath := sk.Stem(stem, pts)
	head := sk.Blossom(blossom, pts[len(pts)-1], sk.rand.Range(minBlossomSize, maxBlossomSize))
	ring := sk.Leaves(leaves, head, sk.rand.Range(minLeafLength, maxLeafLength))

	drawing := NewGroup(stemPath, head, ring)
	sk.Displace(drawing, wiggleSampleDistance, 40, 6)

	shaky := drawing.CloneItem().(*Group)
	Walk(shaky, func(p *Path) {
		p.Fill = nil
		p.StrokeWidth = outlineShakeW
	})
	sk.Displace(shaky, wiggleSampleDistance, 10, 4)

	return NewGroup(drawing, shaky)
}
