package grain

import "math"

// GrainOptions configures Grain.
type GrainOptions struct {
	// MaxPoints is the number of candidate positions tried. Candidates
	// outside the region are dropped, so fewer dots may be placed.
	MaxPoints int

	// MinSize and MaxSize bound each dot's radius.
	MinSize float64
	MaxSize float64

	// HueVar, SatVar and LightVar bound the uniform jitter applied to the
	// region's fill color per dot.
	HueVar   float64
	SatVar   float64
	LightVar float64

	// Alpha is the opacity of every dot.
	Alpha float64

	// Falloff thins the grain toward the center of the region: a
	// candidate survives with probability proportional to its distance
	// from the bounds center.
	Falloff bool
}

// DefaultGrainOptions returns a light speckle.
func DefaultGrainOptions() GrainOptions {
	return GrainOptions{
		MaxPoints: 10,
		MinSize:   0.25,
		MaxSize:   1,
		HueVar:    25,
		SatVar:    0.25,
		LightVar:  0.25,
		Alpha:     0.5,
	}
}

// Grain scatters small filled dots inside region. Candidate centers are
// drawn uniformly from the region's bounding box and kept only when the
// region contains them, so the realized count scales with how much of
// the box the region fills. Each dot takes the region's fill color (black
// when unfilled) with jittered hue, saturation and lightness and a fixed
// alpha. The region itself is not modified.
func (sk *Sketch) Grain(region *Path, o GrainOptions) *Group {
	if region == nil {
		panic("grain: Grain called with nil region")
	}

	base := Black
	if region.Fill != nil {
		base = *region.Fill
	}

	bounds := region.Bounds()
	center := bounds.Center()
	maxD := math.Hypot(bounds.Width(), bounds.Height()) / 2

	dots := NewGroup()
	for i := 0; i < o.MaxPoints; i++ {
		pos := sk.rand.PointInRect(bounds)
		if !region.Contains(pos) {
			continue
		}
		if o.Falloff && maxD > 0 && !sk.rand.Chance(Remap(pos.Distance(center), 0, maxD, 0, 1)) {
			continue
		}

		dot := Circle(pos, sk.rand.Range(o.MinSize, o.MaxSize))
		dot.SetFill(sk.rand.Jitter(base, o.HueVar, o.SatVar, o.LightVar).WithAlpha(o.Alpha))
		dots.Add(dot)
	}

	Logger().Debug("grain scattered", "candidates", o.MaxPoints, "placed", dots.Len())
	return dots
}
