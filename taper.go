package grain

import "math"

// TaperOptions configures Taper.
type TaperOptions struct {
	// MinThickness and MaxThickness bound the stroke thickness, drawn
	// once per stroke.
	MinThickness float64
	MaxThickness float64

	// Samples is the number of centerline positions visited.
	Samples int

	// ThinningChance is the probability of halving the thickness.
	ThinningChance float64

	// Taper narrows the stroke toward both ends with a cosine profile.
	Taper bool

	// Profile replaces TaperScale as the width factor of each sample
	// when Taper is set.
	Profile func(i, samples int) float64
}

// DefaultTaperOptions returns the brush-stroke defaults: 2 to 5 units
// thick, 20 samples, a 10% chance of a thin stroke, tapered ends.
func DefaultTaperOptions() TaperOptions {
	return TaperOptions{
		MinThickness:   2,
		MaxThickness:   5,
		Samples:        20,
		ThinningChance: 0.1,
		Taper:          true,
	}
}

// TaperScale returns the width factor of sample i out of samples:
// cos((π/2 / samples) * |i - samples/2| * 2), which is 1 at the middle
// sample and falls toward 0 at the ends.
func TaperScale(i, samples int) float64 {
	falloff := math.Abs(float64(i)-float64(samples)/2) * 2
	return math.Cos((math.Pi / 2 / float64(samples)) * falloff)
}

// EndTaperScale returns cos((π/2 / samples) * i): full width at the first
// sample, narrowing toward the last. It tapers a stroke at its end only.
func EndTaperScale(i, samples int) float64 {
	return math.Cos((math.Pi / 2 / float64(samples)) * float64(i))
}

// Taper widens a centerline into a closed, filled outline. It walks
// o.Samples positions evenly spread along the centerline (kept within 1%
// of either end), offsetting each point along the normal by half the
// thickness on the way out and by minus half the thickness on the way
// back. Positions where the centerline reports no point or normal are
// skipped, so the result has at most 2*Samples vertices.
//
// The returned path is closed and smoothed; the centerline is left
// untouched. If the centerline is a *Path with a fill, the outline
// inherits it.
func (sk *Sketch) Taper(center Sampler, o TaperOptions) *Path {
	if center == nil {
		panic("grain: Taper called with nil centerline")
	}

	thickness := sk.rand.Range(o.MinThickness, o.MaxThickness)
	if sk.rand.Chance(o.ThinningChance) {
		thickness /= 2
	}

	out := &Path{Closed: true}
	if p, ok := center.(*Path); ok && p.Fill != nil {
		fill := *p.Fill
		out.Fill = &fill
	}
	if o.Samples < 1 {
		return out
	}

	profile := o.Profile
	if profile == nil {
		profile = TaperScale
	}

	length := center.Length()
	positions := samplePositions(length, o.Samples)
	out.Segments = make([]Segment, 0, 2*o.Samples)

	type sample struct {
		point, normal Point
		scale         float64
	}
	samples := make([]sample, o.Samples)
	valid := make([]bool, o.Samples)
	for i, sp := range positions {
		pt, okP := center.PointAt(sp)
		n, okN := center.NormalAt(sp)
		if !okP || !okN {
			continue
		}
		scale := 1.0
		if o.Taper {
			scale = profile(i, o.Samples)
		}
		samples[i] = sample{point: pt, normal: n.Normalize(), scale: scale}
		valid[i] = true
	}

	half := thickness / 2
	for i := 0; i < o.Samples; i++ {
		if valid[i] {
			s := samples[i]
			out.Add(s.point.Add(s.normal.Mul(half * s.scale)))
		}
	}
	for i := o.Samples - 1; i >= 0; i-- {
		if valid[i] {
			s := samples[i]
			out.Add(s.point.Sub(s.normal.Mul(half * s.scale)))
		}
	}

	if skipped := 2*o.Samples - out.Len(); skipped > 0 {
		Logger().Debug("taper skipped degenerate samples", "skipped", skipped)
	}

	out.Smooth()
	return out
}

// samplePositions spreads n arclength offsets over [0, length], clamped to
// [0.01*length, 0.99*length].
func samplePositions(length float64, n int) []float64 {
	positions := make([]float64, n)
	lo, hi := 0.01*length, 0.99*length
	for i := range positions {
		var sp float64
		if n == 1 {
			sp = length / 2
		} else {
			sp = length * float64(i) / float64(n-1)
		}
		positions[i] = math.Min(math.Max(sp, lo), hi)
	}
	return positions
}

// Thicken widens a centerline into a constant-width outline, leaving out
// the first offset samples, and roughens the edge with light noise. It is
// the body of a brush stroke onto which tapered strokes are layered.
func (sk *Sketch) Thicken(center Sampler, thickness float64, samples, offset int) *Path {
	if center == nil {
		panic("grain: Thicken called with nil centerline")
	}
	out := &Path{Closed: true}
	if p, ok := center.(*Path); ok && p.Fill != nil {
		fill := p.Fill.Shift(0, 0, -0.1).WithAlpha(1)
		out.Fill = &fill
	}
	if samples < 1 || offset >= samples {
		return out
	}
	offset = max(offset, 0)

	positions := samplePositions(center.Length(), samples)
	half := thickness / 2
	emit := func(i int, sign float64) {
		pt, okP := center.PointAt(positions[i])
		n, okN := center.NormalAt(positions[i])
		if okP && okN {
			out.Add(pt.Add(n.Normalize().Mul(sign * half)))
		}
	}
	for i := offset; i < samples; i++ {
		emit(i, 1)
	}
	for i := samples - 1; i >= offset; i-- {
		emit(i, -1)
	}

	sk.Displace(out, wiggleSampleDistance, 100, 1)
	return out
}
