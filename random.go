package grain

import (
	"math"
	"math/rand/v2"
)

// Source is a uniform random source returning values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it; tests substitute
// deterministic sources.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rand samples scalars, points and colors from a Source.
// It holds no state beyond the source and is not safe for concurrent use
// unless the source is.
type Rand struct {
	src Source
}

// NewRand wraps src. It panics if src is nil.
func NewRand(src Source) *Rand {
	if src == nil {
		panic("grain: NewRand called with nil source")
	}
	return &Rand{src: src}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Range returns a value in [a, b).
func (r *Rand) Range(a, b float64) float64 {
	return a + r.src.Float64()*(b-a)
}

// Int returns floor(Range(a, b)).
func (r *Rand) Int(a, b float64) int {
	return int(math.Floor(r.Range(a, b)))
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.src.Float64() < p
}

// PointIn returns a point with x in [x0, x1) and y in [y0, y1).
func (r *Rand) PointIn(x0, x1, y0, y1 float64) Point {
	x := r.Range(x0, x1)
	return Pt(x, r.Range(y0, y1))
}

// PointInRect returns a uniformly distributed point inside rect.
func (r *Rand) PointInRect(rect Rect) Point {
	return r.PointIn(rect.Min.X, rect.Max.X, rect.Min.Y, rect.Max.Y)
}

// PointInCircle returns a uniformly distributed point inside the disk.
func (r *Rand) PointInCircle(center Point, radius float64) Point {
	d := radius * math.Sqrt(r.src.Float64())
	theta := r.src.Float64() * 2 * math.Pi
	sin, cos := math.Sincos(theta)
	return Pt(center.X+d*cos, center.Y+d*sin)
}

// HSL returns an opaque color with hue drawn from [minHue, maxHue) and the
// given saturation and lightness.
func (r *Rand) HSL(minHue, maxHue, s, l float64) Color {
	return HSL(r.Range(minHue, maxHue), s, l)
}

// Jitter shifts c by independent uniform offsets in [-dh, dh), [-ds, ds)
// and [-dl, dl).
func (r *Rand) Jitter(c Color, dh, ds, dl float64) Color {
	h := r.Range(-dh, dh)
	s := r.Range(-ds, ds)
	return c.Shift(h, s, r.Range(-dl, dl))
}

// Lerp interpolates from a to b, clamping t to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

// Remap maps v from [aMin, aMax] onto [bMin, bMax] without clamping.
func Remap(v, aMin, aMax, bMin, bMax float64) float64 {
	return (v-aMin)*(bMax-bMin)/(aMax-aMin) + bMin
}
