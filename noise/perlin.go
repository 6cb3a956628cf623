// Package noise provides deterministic coherent noise for procedural
// geometry.
//
// The main type is [Field], classic three-dimensional gradient (Perlin)
// noise over a 512-entry permutation table. A Field is immutable once
// built, so a single instance can be shared by every caller that needs
// correlated noise, and several instances can be built when independent
// noise domains are wanted.
//
//	src := rand.New(rand.NewPCG(1, 2))
//	f := noise.NewField(src)
//	v := f.Sample(x/30, y/30, seed) // roughly in [-1, 1]
package noise

import "math"

// TableSize is the length of a permutation table.
const TableSize = 512

// baseSize is the number of independent entries drawn from the source.
const baseSize = 256

// Source is a uniform random source returning values in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// Noise is a scalar field over three dimensions.
type Noise interface {
	Sample(x, y, z float64) float64
}

// Gradients is the classic set of twelve edge-midpoint gradient vectors.
var Gradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Field is classic 3D gradient noise. The zero value is not usable; build
// one with NewField.
type Field struct {
	perm [TableSize]int
}

var _ Noise = (*Field)(nil)

// NewField builds a permutation table from 256 independent draws of src,
// each floored into [0, 256). Duplicates are kept: the table is a hash,
// not a permutation. The table is doubled to 512 entries so lookups of
// index+1 never need to wrap.
//
// NewField panics if src is nil.
func NewField(src Source) *Field {
	if src == nil {
		panic("noise: NewField called with nil source")
	}

	var base [baseSize]int
	for i := range base {
		v := int(math.Floor(src.Float64() * baseSize))
		// Guard against sources that return exactly 1.
		base[i] = min(max(v, 0), baseSize-1)
	}

	f := &Field{}
	for i := range f.perm {
		f.perm[i] = base[i&(baseSize-1)]
	}
	return f
}

// Table returns a copy of the permutation table.
func (f *Field) Table() [TableSize]int {
	return f.perm
}

// Sample returns the noise value at (x, y, z), roughly within [-1, 1].
// Integer lattice points always sample to zero. Cell coordinates wrap
// every 256 units, so very distant inputs alias.
func (f *Field) Sample(x, y, z float64) float64 {
	// Find unit grid cell containing point
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	// Relative coordinates within the cell
	x -= fx
	y -= fy
	z -= fz

	// Wrap the integer cells at 255
	X := int(int64(fx) & 255)
	Y := int(int64(fy) & 255)
	Z := int(int64(fz) & 255)

	p := &f.perm

	// Eight hashed gradient indices
	gi000 := p[X+p[Y+p[Z]]] % 12
	gi001 := p[X+p[Y+p[Z+1]]] % 12
	gi010 := p[X+p[Y+1+p[Z]]] % 12
	gi011 := p[X+p[Y+1+p[Z+1]]] % 12
	gi100 := p[X+1+p[Y+p[Z]]] % 12
	gi101 := p[X+1+p[Y+p[Z+1]]] % 12
	gi110 := p[X+1+p[Y+1+p[Z]]] % 12
	gi111 := p[X+1+p[Y+1+p[Z+1]]] % 12

	// Contributions from each corner
	n000 := dot(gi000, x, y, z)
	n100 := dot(gi100, x-1, y, z)
	n010 := dot(gi010, x, y-1, z)
	n110 := dot(gi110, x-1, y-1, z)
	n001 := dot(gi001, x, y, z-1)
	n101 := dot(gi101, x-1, y, z-1)
	n011 := dot(gi011, x, y-1, z-1)
	n111 := dot(gi111, x-1, y-1, z-1)

	u := Fade(x)
	v := Fade(y)
	w := Fade(z)

	// Interpolate along x, then y, then z
	nx00 := mix(n000, n100, u)
	nx01 := mix(n001, n101, u)
	nx10 := mix(n010, n110, u)
	nx11 := mix(n011, n111, u)

	nxy0 := mix(nx00, nx10, v)
	nxy1 := mix(nx01, nx11, v)

	return mix(nxy0, nxy1, w)
}

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at 0 and 1, which keeps the field smooth
// across cell boundaries.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func dot(gi int, x, y, z float64) float64 {
	g := &Gradients[gi]
	return g[0]*x + g[1]*y + g[2]*z
}

func mix(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
