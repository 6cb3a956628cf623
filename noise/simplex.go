package noise

import "github.com/ojrac/opensimplex-go"

// Simplex is OpenSimplex noise behind the Noise interface. It is an
// alternative to Field when lattice-aligned artifacts are unwanted; its
// output is also roughly in [-1, 1].
type Simplex struct {
	n opensimplex.Noise
}

var _ Noise = (*Simplex)(nil)

// NewSimplex creates OpenSimplex noise for seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample returns the noise value at (x, y, z).
func (s *Simplex) Sample(x, y, z float64) float64 {
	return s.n.Eval3(x, y, z)
}
