package grain

import "github.com/gogpu/grain/noise"

// Sketch carries the randomness shared by every texturing operation of
// one composition: the uniform source, the noise field and the seed
// offset used as the third noise coordinate. Two sketches built from
// identically seeded sources produce identical geometry.
//
// A Sketch is not safe for concurrent use.
type Sketch struct {
	rand      *Rand
	noise     noise.Noise
	seed      float64
	smoothing bool
}

// NewSketch creates a sketch drawing from src. Unless overridden by
// options, the noise field is a noise.Field built from src and the seed
// offset is drawn from [0, 255).
//
// NewSketch panics if src is nil.
func NewSketch(src Source, opts ...Option) *Sketch {
	if src == nil {
		panic("grain: NewSketch called with nil source")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sk := &Sketch{
		rand:      NewRand(src),
		noise:     o.noise,
		smoothing: o.smoothing,
	}
	if sk.noise == nil {
		sk.noise = noise.NewField(src)
	}
	if o.seed != nil {
		sk.seed = *o.seed
	} else {
		sk.seed = sk.rand.Range(0, 255)
	}

	Logger().Debug("sketch created", "seed", sk.seed, "smoothing", sk.smoothing)
	return sk
}

// Rand returns the sketch's random helper.
func (sk *Sketch) Rand() *Rand {
	return sk.rand
}

// Noise returns the sketch's noise field.
func (sk *Sketch) Noise() noise.Noise {
	return sk.noise
}

// Seed returns the seed offset.
func (sk *Sketch) Seed() float64 {
	return sk.seed
}
