package grain

import "github.com/gogpu/grain/noise"

// Option configures a Sketch during creation.
//
// Example:
//
//	// Default: Perlin noise seeded from src, random seed offset
//	sk := grain.NewSketch(src)
//
//	// Fixed seed offset and jagged edges
//	sk := grain.NewSketch(src, grain.WithSeed(17), grain.WithSmoothing(false))
type Option func(*sketchOptions)

// sketchOptions holds optional configuration for Sketch creation.
type sketchOptions struct {
	noise     noise.Noise
	seed      *float64
	smoothing bool
}

// defaultOptions returns the default sketch options.
func defaultOptions() sketchOptions {
	return sketchOptions{
		noise:     nil, // Will be built from the sketch source if nil
		smoothing: true,
	}
}

// WithNoise sets the noise field used for displacement and noise walks.
// Use this to share one field between sketches or to swap in
// noise.NewSimplex.
func WithNoise(n noise.Noise) Option {
	return func(o *sketchOptions) {
		o.noise = n
	}
}

// WithSeed fixes the seed offset used as the third noise coordinate.
// By default it is drawn from [0, 255) once at construction.
func WithSeed(seed float64) Option {
	return func(o *sketchOptions) {
		o.seed = &seed
	}
}

// WithSmoothing controls whether Displace fits a smooth curve through the
// displaced vertices. Disable it to keep jagged, hand-cut edges.
func WithSmoothing(enabled bool) Option {
	return func(o *sketchOptions) {
		o.smoothing = enabled
	}
}
