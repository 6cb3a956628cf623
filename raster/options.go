package raster

import "github.com/gogpu/grain"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Transparent canvas, default flattening tolerance
//	c := raster.NewCanvas(640, 480)
//
//	// Paper-colored canvas
//	c := raster.NewCanvas(640, 480, raster.WithBackground(grain.Hex("#f2ebe9")))
type Option func(*options)

type options struct {
	background *grain.Color
	tolerance  float64
}

func defaultOptions() options {
	return options{
		tolerance: 0.1,
	}
}

// WithBackground clears the canvas to c.
func WithBackground(c grain.Color) Option {
	return func(o *options) {
		o.background = &c
	}
}

// WithTolerance sets the maximum distance, in pixels, between a curve and
// the polyline approximating it when strokes are expanded. Non-positive
// values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
