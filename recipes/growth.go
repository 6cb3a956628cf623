package recipes

import (
	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

// paintLayer parameterizes one pass of paint strokes over a growth body.
type paintLayer struct {
	strokes      int
	hueFalloff   float64
	minThickness float64
	maxThickness float64
	minSteps     float64
	maxSteps     float64
}

// Long sparse strokes first, then a dense layer of short dabs.
var paintLayers = [...]paintLayer{
	{strokes: 5, hueFalloff: 0.025, minThickness: 2, maxThickness: 4, minSteps: 72, maxSteps: 120},
	{strokes: 100, hueFalloff: 0.1, minThickness: 2, maxThickness: 5, minSteps: 3, maxSteps: 5},
}

const (
	paintFrequency   = 0.0095
	paintStepSize    = 5
	strokeHueChance  = 0.015
	minPaintLight    = 0.35
	paintDarkening   = 0.075
	growthSaturation = 0.45
	growthLightness  = 0.6
	packedShrink     = 0.25
)

// Growth scatters noisy blobs covered in tapered paint strokes over a
// grained paper background. With the packed layout the blobs sit at the
// centers of packed circles, sized by the circle they fill.
func Growth(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group {
	r := sk.Rand()
	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = grain.White
	}
	paper := grain.RectPath(bounds).SetFill(bg)

	out := grain.NewGroup(paper)
	if cfg.Growth.Layout == "packed" {
		for _, d := range grain.PackCircles(r, bounds, cfg.Growth.PackRadius, cfg.Growth.Count) {
			out.Add(drawGrowth(sk, d.Center, d.Radius*packedShrink, cfg.Growth.HueChangeChance))
		}
	} else {
		for i := 0; i < cfg.Growth.Count; i++ {
			radius := r.Range(cfg.Growth.MinRadius, cfg.Growth.MaxRadius)
			out.Add(drawGrowth(sk, r.PointInRect(bounds), radius, cfg.Growth.HueChangeChance))
		}
	}
	out.Add(sk.Grain(paper, grainOptions(cfg)))
	return out
}

func drawGrowth(sk *grain.Sketch, center grain.Point, radius, hueChance float64) *grain.Group {
	r := sk.Rand()
	col := r.HSL(180, 230, growthSaturation, growthLightness)
	if r.Chance(hueChance) {
		col = col.Shift(r.Range(-180, 180), 0, 0)
	}
	body := grain.Circle(center, radius).SetFill(col)
	sk.Displace(body, 6, 30, 10)

	g := grain.NewGroup(body)
	for _, layer := range paintLayers {
		paintStrokes(sk, g, col, center, radius, layer)
	}
	return g
}

func paintStrokes(sk *grain.Sketch, dst *grain.Group, base grain.Color, center grain.Point, radius float64, layer paintLayer) {
	r := sk.Rand()
	opts := grain.DefaultTaperOptions()
	opts.MinThickness = layer.minThickness
	opts.MaxThickness = layer.maxThickness

	for i := 0; i < layer.strokes; i++ {
		steps := int(r.Range(layer.minSteps, layer.maxSteps) + 0.999)
		skeleton := sk.NoiseWalk(r.PointInCircle(center, radius), steps, paintStepSize, paintFrequency)

		// Strokes far from the center drift further in hue and darken.
		effect := skeleton.Bounds().Center().Distance(center) / radius
		col := base.Shift(r.Range(-360, 360)*layer.hueFalloff*effect, 0, -paintDarkening*effect)
		if col.L < minPaintLight {
			col.L = minPaintLight
		}
		if r.Chance(strokeHueChance) {
			col = col.Shift(r.Range(0, 360), 0, 0)
		}
		skeleton.SetFill(col)

		stroke := sk.Taper(skeleton, opts)
		if stroke.Len() < 3 {
			continue
		}
		sk.Displace(stroke, 6, 100, 10)
		dst.Add(stroke)
	}
}
