package recipes

import (
	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

const (
	underlayChance = 0.2
	underlayWidth  = 6
)

// Flow traces curves through a flow field laid over bounds and widens
// each trace into a tapered stroke, some over a darker constant-width
// underlay.
func Flow(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group {
	r := sk.Rand()
	kind, err := cfg.FieldKind()
	if err != nil {
		kind = grain.FieldNoise
	}
	field := grain.NewFlowField(bounds, cfg.Flow.Rows, cfg.Flow.Cols)
	field.Generate(kind, sk.Noise(), cfg.Flow.Frequency)

	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = grain.White
	}
	paper := grain.RectPath(bounds).SetFill(bg)
	out := grain.NewGroup(paper)

	opts := grain.DefaultTaperOptions()
	opts.Samples = max(cfg.Flow.Steps/2, 2)
	for i := 0; i < cfg.Flow.Curves; i++ {
		trace := sk.Trace(field, r.PointInRect(bounds), cfg.Flow.Steps, cfg.Flow.StepSize)
		if trace.Len() < 2 {
			continue
		}
		trace.SetFill(r.HSL(200, 240, 0.6, 0.45))
		if r.Chance(underlayChance) {
			if body := sk.Thicken(trace, underlayWidth, opts.Samples, 1); body.Len() >= 3 {
				out.Add(body)
			}
		}
		stroke := sk.Taper(trace, opts)
		if stroke.Len() < 3 {
			continue
		}
		out.Add(stroke)
	}
	out.Add(sk.Grain(paper, grainOptions(cfg)))
	grain.Logger().Debug("flow traced", "field", kind, "items", out.Len())
	return out
}
