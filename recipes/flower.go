package recipes

import (
	"cmp"
	"slices"

	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

// Flower plants a meadow of small hand-drawn flowers over a grained
// paper background. Flowers further down are drawn later, so they
// overlap the ones behind them.
func Flower(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group {
	r := sk.Rand()
	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = grain.White
	}
	paper := grain.RectPath(bounds).SetFill(bg)
	out := grain.NewGroup(paper)

	area := bounds.ScaleCenter(cfg.Flower.Margin)
	origins := make([]grain.Point, cfg.Flower.Count)
	for i := range origins {
		origins[i] = r.PointInRect(area)
	}
	slices.SortStableFunc(origins, func(a, b grain.Point) int { return cmp.Compare(a.Y, b.Y) })

	for _, o := range origins {
		out.Add(sk.Flower(o))
	}
	out.Add(sk.Grain(paper, grainOptions(cfg)))
	grain.Logger().Debug("flowers planted", "count", len(origins))
	return out
}
