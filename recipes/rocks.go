package recipes

import (
	"math"

	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

const (
	rockPadding  = 0.75
	rockStretch  = 1.5
	outlineWidth = 1
)

// Rocks packs the margin-scaled bounds into rectangles and draws a
// hatched, noise-worn rock in most of them.
func Rocks(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group {
	r := sk.Rand()
	out := grain.NewGroup()
	leaves := grain.PackRects(r, bounds.ScaleCenter(cfg.Rocks.Margin), cfg.Rocks.MaxLevels)
	for _, leaf := range leaves {
		if r.Chance(cfg.Rocks.RockChance) {
			out.Add(drawRock(sk, leaf, cfg.Rocks.HoleChance))
		}
	}
	grain.Logger().Debug("rocks drawn", "cells", len(leaves), "rocks", out.Len())
	return out
}

func drawRock(sk *grain.Sketch, cell grain.Rect, holeChance float64) *grain.Group {
	r := sk.Rand()
	center := cell.Center()
	radius := math.Min(cell.Width(), cell.Height()) * 0.5 * rockPadding

	outline := grain.RegularPolygon(center, r.Int(4, 50), radius)
	outline.SetStroke(grain.Black, outlineWidth)
	if cell.Width() > cell.Height() {
		outline.Scale(rockStretch, 1)
	} else {
		outline.Scale(1, rockStretch)
	}

	// coarse, then fine
	sk.Displace(outline, 6, 60, 20)
	sk.Displace(outline, 6, 20, 5)

	style := grain.PickHatchStyle(r)
	rock := grain.NewGroup(sk.Hatch(style, outline))
	if style == grain.HatchStar || style == grain.HatchFlow {
		outline.Stroke = nil
	}
	rock.Add(outline)

	if outline.Stroke != nil {
		scribble := outline.Clone()
		sk.Wiggle(scribble, 200, 30, 3)
		rock.Add(scribble)
	}

	if r.Chance(holeChance) {
		hole := grain.RegularPolygon(center, r.Int(3, 7), r.Range(radius*0.25, radius*0.45))
		hole.SetFill(grain.White)
		hole.SetStroke(grain.Black, outlineWidth)
		sk.Wiggle(hole, 100, 10, 3)

		scribble := hole.Clone()
		scribble.Fill = nil
		sk.Wiggle(scribble, 200, 30, 3)
		rock.Add(hole, scribble)
	}
	return rock
}
