package recipes

import (
	"math"

	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

const (
	inkHex      = "#262523"
	blueInkHex  = "#343942"
	inkAlpha    = 0.5
	dabAlpha    = 0.1
	eraserSides = 100
	paintSides  = 50
	paintDabs   = 50

	minClipRadius   = 3
	maxClipRadius   = 30
	lightFillChance = 0.35
	ringChance      = 0.35
	ringScale       = 1.25
	redrawChance    = 0.1
	wigglyChance    = 0.2
	straightChance  = 0.725
	lineRedoChance  = 0.1
)

// Clips inks circles, dots and lines into the middle of bounds, then
// rubs parts of the drawing out with translucent paper-colored dabs.
// Small circles are often filled with paint dabs clipped to their
// outline. Some items are sent behind everything drawn before them.
func Clips(sk *grain.Sketch, bounds grain.Rect, cfg *config.Config) *grain.Group {
	r := sk.Rand()
	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = grain.White
	}
	ink := grain.Hex(inkHex)
	paper := grain.RectPath(bounds).SetFill(bg)
	area := bounds.ScaleCenter(cfg.Clips.Scale)

	back, front := grain.NewGroup(), grain.NewGroup()
	for i := 0; i < cfg.Clips.Circles; i++ {
		drawClipCircle(sk, area, ink, bg, back, front)
	}
	for i := 0; i < cfg.Clips.Dots; i++ {
		dot := grain.Circle(r.PointInRect(area), r.Range(1, 3)).SetFill(ink).SetStroke(ink, 1)
		sk.Displace(dot, 6, 40, 5)
		front.Add(dot)
	}
	for i := 0; i < cfg.Clips.Lines; i++ {
		drawClipLine(sk, area, ink, front)
	}
	for i := 0; i < cfg.Clips.Erasers; i++ {
		center := r.PointInRect(area)
		spread := r.Range(10, 200)
		for j := 0; j < cfg.Clips.EraserStrokes; j++ {
			dab := grain.RegularPolygon(r.PointInCircle(center, spread), eraserSides, r.Range(5, 20))
			sk.Displace(dab, 6, 5, 13)
			front.Add(dab.SetFill(bg.WithAlpha(dabAlpha)))
		}
	}

	coarse := grainOptions(cfg)
	coarse.MaxPoints /= 10
	coarse.MinSize, coarse.MaxSize = 0.5, 2

	out := grain.NewGroup(paper, back, front)
	out.Add(sk.Grain(paper, grainOptions(cfg)), sk.Grain(paper, coarse))
	grain.Logger().Debug("clips drawn", "behind", back.Len(), "front", front.Len())
	return out
}

// sendBack places item below everything already in g.
func sendBack(g *grain.Group, item grain.Item) {
	g.Children = append([]grain.Item{item}, g.Children...)
}

// drawClipCircle draws one inked circle. The smaller it is, the likelier
// it gets filled with paint dabs; dabs the circle fully encloses are
// drawn as they are, the others are clipped to the circle.
func drawClipCircle(sk *grain.Sketch, area grain.Rect, ink, bg grain.Color, back, front *grain.Group) {
	r := sk.Rand()
	center := r.PointInRect(area)
	radius := r.Range(minClipRadius, maxClipRadius)
	circle := grain.Circle(center, radius).SetStroke(ink, 1)
	sk.Displace(circle, 6, 40, 5)

	var above []grain.Item
	darkChance := math.Pow(grain.Remap(radius, minClipRadius, maxClipRadius, 1, 0), 3)
	switch {
	case r.Chance(darkChance):
		for j := 0; j < paintDabs; j++ {
			dab := grain.RegularPolygon(r.PointInCircle(center, radius), paintSides, r.Range(0.1*radius, 0.75*radius))
			sk.Displace(dab, 6, 5, 3)
			col := ink
			if r.Chance(0.1) {
				col = grain.Hex(blueInkHex)
			}
			dab.SetFill(col.WithAlpha(inkAlpha))

			var cut grain.Item = dab
			if !circle.ContainsRect(dab.Bounds()) {
				mask := circle.Clone()
				mask.Fill, mask.Stroke = nil, nil
				cut = grain.NewClipGroup(mask, dab)
			}
			if r.Chance(0.5) {
				sendBack(back, cut)
			} else {
				above = append(above, cut)
			}
		}
	case r.Chance(lightFillChance):
		circle.SetFill(bg)
	}

	if r.Chance(0.5) {
		sendBack(back, circle)
	} else {
		front.Add(circle)
	}
	front.Add(above...)

	if r.Chance(ringChance) {
		ring := circle.Clone()
		ring.Scale(ringScale, ringScale)
		ring.Fill = nil
		if r.Chance(0.5) {
			// Paper-colored rings erase what they cross.
			ring.SetStroke(bg, r.Range(5, 10)*0.5)
		} else {
			ring.SetStroke(ink, 2)
		}
		sk.Displace(ring, 6, 40, 5)
		front.Add(ring)
	}

	if r.Chance(redrawChance) {
		prev := circle
		for j, n := 0, r.Int(1, 10); j < n; j++ {
			dup := prev.Clone()
			dup.Fill = nil
			dup.StrokeWidth = 0.5
			sk.Displace(dup, 6, r.Range(10, 80), r.Range(1, 10))
			front.Add(dup)
			prev = dup
		}
	}
}

// drawClipLine inks a straight run of points from a random start, either
// toward a random point up to 400 units away or straight down, and
// roughens it. One in five lines is made very wiggly.
func drawClipLine(sk *grain.Sketch, area grain.Rect, ink grain.Color, front *grain.Group) {
	r := sk.Rand()
	start := r.PointInRect(area)
	var end grain.Point
	if r.Chance(straightChance) {
		dist := r.Range(10, 400)
		sin, cos := math.Sincos(r.Range(0, 2*math.Pi))
		end = start.Add(grain.Pt(cos*dist, sin*dist))
	} else {
		end = start.Add(grain.Pt(0, r.Range(10, 400)))
	}
	dir := end.Sub(start).Normalize()

	divisions := r.Range(10, 100)
	incr := start.Distance(end) / divisions
	line := grain.NewPath().SetStroke(ink.WithAlpha(inkAlpha), 1)
	for j := 0; float64(j) < divisions; j++ {
		line.Add(start.Add(dir.Mul(float64(j) * incr)))
	}

	freq, amp := 40.0, 5.0
	if r.Chance(wigglyChance) {
		freq /= 200
		amp *= 20
	}
	sk.Displace(line, 6, freq, amp)
	front.Add(line)

	if r.Chance(lineRedoChance) {
		dup := line.Clone()
		sk.Displace(dup, 6, freq, amp)
		front.Add(dup)
	}
}
