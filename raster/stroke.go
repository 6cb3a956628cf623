package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/grain"
)

// joinSides is the number of sides of the polygon approximating round
// joins and caps.
const joinSides = 12

// stroke expands the flattened outline of p into one quad per edge plus
// a round join at every vertex. All pieces share the same orientation, so
// their coverage saturates where they overlap instead of cancelling.
func (c *Canvas) stroke(dst draw.Image, p *grain.Path, width float64, src image.Image) {
	pts := p.Outline(c.tolerance)
	if len(pts) == 0 {
		return
	}
	half := width / 2
	r, ok := c.reset(dst, outlineBounds(pts), half+1)
	if !ok {
		return
	}

	edges := len(pts) - 1
	if p.Closed {
		edges = len(pts)
	}
	for i := 0; i < edges; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		d := b.Sub(a).Normalize()
		if d.IsZero() {
			continue
		}
		n := d.Perp().Mul(half)
		c.polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}
	for _, pt := range pts {
		c.disc(pt, half)
	}
	c.z.Draw(dst, r, src, image.Point{})
}

func outlineBounds(pts []grain.Point) grain.Rect {
	b := grain.Rect{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}

func (c *Canvas) polygon(pts ...grain.Point) {
	c.z.MoveTo(c.local(pts[0]))
	for _, pt := range pts[1:] {
		c.z.LineTo(c.local(pt))
	}
	c.z.ClosePath()
}

func (c *Canvas) disc(center grain.Point, r float64) {
	var pts [joinSides]grain.Point
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / joinSides)
		pts[i] = grain.Pt(center.X+r*cos, center.Y+r*sin)
	}
	c.polygon(pts[:]...)
}
