// Package raster draws grain item trees into RGBA images.
//
// Paths are filled with the anti-aliasing rasterizer from
// golang.org/x/image/vector. Strokes are expanded into quads along the
// flattened outline with round joins and caps. A clip group renders its
// content into a scratch layer which is composited through the coverage
// of its mask.
//
// Usage:
//
//	c := raster.NewCanvas(800, 600, raster.WithBackground(grain.White))
//	c.Draw(scene)
//	err := c.SavePNG("out.png")
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/grain"
	"golang.org/x/image/vector"
)

// Canvas is a software render target.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	z         *vector.Rasterizer
	tolerance float64
	paths     int

	// origin is the device position of the rasterizer's top-left pixel.
	origin grain.Point
	// last is the pixel rectangle of the most recent rasterization.
	last image.Rectangle
}

// NewCanvas creates a transparent canvas, or one cleared to the
// background color when WithBackground is given.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		z:         vector.NewRasterizer(width, height),
		tolerance: o.tolerance,
	}
	if o.background != nil {
		c.Clear(*o.background)
	}
	return c
}

// Render draws item onto a new width x height canvas and returns the image.
func Render(width, height int, item grain.Item, opts ...Option) *image.RGBA {
	c := NewCanvas(width, height, opts...)
	c.Draw(item)
	return c.Image()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image. It is not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col grain.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// Draw renders items in order, each on top of the previous ones.
func (c *Canvas) Draw(items ...grain.Item) {
	c.paths = 0
	for _, item := range items {
		c.drawItem(c.img, item)
	}
	grain.Logger().Debug("canvas drawn", "items", len(items), "paths", c.paths)
}

func (c *Canvas) drawItem(dst draw.Image, item grain.Item) {
	switch it := item.(type) {
	case *grain.Path:
		if it != nil && !it.ClipMask {
			c.drawPath(dst, it)
		}
	case *grain.Group:
		if it != nil {
			c.drawGroup(dst, it)
		}
	}
}

func (c *Canvas) drawGroup(dst draw.Image, g *grain.Group) {
	mask := g.Mask()
	if mask == nil {
		for _, child := range g.Children {
			c.drawItem(dst, child)
		}
		return
	}

	// Nothing outside the mask survives, so the scratch layers only need
	// to cover the mask's pixels.
	r, ok := pixelRect(dst.Bounds(), mask.Bounds(), 1)
	if !ok {
		return
	}
	layer := image.NewRGBA(r)
	for _, child := range g.Content() {
		c.drawItem(layer, child)
	}

	coverage := image.NewAlpha(r)
	c.fill(coverage, mask, image.Opaque)
	draw.DrawMask(dst, r, layer, r.Min, coverage, r.Min, draw.Over)
}

func (c *Canvas) drawPath(dst draw.Image, p *grain.Path) {
	c.paths++
	if p.Fill != nil {
		c.fill(dst, p, image.NewUniform(p.Fill.NRGBA()))
	}
	if p.Stroke != nil {
		width := p.StrokeWidth
		if width <= 0 {
			width = 1
		}
		c.stroke(dst, p, width, image.NewUniform(p.Stroke.NRGBA()))
	}
}

// fill rasterizes the path's curves directly; open paths are closed
// implicitly.
func (c *Canvas) fill(dst draw.Image, p *grain.Path, src image.Image) {
	if p.Len() < 2 {
		return
	}
	r, ok := c.reset(dst, p.Bounds(), 1)
	if !ok {
		return
	}

	c.z.MoveTo(c.local(p.Segments[0].Point))
	for _, cv := range p.Curves() {
		if cv.IsLine() {
			c.z.LineTo(c.local(cv.P3))
			continue
		}
		x1, y1 := c.local(cv.P1)
		x2, y2 := c.local(cv.P2)
		x3, y3 := c.local(cv.P3)
		c.z.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	c.z.ClosePath()
	c.z.Draw(dst, r, src, image.Point{})
}

// reset sizes the rasterizer to the pixels of dst that shape, grown by
// pad on every side, can touch. It reports false when there are none.
func (c *Canvas) reset(dst draw.Image, shape grain.Rect, pad float64) (image.Rectangle, bool) {
	r, ok := pixelRect(dst.Bounds(), shape, pad)
	if !ok {
		return r, false
	}
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	c.origin = grain.Pt(float64(r.Min.X), float64(r.Min.Y))
	c.last = r
	return r, true
}

// local converts a device point into rasterizer coordinates.
func (c *Canvas) local(p grain.Point) (x, y float32) {
	return float32(p.X - c.origin.X), float32(p.Y - c.origin.Y)
}

// pixelRect returns the integer rectangle covering shape grown by pad,
// clamped to clip. Clamping happens before the conversion to int so huge
// or non-finite coordinates never overflow.
func pixelRect(clip image.Rectangle, shape grain.Rect, pad float64) (image.Rectangle, bool) {
	x0 := math.Max(math.Floor(shape.Min.X-pad), float64(clip.Min.X))
	y0 := math.Max(math.Floor(shape.Min.Y-pad), float64(clip.Min.Y))
	x1 := math.Min(math.Ceil(shape.Max.X+pad), float64(clip.Max.X))
	y1 := math.Min(math.Ceil(shape.Max.Y+pad), float64(clip.Max.Y))
	if !(x0 < x1 && y0 < y1) {
		return image.Rectangle{}, false
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1)), true
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}
