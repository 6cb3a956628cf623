package grain

import (
	"fmt"
	"math"
	"strings"
)

// HatchStyle selects one of the shading presets built by Hatch.
type HatchStyle int

const (
	// HatchCover fills the region with parallel wiggled lines, sometimes
	// crossed by a second, rotated family.
	HatchCover HatchStyle = iota

	// HatchCrossHatch draws short strokes from the boundary toward the
	// interior along the region's average normal, in one to three
	// angularly offset layers.
	HatchCrossHatch

	// HatchStar draws diameter-spanning lines through the region's center.
	HatchStar

	// HatchFlow draws a few heavy, randomly rotated strokes inside a
	// roughened copy of the region's bounding box.
	HatchFlow
)

var hatchStyleNames = [...]string{
	HatchCover:      "cover",
	HatchCrossHatch: "crosshatch",
	HatchStar:       "star",
	HatchFlow:       "flow",
}

// String returns the lowercase preset name.
func (s HatchStyle) String() string {
	if s < 0 || int(s) >= len(hatchStyleNames) {
		return fmt.Sprintf("HatchStyle(%d)", int(s))
	}
	return hatchStyleNames[s]
}

// ParseHatchStyle returns the style with the given name.
func ParseHatchStyle(name string) (HatchStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range hatchStyleNames {
		if n == name {
			return HatchStyle(i), nil
		}
	}
	return 0, fmt.Errorf("grain: unknown hatch style %q", name)
}

// PickHatchStyle picks a style at random: cross-hatch 33%, cover 47%,
// star 10% and flow 10%.
func PickHatchStyle(r *Rand) HatchStyle {
	choice := r.Float64()
	switch {
	case choice < 0.33:
		return HatchCrossHatch
	case choice < 0.8:
		return HatchCover
	case choice < 0.9:
		return HatchStar
	default:
		return HatchFlow
	}
}

// Hatch parameters shared by the presets.
const (
	scribbleChance  = 0.125
	hatchStopsPerPx = 5.0
)

// hatchStroke is the stroke applied to every hatch line.
var hatchStroke = Black

// Hatch shades region with the given preset and returns a clip group:
// the first child is a mask derived from the region, the remaining
// children are the hatch strokes. The cover preset also rotates the
// region itself, together with the hatching, by a small random angle.
//
// Hatch panics if region is nil.
func (sk *Sketch) Hatch(style HatchStyle, region *Path) *Group {
	if region == nil {
		panic("grain: Hatch called with nil region")
	}
	bounds := region.Bounds()
	if bounds.Empty() {
		return NewClipGroup(region.Clone())
	}

	Logger().Debug("hatching region", "style", style.String(), "vertices", region.Len())

	switch style {
	case HatchCrossHatch:
		return hatchCrossHatch(sk, region, bounds)
	case HatchStar:
		return hatchStar(sk, region, bounds)
	case HatchFlow:
		return hatchFlow(sk, bounds)
	default:
		return hatchCover(sk, region, bounds)
	}
}

// hatchLine adds a wiggled stroke from a to b to dst, occasionally with a
// heavier scribbled duplicate.
func hatchLine(sk *Sketch, dst *Group, a, b Point, stops int, freq, amp float64) {
	h := Line(a, b).SetStroke(hatchStroke, 1)
	sk.Wiggle(h, stops, freq, amp)

	if sk.rand.Chance(scribbleChance) {
		scribble := h.Clone()
		sk.Wiggle(scribble, stops, 3, 2)
		dst.Add(scribble)
	}
	dst.Add(h)
}

func hatchCover(sk *Sketch, region *Path, bounds Rect) *Group {
	steps := sk.rand.Range(10, 20)
	div := bounds.Width() / steps

	mask := region.Clone()
	sk.Displace(mask, wiggleSampleDistance, 30, 15)

	hatches := NewGroup()
	for i := 0; float64(i) < steps; i++ {
		offset := Pt(div*float64(i), 0)
		a := bounds.Min.Add(offset)
		b := bounds.BottomLeft().Add(offset)
		hatchLine(sk, hatches, a, b, int(a.Distance(b)/div), 5, 1)
	}

	// Sometimes cross the first family with a second one of the same
	// spacing.
	if sk.rand.Chance(0.5) {
		rows := int(math.Ceil(bounds.Height() / div))
		crossed := NewGroup()
		for i := 0; i < rows; i++ {
			offset := Pt(0, div*float64(i))
			a := bounds.Min.Add(offset)
			b := bounds.TopRight().Add(offset)
			hatchLine(sk, crossed, a, b, int(a.Distance(b)/div), 5, 1)
		}
		crossed.Rotate(sk.rand.Range(-20, 20), crossed.Bounds().Center())
		hatches.Add(crossed)
	}

	clip := NewClipGroup(mask, hatches)

	angle := sk.rand.Range(-10, 10)
	center := bounds.Center()
	region.Rotate(angle, center)
	clip.Rotate(angle, center)
	return clip
}

func hatchCrossHatch(sk *Sketch, region *Path, bounds Rect) *Group {
	clip := NewClipGroup(region.Clone())
	radius := math.Min(bounds.Width(), bounds.Height()) / 2

	layers := sk.rand.Int(1, 4)
	length := region.Length()
	step := length * sk.rand.Range(0.01, 0.025)
	start := sk.rand.Range(0, 0.1) * length
	end := sk.rand.Range(0.3, 1) * length
	if step <= 0 {
		return clip
	}

	at := func(d float64) float64 {
		return math.Min(math.Max(0.01, d), length*0.99)
	}

	// Path normals face outward, so strokes run against the average.
	var avg Point
	for d := start; d < end; d += step {
		if n, ok := region.NormalAt(at(d)); ok {
			avg = avg.Add(n)
		}
	}
	inward := avg.Normalize().Neg()

	angle := 0.0
	for layer := 0; layer < layers; layer++ {
		for d := start; d < end; d += step {
			hatchLength := sk.rand.Range(radius*0.2, radius*0.5)
			p, ok := region.PointAt(at(d))
			if !ok {
				continue
			}
			e := p.Add(inward.Mul(hatchLength))

			h := Line(p, e).SetStroke(hatchStroke, 1)
			h.Rotate(angle, p.Lerp(e, 0.5))
			sk.Wiggle(h, 10, 5, 1)
			clip.Add(h)
		}
		angle += sk.rand.Range(45, 135)
	}
	return clip
}

func hatchStar(sk *Sketch, region *Path, bounds Rect) *Group {
	clip := NewClipGroup(region.Clone())

	center := bounds.Center()
	length := math.Max(bounds.Width(), bounds.Height())
	steps := sk.rand.Int(1, 15)
	div := 360 / float64(steps)

	for i := 0; i < steps; i++ {
		a := center.Sub(Pt(length, 0))
		b := center.Add(Pt(length, 0))

		h := Line(a, b).SetStroke(hatchStroke, 1)
		sk.Wiggle(h, int(a.Distance(b)/hatchStopsPerPx), 5, 1)
		sk.Displace(h, wiggleSampleDistance, sk.rand.Range(10, 50), sk.rand.Range(1, 10))

		h.Rotate(float64(i)*div, center)
		h.Translate(Pt(sk.rand.Range(1, 5), sk.rand.Range(1, 5)))
		clip.Add(h)
	}
	return clip
}

func hatchFlow(sk *Sketch, bounds Rect) *Group {
	mask := RectPath(bounds)
	sk.Displace(mask, wiggleSampleDistance, 30, 50)

	steps := sk.rand.Range(3, 10)
	div := bounds.Width() / steps

	hatches := NewGroup()
	for i := 0; float64(i) < steps; i++ {
		offset := Pt(div*float64(i), 0)
		a := bounds.Min.Add(offset)
		b := bounds.BottomLeft().Add(offset)
		hatchLine(sk, hatches, a, b, int(a.Distance(b)/hatchStopsPerPx), 30, 10)
	}
	hatches.Rotate(sk.rand.Range(0, 360), hatches.Bounds().Center())

	return NewClipGroup(mask, hatches)
}
