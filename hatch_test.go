package grain

import (
	"fmt"
	"math"
	"testing"
)

var allHatchStyles = []HatchStyle{HatchCover, HatchCrossHatch, HatchStar, HatchFlow}

func TestHatchStyleNames(t *testing.T) {
	for _, s := range allHatchStyles {
		got, err := ParseHatchStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseHatchStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseHatchStyle(" CrossHatch "); err != nil || got != HatchCrossHatch {
		t.Errorf("ParseHatchStyle is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseHatchStyle("zigzag"); err == nil {
		t.Error("ParseHatchStyle accepted an unknown name")
	}
	if got := HatchStyle(9).String(); got != "HatchStyle(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPickHatchStyle(t *testing.T) {
	tests := []struct {
		v    float64
		want HatchStyle
	}{
		{0.1, HatchCrossHatch},
		{0.32, HatchCrossHatch},
		{0.5, HatchCover},
		{0.85, HatchStar},
		{0.95, HatchFlow},
	}
	for _, tt := range tests {
		if got := PickHatchStyle(NewRand(constSource(tt.v))); got != tt.want {
			t.Errorf("PickHatchStyle(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestHatchReturnsClipGroup(t *testing.T) {
	for _, style := range allHatchStyles {
		for seed := uint64(1); seed <= 3; seed++ {
			t.Run(style.String(), func(t *testing.T) {
				sk := NewSketch(NewSource(seed))
				region := RegularPolygon(Pt(100, 100), 8, 50).SetStroke(Black, 1)

				g := sk.Hatch(style, region)
				if !g.Clipped {
					t.Fatal("result is not a clip group")
				}
				mask := g.Mask()
				if mask == nil || !mask.ClipMask {
					t.Fatal("first child is not a clip mask")
				}
				if mask == region {
					t.Error("mask aliases the region")
				}
				if region.ClipMask {
					t.Error("region was flagged as a clip mask")
				}
				if len(g.Content()) == 0 {
					t.Error("no hatch strokes")
				}
				Walk(NewGroup(g.Content()...), func(p *Path) {
					if p.Stroke == nil {
						t.Error("hatch stroke has no stroke color")
					}
				})
			})
		}
	}
}

func TestHatchDeterministic(t *testing.T) {
	for _, style := range allHatchStyles {
		run := func() []Point {
			sk := NewSketch(NewSource(99))
			var pts []Point
			Walk(sk.Hatch(style, RegularPolygon(Pt(0, 0), 7, 30)), func(p *Path) {
				pts = append(pts, p.Points()...)
			})
			return pts
		}
		a, b := run(), run()
		if len(a) != len(b) {
			t.Fatalf("%v: vertex counts differ", style)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%v: vertex %d differs", style, i)
			}
		}
	}
}

func TestHatchCoverRotatesRegionAboutCenter(t *testing.T) {
	sk := NewSketch(NewSource(5))
	center := Pt(100, 100)
	region := RegularPolygon(center, 8, 50)
	sk.Hatch(HatchCover, region)
	for i, pt := range region.Points() {
		if d := pt.Distance(center); math.Abs(d-50) > 1e-9 {
			t.Errorf("vertex %d at distance %v from center, want 50", i, d)
		}
	}
}

func TestHatchConstantSource(t *testing.T) {
	for _, style := range allHatchStyles {
		sk := NewSketch(constSource(0.5))
		g := sk.Hatch(style, RectPath(XYWH(0, 0, 60, 40)))
		if g.Mask() == nil || len(g.Content()) == 0 {
			t.Errorf("%v: got %d children", style, g.Len())
		}
	}
}

func TestHatchDegenerateRegion(t *testing.T) {
	sk := NewSketch(NewSource(1))
	g := sk.Hatch(HatchCover, NewPath(Pt(3, 3)))
	if !g.Clipped || g.Len() != 1 {
		t.Errorf("degenerate region gave %d children", g.Len())
	}
	expectPanic(t, "Hatch(nil)", func() { sk.Hatch(HatchStar, nil) })
}

// lineDir returns the unit direction from the first to the last vertex.
func lineDir(p *Path) Point {
	pts := p.Points()
	return pts[len(pts)-1].Sub(pts[0]).Normalize()
}

// straightHatch returns a sketch whose noise is flat, so wiggled hatch
// lines stay straight.
func straightHatch(src Source) *Sketch {
	return NewSketch(src, WithNoise(constNoise(0)), WithSmoothing(false), WithSeed(0))
}

func TestHatchStarGeometry(t *testing.T) {
	tests := []struct {
		v     float64
		lines int
	}{
		{0, 1},
		{0.5, 8},
		{0.99, 14},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.lines), func(t *testing.T) {
			sk := straightHatch(&seqSource{vals: []float64{tt.v}})
			g := sk.Hatch(HatchStar, RectPath(XYWH(0, 0, 100, 60)))

			content := g.Content()
			if len(content) != tt.lines {
				t.Fatalf("got %d lines, want %d", len(content), tt.lines)
			}
			jitter := 1 + 4*tt.v
			center := Pt(50+jitter, 30+jitter)
			step := 360 / float64(tt.lines)

			var prev Point
			for i, item := range content {
				p := item.(*Path)
				d := lineDir(p)
				for j, pt := range p.Points() {
					if off := math.Abs(d.Cross(pt.Sub(center))); off > 1e-6 {
						t.Fatalf("line %d vertex %d is %v off the line through %v", i, j, off, center)
					}
				}
				if first := p.Points()[0]; math.Abs(first.Distance(center)-100) > 1e-6 {
					t.Errorf("line %d reaches %v from the center, want 100", i, first.Distance(center))
				}
				if i > 0 {
					// Lines are undirected: compare the angle between them
					// modulo 180 degrees.
					got := math.Acos(math.Min(1, math.Abs(d.Dot(prev)))) * 180 / math.Pi
					want := math.Min(math.Mod(step, 180), 180-math.Mod(step, 180))
					if math.Abs(got-want) > 1e-6 {
						t.Errorf("lines %d and %d are %v degrees apart, want %v", i-1, i, got, want)
					}
				}
				prev = d
			}
		})
	}
}

func TestHatchCrossHatchLayers(t *testing.T) {
	center := Pt(100, 100)
	tests := []struct {
		v      float64
		layers int
	}{
		{0, 1},
		{0.4, 2},
		{0.9, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.layers), func(t *testing.T) {
			// The first value picks the layer count; the zeros pin the
			// step to 1% of the outline and the arc to its first 30%.
			sk := straightHatch(&seqSource{vals: []float64{tt.v, 0, 0, 0}})
			region := RegularPolygon(center, 64, 50)
			length := region.Length()

			perLayer := 0
			for d := 0.0; d < length*0.3; d += length * 0.01 {
				perLayer++
			}

			g := sk.Hatch(HatchCrossHatch, region)
			content := g.Content()
			if len(content) != tt.layers*perLayer {
				t.Fatalf("got %d strokes, want %d layers of %d", len(content), tt.layers, perLayer)
			}

			inner := 50 * math.Cos(math.Pi/64)
			for i, item := range content[:perLayer] {
				p := item.(*Path)
				start := p.Points()[0]
				if r := start.Distance(center); r < inner-1e-9 || r > 50+1e-9 {
					t.Errorf("stroke %d starts %v from the center, want on the outline", i, r)
				}
				if ahead := start.Add(lineDir(p)); !region.Contains(ahead) {
					t.Errorf("stroke %d at %v points outward", i, start)
				}
			}
		})
	}
}

func TestHatchCoverSpacing(t *testing.T) {
	// Values at or above the scribble chance keep every line single.
	for _, v := range []float64{0.2, 0.5, 0.8} {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			sk := straightHatch(&seqSource{vals: []float64{v}})
			region := RectPath(XYWH(0, 0, 120, 80))
			steps := 10 + v*10
			want := region.Bounds().Width() / steps

			g := sk.Hatch(HatchCover, region)
			hatches, ok := g.Content()[0].(*Group)
			if !ok {
				t.Fatalf("first content item is %T, want *Group", g.Content()[0])
			}
			var lines []*Path
			for _, child := range hatches.Children {
				if p, ok := child.(*Path); ok {
					lines = append(lines, p)
				}
			}
			if len(lines) != int(math.Ceil(steps)) {
				t.Fatalf("got %d lines, want %d", len(lines), int(math.Ceil(steps)))
			}

			d := lineDir(lines[0])
			for i := 1; i < len(lines); i++ {
				gap := math.Abs(d.Cross(lines[i].Points()[0].Sub(lines[i-1].Points()[0])))
				if math.Abs(gap-want) > 1e-6 {
					t.Errorf("gap between lines %d and %d = %v, want %v", i-1, i, gap, want)
				}
			}
		})
	}
}
