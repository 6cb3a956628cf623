package grain

import (
	"fmt"
	"math"
	"testing"
)

func TestFlowerPresetNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{GrowStraight.String(), "straight"},
		{GrowWobbly.String(), "wobbly"},
		{StemLine.String(), "line"},
		{StemTapered.String(), "tapered"},
		{BlossomEllipse.String(), "ellipse"},
		{BlossomCircle.String(), "circle"},
		{BlossomStar.String(), "star"},
		{LeavesAsLines.String(), "lines"},
		{LeavesAsCircles.String(), "circles"},
		{GrowPreset(5).String(), "GrowPreset(5)"},
		{BlossomPreset(-1).String(), "BlossomPreset(-1)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestPickFlowerPresets(t *testing.T) {
	tests := []struct {
		v       float64
		grow    GrowPreset
		blossom BlossomPreset
	}{
		{0, GrowStraight, BlossomEllipse},
		{0.24, GrowStraight, BlossomEllipse},
		{0.3, GrowStraight, BlossomCircle},
		{0.5, GrowWobbly, BlossomCircle},
		{0.74, GrowWobbly, BlossomCircle},
		{0.8, GrowWobbly, BlossomStar},
	}
	for _, tt := range tests {
		r := NewRand(constSource(tt.v))
		if got := PickGrowPreset(r); got != tt.grow {
			t.Errorf("PickGrowPreset(%v) = %v, want %v", tt.v, got, tt.grow)
		}
		if got := PickBlossomPreset(r); got != tt.blossom {
			t.Errorf("PickBlossomPreset(%v) = %v, want %v", tt.v, got, tt.blossom)
		}
	}
	if got := PickStemPreset(NewRand(constSource(0.9))); got != StemTapered {
		t.Errorf("PickStemPreset(0.9) = %v", got)
	}
	if got := PickLeafPreset(NewRand(constSource(0.1))); got != LeavesAsLines {
		t.Errorf("PickLeafPreset(0.1) = %v", got)
	}
}

func TestGrow(t *testing.T) {
	origin := Pt(10, 100)
	up := Pt(0, -2)

	tests := []struct {
		preset GrowPreset
		v      float64
		// sideways offset of point i is side * i
		side float64
	}{
		{GrowStraight, 0.5, 0},
		{GrowWobbly, 0.5, 50 * (0.01 + 0.2*0.5) * 0.5 / 5},
		{GrowWobbly, 1, 50 * 0.21 / 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.preset, tt.v), func(t *testing.T) {
			sk := NewSketch(constSource(tt.v), WithSeed(0))
			pts := sk.Grow(tt.preset, origin, up, 50, 5)
			if len(pts) != 5 {
				t.Fatalf("got %d points, want 5", len(pts))
			}
			for i, pt := range pts {
				want := Pt(origin.X+tt.side*float64(i), origin.Y-10*float64(i))
				if !pt.Approx(want, 1e-9) {
					t.Errorf("point %d = %v, want %v", i, pt, want)
				}
			}
		})
	}

	sk := NewSketch(constSource(0.5), WithSeed(0))
	if pts := sk.Grow(GrowStraight, origin, up, 50, 0); pts != nil {
		t.Errorf("zero segments gave %v", pts)
	}
}

func TestStem(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0, -10), Pt(3, -20), Pt(0, -30), Pt(2, -40)}

	t.Run("line", func(t *testing.T) {
		smooth := NewSketch(constSource(0.6), WithSeed(0)).Stem(StemLine, pts)
		if smooth.Len() != len(pts) || smooth.Closed || smooth.Fill != nil || smooth.Stroke == nil {
			t.Fatalf("line stem: %d vertices, closed=%v fill=%v stroke=%v",
				smooth.Len(), smooth.Closed, smooth.Fill, smooth.Stroke)
		}
		if smooth.Segments[2].Out.IsZero() {
			t.Error("stem was not smoothed")
		}
		plain := NewSketch(constSource(0.4), WithSeed(0)).Stem(StemLine, pts)
		if !plain.Segments[2].Out.IsZero() {
			t.Error("stem was smoothed")
		}
	})

	t.Run("tapered", func(t *testing.T) {
		out := NewSketch(constSource(0.5), WithSeed(0)).Stem(StemTapered, pts)
		if !out.Closed || out.Len() != 2*stemSamples {
			t.Fatalf("tapered stem: closed=%v, %d vertices", out.Closed, out.Len())
		}
		if out.Fill == nil || *out.Fill != White || out.Stroke == nil || *out.Stroke != Black {
			t.Errorf("tapered stem fill %v stroke %v, want white and black", out.Fill, out.Stroke)
		}
	})
}

func TestBlossom(t *testing.T) {
	pos := Pt(50, 50)
	sk := NewSketch(constSource(0.5), WithSeed(0))

	circle := sk.Blossom(BlossomCircle, pos, 10)
	if b := circle.Bounds(); math.Abs(b.Width()-10) > 1e-9 || !b.Center().Approx(pos, 1e-9) {
		t.Errorf("circle bounds = %v, want 10 wide around %v", b, pos)
	}

	ellipse := sk.Blossom(BlossomEllipse, pos, 10)
	if b := ellipse.Bounds(); math.Abs(b.Width()-11.25) > 1e-9 || math.Abs(b.Height()-11.25) > 1e-9 {
		t.Errorf("ellipse bounds = %v, want 11.25 square", b)
	}

	// round(4.5) points with radii 0.625 and 0.375 of the size.
	star := sk.Blossom(BlossomStar, pos, 10)
	if star.Len() != 10 {
		t.Fatalf("star has %d vertices, want 10", star.Len())
	}
	if got := star.Segments[0].Point; !got.Approx(Pt(50, 43.75), 1e-9) {
		t.Errorf("first star vertex = %v, want (50, 43.75)", got)
	}
	if d := star.Segments[1].Point.Distance(pos); math.Abs(d-3.75) > 1e-9 {
		t.Errorf("second star vertex at radius %v, want 3.75", d)
	}

	for _, p := range []*Path{circle, ellipse, star} {
		if !p.Closed || p.Fill == nil || p.Stroke == nil || *p.Stroke != Black {
			t.Errorf("blossom closed=%v fill=%v stroke=%v", p.Closed, p.Fill, p.Stroke)
		}
	}
}

func TestLeaves(t *testing.T) {
	center := Pt(50, 50)
	head := Circle(center, 10)

	t.Run("lines", func(t *testing.T) {
		sk := NewSketch(constSource(0.5), WithSeed(0))
		g := sk.Leaves(LeavesAsLines, head, 4)
		if g.Len() != 10 {
			t.Fatalf("got %d leaves, want 10", g.Len())
		}
		for i, item := range g.Children {
			leaf := item.(*Path)
			base, tip := leaf.Segments[0].Point, leaf.Segments[1].Point
			if d := base.Distance(center); math.Abs(d-10) > 0.05 {
				t.Errorf("leaf %d starts %v from the center, want on the outline", i, d)
			}
			if d := tip.Distance(center); math.Abs(d-13.5) > 0.1 {
				t.Errorf("leaf %d tip %v from the center, want 13.5 (outward)", i, d)
			}
		}
	})

	t.Run("circles", func(t *testing.T) {
		sk := NewSketch(constSource(0.5), WithSeed(0))
		g := sk.Leaves(LeavesAsCircles, head, 4)
		if g.Len() != 10 {
			t.Fatalf("got %d leaves, want 10", g.Len())
		}
		r := 3.5 * 0.875
		for i, item := range g.Children {
			leaf := item.(*Path)
			b := leaf.Bounds()
			if math.Abs(b.Width()-2*r) > 1e-9 {
				t.Errorf("leaf %d is %v wide, want %v", i, b.Width(), 2*r)
			}
			if d := b.Center().Distance(center); math.Abs(d-10-r) > 0.1 {
				t.Errorf("leaf %d sits %v from the center, want %v", i, d, 10+r)
			}
			if leaf.Fill == nil || *leaf.Fill != White {
				t.Errorf("leaf %d fill = %v, want white", i, leaf.Fill)
			}
		}
	})

	expectPanic(t, "Leaves(nil)", func() {
		NewSketch(constSource(0.5)).Leaves(LeavesAsLines, nil, 1)
	})
}

func TestFlower(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		sk := NewSketch(NewSource(seed))
		f := sk.Flower(Pt(100, 150))
		if f.Len() != 2 {
			t.Fatalf("seed %d: flower has %d children, want drawing and shaky copy", seed, f.Len())
		}
		drawing, shaky := f.Children[0].(*Group), f.Children[1].(*Group)
		if drawing.Len() != 3 || shaky.Len() != 3 {
			t.Fatalf("seed %d: parts %d and %d, want 3 each", seed, drawing.Len(), shaky.Len())
		}
		if drawing.Children[1].(*Path).Fill == nil {
			t.Errorf("seed %d: blossom lost its fill", seed)
		}
		Walk(shaky, func(p *Path) {
			if p.Fill != nil || p.StrokeWidth != outlineShakeW {
				t.Errorf("seed %d: shaky copy fill %v width %v", seed, p.Fill, p.StrokeWidth)
			}
		})

		// Stems grow upward, tilted by at most 60 degrees, so the blossom
		// never ends up well below the planting point.
		if b := drawing.Children[1].Bounds(); b.Center().Y > 150+12 {
			t.Errorf("seed %d: blossom at %v is below the origin", seed, b.Center())
		}
	}
}

func TestEndTaperScale(t *testing.T) {
	if got := EndTaperScale(0, 20); got != 1 {
		t.Errorf("EndTaperScale(0) = %v, want 1", got)
	}
	prev := 1.0
	for i := 1; i < 20; i++ {
		got := EndTaperScale(i, 20)
		if got >= prev || got <= 0 {
			t.Fatalf("EndTaperScale(%d) = %v after %v", i, got, prev)
		}
		prev = got
	}
}
