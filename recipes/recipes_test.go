package recipes

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/grain"
	"github.com/gogpu/grain/config"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Rocks.MaxLevels = 3
	cfg.Growth.Count = 2
	cfg.Flow.Rows, cfg.Flow.Cols = 10, 10
	cfg.Flow.Curves = 8
	cfg.Flow.Steps = 20
	cfg.Flower.Count = 6
	cfg.Clips.Circles = 12
	cfg.Clips.Dots = 5
	cfg.Clips.Lines = 5
	cfg.Clips.Erasers = 2
	cfg.Clips.EraserStrokes = 5
	cfg.Grain.MaxPoints = 50
	return cfg
}

var testBounds = grain.XYWH(0, 0, 300, 200)

func newSketch(seed uint64) *grain.Sketch {
	return grain.NewSketch(grain.NewSource(seed), grain.WithSeed(42))
}

func points(item grain.Item) []grain.Point {
	var pts []grain.Point
	grain.Walk(item, func(p *grain.Path) {
		pts = append(pts, p.Points()...)
	})
	return pts
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"rocks", "growth", "flow", "flower", "clips", " Rocks "} {
		t.Run(name, func(t *testing.T) {
			r, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", name, err)
			}
			if r == nil {
				t.Fatalf("Lookup(%q) returned nil recipe", name)
			}
		})
	}

	_, err := Lookup("clouds")
	if !errors.Is(err, ErrUnknownRecipe) {
		t.Errorf("Lookup(clouds) error = %v, want ErrUnknownRecipe", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"clips", "flow", "flower", "growth", "rocks"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRecipesDeterministic(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			recipe, _ := Lookup(name)
			cfg := smallConfig()

			a := points(recipe(newSketch(7), testBounds, cfg))
			b := points(recipe(newSketch(7), testBounds, cfg))
			if !slices.Equal(a, b) {
				t.Fatalf("%s: same seed gave different geometry (%d vs %d points)", name, len(a), len(b))
			}
		})
	}
}

func TestRocks(t *testing.T) {
	cfg := smallConfig()
	cfg.Rocks.RockChance = 1
	out := Rocks(newSketch(3), testBounds, cfg)
	if out.Len() == 0 {
		t.Fatal("Rocks drew nothing with rock_chance 1")
	}

	for i, child := range out.Children {
		rock, ok := child.(*grain.Group)
		if !ok {
			t.Fatalf("child %d is %T, want *grain.Group", i, child)
		}
		hatch, ok := rock.Children[0].(*grain.Group)
		if !ok || !hatch.Clipped || hatch.Mask() == nil {
			t.Errorf("rock %d: first child is not a clip group", i)
		}
	}
}

func TestRocksNone(t *testing.T) {
	cfg := smallConfig()
	cfg.Rocks.RockChance = 0
	if out := Rocks(newSketch(3), testBounds, cfg); out.Len() != 0 {
		t.Errorf("Rocks with rock_chance 0 drew %d items", out.Len())
	}
}

func TestGrowth(t *testing.T) {
	cfg := smallConfig()
	out := Growth(newSketch(5), testBounds, cfg)

	if got, want := out.Len(), cfg.Growth.Count+2; got != want {
		t.Fatalf("Growth children = %d, want %d", got, want)
	}
	paper, ok := out.Children[0].(*grain.Path)
	if !ok || paper.Fill == nil {
		t.Fatal("first child should be the filled paper")
	}
	if got := paper.Bounds(); got != testBounds {
		t.Errorf("paper bounds = %v, want %v", got, testBounds)
	}
	for i := 1; i <= cfg.Growth.Count; i++ {
		g := out.Children[i].(*grain.Group)
		body := g.Children[0].(*grain.Path)
		if body.Fill == nil || !body.Closed {
			t.Errorf("growth %d body should be a closed filled path", i)
		}
	}
}

func TestGrowthPacked(t *testing.T) {
	cfg := smallConfig()
	cfg.Growth.Layout = "packed"
	cfg.Growth.Count = 4
	cfg.Growth.PackRadius = 40

	out := Growth(newSketch(5), testBounds, cfg)
	if out.Len() < 3 {
		t.Fatalf("packed Growth children = %d, want paper, grain and at least one blob", out.Len())
	}
	for _, child := range out.Children[1 : out.Len()-1] {
		body, ok := child.(*grain.Group).Children[0].(*grain.Path)
		if !ok || !body.Closed || body.Fill == nil {
			t.Error("packed growth body should be a closed filled path")
		}
	}
}

func TestFlow(t *testing.T) {
	cfg := smallConfig()
	out := Flow(newSketch(9), testBounds, cfg)
	if out.Len() < 2 {
		t.Fatalf("Flow children = %d, want paper and grain at least", out.Len())
	}
	for _, child := range out.Children[1 : out.Len()-1] {
		p, ok := child.(*grain.Path)
		if !ok {
			t.Fatalf("stroke is %T, want *grain.Path", child)
		}
		if !p.Closed || p.Fill == nil {
			t.Error("flow strokes should be closed filled outlines")
		}
	}
}

func TestFlowBasicField(t *testing.T) {
	cfg := smallConfig()
	cfg.Flow.Field = "basic"
	if out := Flow(newSketch(1), testBounds, cfg); out == nil {
		t.Fatal("Flow returned nil")
	}
}

func TestFlower(t *testing.T) {
	cfg := smallConfig()
	out := Flower(newSketch(4), testBounds, cfg)

	if got, want := out.Len(), cfg.Flower.Count+2; got != want {
		t.Fatalf("Flower children = %d, want paper, %d flowers and grain", got, cfg.Flower.Count)
	}
	area := testBounds.ScaleCenter(cfg.Flower.Margin)
	for i, child := range out.Children[1 : out.Len()-1] {
		flower, ok := child.(*grain.Group)
		if !ok || flower.Len() != 2 {
			t.Fatalf("flower %d is %T, want a drawing and its shaky copy", i, child)
		}
		drawing := flower.Children[0].(*grain.Group)
		if drawing.Len() != 3 {
			t.Fatalf("flower %d drawing has %d parts, want stem, blossom and leaves", i, drawing.Len())
		}
		blossom := drawing.Children[1].(*grain.Path)
		if blossom.Fill == nil || !blossom.Closed {
			t.Errorf("flower %d blossom should be a closed filled path", i)
		}
		grain.Walk(flower.Children[1], func(p *grain.Path) {
			if p.Fill != nil || p.StrokeWidth != 0.35 {
				t.Errorf("flower %d shaky copy has fill %v width %v", i, p.Fill, p.StrokeWidth)
			}
		})

		// The stem starts at the planting point, give or take its width
		// and the noise.
		start := drawing.Children[0].(*grain.Path).Points()[0]
		if start.X < area.Min.X-15 || start.X > area.Max.X+15 ||
			start.Y < area.Min.Y-15 || start.Y > area.Max.Y+15 {
			t.Errorf("flower %d stem starts at %v, outside the planting area %v", i, start, area)
		}
	}
}

func TestClips(t *testing.T) {
	cfg := smallConfig()
	out := Clips(newSketch(2), testBounds, cfg)

	if out.Len() != 5 {
		t.Fatalf("Clips children = %d, want paper, back, front and two grain layers", out.Len())
	}
	back := out.Children[1].(*grain.Group)
	front := out.Children[2].(*grain.Group)
	if back.Len()+front.Len() < cfg.Clips.Circles+cfg.Clips.Dots+cfg.Clips.Lines {
		t.Errorf("Clips drew %d items, want at least one per circle, dot and line", back.Len()+front.Len())
	}

	erasers := 0
	for _, child := range front.Children {
		if p, ok := child.(*grain.Path); ok && p.Fill != nil && p.Fill.A == dabAlpha {
			erasers++
		}
	}
	if want := cfg.Clips.Erasers * cfg.Clips.EraserStrokes; erasers < want {
		t.Errorf("found %d eraser dabs, want %d", erasers, want)
	}

	grain.Walk(out, func(p *grain.Path) {
		if p.ClipMask && (p.Fill != nil || p.Stroke != nil) {
			t.Error("clip masks should carry no paint")
		}
	})
}

func TestClipsPaintIsClipped(t *testing.T) {
	cfg := smallConfig()
	cfg.Clips.Circles = 40
	cfg.Clips.Dots, cfg.Clips.Lines, cfg.Clips.Erasers = 0, 0, 0

	out := Clips(newSketch(11), testBounds, cfg)
	clipped := 0
	var walk func(item grain.Item)
	walk = func(item grain.Item) {
		g, ok := item.(*grain.Group)
		if !ok {
			return
		}
		if mask := g.Mask(); mask != nil {
			clipped++
			for _, c := range g.Content() {
				if dab, ok := c.(*grain.Path); !ok || dab.Fill == nil || dab.Fill.A != inkAlpha {
					t.Errorf("clipped content should be a paint dab, got %T", c)
				} else if mask.ContainsRect(dab.Bounds()) {
					t.Error("an enclosed dab was clipped needlessly")
				}
			}
			return
		}
		for _, c := range g.Children {
			walk(c)
		}
	}
	walk(out)
	if clipped == 0 {
		t.Error("no paint dab was clipped to its circle")
	}
}
