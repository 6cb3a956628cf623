package grain

import (
	"math"
	"testing"
)

func TestFlowFieldBasic(t *testing.T) {
	f := NewFlowField(XYWH(0, 0, 100, 100), 11, 11)
	if f.Rows() != 11 || f.Cols() != 11 {
		t.Fatalf("size = %dx%d, want 11x11", f.Rows(), f.Cols())
	}
	for i := 0; i < f.Rows(); i++ {
		want := float64(i) / 11 * math.Pi
		for j := 0; j < f.Cols(); j++ {
			if got := f.At(i, j); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestFlowFieldQuery(t *testing.T) {
	f := NewFlowField(XYWH(0, 0, 100, 100), 11, 11)
	tests := []struct {
		name string
		p    Point
		want float64
		ok   bool
	}{
		{"origin", Pt(0, 0), 0, true},
		{"rounds to nearest node", Pt(50, 51), 5.0 / 11 * math.Pi, true},
		{"far corner", Pt(100, 100), 10.0 / 11 * math.Pi, true},
		{"left of field", Pt(-10, 0), 0, false},
		{"right of field", Pt(106, 0), 0, false},
		{"below field", Pt(0, 120), 0, false},
		{"nan", Pt(math.NaN(), 0), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.Query(tt.p)
			if ok != tt.ok {
				t.Fatalf("Query(%v) ok = %v, want %v", tt.p, ok, tt.ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Query(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestFlowFieldQueryOffsetRect(t *testing.T) {
	f := NewFlowField(XYWH(100, 200, 50, 50), 6, 6)
	if got, ok := f.Query(Pt(100, 250)); !ok || math.Abs(got-5.0/6*math.Pi) > 1e-12 {
		t.Errorf("Query at bottom-left = %v, %v", got, ok)
	}
	if _, ok := f.Query(Pt(0, 0)); ok {
		t.Error("Query outside the offset rect succeeded")
	}
}

func TestFlowFieldNoise(t *testing.T) {
	f := NewFlowField(XYWH(0, 0, 10, 10), 4, 4)
	f.Generate(FieldNoise, constNoise(0.5), 0.15)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got := f.At(i, j); math.Abs(got-math.Pi) > 1e-12 {
				t.Fatalf("At(%d, %d) = %v, want pi", i, j, got)
			}
		}
	}

	rec := &recordingNoise{}
	f.Generate(FieldNoise, rec, 0.5)
	if last := rec.calls[len(rec.calls)-1]; last != [3]float64{1.5, 1.5, 0} {
		t.Errorf("last sample at %v, want (1.5, 1.5, 0)", last)
	}

	expectPanic(t, "Generate(FieldNoise, nil)", func() { f.Generate(FieldNoise, nil, 0) })
}

func TestFlowFieldMinimumSize(t *testing.T) {
	f := NewFlowField(XYWH(0, 0, 10, 10), 0, 1)
	if f.Rows() != 2 || f.Cols() != 2 {
		t.Errorf("size = %dx%d, want 2x2", f.Rows(), f.Cols())
	}
	if _, ok := NewFlowField(Rect{}, 5, 5).Query(Pt(0, 0)); ok {
		t.Error("Query on an empty field succeeded")
	}
}

func TestFieldKindString(t *testing.T) {
	if FieldBasic.String() != "basic" || FieldNoise.String() != "noise" {
		t.Error("unexpected FieldKind names")
	}
	if got := FieldKind(7).String(); got != "FieldKind(7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestTrace(t *testing.T) {
	sk := NewSketch(NewSource(1), WithSmoothing(false))
	f := NewFlowField(XYWH(0, 0, 100, 100), 11, 11)

	p := sk.Trace(f, Pt(0, 0), 5, 10)
	want := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}}
	if p.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(want))
	}
	for i, pt := range p.Points() {
		if !pointsEqual(pt, want[i], 1e-9) {
			t.Errorf("vertex %d = %v, want %v", i, pt, want[i])
		}
	}
}

func TestTraceStopsAtEdge(t *testing.T) {
	sk := NewSketch(NewSource(1), WithSmoothing(false))
	f := NewFlowField(XYWH(0, 0, 100, 100), 11, 11)

	p := sk.Trace(f, Pt(95, 0), 5, 10)
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (one step inside, then out)", p.Len())
	}
	expectPanic(t, "Trace(nil)", func() { sk.Trace(nil, Pt(0, 0), 5, 1) })
}

func TestNoiseWalk(t *testing.T) {
	tests := []struct {
		name string
		n    constNoise
		dir  Point
	}{
		{"heading east", 0, Pt(1, 0)},
		{"heading south", 0.25, Pt(0, 1)},
		{"heading west", 0.5, Pt(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk := NewSketch(NewSource(1), WithNoise(tt.n), WithSmoothing(false))
			p := sk.NoiseWalk(Pt(10, 10), 4, 5, 0.0095)
			if p.Len() != 4 {
				t.Fatalf("Len() = %d, want 4", p.Len())
			}
			for i, pt := range p.Points() {
				want := Pt(10, 10).Add(tt.dir.Mul(5 * float64(i)))
				if !pointsEqual(pt, want, 1e-9) {
					t.Errorf("vertex %d = %v, want %v", i, pt, want)
				}
			}
		})
	}
}
