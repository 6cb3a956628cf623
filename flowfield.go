package grain

import (
	"fmt"
	"math"

	"github.com/gogpu/grain/noise"
)

// FieldKind selects how Generate fills a FlowField.
type FieldKind int

const (
	// FieldBasic sets every cell of row i to i/rows * Pi, so the flow
	// turns gradually from left-to-right at the top to right-to-left at
	// the bottom.
	FieldBasic FieldKind = iota

	// FieldNoise maps noise sampled at (i*freq, j*freq, 0) from [0, 1]
	// onto [0, 2*Pi].
	FieldNoise
)

// String returns the kind's name.
func (k FieldKind) String() string {
	switch k {
	case FieldBasic:
		return "basic"
	case FieldNoise:
		return "noise"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// DefaultFieldFrequency is the noise frequency used by FieldNoise when
// Generate is given a non-positive frequency.
const DefaultFieldFrequency = 0.15

// FlowField is a grid of angles laid over a rectangle. Grid nodes sit on
// the rectangle's corners and edges, so adjacent nodes are
// Width/(cols-1) apart horizontally and Height/(rows-1) vertically.
type FlowField struct {
	rect       Rect
	rows, cols int
	cellW      float64
	cellH      float64
	grid       []float64
}

// NewFlowField creates a rows x cols field over rect, initialized with
// FieldBasic angles. Rows and cols below two are raised to two.
func NewFlowField(rect Rect, rows, cols int) *FlowField {
	rows = max(rows, 2)
	cols = max(cols, 2)
	f := &FlowField{
		rect:  rect,
		rows:  rows,
		cols:  cols,
		cellW: rect.Width() / float64(cols-1),
		cellH: rect.Height() / float64(rows-1),
		grid:  make([]float64, rows*cols),
	}
	f.Generate(FieldBasic, nil, 0)
	return f
}

// Rows returns the number of grid rows.
func (f *FlowField) Rows() int { return f.rows }

// Cols returns the number of grid columns.
func (f *FlowField) Cols() int { return f.cols }

// Rect returns the area covered by the field.
func (f *FlowField) Rect() Rect { return f.rect }

// At returns the angle stored at row i, column j.
func (f *FlowField) At(i, j int) float64 {
	return f.grid[i*f.cols+j]
}

// Generate refills the grid. FieldNoise panics if n is nil.
func (f *FlowField) Generate(kind FieldKind, n noise.Noise, freq float64) {
	if kind == FieldNoise && n == nil {
		panic("grain: FlowField.Generate called with nil noise")
	}
	if freq <= 0 {
		freq = DefaultFieldFrequency
	}
	for i := 0; i < f.rows; i++ {
		for j := 0; j < f.cols; j++ {
			var angle float64
			switch kind {
			case FieldNoise:
				v := n.Sample(float64(i)*freq, float64(j)*freq, 0)
				angle = Remap(v, 0, 1, 0, 2*math.Pi)
			default:
				angle = float64(i) / float64(f.rows) * math.Pi
			}
			f.grid[i*f.cols+j] = angle
		}
	}
}

// Query returns the angle of the grid node nearest to p. It reports false
// when p lies outside the grid or the field has no area.
func (f *FlowField) Query(p Point) (float64, bool) {
	if f.cellW <= 0 || f.cellH <= 0 {
		return 0, false
	}
	local := p.Sub(f.rect.Min)
	col := math.Round(local.X / f.cellW)
	row := math.Round(local.Y / f.cellH)
	if math.IsNaN(col) || math.IsNaN(row) ||
		col < 0 || row < 0 || col > float64(f.cols-1) || row > float64(f.rows-1) {
		return 0, false
	}
	return f.grid[int(row)*f.cols+int(col)], true
}

// Trace follows field from start for at most steps steps of length
// stepSize and returns the visited points as an open path. The walk stops
// early when it leaves the field.
func (sk *Sketch) Trace(field *FlowField, start Point, steps int, stepSize float64) *Path {
	if field == nil {
		panic("grain: Trace called with nil field")
	}
	p := NewPath()
	current := start
	for i := 0; i < steps; i++ {
		p.Add(current)
		angle, ok := field.Query(current)
		if !ok {
			break
		}
		sin, cos := math.Sincos(angle)
		current = current.Add(Pt(stepSize*cos, stepSize*sin))
	}
	if sk.smoothing {
		p.Smooth()
	}
	return p
}

// NoiseWalk walks the sketch's noise field directly: at every step the
// noise value at (x*freq, y*freq, 0), scaled by 2*Pi, gives the heading.
// The result is the skeleton of a paint stroke.
func (sk *Sketch) NoiseWalk(start Point, steps int, stepSize, freq float64) *Path {
	p := NewPath()
	current := start
	for i := 0; i < steps; i++ {
		p.Add(current)
		angle := sk.noise.Sample(current.X*freq, current.Y*freq, 0) * 2 * math.Pi
		sin, cos := math.Sincos(angle)
		current = current.Add(Pt(stepSize*cos, stepSize*sin))
	}
	if sk.smoothing {
		p.Smooth()
	}
	return p
}
