package noise

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a noise field over random samples.
type Summary struct {
	Count      int
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	OutOfRange int // samples outside [-1, 1]
}

// Summarize samples n at count points drawn uniformly from the cube
// [-extent, extent]^3.
func Summarize(n Noise, src Source, count int, extent float64) Summary {
	if count <= 0 {
		return Summary{}
	}
	values := make([]float64, count)
	out := 0
	for i := range values {
		x := (src.Float64()*2 - 1) * extent
		y := (src.Float64()*2 - 1) * extent
		z := (src.Float64()*2 - 1) * extent
		v := n.Sample(x, y, z)
		if v < -1 || v > 1 {
			out++
		}
		values[i] = v
	}

	mean, std := stat.MeanStdDev(values, nil)
	return Summary{
		Count:      count,
		Mean:       mean,
		StdDev:     std,
		Min:        floats.Min(values),
		Max:        floats.Max(values),
		OutOfRange: out,
	}
}

// GridSample is one cell of a sampled noise grid.
type GridSample struct {
	Col   int     `csv:"col"`
	Row   int     `csv:"row"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	Value float64 `csv:"value"`
}

// Grid samples n over a cols×rows lattice scaled by freq at depth z.
// The result is in row-major order.
func Grid(n Noise, cols, rows int, freq, z float64) []GridSample {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	out := make([]GridSample, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := float64(col)*freq, float64(row)*freq
			out = append(out, GridSample{
				Col:   col,
				Row:   row,
				X:     x,
				Y:     y,
				Z:     z,
				Value: n.Sample(x, y, z),
			})
		}
	}
	return out
}
