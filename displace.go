package grain

// wiggleSampleDistance is the resampling distance used by Wiggle.
const wiggleSampleDistance = 6

// Displace offsets every vertex of item by a vector read from the
// sketch's noise field. Groups are displaced child by child with the
// same field and seed, so siblings share noise but sample it at different
// coordinates.
//
// A path longer than sampleDist is first flattened to vertices spaced
// about sampleDist apart, bounding the displacement density from below.
// Each vertex (x, y) then moves by
//
//	(Sample(x/s, y/s, seed), Sample(y/s, seed, x/s)) * amplitude
//
// where s is noiseScale. When smoothing is enabled the path is smoothed
// through the displaced vertices afterwards.
//
// Displace panics if item is nil.
func (sk *Sketch) Displace(item Item, sampleDist, noiseScale, amplitude float64) {
	switch it := item.(type) {
	case *Group:
		if it == nil {
			panic("grain: Displace called with nil group")
		}
		for _, child := range it.Children {
			sk.Displace(child, sampleDist, noiseScale, amplitude)
		}
	case *Path:
		if it == nil {
			panic("grain: Displace called with nil path")
		}
		sk.displacePath(it, sampleDist, noiseScale, amplitude)
	default:
		panic("grain: Displace called with nil item")
	}
}

func (sk *Sketch) displacePath(p *Path, sampleDist, noiseScale, amplitude float64) {
	if sampleDist < p.Length() {
		p.Flatten(sampleDist)
	}

	for i, s := range p.Segments {
		x, y := s.Point.X/noiseScale, s.Point.Y/noiseScale
		d := Pt(
			sk.noise.Sample(x, y, sk.seed),
			sk.noise.Sample(y, sk.seed, x),
		)
		p.Segments[i].Point = s.Point.Add(d.Mul(amplitude))
	}

	if sk.smoothing {
		p.Smooth()
	}
}

// Wiggle subdivides p into stops equal pieces and displaces it with
// noise of frequency freq and amplitude amp, turning straight strokes
// into hand-drawn ones.
func (sk *Sketch) Wiggle(p *Path, stops int, freq, amp float64) {
	if p == nil {
		panic("grain: Wiggle called with nil path")
	}
	if stops > 0 {
		length := p.Length()
		for i := 0; i < stops; i++ {
			p.DivideAt(length / float64(stops) * float64(i))
		}
	}
	sk.Displace(p, wiggleSampleDistance, freq, amp)
}
