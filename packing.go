package grain

// Rectangle and circle packing used to lay out compositions.

const (
	// leafMinLevel is the depth below which PackRects always splits.
	leafMinLevel = 2
	earlyLeaf    = 0.25
)

// PackRects recursively splits rect into smaller rectangles and returns
// the leaves. The leaves tile rect exactly.
//
// Each split cuts the rectangle at 33-66% of its extent, across its
// longer side three times out of four and in a random direction
// otherwise. Below level two any rectangle may become a leaf with
// probability 0.25; at maxLevels every rectangle is a leaf.
func PackRects(r *Rand, rect Rect, maxLevels int) []Rect {
	var leaves []Rect
	packRects(r, rect, 0, maxLevels, &leaves)
	return leaves
}

func packRects(r *Rand, rect Rect, level, maxLevels int, leaves *[]Rect) {
	if level >= maxLevels || level > leafMinLevel && r.Chance(earlyLeaf) {
		*leaves = append(*leaves, rect)
		return
	}

	w, h := rect.Width(), rect.Height()
	vertical := w > h
	if !r.Chance(0.75) {
		vertical = r.Chance(0.5)
	}
	pct := r.Range(0.33, 0.66)

	var a, b Rect
	if vertical {
		x := rect.Min.X + w*pct
		a = Rect{Min: rect.Min, Max: Pt(x, rect.Max.Y)}
		b = Rect{Min: Pt(x, rect.Min.Y), Max: rect.Max}
	} else {
		y := rect.Min.Y + h*pct
		a = Rect{Min: rect.Min, Max: Pt(rect.Max.X, y)}
		b = Rect{Min: Pt(rect.Min.X, y), Max: rect.Max}
	}
	packRects(r, a, level+1, maxLevels, leaves)
	packRects(r, b, level+1, maxLevels, leaves)
}

// Disc is a packed circle.
type Disc struct {
	Center Point
	Radius float64
}

// Intersects reports whether the two circles overlap.
func (c Disc) Intersects(other Disc) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// Path returns the circle as a closed path.
func (c Disc) Path() *Path {
	return Circle(c.Center, c.Radius)
}

// PackCircles places up to attempts circles in rect. Each attempt seeds a
// circle of radius 1 at a random point and grows it one unit at a time
// until it reaches maxRadius or touches a placed circle. Seeds that
// start inside another circle are dropped. Placed circles never overlap.
func PackCircles(r *Rand, rect Rect, maxRadius float64, attempts int) []Disc {
	const (
		startRadius = 1.0
		stepRadius  = 1.0
	)

	var circles []Disc
	overlaps := func(c Disc) bool {
		for _, other := range circles {
			if c.Intersects(other) {
				return true
			}
		}
		return false
	}

	for i := 0; i < attempts; i++ {
		current := Disc{Center: r.PointInRect(rect), Radius: startRadius}
		if overlaps(current) {
			continue
		}
		for current.Radius < maxRadius {
			next := current
			next.Radius += stepRadius
			if overlaps(next) {
				break
			}
			current = next
		}
		circles = append(circles, current)
	}

	Logger().Debug("circles packed", "attempts", attempts, "placed", len(circles))
	return circles
}
