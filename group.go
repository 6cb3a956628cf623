package grain

// Item is a node of the scene tree handed to the renderer: either a
// *Path or a *Group. The set is closed; consumers dispatch with a type
// switch.
type Item interface {
	Bounds() Rect
	Transform(m Matrix)
	CloneItem() Item
	isItem()
}

// Group is an ordered collection of items. When Clipped is set the first
// child is the clip mask and the remaining children are visible only
// inside it.
type Group struct {
	Children []Item
	Clipped  bool
}

func (*Group) isItem() {}

// NewGroup creates a group holding items.
func NewGroup(items ...Item) *Group {
	return &Group{Children: items}
}

// NewClipGroup creates a clip group masked by mask. The mask is flagged
// as a clip mask; it is not copied.
func NewClipGroup(mask *Path, items ...Item) *Group {
	mask.ClipMask = true
	g := &Group{Clipped: true, Children: make([]Item, 0, len(items)+1)}
	g.Children = append(g.Children, mask)
	g.Children = append(g.Children, items...)
	return g
}

// Add appends items to the group.
func (g *Group) Add(items ...Item) {
	g.Children = append(g.Children, items...)
}

// Len returns the number of children, including any clip mask.
func (g *Group) Len() int {
	return len(g.Children)
}

// Mask returns the clip mask, or nil when the group is not clipped.
func (g *Group) Mask() *Path {
	if !g.Clipped || len(g.Children) == 0 {
		return nil
	}
	mask, _ := g.Children[0].(*Path)
	return mask
}

// Content returns the children drawn by the group, excluding the mask.
func (g *Group) Content() []Item {
	if g.Mask() != nil {
		return g.Children[1:]
	}
	return g.Children
}

// Bounds returns the union of the children's bounds, or the mask bounds
// for a clip group.
func (g *Group) Bounds() Rect {
	if mask := g.Mask(); mask != nil {
		return mask.Bounds()
	}
	var bbox Rect
	for i, child := range g.Children {
		if i == 0 {
			bbox = child.Bounds()
			continue
		}
		bbox = bbox.Union(child.Bounds())
	}
	return bbox
}

// Transform applies m to every child in place.
func (g *Group) Transform(m Matrix) {
	for _, child := range g.Children {
		child.Transform(m)
	}
}

// Rotate rotates the group by deg degrees around center.
func (g *Group) Rotate(deg float64, center Point) {
	g.Transform(RotateAbout(deg, center))
}

// Translate moves the group by d.
func (g *Group) Translate(d Point) {
	g.Transform(Translate(d.X, d.Y))
}

// CloneItem implements Item with a deep copy.
func (g *Group) CloneItem() Item {
	clone := &Group{Clipped: g.Clipped, Children: make([]Item, len(g.Children))}
	for i, child := range g.Children {
		clone.Children[i] = child.CloneItem()
	}
	return clone
}

// Walk calls fn for every path in the tree rooted at item, depth first.
func Walk(item Item, fn func(*Path)) {
	switch it := item.(type) {
	case *Path:
		fn(it)
	case *Group:
		for _, child := range it.Children {
			Walk(child, fn)
		}
	}
}
