package geom

// Rect is an axis-aligned rectangle in UI units. Positive Y goes down.
type Rect struct {
	X, Y, W, H float32
}

// Corners selects which corners of a rectangle are rounded.
type Corners uint8

const (
	CornerNone Corners = 0
	CornerTL   Corners = 1 << 0
	CornerTR   Corners = 1 << 1
	CornerBL   Corners = 1 << 2
	CornerBR   Corners = 1 << 3

	CornerT   = CornerTL | CornerTR
	CornerB   = CornerBL | CornerBR
	CornerL   = CornerTL | CornerBL
	CornerR   = CornerTR | CornerBR
	CornerAll = CornerT | CornerB
)

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float32, float32) { return r.X + r.W*0.5, r.Y + r.H*0.5 }

// HSplitMid cuts the rectangle into a top and bottom half, leaving spacing
// between them.
func (r Rect) HSplitMid(spacing float32) (top, bottom Rect) {
	return r.HSplitRatio(0.5, spacing)
}

// HSplitRatio cuts at ratio of the height (0 = top edge, 1 = bottom edge).
func (r Rect) HSplitRatio(ratio, spacing float32) (top, bottom Rect) {
	cut := r.H * ratio
	half := spacing * 0.5
	top = Rect{r.X, r.Y, r.W, cut - half}
	bottom = Rect{r.X, r.Y + cut + half, r.W, r.H - cut - half}
	return top, bottom
}

// HSplitTop takes cut units from the top edge.
func (r Rect) HSplitTop(cut float32) (top, bottom Rect) {
	top = Rect{r.X, r.Y, r.W, cut}
	bottom = Rect{r.X, r.Y + cut, r.W, r.H - cut}
	return top, bottom
}

// HSplitBottom takes cut units from the bottom edge.
func (r Rect) HSplitBottom(cut float32) (top, bottom Rect) {
	top = Rect{r.X, r.Y, r.W, r.H - cut}
	bottom = Rect{r.X, r.Y + r.H - cut, r.W, cut}
	return top, bottom
}

// VSplitMid cuts the rectangle into a left and right half, leaving spacing
// between them.
func (r Rect) VSplitMid(spacing float32) (left, right Rect) {
	return r.VSplitRatio(0.5, spacing)
}

// VSplitRatio cuts at ratio of the width (0 = left edge, 1 = right edge).
func (r Rect) VSplitRatio(ratio, spacing float32) (left, right Rect) {
	cut := r.W * ratio
	half := spacing * 0.5
	left = Rect{r.X, r.Y, cut - half, r.H}
	right = Rect{r.X + cut + half, r.Y, r.W - cut - half, r.H}
	return left, right
}

// VSplitLeft takes cut units from the left edge.
func (r Rect) VSplitLeft(cut float32) (left, right Rect) {
	left = Rect{r.X, r.Y, cut, r.H}
	right = Rect{r.X + cut, r.Y, r.W - cut, r.H}
	return left, right
}

// VSplitRight takes cut units from the right edge.
func (r Rect) VSplitRight(cut float32) (left, right Rect) {
	left = Rect{r.X, r.Y, r.W - cut, r.H}
	right = Rect{r.X + r.W - cut, r.Y, cut, r.H}
	return left, right
}

// Margin shrinks every edge by cut.
func (r Rect) Margin(cut float32) Rect {
	return Rect{r.X + cut, r.Y + cut, r.W - 2*cut, r.H - 2*cut}
}

// VMargin shrinks the left and right edges by cut.
func (r Rect) VMargin(cut float32) Rect {
	return Rect{r.X + cut, r.Y, r.W - 2*cut, r.H}
}

// HMargin shrinks the top and bottom edges by cut.
func (r Rect) HMargin(cut float32) Rect {
	return Rect{r.X, r.Y + cut, r.W, r.H - 2*cut}
}

// Inset shrinks each edge by its own amount.
func (r Rect) Inset(left, top, right, bottom float32) Rect {
	return Rect{r.X + left, r.Y + top, r.W - left - right, r.H - top - bottom}
}

// Inside reports whether (x, y) lies in the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Inside(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o. Disjoint rectangles produce a
// zero-sized rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	return Rect{x0, y0, max(0, x1-x0), max(0, y1-y0)}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
