package display

// Rect is a pixel rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y int16
	W, H int16
}

// Padding defines spacing on all four sides of a rectangle.
type Padding struct {
	Top    int16
	Right  int16
	Bottom int16
	Left   int16
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int16) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate moves r by the origin of parent.
func (r Rect) Translate(parent Rect) Rect {
	return Rect{X: r.X + parent.X, Y: r.Y + parent.Y, W: r.W, H: r.H}
}

// Intersect returns the overlap of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks r by p. Dimensions never go negative.
func (r Rect) Inset(p Padding) Rect {
	out := Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int16) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SplitRows divides r into n rows of equal height separated by spacing.
// The last row absorbs any remainder.
func (r Rect) SplitRows(n int, spacing int16) []Rect {
	if n <= 0 {
		return nil
	}
	rows := make([]Rect, n)
	h := (r.H - spacing*int16(n-1)) / int16(n)
	y := r.Y
	for i := range rows {
		rows[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h + spacing
	}
	rows[n-1].H = r.Y + r.H - rows[n-1].Y
	return rows
}

// SplitColumns divides r into n columns of equal width separated by spacing.
// The last column absorbs any remainder.
func (r Rect) SplitColumns(n int, spacing int16) []Rect {
	if n <= 0 {
		return nil
	}
	cols := make([]Rect, n)
	w := (r.W - spacing*int16(n-1)) / int16(n)
	x := r.X
	for i := range cols {
		cols[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w + spacing
	}
	cols[n-1].W = r.X + r.W - cols[n-1].X
	return cols
}
