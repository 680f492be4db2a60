package game

// Rect is an axis-aligned box in playfield pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether the boxes share a non-empty area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
