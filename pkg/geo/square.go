package geo

import "math"

// Square is an axis-aligned square anchored at its bottom-left corner.
type Square struct {
	Origin Point2D `json:"origin"`
	Side   float64 `json:"side"`
}

// Edges returns the contour in drawing order: left, bottom, right, top.
func (s Square) Edges() [4]Segment {
	x, y, n := s.Origin.X, s.Origin.Y, s.Side
	return [4]Segment{
		Seg(x, y, x, y+n),
		Seg(x, y, x+n, y),
		Seg(x+n, y, x+n, y+n),
		Seg(x, y+n, x+n, y+n),
	}
}

// Bounds returns the square as a Rect.
func (s Square) Bounds() Rect {
	return Rect{Min: s.Origin, Max: Point2D{s.Origin.X + s.Side, s.Origin.Y + s.Side}}
}

// DistanceTo returns the distance from pt to the nearest point of the
// square. Points inside the square are at distance zero.
func (s Square) DistanceTo(pt Point2D) float64 {
	b := s.Bounds()
	dx := math.Max(0, math.Max(b.Min.X-pt.X, pt.X-b.Max.X))
	dy := math.Max(0, math.Max(b.Min.Y-pt.Y, pt.Y-b.Max.Y))
	return math.Hypot(dx, dy)
}

// Stadium returns the rounded-rectangle outline at offset r around the square.
func (s Square) Stadium(r float64) Stadium {
	x, y, n := s.Origin.X, s.Origin.Y, s.Side
	return Stadium{
		Radius: r,
		Sides: [4]Segment{
			Seg(x-r, y, x-r, y+n),
			Seg(x, y-r, x+n, y-r),
			Seg(x, y+n+r, x+n, y+n+r),
			Seg(x+n+r, y, x+n+r, y+n),
		},
		Corners: [4]Arc{
			{Center: Pt(x, y), Radius: r, Theta1: 180, Theta2: 270},
			{Center: Pt(x+n, y), Radius: r, Theta1: 270, Theta2: 360},
			{Center: Pt(x, y+n), Radius: r, Theta1: 90, Theta2: 180},
			{Center: Pt(x+n, y+n), Radius: r, Theta1: 0, Theta2: 90},
		},
		square: s,
	}
}

// Stadium is the outline of a square offset outward by Radius: four
// straight sides joined by quarter-circle corners.
//
// Sides are ordered left, bottom, top, right. Corners are ordered
// bottom-left, bottom-right, top-left, top-right.
type Stadium struct {
	Radius  float64    `json:"radius"`
	Sides   [4]Segment `json:"sides"`
	Corners [4]Arc     `json:"corners"`

	square Square
}

// Bounds returns the bounding rectangle of the outline.
func (st Stadium) Bounds() Rect {
	return st.square.Bounds().Expand(st.Radius)
}

// Area returns the enclosed area: the square, four side strips and one
// full circle made of the corners.
func (st Stadium) Area() float64 {
	n, r := st.square.Side, st.Radius
	return n*n + 4*n*r + math.Pi*r*r
}

// Contains reports whether pt lies inside or on the outline.
func (st Stadium) Contains(pt Point2D) bool {
	if !st.Bounds().Contains(pt) {
		return false
	}
	return st.square.DistanceTo(pt) <= st.Radius
}
