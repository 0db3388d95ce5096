package geo

import "math"

// Segment is a straight line between two points.
type Segment struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
}

// Seg is a shorthand constructor for Segment.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Pt(x1, y1), B: Pt(x2, y2)}
}

// Points returns n+1 evenly spaced points from A to B inclusive.
func (s Segment) Points(n int) []Point2D {
	if n < 1 {
		n = 1
	}
	pts := make([]Point2D, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = s.A.Lerp(s.B, float64(i)/float64(n))
	}
	return pts
}

// Arc is a circular arc swept counterclockwise from Theta1 to Theta2.
// Angles are in degrees measured from the positive X axis.
type Arc struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
	Theta1 float64 `json:"theta1"`
	Theta2 float64 `json:"theta2"`
}

// Sweep returns the swept angle in degrees, in (0, 360].
func (a Arc) Sweep() float64 {
	d := math.Mod(a.Theta2-a.Theta1, 360)
	if d <= 0 {
		d += 360
	}
	return d
}

// PointAt returns the point on the arc's circle at the given angle in degrees.
func (a Arc) PointAt(deg float64) Point2D {
	rad := deg * math.Pi / 180
	return Point2D{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// Points returns n+1 points along the arc from Theta1 to Theta2 inclusive.
func (a Arc) Points(n int) []Point2D {
	if n < 1 {
		n = 1
	}
	sweep := a.Sweep()
	pts := make([]Point2D, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = a.PointAt(a.Theta1 + sweep*float64(i)/float64(n))
	}
	return pts
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// Width returns the X extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the Y extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point2D{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point2D{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Point2D{r.Min.X - d, r.Min.Y - d},
		Max: Point2D{r.Max.X + d, r.Max.Y + d},
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point2D) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}
