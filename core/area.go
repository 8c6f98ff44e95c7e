package core

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Cardinal step deltas in fixed check order: west, east, north, south
var Cardinals = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// DistSq returns squared Euclidean distance
func (p Point) DistSq(o Point) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Manhattan returns the 4-connected grid distance
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Adjacent reports whether o is exactly one cardinal step from p
func (p Point) Adjacent(o Point) bool {
	return p.Manhattan(o) == 1
}

// Rect represents an axis-aligned rectangular region
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// RectWithSize builds a rect from corner and size
func RectWithSize(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// X2 returns the exclusive right edge
func (r Rect) X2() int { return r.X + r.Width }

// Y2 returns the exclusive bottom edge
func (r Rect) Y2() int { return r.Y + r.Height }

// Intersects reports whether r and o share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X2() && o.X < r.X2() && r.Y < o.Y2() && o.Y < r.Y2()
}

// Center returns the integer midpoint
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// ForEach visits every cell in row-major order
func (r Rect) ForEach(fn func(Point)) {
	for y := r.Y; y < r.Y2(); y++ {
		for x := r.X; x < r.X2(); x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
