package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultTolerance is the comparison slack used when none is supplied.
const DefaultTolerance = 1e-6

// ApproxEqual reports whether a and b differ by less than tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Span is a closed interval along one axis.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Length returns End - Start, or 0 for an empty span.
func (s Span) Length() float64 {
	return math.Max(0, s.End-s.Start)
}

// Overlap returns the intersection of s and o and whether it is non-empty.
// Touching endpoints do not count as overlap.
func (s Span) Overlap(o Span) (Span, bool) {
	out := Span{Start: math.Max(s.Start, o.Start), End: math.Min(s.End, o.End)}
	return out, s.Start < o.End && s.End > o.Start
}

// Rect is an axis-aligned rectangle. (X, Y) is the top-left (north-west)
// corner; Width grows east, Height grows south.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// R is a shorthand constructor for Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// MaxX returns the east edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the south edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// XSpan returns the rectangle's extent along X.
func (r Rect) XSpan() Span { return Span{r.X, r.MaxX()} }

// YSpan returns the rectangle's extent along Y.
func (r Rect) YSpan() Span { return Span{r.Y, r.MaxY()} }

// Corners returns the four corners clockwise on screen from the north-west.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.MaxX(), r.Y},
		{r.MaxX(), r.MaxY()},
		{r.X, r.MaxY()},
	}
}

// WallLength returns the length of wall w: Width for north/south, Height
// for east/west.
func (r Rect) WallLength(w WallSide) float64 {
	if w.Horizontal() {
		return r.Width
	}
	return r.Height
}

// Wall returns the start and end of wall w. Walls start at their north or
// west corner.
func (r Rect) Wall(w WallSide) (Point, Point) {
	switch w {
	case North:
		return Point{r.X, r.Y}, Point{r.MaxX(), r.Y}
	case South:
		return Point{r.X, r.MaxY()}, Point{r.MaxX(), r.MaxY()}
	case West:
		return Point{r.X, r.Y}, Point{r.X, r.MaxY()}
	case East:
		return Point{r.MaxX(), r.Y}, Point{r.MaxX(), r.MaxY()}
	}
	return Point{}, Point{}
}

// WallSpan returns the extent of wall w along its own axis.
func (r Rect) WallSpan(w WallSide) Span {
	if w.Horizontal() {
		return r.XSpan()
	}
	return r.YSpan()
}

// OnWall reports whether p lies on wall w within tol.
func (r Rect) OnWall(w WallSide, p Point, tol float64) bool {
	a, b := r.Wall(w)
	if w.Horizontal() {
		return ApproxEqual(p.Y, a.Y, tol) && p.X > a.X-tol && p.X < b.X+tol
	}
	return ApproxEqual(p.X, a.X, tol) && p.Y > a.Y-tol && p.Y < b.Y+tol
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.Width + 2*d, r.Height + 2*d}
}

// Bound converts the rectangle to an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.MaxX(), r.MaxY()},
	}
}

// RectFromBound converts an orb.Bound back to a Rect.
func RectFromBound(b orb.Bound) Rect {
	return Rect{
		X:      b.Min[0],
		Y:      b.Min[1],
		Width:  b.Max[0] - b.Min[0],
		Height: b.Max[1] - b.Min[1],
	}
}
