package layout

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// Envelope is the axis-aligned bounding box of every room on a floor, the
// building footprint.
type Envelope struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// ComputeEnvelope reduces the room rectangles to their bounding box.
// It returns nil when there are no rooms: nothing to outline, dimension, or
// title. It is cheap and is never cached.
func ComputeEnvelope(rooms []plan.Room) *Envelope {
	if len(rooms) == 0 {
		return nil
	}
	e := &Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, r := range rooms {
		e.MinX = math.Min(e.MinX, r.X)
		e.MinY = math.Min(e.MinY, r.Y)
		e.MaxX = math.Max(e.MaxX, r.MaxX())
		e.MaxY = math.Max(e.MaxY, r.MaxY())
	}
	return e
}

// Width returns MaxX - MinX.
func (e *Envelope) Width() float64 { return e.MaxX - e.MinX }

// Height returns MaxY - MinY.
func (e *Envelope) Height() float64 { return e.MaxY - e.MinY }

// Center returns the middle of the footprint, used by renderers to center
// the plan in a viewport.
func (e *Envelope) Center() geo.Point {
	return geo.Pt((e.MinX+e.MaxX)/2, (e.MinY+e.MaxY)/2)
}

// Rect returns the envelope as a rectangle.
func (e *Envelope) Rect() geo.Rect {
	return geo.R(e.MinX, e.MinY, e.Width(), e.Height())
}

// Contains reports whether r lies entirely inside the envelope.
func (e *Envelope) Contains(r geo.Rect) bool {
	return r.X >= e.MinX && r.Y >= e.MinY && r.MaxX() <= e.MaxX && r.MaxY() <= e.MaxY
}

// Bound returns the envelope as an orb.Bound.
func (e *Envelope) Bound() orb.Bound {
	return e.Rect().Bound()
}
