// Package openings turns wall-relative door and window placements into
// absolute plan coordinates. Every renderer and exporter consumes these
// results instead of re-deriving placement.
package openings

import (
	"math"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// Options control clamping and glyph dimensions.
type Options struct {
	// MinPosition and MaxPosition bound the normalized center position so
	// openings stay off the corners.
	MinPosition float64
	MaxPosition float64
	// FrameGap is the perpendicular offset of each window frame line from
	// the wall centerline.
	FrameGap float64
}

// DefaultOptions returns the stock clamps and a quarter-unit frame gap.
func DefaultOptions() Options {
	return Options{MinPosition: 0.1, MaxPosition: 0.9, FrameGap: 0.25}
}

// Segment is a straight line between two points.
type Segment struct {
	Start geo.Point `json:"start"`
	End   geo.Point `json:"end"`
}

// Placement is an opening resolved onto its host wall.
type Placement struct {
	Wall             geo.WallSide `json:"wall"`
	Start            geo.Point    `json:"start"`
	End              geo.Point    `json:"end"`
	WallIsHorizontal bool         `json:"wall_is_horizontal"`
	// Offset is the distance from the wall start to Start.
	Offset  float64 `json:"offset"`
	Width   float64 `json:"width"`
	Clamped bool    `json:"clamped,omitempty"`
}

// DoorGeometry is a resolved door: the opening, the leaf in its open
// position, and the swing arc.
type DoorGeometry struct {
	Placement
	Hinge   geo.Point `json:"hinge"`
	LeafEnd geo.Point `json:"leaf_end"`
	Swing   Swing     `json:"swing"`
}

// Leaf returns the open door leaf as a segment from the hinge.
func (d DoorGeometry) Leaf() Segment {
	return Segment{Start: d.Hinge, End: d.LeafEnd}
}

// WindowGeometry is a resolved window: two frame lines parallel to the wall
// and mullion ticks across them.
type WindowGeometry struct {
	Placement
	Frame    [2]Segment `json:"frame"`
	Mullions []Segment  `json:"mullions"`
}

// Resolver resolves openings with a fixed set of options.
type Resolver struct {
	opts Options
}

// New creates a resolver. Zero clamps fall back to the defaults.
func New(opts Options) *Resolver {
	def := DefaultOptions()
	if opts.MinPosition == 0 && opts.MaxPosition == 0 {
		opts.MinPosition, opts.MaxPosition = def.MinPosition, def.MaxPosition
	}
	if opts.FrameGap <= 0 {
		opts.FrameGap = def.FrameGap
	}
	return &Resolver{opts: opts}
}

// Options returns the resolver's effective options.
func (r *Resolver) Options() Options {
	return r.opts
}

var defaultResolver = New(DefaultOptions())

// ResolvePosition places an opening on its room's wall with the default
// options. It returns false if the opening names an unknown wall.
func ResolvePosition(room plan.Room, o plan.Opening) (Placement, bool) {
	return defaultResolver.Position(room.Rect, o)
}

// ResolveDoor resolves a door with the default options.
func ResolveDoor(room plan.Room, d plan.Door) (DoorGeometry, bool) {
	return defaultResolver.Door(room.Rect, d)
}

// ResolveWindow resolves a window with the default options. Windows on
// interior walls produce nothing.
func ResolveWindow(room plan.Room, w plan.Window, isExterior bool) (WindowGeometry, bool) {
	return defaultResolver.Window(room.Rect, w, isExterior)
}

// Position places an opening on wall o.Wall of rect. The position is
// clamped to [MinPosition, MaxPosition], the width to the wall length, and
// the opening is then shifted so it lies wholly on the wall. The opening's
// start sits at position*length - width/2.
func (r *Resolver) Position(rect geo.Rect, o plan.Opening) (Placement, bool) {
	if !o.Wall.Valid() {
		return Placement{}, false
	}

	// A non-finite position centers the opening; a non-finite width
	// collapses it.
	reqPos, reqWidth := o.Position, o.Width
	if !finite(reqPos) {
		reqPos = 0.5
	}
	if !finite(reqWidth) {
		reqWidth = 0
	}

	length := rect.WallLength(o.Wall)
	pos := geo.Clamp(reqPos, r.opts.MinPosition, r.opts.MaxPosition)
	width := geo.Clamp(reqWidth, 0, math.Max(length, 0))

	offset := geo.Clamp(pos*length-width/2, 0, math.Max(length-width, 0))
	clamped := pos != o.Position || width != o.Width ||
		!geo.ApproxEqual(offset, pos*length-width/2, geo.DefaultTolerance)

	a, b := rect.Wall(o.Wall)
	dir := b.Sub(a)
	if length > 0 {
		dir = dir.Scale(1 / length)
	}
	start := a.Add(dir.Scale(offset))

	return Placement{
		Wall:             o.Wall,
		Start:            start,
		End:              start.Add(dir.Scale(width)),
		WallIsHorizontal: o.Wall.Horizontal(),
		Offset:           offset,
		Width:            width,
		Clamped:          clamped,
	}, true
}

// Door resolves a door and its swing from the lookup table.
func (r *Resolver) Door(rect geo.Rect, d plan.Door) (DoorGeometry, bool) {
	p, ok := r.Position(rect, d.Opening)
	if !ok {
		return DoorGeometry{}, false
	}
	entry, ok := lookupSwing(d.Wall, d.SwingSide, d.SwingDirection)
	if !ok {
		return DoorGeometry{}, false
	}

	hinge := p.Start
	if entry.hingeAtEnd {
		hinge = p.End
	}
	return DoorGeometry{
		Placement: p,
		Hinge:     hinge,
		LeafEnd:   hinge.Add(axis[entry.open].Scale(p.Width)),
		Swing: Swing{
			Center:     hinge,
			Radius:     p.Width,
			StartAngle: entry.start,
			EndAngle:   entry.start + 90,
		},
	}, true
}

// Window resolves a window's frame and mullions. It no-ops on interior
// walls: windows only go on exterior walls.
func (r *Resolver) Window(rect geo.Rect, w plan.Window, isExterior bool) (WindowGeometry, bool) {
	if !isExterior {
		return WindowGeometry{}, false
	}
	p, ok := r.Position(rect, w.Opening)
	if !ok {
		return WindowGeometry{}, false
	}

	normal := geo.Pt(1, 0)
	if p.WallIsHorizontal {
		normal = geo.Pt(0, 1)
	}
	in := normal.Scale(r.opts.FrameGap)
	out := in.Scale(-1)

	g := WindowGeometry{
		Placement: p,
		Frame: [2]Segment{
			{Start: p.Start.Add(out), End: p.End.Add(out)},
			{Start: p.Start.Add(in), End: p.End.Add(in)},
		},
		Mullions: []Segment{},
	}

	n := w.Mullions()
	for k := 1; k <= n; k++ {
		at := p.Start.Lerp(p.End, float64(k)/float64(n+1))
		g.Mullions = append(g.Mullions, Segment{Start: at.Add(out), End: at.Add(in)})
	}
	return g, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
