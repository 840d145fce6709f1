package plan

import "github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"

// Plan is the top-level floor plan document.
type Plan struct {
	Name   string  `yaml:"name" json:"name"`
	Units  string  `yaml:"units" json:"units"`
	Floors []Floor `yaml:"floors" json:"floors"`
}

// FloorByName returns the floor with the given name, or nil if not found.
func (p *Plan) FloorByName(name string) *Floor {
	for i := range p.Floors {
		if p.Floors[i].Name == name {
			return &p.Floors[i]
		}
	}
	return nil
}

// Floor is an ordered collection of rooms sharing one elevation level.
type Floor struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
	Rooms []Room `yaml:"rooms" json:"rooms"`
}

// Rects returns the rectangles of every room, in room order.
func (f Floor) Rects() []geo.Rect {
	rects := make([]geo.Rect, len(f.Rooms))
	for i, r := range f.Rooms {
		rects[i] = r.Rect
	}
	return rects
}

// Room is an axis-aligned rectangle with openings on its walls.
type Room struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	geo.Rect `yaml:",inline"`
	Doors    []Door   `yaml:"doors" json:"doors"`
	Windows  []Window `yaml:"windows" json:"windows"`
}

// Opening is the wall anchoring shared by doors and windows.
//
// Position is the normalized fraction in [0,1] of the host wall's length at
// which the opening's center sits, measured from the wall's north or west
// end. Producers holding other conventions convert with PositionFromLeftEdge,
// PositionFromCenter or PlaceAt.
type Opening struct {
	Wall     geo.WallSide `yaml:"wall" json:"wall"`
	Position float64      `yaml:"position" json:"position"`
	Width    float64      `yaml:"width" json:"width"`
}

// SwingDirection says which side of the wall a door leaf opens into.
type SwingDirection string

const (
	SwingInward  SwingDirection = "inward"
	SwingOutward SwingDirection = "outward"
)

// SwingSide names the hinge end of a door. Left is the end nearer the
// wall's north or west corner.
type SwingSide string

const (
	HingeLeft  SwingSide = "left"
	HingeRight SwingSide = "right"
)

// Door is an opening with a swinging leaf.
type Door struct {
	Opening        `yaml:",inline"`
	SwingDirection SwingDirection `yaml:"swing_direction" json:"swing_direction"`
	SwingSide      SwingSide      `yaml:"swing_side" json:"swing_side"`
}

// Window types recognised for mullion layout. Unknown types are drawn as
// WindowDouble.
const (
	WindowSingle = "single"
	WindowDouble = "double"
	WindowTriple = "triple"
)

// Window is a glazed opening. SillHeight only matters for elevations.
type Window struct {
	Opening    `yaml:",inline"`
	SillHeight float64 `yaml:"sill_height" json:"sill_height"`
	Type       string  `yaml:"type" json:"type"`
}

// Mullions returns the number of vertical dividers for the window type.
func (w Window) Mullions() int {
	switch w.Type {
	case WindowSingle:
		return 0
	case WindowTriple:
		return 2
	}
	return 1
}
