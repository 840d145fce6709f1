package scene2d

import (
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/layout"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/openings"
)

// Scene2D is one floor with every derived quantity resolved: adjacency,
// envelope, wall segments, and absolute opening geometry. Renderers and
// exporters only add presentation on top of it.
type Scene2D struct {
	Metadata  Metadata              `json:"metadata"`
	Envelope  *layout.Envelope      `json:"envelope"`
	Rooms     []Room2D              `json:"rooms"`
	Walls     []Wall2D              `json:"walls"`
	Doors     []Door2D              `json:"doors"`
	Windows   []Window2D            `json:"windows"`
	Adjacency *layout.SharedWallMap `json:"adjacency"`
}

// Empty reports whether the floor has nothing to draw.
func (s *Scene2D) Empty() bool {
	return s.Envelope == nil
}

// Metadata holds floor-level summary data.
type Metadata struct {
	Floor       string  `json:"floor"`
	Level       int     `json:"level"`
	RoomCount   int     `json:"room_count"`
	DoorCount   int     `json:"door_count"`
	WindowCount int     `json:"window_count"`
	TotalArea   float64 `json:"total_area"`
	Tolerance   float64 `json:"tolerance"`
	GeneratedAt string  `json:"generated_at"`
}

// Room2D describes a single room in the 2D view.
type Room2D struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Rect      geo.Rect          `json:"rect"`
	Center    [2]float64        `json:"center"`
	Area      float64           `json:"area"`
	Exterior  geo.WallSet       `json:"exterior_walls"`
	Shared    geo.WallSet       `json:"shared_walls"`
	Neighbors []layout.Neighbor `json:"neighbors"`
}

// WallKind distinguishes the building shell from partitions.
type WallKind string

const (
	WallExterior WallKind = "exterior"
	WallInterior WallKind = "interior"
)

// Wall2D is a straight wall segment. Interior segments are emitted once per
// shared boundary; exterior segments are the parts of a room wall no
// neighbor covers.
type Wall2D struct {
	RoomID     string       `json:"room_id"`
	NeighborID string       `json:"neighbor_id,omitempty"`
	Side       geo.WallSide `json:"side"`
	Kind       WallKind     `json:"kind"`
	Start      [2]float64   `json:"start"`
	End        [2]float64   `json:"end"`
	Thickness  float64      `json:"thickness"`
}

// Door2D is a resolved door with its owning room.
type Door2D struct {
	RoomID   string `json:"room_id"`
	Index    int    `json:"index"`
	Exterior bool   `json:"exterior"`
	openings.DoorGeometry
}

// Window2D is a resolved window with its owning room.
type Window2D struct {
	RoomID string `json:"room_id"`
	Index  int    `json:"index"`
	Type   string `json:"type"`
	openings.WindowGeometry
}
